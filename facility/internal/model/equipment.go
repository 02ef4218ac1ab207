package model

import (
	"strings"
	"time"

	"github.com/aiu-lab/facility-service/facility/internal/errs"
	"github.com/lib/pq"
	"github.com/pkg/errors"
)

type EquipmentStatus string

const (
	EquipmentAvailable   EquipmentStatus = "available"
	EquipmentRented      EquipmentStatus = "rented"
	EquipmentMaintenance EquipmentStatus = "maintenance"
)

type Equipment struct {
	ID                  int64          `json:"id" db:"id"`
	Code                string         `json:"code" db:"code"`
	Name                string         `json:"name" db:"name"`
	Description         string         `json:"description" db:"description"`
	Categories          pq.StringArray `json:"categories" db:"categories"`
	QuantityTotal       int            `json:"quantityTotal" db:"quantity_total"`
	QuantityMaintenance int            `json:"quantityMaintenance" db:"quantity_maintenance"`
	IsActive            bool           `json:"isActive" db:"is_active"`
	QRCode              []byte         `json:"-" db:"qr_code"`
	CreatedAt           time.Time      `json:"createdAt" db:"created_at"`
	UpdatedAt           time.Time      `json:"updatedAt" db:"updated_at"`

	// RentedUnits is loaded from live rental rows on every read; zero for unsaved equipment.
	RentedUnits int `json:"rentedUnits" db:"rented_units"`
}

func (e Equipment) Stock() Stock {
	return Stock{Total: e.QuantityTotal, Maintenance: e.QuantityMaintenance, Rented: e.RentedUnits}
}

// EquipmentView is the read shape with every derived counter filled in.
type EquipmentView struct {
	Equipment
	Available int             `json:"availableQuantity"`
	Rentable  int             `json:"rentableQuantity"`
	Status    EquipmentStatus `json:"status"`
	HasQRCode bool            `json:"hasQrCode"`
}

func (e Equipment) View() EquipmentView {
	st := e.Stock()
	return EquipmentView{
		Equipment: e,
		Available: st.ComputedAvailable(),
		Rentable:  st.Rentable(),
		Status:    st.Status(),
		HasQRCode: len(e.QRCode) > 0,
	}
}

// Stock is the unit arithmetic of one equipment pool.
type Stock struct {
	Total       int
	Maintenance int
	Rented      int
}

func (s Stock) ComputedAvailable() int {
	return max0(s.Total - s.Rented)
}

func (s Stock) Rentable() int {
	return max0(s.ComputedAvailable() - s.Maintenance)
}

func (s Stock) Status() EquipmentStatus {
	rentable := s.Rentable()
	switch {
	case s.Maintenance > 0 && rentable == 0:
		return EquipmentMaintenance
	case s.Rented > 0 && rentable == 0:
		return EquipmentRented
	default:
		return EquipmentAvailable
	}
}

func (s Stock) Validate() error {
	if s.Total < 0 {
		return errors.Wrap(errs.ErrValidation, "quantity_total must not be negative")
	}
	if s.Maintenance < 0 {
		return errors.Wrap(errs.ErrValidation, "quantity_maintenance must not be negative")
	}
	if s.Total < s.Rented {
		return errors.Wrapf(errs.ErrValidation, "quantity_total %d is below %d rented units", s.Total, s.Rented)
	}
	if s.Maintenance > s.ComputedAvailable() {
		return errors.Wrapf(errs.ErrValidation, "quantity_maintenance %d exceeds %d available units", s.Maintenance, s.ComputedAvailable())
	}
	return nil
}

func max0(v int) int {
	if v < 0 {
		return 0
	}
	return v
}

type CreateEquipmentRequest struct {
	Code                string   `json:"code" validate:"required,max=64"`
	Name                string   `json:"name" validate:"required,max=255"`
	Description         string   `json:"description"`
	Categories          []string `json:"categories"`
	QuantityTotal       *int     `json:"quantityTotal" validate:"omitempty,gte=0"`
	QuantityMaintenance int      `json:"quantityMaintenance" validate:"gte=0"`
	IsActive            *bool    `json:"isActive"`
}

func (r CreateEquipmentRequest) Equipment() Equipment {
	e := Equipment{
		Code:                strings.TrimSpace(r.Code),
		Name:                r.Name,
		Description:         r.Description,
		Categories:          NormalizeCategories(r.Categories),
		QuantityTotal:       1,
		QuantityMaintenance: r.QuantityMaintenance,
		IsActive:            true,
	}
	if r.QuantityTotal != nil {
		e.QuantityTotal = *r.QuantityTotal
	}
	if r.IsActive != nil {
		e.IsActive = *r.IsActive
	}
	return e
}

type UpdateEquipmentRequest struct {
	Name                *string  `json:"name" validate:"omitempty,max=255"`
	Description         *string  `json:"description"`
	Categories          []string `json:"categories"`
	QuantityTotal       *int     `json:"quantityTotal"`
	QuantityMaintenance *int     `json:"quantityMaintenance"`
	IsActive            *bool    `json:"isActive"`
}

func (r UpdateEquipmentRequest) Apply(e *Equipment) {
	if r.Name != nil {
		e.Name = *r.Name
	}
	if r.Description != nil {
		e.Description = *r.Description
	}
	if r.Categories != nil {
		e.Categories = NormalizeCategories(r.Categories)
	}
	if r.QuantityTotal != nil {
		e.QuantityTotal = *r.QuantityTotal
	}
	if r.QuantityMaintenance != nil {
		e.QuantityMaintenance = *r.QuantityMaintenance
	}
	if r.IsActive != nil {
		e.IsActive = *r.IsActive
	}
}

func NormalizeCategories(in []string) pq.StringArray {
	out := make(pq.StringArray, 0, len(in))
	seen := make(map[string]struct{}, len(in))
	for _, c := range in {
		c = strings.ToLower(strings.TrimSpace(c))
		if c == "" {
			continue
		}
		if _, ok := seen[c]; ok {
			continue
		}
		seen[c] = struct{}{}
		out = append(out, c)
	}
	return out
}

type EquipmentFilter struct {
	Category string
	Search   string
	ShowAll  bool
}
