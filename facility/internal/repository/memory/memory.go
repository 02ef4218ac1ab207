// Package memory keeps the whole facility state in process memory. It backs
// DB_DRIVER=memory and the service tests.
package memory

import (
	"context"
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/aiu-lab/facility-service/facility/internal/errs"
	"github.com/aiu-lab/facility-service/facility/internal/model"
	"github.com/aiu-lab/facility-service/facility/internal/repository"
	"github.com/pkg/errors"
)

var _ repository.Repository = (*Repository)(nil)

type state struct {
	seq       int64
	equipment map[int64]model.Equipment
	rentals   map[int64]model.Rental
	labs      map[int64]model.Lab
	bookings  map[int64]model.LabBooking
	requests  map[int64]model.EquipmentRequest
	items     map[int64]model.RequestItem
	history   []model.StatusHistory
}

func newState() state {
	return state{
		equipment: make(map[int64]model.Equipment),
		rentals:   make(map[int64]model.Rental),
		labs:      make(map[int64]model.Lab),
		bookings:  make(map[int64]model.LabBooking),
		requests:  make(map[int64]model.EquipmentRequest),
		items:     make(map[int64]model.RequestItem),
	}
}

func (s state) clone() state {
	c := state{
		seq:       s.seq,
		equipment: make(map[int64]model.Equipment, len(s.equipment)),
		rentals:   make(map[int64]model.Rental, len(s.rentals)),
		labs:      make(map[int64]model.Lab, len(s.labs)),
		bookings:  make(map[int64]model.LabBooking, len(s.bookings)),
		requests:  make(map[int64]model.EquipmentRequest, len(s.requests)),
		items:     make(map[int64]model.RequestItem, len(s.items)),
		history:   append([]model.StatusHistory(nil), s.history...),
	}
	for k, v := range s.equipment {
		c.equipment[k] = v
	}
	for k, v := range s.rentals {
		c.rentals[k] = v
	}
	for k, v := range s.labs {
		c.labs[k] = v
	}
	for k, v := range s.bookings {
		c.bookings[k] = v
	}
	for k, v := range s.requests {
		c.requests[k] = v
	}
	for k, v := range s.items {
		c.items[k] = v
	}
	return c
}

type store struct {
	mu    sync.Mutex
	state state
}

// Repository serializes every call behind one mutex; WithTx holds it for the
// whole callback and restores a snapshot when the callback fails.
type Repository struct {
	s    *store
	inTx bool
}

func New() *Repository {
	return &Repository{s: &store{state: newState()}}
}

func (r *Repository) lock() func() {
	if r.inTx {
		return func() {}
	}
	r.s.mu.Lock()
	return r.s.mu.Unlock
}

func (r *Repository) st() *state {
	return &r.s.state
}

func (r *Repository) nextID() int64 {
	r.s.state.seq++
	return r.s.state.seq
}

func (r *Repository) WithTx(_ context.Context, fn func(r repository.Repository) error) error {
	if r.inTx {
		return fn(r)
	}
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	snapshot := r.s.state.clone()
	if err := fn(&Repository{s: r.s, inTx: true}); err != nil {
		r.s.state = snapshot
		return err
	}
	return nil
}

func (r *Repository) rentedUnits(equipmentID int64) int {
	n := 0
	for _, rent := range r.st().rentals {
		if rent.EquipmentID == equipmentID && rent.Status.Occupying() {
			n += rent.Quantity
		}
	}
	return n
}

func (r *Repository) equipment(id int64) (model.Equipment, error) {
	e, ok := r.st().equipment[id]
	if !ok {
		return model.Equipment{}, errors.Wrapf(errs.ErrNotFound, "equipment %d", id)
	}
	e.RentedUnits = r.rentedUnits(id)
	return e, nil
}

func (r *Repository) CreateEquipment(_ context.Context, e model.Equipment) (model.Equipment, error) {
	defer r.lock()()
	for _, other := range r.st().equipment {
		if other.Code == e.Code {
			return model.Equipment{}, errors.Wrapf(errs.ErrValidation, "equipment code %q already exists", e.Code)
		}
	}
	now := time.Now().UTC()
	e.ID = r.nextID()
	e.CreatedAt, e.UpdatedAt = now, now
	e.RentedUnits = 0
	r.st().equipment[e.ID] = e
	return r.equipment(e.ID)
}

func (r *Repository) UpdateEquipment(_ context.Context, e model.Equipment) (model.Equipment, error) {
	defer r.lock()()
	cur, ok := r.st().equipment[e.ID]
	if !ok {
		return model.Equipment{}, errs.ErrNotFound
	}
	cur.Name = e.Name
	cur.Description = e.Description
	cur.Categories = e.Categories
	cur.QuantityTotal = e.QuantityTotal
	cur.QuantityMaintenance = e.QuantityMaintenance
	cur.IsActive = e.IsActive
	cur.UpdatedAt = time.Now().UTC()
	r.st().equipment[e.ID] = cur
	return r.equipment(e.ID)
}

func (r *Repository) GetEquipment(_ context.Context, id int64) (model.Equipment, error) {
	defer r.lock()()
	return r.equipment(id)
}

func (r *Repository) GetEquipmentByCode(_ context.Context, code string) (model.Equipment, error) {
	defer r.lock()()
	for id, e := range r.st().equipment {
		if e.Code == code {
			return r.equipment(id)
		}
	}
	return model.Equipment{}, errors.Wrapf(errs.ErrNotFound, "equipment %q", code)
}

func (r *Repository) LockEquipment(ctx context.Context, id int64) (model.Equipment, error) {
	return r.GetEquipment(ctx, id)
}

func (r *Repository) ListEquipment(_ context.Context, f model.EquipmentFilter) ([]model.Equipment, error) {
	defer r.lock()()
	out := make([]model.Equipment, 0)
	category := strings.ToLower(f.Category)
	search := strings.ToLower(f.Search)
	for id, e := range r.st().equipment {
		if !f.ShowAll && !e.IsActive {
			continue
		}
		if category != "" && !contains(e.Categories, category) {
			continue
		}
		if search != "" && !strings.Contains(strings.ToLower(e.Name), search) && !strings.Contains(strings.ToLower(e.Code), search) {
			continue
		}
		e, _ = r.equipment(id)
		out = append(out, e)
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Name != out[j].Name {
			return out[i].Name < out[j].Name
		}
		return out[i].ID < out[j].ID
	})
	return out, nil
}

func (r *Repository) SetEquipmentQRCode(_ context.Context, id int64, png []byte) error {
	defer r.lock()()
	e, ok := r.st().equipment[id]
	if !ok {
		return errs.ErrNotFound
	}
	if len(e.QRCode) == 0 {
		e.QRCode = png
		r.st().equipment[id] = e
	}
	return nil
}

func (r *Repository) CountDepletedEquipment(_ context.Context) (int, error) {
	defer r.lock()()
	n := 0
	for id, e := range r.st().equipment {
		if !e.IsActive {
			continue
		}
		e, _ = r.equipment(id)
		if e.Stock().Rentable() == 0 {
			n++
		}
	}
	return n, nil
}

func contains(ss []string, s string) bool {
	for _, v := range ss {
		if v == s {
			return true
		}
	}
	return false
}
