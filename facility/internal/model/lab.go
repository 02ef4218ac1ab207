package model

import (
	"encoding/json"
	"strings"
	"time"
)

type Lab struct {
	ID          int64     `json:"id" db:"id"`
	Name        string    `json:"name" db:"name"`
	Description string    `json:"description" db:"description"`
	Location    string    `json:"location" db:"location"`
	Capacity    int       `json:"capacity" db:"capacity"`
	Facilities  string    `json:"facilities" db:"facilities"`
	IsActive    bool      `json:"isActive" db:"is_active"`
	CreatedAt   time.Time `json:"createdAt" db:"created_at"`
	UpdatedAt   time.Time `json:"updatedAt" db:"updated_at"`
}

func (l Lab) FacilityList() []string {
	out := make([]string, 0)
	for _, f := range strings.Split(l.Facilities, ",") {
		if f = strings.TrimSpace(f); f != "" {
			out = append(out, f)
		}
	}
	return out
}

func (l Lab) MarshalJSON() ([]byte, error) {
	type alias Lab
	return json.Marshal(struct {
		alias
		FacilityList []string `json:"facilityList"`
	}{alias(l), l.FacilityList()})
}

type LabRequest struct {
	Name        *string `json:"name" validate:"omitempty,max=255"`
	Description *string `json:"description"`
	Location    *string `json:"location"`
	Capacity    *int    `json:"capacity" validate:"omitempty,gte=0"`
	Facilities  *string `json:"facilities"`
	IsActive    *bool   `json:"isActive"`
}

func (r LabRequest) Apply(l *Lab) {
	if r.Name != nil {
		l.Name = strings.TrimSpace(*r.Name)
	}
	if r.Description != nil {
		l.Description = *r.Description
	}
	if r.Location != nil {
		l.Location = *r.Location
	}
	if r.Capacity != nil {
		l.Capacity = *r.Capacity
	}
	if r.Facilities != nil {
		l.Facilities = *r.Facilities
	}
	if r.IsActive != nil {
		l.IsActive = *r.IsActive
	}
}
