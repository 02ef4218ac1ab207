package memory

import (
	"context"
	"sort"
	"time"

	"github.com/aiu-lab/facility-service/facility/internal/errs"
	"github.com/aiu-lab/facility-service/facility/internal/model"
	"github.com/pkg/errors"
)

func (r *Repository) rental(id int64) (model.Rental, error) {
	rent, ok := r.st().rentals[id]
	if !ok {
		return model.Rental{}, errors.Wrapf(errs.ErrNotFound, "rental %d", id)
	}
	if e, ok := r.st().equipment[rent.EquipmentID]; ok {
		rent.EquipmentName = e.Name
		rent.EquipmentCode = e.Code
	}
	return rent, nil
}

func (r *Repository) CreateRental(_ context.Context, rent model.Rental) (model.Rental, error) {
	defer r.lock()()
	if _, ok := r.st().equipment[rent.EquipmentID]; !ok {
		return model.Rental{}, errors.Wrapf(errs.ErrNotFound, "equipment %d", rent.EquipmentID)
	}
	now := time.Now().UTC()
	rent.ID = r.nextID()
	rent.CreatedAt, rent.UpdatedAt = now, now
	r.st().rentals[rent.ID] = rent
	return r.rental(rent.ID)
}

func (r *Repository) GetRental(_ context.Context, id int64) (model.Rental, error) {
	defer r.lock()()
	return r.rental(id)
}

func (r *Repository) LockRental(ctx context.Context, id int64) (model.Rental, error) {
	return r.GetRental(ctx, id)
}

func (r *Repository) ListRentals(_ context.Context, f model.RentalFilter) ([]model.Rental, error) {
	defer r.lock()()
	out := make([]model.Rental, 0)
	for id, rent := range r.st().rentals {
		if f.Username != "" && rent.Username != f.Username {
			continue
		}
		if f.Status != "" && rent.Status != f.Status {
			continue
		}
		if f.EquipmentID != 0 && rent.EquipmentID != f.EquipmentID {
			continue
		}
		rent, _ = r.rental(id)
		out = append(out, rent)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID > out[j].ID })
	return out, nil
}

func (r *Repository) UpdateRental(_ context.Context, rent model.Rental) error {
	defer r.lock()()
	cur, ok := r.st().rentals[rent.ID]
	if !ok {
		return errs.ErrNotFound
	}
	cur.Status = rent.Status
	cur.RentalDate = rent.RentalDate
	cur.ExpectedReturnDate = rent.ExpectedReturnDate
	cur.ActualReturnDate = rent.ActualReturnDate
	cur.IssuedBy = rent.IssuedBy
	cur.ReturnedTo = rent.ReturnedTo
	cur.ReviewedBy = rent.ReviewedBy
	cur.ReviewedAt = rent.ReviewedAt
	cur.RejectReason = rent.RejectReason
	cur.UpdatedAt = time.Now().UTC()
	r.st().rentals[rent.ID] = cur
	return nil
}

func (r *Repository) MarkOverdue(_ context.Context, now time.Time) ([]model.Promotion, error) {
	defer r.lock()()
	promoted := make([]model.Promotion, 0)
	for id, rent := range r.st().rentals {
		if !rent.IsOverdue(now) {
			continue
		}
		promoted = append(promoted, model.Promotion{ID: id, Username: rent.Username, From: string(rent.Status)})
		rent.Status = model.RentalOverdue
		rent.UpdatedAt = now
		r.st().rentals[id] = rent
	}
	sort.Slice(promoted, func(i, j int) bool { return promoted[i].ID < promoted[j].ID })
	return promoted, nil
}

func (r *Repository) CountRentals(_ context.Context, status model.RentalStatus) (int, error) {
	defer r.lock()()
	n := 0
	for _, rent := range r.st().rentals {
		if rent.Status == status {
			n++
		}
	}
	return n, nil
}
