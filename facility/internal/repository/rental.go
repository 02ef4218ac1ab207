package repository

import (
	"context"
	"time"

	sq "github.com/Masterminds/squirrel"
	"github.com/aiu-lab/facility-service/facility/internal/errs"
	"github.com/aiu-lab/facility-service/facility/internal/model"
	"github.com/pkg/errors"
)

func selectRentals() sq.SelectBuilder {
	return qb.Select(
		"r.id", "r.equipment_id", "e.name as equipment_name", "e.code as equipment_code",
		"r.username", "r.quantity", "r.duration_days", "r.rental_date", "r.expected_return_date",
		"r.actual_return_date", "r.status", "r.notes", "r.issued_by", "r.returned_to",
		"r.reviewed_by", "r.reviewed_at", "r.reject_reason", "r.request_item_id",
		"r.created_at", "r.updated_at",
	).From(rentalTableName + " r").
		Join(equipmentTableName + " e on e.id = r.equipment_id")
}

func (r *repository) CreateRental(ctx context.Context, rent model.Rental) (model.Rental, error) {
	q := qb.Insert(rentalTableName).
		Columns("equipment_id", "username", "quantity", "duration_days", "rental_date", "expected_return_date",
			"status", "notes", "issued_by", "reviewed_by", "reviewed_at", "request_item_id").
		Values(rent.EquipmentID, rent.Username, rent.Quantity, rent.DurationDays, rent.RentalDate, rent.ExpectedReturnDate,
			rent.Status, rent.Notes, rent.IssuedBy, rent.ReviewedBy, rent.ReviewedAt, rent.RequestItemID).
		Suffix("returning id")
	var id int64
	if err := r.get(ctx, &id, q); err != nil {
		return model.Rental{}, errors.Wrap(err, "insert rental")
	}
	return r.GetRental(ctx, id)
}

func (r *repository) GetRental(ctx context.Context, id int64) (model.Rental, error) {
	var rent model.Rental
	if err := r.get(ctx, &rent, selectRentals().Where(sq.Eq{"r.id": id})); err != nil {
		return model.Rental{}, errors.Wrapf(err, "rental %d", id)
	}
	return rent, nil
}

func (r *repository) LockRental(ctx context.Context, id int64) (model.Rental, error) {
	var rent model.Rental
	q := selectRentals().Where(sq.Eq{"r.id": id}).Suffix("for update of r")
	if err := r.get(ctx, &rent, q); err != nil {
		return model.Rental{}, errors.Wrapf(err, "lock rental %d", id)
	}
	return rent, nil
}

func (r *repository) ListRentals(ctx context.Context, f model.RentalFilter) ([]model.Rental, error) {
	q := selectRentals().OrderBy("r.created_at desc", "r.id desc")
	if f.Username != "" {
		q = q.Where(sq.Eq{"r.username": f.Username})
	}
	if f.Status != "" {
		q = q.Where(sq.Eq{"r.status": f.Status})
	}
	if f.EquipmentID != 0 {
		q = q.Where(sq.Eq{"r.equipment_id": f.EquipmentID})
	}
	items := make([]model.Rental, 0)
	if err := r.selectAll(ctx, &items, q); err != nil {
		return nil, err
	}
	return items, nil
}

func (r *repository) UpdateRental(ctx context.Context, rent model.Rental) error {
	q := qb.Update(rentalTableName).
		SetMap(map[string]any{
			"status":               rent.Status,
			"rental_date":          rent.RentalDate,
			"expected_return_date": rent.ExpectedReturnDate,
			"actual_return_date":   rent.ActualReturnDate,
			"issued_by":            rent.IssuedBy,
			"returned_to":          rent.ReturnedTo,
			"reviewed_by":          rent.ReviewedBy,
			"reviewed_at":          rent.ReviewedAt,
			"reject_reason":        rent.RejectReason,
			"updated_at":           time.Now().UTC(),
		}).
		Where(sq.Eq{"id": rent.ID})
	n, err := r.exec(ctx, q)
	if err != nil {
		return errors.Wrapf(err, "update rental %d", rent.ID)
	}
	if n == 0 {
		return errs.ErrNotFound
	}
	return nil
}

const markOverdueQuery = `
with due as (
	select id, status from rentals
	where status in ('approved', 'active') and expected_return_date < $1
	for update
)
update rentals r
set status = 'overdue', updated_at = $1
from due
where r.id = due.id
returning r.id, r.username, due.status as from_status`

func (r *repository) MarkOverdue(ctx context.Context, now time.Time) ([]model.Promotion, error) {
	promoted := make([]model.Promotion, 0)
	if err := r.selectRaw(ctx, &promoted, markOverdueQuery, now); err != nil {
		return nil, errors.Wrap(err, "mark overdue")
	}
	return promoted, nil
}

func (r *repository) CountRentals(ctx context.Context, status model.RentalStatus) (int, error) {
	return r.count(ctx, qb.Select("count(*)").From(rentalTableName).Where(sq.Eq{"status": status}))
}
