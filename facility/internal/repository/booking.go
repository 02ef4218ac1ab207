package repository

import (
	"context"
	"time"

	sq "github.com/Masterminds/squirrel"
	"github.com/aiu-lab/facility-service/facility/internal/errs"
	"github.com/aiu-lab/facility-service/facility/internal/model"
	"github.com/pkg/errors"
)

func selectBookings() sq.SelectBuilder {
	return qb.Select(
		"b.id", "b.lab_id", "l.name as lab_name", "b.username", "b.booking_date",
		"b.start_time", "b.end_time", "b.time_slot", "b.seat_number", "b.purpose", "b.participants",
		"b.status", "b.reviewed_by", "b.reviewed_at", "b.admin_comment", "b.created_at", "b.updated_at",
	).From(bookingTableName + " b").
		Join(labTableName + " l on l.id = b.lab_id")
}

func (r *repository) CreateBooking(ctx context.Context, b model.LabBooking) (model.LabBooking, error) {
	q := qb.Insert(bookingTableName).
		Columns("lab_id", "username", "booking_date", "start_time", "end_time", "time_slot",
			"seat_number", "purpose", "participants", "status").
		Values(b.LabID, b.Username, b.BookingDate, b.StartTime, b.EndTime, b.TimeSlot,
			b.SeatNumber, b.Purpose, b.Participants, b.Status).
		Suffix("returning id")
	var id int64
	if err := r.get(ctx, &id, q); err != nil {
		if uniqueViolation(err, bookingSeatIndex) {
			return model.LabBooking{}, errs.ErrSlotConflict
		}
		return model.LabBooking{}, errors.Wrap(err, "insert booking")
	}
	return r.GetBooking(ctx, id)
}

func (r *repository) GetBooking(ctx context.Context, id int64) (model.LabBooking, error) {
	var b model.LabBooking
	if err := r.get(ctx, &b, selectBookings().Where(sq.Eq{"b.id": id})); err != nil {
		return model.LabBooking{}, errors.Wrapf(err, "booking %d", id)
	}
	return b, nil
}

func (r *repository) LockBooking(ctx context.Context, id int64) (model.LabBooking, error) {
	var b model.LabBooking
	if err := r.get(ctx, &b, selectBookings().Where(sq.Eq{"b.id": id}).Suffix("for update of b")); err != nil {
		return model.LabBooking{}, errors.Wrapf(err, "lock booking %d", id)
	}
	return b, nil
}

func (r *repository) ListBookings(ctx context.Context, f model.BookingFilter) ([]model.LabBooking, error) {
	q := selectBookings().OrderBy("b.booking_date desc", "b.start_time", "b.id")
	if f.Username != "" {
		q = q.Where(sq.Eq{"b.username": f.Username})
	}
	if f.Status != "" {
		q = q.Where(sq.Eq{"b.status": f.Status})
	}
	if f.LabID != 0 {
		q = q.Where(sq.Eq{"b.lab_id": f.LabID})
	}
	if f.Date != nil {
		q = q.Where(sq.Eq{"b.booking_date": *f.Date})
	}
	items := make([]model.LabBooking, 0)
	if err := r.selectAll(ctx, &items, q); err != nil {
		return nil, err
	}
	return items, nil
}

func (r *repository) UpdateBooking(ctx context.Context, b model.LabBooking) error {
	q := qb.Update(bookingTableName).
		SetMap(map[string]any{
			"status":        b.Status,
			"booking_date":  b.BookingDate,
			"start_time":    b.StartTime,
			"end_time":      b.EndTime,
			"time_slot":     b.TimeSlot,
			"reviewed_by":   b.ReviewedBy,
			"reviewed_at":   b.ReviewedAt,
			"admin_comment": b.AdminComment,
			"updated_at":    time.Now().UTC(),
		}).
		Where(sq.Eq{"id": b.ID})
	n, err := r.exec(ctx, q)
	if err != nil {
		if uniqueViolation(err, bookingSeatIndex) {
			return errs.ErrSlotConflict
		}
		return errors.Wrapf(err, "update booking %d", b.ID)
	}
	if n == 0 {
		return errs.ErrNotFound
	}
	return nil
}

func (r *repository) TakenSeats(ctx context.Context, labID int64, date model.Date, timeSlot string) ([]int, error) {
	q := qb.Select("seat_number").
		From(bookingTableName).
		Where(sq.Eq{
			"lab_id":       labID,
			"booking_date": date,
			"time_slot":    timeSlot,
			"status":       bookingStatuses(model.ClaimingStatuses),
		}).
		OrderBy("seat_number")
	seats := make([]int, 0)
	if err := r.selectAll(ctx, &seats, q); err != nil {
		return nil, err
	}
	return seats, nil
}

func (r *repository) CountSeatClaims(ctx context.Context, key model.SeatKey, statuses []model.BookingStatus, excludeID int64) (int, error) {
	q := qb.Select("count(*)").
		From(bookingTableName).
		Where(sq.Eq{
			"lab_id":       key.LabID,
			"booking_date": key.Date,
			"time_slot":    key.TimeSlot,
			"seat_number":  key.Seat,
			"status":       bookingStatuses(statuses),
		})
	if excludeID != 0 {
		q = q.Where(sq.NotEq{"id": excludeID})
	}
	return r.count(ctx, q)
}

func (r *repository) CompleteBookings(ctx context.Context, ids []int64, now time.Time) ([]model.Promotion, error) {
	promoted := make([]model.Promotion, 0, len(ids))
	if len(ids) == 0 {
		return promoted, nil
	}
	q := qb.Update(bookingTableName).
		Set("status", model.BookingCompleted).
		Set("updated_at", now).
		Where(sq.Eq{"id": ids, "status": model.BookingApproved}).
		Suffix("returning id, username, 'approved' as from_status")
	if err := r.selectAll(ctx, &promoted, q); err != nil {
		return nil, errors.Wrap(err, "complete bookings")
	}
	return promoted, nil
}

func (r *repository) CountBookings(ctx context.Context, status model.BookingStatus, date *model.Date) (int, error) {
	q := qb.Select("count(*)").From(bookingTableName).Where(sq.Eq{"status": status})
	if date != nil {
		q = q.Where(sq.Eq{"booking_date": *date})
	}
	return r.count(ctx, q)
}
