package memory

import (
	"context"
	"sort"
	"time"

	"github.com/aiu-lab/facility-service/facility/internal/errs"
	"github.com/aiu-lab/facility-service/facility/internal/model"
	"github.com/pkg/errors"
)

func (r *Repository) booking(id int64) (model.LabBooking, error) {
	b, ok := r.st().bookings[id]
	if !ok {
		return model.LabBooking{}, errors.Wrapf(errs.ErrNotFound, "booking %d", id)
	}
	b.LabName = r.st().labs[b.LabID].Name
	return b, nil
}

func claiming(s model.BookingStatus, statuses []model.BookingStatus) bool {
	for _, c := range statuses {
		if s == c {
			return true
		}
	}
	return false
}

// seatClaims mirrors the partial unique index on claiming bookings.
func (r *Repository) seatClaims(key model.SeatKey, statuses []model.BookingStatus, excludeID int64) int {
	n := 0
	for id, b := range r.st().bookings {
		if id == excludeID || !claiming(b.Status, statuses) {
			continue
		}
		if b.LabID == key.LabID && b.BookingDate.Equal(key.Date.Time) && b.TimeSlot == key.TimeSlot && b.SeatNumber == key.Seat {
			n++
		}
	}
	return n
}

func seatKey(b model.LabBooking) model.SeatKey {
	return model.SeatKey{LabID: b.LabID, Date: b.BookingDate, TimeSlot: b.TimeSlot, Seat: b.SeatNumber}
}

func (r *Repository) CreateBooking(_ context.Context, b model.LabBooking) (model.LabBooking, error) {
	defer r.lock()()
	if _, ok := r.st().labs[b.LabID]; !ok {
		return model.LabBooking{}, errors.Wrapf(errs.ErrNotFound, "lab %d", b.LabID)
	}
	if claiming(b.Status, model.ClaimingStatuses) && r.seatClaims(seatKey(b), model.ClaimingStatuses, 0) > 0 {
		return model.LabBooking{}, errs.ErrSlotConflict
	}
	now := time.Now().UTC()
	b.ID = r.nextID()
	b.CreatedAt, b.UpdatedAt = now, now
	r.st().bookings[b.ID] = b
	return r.booking(b.ID)
}

func (r *Repository) GetBooking(_ context.Context, id int64) (model.LabBooking, error) {
	defer r.lock()()
	return r.booking(id)
}

func (r *Repository) LockBooking(ctx context.Context, id int64) (model.LabBooking, error) {
	return r.GetBooking(ctx, id)
}

func (r *Repository) ListBookings(_ context.Context, f model.BookingFilter) ([]model.LabBooking, error) {
	defer r.lock()()
	out := make([]model.LabBooking, 0)
	for id, b := range r.st().bookings {
		if f.Username != "" && b.Username != f.Username {
			continue
		}
		if f.Status != "" && b.Status != f.Status {
			continue
		}
		if f.LabID != 0 && b.LabID != f.LabID {
			continue
		}
		if f.Date != nil && !b.BookingDate.Equal(f.Date.Time) {
			continue
		}
		b, _ = r.booking(id)
		out = append(out, b)
	}
	sort.Slice(out, func(i, j int) bool {
		if !out[i].BookingDate.Equal(out[j].BookingDate.Time) {
			return out[i].BookingDate.After(out[j].BookingDate.Time)
		}
		if out[i].StartTime != out[j].StartTime {
			return out[i].StartTime < out[j].StartTime
		}
		return out[i].ID < out[j].ID
	})
	return out, nil
}

func (r *Repository) UpdateBooking(_ context.Context, b model.LabBooking) error {
	defer r.lock()()
	cur, ok := r.st().bookings[b.ID]
	if !ok {
		return errs.ErrNotFound
	}
	cur.Status = b.Status
	cur.BookingDate = b.BookingDate
	cur.StartTime = b.StartTime
	cur.EndTime = b.EndTime
	cur.TimeSlot = b.TimeSlot
	cur.ReviewedBy = b.ReviewedBy
	cur.ReviewedAt = b.ReviewedAt
	cur.AdminComment = b.AdminComment
	if claiming(cur.Status, model.ClaimingStatuses) && r.seatClaims(seatKey(cur), model.ClaimingStatuses, cur.ID) > 0 {
		return errs.ErrSlotConflict
	}
	cur.UpdatedAt = time.Now().UTC()
	r.st().bookings[b.ID] = cur
	return nil
}

func (r *Repository) TakenSeats(_ context.Context, labID int64, date model.Date, timeSlot string) ([]int, error) {
	defer r.lock()()
	seats := make([]int, 0)
	for _, b := range r.st().bookings {
		if b.LabID == labID && b.BookingDate.Equal(date.Time) && b.TimeSlot == timeSlot && claiming(b.Status, model.ClaimingStatuses) {
			seats = append(seats, b.SeatNumber)
		}
	}
	sort.Ints(seats)
	return seats, nil
}

func (r *Repository) CountSeatClaims(_ context.Context, key model.SeatKey, statuses []model.BookingStatus, excludeID int64) (int, error) {
	defer r.lock()()
	return r.seatClaims(key, statuses, excludeID), nil
}

func (r *Repository) CompleteBookings(_ context.Context, ids []int64, now time.Time) ([]model.Promotion, error) {
	defer r.lock()()
	promoted := make([]model.Promotion, 0, len(ids))
	for _, id := range ids {
		b, ok := r.st().bookings[id]
		if !ok || b.Status != model.BookingApproved {
			continue
		}
		b.Status = model.BookingCompleted
		b.UpdatedAt = now
		r.st().bookings[id] = b
		promoted = append(promoted, model.Promotion{ID: id, Username: b.Username, From: string(model.BookingApproved)})
	}
	return promoted, nil
}

func (r *Repository) CountBookings(_ context.Context, status model.BookingStatus, date *model.Date) (int, error) {
	defer r.lock()()
	n := 0
	for _, b := range r.st().bookings {
		if b.Status != status {
			continue
		}
		if date != nil && !b.BookingDate.Equal(date.Time) {
			continue
		}
		n++
	}
	return n, nil
}
