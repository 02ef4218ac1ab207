package service

import (
	"context"
	"fmt"

	"github.com/aiu-lab/facility-service/facility/internal/errs"
	"github.com/aiu-lab/facility-service/facility/internal/model"
	"github.com/aiu-lab/facility-service/facility/internal/repository"
	"github.com/pkg/errors"
	"go.uber.org/zap"
)

func (s *Service) CreateBooking(ctx context.Context, actor model.Actor, req model.CreateBookingRequest) (model.LabBooking, error) {
	slot, err := model.ParseTimeSlot(req.TimeSlot)
	if err != nil {
		return model.LabBooking{}, err
	}
	date, err := model.ParseDate(req.Date)
	if err != nil {
		return model.LabBooking{}, err
	}
	if err := model.CheckNotPast(date, slot, s.now(), s.loc); err != nil {
		return model.LabBooking{}, err
	}
	if req.SeatNumber < model.SeatMin || req.SeatNumber > model.SeatMax {
		return model.LabBooking{}, errors.Wrapf(errs.ErrValidation, "seat must be within %d..%d", model.SeatMin, model.SeatMax)
	}
	lab, err := s.resolveLab(ctx, req.LabID, req.LabRoom)
	if err != nil {
		return model.LabBooking{}, err
	}
	if !lab.IsActive {
		return model.LabBooking{}, errors.Wrapf(errs.ErrValidation, "lab %q is not active", lab.Name)
	}

	b := model.LabBooking{
		LabID:        lab.ID,
		Username:     actor.Username,
		BookingDate:  date,
		SeatNumber:   req.SeatNumber,
		Purpose:      req.Purpose,
		Participants: req.Participants,
		Status:       model.BookingPending,
	}
	if b.Participants <= 0 {
		b.Participants = 1
	}
	b.SetSlot(slot)

	var out model.LabBooking
	err = s.inTx(ctx, func(tx repository.Repository, j *journal) error {
		if _, err := tx.LockLab(ctx, lab.ID); err != nil {
			return err
		}
		key := model.SeatKey{LabID: lab.ID, Date: date, TimeSlot: b.TimeSlot, Seat: b.SeatNumber}
		n, err := tx.CountSeatClaims(ctx, key, model.ClaimingStatuses, 0)
		if err != nil {
			return err
		}
		if n > 0 {
			return errors.Wrapf(errs.ErrSlotConflict, "seat %d in %s on %s %s", b.SeatNumber, lab.Name, date, b.TimeSlot)
		}
		if out, err = tx.CreateBooking(ctx, b); err != nil {
			return err
		}
		return j.record(ctx, tx, change{
			entity: model.EntityBooking, id: out.ID, action: model.ActionCreate, actor: actor.Username,
			to: string(out.Status), owner: out.Username,
		})
	})
	if err != nil {
		return model.LabBooking{}, err
	}
	return out, nil
}

func (s *Service) Availability(ctx context.Context, q model.AvailabilityQuery) (model.Availability, error) {
	slot, err := model.ParseTimeSlot(q.TimeSlot)
	if err != nil {
		return model.Availability{}, err
	}
	date, err := model.ParseDate(q.Date)
	if err != nil {
		return model.Availability{}, err
	}
	lab, err := s.resolveLab(ctx, q.LabID, q.LabRoom)
	if err != nil {
		return model.Availability{}, err
	}
	taken, err := s.repo.TakenSeats(ctx, lab.ID, date, slot.String())
	if err != nil {
		return model.Availability{}, err
	}
	return model.Availability{
		LabID:          lab.ID,
		LabRoom:        lab.Name,
		Date:           date,
		TimeSlot:       slot.String(),
		AvailableSeats: model.FreeSeats(taken),
	}, nil
}

// transitionBooking locks the booking, runs check and mutate, and journals the move.
func (s *Service) transitionBooking(
	ctx context.Context,
	actor model.Actor,
	id int64,
	action string,
	check func(tx repository.Repository, b model.LabBooking) error,
	mutate func(b *model.LabBooking) string,
) (model.LabBooking, error) {
	var out model.LabBooking
	err := s.inTx(ctx, func(tx repository.Repository, j *journal) error {
		b, err := tx.LockBooking(ctx, id)
		if err != nil {
			return err
		}
		if err := check(tx, b); err != nil {
			return err
		}
		from := b.Status
		note := mutate(&b)
		if err := tx.UpdateBooking(ctx, b); err != nil {
			return err
		}
		if out, err = tx.GetBooking(ctx, id); err != nil {
			return err
		}
		return j.record(ctx, tx, change{
			entity: model.EntityBooking, id: id, action: action, actor: actor.Username,
			from: string(from), to: string(b.Status), owner: b.Username, note: note,
		})
	})
	if err != nil {
		return model.LabBooking{}, err
	}
	return out, nil
}

func requireBookingStatus(b model.LabBooking, want model.BookingStatus, action string) error {
	if b.Status != want {
		return conflict(model.EntityBooking, b.ID, b.Status, action)
	}
	return nil
}

// ApproveBooking refuses when another approved booking already holds the seat.
func (s *Service) ApproveBooking(ctx context.Context, actor model.Actor, id int64, comment string) (model.LabBooking, error) {
	if err := requireAdmin(actor); err != nil {
		return model.LabBooking{}, err
	}
	now := s.now()
	return s.transitionBooking(ctx, actor, id, model.ActionApprove,
		func(tx repository.Repository, b model.LabBooking) error {
			if err := requireBookingStatus(b, model.BookingPending, model.ActionApprove); err != nil {
				return err
			}
			if _, err := tx.LockLab(ctx, b.LabID); err != nil {
				return err
			}
			key := model.SeatKey{LabID: b.LabID, Date: b.BookingDate, TimeSlot: b.TimeSlot, Seat: b.SeatNumber}
			n, err := tx.CountSeatClaims(ctx, key, []model.BookingStatus{model.BookingApproved}, b.ID)
			if err != nil {
				return err
			}
			if n > 0 {
				return errors.Wrapf(errs.ErrSlotConflict, "seat %d already approved for %s %s", b.SeatNumber, b.BookingDate, b.TimeSlot)
			}
			return nil
		},
		func(b *model.LabBooking) string {
			b.Status = model.BookingApproved
			b.ReviewedBy = ptr(actor.Username)
			b.ReviewedAt = &now
			if comment != "" {
				b.AdminComment = ptr(comment)
			}
			return comment
		},
	)
}

func (s *Service) RejectBooking(ctx context.Context, actor model.Actor, id int64, comment string) (model.LabBooking, error) {
	if err := requireAdmin(actor); err != nil {
		return model.LabBooking{}, err
	}
	now := s.now()
	return s.transitionBooking(ctx, actor, id, model.ActionReject,
		func(_ repository.Repository, b model.LabBooking) error {
			return requireBookingStatus(b, model.BookingPending, model.ActionReject)
		},
		func(b *model.LabBooking) string {
			b.Status = model.BookingRejected
			b.ReviewedBy = ptr(actor.Username)
			b.ReviewedAt = &now
			if comment != "" {
				b.AdminComment = ptr(comment)
			}
			return comment
		},
	)
}

// CancelBooking withdraws a pending booking; it ends up rejected.
func (s *Service) CancelBooking(ctx context.Context, actor model.Actor, id int64) (model.LabBooking, error) {
	return s.transitionBooking(ctx, actor, id, model.ActionCancel,
		func(_ repository.Repository, b model.LabBooking) error {
			if err := requireOwner(actor, b.Username); err != nil {
				return err
			}
			return requireBookingStatus(b, model.BookingPending, model.ActionCancel)
		},
		func(b *model.LabBooking) string {
			b.Status = model.BookingRejected
			return "cancelled by owner"
		},
	)
}

func (s *Service) ExtendBooking(ctx context.Context, actor model.Actor, id int64, req model.ExtendBookingRequest) (model.LabBooking, error) {
	slot, err := model.ParseTimeSlot(req.TimeSlot)
	if err != nil {
		return model.LabBooking{}, err
	}
	var previous string
	return s.transitionBooking(ctx, actor, id, model.ActionExtend,
		func(tx repository.Repository, b model.LabBooking) error {
			if err := requireOwner(actor, b.Username); err != nil {
				return err
			}
			if err := requireBookingStatus(b, model.BookingApproved, model.ActionExtend); err != nil {
				return err
			}
			if err := model.CheckNotPast(b.BookingDate, slot, s.now(), s.loc); err != nil {
				return err
			}
			if _, err := tx.LockLab(ctx, b.LabID); err != nil {
				return err
			}
			key := model.SeatKey{LabID: b.LabID, Date: b.BookingDate, TimeSlot: slot.String(), Seat: b.SeatNumber}
			n, err := tx.CountSeatClaims(ctx, key, model.ClaimingStatuses, b.ID)
			if err != nil {
				return err
			}
			if n > 0 {
				return errors.Wrapf(errs.ErrSlotConflict, "seat %d is taken for %s", b.SeatNumber, slot)
			}
			previous = b.TimeSlot
			return nil
		},
		func(b *model.LabBooking) string {
			b.SetSlot(slot)
			return fmt.Sprintf("%s -> %s", previous, slot)
		},
	)
}

// CheckoutBooking ends an approved booking early.
func (s *Service) CheckoutBooking(ctx context.Context, actor model.Actor, id int64) (model.LabBooking, error) {
	return s.transitionBooking(ctx, actor, id, model.ActionCheckout,
		func(_ repository.Repository, b model.LabBooking) error {
			if err := requireOwner(actor, b.Username); err != nil {
				return err
			}
			return requireBookingStatus(b, model.BookingApproved, model.ActionCheckout)
		},
		func(b *model.LabBooking) string {
			b.Status = model.BookingCompleted
			return ""
		},
	)
}

func (s *Service) GetBooking(ctx context.Context, actor model.Actor, id int64) (model.LabBooking, error) {
	if _, err := s.SweepCompleted(ctx); err != nil {
		return model.LabBooking{}, err
	}
	b, err := s.repo.GetBooking(ctx, id)
	if err != nil {
		return model.LabBooking{}, err
	}
	if err := requireVisible(actor, b.Username); err != nil {
		return model.LabBooking{}, err
	}
	return b, nil
}

func (s *Service) ListBookings(ctx context.Context, actor model.Actor, f model.BookingFilter) ([]model.LabBooking, error) {
	if _, err := s.SweepCompleted(ctx); err != nil {
		return nil, err
	}
	if !actor.Admin {
		f.Username = actor.Username
	}
	return s.repo.ListBookings(ctx, f)
}

func (s *Service) BookingHistory(ctx context.Context, actor model.Actor, id int64) ([]model.StatusHistory, error) {
	b, err := s.repo.GetBooking(ctx, id)
	if err != nil {
		return nil, err
	}
	if err := requireVisible(actor, b.Username); err != nil {
		return nil, err
	}
	return s.repo.ListHistory(ctx, model.EntityBooking, id)
}

// SweepCompleted completes approved bookings whose slot has ended in the
// deployment zone.
func (s *Service) SweepCompleted(ctx context.Context) (int, error) {
	now := s.now()
	var n int
	err := s.inTx(ctx, func(tx repository.Repository, j *journal) error {
		approved, err := tx.ListBookings(ctx, model.BookingFilter{Status: model.BookingApproved})
		if err != nil {
			return err
		}
		ids := make([]int64, 0)
		for _, b := range approved {
			if b.Finished(now, s.loc) {
				ids = append(ids, b.ID)
			}
		}
		promoted, err := tx.CompleteBookings(ctx, ids, now)
		if err != nil {
			return err
		}
		for _, p := range promoted {
			if err := j.record(ctx, tx, change{
				entity: model.EntityBooking, id: p.ID, action: model.ActionComplete, actor: model.SystemActor.Username,
				from: p.From, to: string(model.BookingCompleted), owner: p.Username,
			}); err != nil {
				return err
			}
		}
		n = len(promoted)
		return nil
	})
	if err != nil {
		return 0, errors.Wrap(err, "sweep completed")
	}
	if n > 0 {
		s.log.Info("bookings completed", zap.Int("count", n))
	}
	return n, nil
}
