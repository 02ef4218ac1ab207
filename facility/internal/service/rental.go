package service

import (
	"context"
	"strconv"
	"strings"

	"github.com/aiu-lab/facility-service/facility/internal/errs"
	"github.com/aiu-lab/facility-service/facility/internal/model"
	"github.com/aiu-lab/facility-service/facility/internal/repository"
	"github.com/pkg/errors"
	"go.uber.org/zap"
)

func (s *Service) resolveEquipment(ctx context.Context, req model.CreateRentalRequest) (model.Equipment, error) {
	if req.EquipmentID != 0 {
		return s.repo.GetEquipment(ctx, req.EquipmentID)
	}
	code := strings.TrimSpace(req.EquipmentCode)
	if code == "" {
		return model.Equipment{}, errors.Wrap(errs.ErrValidation, "equipment id or code is required")
	}
	e, err := s.repo.GetEquipmentByCode(ctx, code)
	if errors.Is(err, errs.ErrNotFound) {
		if id, perr := strconv.ParseInt(code, 10, 64); perr == nil {
			return s.repo.GetEquipment(ctx, id)
		}
	}
	return e, err
}

// CreateRental files a rental for one equipment. It starts pending unless the
// instant checkout policy is on.
func (s *Service) CreateRental(ctx context.Context, actor model.Actor, req model.CreateRentalRequest) (model.Rental, error) {
	e, err := s.resolveEquipment(ctx, req)
	if err != nil {
		return model.Rental{}, err
	}
	rent := model.Rental{
		EquipmentID:  e.ID,
		Username:     actor.Username,
		Quantity:     req.Quantity,
		DurationDays: req.Duration,
		Status:       model.RentalPending,
		Notes:        req.Notes,
	}
	if rent.Quantity <= 0 {
		rent.Quantity = 1
	}
	if rent.DurationDays <= 0 {
		rent.DurationDays = s.policy.DefaultDuration
	}

	var out model.Rental
	err = s.inTx(ctx, func(tx repository.Repository, j *journal) error {
		locked, err := tx.LockEquipment(ctx, e.ID)
		if err != nil {
			return err
		}
		if !locked.IsActive {
			return errs.ErrEquipmentInactive
		}
		if locked.Stock().Rentable() < rent.Quantity {
			return errors.Wrapf(errs.ErrOutOfStock, "%s: %d rentable", locked.Name, locked.Stock().Rentable())
		}
		if s.policy.InstantCheckout {
			rent.Issue(model.SystemActor.Username, s.now())
		}
		if out, err = tx.CreateRental(ctx, rent); err != nil {
			return err
		}
		return j.record(ctx, tx, change{
			entity: model.EntityRental, id: out.ID, action: model.ActionCreate, actor: actor.Username,
			to: string(out.Status), owner: out.Username, quantity: out.Quantity,
		})
	})
	if err != nil {
		return model.Rental{}, err
	}
	return out, nil
}

// transitionRental locks the rental, applies mutate and journals the move.
func (s *Service) transitionRental(
	ctx context.Context,
	actor model.Actor,
	id int64,
	action string,
	to model.RentalStatus,
	check func(tx repository.Repository, r model.Rental) error,
	mutate func(r *model.Rental),
	note string,
) (model.Rental, error) {
	var out model.Rental
	err := s.inTx(ctx, func(tx repository.Repository, j *journal) error {
		r, err := tx.LockRental(ctx, id)
		if err != nil {
			return err
		}
		if check != nil {
			if err := check(tx, r); err != nil {
				return err
			}
		}
		if !r.Status.CanTransition(to) {
			return conflict(model.EntityRental, id, r.Status, action)
		}
		from := r.Status
		r.Status = to
		if mutate != nil {
			mutate(&r)
		}
		if err := tx.UpdateRental(ctx, r); err != nil {
			return err
		}
		if out, err = tx.GetRental(ctx, id); err != nil {
			return err
		}
		return j.record(ctx, tx, change{
			entity: model.EntityRental, id: id, action: action, actor: actor.Username,
			from: string(from), to: string(to), owner: r.Username, note: note, quantity: r.Quantity,
		})
	})
	if err != nil {
		return model.Rental{}, err
	}
	return out, nil
}

// ApproveRental rechecks stock under the equipment lock; the pool may have
// shrunk since the request was filed.
func (s *Service) ApproveRental(ctx context.Context, actor model.Actor, id int64, comment string) (model.Rental, error) {
	if err := requireAdmin(actor); err != nil {
		return model.Rental{}, err
	}
	now := s.now()
	return s.transitionRental(ctx, actor, id, model.ActionApprove, model.RentalApproved,
		func(tx repository.Repository, r model.Rental) error {
			if r.Status != model.RentalPending {
				return conflict(model.EntityRental, id, r.Status, model.ActionApprove)
			}
			e, err := tx.LockEquipment(ctx, r.EquipmentID)
			if err != nil {
				return err
			}
			if !e.IsActive {
				return errors.Wrapf(errs.ErrEquipmentInactive, "%s", e.Name)
			}
			if rentable := e.Stock().Rentable(); rentable < r.Quantity {
				return errors.Wrapf(errs.ErrOutOfStock, "%s: %d rentable, %d requested", e.Name, rentable, r.Quantity)
			}
			return nil
		},
		func(r *model.Rental) { r.Issue(actor.Username, now) },
		comment,
	)
}

func (s *Service) RejectRental(ctx context.Context, actor model.Actor, id int64, reason string) (model.Rental, error) {
	if err := requireAdmin(actor); err != nil {
		return model.Rental{}, err
	}
	now := s.now()
	return s.transitionRental(ctx, actor, id, model.ActionReject, model.RentalRejected, nil,
		func(r *model.Rental) {
			r.ReviewedBy = ptr(actor.Username)
			r.ReviewedAt = &now
			if reason != "" {
				r.RejectReason = ptr(reason)
			}
		},
		reason,
	)
}

func (s *Service) CancelRental(ctx context.Context, actor model.Actor, id int64) (model.Rental, error) {
	return s.transitionRental(ctx, actor, id, model.ActionCancel, model.RentalRejected,
		func(_ repository.Repository, r model.Rental) error {
			if err := requireOwner(actor, r.Username); err != nil {
				return err
			}
			if r.Status != model.RentalPending {
				return conflict(model.EntityRental, id, r.Status, model.ActionCancel)
			}
			return nil
		},
		func(r *model.Rental) { r.RejectReason = ptr("cancelled by owner") },
		"cancelled by owner",
	)
}

// ActivateRental marks an approved rental as picked up.
func (s *Service) ActivateRental(ctx context.Context, actor model.Actor, id int64) (model.Rental, error) {
	if err := requireAdmin(actor); err != nil {
		return model.Rental{}, err
	}
	return s.transitionRental(ctx, actor, id, model.ActionActivate, model.RentalActive,
		func(_ repository.Repository, r model.Rental) error {
			if r.Status != model.RentalApproved {
				return conflict(model.EntityRental, id, r.Status, model.ActionActivate)
			}
			return nil
		}, nil, "")
}

// ReportDamage keeps the unit out of the pool until it is returned.
func (s *Service) ReportDamage(ctx context.Context, actor model.Actor, id int64, note string) (model.Rental, error) {
	if err := requireAdmin(actor); err != nil {
		return model.Rental{}, err
	}
	return s.transitionRental(ctx, actor, id, model.ActionDamage, model.RentalDamaged, nil, nil, note)
}

// ReturnRental frees the unit. Returning a returned rental is a no-op.
func (s *Service) ReturnRental(ctx context.Context, actor model.Actor, id int64) (model.Rental, error) {
	cur, err := s.repo.GetRental(ctx, id)
	if err != nil {
		return model.Rental{}, err
	}
	if err := requireVisible(actor, cur.Username); err != nil {
		return model.Rental{}, err
	}
	if cur.Status == model.RentalReturned {
		return cur, nil
	}
	now := s.now()
	out, err := s.transitionRental(ctx, actor, id, model.ActionReturn, model.RentalReturned,
		func(_ repository.Repository, r model.Rental) error {
			if r.Status == model.RentalReturned {
				return errAlreadyReturned
			}
			return nil
		},
		func(r *model.Rental) {
			r.ActualReturnDate = &now
			r.ReturnedTo = ptr(actor.Username)
		},
		"",
	)
	if errors.Is(err, errAlreadyReturned) {
		return s.repo.GetRental(ctx, id)
	}
	return out, err
}

var errAlreadyReturned = errors.New("already returned")

func (s *Service) GetRental(ctx context.Context, actor model.Actor, id int64) (model.Rental, error) {
	if _, err := s.SweepOverdue(ctx); err != nil {
		return model.Rental{}, err
	}
	r, err := s.repo.GetRental(ctx, id)
	if err != nil {
		return model.Rental{}, err
	}
	if err := requireVisible(actor, r.Username); err != nil {
		return model.Rental{}, err
	}
	return r, nil
}

func (s *Service) ListRentals(ctx context.Context, actor model.Actor, f model.RentalFilter) ([]model.Rental, error) {
	if _, err := s.SweepOverdue(ctx); err != nil {
		return nil, err
	}
	if !actor.Admin {
		f.Username = actor.Username
	}
	return s.repo.ListRentals(ctx, f)
}

func (s *Service) RentalHistory(ctx context.Context, actor model.Actor, id int64) ([]model.StatusHistory, error) {
	r, err := s.repo.GetRental(ctx, id)
	if err != nil {
		return nil, err
	}
	if err := requireVisible(actor, r.Username); err != nil {
		return nil, err
	}
	return s.repo.ListHistory(ctx, model.EntityRental, id)
}

// SweepOverdue promotes approved or active rentals past their expected return.
func (s *Service) SweepOverdue(ctx context.Context) (int, error) {
	var n int
	err := s.inTx(ctx, func(tx repository.Repository, j *journal) error {
		promoted, err := tx.MarkOverdue(ctx, s.now())
		if err != nil {
			return err
		}
		for _, p := range promoted {
			if err := j.record(ctx, tx, change{
				entity: model.EntityRental, id: p.ID, action: model.ActionOverdue, actor: model.SystemActor.Username,
				from: p.From, to: string(model.RentalOverdue), owner: p.Username,
			}); err != nil {
				return err
			}
		}
		n = len(promoted)
		return nil
	})
	if err != nil {
		return 0, errors.Wrap(err, "sweep overdue")
	}
	if n > 0 {
		s.log.Info("rentals marked overdue", zap.Int("count", n))
	}
	return n, nil
}
