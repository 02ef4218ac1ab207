package service

import (
	"context"
	"sort"
	"strconv"

	"github.com/aiu-lab/facility-service/facility/internal/errs"
	"github.com/aiu-lab/facility-service/facility/internal/model"
	"github.com/aiu-lab/facility-service/facility/internal/repository"
	"github.com/pkg/errors"
)

// CreateBundle merges the cart by equipment and checks every line against the
// rentable pool before persisting the request and its items together.
func (s *Service) CreateBundle(ctx context.Context, actor model.Actor, req model.CreateBundleRequest) (model.EquipmentRequest, error) {
	if len(req.CartItems) == 0 {
		return model.EquipmentRequest{}, errs.ErrEmptyCart
	}
	lines := model.MergeCart(req.CartItems, s.policy.DefaultDuration)

	// lock in ascending id order so concurrent carts cannot deadlock
	order := make([]int, len(lines))
	for i := range order {
		order[i] = i
	}
	sort.Slice(order, func(a, b int) bool { return lines[order[a]].EquipmentID < lines[order[b]].EquipmentID })

	var out model.EquipmentRequest
	err := s.inTx(ctx, func(tx repository.Repository, j *journal) error {
		for _, i := range order {
			line := lines[i]
			e, err := tx.LockEquipment(ctx, line.EquipmentID)
			if err != nil {
				return err
			}
			if !e.IsActive {
				return errors.Wrapf(errs.ErrEquipmentInactive, "%s", e.Name)
			}
			if rentable := e.Stock().Rentable(); rentable < line.Quantity {
				return errors.Wrapf(errs.ErrInsufficientStock, "%s: %d rentable, %d requested", e.Name, rentable, line.Quantity)
			}
		}
		bundle := model.EquipmentRequest{
			Username: actor.Username,
			Status:   model.RequestPending,
			Notes:    req.Notes,
			Items:    make([]model.RequestItem, 0, len(lines)),
		}
		for _, line := range lines {
			bundle.Items = append(bundle.Items, model.RequestItem{
				EquipmentID:  line.EquipmentID,
				Quantity:     line.Quantity,
				DurationDays: line.Duration,
				Notes:        line.Notes,
				Status:       model.ItemPending,
			})
		}
		var err error
		if out, err = tx.CreateRequest(ctx, bundle); err != nil {
			return err
		}
		return j.record(ctx, tx, change{
			entity: model.EntityRequest, id: out.ID, action: model.ActionCreate, actor: actor.Username,
			to: string(out.Status), owner: out.Username, note: strconv.Itoa(len(out.Items)) + " items",
		})
	})
	if err != nil {
		return model.EquipmentRequest{}, err
	}
	return out, nil
}

// reviewItem locks request, then item, then (via review) equipment, and refolds the bundle.
func (s *Service) reviewItem(
	ctx context.Context,
	actor model.Actor,
	requestID, itemID int64,
	action string,
	review func(tx repository.Repository, j *journal, req model.EquipmentRequest, it *model.RequestItem) error,
) (model.EquipmentRequest, error) {
	if err := requireAdmin(actor); err != nil {
		return model.EquipmentRequest{}, err
	}
	var out model.EquipmentRequest
	err := s.inTx(ctx, func(tx repository.Repository, j *journal) error {
		req, err := tx.LockRequest(ctx, requestID)
		if err != nil {
			return err
		}
		idx := -1
		for i := range req.Items {
			if req.Items[i].ID == itemID {
				idx = i
			}
		}
		if idx < 0 {
			return errors.Wrapf(errs.ErrNotFound, "item %d in request %d", itemID, requestID)
		}
		it, err := tx.LockItem(ctx, itemID)
		if err != nil {
			return err
		}
		if it.Status != model.ItemPending {
			return conflict(model.EntityItem, itemID, it.Status, action)
		}
		from := it.Status
		if err := review(tx, j, req, &it); err != nil {
			return err
		}
		if err := tx.UpdateItem(ctx, it); err != nil {
			return err
		}
		if err := j.record(ctx, tx, change{
			entity: model.EntityItem, id: it.ID, action: action, actor: actor.Username,
			from: string(from), to: string(it.Status), owner: req.Username, note: derefString(it.RejectReason),
			quantity: it.Quantity,
		}); err != nil {
			return err
		}
		req.Items[idx] = it
		if err := s.refold(ctx, tx, j, actor, req, "item_"+action); err != nil {
			return err
		}
		out, err = tx.GetRequest(ctx, requestID)
		return err
	})
	if err != nil {
		return model.EquipmentRequest{}, err
	}
	return out, nil
}

func (s *Service) refold(ctx context.Context, tx repository.Repository, j *journal, actor model.Actor, req model.EquipmentRequest, action string) error {
	next := model.FoldStatus(req.Status, req.ItemStatuses())
	if next == req.Status {
		return nil
	}
	if err := tx.UpdateRequestStatus(ctx, req.ID, next); err != nil {
		return err
	}
	return j.record(ctx, tx, change{
		entity: model.EntityRequest, id: req.ID, action: action, actor: actor.Username,
		from: string(req.Status), to: string(next), owner: req.Username,
	})
}

// ApproveItem spawns exactly one approved rental carrying the item quantity.
func (s *Service) ApproveItem(ctx context.Context, actor model.Actor, requestID, itemID int64) (model.EquipmentRequest, error) {
	now := s.now()
	return s.reviewItem(ctx, actor, requestID, itemID, model.ActionApprove,
		func(tx repository.Repository, j *journal, req model.EquipmentRequest, it *model.RequestItem) error {
			e, err := tx.LockEquipment(ctx, it.EquipmentID)
			if err != nil {
				return err
			}
			if !e.IsActive {
				return errors.Wrapf(errs.ErrEquipmentInactive, "%s", e.Name)
			}
			if rentable := e.Stock().Rentable(); rentable < it.Quantity {
				return errors.Wrapf(errs.ErrInsufficientStock, "%s: %d rentable, %d requested", e.Name, rentable, it.Quantity)
			}
			rent := model.Rental{
				EquipmentID:   it.EquipmentID,
				Username:      req.Username,
				Quantity:      it.Quantity,
				DurationDays:  it.DurationDays,
				Notes:         it.Notes,
				RequestItemID: &it.ID,
			}
			rent.Issue(actor.Username, now)
			created, err := tx.CreateRental(ctx, rent)
			if err != nil {
				return err
			}
			it.Status = model.ItemApproved
			it.ReviewedBy = ptr(actor.Username)
			it.ReviewedAt = &now
			it.RentalID = &created.ID
			return j.record(ctx, tx, change{
				entity: model.EntityRental, id: created.ID, action: model.ActionCreate, actor: actor.Username,
				to: string(created.Status), owner: created.Username, quantity: created.Quantity,
				note: "request item " + strconv.FormatInt(it.ID, 10),
			})
		},
	)
}

func (s *Service) RejectItem(ctx context.Context, actor model.Actor, requestID, itemID int64, reason string) (model.EquipmentRequest, error) {
	now := s.now()
	return s.reviewItem(ctx, actor, requestID, itemID, model.ActionReject,
		func(_ repository.Repository, _ *journal, _ model.EquipmentRequest, it *model.RequestItem) error {
			it.Status = model.ItemRejected
			it.ReviewedBy = ptr(actor.Username)
			it.ReviewedAt = &now
			if reason != "" {
				it.RejectReason = ptr(reason)
			}
			return nil
		},
	)
}

// CancelBundle cancels a pending or partial bundle and only its still-pending items.
func (s *Service) CancelBundle(ctx context.Context, actor model.Actor, requestID int64) (model.EquipmentRequest, error) {
	var out model.EquipmentRequest
	err := s.inTx(ctx, func(tx repository.Repository, j *journal) error {
		req, err := tx.LockRequest(ctx, requestID)
		if err != nil {
			return err
		}
		if err := requireOwner(actor, req.Username); err != nil {
			return err
		}
		if req.Status != model.RequestPending && req.Status != model.RequestPartial {
			return conflict(model.EntityRequest, requestID, req.Status, model.ActionCancel)
		}
		for _, it := range req.Items {
			if it.Status != model.ItemPending {
				continue
			}
			it.Status = model.ItemCancelled
			if err := tx.UpdateItem(ctx, it); err != nil {
				return err
			}
			if err := j.record(ctx, tx, change{
				entity: model.EntityItem, id: it.ID, action: model.ActionCancel, actor: actor.Username,
				from: string(model.ItemPending), to: string(model.ItemCancelled), owner: req.Username,
			}); err != nil {
				return err
			}
		}
		if err := tx.UpdateRequestStatus(ctx, requestID, model.RequestCancelled); err != nil {
			return err
		}
		if err := j.record(ctx, tx, change{
			entity: model.EntityRequest, id: requestID, action: model.ActionCancel, actor: actor.Username,
			from: string(req.Status), to: string(model.RequestCancelled), owner: req.Username,
		}); err != nil {
			return err
		}
		out, err = tx.GetRequest(ctx, requestID)
		return err
	})
	if err != nil {
		return model.EquipmentRequest{}, err
	}
	return out, nil
}

func (s *Service) GetBundle(ctx context.Context, actor model.Actor, id int64) (model.EquipmentRequest, error) {
	req, err := s.repo.GetRequest(ctx, id)
	if err != nil {
		return model.EquipmentRequest{}, err
	}
	if err := requireVisible(actor, req.Username); err != nil {
		return model.EquipmentRequest{}, err
	}
	return req, nil
}

func (s *Service) ListBundles(ctx context.Context, actor model.Actor, f model.RequestFilter) ([]model.EquipmentRequest, error) {
	if !actor.Admin {
		f.Username = actor.Username
	}
	return s.repo.ListRequests(ctx, f)
}

func (s *Service) BundleHistory(ctx context.Context, actor model.Actor, id int64) ([]model.StatusHistory, error) {
	req, err := s.GetBundle(ctx, actor, id)
	if err != nil {
		return nil, err
	}
	history, err := s.repo.ListHistory(ctx, model.EntityRequest, id)
	if err != nil {
		return nil, err
	}
	for _, it := range req.Items {
		items, err := s.repo.ListHistory(ctx, model.EntityItem, it.ID)
		if err != nil {
			return nil, err
		}
		history = append(history, items...)
	}
	sort.SliceStable(history, func(i, j int) bool { return history[i].ID < history[j].ID })
	return history, nil
}

func derefString(p *string) string {
	if p == nil {
		return ""
	}
	return *p
}
