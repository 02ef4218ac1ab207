package memory

import (
	"context"
	"sort"
	"time"

	"github.com/aiu-lab/facility-service/facility/internal/errs"
	"github.com/aiu-lab/facility-service/facility/internal/model"
	"github.com/pkg/errors"
)

func (r *Repository) request(id int64) (model.EquipmentRequest, error) {
	req, ok := r.st().requests[id]
	if !ok {
		return model.EquipmentRequest{}, errors.Wrapf(errs.ErrNotFound, "request %d", id)
	}
	req.Items = make([]model.RequestItem, 0)
	for itemID, it := range r.st().items {
		if it.RequestID == id {
			req.Items = append(req.Items, r.item(itemID))
		}
	}
	sort.Slice(req.Items, func(i, j int) bool { return req.Items[i].ID < req.Items[j].ID })
	return req, nil
}

func (r *Repository) item(id int64) model.RequestItem {
	it := r.st().items[id]
	it.EquipmentName = r.st().equipment[it.EquipmentID].Name
	return it
}

func (r *Repository) CreateRequest(_ context.Context, req model.EquipmentRequest) (model.EquipmentRequest, error) {
	defer r.lock()()
	for _, it := range req.Items {
		if _, ok := r.st().equipment[it.EquipmentID]; !ok {
			return model.EquipmentRequest{}, errors.Wrapf(errs.ErrNotFound, "equipment %d", it.EquipmentID)
		}
	}
	now := time.Now().UTC()
	req.ID = r.nextID()
	req.CreatedAt, req.UpdatedAt = now, now
	for _, it := range req.Items {
		it.ID = r.nextID()
		it.RequestID = req.ID
		it.CreatedAt, it.UpdatedAt = now, now
		r.st().items[it.ID] = it
	}
	req.Items = nil
	r.st().requests[req.ID] = req
	return r.request(req.ID)
}

func (r *Repository) GetRequest(_ context.Context, id int64) (model.EquipmentRequest, error) {
	defer r.lock()()
	return r.request(id)
}

func (r *Repository) LockRequest(ctx context.Context, id int64) (model.EquipmentRequest, error) {
	return r.GetRequest(ctx, id)
}

func (r *Repository) ListRequests(_ context.Context, f model.RequestFilter) ([]model.EquipmentRequest, error) {
	defer r.lock()()
	out := make([]model.EquipmentRequest, 0)
	for id, req := range r.st().requests {
		if f.Username != "" && req.Username != f.Username {
			continue
		}
		if f.Status != "" && req.Status != f.Status {
			continue
		}
		req, _ = r.request(id)
		out = append(out, req)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID > out[j].ID })
	return out, nil
}

func (r *Repository) UpdateRequestStatus(_ context.Context, id int64, status model.RequestStatus) error {
	defer r.lock()()
	req, ok := r.st().requests[id]
	if !ok {
		return errs.ErrNotFound
	}
	req.Status = status
	req.UpdatedAt = time.Now().UTC()
	r.st().requests[id] = req
	return nil
}

func (r *Repository) LockItem(_ context.Context, id int64) (model.RequestItem, error) {
	defer r.lock()()
	if _, ok := r.st().items[id]; !ok {
		return model.RequestItem{}, errors.Wrapf(errs.ErrNotFound, "request item %d", id)
	}
	return r.item(id), nil
}

func (r *Repository) UpdateItem(_ context.Context, it model.RequestItem) error {
	defer r.lock()()
	cur, ok := r.st().items[it.ID]
	if !ok {
		return errs.ErrNotFound
	}
	cur.Status = it.Status
	cur.ReviewedBy = it.ReviewedBy
	cur.ReviewedAt = it.ReviewedAt
	cur.RejectReason = it.RejectReason
	cur.RentalID = it.RentalID
	cur.UpdatedAt = time.Now().UTC()
	r.st().items[it.ID] = cur
	return nil
}

func (r *Repository) CountOpenRequests(_ context.Context) (int, error) {
	defer r.lock()()
	n := 0
	for _, req := range r.st().requests {
		if req.Status == model.RequestPending || req.Status == model.RequestPartial {
			n++
		}
	}
	return n, nil
}

func (r *Repository) AddHistory(_ context.Context, h model.StatusHistory) error {
	defer r.lock()()
	h.ID = r.nextID()
	h.CreatedAt = time.Now().UTC()
	r.st().history = append(r.st().history, h)
	return nil
}

func (r *Repository) ListHistory(_ context.Context, entity string, entityID int64) ([]model.StatusHistory, error) {
	defer r.lock()()
	out := make([]model.StatusHistory, 0)
	for _, h := range r.st().history {
		if h.Entity == entity && h.EntityID == entityID {
			out = append(out, h)
		}
	}
	return out, nil
}
