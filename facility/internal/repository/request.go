package repository

import (
	"context"
	"time"

	sq "github.com/Masterminds/squirrel"
	"github.com/aiu-lab/facility-service/facility/internal/errs"
	"github.com/aiu-lab/facility-service/facility/internal/model"
	"github.com/pkg/errors"
)

var requestColumns = []string{"id", "username", "status", "notes", "created_at", "updated_at"}

func selectItems() sq.SelectBuilder {
	return qb.Select(
		"i.id", "i.request_id", "i.equipment_id", "e.name as equipment_name", "i.quantity",
		"i.duration_days", "i.notes", "i.status", "i.reviewed_by", "i.reviewed_at",
		"i.reject_reason", "i.rental_id", "i.created_at", "i.updated_at",
	).From(itemTableName + " i").
		Join(equipmentTableName + " e on e.id = i.equipment_id")
}

func (r *repository) CreateRequest(ctx context.Context, req model.EquipmentRequest) (model.EquipmentRequest, error) {
	var id int64
	err := r.WithTx(ctx, func(tx Repository) error {
		txr := tx.(*repository)
		q := qb.Insert(requestTableName).
			Columns("username", "status", "notes").
			Values(req.Username, req.Status, req.Notes).
			Suffix("returning id")
		if err := txr.get(ctx, &id, q); err != nil {
			return errors.Wrap(err, "insert request")
		}
		items := qb.Insert(itemTableName).
			Columns("request_id", "equipment_id", "quantity", "duration_days", "notes", "status")
		for _, it := range req.Items {
			items = items.Values(id, it.EquipmentID, it.Quantity, it.DurationDays, it.Notes, it.Status)
		}
		if _, err := txr.exec(ctx, items); err != nil {
			return errors.Wrap(err, "insert request items")
		}
		return nil
	})
	if err != nil {
		return model.EquipmentRequest{}, err
	}
	return r.GetRequest(ctx, id)
}

func (r *repository) GetRequest(ctx context.Context, id int64) (model.EquipmentRequest, error) {
	return r.getRequest(ctx, qb.Select(requestColumns...).From(requestTableName).Where(sq.Eq{"id": id}), id)
}

func (r *repository) LockRequest(ctx context.Context, id int64) (model.EquipmentRequest, error) {
	return r.getRequest(ctx, qb.Select(requestColumns...).From(requestTableName).Where(sq.Eq{"id": id}).Suffix("for update"), id)
}

func (r *repository) getRequest(ctx context.Context, q sq.SelectBuilder, id int64) (model.EquipmentRequest, error) {
	var req model.EquipmentRequest
	if err := r.get(ctx, &req, q); err != nil {
		return model.EquipmentRequest{}, errors.Wrapf(err, "request %d", id)
	}
	items := make([]model.RequestItem, 0)
	if err := r.selectAll(ctx, &items, selectItems().Where(sq.Eq{"i.request_id": id}).OrderBy("i.id")); err != nil {
		return model.EquipmentRequest{}, err
	}
	req.Items = items
	return req, nil
}

func (r *repository) ListRequests(ctx context.Context, f model.RequestFilter) ([]model.EquipmentRequest, error) {
	q := qb.Select(requestColumns...).From(requestTableName).OrderBy("created_at desc", "id desc")
	if f.Username != "" {
		q = q.Where(sq.Eq{"username": f.Username})
	}
	if f.Status != "" {
		q = q.Where(sq.Eq{"status": f.Status})
	}
	reqs := make([]model.EquipmentRequest, 0)
	if err := r.selectAll(ctx, &reqs, q); err != nil {
		return nil, err
	}
	if len(reqs) == 0 {
		return reqs, nil
	}
	ids := make([]int64, 0, len(reqs))
	for _, req := range reqs {
		ids = append(ids, req.ID)
	}
	items := make([]model.RequestItem, 0)
	if err := r.selectAll(ctx, &items, selectItems().Where(sq.Eq{"i.request_id": ids}).OrderBy("i.id")); err != nil {
		return nil, err
	}
	byRequest := make(map[int64][]model.RequestItem, len(reqs))
	for _, it := range items {
		byRequest[it.RequestID] = append(byRequest[it.RequestID], it)
	}
	for i := range reqs {
		reqs[i].Items = byRequest[reqs[i].ID]
		if reqs[i].Items == nil {
			reqs[i].Items = []model.RequestItem{}
		}
	}
	return reqs, nil
}

func (r *repository) UpdateRequestStatus(ctx context.Context, id int64, status model.RequestStatus) error {
	q := qb.Update(requestTableName).
		Set("status", status).
		Set("updated_at", time.Now().UTC()).
		Where(sq.Eq{"id": id})
	n, err := r.exec(ctx, q)
	if err != nil {
		return errors.Wrapf(err, "update request %d", id)
	}
	if n == 0 {
		return errs.ErrNotFound
	}
	return nil
}

func (r *repository) LockItem(ctx context.Context, id int64) (model.RequestItem, error) {
	var it model.RequestItem
	if err := r.get(ctx, &it, selectItems().Where(sq.Eq{"i.id": id}).Suffix("for update of i")); err != nil {
		return model.RequestItem{}, errors.Wrapf(err, "request item %d", id)
	}
	return it, nil
}

func (r *repository) UpdateItem(ctx context.Context, it model.RequestItem) error {
	q := qb.Update(itemTableName).
		SetMap(map[string]any{
			"status":        it.Status,
			"reviewed_by":   it.ReviewedBy,
			"reviewed_at":   it.ReviewedAt,
			"reject_reason": it.RejectReason,
			"rental_id":     it.RentalID,
			"updated_at":    time.Now().UTC(),
		}).
		Where(sq.Eq{"id": it.ID})
	n, err := r.exec(ctx, q)
	if err != nil {
		return errors.Wrapf(err, "update request item %d", it.ID)
	}
	if n == 0 {
		return errs.ErrNotFound
	}
	return nil
}

func (r *repository) CountOpenRequests(ctx context.Context) (int, error) {
	q := qb.Select("count(*)").
		From(requestTableName).
		Where(sq.Eq{"status": []string{string(model.RequestPending), string(model.RequestPartial)}})
	return r.count(ctx, q)
}
