package repository

import (
	"context"

	sq "github.com/Masterminds/squirrel"
	"github.com/aiu-lab/facility-service/facility/internal/model"
	"github.com/pkg/errors"
)

func (r *repository) AddHistory(ctx context.Context, h model.StatusHistory) error {
	q := qb.Insert(historyTableName).
		Columns("entity", "entity_id", "actor", "action", "from_status", "to_status", "note").
		Values(h.Entity, h.EntityID, h.Actor, h.Action, h.FromStatus, h.ToStatus, h.Note)
	if _, err := r.exec(ctx, q); err != nil {
		return errors.Wrapf(err, "history %s %d", h.Entity, h.EntityID)
	}
	return nil
}

func (r *repository) ListHistory(ctx context.Context, entity string, entityID int64) ([]model.StatusHistory, error) {
	q := qb.Select("id", "entity", "entity_id", "actor", "action", "from_status", "to_status", "note", "created_at").
		From(historyTableName).
		Where(sq.Eq{"entity": entity, "entity_id": entityID}).
		OrderBy("id")
	items := make([]model.StatusHistory, 0)
	if err := r.selectAll(ctx, &items, q); err != nil {
		return nil, err
	}
	return items, nil
}
