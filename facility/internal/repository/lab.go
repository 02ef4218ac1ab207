package repository

import (
	"context"
	"time"

	sq "github.com/Masterminds/squirrel"
	"github.com/aiu-lab/facility-service/facility/internal/errs"
	"github.com/aiu-lab/facility-service/facility/internal/model"
	"github.com/pkg/errors"
)

var labColumns = []string{"id", "name", "description", "location", "capacity", "facilities", "is_active", "created_at", "updated_at"}

func (r *repository) CreateLab(ctx context.Context, l model.Lab) (model.Lab, error) {
	q := qb.Insert(labTableName).
		Columns("name", "description", "location", "capacity", "facilities", "is_active").
		Values(l.Name, l.Description, l.Location, l.Capacity, l.Facilities, l.IsActive).
		Suffix("returning *")
	var lab model.Lab
	if err := r.get(ctx, &lab, q); err != nil {
		if uniqueViolation(err, labNameKey) {
			return model.Lab{}, errors.Wrapf(errs.ErrValidation, "lab %q already exists", l.Name)
		}
		return model.Lab{}, err
	}
	return lab, nil
}

func (r *repository) UpdateLab(ctx context.Context, l model.Lab) (model.Lab, error) {
	q := qb.Update(labTableName).
		SetMap(map[string]any{
			"name":        l.Name,
			"description": l.Description,
			"location":    l.Location,
			"capacity":    l.Capacity,
			"facilities":  l.Facilities,
			"is_active":   l.IsActive,
			"updated_at":  time.Now().UTC(),
		}).
		Where(sq.Eq{"id": l.ID}).
		Suffix("returning *")
	var lab model.Lab
	if err := r.get(ctx, &lab, q); err != nil {
		if uniqueViolation(err, labNameKey) {
			return model.Lab{}, errors.Wrapf(errs.ErrValidation, "lab %q already exists", l.Name)
		}
		return model.Lab{}, err
	}
	return lab, nil
}

func (r *repository) GetLab(ctx context.Context, id int64) (model.Lab, error) {
	var lab model.Lab
	if err := r.get(ctx, &lab, qb.Select(labColumns...).From(labTableName).Where(sq.Eq{"id": id})); err != nil {
		return model.Lab{}, errors.Wrapf(err, "lab %d", id)
	}
	return lab, nil
}

func (r *repository) GetLabByName(ctx context.Context, name string) (model.Lab, error) {
	var lab model.Lab
	q := qb.Select(labColumns...).From(labTableName).Where(sq.Expr("lower(name) = lower(?)", name))
	if err := r.get(ctx, &lab, q); err != nil {
		return model.Lab{}, errors.Wrapf(err, "lab %q", name)
	}
	return lab, nil
}

func (r *repository) LockLab(ctx context.Context, id int64) (model.Lab, error) {
	var lab model.Lab
	q := qb.Select(labColumns...).From(labTableName).Where(sq.Eq{"id": id}).Suffix("for update")
	if err := r.get(ctx, &lab, q); err != nil {
		return model.Lab{}, errors.Wrapf(err, "lock lab %d", id)
	}
	return lab, nil
}

func (r *repository) ListLabs(ctx context.Context, activeOnly bool) ([]model.Lab, error) {
	q := qb.Select(labColumns...).From(labTableName).OrderBy("name")
	if activeOnly {
		q = q.Where(sq.Eq{"is_active": true})
	}
	labs := make([]model.Lab, 0)
	if err := r.selectAll(ctx, &labs, q); err != nil {
		return nil, err
	}
	return labs, nil
}
