package repository

import (
	"context"
	"strings"
	"time"

	sq "github.com/Masterminds/squirrel"
	"github.com/aiu-lab/facility-service/facility/internal/errs"
	"github.com/aiu-lab/facility-service/facility/internal/model"
	"github.com/lib/pq"
	"github.com/pkg/errors"
)

var rentedUnitsExpr = sq.Expr(
	`coalesce((select sum(r.quantity) from rentals r where r.equipment_id = e.id and r.status = any(?)), 0) as rented_units`,
	pq.StringArray(rentalStatuses(model.OccupyingStatuses)),
)

func selectEquipment() sq.SelectBuilder {
	return qb.Select(
		"e.id", "e.code", "e.name", "e.description", "e.categories",
		"e.quantity_total", "e.quantity_maintenance", "e.is_active", "e.qr_code",
		"e.created_at", "e.updated_at",
	).Column(rentedUnitsExpr).
		From(equipmentTableName + " e")
}

func (r *repository) CreateEquipment(ctx context.Context, e model.Equipment) (model.Equipment, error) {
	q := qb.Insert(equipmentTableName).
		Columns("code", "name", "description", "categories", "quantity_total", "quantity_maintenance", "is_active", "qr_code").
		Values(e.Code, e.Name, e.Description, e.Categories, e.QuantityTotal, e.QuantityMaintenance, e.IsActive, e.QRCode).
		Suffix("returning id")
	var id int64
	if err := r.get(ctx, &id, q); err != nil {
		if uniqueViolation(err, equipmentCodeKey) {
			return model.Equipment{}, errors.Wrapf(errs.ErrValidation, "equipment code %q already exists", e.Code)
		}
		return model.Equipment{}, err
	}
	return r.GetEquipment(ctx, id)
}

func (r *repository) UpdateEquipment(ctx context.Context, e model.Equipment) (model.Equipment, error) {
	q := qb.Update(equipmentTableName).
		SetMap(map[string]any{
			"name":                 e.Name,
			"description":          e.Description,
			"categories":           e.Categories,
			"quantity_total":       e.QuantityTotal,
			"quantity_maintenance": e.QuantityMaintenance,
			"is_active":            e.IsActive,
			"updated_at":           time.Now().UTC(),
		}).
		Where(sq.Eq{"id": e.ID})
	n, err := r.exec(ctx, q)
	if err != nil {
		return model.Equipment{}, err
	}
	if n == 0 {
		return model.Equipment{}, errs.ErrNotFound
	}
	return r.GetEquipment(ctx, e.ID)
}

func (r *repository) GetEquipment(ctx context.Context, id int64) (model.Equipment, error) {
	var e model.Equipment
	if err := r.get(ctx, &e, selectEquipment().Where(sq.Eq{"e.id": id})); err != nil {
		return model.Equipment{}, errors.Wrapf(err, "equipment %d", id)
	}
	return e, nil
}

func (r *repository) GetEquipmentByCode(ctx context.Context, code string) (model.Equipment, error) {
	var e model.Equipment
	if err := r.get(ctx, &e, selectEquipment().Where(sq.Eq{"e.code": code})); err != nil {
		return model.Equipment{}, errors.Wrapf(err, "equipment %q", code)
	}
	return e, nil
}

func (r *repository) LockEquipment(ctx context.Context, id int64) (model.Equipment, error) {
	var locked int64
	q := qb.Select("id").From(equipmentTableName).Where(sq.Eq{"id": id}).Suffix("for update")
	if err := r.get(ctx, &locked, q); err != nil {
		return model.Equipment{}, errors.Wrapf(err, "lock equipment %d", id)
	}
	return r.GetEquipment(ctx, id)
}

func (r *repository) ListEquipment(ctx context.Context, f model.EquipmentFilter) ([]model.Equipment, error) {
	q := selectEquipment().OrderBy("e.name", "e.id")
	if !f.ShowAll {
		q = q.Where(sq.Eq{"e.is_active": true})
	}
	if f.Category != "" {
		q = q.Where(sq.Expr("? = any(e.categories)", strings.ToLower(f.Category)))
	}
	if f.Search != "" {
		like := "%" + f.Search + "%"
		q = q.Where(sq.Or{sq.ILike{"e.name": like}, sq.ILike{"e.code": like}})
	}
	items := make([]model.Equipment, 0)
	if err := r.selectAll(ctx, &items, q); err != nil {
		return nil, err
	}
	return items, nil
}

func (r *repository) SetEquipmentQRCode(ctx context.Context, id int64, png []byte) error {
	// only the first writer wins; a present code is never replaced
	q := qb.Update(equipmentTableName).
		Set("qr_code", png).
		Where(sq.Eq{"id": id}).
		Where(sq.Eq{"qr_code": nil})
	_, err := r.exec(ctx, q)
	return err
}

func (r *repository) CountDepletedEquipment(ctx context.Context) (int, error) {
	inner := selectEquipment().Where(sq.Eq{"e.is_active": true})
	q := qb.Select("count(*)").
		FromSelect(inner, "s").
		Where("greatest(s.quantity_total - s.rented_units, 0) - s.quantity_maintenance <= 0")
	return r.count(ctx, q)
}
