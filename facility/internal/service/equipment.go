package service

import (
	"context"

	"github.com/aiu-lab/facility-service/facility/internal/errs"
	"github.com/aiu-lab/facility-service/facility/internal/model"
	"github.com/aiu-lab/facility-service/facility/internal/repository"
	"github.com/pkg/errors"
	"github.com/skip2/go-qrcode"
	"go.uber.org/zap"
)

const qrSize = 256

func encodeQR(code string) ([]byte, error) {
	png, err := qrcode.Encode(code, qrcode.Medium, qrSize)
	if err != nil {
		return nil, errors.Wrap(err, "qrcode.Encode")
	}
	return png, nil
}

func (s *Service) CreateEquipment(ctx context.Context, actor model.Actor, req model.CreateEquipmentRequest) (model.EquipmentView, error) {
	if err := requireAdmin(actor); err != nil {
		return model.EquipmentView{}, err
	}
	e := req.Equipment()
	if e.Code == "" {
		return model.EquipmentView{}, errors.Wrap(errs.ErrValidation, "code is required")
	}
	if err := e.Stock().Validate(); err != nil {
		return model.EquipmentView{}, err
	}
	png, err := encodeQR(e.Code)
	if err != nil {
		return model.EquipmentView{}, err
	}
	e.QRCode = png
	created, err := s.repo.CreateEquipment(ctx, e)
	if err != nil {
		return model.EquipmentView{}, err
	}
	return created.View(), nil
}

// UpdateEquipment re-validates the counters against live rentals under the
// equipment row lock.
func (s *Service) UpdateEquipment(ctx context.Context, actor model.Actor, id int64, req model.UpdateEquipmentRequest) (model.EquipmentView, error) {
	if err := requireAdmin(actor); err != nil {
		return model.EquipmentView{}, err
	}
	var out model.Equipment
	err := s.repo.WithTx(ctx, func(tx repository.Repository) error {
		e, err := tx.LockEquipment(ctx, id)
		if err != nil {
			return err
		}
		req.Apply(&e)
		if err := e.Stock().Validate(); err != nil {
			return err
		}
		if out, err = tx.UpdateEquipment(ctx, e); err != nil {
			return err
		}
		if len(out.QRCode) == 0 {
			png, err := encodeQR(out.Code)
			if err != nil {
				return err
			}
			if err := tx.SetEquipmentQRCode(ctx, id, png); err != nil {
				return err
			}
			out.QRCode = png
		}
		return nil
	})
	if err != nil {
		return model.EquipmentView{}, err
	}
	return out.View(), nil
}

func (s *Service) DeactivateEquipment(ctx context.Context, actor model.Actor, id int64) error {
	inactive := false
	_, err := s.UpdateEquipment(ctx, actor, id, model.UpdateEquipmentRequest{IsActive: &inactive})
	return err
}

func (s *Service) GetEquipment(ctx context.Context, actor model.Actor, id int64) (model.EquipmentView, error) {
	e, err := s.repo.GetEquipment(ctx, id)
	if err != nil {
		return model.EquipmentView{}, err
	}
	if !e.IsActive && !actor.Admin {
		return model.EquipmentView{}, errors.Wrapf(errs.ErrNotFound, "equipment %d", id)
	}
	return e.View(), nil
}

func (s *Service) ListEquipment(ctx context.Context, actor model.Actor, f model.EquipmentFilter) ([]model.EquipmentView, error) {
	if !actor.Admin {
		f.ShowAll = false
	}
	items, err := s.repo.ListEquipment(ctx, f)
	if err != nil {
		return nil, err
	}
	views := make([]model.EquipmentView, 0, len(items))
	for _, e := range items {
		views = append(views, e.View())
	}
	return views, nil
}

// EquipmentQRCode returns the stored PNG, generating it once if it is missing.
func (s *Service) EquipmentQRCode(ctx context.Context, id int64) ([]byte, error) {
	e, err := s.repo.GetEquipment(ctx, id)
	if err != nil {
		return nil, err
	}
	if len(e.QRCode) > 0 {
		return e.QRCode, nil
	}
	png, err := encodeQR(e.Code)
	if err != nil {
		return nil, err
	}
	if err := s.repo.SetEquipmentQRCode(ctx, id, png); err != nil {
		return nil, err
	}
	// a concurrent writer may have stored its own code first
	if e, err = s.repo.GetEquipment(ctx, id); err != nil {
		return nil, err
	}
	s.log.Debug("qr code generated", zap.Int64("equipment", id))
	return e.QRCode, nil
}
