package service

import (
	"context"
	"strings"

	"github.com/aiu-lab/facility-service/facility/internal/errs"
	"github.com/aiu-lab/facility-service/facility/internal/model"
	"github.com/pkg/errors"
)

func (s *Service) CreateLab(ctx context.Context, actor model.Actor, req model.LabRequest) (model.Lab, error) {
	if err := requireAdmin(actor); err != nil {
		return model.Lab{}, err
	}
	lab := model.Lab{Capacity: model.SeatMax, IsActive: true}
	req.Apply(&lab)
	if lab.Name == "" {
		return model.Lab{}, errors.Wrap(errs.ErrValidation, "lab name is required")
	}
	return s.repo.CreateLab(ctx, lab)
}

func (s *Service) UpdateLab(ctx context.Context, actor model.Actor, id int64, req model.LabRequest) (model.Lab, error) {
	if err := requireAdmin(actor); err != nil {
		return model.Lab{}, err
	}
	lab, err := s.repo.GetLab(ctx, id)
	if err != nil {
		return model.Lab{}, err
	}
	req.Apply(&lab)
	if lab.Name == "" {
		return model.Lab{}, errors.Wrap(errs.ErrValidation, "lab name is required")
	}
	return s.repo.UpdateLab(ctx, lab)
}

func (s *Service) GetLab(ctx context.Context, actor model.Actor, id int64) (model.Lab, error) {
	lab, err := s.repo.GetLab(ctx, id)
	if err != nil {
		return model.Lab{}, err
	}
	if !lab.IsActive && !actor.Admin {
		return model.Lab{}, errors.Wrapf(errs.ErrNotFound, "lab %d", id)
	}
	return lab, nil
}

func (s *Service) ListLabs(ctx context.Context, actor model.Actor) ([]model.Lab, error) {
	return s.repo.ListLabs(ctx, !actor.Admin)
}

// resolveLab finds a lab by id, then by name; with neither it falls back to
// the only active lab when there is exactly one.
func (s *Service) resolveLab(ctx context.Context, id int64, name string) (model.Lab, error) {
	switch name = strings.TrimSpace(name); {
	case id != 0:
		return s.repo.GetLab(ctx, id)
	case name != "":
		return s.repo.GetLabByName(ctx, name)
	}
	labs, err := s.repo.ListLabs(ctx, true)
	if err != nil {
		return model.Lab{}, err
	}
	if len(labs) != 1 {
		return model.Lab{}, errors.Wrap(errs.ErrValidation, "lab id or labRoom is required")
	}
	return labs[0], nil
}
