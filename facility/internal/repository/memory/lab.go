package memory

import (
	"context"
	"sort"
	"strings"
	"time"

	"github.com/aiu-lab/facility-service/facility/internal/errs"
	"github.com/aiu-lab/facility-service/facility/internal/model"
	"github.com/pkg/errors"
)

func (r *Repository) CreateLab(_ context.Context, l model.Lab) (model.Lab, error) {
	defer r.lock()()
	if r.labNameTaken(l.Name, 0) {
		return model.Lab{}, errors.Wrapf(errs.ErrValidation, "lab %q already exists", l.Name)
	}
	now := time.Now().UTC()
	l.ID = r.nextID()
	l.CreatedAt, l.UpdatedAt = now, now
	r.st().labs[l.ID] = l
	return l, nil
}

func (r *Repository) UpdateLab(_ context.Context, l model.Lab) (model.Lab, error) {
	defer r.lock()()
	cur, ok := r.st().labs[l.ID]
	if !ok {
		return model.Lab{}, errors.Wrapf(errs.ErrNotFound, "lab %d", l.ID)
	}
	if r.labNameTaken(l.Name, l.ID) {
		return model.Lab{}, errors.Wrapf(errs.ErrValidation, "lab %q already exists", l.Name)
	}
	l.CreatedAt = cur.CreatedAt
	l.UpdatedAt = time.Now().UTC()
	r.st().labs[l.ID] = l
	return l, nil
}

func (r *Repository) labNameTaken(name string, except int64) bool {
	for id, l := range r.st().labs {
		if id != except && strings.EqualFold(l.Name, name) {
			return true
		}
	}
	return false
}

func (r *Repository) GetLab(_ context.Context, id int64) (model.Lab, error) {
	defer r.lock()()
	l, ok := r.st().labs[id]
	if !ok {
		return model.Lab{}, errors.Wrapf(errs.ErrNotFound, "lab %d", id)
	}
	return l, nil
}

func (r *Repository) GetLabByName(_ context.Context, name string) (model.Lab, error) {
	defer r.lock()()
	for _, l := range r.st().labs {
		if strings.EqualFold(l.Name, name) {
			return l, nil
		}
	}
	return model.Lab{}, errors.Wrapf(errs.ErrNotFound, "lab %q", name)
}

func (r *Repository) LockLab(ctx context.Context, id int64) (model.Lab, error) {
	return r.GetLab(ctx, id)
}

func (r *Repository) ListLabs(_ context.Context, activeOnly bool) ([]model.Lab, error) {
	defer r.lock()()
	out := make([]model.Lab, 0, len(r.st().labs))
	for _, l := range r.st().labs {
		if activeOnly && !l.IsActive {
			continue
		}
		out = append(out, l)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return out, nil
}
