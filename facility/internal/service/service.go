package service

import (
	"context"
	"time"

	"github.com/aiu-lab/facility-service/facility/internal/errs"
	"github.com/aiu-lab/facility-service/facility/internal/model"
	"github.com/aiu-lab/facility-service/facility/internal/repository"
	"github.com/aiu-lab/facility-service/pkg/kafka"
	"github.com/pkg/errors"
	"go.uber.org/zap"
)

type Policy struct {
	// InstantCheckout creates rentals already approved instead of pending.
	InstantCheckout bool
	DefaultDuration int
}

type Service struct {
	log    *zap.Logger
	repo   repository.Repository
	pub    kafka.Publisher
	loc    *time.Location
	policy Policy
	now    func() time.Time
}

type Option func(s *Service)

func WithLocation(loc *time.Location) Option {
	return func(s *Service) {
		if loc != nil {
			s.loc = loc
		}
	}
}

func WithPolicy(p Policy) Option {
	return func(s *Service) {
		if p.DefaultDuration <= 0 {
			p.DefaultDuration = 3
		}
		s.policy = p
	}
}

func WithClock(now func() time.Time) Option {
	return func(s *Service) {
		s.now = now
	}
}

func NewService(repo repository.Repository, pub kafka.Publisher, log *zap.Logger, opts ...Option) *Service {
	if pub == nil {
		pub = kafka.NewNopPublisher()
	}
	s := &Service{
		log:    log.Named("service"),
		repo:   repo,
		pub:    pub,
		loc:    time.Local,
		policy: Policy{DefaultDuration: 3},
		now:    time.Now,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// change is one audited transition, written to history inside the
// transaction and published once it commits.
type change struct {
	entity   string
	id       int64
	action   string
	actor    string
	from     string
	to       string
	owner    string
	note     string
	quantity int
}

type journal struct {
	changes []change
}

func (j *journal) record(ctx context.Context, tx repository.Repository, c change) error {
	err := tx.AddHistory(ctx, model.StatusHistory{
		Entity:     c.entity,
		EntityID:   c.id,
		Actor:      c.actor,
		Action:     c.action,
		FromStatus: c.from,
		ToStatus:   c.to,
		Note:       c.note,
	})
	if err != nil {
		return err
	}
	j.changes = append(j.changes, c)
	return nil
}

// inTx runs fn in one transaction and publishes the journal after commit.
func (s *Service) inTx(ctx context.Context, fn func(tx repository.Repository, j *journal) error) error {
	j := &journal{}
	if err := s.repo.WithTx(ctx, func(tx repository.Repository) error {
		return fn(tx, j)
	}); err != nil {
		return err
	}
	s.publish(ctx, j.changes)
	return nil
}

func (s *Service) publish(ctx context.Context, changes []change) {
	if len(changes) == 0 {
		return
	}
	events := make([]kafka.Event, 0, len(changes))
	for _, c := range changes {
		ev := kafka.NewEvent(kafka.Entity(c.entity), c.id, c.action, c.actor, c.from, c.to, c.owner)
		ev.Quantity = c.quantity
		events = append(events, ev)
	}
	s.pub.Publish(ctx, events...)
}

func requireAdmin(actor model.Actor) error {
	if !actor.Admin {
		return errors.Wrap(errs.ErrForbidden, "admin role required")
	}
	return nil
}

func requireOwner(actor model.Actor, owner string) error {
	if !actor.Owns(owner) {
		return errors.Wrap(errs.ErrForbidden, "only the owner may do this")
	}
	return nil
}

func requireVisible(actor model.Actor, owner string) error {
	if !actor.CanSee(owner) {
		return errs.ErrForbidden
	}
	return nil
}

func conflict(entity string, id int64, status any, action string) error {
	return errors.Wrapf(errs.ErrStateConflict, "cannot %s %s %d in status %v", action, entity, id, status)
}

func ptr[T any](v T) *T {
	return &v
}
