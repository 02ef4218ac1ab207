// Package sweeper runs the time-driven promotions on a cron schedule.
package sweeper

import (
	"context"
	"time"

	"github.com/pkg/errors"
	"github.com/robfig/cron/v3"
	"go.uber.org/zap"
)

// SweepFunc promotes overdue rentals and finished bookings.
type SweepFunc func(ctx context.Context) (overdue, completed int, err error)

type Sweeper struct {
	cron    *cron.Cron
	sweep   SweepFunc
	timeout time.Duration
	log     *zap.Logger
}

// New schedules sweep with a standard five-field spec or a descriptor such as "@every 5m".
func New(schedule string, loc *time.Location, sweep SweepFunc, log *zap.Logger) (*Sweeper, error) {
	if loc == nil {
		loc = time.Local
	}
	s := &Sweeper{
		sweep:   sweep,
		timeout: time.Minute,
		log:     log.Named("sweeper"),
	}
	s.cron = cron.New(
		cron.WithLocation(loc),
		cron.WithChain(cron.SkipIfStillRunning(cron.DiscardLogger)),
	)
	if _, err := s.cron.AddFunc(schedule, s.Run); err != nil {
		return nil, errors.Wrapf(err, "sweep schedule %q", schedule)
	}
	return s, nil
}

// Run performs one sweep.
func (s *Sweeper) Run() {
	ctx, cancel := context.WithTimeout(context.Background(), s.timeout)
	defer cancel()
	overdue, completed, err := s.sweep(ctx)
	if err != nil {
		s.log.Error("sweep", zap.Error(err))
		return
	}
	s.log.Debug("sweep done", zap.Int("overdue", overdue), zap.Int("completed", completed))
}

func (s *Sweeper) Start() {
	s.cron.Start()
}

// Stop waits for a running sweep to finish or ctx to expire.
func (s *Sweeper) Stop(ctx context.Context) error {
	select {
	case <-s.cron.Stop().Done():
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}
