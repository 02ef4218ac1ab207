package service

import (
	"context"

	"github.com/aiu-lab/facility-service/facility/internal/model"
	"golang.org/x/sync/errgroup"
)

// Sweep runs both time-driven promotions; used by the cron job and the CLI.
func (s *Service) Sweep(ctx context.Context) (overdue, completed int, err error) {
	if overdue, err = s.SweepOverdue(ctx); err != nil {
		return 0, 0, err
	}
	if completed, err = s.SweepCompleted(ctx); err != nil {
		return overdue, 0, err
	}
	return overdue, completed, nil
}

func (s *Service) Dashboard(ctx context.Context, actor model.Actor) (model.Dashboard, error) {
	if err := requireAdmin(actor); err != nil {
		return model.Dashboard{}, err
	}
	if _, _, err := s.Sweep(ctx); err != nil {
		return model.Dashboard{}, err
	}
	today := model.DateOf(s.now().In(s.loc))

	var d model.Dashboard
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() (err error) {
		d.PendingRentals, err = s.repo.CountRentals(gctx, model.RentalPending)
		return err
	})
	g.Go(func() (err error) {
		d.OverdueRentals, err = s.repo.CountRentals(gctx, model.RentalOverdue)
		return err
	})
	g.Go(func() (err error) {
		d.PendingBookings, err = s.repo.CountBookings(gctx, model.BookingPending, nil)
		return err
	})
	g.Go(func() (err error) {
		d.TodayBookings, err = s.repo.CountBookings(gctx, model.BookingApproved, &today)
		return err
	})
	g.Go(func() (err error) {
		d.OpenRequests, err = s.repo.CountOpenRequests(gctx)
		return err
	})
	g.Go(func() (err error) {
		d.DepletedEquipment, err = s.repo.CountDepletedEquipment(gctx)
		return err
	})
	if err := g.Wait(); err != nil {
		return model.Dashboard{}, err
	}
	return d, nil
}
