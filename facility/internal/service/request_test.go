package service_test

import (
	"context"
	"testing"
	"time"

	"github.com/aiu-lab/facility-service/facility/internal/errs"
	"github.com/aiu-lab/facility-service/facility/internal/model"
	"github.com/aiu-lab/facility-service/facility/internal/service"
	"github.com/stretchr/testify/require"
)

func itemFor(t *testing.T, req model.EquipmentRequest, equipmentID int64) model.RequestItem {
	t.Helper()
	for _, it := range req.Items {
		if it.EquipmentID == equipmentID {
			return it
		}
	}
	t.Fatalf("request %d has no item for equipment %d", req.ID, equipmentID)
	return model.RequestItem{}
}

func TestBundle_CreateMergesCart(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	e := newEnv(t, service.Policy{DefaultDuration: 3})
	cam := e.equipment(t, "CAM-01", 1)
	tripod := e.equipment(t, "TRI-01", 3)

	req, err := e.svc.CreateBundle(ctx, aigerim, model.CreateBundleRequest{CartItems: []model.CartItem{
		{EquipmentID: cam.ID},
		{EquipmentID: tripod.ID, Quantity: 1, Duration: 2},
		{EquipmentID: tripod.ID, Quantity: 1, Duration: 5},
	}})
	require.NoError(t, err)
	require.Equal(t, model.RequestPending, req.Status)
	require.Len(t, req.Items, 2)
	require.Equal(t, 3, itemFor(t, req, cam.ID).DurationDays)
	require.Equal(t, 2, itemFor(t, req, tripod.ID).Quantity)
	require.Equal(t, 5, itemFor(t, req, tripod.ID).DurationDays)

	// pending bundles hold nothing
	require.Equal(t, 3, e.available(t, tripod.ID))

	_, err = e.svc.CreateBundle(ctx, aigerim, model.CreateBundleRequest{})
	require.ErrorIs(t, err, errs.ErrEmptyCart)
	require.ErrorIs(t, err, errs.ErrValidation)

	_, err = e.svc.CreateBundle(ctx, aigerim, model.CreateBundleRequest{CartItems: []model.CartItem{
		{EquipmentID: tripod.ID, Quantity: 4},
	}})
	require.ErrorIs(t, err, errs.ErrInsufficientStock)

	_, err = e.svc.CreateBundle(ctx, aigerim, model.CreateBundleRequest{CartItems: []model.CartItem{
		{EquipmentID: 999},
	}})
	require.ErrorIs(t, err, errs.ErrNotFound)

	list, err := e.svc.ListBundles(ctx, aigerim, model.RequestFilter{})
	require.NoError(t, err)
	require.Len(t, list, 1)
}

// Scenario A: two bundles compete for the last unit; only the first approval wins.
func TestBundle_ApprovalRechecksStock(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	e := newEnv(t, service.Policy{})
	cam := e.equipment(t, "CAM-01", 1)
	tripod := e.equipment(t, "TRI-01", 3)

	first, err := e.svc.CreateBundle(ctx, aigerim, model.CreateBundleRequest{CartItems: []model.CartItem{
		{EquipmentID: cam.ID}, {EquipmentID: tripod.ID},
	}})
	require.NoError(t, err)
	second, err := e.svc.CreateBundle(ctx, timur, model.CreateBundleRequest{CartItems: []model.CartItem{
		{EquipmentID: cam.ID},
	}})
	require.NoError(t, err)

	_, err = e.svc.ApproveItem(ctx, aigerim, first.ID, itemFor(t, first, cam.ID).ID)
	require.ErrorIs(t, err, errs.ErrForbidden)

	first, err = e.svc.ApproveItem(ctx, admin, first.ID, itemFor(t, first, cam.ID).ID)
	require.NoError(t, err)
	require.Equal(t, model.RequestPartial, first.Status)
	approved := itemFor(t, first, cam.ID)
	require.Equal(t, model.ItemApproved, approved.Status)
	require.NotNil(t, approved.RentalID)
	require.Equal(t, 0, e.available(t, cam.ID))

	rent, err := e.svc.GetRental(ctx, aigerim, *approved.RentalID)
	require.NoError(t, err)
	require.Equal(t, model.RentalApproved, rent.Status)
	require.Equal(t, approved.ID, *rent.RequestItemID)
	require.NotNil(t, rent.ExpectedReturnDate)

	_, err = e.svc.ApproveItem(ctx, admin, first.ID, approved.ID)
	require.ErrorIs(t, err, errs.ErrStateConflict)

	_, err = e.svc.ApproveItem(ctx, admin, second.ID, itemFor(t, second, cam.ID).ID)
	require.ErrorIs(t, err, errs.ErrInsufficientStock)
	second, err = e.svc.GetBundle(ctx, timur, second.ID)
	require.NoError(t, err)
	require.Equal(t, model.RequestPending, second.Status)
	require.Equal(t, model.ItemPending, second.Items[0].Status)

	_, err = e.svc.ApproveItem(ctx, admin, second.ID, itemFor(t, first, tripod.ID).ID)
	require.ErrorIs(t, err, errs.ErrNotFound)

	first, err = e.svc.ApproveItem(ctx, admin, first.ID, itemFor(t, first, tripod.ID).ID)
	require.NoError(t, err)
	require.Equal(t, model.RequestApproved, first.Status)
}

func TestBundle_RejectAndCancel(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	e := newEnv(t, service.Policy{})
	cam := e.equipment(t, "CAM-01", 2)
	tripod := e.equipment(t, "TRI-01", 2)
	mic := e.equipment(t, "MIC-01", 2)

	req, err := e.svc.CreateBundle(ctx, aigerim, model.CreateBundleRequest{CartItems: []model.CartItem{
		{EquipmentID: cam.ID}, {EquipmentID: tripod.ID}, {EquipmentID: mic.ID},
	}})
	require.NoError(t, err)

	req, err = e.svc.RejectItem(ctx, admin, req.ID, itemFor(t, req, cam.ID).ID, "broken")
	require.NoError(t, err)
	require.Equal(t, model.RequestPartial, req.Status)
	require.Equal(t, "broken", *itemFor(t, req, cam.ID).RejectReason)

	req, err = e.svc.ApproveItem(ctx, admin, req.ID, itemFor(t, req, tripod.ID).ID)
	require.NoError(t, err)
	require.Equal(t, model.RequestPartial, req.Status)

	_, err = e.svc.CancelBundle(ctx, timur, req.ID)
	require.ErrorIs(t, err, errs.ErrForbidden)

	req, err = e.svc.CancelBundle(ctx, aigerim, req.ID)
	require.NoError(t, err)
	require.Equal(t, model.RequestCancelled, req.Status)
	require.Equal(t, model.ItemRejected, itemFor(t, req, cam.ID).Status)
	require.Equal(t, model.ItemApproved, itemFor(t, req, tripod.ID).Status)
	require.Equal(t, model.ItemCancelled, itemFor(t, req, mic.ID).Status)

	// the spawned rental outlives the cancelled bundle
	require.Equal(t, 1, e.available(t, tripod.ID))

	_, err = e.svc.CancelBundle(ctx, aigerim, req.ID)
	require.ErrorIs(t, err, errs.ErrStateConflict)
	_, err = e.svc.ApproveItem(ctx, admin, req.ID, itemFor(t, req, mic.ID).ID)
	require.ErrorIs(t, err, errs.ErrStateConflict)

	history, err := e.svc.BundleHistory(ctx, aigerim, req.ID)
	require.NoError(t, err)
	actions := make([]string, 0, len(history))
	for _, h := range history {
		actions = append(actions, h.Entity+":"+h.Action)
	}
	require.Equal(t, []string{
		"request:create",
		"request_item:reject",
		"request:item_reject",
		"request_item:approve",
		"request_item:cancel",
		"request:cancel",
	}, actions)
}

func TestBundle_AllRejected(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	e := newEnv(t, service.Policy{})
	cam := e.equipment(t, "CAM-01", 1)

	req, err := e.svc.CreateBundle(ctx, aigerim, model.CreateBundleRequest{CartItems: []model.CartItem{{EquipmentID: cam.ID}}})
	require.NoError(t, err)
	req, err = e.svc.RejectItem(ctx, admin, req.ID, req.Items[0].ID, "")
	require.NoError(t, err)
	require.Equal(t, model.RequestRejected, req.Status)

	_, err = e.svc.CancelBundle(ctx, aigerim, req.ID)
	require.ErrorIs(t, err, errs.ErrStateConflict)
}

func TestDashboard(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	e := newEnv(t, service.Policy{})
	cam := e.equipment(t, "CAM-01", 1)
	e.equipment(t, "TRI-01", 2)
	lab := e.lab(t, "Mac Lab")

	_, err := e.svc.CreateRental(ctx, timur, model.CreateRentalRequest{EquipmentID: cam.ID})
	require.NoError(t, err)
	r, err := e.svc.CreateRental(ctx, aigerim, model.CreateRentalRequest{EquipmentID: cam.ID, Duration: 1})
	require.NoError(t, err)
	_, err = e.svc.ApproveRental(ctx, admin, r.ID, "")
	require.NoError(t, err)

	today := e.book(t, aigerim, lab.ID, "2025-03-10", "18:00-20:00", 3)
	_, err = e.svc.ApproveBooking(ctx, admin, today.ID, "")
	require.NoError(t, err)
	e.book(t, timur, lab.ID, "2025-03-12", "09:00-11:00", 4)

	_, err = e.svc.CreateBundle(ctx, aigerim, model.CreateBundleRequest{CartItems: []model.CartItem{{EquipmentID: cam.ID}}})
	require.ErrorIs(t, err, errs.ErrInsufficientStock)

	_, err = e.svc.Dashboard(ctx, aigerim)
	require.ErrorIs(t, err, errs.ErrForbidden)

	d, err := e.svc.Dashboard(ctx, admin)
	require.NoError(t, err)
	require.Equal(t, model.Dashboard{
		PendingRentals:    1,
		OverdueRentals:    0,
		PendingBookings:   1,
		TodayBookings:     1,
		OpenRequests:      0,
		DepletedEquipment: 1,
	}, d)

	e.clock.Advance(36 * time.Hour)
	overdue, completed, err := e.svc.Sweep(ctx)
	require.NoError(t, err)
	require.Equal(t, 1, overdue)
	require.Equal(t, 1, completed)

	d, err = e.svc.Dashboard(ctx, admin)
	require.NoError(t, err)
	require.Equal(t, 1, d.OverdueRentals)
	require.Equal(t, 0, d.TodayBookings)
}
