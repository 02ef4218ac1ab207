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

func (e *env) lab(t *testing.T, name string) model.Lab {
	t.Helper()
	facilities := "iMac, Final Cut ,"
	l, err := e.svc.CreateLab(context.Background(), admin, model.LabRequest{Name: &name, Facilities: &facilities})
	require.NoError(t, err)
	return l
}

func (e *env) book(t *testing.T, actor model.Actor, labID int64, date, slot string, seat int) model.LabBooking {
	t.Helper()
	b, err := e.svc.CreateBooking(context.Background(), actor, model.CreateBookingRequest{
		LabID: labID, Date: date, TimeSlot: slot, SeatNumber: seat,
	})
	require.NoError(t, err)
	return b
}

func TestBooking_SeatClaims(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	e := newEnv(t, service.Policy{})
	lab := e.lab(t, "Mac Lab")
	require.Equal(t, []string{"iMac", "Final Cut"}, lab.FacilityList())

	b := e.book(t, aigerim, lab.ID, "2025-03-11", "09:00 – 11:00", 5)
	require.Equal(t, model.BookingPending, b.Status)
	require.Equal(t, "09:00-11:00", b.TimeSlot)
	require.Equal(t, "09:00", b.StartTime)
	require.Equal(t, "11:00", b.EndTime)

	av, err := e.svc.Availability(ctx, model.AvailabilityQuery{LabRoom: "Mac Lab", Date: "2025-03-11", TimeSlot: "09:00-11:00"})
	require.NoError(t, err)
	require.Len(t, av.AvailableSeats, model.SeatMax-1)
	require.NotContains(t, av.AvailableSeats, 5)

	_, err = e.svc.CreateBooking(ctx, timur, model.CreateBookingRequest{
		LabID: lab.ID, Date: "2025-03-11", TimeSlot: "09:00-11:00", SeatNumber: 5,
	})
	require.ErrorIs(t, err, errs.ErrSlotConflict)

	// another slot of the same day is a separate claim
	e.book(t, timur, lab.ID, "2025-03-11", "11:00-13:00", 5)

	_, err = e.svc.CancelBooking(ctx, timur, b.ID)
	require.ErrorIs(t, err, errs.ErrForbidden)
	b, err = e.svc.CancelBooking(ctx, aigerim, b.ID)
	require.NoError(t, err)
	require.Equal(t, model.BookingRejected, b.Status)

	// the seat is free again once the claim is withdrawn
	e.book(t, timur, lab.ID, "2025-03-11", "09:00-11:00", 5)
}

func TestBooking_Validation(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	e := newEnv(t, service.Policy{})
	lab := e.lab(t, "Mac Lab")

	tests := []struct {
		name string
		req  model.CreateBookingRequest
		err  error
	}{
		{
			name: "reversed slot",
			req:  model.CreateBookingRequest{LabID: lab.ID, Date: "2025-03-11", TimeSlot: "11:00-09:00", SeatNumber: 1},
			err:  errs.ErrInvalidTimeSlot,
		},
		{
			name: "garbage slot",
			req:  model.CreateBookingRequest{LabID: lab.ID, Date: "2025-03-11", TimeSlot: "morning", SeatNumber: 1},
			err:  errs.ErrValidation,
		},
		{
			name: "yesterday",
			req:  model.CreateBookingRequest{LabID: lab.ID, Date: "2025-03-09", TimeSlot: "09:00-11:00", SeatNumber: 1},
			err:  errs.ErrPastBooking,
		},
		{
			name: "today already started",
			req:  model.CreateBookingRequest{LabID: lab.ID, Date: "2025-03-10", TimeSlot: "08:00-10:00", SeatNumber: 1},
			err:  errs.ErrPastBooking,
		},
		{
			name: "seat out of pool",
			req:  model.CreateBookingRequest{LabID: lab.ID, Date: "2025-03-11", TimeSlot: "09:00-11:00", SeatNumber: 31},
			err:  errs.ErrValidation,
		},
		{
			name: "unknown lab",
			req:  model.CreateBookingRequest{LabRoom: "Nowhere", Date: "2025-03-11", TimeSlot: "09:00-11:00", SeatNumber: 1},
			err:  errs.ErrNotFound,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := e.svc.CreateBooking(ctx, aigerim, tt.req)
			require.ErrorIs(t, err, tt.err)
		})
	}

	// later today is still bookable
	b, err := e.svc.CreateBooking(ctx, aigerim, model.CreateBookingRequest{
		Date: "2025-03-10", TimeSlot: "08:30-10:00", SeatNumber: 1,
	})
	require.NoError(t, err)
	require.Equal(t, lab.ID, b.LabID)
}

func TestBooking_ApproveExtendCheckout(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	e := newEnv(t, service.Policy{})
	lab := e.lab(t, "Mac Lab")

	b := e.book(t, aigerim, lab.ID, "2025-03-11", "09:00-11:00", 5)
	e.book(t, timur, lab.ID, "2025-03-11", "11:00-13:00", 5)

	_, err := e.svc.ApproveBooking(ctx, aigerim, b.ID, "")
	require.ErrorIs(t, err, errs.ErrForbidden)
	_, err = e.svc.ExtendBooking(ctx, aigerim, b.ID, model.ExtendBookingRequest{TimeSlot: "09:00-12:00"})
	require.ErrorIs(t, err, errs.ErrStateConflict)

	b, err = e.svc.ApproveBooking(ctx, admin, b.ID, "enjoy")
	require.NoError(t, err)
	require.Equal(t, model.BookingApproved, b.Status)
	require.Equal(t, "enjoy", *b.AdminComment)

	_, err = e.svc.RejectBooking(ctx, admin, b.ID, "")
	require.ErrorIs(t, err, errs.ErrStateConflict)

	_, err = e.svc.ExtendBooking(ctx, aigerim, b.ID, model.ExtendBookingRequest{TimeSlot: "11:00-13:00"})
	require.ErrorIs(t, err, errs.ErrSlotConflict)

	b, err = e.svc.ExtendBooking(ctx, aigerim, b.ID, model.ExtendBookingRequest{TimeSlot: "09:00—12:00"})
	require.NoError(t, err)
	require.Equal(t, "09:00-12:00", b.TimeSlot)
	require.Equal(t, "12:00", b.EndTime)

	_, err = e.svc.CheckoutBooking(ctx, timur, b.ID)
	require.ErrorIs(t, err, errs.ErrForbidden)
	b, err = e.svc.CheckoutBooking(ctx, aigerim, b.ID)
	require.NoError(t, err)
	require.Equal(t, model.BookingCompleted, b.Status)

	history, err := e.svc.BookingHistory(ctx, aigerim, b.ID)
	require.NoError(t, err)
	require.Len(t, history, 4)
	require.Equal(t, "09:00-11:00 -> 09:00-12:00", history[2].Note)
}

// Scenario D: an approved booking whose slot has ended reads as completed.
func TestBooking_CompletedOnRead(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	e := newEnv(t, service.Policy{})
	lab := e.lab(t, "Mac Lab")

	done := e.book(t, aigerim, lab.ID, "2025-03-11", "09:00-11:00", 1)
	pending := e.book(t, aigerim, lab.ID, "2025-03-11", "09:00-11:00", 2)
	_, err := e.svc.ApproveBooking(ctx, admin, done.ID, "")
	require.NoError(t, err)

	e.clock.Advance(26 * time.Hour)
	got, err := e.svc.GetBooking(ctx, aigerim, done.ID)
	require.NoError(t, err)
	require.Equal(t, model.BookingApproved, got.Status, "10:00 on the day, slot not over")

	e.clock.Advance(2 * time.Hour)
	list, err := e.svc.ListBookings(ctx, aigerim, model.BookingFilter{})
	require.NoError(t, err)
	require.Len(t, list, 2)
	byID := map[int64]model.BookingStatus{}
	for _, b := range list {
		byID[b.ID] = b.Status
	}
	require.Equal(t, model.BookingCompleted, byID[done.ID])
	require.Equal(t, model.BookingPending, byID[pending.ID])

	_, err = e.svc.GetBooking(ctx, timur, done.ID)
	require.ErrorIs(t, err, errs.ErrForbidden)
}

func TestBooking_LabFallbackNeedsSingleLab(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	e := newEnv(t, service.Policy{})
	e.lab(t, "Mac Lab")
	e.lab(t, "Design Studio")

	_, err := e.svc.CreateBooking(ctx, aigerim, model.CreateBookingRequest{
		Date: "2025-03-11", TimeSlot: "09:00-11:00", SeatNumber: 1,
	})
	require.ErrorIs(t, err, errs.ErrValidation)
}
