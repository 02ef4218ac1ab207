package model_test

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/aiu-lab/facility-service/facility/internal/errs"
	"github.com/aiu-lab/facility-service/facility/internal/model"
	"github.com/stretchr/testify/require"
)

func TestStock(t *testing.T) {
	t.Parallel()
	tests := []struct {
		name      string
		stock     model.Stock
		available int
		rentable  int
		status    model.EquipmentStatus
		wantErr   bool
	}{
		{name: "fresh", stock: model.Stock{Total: 2}, available: 2, rentable: 2, status: model.EquipmentAvailable},
		{name: "one rented", stock: model.Stock{Total: 2, Rented: 1}, available: 1, rentable: 1, status: model.EquipmentAvailable},
		{name: "all rented", stock: model.Stock{Total: 2, Rented: 2}, available: 0, rentable: 0, status: model.EquipmentRented},
		{name: "rest in maintenance", stock: model.Stock{Total: 3, Rented: 1, Maintenance: 2}, available: 2, rentable: 0, status: model.EquipmentMaintenance},
		{name: "err. total below rented", stock: model.Stock{Total: 1, Rented: 2}, available: 0, rentable: 0, status: model.EquipmentRented, wantErr: true},
		{name: "err. maintenance above available", stock: model.Stock{Total: 2, Rented: 1, Maintenance: 2}, available: 1, rentable: 0, status: model.EquipmentMaintenance, wantErr: true},
		{name: "err. negative", stock: model.Stock{Total: -1}, available: 0, rentable: 0, status: model.EquipmentAvailable, wantErr: true},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			require.Equal(t, tt.available, tt.stock.ComputedAvailable())
			require.Equal(t, tt.rentable, tt.stock.Rentable())
			require.Equal(t, tt.status, tt.stock.Status())
			err := tt.stock.Validate()
			if tt.wantErr {
				require.ErrorIs(t, err, errs.ErrValidation)
				return
			}
			require.NoError(t, err)
		})
	}
}

func TestRentalStatus_CanTransition(t *testing.T) {
	t.Parallel()
	require.True(t, model.RentalPending.CanTransition(model.RentalApproved))
	require.True(t, model.RentalPending.CanTransition(model.RentalRejected))
	require.False(t, model.RentalPending.CanTransition(model.RentalReturned))
	require.True(t, model.RentalOverdue.CanTransition(model.RentalReturned))
	require.True(t, model.RentalDamaged.CanTransition(model.RentalReturned))
	require.False(t, model.RentalReturned.CanTransition(model.RentalApproved))
	require.False(t, model.RentalRejected.CanTransition(model.RentalApproved))

	require.True(t, model.RentalDamaged.Occupying())
	require.False(t, model.RentalPending.Occupying())
}

func TestParseTimeSlot(t *testing.T) {
	t.Parallel()
	tests := []struct {
		raw     string
		want    string
		wantErr bool
	}{
		{raw: "09:00-11:00", want: "09:00-11:00"},
		{raw: " 9:00 – 11:30 ", want: "09:00-11:30"},
		{raw: "13:00—14:00", want: "13:00-14:00"},
		{raw: "11:00-09:00", wantErr: true},
		{raw: "09:00-09:00", wantErr: true},
		{raw: "24:00-25:00", wantErr: true},
		{raw: "09:60-10:00", wantErr: true},
		{raw: "0900-1000", wantErr: true},
		{raw: "", wantErr: true},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.raw, func(t *testing.T) {
			t.Parallel()
			slot, err := model.ParseTimeSlot(tt.raw)
			if tt.wantErr {
				require.ErrorIs(t, err, errs.ErrInvalidTimeSlot)
				require.ErrorIs(t, err, errs.ErrValidation)
				return
			}
			require.NoError(t, err)
			require.Equal(t, tt.want, slot.String())
		})
	}
}

func TestCheckNotPast(t *testing.T) {
	t.Parallel()
	loc := time.FixedZone("ALMT", 5*3600)
	now := time.Date(2025, 3, 10, 10, 0, 0, 0, loc)
	slot := func(s string) model.TimeSlot {
		ts, err := model.ParseTimeSlot(s)
		require.NoError(t, err)
		return ts
	}

	require.ErrorIs(t, model.CheckNotPast(model.NewDate(2025, 3, 9), slot("12:00-13:00"), now, loc), errs.ErrPastBooking)
	require.ErrorIs(t, model.CheckNotPast(model.NewDate(2025, 3, 10), slot("09:00-11:00"), now, loc), errs.ErrPastBooking)
	require.ErrorIs(t, model.CheckNotPast(model.NewDate(2025, 3, 10), slot("10:00-11:00"), now, loc), errs.ErrPastBooking)
	require.NoError(t, model.CheckNotPast(model.NewDate(2025, 3, 10), slot("10:30-11:00"), now, loc))
	require.NoError(t, model.CheckNotPast(model.NewDate(2025, 3, 11), slot("08:00-09:00"), now, loc))
	// 20:00 UTC on the 9th is already the 10th in loc.
	lateUTC := time.Date(2025, 3, 9, 20, 0, 0, 0, time.UTC)
	require.ErrorIs(t, model.CheckNotPast(model.NewDate(2025, 3, 9), slot("23:00-23:59"), lateUTC, loc), errs.ErrPastBooking)
}

func TestFoldStatus(t *testing.T) {
	t.Parallel()
	tests := []struct {
		name    string
		current model.RequestStatus
		items   []model.ItemStatus
		want    model.RequestStatus
	}{
		{name: "all approved", current: model.RequestPending, items: []model.ItemStatus{model.ItemApproved, model.ItemApproved}, want: model.RequestApproved},
		{name: "mixed", current: model.RequestPending, items: []model.ItemStatus{model.ItemApproved, model.ItemRejected}, want: model.RequestPartial},
		{name: "single pending", current: model.RequestPending, items: []model.ItemStatus{model.ItemPending}, want: model.RequestPending},
		{name: "all cancelled", current: model.RequestPartial, items: []model.ItemStatus{model.ItemCancelled, model.ItemCancelled}, want: model.RequestCancelled},
		{name: "all rejected", current: model.RequestPartial, items: []model.ItemStatus{model.ItemRejected}, want: model.RequestRejected},
		{name: "cancelled bundle sticks", current: model.RequestCancelled, items: []model.ItemStatus{model.ItemApproved}, want: model.RequestCancelled},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			require.Equal(t, tt.want, model.FoldStatus(tt.current, tt.items))
		})
	}
}

func TestMergeCart(t *testing.T) {
	t.Parallel()
	merged := model.MergeCart([]model.CartItem{
		{EquipmentID: 7, Quantity: 1, Duration: 2},
		{EquipmentID: 3, Quantity: 2},
		{EquipmentID: 7, Quantity: 2, Duration: 5},
	}, 3)
	require.Equal(t, []model.CartItem{
		{EquipmentID: 7, Quantity: 3, Duration: 5},
		{EquipmentID: 3, Quantity: 2, Duration: 3},
	}, merged)
}

func TestFreeSeats(t *testing.T) {
	t.Parallel()
	free := model.FreeSeats([]int{5, 1, 30})
	require.Len(t, free, 27)
	require.NotContains(t, free, 5)
	require.Equal(t, 2, free[0])
	require.Equal(t, 29, free[len(free)-1])
}

func TestDate_JSON(t *testing.T) {
	t.Parallel()
	var d model.Date
	require.NoError(t, json.Unmarshal([]byte(`"2025-03-10"`), &d))
	require.Equal(t, model.NewDate(2025, 3, 10), d)
	b, err := json.Marshal(d)
	require.NoError(t, err)
	require.Equal(t, `"2025-03-10"`, string(b))
	require.ErrorIs(t, json.Unmarshal([]byte(`"10.03.2025"`), &d), errs.ErrValidation)
}

func TestLab_FacilityList(t *testing.T) {
	t.Parallel()
	l := model.Lab{Facilities: " iMac, projector ,,whiteboard"}
	require.Equal(t, []string{"iMac", "projector", "whiteboard"}, l.FacilityList())
}
