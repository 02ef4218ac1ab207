package memory_test

import (
	"context"
	"testing"

	"github.com/aiu-lab/facility-service/facility/internal/errs"
	"github.com/aiu-lab/facility-service/facility/internal/model"
	"github.com/aiu-lab/facility-service/facility/internal/repository"
	"github.com/aiu-lab/facility-service/facility/internal/repository/memory"
	"github.com/stretchr/testify/require"
)

func TestRepository_WithTxRollback(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	repo := memory.New()
	e, err := repo.CreateEquipment(ctx, model.Equipment{Code: "CAM-01", Name: "Canon R6", QuantityTotal: 2, IsActive: true})
	require.NoError(t, err)

	err = repo.WithTx(ctx, func(tx repository.Repository) error {
		if _, err := tx.CreateRental(ctx, model.Rental{EquipmentID: e.ID, Username: "dana", Quantity: 2, DurationDays: 3, Status: model.RentalApproved}); err != nil {
			return err
		}
		locked, err := tx.LockEquipment(ctx, e.ID)
		require.NoError(t, err)
		require.Equal(t, 2, locked.RentedUnits)
		return errs.ErrOutOfStock
	})
	require.ErrorIs(t, err, errs.ErrOutOfStock)

	got, err := repo.GetEquipment(ctx, e.ID)
	require.NoError(t, err)
	require.Equal(t, 0, got.RentedUnits)
	rentals, err := repo.ListRentals(ctx, model.RentalFilter{})
	require.NoError(t, err)
	require.Empty(t, rentals)
}

func TestRepository_SeatClaimGuard(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	repo := memory.New()
	lab, err := repo.CreateLab(ctx, model.Lab{Name: "BMC Lab", Capacity: 30, IsActive: true})
	require.NoError(t, err)

	b := model.LabBooking{
		LabID:       lab.ID,
		Username:    "aigerim",
		BookingDate: model.NewDate(2025, 3, 10),
		TimeSlot:    "09:00-11:00",
		StartTime:   "09:00",
		EndTime:     "11:00",
		SeatNumber:  5,
		Status:      model.BookingPending,
	}
	first, err := repo.CreateBooking(ctx, b)
	require.NoError(t, err)
	require.Equal(t, "BMC Lab", first.LabName)

	b.Username = "timur"
	_, err = repo.CreateBooking(ctx, b)
	require.ErrorIs(t, err, errs.ErrSlotConflict)

	first.Status = model.BookingRejected
	require.NoError(t, repo.UpdateBooking(ctx, first))
	_, err = repo.CreateBooking(ctx, b)
	require.NoError(t, err)

	seats, err := repo.TakenSeats(ctx, lab.ID, b.BookingDate, b.TimeSlot)
	require.NoError(t, err)
	require.Equal(t, []int{5}, seats)
}

func TestRepository_Labs(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	repo := memory.New()
	bmc, err := repo.CreateLab(ctx, model.Lab{Name: "BMC Lab", Capacity: 30, IsActive: true})
	require.NoError(t, err)
	_, err = repo.CreateLab(ctx, model.Lab{Name: "bmc lab", Capacity: 10})
	require.ErrorIs(t, err, errs.ErrValidation)
	old, err := repo.CreateLab(ctx, model.Lab{Name: "Archive Room", Capacity: 4})
	require.NoError(t, err)

	got, err := repo.GetLabByName(ctx, "BMC LAB")
	require.NoError(t, err)
	require.Equal(t, bmc.ID, got.ID)
	_, err = repo.GetLab(ctx, 999)
	require.ErrorIs(t, err, errs.ErrNotFound)

	old.Name = "BMC Lab"
	_, err = repo.UpdateLab(ctx, old)
	require.ErrorIs(t, err, errs.ErrValidation)

	active, err := repo.ListLabs(ctx, true)
	require.NoError(t, err)
	require.Len(t, active, 1)
	all, err := repo.ListLabs(ctx, false)
	require.NoError(t, err)
	require.Equal(t, "Archive Room", all[0].Name)
}
