package export

import (
	"bytes"
	"encoding/csv"
	"testing"
	"time"

	"github.com/aiu-lab/facility-service/facility/internal/model"
	"github.com/stretchr/testify/require"
)

func TestEquipment(t *testing.T) {
	t.Parallel()
	e := model.Equipment{
		ID: 7, Code: "CAM-01", Name: "Sony, A7", Categories: []string{"camera", "video"},
		QuantityTotal: 3, QuantityMaintenance: 1, RentedUnits: 1, IsActive: true,
	}
	var buf bytes.Buffer
	require.NoError(t, Equipment(&buf, []model.EquipmentView{e.View()}))

	records, err := csv.NewReader(&buf).ReadAll()
	require.NoError(t, err)
	require.Len(t, records, 2)
	require.Equal(t, equipmentHeader, records[0])
	require.Equal(t, []string{"7", "CAM-01", "Sony, A7", "camera;video", "3", "1", "1", "2", "1", "available", "true"}, records[1])
}

func TestRentals(t *testing.T) {
	t.Parallel()
	issued := time.Date(2025, 3, 10, 8, 0, 0, 0, time.UTC)
	due := issued.AddDate(0, 0, 3)
	by := "admin"
	r := model.Rental{
		ID: 1, EquipmentID: 7, EquipmentCode: "CAM-01", EquipmentName: "Sony", Username: "aigerim",
		Quantity: 1, Status: model.RentalOverdue, RentalDate: &issued, ExpectedReturnDate: &due, IssuedBy: &by,
	}
	var buf bytes.Buffer
	require.NoError(t, Rentals(&buf, []model.Rental{r}))

	records, err := csv.NewReader(&buf).ReadAll()
	require.NoError(t, err)
	require.Equal(t, []string{
		"1", "7", "CAM-01", "Sony", "aigerim", "1", "overdue",
		"2025-03-10T08:00:00Z", "2025-03-13T08:00:00Z", "", "admin", "", "",
	}, records[1])
}

func TestBookings_Empty(t *testing.T) {
	t.Parallel()
	var buf bytes.Buffer
	require.NoError(t, Bookings(&buf, nil))
	records, err := csv.NewReader(&buf).ReadAll()
	require.NoError(t, err)
	require.Equal(t, [][]string{bookingHeader}, records)
}
