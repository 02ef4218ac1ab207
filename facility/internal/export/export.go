// Package export renders computed facility state as CSV.
package export

import (
	"encoding/csv"
	"io"
	"strconv"
	"strings"
	"time"

	"github.com/aiu-lab/facility-service/facility/internal/model"
	"github.com/pkg/errors"
)

var (
	equipmentHeader = []string{
		"id", "code", "name", "categories", "quantity_total", "quantity_maintenance",
		"rented_units", "available_quantity", "rentable_quantity", "status", "is_active",
	}
	rentalHeader = []string{
		"id", "equipment_id", "equipment_code", "equipment_name", "username", "quantity", "status",
		"rental_date", "expected_return_date", "actual_return_date", "issued_by", "returned_to", "notes",
	}
	bookingHeader = []string{
		"id", "lab", "username", "date", "time_slot", "seat_number", "status",
		"purpose", "participants", "reviewed_by", "admin_comment", "created_at",
	}
)

func Equipment(w io.Writer, items []model.EquipmentView) error {
	rows := make([][]string, 0, len(items))
	for _, e := range items {
		rows = append(rows, []string{
			itoa64(e.ID), e.Code, e.Name, strings.Join(e.Categories, ";"),
			strconv.Itoa(e.QuantityTotal), strconv.Itoa(e.QuantityMaintenance),
			strconv.Itoa(e.RentedUnits), strconv.Itoa(e.Available), strconv.Itoa(e.Rentable),
			string(e.Status), strconv.FormatBool(e.IsActive),
		})
	}
	return write(w, equipmentHeader, rows)
}

func Rentals(w io.Writer, rentals []model.Rental) error {
	rows := make([][]string, 0, len(rentals))
	for _, r := range rentals {
		rows = append(rows, []string{
			itoa64(r.ID), itoa64(r.EquipmentID), r.EquipmentCode, r.EquipmentName, r.Username,
			strconv.Itoa(r.Quantity), string(r.Status),
			stamp(r.RentalDate), stamp(r.ExpectedReturnDate), stamp(r.ActualReturnDate),
			str(r.IssuedBy), str(r.ReturnedTo), r.Notes,
		})
	}
	return write(w, rentalHeader, rows)
}

func Bookings(w io.Writer, bookings []model.LabBooking) error {
	rows := make([][]string, 0, len(bookings))
	for _, b := range bookings {
		rows = append(rows, []string{
			itoa64(b.ID), b.LabName, b.Username, b.BookingDate.String(), b.TimeSlot,
			strconv.Itoa(b.SeatNumber), string(b.Status), b.Purpose, strconv.Itoa(b.Participants),
			str(b.ReviewedBy), str(b.AdminComment), b.CreatedAt.Format(time.RFC3339),
		})
	}
	return write(w, bookingHeader, rows)
}

func write(w io.Writer, header []string, rows [][]string) error {
	cw := csv.NewWriter(w)
	if err := cw.Write(header); err != nil {
		return errors.Wrap(err, "csv header")
	}
	if err := cw.WriteAll(rows); err != nil {
		return errors.Wrap(err, "csv rows")
	}
	return nil
}

func itoa64(v int64) string {
	return strconv.FormatInt(v, 10)
}

func stamp(t *time.Time) string {
	if t == nil {
		return ""
	}
	return t.Format(time.RFC3339)
}

func str(p *string) string {
	if p == nil {
		return ""
	}
	return *p
}
