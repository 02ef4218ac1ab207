package app

import (
	"context"
	"fmt"
	"io"

	"github.com/aiu-lab/facility-service/facility/internal/export"
	"github.com/aiu-lab/facility-service/facility/internal/model"
)

const (
	ExportEquipment = "equipment"
	ExportRentals   = "rentals"
	ExportBookings  = "bookings"
)

// ExportKinds lists the accepted Export kinds.
var ExportKinds = []string{ExportEquipment, ExportRentals, ExportBookings}

// Export writes the computed state of kind as CSV, after the read sweeps ran.
func Export(ctx context.Context, deps *Deps, kind string, w io.Writer) error {
	svc, who := deps.Service, model.SystemActor
	switch kind {
	case ExportEquipment:
		items, err := svc.ListEquipment(ctx, who, model.EquipmentFilter{ShowAll: true})
		if err != nil {
			return err
		}
		return export.Equipment(w, items)
	case ExportRentals:
		list, err := svc.ListRentals(ctx, who, model.RentalFilter{})
		if err != nil {
			return err
		}
		return export.Rentals(w, list)
	case ExportBookings:
		list, err := svc.ListBookings(ctx, who, model.BookingFilter{})
		if err != nil {
			return err
		}
		return export.Bookings(w, list)
	default:
		return fmt.Errorf("unknown export %q", kind)
	}
}
