package handler

import (
	"bytes"
	"fmt"
	"net/http"
	"time"

	"github.com/aiu-lab/facility-service/facility/internal/errs"
	"github.com/aiu-lab/facility-service/facility/internal/export"
	"github.com/aiu-lab/facility-service/facility/internal/model"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

const mimeCSV = "text/csv; charset=utf-8"

func (h *Handler) csv(c echo.Context, name string, render func(buf *bytes.Buffer) error) error {
	var buf bytes.Buffer
	if err := render(&buf); err != nil {
		return httpError(err)
	}
	filename := fmt.Sprintf("%s_%s.csv", name, time.Now().Format("20060102"))
	c.Response().Header().Set(echo.HeaderContentDisposition, fmt.Sprintf(`attachment; filename="%s"`, filename))
	return c.Blob(http.StatusOK, mimeCSV, buf.Bytes())
}

func adminOnly(c echo.Context) (model.Actor, error) {
	who, err := actor(c)
	if err != nil {
		return model.Actor{}, err
	}
	if !who.Admin {
		return model.Actor{}, httpError(errors.Wrap(errs.ErrForbidden, "admin role required"))
	}
	return who, nil
}

func (h *Handler) ExportEquipment(c echo.Context) error {
	who, err := adminOnly(c)
	if err != nil {
		return err
	}
	return h.csv(c, "equipment_inventory", func(buf *bytes.Buffer) error {
		items, err := h.svc.ListEquipment(c.Request().Context(), who, model.EquipmentFilter{ShowAll: true})
		if err != nil {
			return err
		}
		return export.Equipment(buf, items)
	})
}

// ExportRentals lists rentals after the overdue sweep, optionally for one equipment.
func (h *Handler) ExportRentals(c echo.Context) error {
	who, err := adminOnly(c)
	if err != nil {
		return err
	}
	equipmentID, err := queryInt(c, "equipmentId")
	if err != nil {
		return err
	}
	return h.csv(c, "rentals", func(buf *bytes.Buffer) error {
		list, err := h.svc.ListRentals(c.Request().Context(), who, model.RentalFilter{EquipmentID: equipmentID})
		if err != nil {
			return err
		}
		return export.Rentals(buf, list)
	})
}

func (h *Handler) ExportBookings(c echo.Context) error {
	who, err := adminOnly(c)
	if err != nil {
		return err
	}
	labID, err := queryInt(c, "labId")
	if err != nil {
		return err
	}
	return h.csv(c, "lab_bookings", func(buf *bytes.Buffer) error {
		list, err := h.svc.ListBookings(c.Request().Context(), who, model.BookingFilter{LabID: labID})
		if err != nil {
			return err
		}
		return export.Bookings(buf, list)
	})
}
