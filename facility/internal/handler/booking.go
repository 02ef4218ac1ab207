package handler

import (
	"net/http"

	"github.com/aiu-lab/facility-service/facility/internal/model"
	"github.com/labstack/echo/v4"
)

// CreateBooking godoc
// @Summary      book a seat in a lab for a date and time slot
// @Tags         lab-bookings
// @Accept       json
// @Produce      json
// @Param        request body model.CreateBookingRequest true "booking"
// @Success      201 {object} model.LabBooking
// @Failure      400 {object} errs.ErrorResponse
// @Failure      409 {object} errs.ErrorResponse
// @Router       /lab-bookings [post]
func (h *Handler) CreateBooking(c echo.Context) error {
	who, err := actor(c)
	if err != nil {
		return err
	}
	var req model.CreateBookingRequest
	if err := bind(c, &req); err != nil {
		return err
	}
	b, err := h.svc.CreateBooking(c.Request().Context(), who, req)
	if err != nil {
		return httpError(err)
	}
	return c.JSON(http.StatusCreated, b)
}

// Availability godoc
// @Summary      free seats for a lab, date and time slot
// @Tags         lab-bookings
// @Produce      json
// @Param        lab      query int    false "lab id"
// @Param        labRoom  query string false "lab name"
// @Param        date     query string true  "YYYY-MM-DD"
// @Param        timeSlot query string true  "HH:MM-HH:MM"
// @Success      200 {object} model.Availability
// @Failure      400 {object} errs.ErrorResponse
// @Router       /lab-bookings/availability [get]
func (h *Handler) Availability(c echo.Context) error {
	if _, err := actor(c); err != nil {
		return err
	}
	labID, err := queryInt(c, "lab")
	if err != nil {
		return err
	}
	if labID == 0 {
		if labID, err = queryInt(c, "labId"); err != nil {
			return err
		}
	}
	date := c.QueryParam("date")
	slot := c.QueryParam("timeSlot")
	if date == "" || slot == "" {
		return echo.NewHTTPError(http.StatusBadRequest, "date and timeSlot are required")
	}
	av, err := h.svc.Availability(c.Request().Context(), model.AvailabilityQuery{
		LabID:    labID,
		LabRoom:  c.QueryParam("labRoom"),
		Date:     date,
		TimeSlot: slot,
	})
	if err != nil {
		return httpError(err)
	}
	return c.JSON(http.StatusOK, av)
}

func (h *Handler) ListBookings(c echo.Context) error {
	who, err := actor(c)
	if err != nil {
		return err
	}
	labID, err := queryInt(c, "labId")
	if err != nil {
		return err
	}
	f := model.BookingFilter{
		Username: c.QueryParam("username"),
		Status:   model.BookingStatus(c.QueryParam("status")),
		LabID:    labID,
	}
	if f.Status != "" && !f.Status.Valid() {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid status")
	}
	if raw := c.QueryParam("date"); raw != "" {
		d, err := model.ParseDate(raw)
		if err != nil {
			return httpError(err)
		}
		f.Date = &d
	}
	list, err := h.svc.ListBookings(c.Request().Context(), who, f)
	if err != nil {
		return httpError(err)
	}
	return c.JSON(http.StatusOK, list)
}

func (h *Handler) GetBooking(c echo.Context) error {
	who, err := actor(c)
	if err != nil {
		return err
	}
	id, err := paramID(c, "id")
	if err != nil {
		return err
	}
	b, err := h.svc.GetBooking(c.Request().Context(), who, id)
	if err != nil {
		return httpError(err)
	}
	return c.JSON(http.StatusOK, b)
}

func (h *Handler) BookingHistory(c echo.Context) error {
	who, err := actor(c)
	if err != nil {
		return err
	}
	id, err := paramID(c, "id")
	if err != nil {
		return err
	}
	history, err := h.svc.BookingHistory(c.Request().Context(), who, id)
	if err != nil {
		return httpError(err)
	}
	return c.JSON(http.StatusOK, history)
}

type bookingStep func(c echo.Context, who model.Actor, id int64) (model.LabBooking, error)

func (h *Handler) bookingAction(c echo.Context, do bookingStep) error {
	who, err := actor(c)
	if err != nil {
		return err
	}
	id, err := paramID(c, "id")
	if err != nil {
		return err
	}
	b, err := do(c, who, id)
	if err != nil {
		return httpError(err)
	}
	return c.JSON(http.StatusOK, b)
}

func (h *Handler) ApproveBooking(c echo.Context) error {
	return h.bookingAction(c, func(c echo.Context, who model.Actor, id int64) (model.LabBooking, error) {
		var req model.ReviewRequest
		if err := bindOptional(c, &req); err != nil {
			return model.LabBooking{}, err
		}
		return h.svc.ApproveBooking(c.Request().Context(), who, id, req.Note())
	})
}

func (h *Handler) RejectBooking(c echo.Context) error {
	return h.bookingAction(c, func(c echo.Context, who model.Actor, id int64) (model.LabBooking, error) {
		var req model.ReviewRequest
		if err := bindOptional(c, &req); err != nil {
			return model.LabBooking{}, err
		}
		return h.svc.RejectBooking(c.Request().Context(), who, id, req.Note())
	})
}

func (h *Handler) CancelBooking(c echo.Context) error {
	return h.bookingAction(c, func(c echo.Context, who model.Actor, id int64) (model.LabBooking, error) {
		return h.svc.CancelBooking(c.Request().Context(), who, id)
	})
}

func (h *Handler) ExtendBooking(c echo.Context) error {
	return h.bookingAction(c, func(c echo.Context, who model.Actor, id int64) (model.LabBooking, error) {
		var req model.ExtendBookingRequest
		if err := bind(c, &req); err != nil {
			return model.LabBooking{}, err
		}
		return h.svc.ExtendBooking(c.Request().Context(), who, id, req)
	})
}

func (h *Handler) CheckoutBooking(c echo.Context) error {
	return h.bookingAction(c, func(c echo.Context, who model.Actor, id int64) (model.LabBooking, error) {
		return h.svc.CheckoutBooking(c.Request().Context(), who, id)
	})
}

// Dashboard godoc
// @Summary      counters for the admin overview
// @Tags         dashboard
// @Produce      json
// @Success      200 {object} model.Dashboard
// @Failure      403 {object} errs.ErrorResponse
// @Router       /dashboard [get]
func (h *Handler) Dashboard(c echo.Context) error {
	who, err := actor(c)
	if err != nil {
		return err
	}
	d, err := h.svc.Dashboard(c.Request().Context(), who)
	if err != nil {
		return httpError(err)
	}
	return c.JSON(http.StatusOK, d)
}
