package handler

import (
	"net/http"

	"github.com/aiu-lab/facility-service/facility/internal/model"
	"github.com/labstack/echo/v4"
)

// CreateRental godoc
// @Summary      request a rental
// @Tags         rentals
// @Accept       json
// @Produce      json
// @Param        request body model.CreateRentalRequest true "rental"
// @Success      201 {object} model.Rental
// @Failure      400 {object} errs.ErrorResponse
// @Failure      409 {object} errs.ErrorResponse
// @Router       /rentals [post]
func (h *Handler) CreateRental(c echo.Context) error {
	who, err := actor(c)
	if err != nil {
		return err
	}
	var req model.CreateRentalRequest
	if err := bind(c, &req); err != nil {
		return err
	}
	if req.EquipmentID <= 0 {
		return echo.NewHTTPError(http.StatusBadRequest, "equipmentId is required")
	}
	r, err := h.svc.CreateRental(c.Request().Context(), who, req)
	if err != nil {
		return httpError(err)
	}
	return c.JSON(http.StatusCreated, r)
}

// Checkout accepts the scanned code (or id) of the equipment.
func (h *Handler) Checkout(c echo.Context) error {
	who, err := actor(c)
	if err != nil {
		return err
	}
	var req model.CreateRentalRequest
	if err := bind(c, &req); err != nil {
		return err
	}
	r, err := h.svc.CreateRental(c.Request().Context(), who, req)
	if err != nil {
		return httpError(err)
	}
	return c.JSON(http.StatusCreated, r)
}

// ListRentals godoc
// @Summary      list rentals; students only see their own
// @Tags         rentals
// @Produce      json
// @Param        status      query string false "status"
// @Param        username    query string false "owner (admins)"
// @Param        equipmentId query int    false "equipment"
// @Success      200 {array} model.Rental
// @Router       /rentals [get]
func (h *Handler) ListRentals(c echo.Context) error {
	who, err := actor(c)
	if err != nil {
		return err
	}
	equipmentID, err := queryInt(c, "equipmentId")
	if err != nil {
		return err
	}
	status := model.RentalStatus(c.QueryParam("status"))
	if status != "" && !status.Valid() {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid status")
	}
	list, err := h.svc.ListRentals(c.Request().Context(), who, model.RentalFilter{
		Username:    c.QueryParam("username"),
		Status:      status,
		EquipmentID: equipmentID,
	})
	if err != nil {
		return httpError(err)
	}
	return c.JSON(http.StatusOK, list)
}

func (h *Handler) GetRental(c echo.Context) error {
	who, err := actor(c)
	if err != nil {
		return err
	}
	id, err := paramID(c, "id")
	if err != nil {
		return err
	}
	r, err := h.svc.GetRental(c.Request().Context(), who, id)
	if err != nil {
		return httpError(err)
	}
	return c.JSON(http.StatusOK, r)
}

func (h *Handler) RentalHistory(c echo.Context) error {
	who, err := actor(c)
	if err != nil {
		return err
	}
	id, err := paramID(c, "id")
	if err != nil {
		return err
	}
	history, err := h.svc.RentalHistory(c.Request().Context(), who, id)
	if err != nil {
		return httpError(err)
	}
	return c.JSON(http.StatusOK, history)
}

type rentalStep func(c echo.Context, who model.Actor, id int64) (model.Rental, error)

// rentalAction runs one lifecycle step on /rentals/:id/<action>.
func (h *Handler) rentalAction(c echo.Context, do rentalStep) error {
	who, err := actor(c)
	if err != nil {
		return err
	}
	id, err := paramID(c, "id")
	if err != nil {
		return err
	}
	r, err := do(c, who, id)
	if err != nil {
		return httpError(err)
	}
	return c.JSON(http.StatusOK, r)
}

func (h *Handler) ApproveRental(c echo.Context) error {
	return h.rentalAction(c, func(c echo.Context, who model.Actor, id int64) (model.Rental, error) {
		var req model.ReviewRequest
		if err := bindOptional(c, &req); err != nil {
			return model.Rental{}, err
		}
		return h.svc.ApproveRental(c.Request().Context(), who, id, req.Note())
	})
}

func (h *Handler) RejectRental(c echo.Context) error {
	return h.rentalAction(c, func(c echo.Context, who model.Actor, id int64) (model.Rental, error) {
		var req model.ReviewRequest
		if err := bindOptional(c, &req); err != nil {
			return model.Rental{}, err
		}
		return h.svc.RejectRental(c.Request().Context(), who, id, req.Note())
	})
}

func (h *Handler) CancelRental(c echo.Context) error {
	return h.rentalAction(c, func(c echo.Context, who model.Actor, id int64) (model.Rental, error) {
		return h.svc.CancelRental(c.Request().Context(), who, id)
	})
}

func (h *Handler) ActivateRental(c echo.Context) error {
	return h.rentalAction(c, func(c echo.Context, who model.Actor, id int64) (model.Rental, error) {
		return h.svc.ActivateRental(c.Request().Context(), who, id)
	})
}

func (h *Handler) ReportDamage(c echo.Context) error {
	return h.rentalAction(c, func(c echo.Context, who model.Actor, id int64) (model.Rental, error) {
		var req model.ReviewRequest
		if err := bindOptional(c, &req); err != nil {
			return model.Rental{}, err
		}
		return h.svc.ReportDamage(c.Request().Context(), who, id, req.Note())
	})
}

// ReturnRental godoc
// @Summary      return a rental; repeating it is a no-op
// @Tags         rentals
// @Produce      json
// @Param        id path int true "rental id"
// @Success      200 {object} model.Rental
// @Failure      409 {object} errs.ErrorResponse
// @Router       /rentals/{id}/return [post]
func (h *Handler) ReturnRental(c echo.Context) error {
	return h.rentalAction(c, func(c echo.Context, who model.Actor, id int64) (model.Rental, error) {
		return h.svc.ReturnRental(c.Request().Context(), who, id)
	})
}
