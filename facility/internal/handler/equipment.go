package handler

import (
	"net/http"
	"strconv"

	"github.com/aiu-lab/facility-service/facility/internal/model"
	"github.com/labstack/echo/v4"
)

// ListEquipment godoc
// @Summary      list equipment
// @Tags         equipment
// @Produce      json
// @Param        category query string false "category tag"
// @Param        search   query string false "name or code substring"
// @Param        showAll  query bool   false "include inactive (admins)"
// @Success      200 {array} model.EquipmentView
// @Router       /equipment [get]
func (h *Handler) ListEquipment(c echo.Context) error {
	who, err := actor(c)
	if err != nil {
		return err
	}
	showAll, _ := strconv.ParseBool(c.QueryParam("showAll"))
	f := model.EquipmentFilter{
		Category: c.QueryParam("category"),
		Search:   c.QueryParam("search"),
		ShowAll:  showAll,
	}
	items, err := h.svc.ListEquipment(c.Request().Context(), who, f)
	if err != nil {
		return httpError(err)
	}
	return c.JSON(http.StatusOK, items)
}

func (h *Handler) GetEquipment(c echo.Context) error {
	who, err := actor(c)
	if err != nil {
		return err
	}
	id, err := paramID(c, "id")
	if err != nil {
		return err
	}
	e, err := h.svc.GetEquipment(c.Request().Context(), who, id)
	if err != nil {
		return httpError(err)
	}
	return c.JSON(http.StatusOK, e)
}

// CreateEquipment godoc
// @Summary      create equipment
// @Tags         equipment
// @Accept       json
// @Produce      json
// @Param        request body model.CreateEquipmentRequest true "equipment"
// @Success      201 {object} model.EquipmentView
// @Failure      400 {object} errs.ErrorResponse
// @Failure      403 {object} errs.ErrorResponse
// @Router       /equipment [post]
func (h *Handler) CreateEquipment(c echo.Context) error {
	who, err := actor(c)
	if err != nil {
		return err
	}
	var req model.CreateEquipmentRequest
	if err := bind(c, &req); err != nil {
		return err
	}
	e, err := h.svc.CreateEquipment(c.Request().Context(), who, req)
	if err != nil {
		return httpError(err)
	}
	return c.JSON(http.StatusCreated, e)
}

func (h *Handler) UpdateEquipment(c echo.Context) error {
	who, err := actor(c)
	if err != nil {
		return err
	}
	id, err := paramID(c, "id")
	if err != nil {
		return err
	}
	var req model.UpdateEquipmentRequest
	if err := bind(c, &req); err != nil {
		return err
	}
	e, err := h.svc.UpdateEquipment(c.Request().Context(), who, id, req)
	if err != nil {
		return httpError(err)
	}
	return c.JSON(http.StatusOK, e)
}

func (h *Handler) DeactivateEquipment(c echo.Context) error {
	who, err := actor(c)
	if err != nil {
		return err
	}
	id, err := paramID(c, "id")
	if err != nil {
		return err
	}
	if err := h.svc.DeactivateEquipment(c.Request().Context(), who, id); err != nil {
		return httpError(err)
	}
	return c.NoContent(http.StatusNoContent)
}

// EquipmentQRCode serves the stored PNG.
func (h *Handler) EquipmentQRCode(c echo.Context) error {
	if _, err := actor(c); err != nil {
		return err
	}
	id, err := paramID(c, "id")
	if err != nil {
		return err
	}
	png, err := h.svc.EquipmentQRCode(c.Request().Context(), id)
	if err != nil {
		return httpError(err)
	}
	return c.Blob(http.StatusOK, "image/png", png)
}
