package handler

import (
	"net/http"

	"github.com/aiu-lab/facility-service/facility/internal/model"
	"github.com/labstack/echo/v4"
)

// CreateBundle godoc
// @Summary      submit a cart of equipment as one request
// @Tags         equipment-requests
// @Accept       json
// @Produce      json
// @Param        request body model.CreateBundleRequest true "cart"
// @Success      201 {object} model.EquipmentRequest
// @Failure      400 {object} errs.ErrorResponse
// @Failure      409 {object} errs.ErrorResponse
// @Router       /equipment-requests [post]
func (h *Handler) CreateBundle(c echo.Context) error {
	who, err := actor(c)
	if err != nil {
		return err
	}
	var req model.CreateBundleRequest
	if err := bind(c, &req); err != nil {
		return err
	}
	out, err := h.svc.CreateBundle(c.Request().Context(), who, req)
	if err != nil {
		return httpError(err)
	}
	return c.JSON(http.StatusCreated, out)
}

func (h *Handler) ListBundles(c echo.Context) error {
	who, err := actor(c)
	if err != nil {
		return err
	}
	list, err := h.svc.ListBundles(c.Request().Context(), who, model.RequestFilter{
		Username: c.QueryParam("username"),
		Status:   model.RequestStatus(c.QueryParam("status")),
	})
	if err != nil {
		return httpError(err)
	}
	return c.JSON(http.StatusOK, list)
}

func (h *Handler) GetBundle(c echo.Context) error {
	who, err := actor(c)
	if err != nil {
		return err
	}
	id, err := paramID(c, "id")
	if err != nil {
		return err
	}
	out, err := h.svc.GetBundle(c.Request().Context(), who, id)
	if err != nil {
		return httpError(err)
	}
	return c.JSON(http.StatusOK, out)
}

func (h *Handler) BundleHistory(c echo.Context) error {
	who, err := actor(c)
	if err != nil {
		return err
	}
	id, err := paramID(c, "id")
	if err != nil {
		return err
	}
	history, err := h.svc.BundleHistory(c.Request().Context(), who, id)
	if err != nil {
		return httpError(err)
	}
	return c.JSON(http.StatusOK, history)
}

func (h *Handler) CancelBundle(c echo.Context) error {
	who, err := actor(c)
	if err != nil {
		return err
	}
	id, err := paramID(c, "id")
	if err != nil {
		return err
	}
	out, err := h.svc.CancelBundle(c.Request().Context(), who, id)
	if err != nil {
		return httpError(err)
	}
	return c.JSON(http.StatusOK, out)
}

func (h *Handler) ApproveItem(c echo.Context) error {
	who, err := actor(c)
	if err != nil {
		return err
	}
	id, err := paramID(c, "id")
	if err != nil {
		return err
	}
	itemID, err := paramID(c, "itemId")
	if err != nil {
		return err
	}
	out, err := h.svc.ApproveItem(c.Request().Context(), who, id, itemID)
	if err != nil {
		return httpError(err)
	}
	return c.JSON(http.StatusOK, out)
}

func (h *Handler) RejectItem(c echo.Context) error {
	who, err := actor(c)
	if err != nil {
		return err
	}
	id, err := paramID(c, "id")
	if err != nil {
		return err
	}
	itemID, err := paramID(c, "itemId")
	if err != nil {
		return err
	}
	var req model.ReviewRequest
	if err := bindOptional(c, &req); err != nil {
		return err
	}
	out, err := h.svc.RejectItem(c.Request().Context(), who, id, itemID, req.Note())
	if err != nil {
		return httpError(err)
	}
	return c.JSON(http.StatusOK, out)
}
