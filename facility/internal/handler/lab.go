package handler

import (
	"net/http"

	"github.com/aiu-lab/facility-service/facility/internal/model"
	"github.com/labstack/echo/v4"
)

func (h *Handler) ListLabs(c echo.Context) error {
	who, err := actor(c)
	if err != nil {
		return err
	}
	labs, err := h.svc.ListLabs(c.Request().Context(), who)
	if err != nil {
		return httpError(err)
	}
	return c.JSON(http.StatusOK, labs)
}

func (h *Handler) GetLab(c echo.Context) error {
	who, err := actor(c)
	if err != nil {
		return err
	}
	id, err := paramID(c, "id")
	if err != nil {
		return err
	}
	lab, err := h.svc.GetLab(c.Request().Context(), who, id)
	if err != nil {
		return httpError(err)
	}
	return c.JSON(http.StatusOK, lab)
}

func (h *Handler) CreateLab(c echo.Context) error {
	who, err := actor(c)
	if err != nil {
		return err
	}
	var req model.LabRequest
	if err := bind(c, &req); err != nil {
		return err
	}
	lab, err := h.svc.CreateLab(c.Request().Context(), who, req)
	if err != nil {
		return httpError(err)
	}
	return c.JSON(http.StatusCreated, lab)
}

func (h *Handler) UpdateLab(c echo.Context) error {
	who, err := actor(c)
	if err != nil {
		return err
	}
	id, err := paramID(c, "id")
	if err != nil {
		return err
	}
	var req model.LabRequest
	if err := bind(c, &req); err != nil {
		return err
	}
	lab, err := h.svc.UpdateLab(c.Request().Context(), who, id, req)
	if err != nil {
		return httpError(err)
	}
	return c.JSON(http.StatusOK, lab)
}
