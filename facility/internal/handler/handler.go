package handler

import (
	"net/http"
	"strconv"

	"github.com/aiu-lab/facility-service/facility/internal/errs"
	"github.com/aiu-lab/facility-service/facility/internal/model"
	"github.com/aiu-lab/facility-service/pkg/auth"
	mw "github.com/aiu-lab/facility-service/pkg/middleware"
	"github.com/aiu-lab/facility-service/pkg/validate"
	_ "github.com/aiu-lab/facility-service/swagger"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"github.com/pkg/errors"
	echoSwagger "github.com/swaggo/echo-swagger"
	"go.uber.org/zap"
)

type Handler struct {
	svc FacilityService
	log *zap.Logger
}

func New(svc FacilityService, log *zap.Logger) *Handler {
	return &Handler{
		svc: svc,
		log: log.Named("handler"),
	}
}

func (h *Handler) NewRouter() *echo.Echo {
	e := echo.New()
	const (
		baseRPS = 10
		apiRPS  = 100
	)
	e.Use(middleware.RecoverWithConfig(middleware.RecoverConfig{
		StackSize: 4 << 10, // 4 KB
	}))
	e.Use(middleware.CORSWithConfig(middleware.CORSConfig{
		AllowOrigins:     []string{"*"},
		AllowMethods:     []string{http.MethodGet, http.MethodOptions, http.MethodHead, http.MethodPut, http.MethodPatch, http.MethodPost, http.MethodDelete},
		AllowCredentials: true,
	}))

	base := e.Group("", mw.NewRateLimiter(baseRPS))
	base.GET("/manage/health", h.Health)
	base.GET("/swagger/*", echoSwagger.WrapHandler)

	e.Validator = validate.NewCustomValidator()
	api := e.Group("/api/v1",
		middleware.RequestLoggerWithConfig(mw.RequestLoggerConfig(h.log)),
		middleware.RequestID(),
		mw.NewRateLimiter(apiRPS),
		mw.JwtAuthentication,
	)

	api.GET("/equipment", h.ListEquipment)
	api.POST("/equipment", h.CreateEquipment)
	api.POST("/equipment/checkout", h.Checkout)
	api.GET("/equipment/:id", h.GetEquipment)
	api.PATCH("/equipment/:id", h.UpdateEquipment)
	api.PUT("/equipment/:id", h.UpdateEquipment)
	api.DELETE("/equipment/:id", h.DeactivateEquipment)
	api.GET("/equipment/:id/qr", h.EquipmentQRCode)

	api.GET("/rentals", h.ListRentals)
	api.POST("/rentals", h.CreateRental)
	api.GET("/rentals/:id", h.GetRental)
	api.GET("/rentals/:id/history", h.RentalHistory)
	api.POST("/rentals/:id/approve", h.ApproveRental)
	api.POST("/rentals/:id/reject", h.RejectRental)
	api.POST("/rentals/:id/cancel", h.CancelRental)
	api.POST("/rentals/:id/activate", h.ActivateRental)
	api.POST("/rentals/:id/damage", h.ReportDamage)
	api.POST("/rentals/:id/return", h.ReturnRental)

	api.GET("/equipment-requests", h.ListBundles)
	api.POST("/equipment-requests", h.CreateBundle)
	api.GET("/equipment-requests/:id", h.GetBundle)
	api.GET("/equipment-requests/:id/history", h.BundleHistory)
	api.POST("/equipment-requests/:id/cancel", h.CancelBundle)
	api.POST("/equipment-requests/:id/items/:itemId/approve", h.ApproveItem)
	api.POST("/equipment-requests/:id/items/:itemId/reject", h.RejectItem)

	api.GET("/labs", h.ListLabs)
	api.POST("/labs", h.CreateLab)
	api.GET("/labs/:id", h.GetLab)
	api.PATCH("/labs/:id", h.UpdateLab)
	api.PUT("/labs/:id", h.UpdateLab)

	api.GET("/lab-bookings", h.ListBookings)
	api.POST("/lab-bookings", h.CreateBooking)
	api.GET("/lab-bookings/availability", h.Availability)
	api.GET("/lab-bookings/available-imacs", h.Availability)
	api.GET("/lab-bookings/:id", h.GetBooking)
	api.GET("/lab-bookings/:id/history", h.BookingHistory)
	api.POST("/lab-bookings/:id/approve", h.ApproveBooking)
	api.POST("/lab-bookings/:id/reject", h.RejectBooking)
	api.POST("/lab-bookings/:id/cancel", h.CancelBooking)
	api.POST("/lab-bookings/:id/extend", h.ExtendBooking)
	api.POST("/lab-bookings/:id/checkout", h.CheckoutBooking)

	api.GET("/dashboard", h.Dashboard)
	api.GET("/export/equipment.csv", h.ExportEquipment)
	api.GET("/export/rentals.csv", h.ExportRentals)
	api.GET("/export/lab-bookings.csv", h.ExportBookings)

	return e
}

func (h *Handler) Health(c echo.Context) error {
	return c.String(http.StatusOK, "OK")
}

// actor reads the caller set by the JWT middleware.
func actor(c echo.Context) (model.Actor, error) {
	ctx := c.Request().Context()
	name, err := auth.GetUserName(ctx)
	if err != nil {
		return model.Actor{}, echo.NewHTTPError(http.StatusUnauthorized, err.Error())
	}
	return model.Actor{Username: name, Admin: auth.IsAdmin(ctx)}, nil
}

func paramID(c echo.Context, name string) (int64, error) {
	id, err := strconv.ParseInt(c.Param(name), 10, 64)
	if err != nil || id <= 0 {
		return 0, echo.NewHTTPError(http.StatusBadRequest, "invalid "+name)
	}
	return id, nil
}

func queryInt(c echo.Context, name string) (int64, error) {
	raw := c.QueryParam(name)
	if raw == "" {
		return 0, nil
	}
	v, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		return 0, echo.NewHTTPError(http.StatusBadRequest, "invalid "+name)
	}
	return v, nil
}

// bind decodes and validates the request body into req.
func bind(c echo.Context, req any) error {
	if err := c.Bind(req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	return c.Validate(req)
}

// bindOptional tolerates an empty body for action endpoints.
func bindOptional(c echo.Context, req any) error {
	if c.Request().ContentLength == 0 {
		return nil
	}
	return bind(c, req)
}

func httpError(err error) error {
	var he *echo.HTTPError
	switch {
	case errors.As(err, &he):
		return he
	case errors.Is(err, errs.ErrValidation), errors.Is(err, errs.ErrPastBooking):
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	case errors.Is(err, errs.ErrForbidden):
		return echo.NewHTTPError(http.StatusForbidden, err.Error())
	case errors.Is(err, errs.ErrNotFound):
		return echo.NewHTTPError(http.StatusNotFound, err.Error())
	case errors.Is(err, errs.ErrStateConflict),
		errors.Is(err, errs.ErrSlotConflict),
		errors.Is(err, errs.ErrOutOfStock),
		errors.Is(err, errs.ErrInsufficientStock):
		return echo.NewHTTPError(http.StatusConflict, err.Error())
	}
	return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
}
