package validate

import (
	"net/http"
	"regexp"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
)

type CustomValidator struct {
	validator *validator.Validate
}

func NewCustomValidator() *CustomValidator {
	v := validator.New()
	_ = v.RegisterValidation("timeslot", validateTimeSlot)
	return &CustomValidator{validator: v}
}

func (cv *CustomValidator) Validate(i interface{}) error {
	if err := cv.validator.Struct(i); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	return nil
}

// HH:MM-HH:MM with optional spaces and an en or em dash; ordering is checked by the service.
var timeSlotRe = regexp.MustCompile(`^\d{1,2}:\d{2}[-–—]\d{1,2}:\d{2}$`)

func validateTimeSlot(fl validator.FieldLevel) bool {
	s := strings.ReplaceAll(strings.TrimSpace(fl.Field().String()), " ", "")
	if s == "" {
		return true
	}
	return timeSlotRe.MatchString(s)
}
