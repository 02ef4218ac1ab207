package errs

import (
	"errors"
	"fmt"
)

var (
	ErrNotFound   = errors.New("not found")
	ErrForbidden  = errors.New("forbidden")
	ErrValidation = errors.New("validation failed")

	ErrInvalidTimeSlot   = fmt.Errorf("%w: invalid time slot, want HH:MM-HH:MM", ErrValidation)
	ErrEmptyCart         = fmt.Errorf("%w: cart is empty", ErrValidation)
	ErrEquipmentInactive = fmt.Errorf("%w: equipment is not active", ErrValidation)

	ErrPastBooking       = errors.New("booking date and time slot must be in the future")
	ErrStateConflict     = errors.New("action is not allowed in the current status")
	ErrOutOfStock        = errors.New("equipment is out of stock")
	ErrInsufficientStock = errors.New("insufficient stock for requested quantity")
	ErrSlotConflict      = errors.New("seat is already taken for this time slot")
)

type ErrorResponse struct {
	Message string `json:"message"`
}
