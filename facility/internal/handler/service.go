package handler

import (
	"context"

	"github.com/aiu-lab/facility-service/facility/internal/model"
	"github.com/aiu-lab/facility-service/facility/internal/service"
)

//go:generate go run github.com/golang/mock/mockgen -source=service.go -destination=mocks/mock.go

type FacilityService interface {
	// equipment
	CreateEquipment(ctx context.Context, actor model.Actor, req model.CreateEquipmentRequest) (model.EquipmentView, error)
	UpdateEquipment(ctx context.Context, actor model.Actor, id int64, req model.UpdateEquipmentRequest) (model.EquipmentView, error)
	DeactivateEquipment(ctx context.Context, actor model.Actor, id int64) error
	GetEquipment(ctx context.Context, actor model.Actor, id int64) (model.EquipmentView, error)
	ListEquipment(ctx context.Context, actor model.Actor, f model.EquipmentFilter) ([]model.EquipmentView, error)
	EquipmentQRCode(ctx context.Context, id int64) ([]byte, error)

	// rentals
	CreateRental(ctx context.Context, actor model.Actor, req model.CreateRentalRequest) (model.Rental, error)
	ApproveRental(ctx context.Context, actor model.Actor, id int64, comment string) (model.Rental, error)
	RejectRental(ctx context.Context, actor model.Actor, id int64, reason string) (model.Rental, error)
	CancelRental(ctx context.Context, actor model.Actor, id int64) (model.Rental, error)
	ActivateRental(ctx context.Context, actor model.Actor, id int64) (model.Rental, error)
	ReportDamage(ctx context.Context, actor model.Actor, id int64, note string) (model.Rental, error)
	ReturnRental(ctx context.Context, actor model.Actor, id int64) (model.Rental, error)
	GetRental(ctx context.Context, actor model.Actor, id int64) (model.Rental, error)
	ListRentals(ctx context.Context, actor model.Actor, f model.RentalFilter) ([]model.Rental, error)
	RentalHistory(ctx context.Context, actor model.Actor, id int64) ([]model.StatusHistory, error)

	// bundled requests
	CreateBundle(ctx context.Context, actor model.Actor, req model.CreateBundleRequest) (model.EquipmentRequest, error)
	ApproveItem(ctx context.Context, actor model.Actor, requestID, itemID int64) (model.EquipmentRequest, error)
	RejectItem(ctx context.Context, actor model.Actor, requestID, itemID int64, reason string) (model.EquipmentRequest, error)
	CancelBundle(ctx context.Context, actor model.Actor, requestID int64) (model.EquipmentRequest, error)
	GetBundle(ctx context.Context, actor model.Actor, id int64) (model.EquipmentRequest, error)
	ListBundles(ctx context.Context, actor model.Actor, f model.RequestFilter) ([]model.EquipmentRequest, error)
	BundleHistory(ctx context.Context, actor model.Actor, id int64) ([]model.StatusHistory, error)

	// labs and bookings
	CreateLab(ctx context.Context, actor model.Actor, req model.LabRequest) (model.Lab, error)
	UpdateLab(ctx context.Context, actor model.Actor, id int64, req model.LabRequest) (model.Lab, error)
	GetLab(ctx context.Context, actor model.Actor, id int64) (model.Lab, error)
	ListLabs(ctx context.Context, actor model.Actor) ([]model.Lab, error)
	CreateBooking(ctx context.Context, actor model.Actor, req model.CreateBookingRequest) (model.LabBooking, error)
	Availability(ctx context.Context, q model.AvailabilityQuery) (model.Availability, error)
	ApproveBooking(ctx context.Context, actor model.Actor, id int64, comment string) (model.LabBooking, error)
	RejectBooking(ctx context.Context, actor model.Actor, id int64, comment string) (model.LabBooking, error)
	CancelBooking(ctx context.Context, actor model.Actor, id int64) (model.LabBooking, error)
	ExtendBooking(ctx context.Context, actor model.Actor, id int64, req model.ExtendBookingRequest) (model.LabBooking, error)
	CheckoutBooking(ctx context.Context, actor model.Actor, id int64) (model.LabBooking, error)
	GetBooking(ctx context.Context, actor model.Actor, id int64) (model.LabBooking, error)
	ListBookings(ctx context.Context, actor model.Actor, f model.BookingFilter) ([]model.LabBooking, error)
	BookingHistory(ctx context.Context, actor model.Actor, id int64) ([]model.StatusHistory, error)

	Dashboard(ctx context.Context, actor model.Actor) (model.Dashboard, error)
}

var _ FacilityService = (*service.Service)(nil)
