package model

import (
	"time"
)

type BookingStatus string

const (
	BookingPending   BookingStatus = "pending"
	BookingApproved  BookingStatus = "approved"
	BookingRejected  BookingStatus = "rejected"
	BookingCancelled BookingStatus = "cancelled"
	BookingCompleted BookingStatus = "completed"
)

// ClaimingStatuses hold a seat for their (lab, date, slot).
var ClaimingStatuses = []BookingStatus{BookingPending, BookingApproved}

func (s BookingStatus) Valid() bool {
	switch s {
	case BookingPending, BookingApproved, BookingRejected, BookingCancelled, BookingCompleted:
		return true
	}
	return false
}

const (
	SeatMin = 1
	SeatMax = 30
)

type LabBooking struct {
	ID           int64         `json:"id" db:"id"`
	LabID        int64         `json:"labId" db:"lab_id"`
	LabName      string        `json:"labRoom" db:"lab_name"`
	Username     string        `json:"username" db:"username"`
	BookingDate  Date          `json:"date" db:"booking_date"`
	StartTime    string        `json:"startTime" db:"start_time"`
	EndTime      string        `json:"endTime" db:"end_time"`
	TimeSlot     string        `json:"timeSlot" db:"time_slot"`
	SeatNumber   int           `json:"seatNumber" db:"seat_number"`
	Purpose      string        `json:"purpose" db:"purpose"`
	Participants int           `json:"participants" db:"participants"`
	Status       BookingStatus `json:"status" db:"status"`
	ReviewedBy   *string       `json:"reviewedBy" db:"reviewed_by"`
	ReviewedAt   *time.Time    `json:"reviewedAt" db:"reviewed_at"`
	AdminComment *string       `json:"adminComment" db:"admin_comment"`
	CreatedAt    time.Time     `json:"createdAt" db:"created_at"`
	UpdatedAt    time.Time     `json:"updatedAt" db:"updated_at"`
}

func (b *LabBooking) SetSlot(slot TimeSlot) {
	b.TimeSlot = slot.String()
	b.StartTime = slot.Start.String()
	b.EndTime = slot.End.String()
}

// EndsAt is the slot end on the booking day in loc.
func (b LabBooking) EndsAt(loc *time.Location) (time.Time, error) {
	end, err := ParseClock(b.EndTime)
	if err != nil {
		slot, serr := ParseTimeSlot(b.TimeSlot)
		if serr != nil {
			return time.Time{}, serr
		}
		end = slot.End
	}
	return b.BookingDate.In(end, loc), nil
}

func (b LabBooking) Finished(now time.Time, loc *time.Location) bool {
	if b.Status != BookingApproved {
		return false
	}
	end, err := b.EndsAt(loc)
	if err != nil {
		return false
	}
	return end.Before(now)
}

type CreateBookingRequest struct {
	LabID        int64  `json:"labId"`
	LabRoom      string `json:"labRoom"`
	Date         string `json:"date" validate:"required,datetime=2006-01-02"`
	TimeSlot     string `json:"timeSlot" validate:"required,timeslot"`
	SeatNumber   int    `json:"seatNumber" validate:"required,gte=1,lte=30"`
	Purpose      string `json:"purpose" validate:"max=1000"`
	Participants int    `json:"participants" validate:"omitempty,gte=1"`
}

type ExtendBookingRequest struct {
	TimeSlot string `json:"timeSlot" validate:"required,timeslot"`
}

type AvailabilityQuery struct {
	LabID    int64
	LabRoom  string
	Date     string
	TimeSlot string
}

type Availability struct {
	LabID          int64  `json:"labId"`
	LabRoom        string `json:"labRoom"`
	Date           Date   `json:"date"`
	TimeSlot       string `json:"timeSlot"`
	AvailableSeats []int  `json:"availableSeats"`
}

// FreeSeats returns the seats of the fixed pool not present in taken, ascending.
func FreeSeats(taken []int) []int {
	claimed := make(map[int]struct{}, len(taken))
	for _, s := range taken {
		claimed[s] = struct{}{}
	}
	free := make([]int, 0, SeatMax)
	for seat := SeatMin; seat <= SeatMax; seat++ {
		if _, ok := claimed[seat]; !ok {
			free = append(free, seat)
		}
	}
	return free
}

type BookingFilter struct {
	Username string
	Status   BookingStatus
	LabID    int64
	Date     *Date
}

// SeatKey identifies one claimable seat.
type SeatKey struct {
	LabID    int64
	Date     Date
	TimeSlot string
	Seat     int
}
