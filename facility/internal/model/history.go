package model

import "time"

const (
	EntityRental  = "rental"
	EntityBooking = "booking"
	EntityRequest = "request"
	EntityItem    = "request_item"
)

// StatusHistory is one audited transition.
type StatusHistory struct {
	ID         int64     `json:"id" db:"id"`
	Entity     string    `json:"entity" db:"entity"`
	EntityID   int64     `json:"entityId" db:"entity_id"`
	Actor      string    `json:"actor" db:"actor"`
	Action     string    `json:"action" db:"action"`
	FromStatus string    `json:"fromStatus" db:"from_status"`
	ToStatus   string    `json:"toStatus" db:"to_status"`
	Note       string    `json:"note" db:"note"`
	CreatedAt  time.Time `json:"createdAt" db:"created_at"`
}

type Dashboard struct {
	PendingRentals    int `json:"pendingRentals"`
	OverdueRentals    int `json:"overdueRentals"`
	PendingBookings   int `json:"pendingBookings"`
	TodayBookings     int `json:"todayApprovedBookings"`
	OpenRequests      int `json:"openRequests"`
	DepletedEquipment int `json:"depletedEquipment"`
}

// Promotion is one record moved by a time-driven sweep.
type Promotion struct {
	ID       int64  `db:"id"`
	Username string `db:"username"`
	From     string `db:"from_status"`
}
