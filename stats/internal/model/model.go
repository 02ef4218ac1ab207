package model

import "time"

// Stats is the per-user aggregate over the event log.
type Stats struct {
	UserName      string    `json:"username" db:"username"`
	LastUpdated   time.Time `json:"lastUpdated" db:"last_updated"`
	Rentals       int       `json:"rentals" db:"rentals"`
	Returns       int       `json:"returns" db:"returns"`
	Overdue       int       `json:"overdue" db:"overdue"`
	Damaged       int       `json:"damaged" db:"damaged"`
	Bookings      int       `json:"bookings" db:"bookings"`
	Cancellations int       `json:"cancellations" db:"cancellations"`
}

type StatsInfo struct {
	Data []Stats `json:"data"`
}
