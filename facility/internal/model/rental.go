package model

import "time"

type RentalStatus string

const (
	RentalPending  RentalStatus = "pending"
	RentalApproved RentalStatus = "approved"
	RentalRejected RentalStatus = "rejected"
	RentalActive   RentalStatus = "active"
	RentalReturned RentalStatus = "returned"
	RentalOverdue  RentalStatus = "overdue"
	RentalDamaged  RentalStatus = "damaged"
)

// OccupyingStatuses hold a physical unit out of the pool.
var OccupyingStatuses = []RentalStatus{RentalApproved, RentalActive, RentalOverdue, RentalDamaged}

var rentalTransitions = map[RentalStatus][]RentalStatus{
	RentalPending:  {RentalApproved, RentalRejected},
	RentalApproved: {RentalActive, RentalReturned, RentalOverdue, RentalDamaged},
	RentalActive:   {RentalReturned, RentalOverdue, RentalDamaged},
	RentalOverdue:  {RentalReturned, RentalDamaged},
	RentalDamaged:  {RentalReturned},
}

func (s RentalStatus) CanTransition(to RentalStatus) bool {
	for _, next := range rentalTransitions[s] {
		if next == to {
			return true
		}
	}
	return false
}

func (s RentalStatus) Occupying() bool {
	for _, o := range OccupyingStatuses {
		if s == o {
			return true
		}
	}
	return false
}

func (s RentalStatus) Valid() bool {
	switch s {
	case RentalPending, RentalApproved, RentalRejected, RentalActive, RentalReturned, RentalOverdue, RentalDamaged:
		return true
	}
	return false
}

const (
	ActionCreate   = "create"
	ActionApprove  = "approve"
	ActionReject   = "reject"
	ActionCancel   = "cancel"
	ActionActivate = "activate"
	ActionDamage   = "damage"
	ActionReturn   = "return"
	ActionOverdue  = "overdue"
	ActionExtend   = "extend"
	ActionCheckout = "checkout"
	ActionComplete = "complete"
)

type Rental struct {
	ID                 int64        `json:"id" db:"id"`
	EquipmentID        int64        `json:"equipmentId" db:"equipment_id"`
	EquipmentName      string       `json:"equipmentName" db:"equipment_name"`
	EquipmentCode      string       `json:"equipmentCode" db:"equipment_code"`
	Username           string       `json:"username" db:"username"`
	Quantity           int          `json:"quantity" db:"quantity"`
	DurationDays       int          `json:"duration" db:"duration_days"`
	RentalDate         *time.Time   `json:"rentalDate" db:"rental_date"`
	ExpectedReturnDate *time.Time   `json:"expectedReturnDate" db:"expected_return_date"`
	ActualReturnDate   *time.Time   `json:"actualReturnDate" db:"actual_return_date"`
	Status             RentalStatus `json:"status" db:"status"`
	Notes              string       `json:"notes" db:"notes"`
	IssuedBy           *string      `json:"issuedBy" db:"issued_by"`
	ReturnedTo         *string      `json:"returnedTo" db:"returned_to"`
	ReviewedBy         *string      `json:"reviewedBy" db:"reviewed_by"`
	ReviewedAt         *time.Time   `json:"reviewedAt" db:"reviewed_at"`
	RejectReason       *string      `json:"rejectReason" db:"reject_reason"`
	RequestItemID      *int64       `json:"requestItemId" db:"request_item_id"`
	CreatedAt          time.Time    `json:"createdAt" db:"created_at"`
	UpdatedAt          time.Time    `json:"updatedAt" db:"updated_at"`
}

// Issue starts the rental clock: rental date now, expected return after the duration.
func (r *Rental) Issue(by string, now time.Time) {
	expected := now.AddDate(0, 0, r.DurationDays)
	r.Status = RentalApproved
	r.RentalDate = &now
	r.ExpectedReturnDate = &expected
	r.IssuedBy = &by
	r.ReviewedBy = &by
	r.ReviewedAt = &now
}

func (r Rental) IsOverdue(now time.Time) bool {
	if r.Status != RentalApproved && r.Status != RentalActive {
		return false
	}
	return r.ExpectedReturnDate != nil && r.ExpectedReturnDate.Before(now)
}

type CreateRentalRequest struct {
	EquipmentID   int64  `json:"equipmentId"`
	EquipmentCode string `json:"equipmentCode"`
	Quantity      int    `json:"quantity" validate:"omitempty,gte=1"`
	Duration      int    `json:"duration" validate:"omitempty,gte=1,lte=90"`
	Notes         string `json:"notes" validate:"max=1000"`
}

type ReviewRequest struct {
	Comment string `json:"comment" validate:"max=1000"`
	Reason  string `json:"reason" validate:"max=1000"`
}

func (r ReviewRequest) Note() string {
	if r.Reason != "" {
		return r.Reason
	}
	return r.Comment
}

type RentalFilter struct {
	Username    string
	Status      RentalStatus
	EquipmentID int64
}
