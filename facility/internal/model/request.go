package model

import "time"

type RequestStatus string

const (
	RequestPending   RequestStatus = "pending"
	RequestApproved  RequestStatus = "approved"
	RequestRejected  RequestStatus = "rejected"
	RequestPartial   RequestStatus = "partial"
	RequestCancelled RequestStatus = "cancelled"
)

type ItemStatus string

const (
	ItemPending   ItemStatus = "pending"
	ItemApproved  ItemStatus = "approved"
	ItemRejected  ItemStatus = "rejected"
	ItemCancelled ItemStatus = "cancelled"
)

type EquipmentRequest struct {
	ID        int64         `json:"id" db:"id"`
	Username  string        `json:"username" db:"username"`
	Status    RequestStatus `json:"status" db:"status"`
	Notes     string        `json:"notes" db:"notes"`
	CreatedAt time.Time     `json:"createdAt" db:"created_at"`
	UpdatedAt time.Time     `json:"updatedAt" db:"updated_at"`
	Items     []RequestItem `json:"items" db:"-"`
}

type RequestItem struct {
	ID            int64      `json:"id" db:"id"`
	RequestID     int64      `json:"requestId" db:"request_id"`
	EquipmentID   int64      `json:"equipmentId" db:"equipment_id"`
	EquipmentName string     `json:"equipmentName" db:"equipment_name"`
	Quantity      int        `json:"quantity" db:"quantity"`
	DurationDays  int        `json:"duration" db:"duration_days"`
	Notes         string     `json:"notes" db:"notes"`
	Status        ItemStatus `json:"status" db:"status"`
	ReviewedBy    *string    `json:"reviewedBy" db:"reviewed_by"`
	ReviewedAt    *time.Time `json:"reviewedAt" db:"reviewed_at"`
	RejectReason  *string    `json:"rejectReason" db:"reject_reason"`
	RentalID      *int64     `json:"rentalId" db:"rental_id"`
	CreatedAt     time.Time  `json:"createdAt" db:"created_at"`
	UpdatedAt     time.Time  `json:"updatedAt" db:"updated_at"`
}

type CartItem struct {
	EquipmentID int64  `json:"equipmentId" validate:"required,gt=0"`
	Quantity    int    `json:"quantity" validate:"omitempty,gte=1"`
	Duration    int    `json:"duration" validate:"omitempty,gte=1,lte=90"`
	Notes       string `json:"notes"`
}

type CreateBundleRequest struct {
	CartItems []CartItem `json:"cartItems" validate:"dive"`
	Notes     string     `json:"notes" validate:"max=1000"`
}

// MergeCart collapses rows for the same equipment: quantities are summed and
// the longest duration wins. First-seen order is kept.
func MergeCart(items []CartItem, defaultDuration int) []CartItem {
	idx := make(map[int64]int, len(items))
	merged := make([]CartItem, 0, len(items))
	for _, it := range items {
		if it.Quantity <= 0 {
			it.Quantity = 1
		}
		if it.Duration <= 0 {
			it.Duration = defaultDuration
		}
		i, ok := idx[it.EquipmentID]
		if !ok {
			idx[it.EquipmentID] = len(merged)
			merged = append(merged, it)
			continue
		}
		merged[i].Quantity += it.Quantity
		if it.Duration > merged[i].Duration {
			merged[i].Duration = it.Duration
		}
		if merged[i].Notes == "" {
			merged[i].Notes = it.Notes
		}
	}
	return merged
}

// FoldStatus derives the bundle status from its items. A cancelled bundle stays cancelled.
func FoldStatus(current RequestStatus, items []ItemStatus) RequestStatus {
	if current == RequestCancelled || len(items) == 0 {
		return current
	}
	first := items[0]
	for _, s := range items[1:] {
		if s != first {
			return RequestPartial
		}
	}
	switch first {
	case ItemPending:
		return RequestPending
	case ItemApproved:
		return RequestApproved
	case ItemRejected:
		return RequestRejected
	case ItemCancelled:
		return RequestCancelled
	}
	return RequestPartial
}

func (r EquipmentRequest) ItemStatuses() []ItemStatus {
	out := make([]ItemStatus, 0, len(r.Items))
	for _, it := range r.Items {
		out = append(out, it.Status)
	}
	return out
}

type RequestFilter struct {
	Username string
	Status   RequestStatus
}
