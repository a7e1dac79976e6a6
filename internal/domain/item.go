package domain

type Item struct {
	ID          int64  `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description"`
	Available   bool   `json:"available"`
	OwnerID     int64  `json:"owner_id"`
	RequestID   *int64 `json:"request_id,omitempty"`
}

// ItemDetails is the owner-facing projection of an item: the booking
// summaries are filled only when the viewer owns the item.
type ItemDetails struct {
	Item
	LastBooking *BookingSummary `json:"last_booking,omitempty"`
	NextBooking *BookingSummary `json:"next_booking,omitempty"`
	Comments    []Comment       `json:"comments"`
}

type CreateItemInput struct {
	Name        string
	Description string
	Available   bool
	RequestID   *int64
}

// UpdateItemInput is a partial update: nil fields are left unchanged.
type UpdateItemInput struct {
	Name        *string
	Description *string
	Available   *bool
}
