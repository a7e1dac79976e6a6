package domain

import "time"

// ItemRequest is a want-ad for an item that is not listed yet. Immutable
// after creation; items answering it reference the request id.
type ItemRequest struct {
	ID          int64     `json:"id"`
	Description string    `json:"description"`
	RequesterID int64     `json:"requester_id"`
	Created     time.Time `json:"created"`
}

type ItemRequestDetails struct {
	ItemRequest
	Items []Item `json:"items"`
}
