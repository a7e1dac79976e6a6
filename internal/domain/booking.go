package domain

import (
	"fmt"
	"time"
)

type BookingStatus string

const (
	BookingStatusWaiting  BookingStatus = "WAITING"
	BookingStatusApproved BookingStatus = "APPROVED"
	BookingStatusRejected BookingStatus = "REJECTED"
)

// BookingState is the filter category for booking listings. CURRENT, PAST
// and FUTURE are relative to the moment the listing is evaluated.
type BookingState string

const (
	BookingStateAll      BookingState = "ALL"
	BookingStateCurrent  BookingState = "CURRENT"
	BookingStatePast     BookingState = "PAST"
	BookingStateFuture   BookingState = "FUTURE"
	BookingStateWaiting  BookingState = "WAITING"
	BookingStateRejected BookingState = "REJECTED"
)

func ParseBookingState(raw string) (BookingState, error) {
	switch state := BookingState(raw); state {
	case BookingStateAll, BookingStateCurrent, BookingStatePast,
		BookingStateFuture, BookingStateWaiting, BookingStateRejected:
		return state, nil
	default:
		return "", fmt.Errorf("%w: %s", ErrUnknownState, raw)
	}
}

type Booking struct {
	ID     int64         `json:"id"`
	Start  time.Time     `json:"start"`
	End    time.Time     `json:"end"`
	Status BookingStatus `json:"status"`
	Item   Item          `json:"item"`
	Booker User          `json:"booker"`
}

// BookingSummary is the projection shown to an item owner on item views.
type BookingSummary struct {
	ID       int64 `json:"id"`
	BookerID int64 `json:"booker_id"`
}

type CreateBookingInput struct {
	ItemID int64
	Start  time.Time
	End    time.Time
}
