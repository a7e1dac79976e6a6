package domain

import "errors"

var (
	ErrUserNotFound    = errors.New("user not found")
	ErrItemNotFound    = errors.New("item not found")
	ErrBookingNotFound = errors.New("booking not found")
	ErrRequestNotFound = errors.New("item request not found")
)

// Relationship failures are reported as not-found on purpose: callers that
// lack the required relation to an entity are told it does not exist.
var (
	ErrOwnItemBooking  = errors.New("owner cannot book own item")
	ErrNotItemOwner    = errors.New("only the item owner may do this")
	ErrNotBookingParty = errors.New("user is neither the booker nor the item owner")
)

var (
	ErrBookingProcessed  = errors.New("booking has already been processed")
	ErrNoFinishedBooking = errors.New("user has no finished booking for this item")
)

var (
	ErrEmailTaken = errors.New("email is already in use")
)

var (
	ErrValidation   = errors.New("validation error")
	ErrUnknownState = errors.New("unknown state")
)
