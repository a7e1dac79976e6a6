package ports

import (
	"context"
	"time"

	"github.com/SZFO/shareit/internal/domain"
)

type BookingRepo interface {
	Create(ctx context.Context, booking *domain.Booking) error
	GetByID(ctx context.Context, id int64) (*domain.Booking, error)
	// UpdateStatus moves a booking from one status to another only if the
	// stored status still equals from.
	UpdateStatus(ctx context.Context, id int64, from, to domain.BookingStatus) error
	ListByBooker(ctx context.Context, bookerID int64, state domain.BookingState, now time.Time, limit, offset int) ([]*domain.Booking, error)
	ListByOwner(ctx context.Context, ownerID int64, state domain.BookingState, now time.Time, limit, offset int) ([]*domain.Booking, error)
	LastForItem(ctx context.Context, itemID int64, now time.Time) (*domain.BookingSummary, error)
	NextForItem(ctx context.Context, itemID int64, now time.Time) (*domain.BookingSummary, error)
	HasFinishedBooking(ctx context.Context, bookerID, itemID int64, now time.Time) (bool, error)
}
