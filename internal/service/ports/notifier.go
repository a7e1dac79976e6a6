package ports

import (
	"context"

	"github.com/SZFO/shareit/internal/domain"
)

type BookingNotifier interface {
	NotifyBookingCreated(ctx context.Context, owner *domain.User, booking *domain.Booking)
	NotifyBookingApproved(ctx context.Context, booker *domain.User, booking *domain.Booking)
	NotifyBookingRejected(ctx context.Context, booker *domain.User, booking *domain.Booking)
}
