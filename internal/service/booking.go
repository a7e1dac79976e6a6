package service

import (
	"context"
	"fmt"

	"github.com/SZFO/shareit/internal/domain"
	"github.com/SZFO/shareit/internal/service/ports"
	"github.com/wb-go/wbf/logger"
)

type BookingService struct {
	bookingRepo ports.BookingRepo
	itemRepo    ports.ItemRepo
	userRepo    ports.UserRepo
	notifier    ports.BookingNotifier
	now         Clock
	logger      logger.Logger
}

func NewBookingService(
	bookingRepo ports.BookingRepo,
	itemRepo ports.ItemRepo,
	userRepo ports.UserRepo,
	notifier ports.BookingNotifier,
	now Clock,
	logger logger.Logger,
) *BookingService {
	return &BookingService{
		bookingRepo: bookingRepo,
		itemRepo:    itemRepo,
		userRepo:    userRepo,
		notifier:    notifier,
		now:         now,
		logger:      logger,
	}
}

func (s *BookingService) Create(ctx context.Context, bookerID int64, input domain.CreateBookingInput) (*domain.Booking, error) {
	booker, err := s.userRepo.GetByID(ctx, bookerID)
	if err != nil {
		return nil, fmt.Errorf("check booker: %w", err)
	}

	item, err := s.itemRepo.GetByID(ctx, input.ItemID)
	if err != nil {
		return nil, fmt.Errorf("check item: %w", err)
	}

	if item.OwnerID == bookerID {
		return nil, fmt.Errorf("%w: item %d", domain.ErrOwnItemBooking, item.ID)
	}
	if !input.End.After(input.Start) {
		return nil, fmt.Errorf("%w: booking end must be after its start", domain.ErrValidation)
	}
	if input.Start.Before(s.now()) {
		return nil, fmt.Errorf("%w: booking start must not be in the past", domain.ErrValidation)
	}
	if !item.Available {
		return nil, fmt.Errorf("%w: item %d is not available for booking", domain.ErrValidation, item.ID)
	}

	booking := &domain.Booking{
		Start:  input.Start,
		End:    input.End,
		Status: domain.BookingStatusWaiting,
		Item:   *item,
		Booker: *booker,
	}
	if err = s.bookingRepo.Create(ctx, booking); err != nil {
		return nil, fmt.Errorf("create booking: %w", err)
	}

	s.logger.Info("booking created",
		logger.Int64("booking_id", booking.ID),
		logger.Int64("item_id", item.ID),
		logger.Int64("booker_id", bookerID),
	)

	owner, err := s.userRepo.GetByID(ctx, item.OwnerID)
	if err != nil {
		s.logger.Error("failed to get owner for notification",
			logger.Int64("owner_id", item.OwnerID),
			logger.String("error", err.Error()),
		)
		return booking, nil
	}
	go s.notifier.NotifyBookingCreated(context.WithoutCancel(ctx), owner, booking)

	return booking, nil
}

// Approve moves a WAITING booking to APPROVED or REJECTED. Only the item
// owner may do it, and only once: the status update is conditional on the
// stored status still being WAITING, so concurrent approvals cannot both win.
func (s *BookingService) Approve(ctx context.Context, bookingID, userID int64, approved bool) (*domain.Booking, error) {
	booking, err := s.bookingRepo.GetByID(ctx, bookingID)
	if err != nil {
		return nil, fmt.Errorf("get booking: %w", err)
	}

	if booking.Item.OwnerID != userID {
		return nil, fmt.Errorf("%w: booking %d", domain.ErrNotItemOwner, bookingID)
	}
	if booking.Status != domain.BookingStatusWaiting {
		return nil, fmt.Errorf("%w: booking %d", domain.ErrBookingProcessed, bookingID)
	}

	target := domain.BookingStatusRejected
	if approved {
		target = domain.BookingStatusApproved
	}
	if err = s.bookingRepo.UpdateStatus(ctx, bookingID, domain.BookingStatusWaiting, target); err != nil {
		return nil, fmt.Errorf("update booking status: %w", err)
	}
	booking.Status = target

	s.logger.Info("booking processed",
		logger.Int64("booking_id", bookingID),
		logger.String("status", string(target)),
	)

	if approved {
		go s.notifier.NotifyBookingApproved(context.WithoutCancel(ctx), &booking.Booker, booking)
	} else {
		go s.notifier.NotifyBookingRejected(context.WithoutCancel(ctx), &booking.Booker, booking)
	}

	return booking, nil
}

func (s *BookingService) GetByID(ctx context.Context, bookingID, userID int64) (*domain.Booking, error) {
	booking, err := s.bookingRepo.GetByID(ctx, bookingID)
	if err != nil {
		return nil, fmt.Errorf("get booking: %w", err)
	}

	if booking.Booker.ID != userID && booking.Item.OwnerID != userID {
		return nil, fmt.Errorf("%w: booking %d", domain.ErrNotBookingParty, bookingID)
	}

	return booking, nil
}

func (s *BookingService) ListByBooker(ctx context.Context, bookerID int64, state string, from, size int) ([]*domain.Booking, error) {
	st, err := domain.ParseBookingState(state)
	if err != nil {
		return nil, err
	}
	if _, err = s.userRepo.GetByID(ctx, bookerID); err != nil {
		return nil, fmt.Errorf("check booker: %w", err)
	}

	limit, offset := pageWindow(from, size)

	return s.bookingRepo.ListByBooker(ctx, bookerID, st, s.now(), limit, offset)
}

func (s *BookingService) ListByOwner(ctx context.Context, ownerID int64, state string, from, size int) ([]*domain.Booking, error) {
	st, err := domain.ParseBookingState(state)
	if err != nil {
		return nil, err
	}
	if _, err = s.userRepo.GetByID(ctx, ownerID); err != nil {
		return nil, fmt.Errorf("check owner: %w", err)
	}

	limit, offset := pageWindow(from, size)

	return s.bookingRepo.ListByOwner(ctx, ownerID, st, s.now(), limit, offset)
}

// pageWindow maps a from/size pair to a whole page: from is rounded down to
// a page index first, so from=5,size=10 addresses page 0, not offset 5.
func pageWindow(from, size int) (limit, offset int) {
	return size, (from / size) * size
}
