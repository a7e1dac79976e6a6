package service

import (
	"context"
	"testing"
	"time"

	"github.com/SZFO/shareit/internal/domain"
	"github.com/SZFO/shareit/internal/service/ports/mocks"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"github.com/wb-go/wbf/logger"
)

func newTestLogger(t *testing.T) logger.Logger {
	t.Helper()
	log, err := logger.InitLogger("slog", "test", "test", logger.WithLevel(logger.ErrorLevel))
	if err != nil {
		t.Fatalf("init test logger: %v", err)
	}
	return log
}

func fixedClock(at time.Time) Clock {
	return func() time.Time { return at }
}

func newBookingService(t *testing.T, at time.Time) (*BookingService, *mocks.MockBookingRepo, *mocks.MockItemRepo, *mocks.MockUserRepo, *mocks.MockBookingNotifier) {
	t.Helper()

	bookingRepo := mocks.NewMockBookingRepo(t)
	itemRepo := mocks.NewMockItemRepo(t)
	userRepo := mocks.NewMockUserRepo(t)
	notifier := mocks.NewMockBookingNotifier(t)

	svc := NewBookingService(bookingRepo, itemRepo, userRepo, notifier, fixedClock(at), newTestLogger(t))

	return svc, bookingRepo, itemRepo, userRepo, notifier
}

func TestBookingService_Create(t *testing.T) {
	now := time.Date(2024, 6, 1, 12, 0, 0, 0, time.UTC)

	svc, bookingRepo, itemRepo, userRepo, notifier := newBookingService(t, now)

	booker := &domain.User{ID: 2, Name: "alice", Email: "alice@example.com"}
	owner := &domain.User{ID: 1, Name: "bob", Email: "bob@example.com"}
	item := &domain.Item{ID: 10, Name: "drill", Available: true, OwnerID: 1}

	userRepo.EXPECT().GetByID(mock.Anything, int64(2)).Return(booker, nil)
	itemRepo.EXPECT().GetByID(mock.Anything, int64(10)).Return(item, nil)
	bookingRepo.EXPECT().Create(mock.Anything, mock.Anything).Run(func(ctx context.Context, b *domain.Booking) {
		b.ID = 100
	}).Return(nil)
	userRepo.EXPECT().GetByID(mock.Anything, int64(1)).Return(owner, nil)
	notifier.EXPECT().NotifyBookingCreated(mock.Anything, owner, mock.Anything).Return()

	booking, err := svc.Create(context.Background(), 2, domain.CreateBookingInput{
		ItemID: 10,
		Start:  now.Add(time.Hour),
		End:    now.Add(2 * time.Hour),
	})

	require.NoError(t, err)
	assert.Equal(t, int64(100), booking.ID)
	assert.Equal(t, domain.BookingStatusWaiting, booking.Status)
	assert.Equal(t, int64(10), booking.Item.ID)
	assert.Equal(t, int64(2), booking.Booker.ID)

	time.Sleep(50 * time.Millisecond) // goroutine notify
}

func TestBookingService_Create_OwnItem(t *testing.T) {
	now := time.Date(2024, 6, 1, 12, 0, 0, 0, time.UTC)

	svc, _, itemRepo, userRepo, _ := newBookingService(t, now)

	userRepo.EXPECT().GetByID(mock.Anything, int64(1)).Return(&domain.User{ID: 1}, nil)
	itemRepo.EXPECT().GetByID(mock.Anything, int64(10)).Return(&domain.Item{ID: 10, Available: true, OwnerID: 1}, nil)

	_, err := svc.Create(context.Background(), 1, domain.CreateBookingInput{
		ItemID: 10,
		Start:  now.Add(time.Hour),
		End:    now.Add(2 * time.Hour),
	})

	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrOwnItemBooking)
}

func TestBookingService_Create_EndNotAfterStart(t *testing.T) {
	now := time.Date(2024, 6, 1, 12, 0, 0, 0, time.UTC)

	svc, _, itemRepo, userRepo, _ := newBookingService(t, now)

	userRepo.EXPECT().GetByID(mock.Anything, int64(2)).Return(&domain.User{ID: 2}, nil)
	itemRepo.EXPECT().GetByID(mock.Anything, int64(10)).Return(&domain.Item{ID: 10, Available: true, OwnerID: 1}, nil)

	start := now.Add(2 * time.Hour)

	// end == start
	_, err := svc.Create(context.Background(), 2, domain.CreateBookingInput{
		ItemID: 10,
		Start:  start,
		End:    start,
	})
	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrValidation)

	// end < start
	userRepo.EXPECT().GetByID(mock.Anything, int64(2)).Return(&domain.User{ID: 2}, nil)
	itemRepo.EXPECT().GetByID(mock.Anything, int64(10)).Return(&domain.Item{ID: 10, Available: true, OwnerID: 1}, nil)

	_, err = svc.Create(context.Background(), 2, domain.CreateBookingInput{
		ItemID: 10,
		Start:  start,
		End:    start.Add(-time.Hour),
	})
	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrValidation)
}

func TestBookingService_Create_StartInPast(t *testing.T) {
	now := time.Date(2024, 6, 1, 12, 0, 0, 0, time.UTC)

	svc, _, itemRepo, userRepo, _ := newBookingService(t, now)

	userRepo.EXPECT().GetByID(mock.Anything, int64(2)).Return(&domain.User{ID: 2}, nil)
	itemRepo.EXPECT().GetByID(mock.Anything, int64(10)).Return(&domain.Item{ID: 10, Available: true, OwnerID: 1}, nil)

	_, err := svc.Create(context.Background(), 2, domain.CreateBookingInput{
		ItemID: 10,
		Start:  now.Add(-time.Minute),
		End:    now.Add(time.Hour),
	})

	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrValidation)
}

func TestBookingService_Create_ItemUnavailable(t *testing.T) {
	now := time.Date(2024, 6, 1, 12, 0, 0, 0, time.UTC)

	svc, _, itemRepo, userRepo, _ := newBookingService(t, now)

	userRepo.EXPECT().GetByID(mock.Anything, int64(2)).Return(&domain.User{ID: 2}, nil)
	itemRepo.EXPECT().GetByID(mock.Anything, int64(10)).Return(&domain.Item{ID: 10, Available: false, OwnerID: 1}, nil)

	_, err := svc.Create(context.Background(), 2, domain.CreateBookingInput{
		ItemID: 10,
		Start:  now.Add(time.Hour),
		End:    now.Add(2 * time.Hour),
	})

	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrValidation)
}

func TestBookingService_Create_BookerNotFound(t *testing.T) {
	now := time.Date(2024, 6, 1, 12, 0, 0, 0, time.UTC)

	svc, _, _, userRepo, _ := newBookingService(t, now)

	userRepo.EXPECT().GetByID(mock.Anything, int64(99)).Return(nil, domain.ErrUserNotFound)

	_, err := svc.Create(context.Background(), 99, domain.CreateBookingInput{ItemID: 10})

	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrUserNotFound)
}

func TestBookingService_Approve(t *testing.T) {
	now := time.Date(2024, 6, 1, 12, 0, 0, 0, time.UTC)

	svc, bookingRepo, _, _, notifier := newBookingService(t, now)

	booking := &domain.Booking{
		ID:     100,
		Status: domain.BookingStatusWaiting,
		Item:   domain.Item{ID: 10, OwnerID: 1},
		Booker: domain.User{ID: 2},
	}

	bookingRepo.EXPECT().GetByID(mock.Anything, int64(100)).Return(booking, nil)
	bookingRepo.EXPECT().UpdateStatus(mock.Anything, int64(100), domain.BookingStatusWaiting, domain.BookingStatusApproved).Return(nil)
	notifier.EXPECT().NotifyBookingApproved(mock.Anything, &booking.Booker, booking).Return()

	got, err := svc.Approve(context.Background(), 100, 1, true)

	require.NoError(t, err)
	assert.Equal(t, domain.BookingStatusApproved, got.Status)

	time.Sleep(50 * time.Millisecond)
}

func TestBookingService_Approve_Reject(t *testing.T) {
	now := time.Date(2024, 6, 1, 12, 0, 0, 0, time.UTC)

	svc, bookingRepo, _, _, notifier := newBookingService(t, now)

	booking := &domain.Booking{
		ID:     100,
		Status: domain.BookingStatusWaiting,
		Item:   domain.Item{ID: 10, OwnerID: 1},
		Booker: domain.User{ID: 2},
	}

	bookingRepo.EXPECT().GetByID(mock.Anything, int64(100)).Return(booking, nil)
	bookingRepo.EXPECT().UpdateStatus(mock.Anything, int64(100), domain.BookingStatusWaiting, domain.BookingStatusRejected).Return(nil)
	notifier.EXPECT().NotifyBookingRejected(mock.Anything, &booking.Booker, booking).Return()

	got, err := svc.Approve(context.Background(), 100, 1, false)

	require.NoError(t, err)
	assert.Equal(t, domain.BookingStatusRejected, got.Status)

	time.Sleep(50 * time.Millisecond)
}

func TestBookingService_Approve_NotOwner(t *testing.T) {
	now := time.Date(2024, 6, 1, 12, 0, 0, 0, time.UTC)

	svc, bookingRepo, _, _, _ := newBookingService(t, now)

	bookingRepo.EXPECT().GetByID(mock.Anything, int64(100)).Return(&domain.Booking{
		ID:     100,
		Status: domain.BookingStatusWaiting,
		Item:   domain.Item{ID: 10, OwnerID: 1},
		Booker: domain.User{ID: 2},
	}, nil)

	_, err := svc.Approve(context.Background(), 100, 2, true)

	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrNotItemOwner)
}

func TestBookingService_Approve_AlreadyProcessed(t *testing.T) {
	now := time.Date(2024, 6, 1, 12, 0, 0, 0, time.UTC)

	for _, status := range []domain.BookingStatus{domain.BookingStatusApproved, domain.BookingStatusRejected} {
		svc, bookingRepo, _, _, _ := newBookingService(t, now)

		bookingRepo.EXPECT().GetByID(mock.Anything, int64(100)).Return(&domain.Booking{
			ID:     100,
			Status: status,
			Item:   domain.Item{ID: 10, OwnerID: 1},
		}, nil)

		_, err := svc.Approve(context.Background(), 100, 1, true)

		require.Error(t, err)
		assert.ErrorIs(t, err, domain.ErrBookingProcessed)
	}
}

func TestBookingService_Approve_LostRace(t *testing.T) {
	now := time.Date(2024, 6, 1, 12, 0, 0, 0, time.UTC)

	svc, bookingRepo, _, _, _ := newBookingService(t, now)

	// The stored row was processed between the read and the conditional
	// update, so the update reports the booking as already processed.
	bookingRepo.EXPECT().GetByID(mock.Anything, int64(100)).Return(&domain.Booking{
		ID:     100,
		Status: domain.BookingStatusWaiting,
		Item:   domain.Item{ID: 10, OwnerID: 1},
	}, nil)
	bookingRepo.EXPECT().UpdateStatus(mock.Anything, int64(100), domain.BookingStatusWaiting, domain.BookingStatusApproved).Return(domain.ErrBookingProcessed)

	_, err := svc.Approve(context.Background(), 100, 1, true)

	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrBookingProcessed)
}

func TestBookingService_GetByID_Visibility(t *testing.T) {
	now := time.Date(2024, 6, 1, 12, 0, 0, 0, time.UTC)

	booking := &domain.Booking{
		ID:     100,
		Item:   domain.Item{ID: 10, OwnerID: 1},
		Booker: domain.User{ID: 2},
	}

	t.Run("booker sees it", func(t *testing.T) {
		svc, bookingRepo, _, _, _ := newBookingService(t, now)
		bookingRepo.EXPECT().GetByID(mock.Anything, int64(100)).Return(booking, nil)

		got, err := svc.GetByID(context.Background(), 100, 2)
		require.NoError(t, err)
		assert.Equal(t, int64(100), got.ID)
	})

	t.Run("owner sees it", func(t *testing.T) {
		svc, bookingRepo, _, _, _ := newBookingService(t, now)
		bookingRepo.EXPECT().GetByID(mock.Anything, int64(100)).Return(booking, nil)

		got, err := svc.GetByID(context.Background(), 100, 1)
		require.NoError(t, err)
		assert.Equal(t, int64(100), got.ID)
	})

	t.Run("stranger does not", func(t *testing.T) {
		svc, bookingRepo, _, _, _ := newBookingService(t, now)
		bookingRepo.EXPECT().GetByID(mock.Anything, int64(100)).Return(booking, nil)

		_, err := svc.GetByID(context.Background(), 100, 3)
		require.Error(t, err)
		assert.ErrorIs(t, err, domain.ErrNotBookingParty)
	})
}

func TestBookingService_ListByBooker(t *testing.T) {
	now := time.Date(2024, 6, 1, 12, 0, 0, 0, time.UTC)

	svc, bookingRepo, _, userRepo, _ := newBookingService(t, now)

	bookings := []*domain.Booking{{ID: 100}}

	userRepo.EXPECT().GetByID(mock.Anything, int64(2)).Return(&domain.User{ID: 2}, nil)
	bookingRepo.EXPECT().ListByBooker(mock.Anything, int64(2), domain.BookingStateCurrent, now, 10, 0).Return(bookings, nil)

	got, err := svc.ListByBooker(context.Background(), 2, "CURRENT", 0, 10)

	require.NoError(t, err)
	assert.Equal(t, bookings, got)
}

func TestBookingService_ListByBooker_UnknownState(t *testing.T) {
	now := time.Date(2024, 6, 1, 12, 0, 0, 0, time.UTC)

	svc, _, _, _, _ := newBookingService(t, now)

	_, err := svc.ListByBooker(context.Background(), 2, "BOGUS", 0, 10)

	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrUnknownState)
}

func TestBookingService_ListByBooker_LowercaseStateRejected(t *testing.T) {
	now := time.Date(2024, 6, 1, 12, 0, 0, 0, time.UTC)

	svc, _, _, _, _ := newBookingService(t, now)

	_, err := svc.ListByBooker(context.Background(), 2, "current", 0, 10)

	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrUnknownState)
}

func TestBookingService_ListByOwner(t *testing.T) {
	now := time.Date(2024, 6, 1, 12, 0, 0, 0, time.UTC)

	svc, bookingRepo, _, userRepo, _ := newBookingService(t, now)

	bookings := []*domain.Booking{{ID: 100}, {ID: 101}}

	userRepo.EXPECT().GetByID(mock.Anything, int64(1)).Return(&domain.User{ID: 1}, nil)
	bookingRepo.EXPECT().ListByOwner(mock.Anything, int64(1), domain.BookingStateAll, now, 10, 0).Return(bookings, nil)

	got, err := svc.ListByOwner(context.Background(), 1, "ALL", 0, 10)

	require.NoError(t, err)
	assert.Equal(t, bookings, got)
}

func TestBookingService_ListByOwner_UserNotFound(t *testing.T) {
	now := time.Date(2024, 6, 1, 12, 0, 0, 0, time.UTC)

	svc, _, _, userRepo, _ := newBookingService(t, now)

	userRepo.EXPECT().GetByID(mock.Anything, int64(99)).Return(nil, domain.ErrUserNotFound)

	_, err := svc.ListByOwner(context.Background(), 99, "ALL", 0, 10)

	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrUserNotFound)
}

func TestPageWindow(t *testing.T) {
	tests := []struct {
		from, size    int
		limit, offset int
	}{
		{0, 10, 10, 0},
		{5, 10, 10, 0},
		{10, 10, 10, 10},
		{17, 10, 10, 10},
		{20, 10, 10, 20},
		{3, 2, 2, 2},
	}
	for _, tt := range tests {
		limit, offset := pageWindow(tt.from, tt.size)
		assert.Equal(t, tt.limit, limit, "from=%d size=%d", tt.from, tt.size)
		assert.Equal(t, tt.offset, offset, "from=%d size=%d", tt.from, tt.size)
	}
}
