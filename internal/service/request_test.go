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
)

func newRequestService(t *testing.T, at time.Time) (*RequestService, *mocks.MockRequestRepo, *mocks.MockItemRepo, *mocks.MockUserRepo) {
	t.Helper()

	requestRepo := mocks.NewMockRequestRepo(t)
	itemRepo := mocks.NewMockItemRepo(t)
	userRepo := mocks.NewMockUserRepo(t)

	svc := NewRequestService(requestRepo, itemRepo, userRepo, fixedClock(at))

	return svc, requestRepo, itemRepo, userRepo
}

func TestRequestService_Create(t *testing.T) {
	now := time.Date(2024, 6, 1, 12, 0, 0, 0, time.UTC)

	svc, requestRepo, _, userRepo := newRequestService(t, now)

	userRepo.EXPECT().GetByID(mock.Anything, int64(2)).Return(&domain.User{ID: 2}, nil)
	requestRepo.EXPECT().Create(mock.Anything, mock.Anything).Run(func(ctx context.Context, request *domain.ItemRequest) {
		request.ID = 7
	}).Return(nil)

	request, err := svc.Create(context.Background(), 2, "need a drill")

	require.NoError(t, err)
	assert.Equal(t, int64(7), request.ID)
	assert.Equal(t, int64(2), request.RequesterID)
	assert.Equal(t, now, request.Created)
}

func TestRequestService_Create_BlankDescription(t *testing.T) {
	now := time.Date(2024, 6, 1, 12, 0, 0, 0, time.UTC)

	svc, _, _, _ := newRequestService(t, now)

	_, err := svc.Create(context.Background(), 2, "  ")

	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrValidation)
}

func TestRequestService_Create_UnknownUser(t *testing.T) {
	now := time.Date(2024, 6, 1, 12, 0, 0, 0, time.UTC)

	svc, _, _, userRepo := newRequestService(t, now)

	userRepo.EXPECT().GetByID(mock.Anything, int64(99)).Return(nil, domain.ErrUserNotFound)

	_, err := svc.Create(context.Background(), 99, "need a drill")

	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrUserNotFound)
}

func TestRequestService_GetByID_WithItems(t *testing.T) {
	now := time.Date(2024, 6, 1, 12, 0, 0, 0, time.UTC)

	svc, requestRepo, itemRepo, userRepo := newRequestService(t, now)

	request := &domain.ItemRequest{ID: 7, Description: "need a drill", RequesterID: 2}
	items := []*domain.Item{{ID: 10, Name: "drill", RequestID: &request.ID}}

	userRepo.EXPECT().GetByID(mock.Anything, int64(3)).Return(&domain.User{ID: 3}, nil)
	requestRepo.EXPECT().GetByID(mock.Anything, int64(7)).Return(request, nil)
	itemRepo.EXPECT().ListByRequest(mock.Anything, int64(7)).Return(items, nil)

	details, err := svc.GetByID(context.Background(), 3, 7)

	require.NoError(t, err)
	assert.Equal(t, int64(7), details.ID)
	require.Len(t, details.Items, 1)
	assert.Equal(t, int64(10), details.Items[0].ID)
}

func TestRequestService_GetByID_NotFound(t *testing.T) {
	now := time.Date(2024, 6, 1, 12, 0, 0, 0, time.UTC)

	svc, requestRepo, _, userRepo := newRequestService(t, now)

	userRepo.EXPECT().GetByID(mock.Anything, int64(3)).Return(&domain.User{ID: 3}, nil)
	requestRepo.EXPECT().GetByID(mock.Anything, int64(99)).Return(nil, domain.ErrRequestNotFound)

	_, err := svc.GetByID(context.Background(), 3, 99)

	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrRequestNotFound)
}

func TestRequestService_ListOwn(t *testing.T) {
	now := time.Date(2024, 6, 1, 12, 0, 0, 0, time.UTC)

	svc, requestRepo, itemRepo, userRepo := newRequestService(t, now)

	requests := []*domain.ItemRequest{{ID: 7, RequesterID: 2}, {ID: 8, RequesterID: 2}}

	userRepo.EXPECT().GetByID(mock.Anything, int64(2)).Return(&domain.User{ID: 2}, nil)
	requestRepo.EXPECT().ListByRequester(mock.Anything, int64(2), 10, 0).Return(requests, nil)
	itemRepo.EXPECT().ListByRequest(mock.Anything, mock.Anything).Return(nil, nil)

	details, err := svc.ListOwn(context.Background(), 2, 0, 10)

	require.NoError(t, err)
	require.Len(t, details, 2)
	assert.NotNil(t, details[0].Items)
	assert.Empty(t, details[0].Items)
}

func TestRequestService_ListOthers(t *testing.T) {
	now := time.Date(2024, 6, 1, 12, 0, 0, 0, time.UTC)

	svc, requestRepo, itemRepo, userRepo := newRequestService(t, now)

	requests := []*domain.ItemRequest{{ID: 9, RequesterID: 3}}

	userRepo.EXPECT().GetByID(mock.Anything, int64(2)).Return(&domain.User{ID: 2}, nil)
	requestRepo.EXPECT().ListByOthers(mock.Anything, int64(2), 10, 0).Return(requests, nil)
	itemRepo.EXPECT().ListByRequest(mock.Anything, int64(9)).Return(nil, nil)

	details, err := svc.ListOthers(context.Background(), 2, 0, 10)

	require.NoError(t, err)
	require.Len(t, details, 1)
	assert.Equal(t, int64(9), details[0].ID)
}

func TestRequestService_ListOthers_UnknownUser(t *testing.T) {
	now := time.Date(2024, 6, 1, 12, 0, 0, 0, time.UTC)

	svc, _, _, userRepo := newRequestService(t, now)

	userRepo.EXPECT().GetByID(mock.Anything, int64(99)).Return(nil, domain.ErrUserNotFound)

	_, err := svc.ListOthers(context.Background(), 99, 0, 10)

	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrUserNotFound)
}
