package service

import (
	"context"
	"fmt"
	"strings"

	"github.com/SZFO/shareit/internal/domain"
	"github.com/SZFO/shareit/internal/service/ports"
)

type RequestService struct {
	requestRepo ports.RequestRepo
	itemRepo    ports.ItemRepo
	userRepo    ports.UserRepo
	now         Clock
}

func NewRequestService(
	requestRepo ports.RequestRepo,
	itemRepo ports.ItemRepo,
	userRepo ports.UserRepo,
	now Clock,
) *RequestService {
	return &RequestService{
		requestRepo: requestRepo,
		itemRepo:    itemRepo,
		userRepo:    userRepo,
		now:         now,
	}
}

func (s *RequestService) Create(ctx context.Context, requesterID int64, description string) (*domain.ItemRequest, error) {
	if strings.TrimSpace(description) == "" {
		return nil, fmt.Errorf("%w: description is required", domain.ErrValidation)
	}
	if _, err := s.userRepo.GetByID(ctx, requesterID); err != nil {
		return nil, fmt.Errorf("check requester: %w", err)
	}

	request := &domain.ItemRequest{
		Description: description,
		RequesterID: requesterID,
		Created:     s.now(),
	}
	if err := s.requestRepo.Create(ctx, request); err != nil {
		return nil, fmt.Errorf("create request: %w", err)
	}

	return request, nil
}

func (s *RequestService) GetByID(ctx context.Context, userID, requestID int64) (*domain.ItemRequestDetails, error) {
	if _, err := s.userRepo.GetByID(ctx, userID); err != nil {
		return nil, fmt.Errorf("check user: %w", err)
	}

	request, err := s.requestRepo.GetByID(ctx, requestID)
	if err != nil {
		return nil, fmt.Errorf("get request: %w", err)
	}

	return s.withItems(ctx, request)
}

// ListOwn returns the user's own requests, oldest first.
func (s *RequestService) ListOwn(ctx context.Context, userID int64, from, size int) ([]*domain.ItemRequestDetails, error) {
	if _, err := s.userRepo.GetByID(ctx, userID); err != nil {
		return nil, fmt.Errorf("check user: %w", err)
	}

	limit, offset := pageWindow(from, size)
	requests, err := s.requestRepo.ListByRequester(ctx, userID, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("list requests: %w", err)
	}

	return s.withItemsAll(ctx, requests)
}

// ListOthers returns requests posted by everyone except the user, so owners
// can browse want-ads they might answer.
func (s *RequestService) ListOthers(ctx context.Context, userID int64, from, size int) ([]*domain.ItemRequestDetails, error) {
	if _, err := s.userRepo.GetByID(ctx, userID); err != nil {
		return nil, fmt.Errorf("check user: %w", err)
	}

	limit, offset := pageWindow(from, size)
	requests, err := s.requestRepo.ListByOthers(ctx, userID, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("list requests: %w", err)
	}

	return s.withItemsAll(ctx, requests)
}

func (s *RequestService) withItems(ctx context.Context, request *domain.ItemRequest) (*domain.ItemRequestDetails, error) {
	items, err := s.itemRepo.ListByRequest(ctx, request.ID)
	if err != nil {
		return nil, fmt.Errorf("list items by request: %w", err)
	}

	details := &domain.ItemRequestDetails{ItemRequest: *request, Items: []domain.Item{}}
	for _, item := range items {
		details.Items = append(details.Items, *item)
	}

	return details, nil
}

func (s *RequestService) withItemsAll(ctx context.Context, requests []*domain.ItemRequest) ([]*domain.ItemRequestDetails, error) {
	res := make([]*domain.ItemRequestDetails, 0, len(requests))
	for _, request := range requests {
		details, err := s.withItems(ctx, request)
		if err != nil {
			return nil, err
		}
		res = append(res, details)
	}

	return res, nil
}
