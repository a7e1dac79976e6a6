package service

import (
	"context"
	"fmt"
	"strings"

	"github.com/SZFO/shareit/internal/domain"
	"github.com/SZFO/shareit/internal/service/ports"
)

type ItemService struct {
	itemRepo    ports.ItemRepo
	userRepo    ports.UserRepo
	bookingRepo ports.BookingRepo
	commentRepo ports.CommentRepo
	requestRepo ports.RequestRepo
	now         Clock
}

func NewItemService(
	itemRepo ports.ItemRepo,
	userRepo ports.UserRepo,
	bookingRepo ports.BookingRepo,
	commentRepo ports.CommentRepo,
	requestRepo ports.RequestRepo,
	now Clock,
) *ItemService {
	return &ItemService{
		itemRepo:    itemRepo,
		userRepo:    userRepo,
		bookingRepo: bookingRepo,
		commentRepo: commentRepo,
		requestRepo: requestRepo,
		now:         now,
	}
}

func (s *ItemService) Create(ctx context.Context, ownerID int64, input domain.CreateItemInput) (*domain.Item, error) {
	if input.Name == "" {
		return nil, fmt.Errorf("%w: name is required", domain.ErrValidation)
	}
	if input.Description == "" {
		return nil, fmt.Errorf("%w: description is required", domain.ErrValidation)
	}

	if _, err := s.userRepo.GetByID(ctx, ownerID); err != nil {
		return nil, fmt.Errorf("check owner: %w", err)
	}
	if input.RequestID != nil {
		if _, err := s.requestRepo.GetByID(ctx, *input.RequestID); err != nil {
			return nil, fmt.Errorf("check request: %w", err)
		}
	}

	item := &domain.Item{
		Name:        input.Name,
		Description: input.Description,
		Available:   input.Available,
		OwnerID:     ownerID,
		RequestID:   input.RequestID,
	}
	if err := s.itemRepo.Create(ctx, item); err != nil {
		return nil, fmt.Errorf("create item: %w", err)
	}

	return item, nil
}

// Update applies a partial edit. Only the owner may edit; anyone else is
// told the item does not exist.
func (s *ItemService) Update(ctx context.Context, userID, itemID int64, input domain.UpdateItemInput) (*domain.Item, error) {
	item, err := s.itemRepo.GetByID(ctx, itemID)
	if err != nil {
		return nil, fmt.Errorf("get item: %w", err)
	}
	if item.OwnerID != userID {
		return nil, fmt.Errorf("%w: item %d", domain.ErrNotItemOwner, itemID)
	}

	if input.Name != nil {
		item.Name = *input.Name
	}
	if input.Description != nil {
		item.Description = *input.Description
	}
	if input.Available != nil {
		item.Available = *input.Available
	}

	if err = s.itemRepo.Update(ctx, item); err != nil {
		return nil, fmt.Errorf("update item: %w", err)
	}

	return item, nil
}

func (s *ItemService) Delete(ctx context.Context, id int64) error {
	return s.itemRepo.Delete(ctx, id)
}

// GetByID returns the item with its comments. The last/next booking
// summaries are attached only when the caller owns the item.
func (s *ItemService) GetByID(ctx context.Context, userID, itemID int64) (*domain.ItemDetails, error) {
	item, err := s.itemRepo.GetByID(ctx, itemID)
	if err != nil {
		return nil, fmt.Errorf("get item: %w", err)
	}

	details := &domain.ItemDetails{Item: *item}
	if item.OwnerID == userID {
		if err = s.attachBookings(ctx, details); err != nil {
			return nil, err
		}
	}
	if err = s.attachComments(ctx, details); err != nil {
		return nil, err
	}

	return details, nil
}

func (s *ItemService) ListByOwner(ctx context.Context, ownerID int64, from, size int) ([]*domain.ItemDetails, error) {
	limit, offset := pageWindow(from, size)
	items, err := s.itemRepo.ListByOwner(ctx, ownerID, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("list items: %w", err)
	}

	res := make([]*domain.ItemDetails, 0, len(items))
	for _, item := range items {
		details := &domain.ItemDetails{Item: *item}
		if err = s.attachBookings(ctx, details); err != nil {
			return nil, err
		}
		if err = s.attachComments(ctx, details); err != nil {
			return nil, err
		}
		res = append(res, details)
	}

	return res, nil
}

// Search finds available items whose name or description contains text.
// Blank text yields an empty result without touching storage.
func (s *ItemService) Search(ctx context.Context, text string, from, size int) ([]*domain.Item, error) {
	if strings.TrimSpace(text) == "" {
		return []*domain.Item{}, nil
	}

	limit, offset := pageWindow(from, size)

	return s.itemRepo.Search(ctx, text, limit, offset)
}

// CreateComment lets a user comment on an item only after an approved
// booking of theirs on that item has finished.
func (s *ItemService) CreateComment(ctx context.Context, userID, itemID int64, text string) (*domain.Comment, error) {
	if strings.TrimSpace(text) == "" {
		return nil, fmt.Errorf("%w: comment text must not be blank", domain.ErrValidation)
	}

	ok, err := s.bookingRepo.HasFinishedBooking(ctx, userID, itemID, s.now())
	if err != nil {
		return nil, fmt.Errorf("check bookings: %w", err)
	}
	if !ok {
		return nil, fmt.Errorf("%w: user %d, item %d", domain.ErrNoFinishedBooking, userID, itemID)
	}

	user, err := s.userRepo.GetByID(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("check author: %w", err)
	}
	if _, err = s.itemRepo.GetByID(ctx, itemID); err != nil {
		return nil, fmt.Errorf("check item: %w", err)
	}

	comment := &domain.Comment{
		Text:       text,
		ItemID:     itemID,
		AuthorID:   userID,
		AuthorName: user.Name,
		Created:    s.now(),
	}
	if err = s.commentRepo.Create(ctx, comment); err != nil {
		return nil, fmt.Errorf("create comment: %w", err)
	}

	return comment, nil
}

func (s *ItemService) attachBookings(ctx context.Context, details *domain.ItemDetails) error {
	now := s.now()

	last, err := s.bookingRepo.LastForItem(ctx, details.ID, now)
	if err != nil {
		return fmt.Errorf("last booking: %w", err)
	}
	next, err := s.bookingRepo.NextForItem(ctx, details.ID, now)
	if err != nil {
		return fmt.Errorf("next booking: %w", err)
	}

	details.LastBooking = last
	details.NextBooking = next

	return nil
}

func (s *ItemService) attachComments(ctx context.Context, details *domain.ItemDetails) error {
	comments, err := s.commentRepo.ListByItem(ctx, details.ID)
	if err != nil {
		return fmt.Errorf("list comments: %w", err)
	}
	if comments == nil {
		comments = []domain.Comment{}
	}
	details.Comments = comments

	return nil
}
