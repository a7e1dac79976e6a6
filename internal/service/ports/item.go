package ports

import (
	"context"

	"github.com/SZFO/shareit/internal/domain"
)

type ItemRepo interface {
	Create(ctx context.Context, item *domain.Item) error
	GetByID(ctx context.Context, id int64) (*domain.Item, error)
	ListByOwner(ctx context.Context, ownerID int64, limit, offset int) ([]*domain.Item, error)
	Search(ctx context.Context, text string, limit, offset int) ([]*domain.Item, error)
	ListByRequest(ctx context.Context, requestID int64) ([]*domain.Item, error)
	Update(ctx context.Context, item *domain.Item) error
	Delete(ctx context.Context, id int64) error
}

type CommentRepo interface {
	Create(ctx context.Context, comment *domain.Comment) error
	ListByItem(ctx context.Context, itemID int64) ([]domain.Comment, error)
}
