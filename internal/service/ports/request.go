package ports

import (
	"context"

	"github.com/SZFO/shareit/internal/domain"
)

type RequestRepo interface {
	Create(ctx context.Context, request *domain.ItemRequest) error
	GetByID(ctx context.Context, id int64) (*domain.ItemRequest, error)
	ListByRequester(ctx context.Context, requesterID int64, limit, offset int) ([]*domain.ItemRequest, error)
	ListByOthers(ctx context.Context, requesterID int64, limit, offset int) ([]*domain.ItemRequest, error)
}
