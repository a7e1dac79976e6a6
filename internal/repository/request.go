package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/SZFO/shareit/internal/domain"
	"github.com/wb-go/wbf/dbpg"
	"github.com/wb-go/wbf/retry"
)

type RequestRepository struct {
	db       *dbpg.DB
	strategy retry.Strategy
}

func NewRequestRepo(db *dbpg.DB) *RequestRepository {
	return &RequestRepository{
		db: db,
		strategy: retry.Strategy{
			Attempts: 3,
			Delay:    500 * time.Millisecond,
			Backoff:  2,
		},
	}
}

func (r *RequestRepository) Create(ctx context.Context, request *domain.ItemRequest) error {
	query := `INSERT INTO item_requests (description, requester_id, created_at)
			  VALUES ($1, $2, $3)
			  RETURNING id`

	row, err := r.db.QueryRowWithRetry(ctx, r.strategy, query,
		request.Description, request.RequesterID, request.Created)
	if err != nil {
		return fmt.Errorf("insert request: %w", err)
	}

	if err = row.Scan(&request.ID); err != nil {
		return fmt.Errorf("insert request: %w", err)
	}

	return nil
}

func (r *RequestRepository) GetByID(ctx context.Context, id int64) (*domain.ItemRequest, error) {
	query := `SELECT id, description, requester_id, created_at
			  FROM item_requests
			  WHERE id = $1`

	row, err := r.db.QueryRowWithRetry(ctx, r.strategy, query, id)
	if err != nil {
		return nil, fmt.Errorf("get request: %w", err)
	}

	var req domain.ItemRequest
	if err = row.Scan(&req.ID, &req.Description, &req.RequesterID, &req.Created); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrRequestNotFound
		}
		return nil, fmt.Errorf("scan request: %w", err)
	}

	return &req, nil
}

func (r *RequestRepository) ListByRequester(ctx context.Context, requesterID int64, limit, offset int) ([]*domain.ItemRequest, error) {
	query := `SELECT id, description, requester_id, created_at
			  FROM item_requests
			  WHERE requester_id = $1
			  ORDER BY created_at
			  LIMIT $2 OFFSET $3`

	return r.listRequests(ctx, query, requesterID, limit, offset)
}

func (r *RequestRepository) ListByOthers(ctx context.Context, requesterID int64, limit, offset int) ([]*domain.ItemRequest, error) {
	query := `SELECT id, description, requester_id, created_at
			  FROM item_requests
			  WHERE requester_id <> $1
			  ORDER BY created_at
			  LIMIT $2 OFFSET $3`

	return r.listRequests(ctx, query, requesterID, limit, offset)
}

func (r *RequestRepository) listRequests(ctx context.Context, query string, requesterID int64, limit, offset int) ([]*domain.ItemRequest, error) {
	rows, err := r.db.QueryWithRetry(ctx, r.strategy, query, requesterID, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("list requests: %w", err)
	}
	defer rows.Close()

	var res []*domain.ItemRequest
	for rows.Next() {
		var req domain.ItemRequest
		if err = rows.Scan(&req.ID, &req.Description, &req.RequesterID, &req.Created); err != nil {
			return nil, fmt.Errorf("scan request: %w", err)
		}
		res = append(res, &req)
	}

	return res, rows.Err()
}
