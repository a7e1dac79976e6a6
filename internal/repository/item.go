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

type ItemRepository struct {
	db       *dbpg.DB
	strategy retry.Strategy
}

func NewItemRepo(db *dbpg.DB) *ItemRepository {
	return &ItemRepository{
		db: db,
		strategy: retry.Strategy{
			Attempts: 3,
			Delay:    500 * time.Millisecond,
			Backoff:  2,
		},
	}
}

func (r *ItemRepository) Create(ctx context.Context, item *domain.Item) error {
	query := `INSERT INTO items (name, description, available, owner_id, request_id)
			  VALUES ($1, $2, $3, $4, $5)
			  RETURNING id`

	row, err := r.db.QueryRowWithRetry(ctx, r.strategy, query,
		item.Name, item.Description, item.Available, item.OwnerID, item.RequestID)
	if err != nil {
		return fmt.Errorf("insert item: %w", err)
	}

	if err = row.Scan(&item.ID); err != nil {
		return fmt.Errorf("insert item: %w", err)
	}

	return nil
}

func (r *ItemRepository) GetByID(ctx context.Context, id int64) (*domain.Item, error) {
	query := `SELECT id, name, description, available, owner_id, request_id
			  FROM items
			  WHERE id = $1`

	row, err := r.db.QueryRowWithRetry(ctx, r.strategy, query, id)
	if err != nil {
		return nil, fmt.Errorf("get item: %w", err)
	}

	var i domain.Item
	if err = row.Scan(&i.ID, &i.Name, &i.Description, &i.Available, &i.OwnerID, &i.RequestID); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrItemNotFound
		}
		return nil, fmt.Errorf("scan item: %w", err)
	}

	return &i, nil
}

func (r *ItemRepository) ListByOwner(ctx context.Context, ownerID int64, limit, offset int) ([]*domain.Item, error) {
	query := `SELECT id, name, description, available, owner_id, request_id
			  FROM items
			  WHERE owner_id = $1
			  ORDER BY id
			  LIMIT $2 OFFSET $3`

	rows, err := r.db.QueryWithRetry(ctx, r.strategy, query, ownerID, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("list items by owner: %w", err)
	}
	defer rows.Close()

	return scanItems(rows)
}

func (r *ItemRepository) Search(ctx context.Context, text string, limit, offset int) ([]*domain.Item, error) {
	query := `SELECT id, name, description, available, owner_id, request_id
			  FROM items
			  WHERE (name ILIKE '%' || $1 || '%' OR description ILIKE '%' || $1 || '%')
			    AND available = TRUE
			  ORDER BY id
			  LIMIT $2 OFFSET $3`

	rows, err := r.db.QueryWithRetry(ctx, r.strategy, query, text, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("search items: %w", err)
	}
	defer rows.Close()

	return scanItems(rows)
}

func (r *ItemRepository) ListByRequest(ctx context.Context, requestID int64) ([]*domain.Item, error) {
	query := `SELECT id, name, description, available, owner_id, request_id
			  FROM items
			  WHERE request_id = $1
			  ORDER BY id`

	rows, err := r.db.QueryWithRetry(ctx, r.strategy, query, requestID)
	if err != nil {
		return nil, fmt.Errorf("list items by request: %w", err)
	}
	defer rows.Close()

	return scanItems(rows)
}

func (r *ItemRepository) Update(ctx context.Context, item *domain.Item) error {
	query := `UPDATE items
			  SET name = $2, description = $3, available = $4
			  WHERE id = $1`

	res, err := r.db.ExecWithRetry(ctx, r.strategy, query,
		item.ID, item.Name, item.Description, item.Available)
	if err != nil {
		return fmt.Errorf("update item: %w", err)
	}

	rows, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("item rows affected: %w", err)
	}
	if rows == 0 {
		return domain.ErrItemNotFound
	}

	return nil
}

func (r *ItemRepository) Delete(ctx context.Context, id int64) error {
	query := `DELETE FROM items WHERE id = $1`

	res, err := r.db.ExecWithRetry(ctx, r.strategy, query, id)
	if err != nil {
		return fmt.Errorf("delete item: %w", err)
	}

	rows, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("item rows affected: %w", err)
	}
	if rows == 0 {
		return domain.ErrItemNotFound
	}

	return nil
}

func scanItems(rows *sql.Rows) ([]*domain.Item, error) {
	var res []*domain.Item
	for rows.Next() {
		var i domain.Item
		if err := rows.Scan(&i.ID, &i.Name, &i.Description, &i.Available, &i.OwnerID, &i.RequestID); err != nil {
			return nil, fmt.Errorf("scan item: %w", err)
		}
		res = append(res, &i)
	}

	return res, rows.Err()
}
