package repository

import (
	"context"
	"fmt"
	"time"

	"github.com/SZFO/shareit/internal/domain"
	"github.com/wb-go/wbf/dbpg"
	"github.com/wb-go/wbf/retry"
)

type CommentRepository struct {
	db       *dbpg.DB
	strategy retry.Strategy
}

func NewCommentRepo(db *dbpg.DB) *CommentRepository {
	return &CommentRepository{
		db: db,
		strategy: retry.Strategy{
			Attempts: 3,
			Delay:    500 * time.Millisecond,
			Backoff:  2,
		},
	}
}

func (r *CommentRepository) Create(ctx context.Context, comment *domain.Comment) error {
	query := `INSERT INTO comments (text, item_id, author_id, created_at)
			  VALUES ($1, $2, $3, $4)
			  RETURNING id`

	row, err := r.db.QueryRowWithRetry(ctx, r.strategy, query,
		comment.Text, comment.ItemID, comment.AuthorID, comment.Created)
	if err != nil {
		return fmt.Errorf("insert comment: %w", err)
	}

	if err = row.Scan(&comment.ID); err != nil {
		return fmt.Errorf("insert comment: %w", err)
	}

	return nil
}

func (r *CommentRepository) ListByItem(ctx context.Context, itemID int64) ([]domain.Comment, error) {
	query := `SELECT c.id, c.text, c.item_id, c.author_id, u.name, c.created_at
			  FROM comments c
			  JOIN users u ON u.id = c.author_id
			  WHERE c.item_id = $1
			  ORDER BY c.id`

	rows, err := r.db.QueryWithRetry(ctx, r.strategy, query, itemID)
	if err != nil {
		return nil, fmt.Errorf("list comments: %w", err)
	}
	defer rows.Close()

	var res []domain.Comment
	for rows.Next() {
		var c domain.Comment
		if err = rows.Scan(&c.ID, &c.Text, &c.ItemID, &c.AuthorID, &c.AuthorName, &c.Created); err != nil {
			return nil, fmt.Errorf("scan comment: %w", err)
		}
		res = append(res, c)
	}

	return res, rows.Err()
}
