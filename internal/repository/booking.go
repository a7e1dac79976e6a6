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

const selectBooking = `
	SELECT b.id, b.start_at, b.end_at, b.status,
		   i.id, i.name, i.description, i.available, i.owner_id, i.request_id,
		   u.id, u.name, u.email, u.telegram_chat_id
	FROM bookings b
	JOIN items i ON i.id = b.item_id
	JOIN users u ON u.id = b.booker_id`

type BookingRepository struct {
	db       *dbpg.DB
	strategy retry.Strategy
}

func NewBookingRepo(db *dbpg.DB) *BookingRepository {
	return &BookingRepository{
		db: db,
		strategy: retry.Strategy{
			Attempts: 3,
			Delay:    500 * time.Millisecond,
			Backoff:  2,
		},
	}
}

func (r *BookingRepository) Create(ctx context.Context, b *domain.Booking) error {
	query := `INSERT INTO bookings (start_at, end_at, item_id, booker_id, status)
			  VALUES ($1, $2, $3, $4, $5)
			  RETURNING id`

	row, err := r.db.QueryRowWithRetry(ctx, r.strategy, query,
		b.Start, b.End, b.Item.ID, b.Booker.ID, b.Status)
	if err != nil {
		return fmt.Errorf("insert booking: %w", err)
	}

	if err = row.Scan(&b.ID); err != nil {
		return fmt.Errorf("insert booking: %w", err)
	}

	return nil
}

func (r *BookingRepository) GetByID(ctx context.Context, id int64) (*domain.Booking, error) {
	query := selectBooking + `
	WHERE b.id = $1`

	row, err := r.db.QueryRowWithRetry(ctx, r.strategy, query, id)
	if err != nil {
		return nil, fmt.Errorf("get booking: %w", err)
	}

	b, err := scanBookingRow(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrBookingNotFound
		}
		return nil, fmt.Errorf("scan booking: %w", err)
	}

	return b, nil
}

// UpdateStatus performs the transition as a compare-and-swap: the UPDATE
// only matches while the stored status equals from, so two concurrent
// approvals cannot both succeed. A zero-row result is re-read inside the
// same transaction to tell "gone" apart from "already processed".
func (r *BookingRepository) UpdateStatus(ctx context.Context, id int64, from, to domain.BookingStatus) error {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin tx: %w", err)
	}
	defer tx.Rollback()

	query := `UPDATE bookings
			  SET status = $3
			  WHERE id = $1 AND status = $2`
	res, err := tx.ExecContext(ctx, query, id, from, to)
	if err != nil {
		return fmt.Errorf("update booking status: %w", err)
	}

	rows, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("booking rows affected: %w", err)
	}
	if rows == 0 {
		var status string
		checkQuery := `SELECT status FROM bookings WHERE id = $1`
		if scanErr := tx.QueryRowContext(ctx, checkQuery, id).Scan(&status); scanErr != nil {
			return domain.ErrBookingNotFound
		}
		return fmt.Errorf("%w: booking %d is %s", domain.ErrBookingProcessed, id, status)
	}

	return tx.Commit()
}

func (r *BookingRepository) ListByBooker(ctx context.Context, bookerID int64, state domain.BookingState, now time.Time, limit, offset int) ([]*domain.Booking, error) {
	return r.list(ctx, "b.booker_id", bookerID, state, now, limit, offset)
}

func (r *BookingRepository) ListByOwner(ctx context.Context, ownerID int64, state domain.BookingState, now time.Time, limit, offset int) ([]*domain.Booking, error) {
	return r.list(ctx, "i.owner_id", ownerID, state, now, limit, offset)
}

func (r *BookingRepository) list(ctx context.Context, column string, id int64, state domain.BookingState, now time.Time, limit, offset int) ([]*domain.Booking, error) {
	query := selectBooking + `
	WHERE ` + column + ` = $1`
	args := []any{id}

	switch state {
	case domain.BookingStateCurrent:
		query += ` AND b.start_at < $2 AND b.end_at > $2`
		args = append(args, now)
	case domain.BookingStatePast:
		query += ` AND b.end_at < $2`
		args = append(args, now)
	case domain.BookingStateFuture:
		query += ` AND b.start_at > $2`
		args = append(args, now)
	case domain.BookingStateWaiting, domain.BookingStateRejected:
		query += ` AND b.status = $2`
		args = append(args, string(state))
	}

	query += fmt.Sprintf(`
	ORDER BY b.start_at DESC
	LIMIT $%d OFFSET $%d`, len(args)+1, len(args)+2)
	args = append(args, limit, offset)

	rows, err := r.db.QueryWithRetry(ctx, r.strategy, query, args...)
	if err != nil {
		return nil, fmt.Errorf("list bookings: %w", err)
	}
	defer rows.Close()

	var res []*domain.Booking
	for rows.Next() {
		b, err := scanBookingRow(rows)
		if err != nil {
			return nil, fmt.Errorf("scan booking: %w", err)
		}
		res = append(res, b)
	}

	return res, rows.Err()
}

func (r *BookingRepository) LastForItem(ctx context.Context, itemID int64, now time.Time) (*domain.BookingSummary, error) {
	query := `SELECT id, booker_id
			  FROM bookings
			  WHERE item_id = $1 AND end_at < $2
			  ORDER BY end_at DESC
			  LIMIT 1`

	return r.summary(ctx, query, itemID, now)
}

func (r *BookingRepository) NextForItem(ctx context.Context, itemID int64, now time.Time) (*domain.BookingSummary, error) {
	query := `SELECT id, booker_id
			  FROM bookings
			  WHERE item_id = $1 AND start_at > $2
			  ORDER BY start_at
			  LIMIT 1`

	return r.summary(ctx, query, itemID, now)
}

func (r *BookingRepository) summary(ctx context.Context, query string, itemID int64, now time.Time) (*domain.BookingSummary, error) {
	row, err := r.db.QueryRowWithRetry(ctx, r.strategy, query, itemID, now)
	if err != nil {
		return nil, fmt.Errorf("get booking summary: %w", err)
	}

	var s domain.BookingSummary
	if err = row.Scan(&s.ID, &s.BookerID); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("scan booking summary: %w", err)
	}

	return &s, nil
}

func (r *BookingRepository) HasFinishedBooking(ctx context.Context, bookerID, itemID int64, now time.Time) (bool, error) {
	query := `SELECT EXISTS (
				SELECT 1 FROM bookings
				WHERE booker_id = $1 AND item_id = $2 AND status = $3 AND end_at < $4
			  )`

	row, err := r.db.QueryRowWithRetry(ctx, r.strategy, query,
		bookerID, itemID, domain.BookingStatusApproved, now)
	if err != nil {
		return false, fmt.Errorf("check finished booking: %w", err)
	}

	var exists bool
	if err = row.Scan(&exists); err != nil {
		return false, fmt.Errorf("scan finished booking: %w", err)
	}

	return exists, nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanBookingRow(row rowScanner) (*domain.Booking, error) {
	var b domain.Booking
	err := row.Scan(
		&b.ID, &b.Start, &b.End, &b.Status,
		&b.Item.ID, &b.Item.Name, &b.Item.Description, &b.Item.Available,
		&b.Item.OwnerID, &b.Item.RequestID,
		&b.Booker.ID, &b.Booker.Name, &b.Booker.Email, &b.Booker.TelegramChatID,
	)
	if err != nil {
		return nil, err
	}

	return &b, nil
}
