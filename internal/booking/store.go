package booking

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"shareit/internal/platform/apperr"
)

type SQLStore struct {
	db *sql.DB
}

func NewStore(conn *sql.DB) *SQLStore { return &SQLStore{db: conn} }

const recordQuery = `
	SELECT b.booking_id, b.item_id, b.booker_id, b.start_date, b.end_date, b.status,
	       i.name, i.description, i.available, i.owner_id,
	       u.name, u.email
	FROM bookings b
	JOIN items i ON i.item_id = b.item_id
	JOIN users u ON u.user_id = b.booker_id`

type rowScanner interface {
	Scan(dest ...any) error
}

func scanRecord(row rowScanner) (*Record, error) {
	var r Record
	err := row.Scan(
		&r.ID, &r.ItemID, &r.BookerID, &r.Start, &r.End, &r.Status,
		&r.Item.Name, &r.Item.Description, &r.Item.Available, &r.Item.OwnerID,
		&r.Booker.Name, &r.Booker.Email,
	)
	if err != nil {
		return nil, err
	}
	r.Item.ID = r.ItemID
	r.Booker.ID = r.BookerID
	return &r, nil
}

func (s *SQLStore) GetUser(ctx context.Context, id int64) (*BookerInfo, error) {
	const q = `SELECT user_id, name, email FROM users WHERE user_id = ?`
	var u BookerInfo
	if err := s.db.QueryRowContext(ctx, q, id).Scan(&u.ID, &u.Name, &u.Email); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, apperr.NotFoundf("user with id %d not found", id)
		}
		return nil, err
	}
	return &u, nil
}

func (s *SQLStore) GetItem(ctx context.Context, id int64) (*ItemInfo, error) {
	const q = `SELECT item_id, name, description, available, owner_id FROM items WHERE item_id = ?`
	var i ItemInfo
	if err := s.db.QueryRowContext(ctx, q, id).Scan(&i.ID, &i.Name, &i.Description, &i.Available, &i.OwnerID); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, apperr.NotFoundf("item with id %d not found", id)
		}
		return nil, err
	}
	return &i, nil
}

func (s *SQLStore) Insert(ctx context.Context, b *Booking) error {
	const q = `
	INSERT INTO bookings (item_id, booker_id, start_date, end_date, status)
	VALUES (?, ?, ?, ?, ?)`
	res, err := s.db.ExecContext(ctx, q, b.ItemID, b.BookerID, b.Start, b.End, b.Status)
	if err != nil {
		return err
	}
	b.ID, err = res.LastInsertId()
	return err
}

func (s *SQLStore) GetByID(ctx context.Context, id int64) (*Record, error) {
	const q = recordQuery + ` WHERE b.booking_id = ?`
	r, err := scanRecord(s.db.QueryRowContext(ctx, q, id))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, apperr.NotFoundf("booking with id %d not found", id)
		}
		return nil, err
	}
	return r, nil
}

// SetStatusIfNotApproved performs the decision as one conditional write.
// APPROVED is terminal; a REJECTED booking may still be re-decided. Returns
// false when the row was already APPROVED (including a lost concurrent race).
func (s *SQLStore) SetStatusIfNotApproved(ctx context.Context, id int64, status Status) (bool, error) {
	const q = `UPDATE bookings SET status = ? WHERE booking_id = ? AND status <> ?`
	res, err := s.db.ExecContext(ctx, q, status, id, StatusApproved)
	if err != nil {
		return false, err
	}
	aff, err := res.RowsAffected()
	if err != nil {
		return false, err
	}
	return aff > 0, nil
}

func (s *SQLStore) ListForBooker(ctx context.Context, userID int64, state State, now time.Time) ([]Record, error) {
	q := recordQuery + ` WHERE b.booker_id = ?`
	args := []any{userID}
	q, args = appendStateFilter(q, args, state, now)
	q += ` ORDER BY b.start_date DESC`
	return s.queryRecords(ctx, q, args...)
}

func (s *SQLStore) ListForOwner(ctx context.Context, userID int64, state State, now time.Time) ([]Record, error) {
	q := recordQuery + ` WHERE i.owner_id = ?`
	args := []any{userID}
	q, args = appendStateFilter(q, args, state, now)
	q += ` ORDER BY b.start_date DESC`
	return s.queryRecords(ctx, q, args...)
}

func appendStateFilter(q string, args []any, state State, now time.Time) (string, []any) {
	switch state {
	case StateCurrent:
		q += ` AND b.start_date <= ? AND b.end_date >= ?`
		args = append(args, now, now)
	case StatePast:
		q += ` AND b.end_date < ?`
		args = append(args, now)
	case StateFuture:
		q += ` AND b.start_date > ?`
		args = append(args, now)
	case StateWaiting, StateRejected:
		q += ` AND b.status = ?`
		args = append(args, string(state))
	}
	return q, args
}

func (s *SQLStore) queryRecords(ctx context.Context, q string, args ...any) ([]Record, error) {
	rows, err := s.db.QueryContext(ctx, q, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []Record
	for rows.Next() {
		r, err := scanRecord(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, *r)
	}
	return out, rows.Err()
}

// LastForItem returns the APPROVED booking of the item with the greatest end
// before now, or nil when the item has no completed booking.
func (s *SQLStore) LastForItem(ctx context.Context, itemID int64, now time.Time) (*Record, error) {
	const q = recordQuery + `
	WHERE b.item_id = ? AND b.status = ? AND b.end_date < ?
	ORDER BY b.end_date DESC
	LIMIT 1`
	r, err := scanRecord(s.db.QueryRowContext(ctx, q, itemID, StatusApproved, now))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}
	return r, nil
}

// NextForItem returns the APPROVED booking of the item with the smallest
// start after now, or nil.
func (s *SQLStore) NextForItem(ctx context.Context, itemID int64, now time.Time) (*Record, error) {
	const q = recordQuery + `
	WHERE b.item_id = ? AND b.status = ? AND b.start_date > ?
	ORDER BY b.start_date
	LIMIT 1`
	r, err := scanRecord(s.db.QueryRowContext(ctx, q, itemID, StatusApproved, now))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}
	return r, nil
}

func (s *SQLStore) HasCompletedRental(ctx context.Context, userID, itemID int64, now time.Time) (bool, error) {
	const q = `
	SELECT EXISTS(
		SELECT 1 FROM bookings
		WHERE booker_id = ? AND item_id = ? AND status = ? AND end_date <= ?
	)`
	var exists bool
	if err := s.db.QueryRowContext(ctx, q, userID, itemID, StatusApproved, now).Scan(&exists); err != nil {
		return false, err
	}
	return exists, nil
}
