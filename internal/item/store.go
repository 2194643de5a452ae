package item

import (
	"context"
	"database/sql"
	"errors"

	"shareit/internal/platform/apperr"
)

type SQLStore struct {
	db *sql.DB
}

func NewStore(conn *sql.DB) *SQLStore { return &SQLStore{db: conn} }

func (s *SQLStore) Insert(ctx context.Context, i *Item) error {
	const q = `
	INSERT INTO items (name, description, available, owner_id, request_id)
	VALUES (?, ?, ?, ?, ?)`
	res, err := s.db.ExecContext(ctx, q, i.Name, i.Description, i.Available, i.OwnerID, i.RequestID)
	if err != nil {
		return err
	}
	i.ID, err = res.LastInsertId()
	return err
}

func (s *SQLStore) GetByID(ctx context.Context, id int64) (*Item, error) {
	const q = `
	SELECT item_id, name, description, available, owner_id, request_id
	FROM items WHERE item_id = ?`
	var i Item
	err := s.db.QueryRowContext(ctx, q, id).Scan(
		&i.ID, &i.Name, &i.Description, &i.Available, &i.OwnerID, &i.RequestID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, apperr.NotFoundf("item with id %d not found", id)
		}
		return nil, err
	}
	return &i, nil
}

func (s *SQLStore) Update(ctx context.Context, i *Item) error {
	const q = `UPDATE items SET name = ?, description = ?, available = ? WHERE item_id = ?`
	_, err := s.db.ExecContext(ctx, q, i.Name, i.Description, i.Available, i.ID)
	return err
}

func (s *SQLStore) ListByOwner(ctx context.Context, ownerID int64, limit, offset int) ([]Item, error) {
	const q = `
	SELECT item_id, name, description, available, owner_id, request_id
	FROM items WHERE owner_id = ?
	ORDER BY item_id
	LIMIT ? OFFSET ?`
	return s.queryItems(ctx, q, ownerID, limit, offset)
}

// Search matches name or description case-insensitively; only available
// items are returned.
func (s *SQLStore) Search(ctx context.Context, text string) ([]Item, error) {
	const q = `
	SELECT item_id, name, description, available, owner_id, request_id
	FROM items
	WHERE (LOWER(name) LIKE LOWER(CONCAT('%', ?, '%'))
	   OR LOWER(description) LIKE LOWER(CONCAT('%', ?, '%')))
	  AND available = TRUE
	ORDER BY item_id`
	return s.queryItems(ctx, q, text, text)
}

func (s *SQLStore) queryItems(ctx context.Context, q string, args ...any) ([]Item, error) {
	rows, err := s.db.QueryContext(ctx, q, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []Item
	for rows.Next() {
		var i Item
		if err := rows.Scan(&i.ID, &i.Name, &i.Description, &i.Available, &i.OwnerID, &i.RequestID); err != nil {
			return nil, err
		}
		out = append(out, i)
	}
	return out, rows.Err()
}

func (s *SQLStore) UserExists(ctx context.Context, userID int64) error {
	const q = `SELECT EXISTS(SELECT 1 FROM users WHERE user_id = ?)`
	var exists bool
	if err := s.db.QueryRowContext(ctx, q, userID).Scan(&exists); err != nil {
		return err
	}
	if !exists {
		return apperr.NotFoundf("user with id %d not found", userID)
	}
	return nil
}

func (s *SQLStore) RequestExists(ctx context.Context, requestID int64) error {
	const q = `SELECT EXISTS(SELECT 1 FROM requests WHERE request_id = ?)`
	var exists bool
	if err := s.db.QueryRowContext(ctx, q, requestID).Scan(&exists); err != nil {
		return err
	}
	if !exists {
		return apperr.NotFoundf("request with id %d not found", requestID)
	}
	return nil
}
