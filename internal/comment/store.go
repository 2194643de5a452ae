package comment

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

func (s *SQLStore) Insert(ctx context.Context, cm *Comment) error {
	const q = `
	INSERT INTO comments (text, item_id, author_id, created)
	VALUES (?, ?, ?, ?)`
	res, err := s.db.ExecContext(ctx, q, cm.Text, cm.ItemID, cm.AuthorID, cm.Created)
	if err != nil {
		return err
	}
	cm.ID, err = res.LastInsertId()
	return err
}

// ListForItem returns the item's comments with author names resolved,
// newest first.
func (s *SQLStore) ListForItem(ctx context.Context, itemID int64) ([]Response, error) {
	const q = `
	SELECT c.comment_id, c.text, c.item_id, u.name, c.created
	FROM comments c
	JOIN users u ON u.user_id = c.author_id
	WHERE c.item_id = ?
	ORDER BY c.created DESC`
	rows, err := s.db.QueryContext(ctx, q, itemID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []Response
	for rows.Next() {
		var r Response
		if err := rows.Scan(&r.ID, &r.Text, &r.ItemID, &r.AuthorName, &r.Created); err != nil {
			return nil, err
		}
		out = append(out, r)
	}
	return out, rows.Err()
}

func (s *SQLStore) GetAuthorName(ctx context.Context, userID int64) (string, error) {
	const q = `SELECT name FROM users WHERE user_id = ?`
	var name string
	if err := s.db.QueryRowContext(ctx, q, userID).Scan(&name); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return "", apperr.NotFoundf("user with id %d not found", userID)
		}
		return "", err
	}
	return name, nil
}

func (s *SQLStore) ItemExists(ctx context.Context, itemID int64) error {
	const q = `SELECT EXISTS(SELECT 1 FROM items WHERE item_id = ?)`
	var exists bool
	if err := s.db.QueryRowContext(ctx, q, itemID).Scan(&exists); err != nil {
		return err
	}
	if !exists {
		return apperr.NotFoundf("item with id %d not found", itemID)
	}
	return nil
}
