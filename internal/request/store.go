package request

import (
	"context"
	"database/sql"
	"errors"

	"shareit/internal/platform/apperr"
	"shareit/internal/platform/db"
)

type SQLStore struct {
	db *sql.DB
}

func NewStore(conn *sql.DB) *SQLStore { return &SQLStore{db: conn} }

func (s *SQLStore) Insert(ctx context.Context, r *Request) error {
	const q = `
	INSERT INTO requests (description, requester_id, created_date)
	VALUES (?, ?, ?)`
	res, err := s.db.ExecContext(ctx, q, r.Description, r.RequesterID, r.Created)
	if err != nil {
		return err
	}
	r.ID, err = res.LastInsertId()
	return err
}

func (s *SQLStore) GetByID(ctx context.Context, id int64) (*Request, error) {
	r, err := getByID(ctx, s.db, id)
	if err != nil {
		return nil, err
	}
	return r, nil
}

// ListByRequester returns the user's own requests with answering items, all
// read from one consistent snapshot.
func (s *SQLStore) ListByRequester(ctx context.Context, requesterID int64) ([]WithAnswersResponse, error) {
	var out []WithAnswersResponse
	err := db.ReadOnly(ctx, s.db, func(ctx context.Context, tx db.DBTX) error {
		const q = `
		SELECT request_id, description, requester_id, created_date
		FROM requests
		WHERE requester_id = ?
		ORDER BY created_date DESC`
		requests, err := queryRequests(ctx, tx, q, requesterID)
		if err != nil {
			return err
		}

		for i := range requests {
			answers, err := answersFor(ctx, tx, requests[i].ID)
			if err != nil {
				return err
			}
			out = append(out, WithAnswersResponse{
				ID:          requests[i].ID,
				Description: requests[i].Description,
				Created:     requests[i].Created,
				Items:       answers,
			})
		}
		return nil
	})
	return out, err
}

func (s *SQLStore) ListByOthers(ctx context.Context, requesterID int64) ([]Request, error) {
	const q = `
	SELECT request_id, description, requester_id, created_date
	FROM requests
	WHERE requester_id <> ?
	ORDER BY created_date DESC`
	return queryRequests(ctx, s.db, q, requesterID)
}

func (s *SQLStore) GetWithAnswers(ctx context.Context, id int64) (*WithAnswersResponse, error) {
	var out *WithAnswersResponse
	err := db.ReadOnly(ctx, s.db, func(ctx context.Context, tx db.DBTX) error {
		r, err := getByID(ctx, tx, id)
		if err != nil {
			return err
		}
		answers, err := answersFor(ctx, tx, id)
		if err != nil {
			return err
		}
		out = &WithAnswersResponse{
			ID:          r.ID,
			Description: r.Description,
			Created:     r.Created,
			Items:       answers,
		}
		return nil
	})
	return out, err
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

func getByID(ctx context.Context, q db.DBTX, id int64) (*Request, error) {
	const query = `
	SELECT request_id, description, requester_id, created_date
	FROM requests WHERE request_id = ?`
	var r Request
	err := q.QueryRowContext(ctx, query, id).Scan(&r.ID, &r.Description, &r.RequesterID, &r.Created)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, apperr.NotFoundf("request with id %d not found", id)
		}
		return nil, err
	}
	return &r, nil
}

func queryRequests(ctx context.Context, q db.DBTX, query string, args ...any) ([]Request, error) {
	rows, err := q.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []Request
	for rows.Next() {
		var r Request
		if err := rows.Scan(&r.ID, &r.Description, &r.RequesterID, &r.Created); err != nil {
			return nil, err
		}
		out = append(out, r)
	}
	return out, rows.Err()
}

func answersFor(ctx context.Context, q db.DBTX, requestID int64) ([]Answer, error) {
	const query = `
	SELECT item_id, name, owner_id
	FROM items WHERE request_id = ?
	ORDER BY item_id`
	rows, err := q.QueryContext(ctx, query, requestID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	answers := []Answer{}
	for rows.Next() {
		var a Answer
		if err := rows.Scan(&a.ID, &a.Name, &a.UserID); err != nil {
			return nil, err
		}
		answers = append(answers, a)
	}
	return answers, rows.Err()
}
