package user

import (
	"context"
	"database/sql"
	"errors"

	"github.com/go-sql-driver/mysql"

	"shareit/internal/platform/apperr"
	"shareit/internal/platform/db"
)

const mysqlDupEntry = 1062

type SQLStore struct {
	db *sql.DB
}

func NewStore(conn *sql.DB) *SQLStore { return &SQLStore{db: conn} }

// Create inserts the user and assigns the generated id. The uniqueness
// pre-check and the insert run in one transaction; the unique index on email
// is the final authority and also maps to CONFLICT.
func (s *SQLStore) Create(ctx context.Context, u *User) error {
	return db.RunInTx(ctx, s.db, nil, func(ctx context.Context, tx db.DBTX) error {
		taken, err := emailInUse(ctx, tx, u.Email)
		if err != nil {
			return err
		}
		if taken {
			return apperr.Conflict("email is already in use")
		}

		const q = `INSERT INTO users (name, email) VALUES (?, ?)`
		res, err := tx.ExecContext(ctx, q, u.Name, u.Email)
		if err != nil {
			return mapDupEntry(err)
		}
		u.ID, err = res.LastInsertId()
		return err
	})
}

func (s *SQLStore) GetByID(ctx context.Context, id int64) (*User, error) {
	const q = `SELECT user_id, name, email FROM users WHERE user_id = ?`
	var u User
	if err := s.db.QueryRowContext(ctx, q, id).Scan(&u.ID, &u.Name, &u.Email); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, apperr.NotFoundf("user with id %d not found", id)
		}
		return nil, err
	}
	return &u, nil
}

func (s *SQLStore) Update(ctx context.Context, u *User) error {
	const q = `UPDATE users SET name = ?, email = ? WHERE user_id = ?`
	if _, err := s.db.ExecContext(ctx, q, u.Name, u.Email, u.ID); err != nil {
		return mapDupEntry(err)
	}
	return nil
}

func (s *SQLStore) Delete(ctx context.Context, id int64) error {
	const q = `DELETE FROM users WHERE user_id = ?`
	res, err := s.db.ExecContext(ctx, q, id)
	if err != nil {
		return err
	}
	aff, _ := res.RowsAffected()
	if aff == 0 {
		return apperr.NotFoundf("user with id %d not found", id)
	}
	return nil
}

func (s *SQLStore) EmailInUse(ctx context.Context, email string) (bool, error) {
	return emailInUse(ctx, s.db, email)
}

func emailInUse(ctx context.Context, q db.DBTX, email string) (bool, error) {
	const query = `SELECT EXISTS(SELECT 1 FROM users WHERE email = ?)`
	var exists bool
	if err := q.QueryRowContext(ctx, query, email).Scan(&exists); err != nil {
		return false, err
	}
	return exists, nil
}

func mapDupEntry(err error) error {
	var me *mysql.MySQLError
	if errors.As(err, &me) && me.Number == mysqlDupEntry {
		return apperr.Conflict("email is already in use")
	}
	return err
}
