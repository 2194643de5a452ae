package user

import (
	"context"
	"database/sql"
	"strings"

	"shareit/internal/platform/apperr"
)

type Store interface {
	Create(ctx context.Context, u *User) error
	GetByID(ctx context.Context, id int64) (*User, error)
	Update(ctx context.Context, u *User) error
	Delete(ctx context.Context, id int64) error
	EmailInUse(ctx context.Context, email string) (bool, error)
}

type Service struct {
	store Store
}

func NewService(conn *sql.DB) *Service {
	return &Service{store: NewStore(conn)}
}

func (s *Service) Create(ctx context.Context, req CreateRequest) (*Response, error) {
	if strings.TrimSpace(req.Name) == "" {
		return nil, apperr.Invalid("name must not be blank")
	}
	if strings.TrimSpace(req.Email) == "" {
		return nil, apperr.Invalid("email must not be blank")
	}

	u := &User{Name: req.Name, Email: req.Email}
	if err := s.store.Create(ctx, u); err != nil {
		return nil, err
	}
	return toResponse(u), nil
}

func (s *Service) Update(ctx context.Context, userID int64, req UpdateRequest) (*Response, error) {
	u, err := s.store.GetByID(ctx, userID)
	if err != nil {
		return nil, err
	}

	if req.Name != nil {
		if strings.TrimSpace(*req.Name) == "" {
			return nil, apperr.Invalid("name must not be blank")
		}
		u.Name = *req.Name
	}
	if req.Email != nil && *req.Email != u.Email {
		if strings.TrimSpace(*req.Email) == "" {
			return nil, apperr.Invalid("email must not be blank")
		}
		taken, err := s.store.EmailInUse(ctx, *req.Email)
		if err != nil {
			return nil, err
		}
		if taken {
			return nil, apperr.Conflict("email is already in use")
		}
		u.Email = *req.Email
	}

	if err := s.store.Update(ctx, u); err != nil {
		return nil, err
	}
	return toResponse(u), nil
}

func (s *Service) Get(ctx context.Context, userID int64) (*Response, error) {
	u, err := s.store.GetByID(ctx, userID)
	if err != nil {
		return nil, err
	}
	return toResponse(u), nil
}

func (s *Service) Delete(ctx context.Context, userID int64) error {
	return s.store.Delete(ctx, userID)
}
