package request

import (
	"context"
	"database/sql"
	"strings"
	"time"

	"shareit/internal/platform/apperr"
)

type Clock interface {
	Now() time.Time
}

type realClock struct{}

func (realClock) Now() time.Time { return time.Now().UTC() }

type Store interface {
	Insert(ctx context.Context, r *Request) error
	ListByRequester(ctx context.Context, requesterID int64) ([]WithAnswersResponse, error)
	ListByOthers(ctx context.Context, requesterID int64) ([]Request, error)
	GetWithAnswers(ctx context.Context, id int64) (*WithAnswersResponse, error)
	UserExists(ctx context.Context, userID int64) error
}

type Service struct {
	store Store
	clock Clock
}

func NewService(conn *sql.DB) *Service {
	return &Service{store: NewStore(conn), clock: realClock{}}
}

func (s *Service) Create(ctx context.Context, userID int64, req CreateRequest) (*Response, error) {
	if err := s.store.UserExists(ctx, userID); err != nil {
		return nil, err
	}
	if strings.TrimSpace(req.Description) == "" {
		return nil, apperr.Invalid("description must not be blank")
	}

	r := &Request{
		Description: req.Description,
		RequesterID: userID,
		Created:     s.clock.Now(),
	}
	if err := s.store.Insert(ctx, r); err != nil {
		return nil, err
	}
	return toResponse(r), nil
}

// ListOwn returns the caller's requests, newest first, with answering items.
func (s *Service) ListOwn(ctx context.Context, userID int64) ([]WithAnswersResponse, error) {
	if err := s.store.UserExists(ctx, userID); err != nil {
		return nil, err
	}
	return s.store.ListByRequester(ctx, userID)
}

// ListOthers returns everyone else's requests, newest first.
func (s *Service) ListOthers(ctx context.Context, userID int64) ([]Response, error) {
	if err := s.store.UserExists(ctx, userID); err != nil {
		return nil, err
	}
	requests, err := s.store.ListByOthers(ctx, userID)
	if err != nil {
		return nil, err
	}

	out := make([]Response, 0, len(requests))
	for i := range requests {
		out = append(out, *toResponse(&requests[i]))
	}
	return out, nil
}

func (s *Service) GetByID(ctx context.Context, requestID int64) (*WithAnswersResponse, error) {
	return s.store.GetWithAnswers(ctx, requestID)
}
