package item

import (
	"context"
	"database/sql"
	"strings"

	"shareit/internal/booking"
	"shareit/internal/comment"
	"shareit/internal/platform/apperr"
)

type Store interface {
	Insert(ctx context.Context, i *Item) error
	GetByID(ctx context.Context, id int64) (*Item, error)
	Update(ctx context.Context, i *Item) error
	ListByOwner(ctx context.Context, ownerID int64, limit, offset int) ([]Item, error)
	Search(ctx context.Context, text string) ([]Item, error)
	UserExists(ctx context.Context, userID int64) error
	RequestExists(ctx context.Context, requestID int64) error
}

// BookingReader is the slice of the booking engine the detail view needs.
type BookingReader interface {
	LastForItem(ctx context.Context, itemID int64) (*booking.Response, error)
	NextForItem(ctx context.Context, itemID int64) (*booking.Response, error)
}

type CommentReader interface {
	ListForItem(ctx context.Context, itemID int64) ([]comment.Response, error)
}

type Service struct {
	store    Store
	bookings BookingReader
	comments CommentReader
}

func NewService(conn *sql.DB, bookings BookingReader, comments CommentReader) *Service {
	return &Service{store: NewStore(conn), bookings: bookings, comments: comments}
}

func (s *Service) Create(ctx context.Context, ownerID int64, req CreateRequest) (*Response, error) {
	if err := s.store.UserExists(ctx, ownerID); err != nil {
		return nil, err
	}
	if strings.TrimSpace(req.Name) == "" {
		return nil, apperr.Invalid("name must not be blank")
	}
	if strings.TrimSpace(req.Description) == "" {
		return nil, apperr.Invalid("description must not be blank")
	}
	if req.Available == nil {
		return nil, apperr.Invalid("available must be set")
	}
	if req.RequestID != nil {
		if err := s.store.RequestExists(ctx, *req.RequestID); err != nil {
			return nil, err
		}
	}

	i := &Item{
		Name:        req.Name,
		Description: req.Description,
		Available:   *req.Available,
		OwnerID:     ownerID,
		RequestID:   nullableRequestID(req.RequestID),
	}
	if err := s.store.Insert(ctx, i); err != nil {
		return nil, err
	}
	return toResponse(i), nil
}

func (s *Service) Update(ctx context.Context, userID, itemID int64, req UpdateRequest) (*Response, error) {
	if err := s.store.UserExists(ctx, userID); err != nil {
		return nil, err
	}
	i, err := s.store.GetByID(ctx, itemID)
	if err != nil {
		return nil, err
	}
	if i.OwnerID != userID {
		return nil, apperr.Invalidf("item with id %d belongs to another user", itemID)
	}

	if req.Name != nil {
		if strings.TrimSpace(*req.Name) == "" {
			return nil, apperr.Invalid("name must not be blank")
		}
		i.Name = *req.Name
	}
	if req.Description != nil {
		if strings.TrimSpace(*req.Description) == "" {
			return nil, apperr.Invalid("description must not be blank")
		}
		i.Description = *req.Description
	}
	if req.Available != nil {
		i.Available = *req.Available
	}

	if err := s.store.Update(ctx, i); err != nil {
		return nil, err
	}
	return toResponse(i), nil
}

// GetByID returns the detail view. Last/next booking are derived from the
// booking engine and exposed only to the owner; comments are public.
func (s *Service) GetByID(ctx context.Context, userID, itemID int64) (*DetailResponse, error) {
	i, err := s.store.GetByID(ctx, itemID)
	if err != nil {
		return nil, err
	}

	res := &DetailResponse{
		ID:          i.ID,
		Name:        i.Name,
		Description: i.Description,
		Available:   i.Available,
	}

	if i.OwnerID == userID {
		if res.LastBooking, err = s.bookings.LastForItem(ctx, itemID); err != nil {
			return nil, err
		}
		if res.NextBooking, err = s.bookings.NextForItem(ctx, itemID); err != nil {
			return nil, err
		}
	}

	comments, err := s.comments.ListForItem(ctx, itemID)
	if err != nil {
		return nil, err
	}
	if comments == nil {
		comments = []comment.Response{}
	}
	res.Comments = comments

	return res, nil
}

func (s *Service) ListForOwner(ctx context.Context, userID int64, from, size int) ([]ConciseResponse, error) {
	if err := s.store.UserExists(ctx, userID); err != nil {
		return nil, err
	}
	if size <= 0 {
		return nil, apperr.Invalid("size must be positive")
	}
	if from < 0 {
		return nil, apperr.Invalid("from must not be negative")
	}

	items, err := s.store.ListByOwner(ctx, userID, size, from)
	if err != nil {
		return nil, err
	}
	return toConcise(items), nil
}

func (s *Service) Search(ctx context.Context, text string) ([]ConciseResponse, error) {
	if strings.TrimSpace(text) == "" {
		return []ConciseResponse{}, nil
	}
	items, err := s.store.Search(ctx, text)
	if err != nil {
		return nil, err
	}
	return toConcise(items), nil
}
