package comment

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
	Insert(ctx context.Context, cm *Comment) error
	ListForItem(ctx context.Context, itemID int64) ([]Response, error)
	GetAuthorName(ctx context.Context, userID int64) (string, error)
	ItemExists(ctx context.Context, itemID int64) error
}

// RentalHistory is the booking engine's completed-rental check.
type RentalHistory interface {
	HasCompletedRental(ctx context.Context, userID, itemID int64) (bool, error)
}

type Service struct {
	store   Store
	rentals RentalHistory
	clock   Clock
}

func NewService(conn *sql.DB, rentals RentalHistory) *Service {
	return &Service{store: NewStore(conn), rentals: rentals, clock: realClock{}}
}

// Create records a post-rental comment. Only a user who has actually
// completed an approved rental of the item may comment on it.
func (s *Service) Create(ctx context.Context, userID, itemID int64, req CreateRequest) (*Response, error) {
	if strings.TrimSpace(req.Text) == "" {
		return nil, apperr.Invalid("text must not be blank")
	}

	authorName, err := s.store.GetAuthorName(ctx, userID)
	if err != nil {
		return nil, err
	}
	if err := s.store.ItemExists(ctx, itemID); err != nil {
		return nil, err
	}

	ok, err := s.rentals.HasCompletedRental(ctx, userID, itemID)
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, apperr.Invalid("user has not completed a rental of this item")
	}

	cm := &Comment{
		Text:     req.Text,
		ItemID:   itemID,
		AuthorID: userID,
		Created:  s.clock.Now(),
	}
	if err := s.store.Insert(ctx, cm); err != nil {
		return nil, err
	}

	return &Response{
		ID:         cm.ID,
		Text:       cm.Text,
		ItemID:     cm.ItemID,
		AuthorName: authorName,
		Created:    cm.Created,
	}, nil
}

// ListForItem feeds the item detail view.
func (s *Service) ListForItem(ctx context.Context, itemID int64) ([]Response, error) {
	return s.store.ListForItem(ctx, itemID)
}
