package booking

import (
	"context"
	"database/sql"
	"time"

	"shareit/internal/platform/apperr"
)

type Clock interface {
	Now() time.Time
}

type realClock struct{}

func (realClock) Now() time.Time { return time.Now().UTC() }

type Store interface {
	GetUser(ctx context.Context, id int64) (*BookerInfo, error)
	GetItem(ctx context.Context, id int64) (*ItemInfo, error)
	Insert(ctx context.Context, b *Booking) error
	GetByID(ctx context.Context, id int64) (*Record, error)
	SetStatusIfNotApproved(ctx context.Context, id int64, status Status) (bool, error)
	ListForBooker(ctx context.Context, userID int64, state State, now time.Time) ([]Record, error)
	ListForOwner(ctx context.Context, userID int64, state State, now time.Time) ([]Record, error)
	LastForItem(ctx context.Context, itemID int64, now time.Time) (*Record, error)
	NextForItem(ctx context.Context, itemID int64, now time.Time) (*Record, error)
	HasCompletedRental(ctx context.Context, userID, itemID int64, now time.Time) (bool, error)
}

// Service is the booking/availability engine: reservation lifecycle plus the
// temporal queries feeding the item detail view and the comment gate.
type Service struct {
	store Store
	clock Clock
}

func NewService(conn *sql.DB) *Service {
	return &Service{store: NewStore(conn), clock: realClock{}}
}

// Create persists a new WAITING booking. The booker and the item must exist,
// the booker must not own the item, the window must be ordered, and the item
// must currently be available. Overlapping bookings on the same item are not
// rejected; competing requests are resolved later by the owner.
func (s *Service) Create(ctx context.Context, bookerID int64, req CreateRequest) (*Response, error) {
	booker, err := s.store.GetUser(ctx, bookerID)
	if err != nil {
		return nil, err
	}
	item, err := s.store.GetItem(ctx, req.ItemID)
	if err != nil {
		return nil, err
	}

	if item.OwnerID == bookerID {
		return nil, apperr.Invalid("cannot book own item")
	}
	if !req.Start.Before(req.End) {
		return nil, apperr.Invalid("start must be before end")
	}
	if !item.Available {
		return nil, apperr.Invalid("item is not available for booking")
	}

	b := &Booking{
		ItemID:   req.ItemID,
		BookerID: bookerID,
		Start:    req.Start,
		End:      req.End,
		Status:   StatusWaiting,
	}
	if err := s.store.Insert(ctx, b); err != nil {
		return nil, err
	}

	return toResponse(&Record{Booking: *b, Item: *item, Booker: *booker}), nil
}

// Approve decides a WAITING (or previously REJECTED) booking. Only the item
// owner may decide, and APPROVED is terminal. The transition itself is a
// conditional write, so two concurrent approvals cannot both succeed.
func (s *Service) Approve(ctx context.Context, bookingID, userID int64, approved bool) (*Response, error) {
	r, err := s.store.GetByID(ctx, bookingID)
	if err != nil {
		return nil, err
	}

	if r.Item.OwnerID != userID {
		return nil, apperr.Invalid("only the item owner may approve or reject a booking")
	}
	if r.Status == StatusApproved {
		return nil, apperr.Invalid("booking is already approved")
	}

	status := StatusRejected
	if approved {
		status = StatusApproved
	}
	ok, err := s.store.SetStatusIfNotApproved(ctx, bookingID, status)
	if err != nil {
		return nil, err
	}
	if !ok {
		// Lost a concurrent decision between the read above and the write.
		return nil, apperr.Invalid("booking is already approved")
	}

	r.Status = status
	return toResponse(r), nil
}

// GetByID is visible only to the booking's booker and the item's owner.
func (s *Service) GetByID(ctx context.Context, bookingID, userID int64) (*Response, error) {
	if _, err := s.store.GetUser(ctx, userID); err != nil {
		return nil, err
	}
	r, err := s.store.GetByID(ctx, bookingID)
	if err != nil {
		return nil, err
	}

	if r.BookerID != userID && r.Item.OwnerID != userID {
		return nil, apperr.Invalidf("user with id %d is neither the booker nor the item owner", userID)
	}
	return toResponse(r), nil
}

func (s *Service) ListForBooker(ctx context.Context, userID int64, stateParam string) ([]Response, error) {
	if _, err := s.store.GetUser(ctx, userID); err != nil {
		return nil, err
	}
	state, err := ParseState(stateParam)
	if err != nil {
		return nil, err
	}

	records, err := s.store.ListForBooker(ctx, userID, state, s.clock.Now())
	if err != nil {
		return nil, err
	}
	return toResponses(records), nil
}

func (s *Service) ListForOwner(ctx context.Context, userID int64, stateParam string) ([]Response, error) {
	if _, err := s.store.GetUser(ctx, userID); err != nil {
		return nil, err
	}
	state, err := ParseState(stateParam)
	if err != nil {
		return nil, err
	}

	records, err := s.store.ListForOwner(ctx, userID, state, s.clock.Now())
	if err != nil {
		return nil, err
	}
	return toResponses(records), nil
}

// LastForItem returns the most recently completed APPROVED booking of the
// item, or nil when there is none.
func (s *Service) LastForItem(ctx context.Context, itemID int64) (*Response, error) {
	r, err := s.store.LastForItem(ctx, itemID, s.clock.Now())
	if err != nil || r == nil {
		return nil, err
	}
	return toResponse(r), nil
}

// NextForItem returns the next upcoming APPROVED booking of the item, or nil.
func (s *Service) NextForItem(ctx context.Context, itemID int64) (*Response, error) {
	r, err := s.store.NextForItem(ctx, itemID, s.clock.Now())
	if err != nil || r == nil {
		return nil, err
	}
	return toResponse(r), nil
}

// HasCompletedRental reports whether the user has an APPROVED booking of the
// item whose end has passed. Gates comment creation.
func (s *Service) HasCompletedRental(ctx context.Context, userID, itemID int64) (bool, error) {
	return s.store.HasCompletedRental(ctx, userID, itemID, s.clock.Now())
}
