package booking

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"shareit/internal/platform/apperr"
)

type mockStore struct {
	getUser                func(ctx context.Context, id int64) (*BookerInfo, error)
	getItem                func(ctx context.Context, id int64) (*ItemInfo, error)
	insert                 func(ctx context.Context, b *Booking) error
	getByID                func(ctx context.Context, id int64) (*Record, error)
	setStatusIfNotApproved func(ctx context.Context, id int64, status Status) (bool, error)
	listForBooker          func(ctx context.Context, userID int64, state State, now time.Time) ([]Record, error)
	listForOwner           func(ctx context.Context, userID int64, state State, now time.Time) ([]Record, error)
	lastForItem            func(ctx context.Context, itemID int64, now time.Time) (*Record, error)
	nextForItem            func(ctx context.Context, itemID int64, now time.Time) (*Record, error)
	hasCompletedRental     func(ctx context.Context, userID, itemID int64, now time.Time) (bool, error)
}

func (m *mockStore) GetUser(ctx context.Context, id int64) (*BookerInfo, error) {
	return m.getUser(ctx, id)
}
func (m *mockStore) GetItem(ctx context.Context, id int64) (*ItemInfo, error) {
	return m.getItem(ctx, id)
}
func (m *mockStore) Insert(ctx context.Context, b *Booking) error { return m.insert(ctx, b) }
func (m *mockStore) GetByID(ctx context.Context, id int64) (*Record, error) {
	return m.getByID(ctx, id)
}
func (m *mockStore) SetStatusIfNotApproved(ctx context.Context, id int64, status Status) (bool, error) {
	return m.setStatusIfNotApproved(ctx, id, status)
}
func (m *mockStore) ListForBooker(ctx context.Context, userID int64, state State, now time.Time) ([]Record, error) {
	return m.listForBooker(ctx, userID, state, now)
}
func (m *mockStore) ListForOwner(ctx context.Context, userID int64, state State, now time.Time) ([]Record, error) {
	return m.listForOwner(ctx, userID, state, now)
}
func (m *mockStore) LastForItem(ctx context.Context, itemID int64, now time.Time) (*Record, error) {
	return m.lastForItem(ctx, itemID, now)
}
func (m *mockStore) NextForItem(ctx context.Context, itemID int64, now time.Time) (*Record, error) {
	return m.nextForItem(ctx, itemID, now)
}
func (m *mockStore) HasCompletedRental(ctx context.Context, userID, itemID int64, now time.Time) (bool, error) {
	return m.hasCompletedRental(ctx, userID, itemID, now)
}

type fixedClock struct{ t time.Time }

func (c fixedClock) Now() time.Time { return c.t }

var testNow = time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)

func newTestService(store *mockStore) *Service {
	return &Service{store: store, clock: fixedClock{t: testNow}}
}

func requireCode(t *testing.T, err error, code apperr.Code) {
	t.Helper()
	require.Error(t, err)
	apiErr, ok := err.(*apperr.APIError)
	require.True(t, ok, "expected *apperr.APIError, got %T", err)
	require.Equal(t, code, apiErr.Code)
}

func testBooker() *BookerInfo { return &BookerInfo{ID: 2, Name: "booker", Email: "b@example.com"} }

func testItem() *ItemInfo {
	return &ItemInfo{ID: 10, Name: "drill", Description: "cordless", Available: true, OwnerID: 1}
}

func TestCreate(t *testing.T) {
	ctx := context.Background()
	req := CreateRequest{
		ItemID: 10,
		Start:  testNow.Add(24 * time.Hour),
		End:    testNow.Add(48 * time.Hour),
	}

	t.Run("creates a waiting booking", func(t *testing.T) {
		store := &mockStore{
			getUser: func(_ context.Context, id int64) (*BookerInfo, error) {
				require.Equal(t, int64(2), id)
				return testBooker(), nil
			},
			getItem: func(_ context.Context, id int64) (*ItemInfo, error) {
				require.Equal(t, int64(10), id)
				return testItem(), nil
			},
			insert: func(_ context.Context, b *Booking) error {
				require.Equal(t, StatusWaiting, b.Status)
				b.ID = 100
				return nil
			},
		}

		resp, err := newTestService(store).Create(ctx, 2, req)
		require.NoError(t, err)
		require.Equal(t, int64(100), resp.ID)
		require.Equal(t, StatusWaiting, resp.Status)
		require.Equal(t, int64(10), resp.Item.ID)
		require.Equal(t, int64(2), resp.Booker.ID)
	})

	t.Run("rejects booking own item", func(t *testing.T) {
		store := &mockStore{
			getUser: func(_ context.Context, _ int64) (*BookerInfo, error) {
				return &BookerInfo{ID: 1, Name: "owner", Email: "o@example.com"}, nil
			},
			getItem: func(_ context.Context, _ int64) (*ItemInfo, error) { return testItem(), nil },
		}

		_, err := newTestService(store).Create(ctx, 1, req)
		requireCode(t, err, apperr.CodeInvalidArgument)
		require.Contains(t, err.Error(), "cannot book own item")
	})

	t.Run("rejects unordered window", func(t *testing.T) {
		store := &mockStore{
			getUser: func(_ context.Context, _ int64) (*BookerInfo, error) { return testBooker(), nil },
			getItem: func(_ context.Context, _ int64) (*ItemInfo, error) { return testItem(), nil },
		}
		bad := req
		bad.End = bad.Start

		_, err := newTestService(store).Create(ctx, 2, bad)
		requireCode(t, err, apperr.CodeInvalidArgument)
		require.Contains(t, err.Error(), "start must be before end")
	})

	t.Run("rejects unavailable item", func(t *testing.T) {
		store := &mockStore{
			getUser: func(_ context.Context, _ int64) (*BookerInfo, error) { return testBooker(), nil },
			getItem: func(_ context.Context, _ int64) (*ItemInfo, error) {
				item := testItem()
				item.Available = false
				return item, nil
			},
		}

		_, err := newTestService(store).Create(ctx, 2, req)
		requireCode(t, err, apperr.CodeInvalidArgument)
		require.Contains(t, err.Error(), "not available")
	})

	t.Run("unknown booker", func(t *testing.T) {
		store := &mockStore{
			getUser: func(_ context.Context, id int64) (*BookerInfo, error) {
				return nil, apperr.NotFoundf("user with id %d not found", id)
			},
		}

		_, err := newTestService(store).Create(ctx, 99, req)
		requireCode(t, err, apperr.CodeNotFound)
	})

	t.Run("unknown item", func(t *testing.T) {
		store := &mockStore{
			getUser: func(_ context.Context, _ int64) (*BookerInfo, error) { return testBooker(), nil },
			getItem: func(_ context.Context, id int64) (*ItemInfo, error) {
				return nil, apperr.NotFoundf("item with id %d not found", id)
			},
		}

		_, err := newTestService(store).Create(ctx, 2, req)
		requireCode(t, err, apperr.CodeNotFound)
	})
}

func waitingRecord() *Record {
	return &Record{
		Booking: Booking{ID: 100, ItemID: 10, BookerID: 2, Status: StatusWaiting},
		Item:    *testItem(),
		Booker:  *testBooker(),
	}
}

func TestApprove(t *testing.T) {
	ctx := context.Background()

	t.Run("owner approves", func(t *testing.T) {
		store := &mockStore{
			getByID: func(_ context.Context, id int64) (*Record, error) {
				require.Equal(t, int64(100), id)
				return waitingRecord(), nil
			},
			setStatusIfNotApproved: func(_ context.Context, id int64, status Status) (bool, error) {
				require.Equal(t, StatusApproved, status)
				return true, nil
			},
		}

		resp, err := newTestService(store).Approve(ctx, 100, 1, true)
		require.NoError(t, err)
		require.Equal(t, StatusApproved, resp.Status)
	})

	t.Run("owner rejects", func(t *testing.T) {
		store := &mockStore{
			getByID: func(_ context.Context, _ int64) (*Record, error) { return waitingRecord(), nil },
			setStatusIfNotApproved: func(_ context.Context, _ int64, status Status) (bool, error) {
				require.Equal(t, StatusRejected, status)
				return true, nil
			},
		}

		resp, err := newTestService(store).Approve(ctx, 100, 1, false)
		require.NoError(t, err)
		require.Equal(t, StatusRejected, resp.Status)
	})

	t.Run("non-owner may not decide", func(t *testing.T) {
		store := &mockStore{
			getByID: func(_ context.Context, _ int64) (*Record, error) { return waitingRecord(), nil },
		}

		_, err := newTestService(store).Approve(ctx, 100, 2, true)
		requireCode(t, err, apperr.CodeInvalidArgument)
		require.Contains(t, err.Error(), "only the item owner")
	})

	t.Run("approved is terminal", func(t *testing.T) {
		store := &mockStore{
			getByID: func(_ context.Context, _ int64) (*Record, error) {
				r := waitingRecord()
				r.Status = StatusApproved
				return r, nil
			},
		}

		_, err := newTestService(store).Approve(ctx, 100, 1, false)
		requireCode(t, err, apperr.CodeInvalidArgument)
		require.Contains(t, err.Error(), "already approved")
	})

	t.Run("rejected booking can be re-decided", func(t *testing.T) {
		store := &mockStore{
			getByID: func(_ context.Context, _ int64) (*Record, error) {
				r := waitingRecord()
				r.Status = StatusRejected
				return r, nil
			},
			setStatusIfNotApproved: func(_ context.Context, _ int64, status Status) (bool, error) {
				require.Equal(t, StatusApproved, status)
				return true, nil
			},
		}

		resp, err := newTestService(store).Approve(ctx, 100, 1, true)
		require.NoError(t, err)
		require.Equal(t, StatusApproved, resp.Status)
	})

	t.Run("lost race surfaces as already approved", func(t *testing.T) {
		store := &mockStore{
			getByID: func(_ context.Context, _ int64) (*Record, error) { return waitingRecord(), nil },
			setStatusIfNotApproved: func(_ context.Context, _ int64, _ Status) (bool, error) {
				return false, nil
			},
		}

		_, err := newTestService(store).Approve(ctx, 100, 1, true)
		requireCode(t, err, apperr.CodeInvalidArgument)
		require.Contains(t, err.Error(), "already approved")
	})
}

func TestGetByID(t *testing.T) {
	ctx := context.Background()
	store := &mockStore{
		getUser: func(_ context.Context, id int64) (*BookerInfo, error) {
			if id > 50 {
				return nil, apperr.NotFoundf("user with id %d not found", id)
			}
			return &BookerInfo{ID: id}, nil
		},
		getByID: func(_ context.Context, _ int64) (*Record, error) { return waitingRecord(), nil },
	}
	svc := newTestService(store)

	t.Run("visible to booker", func(t *testing.T) {
		resp, err := svc.GetByID(ctx, 100, 2)
		require.NoError(t, err)
		require.Equal(t, int64(100), resp.ID)
	})

	t.Run("visible to owner", func(t *testing.T) {
		resp, err := svc.GetByID(ctx, 100, 1)
		require.NoError(t, err)
		require.Equal(t, int64(100), resp.ID)
	})

	t.Run("hidden from third parties", func(t *testing.T) {
		_, err := svc.GetByID(ctx, 100, 3)
		requireCode(t, err, apperr.CodeInvalidArgument)
	})

	t.Run("unknown caller", func(t *testing.T) {
		_, err := svc.GetByID(ctx, 100, 99)
		requireCode(t, err, apperr.CodeNotFound)
	})
}

func TestListForBooker(t *testing.T) {
	ctx := context.Background()

	t.Run("passes parsed state and clock time to the store", func(t *testing.T) {
		store := &mockStore{
			getUser: func(_ context.Context, _ int64) (*BookerInfo, error) { return testBooker(), nil },
			listForBooker: func(_ context.Context, userID int64, state State, now time.Time) ([]Record, error) {
				require.Equal(t, int64(2), userID)
				require.Equal(t, StateCurrent, state)
				require.Equal(t, testNow, now)
				return []Record{*waitingRecord()}, nil
			},
		}

		out, err := newTestService(store).ListForBooker(ctx, 2, "current")
		require.NoError(t, err)
		require.Len(t, out, 1)
	})

	t.Run("unknown state", func(t *testing.T) {
		store := &mockStore{
			getUser: func(_ context.Context, _ int64) (*BookerInfo, error) { return testBooker(), nil },
		}

		_, err := newTestService(store).ListForBooker(ctx, 2, "SOMETIMES")
		requireCode(t, err, apperr.CodeInvalidArgument)
		require.Contains(t, err.Error(), "unknown state: SOMETIMES")
	})

	t.Run("unknown user", func(t *testing.T) {
		store := &mockStore{
			getUser: func(_ context.Context, id int64) (*BookerInfo, error) {
				return nil, apperr.NotFoundf("user with id %d not found", id)
			},
		}

		_, err := newTestService(store).ListForBooker(ctx, 99, "ALL")
		requireCode(t, err, apperr.CodeNotFound)
	})
}

func TestListForOwner(t *testing.T) {
	store := &mockStore{
		getUser: func(_ context.Context, _ int64) (*BookerInfo, error) { return testBooker(), nil },
		listForOwner: func(_ context.Context, userID int64, state State, now time.Time) ([]Record, error) {
			require.Equal(t, StateAll, state)
			return nil, nil
		},
	}

	out, err := newTestService(store).ListForOwner(context.Background(), 1, "ALL")
	require.NoError(t, err)
	require.Empty(t, out)
}

func TestParseState(t *testing.T) {
	for _, in := range []string{"ALL", "all", "Current", "past", "FUTURE", "waiting", "rejected"} {
		st, err := ParseState(in)
		require.NoError(t, err, in)
		require.NotEmpty(t, st)
	}

	_, err := ParseState("APPROVED_MAYBE")
	requireCode(t, err, apperr.CodeInvalidArgument)
}

func TestTemporalQueries(t *testing.T) {
	ctx := context.Background()

	t.Run("last and next pass through nil", func(t *testing.T) {
		store := &mockStore{
			lastForItem: func(_ context.Context, _ int64, now time.Time) (*Record, error) {
				require.Equal(t, testNow, now)
				return nil, nil
			},
			nextForItem: func(_ context.Context, _ int64, _ time.Time) (*Record, error) {
				return waitingRecord(), nil
			},
		}
		svc := newTestService(store)

		last, err := svc.LastForItem(ctx, 10)
		require.NoError(t, err)
		require.Nil(t, last)

		next, err := svc.NextForItem(ctx, 10)
		require.NoError(t, err)
		require.NotNil(t, next)
		require.Equal(t, int64(100), next.ID)
	})

	t.Run("completed rental gate", func(t *testing.T) {
		store := &mockStore{
			hasCompletedRental: func(_ context.Context, userID, itemID int64, now time.Time) (bool, error) {
				require.Equal(t, int64(2), userID)
				require.Equal(t, int64(10), itemID)
				require.Equal(t, testNow, now)
				return true, nil
			},
		}

		ok, err := newTestService(store).HasCompletedRental(ctx, 2, 10)
		require.NoError(t, err)
		require.True(t, ok)
	})
}
