package booking

import "time"

// Status is the booking lifecycle state. A new booking starts WAITING and is
// decided by the item owner exactly once into APPROVED or REJECTED.
type Status string

const (
	StatusWaiting  Status = "WAITING"
	StatusApproved Status = "APPROVED"
	StatusRejected Status = "REJECTED"
	// StatusCancelled is modeled in the schema but never produced by any
	// operation.
	StatusCancelled Status = "CANCELLED"
)

// Booking は bookings テーブルの1行を表す
type Booking struct {
	ID       int64
	ItemID   int64
	BookerID int64
	Start    time.Time
	End      time.Time
	Status   Status
}

// ItemInfo is the item row as the engine sees it: a fully resolved value
// object, fetched explicitly, never a lazy proxy.
type ItemInfo struct {
	ID          int64
	Name        string
	Description string
	Available   bool
	OwnerID     int64
}

type BookerInfo struct {
	ID    int64
	Name  string
	Email string
}

// Record is a booking joined with its item and booker rows.
type Record struct {
	Booking
	Item   ItemInfo
	Booker BookerInfo
}
