package item

import (
	"database/sql"

	"shareit/internal/booking"
	"shareit/internal/comment"
)

type CreateRequest struct {
	Name        string `json:"name"`
	Description string `json:"description"`
	Available   *bool  `json:"available"`
	RequestID   *int64 `json:"requestId"`
}

// Partial update: nil fields are left untouched.
type UpdateRequest struct {
	Name        *string `json:"name"`
	Description *string `json:"description"`
	Available   *bool   `json:"available"`
}

type Response struct {
	ID          int64  `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description"`
	Available   bool   `json:"available"`
	RequestID   *int64 `json:"requestId,omitempty"`
}

// DetailResponse is the single-item view. lastBooking/nextBooking are only
// populated for the item's owner.
type DetailResponse struct {
	ID          int64              `json:"id"`
	Name        string             `json:"name"`
	Description string             `json:"description"`
	Available   bool               `json:"available"`
	LastBooking *booking.Response  `json:"lastBooking"`
	NextBooking *booking.Response  `json:"nextBooking"`
	Comments    []comment.Response `json:"comments"`
}

// ConciseResponse is the list/search projection.
type ConciseResponse struct {
	Name        string `json:"name"`
	Description string `json:"description"`
}

func toResponse(i *Item) *Response {
	res := &Response{
		ID:          i.ID,
		Name:        i.Name,
		Description: i.Description,
		Available:   i.Available,
	}
	if i.RequestID.Valid {
		v := i.RequestID.Int64
		res.RequestID = &v
	}
	return res
}

func toConcise(items []Item) []ConciseResponse {
	out := make([]ConciseResponse, 0, len(items))
	for _, i := range items {
		out = append(out, ConciseResponse{Name: i.Name, Description: i.Description})
	}
	return out
}

func nullableRequestID(id *int64) sql.NullInt64 {
	if id == nil {
		return sql.NullInt64{}
	}
	return sql.NullInt64{Int64: *id, Valid: true}
}
