package request

import "time"

type CreateRequest struct {
	Description string `json:"description"`
}

type Response struct {
	ID          int64     `json:"id"`
	Description string    `json:"description"`
	Created     time.Time `json:"created"`
}

// Answer is an item listed in response to a request; UserID is the item's
// owner.
type Answer struct {
	ID     int64  `json:"id"`
	Name   string `json:"name"`
	UserID int64  `json:"userId"`
}

type WithAnswersResponse struct {
	ID          int64     `json:"id"`
	Description string    `json:"description"`
	Created     time.Time `json:"created"`
	Items       []Answer  `json:"items"`
}

func toResponse(r *Request) *Response {
	return &Response{ID: r.ID, Description: r.Description, Created: r.Created}
}
