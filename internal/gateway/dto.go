package gateway

import "time"

// The gateway owns request-shape validation; the server re-checks only the
// business rules. Pointer fields distinguish "absent" from "zero".

type userCreateRequest struct {
	Name  string `json:"name" binding:"required,notblank"`
	Email string `json:"email" binding:"required,email"`
}

type userUpdateRequest struct {
	Name  *string `json:"name" binding:"omitempty,notblank"`
	Email *string `json:"email" binding:"omitempty,email"`
}

type itemCreateRequest struct {
	Name        string `json:"name" binding:"required,notblank"`
	Description string `json:"description" binding:"required,notblank"`
	Available   *bool  `json:"available" binding:"required"`
	RequestID   *int64 `json:"requestId" binding:"omitempty,gt=0"`
}

type itemUpdateRequest struct {
	Name        *string `json:"name" binding:"omitempty,notblank"`
	Description *string `json:"description" binding:"omitempty,notblank"`
	Available   *bool   `json:"available"`
}

type bookingCreateRequest struct {
	ItemID *int64     `json:"itemId" binding:"required,gt=0"`
	Start  *time.Time `json:"start" binding:"required,future"`
	End    *time.Time `json:"end" binding:"required,future"`
}

type commentCreateRequest struct {
	Text string `json:"text" binding:"required,notblank"`
}

type itemRequestCreateRequest struct {
	Description string `json:"description" binding:"required,notblank"`
}
