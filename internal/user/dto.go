package user

type CreateRequest struct {
	Name  string `json:"name"`
	Email string `json:"email"`
}

// Partial update: nil fields are left untouched.
type UpdateRequest struct {
	Name  *string `json:"name"`
	Email *string `json:"email"`
}

type Response struct {
	ID    int64  `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
}

func toResponse(u *User) *Response {
	return &Response{ID: u.ID, Name: u.Name, Email: u.Email}
}
