package booking

import "time"

type CreateRequest struct {
	ItemID int64     `json:"itemId"`
	Start  time.Time `json:"start"`
	End    time.Time `json:"end"`
}

type ItemRef struct {
	ID          int64  `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description"`
	Available   bool   `json:"available"`
}

type BookerRef struct {
	ID    int64  `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
}

type Response struct {
	ID     int64     `json:"id"`
	Item   ItemRef   `json:"item"`
	Start  time.Time `json:"start"`
	End    time.Time `json:"end"`
	Booker BookerRef `json:"booker"`
	Status Status    `json:"status"`
}

func toResponse(r *Record) *Response {
	return &Response{
		ID: r.ID,
		Item: ItemRef{
			ID:          r.Item.ID,
			Name:        r.Item.Name,
			Description: r.Item.Description,
			Available:   r.Item.Available,
		},
		Start: r.Start,
		End:   r.End,
		Booker: BookerRef{
			ID:    r.Booker.ID,
			Name:  r.Booker.Name,
			Email: r.Booker.Email,
		},
		Status: r.Status,
	}
}

func toResponses(records []Record) []Response {
	out := make([]Response, 0, len(records))
	for i := range records {
		out = append(out, *toResponse(&records[i]))
	}
	return out
}
