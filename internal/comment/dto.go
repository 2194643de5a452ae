package comment

import "time"

type CreateRequest struct {
	Text string `json:"text"`
}

type Response struct {
	ID         int64     `json:"id"`
	Text       string    `json:"text"`
	ItemID     int64     `json:"itemId"`
	AuthorName string    `json:"authorName"`
	Created    time.Time `json:"created"`
}
