package item

import "database/sql"

// Item は items テーブルの1行を表す
type Item struct {
	ID          int64
	Name        string
	Description string
	Available   bool
	OwnerID     int64
	// RequestID links an item created in answer to an item-request. Set at
	// creation, never changed afterwards.
	RequestID sql.NullInt64
}
