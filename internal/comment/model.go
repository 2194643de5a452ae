package comment

import "time"

// Comment は comments テーブルの1行を表す。作成後は不変。
type Comment struct {
	ID       int64
	Text     string
	ItemID   int64
	AuthorID int64
	Created  time.Time
}
