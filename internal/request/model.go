package request

import "time"

// Request は requests テーブルの1行を表す。説明と作成時刻は不変。
type Request struct {
	ID          int64
	Description string
	RequesterID int64
	Created     time.Time
}
