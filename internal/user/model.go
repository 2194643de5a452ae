package user

// User は users テーブルの1行を表す
type User struct {
	ID    int64
	Name  string
	Email string
}
