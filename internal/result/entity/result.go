package entity

type Result struct {
	ID        int64
	Title     string
	Value     string
	CreatedAt int64
}
