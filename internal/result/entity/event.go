package entity

type ResultCreatedEvent struct {
	EventID string
	Result  Result
}
