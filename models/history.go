package models

import "time"

type InteractionKind string

const (
	InteractionKindSummary InteractionKind = "summary"
	InteractionKindQA      InteractionKind = "qa"
)

type HistoryGetResponse struct {
	Interactions []Interaction `json:"interactions"`
}

type Interaction struct {
	ID        int64           `json:"id"`
	Kind      InteractionKind `json:"kind"`
	URL       string          `json:"url"`
	Question  string          `json:"question,omitempty"`
	Response  string          `json:"response"`
	CreatedAt time.Time       `json:"createdAt"`
}
