package model

// CategorySuggestion is the engine's output value. It is never
// persisted; a nil *CategorySuggestion means "no suggestion", which is
// distinct from an error.
type CategorySuggestion struct {
	Reason     string `json:"reason"`
	CategoryID int64  `json:"category_id"`
	Confidence int    `json:"confidence"`
}
