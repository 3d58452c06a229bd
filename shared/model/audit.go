package model

// Audit timestamps are epoch milliseconds; UpdatedAt never precedes CreatedAt.
type Audit struct {
	CreatedAt int64 `json:"createdAt"`
	UpdatedAt int64 `json:"updatedAt"`
}
