package model

import "time"

// Feedback is a supervisor review recorded against an attachee.
// Entries are append-only: no edit, no delete.
type Feedback struct {
	ID      string `json:"id"`
	Comment string `json:"comment"`
	// Score is expected to be in [0,100]; not enforced at this layer.
	Score    int    `json:"score"`
	Reviewer string `json:"reviewer"`
	// CreatedAt is assigned at insertion from the roster's clock and is
	// immutable afterwards.
	CreatedAt time.Time `json:"created_at"`
}
