package domain

import "time"

// Post is the core aggregate: a text entry owned by exactly one user.
// OwnerID and OwnerName are snapshotted from the creator's session at
// creation time and never change afterwards.
type Post struct {
	ID        string     `json:"id"`
	Title     string     `json:"title"`
	Body      string     `json:"body"`
	OwnerID   string     `json:"owner_id"`
	OwnerName string     `json:"owner_name"`
	CreatedAt time.Time  `json:"created_at"`
	UpdatedAt *time.Time `json:"updated_at,omitempty"`
}
