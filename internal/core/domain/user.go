package domain

import "time"

// User models a registered account. The identifier is chosen at signup
// and never changes. PasswordHash holds the bcrypt verifier and must
// never reach a client.
type User struct {
	ID           string    `json:"user_id"`
	Name         string    `json:"name"`
	PasswordHash string    `json:"-"`
	CreatedAt    time.Time `json:"created_at"`
}
