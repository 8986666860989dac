package domain

import "time"

// User è un account operatore del gestionale (non una persona del roster).
type User struct {
	ID           string    `json:"id"`
	Email        string    `json:"email"`
	PasswordHash string    `json:"-"`
	CreatedAt    time.Time `json:"created_at"`
	Version      int32     `json:"-"`
}
