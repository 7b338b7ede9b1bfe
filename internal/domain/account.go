package domain

import "time"

// Account represents a registered owner of a song collection.
type Account struct {
	ID           string
	Name         string
	Email        string
	PasswordHash string
	CreatedAt    time.Time
}
