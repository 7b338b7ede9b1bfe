package domain

import "time"

// MinYear is the earliest release year a song may carry. The upper bound
// is the current calendar year at write time.
const MinYear = 1900

// Song is a single record in an account's collection. OwnerID, ID and
// CreatedAt are fixed at creation; Update refreshes only the remaining
// fields plus UpdatedAt.
type Song struct {
	ID        string
	Title     string
	Singer    string
	Year      int
	OwnerID   string
	CreatedAt time.Time
	UpdatedAt time.Time
}
