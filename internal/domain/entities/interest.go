package entities

import "time"

// InterestRegistration is a user's standing declaration of interest in an
// event. Identity is the (EventID, UserID) pair; at most one row exists per pair.
type InterestRegistration struct {
	EventID   int64
	UserID    string
	GuildID   string
	CreatedAt time.Time
}
