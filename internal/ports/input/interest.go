package input

import "context"

// InterestState is the outcome of a toggle.
type InterestState string

const (
	InterestAdded   InterestState = "added"
	InterestRemoved InterestState = "removed"
)

type InterestUseCase interface {
	// Toggle flips the (event, user) registration and returns the new state
	// together with the event's total interested count.
	Toggle(ctx context.Context, eventID int64, userID, guildID string) (InterestState, int64, error)
}
