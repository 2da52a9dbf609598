package output

import (
	"context"

	"eventbot/internal/domain/entities"
)

type InterestRepository interface {
	// Add inserts the registration. It reports false without error when the
	// (event, user) pair is already registered, and domain.ErrEventNotFound
	// when the event no longer exists.
	Add(ctx context.Context, reg *entities.InterestRegistration) (bool, error)
	// Remove deletes the registration and reports whether a row existed.
	Remove(ctx context.Context, eventID int64, userID string) (bool, error)
	UserIDs(ctx context.Context, eventID int64) ([]string, error)
	Count(ctx context.Context, eventID int64) (int64, error)
	DeleteByEventID(ctx context.Context, eventID int64) error
}
