package output

import (
	"context"

	"eventbot/internal/domain/entities"
)

// Messenger delivers direct messages to individual users.
type Messenger interface {
	DMEventStarting(ctx context.Context, userID string, event *entities.Event, interestedCount int64) error
	DMEventEdited(ctx context.Context, userID string, event *entities.Event, changes []string, editorID string) error
	DMEventCancelled(ctx context.Context, userID string, event *entities.Event, cancellerID string) error
}

// Announcer keeps the public announcement message of an event in sync with
// the store. Implementations must tolerate a missing or misconfigured target:
// Publish reports ("", "", nil) when publishing is disabled.
type Announcer interface {
	Publish(ctx context.Context, event *entities.Event) (channelID, messageID string, err error)
	Resync(ctx context.Context, event *entities.Event, interestedCount int64) error
	Delete(ctx context.Context, event *entities.Event) error
	// AnnounceStarting posts a threaded "starting now" follow-up on the
	// announcement message.
	AnnounceStarting(ctx context.Context, event *entities.Event, interestedCount int64) error
}
