package output

import (
	"context"
	"time"

	"eventbot/internal/domain/entities"
)

type EventRepository interface {
	// Create persists the event and fills ID and CreatedAt.
	Create(ctx context.Context, event *entities.Event) error
	// FindByID returns domain.ErrEventNotFound when no event with that id
	// exists in the guild.
	FindByID(ctx context.Context, id int64, guildID string) (*entities.Event, error)
	// List returns at most limit events of the guild ordered by ascending
	// start time. With upcomingOnly, only events starting at or after now.
	List(ctx context.Context, guildID string, upcomingOnly bool, now time.Time, limit int) ([]entities.Event, error)
	// Update rewrites the mutable fields (name, description, start time, image).
	Update(ctx context.Context, event *entities.Event) error
	// SetAnnouncement records the posted announcement reference pair.
	SetAnnouncement(ctx context.Context, id int64, channelID, messageID string) error
	// FindDueUnnotified returns events with notified = false whose start time
	// is in (from, to].
	FindDueUnnotified(ctx context.Context, from, to time.Time) ([]entities.Event, error)
	MarkNotified(ctx context.Context, id int64) error
	Delete(ctx context.Context, id int64) error
}
