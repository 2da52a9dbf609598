package input

import (
	"context"

	"eventbot/internal/domain/entities"
)

// CreateEventParams carries a validated-later create request. DateTime is the
// raw user input; parsing is part of the use case.
type CreateEventParams struct {
	GuildID     string
	CreatorID   string
	Name        string
	Description string
	DateTime    string
	HostType    string
	HostID      string
	HostName    string
	// ImageURL/ImageContentType are both empty when no image was attached.
	ImageURL         string
	ImageContentType string
}

// EditEventParams carries a partial edit. Nil pointers mean "leave unchanged".
type EditEventParams struct {
	EventID            int64
	GuildID            string
	RequesterID        string
	RequesterIsManager bool

	Name             *string
	Description      *string
	DateTime         *string
	ImageURL         *string
	ImageContentType *string
	RemoveImage      bool
}

type EditResult struct {
	Event *entities.Event
	// Changes is the human-readable change list sent to registrants.
	Changes             []string
	NotifiedCount       int
	AnnouncementUpdated bool
}

type CancelResult struct {
	Event               *entities.Event
	NotifiedCount       int
	AnnouncementDeleted bool
}

type EventUseCase interface {
	Create(ctx context.Context, p CreateEventParams) (*entities.Event, error)
	Edit(ctx context.Context, p EditEventParams) (*EditResult, error)
	Cancel(ctx context.Context, eventID int64, guildID, requesterID string, requesterIsManager bool) (*CancelResult, error)
	List(ctx context.Context, guildID string, upcomingOnly bool) ([]entities.Event, error)
}
