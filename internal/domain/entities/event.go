package entities

import "time"

// Host types.
const (
	HostTypeUser  = "user"
	HostTypeGroup = "group"
)

type Event struct {
	ID          int64
	Name        string
	Description string
	StartTime   time.Time // always UTC
	HostType    string    // HostTypeUser or HostTypeGroup
	HostID      string
	HostName    string
	ImageURL    string // empty = no image
	CreatedBy   string
	GuildID     string
	// Both are set together once an announcement has been posted, or both empty.
	AnnouncementChannelID string
	AnnouncementMessageID string
	Notified              bool
	CreatedAt             time.Time
}

// HasAnnouncement reports whether a public announcement message exists for the event.
func (e *Event) HasAnnouncement() bool {
	return e.AnnouncementChannelID != "" && e.AnnouncementMessageID != ""
}

func (e *Event) IsPast(now time.Time) bool {
	return e.StartTime.Before(now)
}
