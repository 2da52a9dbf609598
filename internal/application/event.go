package application

import (
	"context"
	"fmt"
	"log"
	"strings"
	"time"

	"eventbot/internal/domain"
	"eventbot/internal/domain/entities"
	"eventbot/internal/ports/input"
	"eventbot/internal/ports/output"
	"eventbot/pkg/datetime"
)

const (
	maxNameLen        = 255
	maxDescriptionLen = 2000
	listLimit         = 10
)

// Content types accepted for event images.
var allowedImageTypes = map[string]bool{
	"image/png":  true,
	"image/jpeg": true,
	"image/jpg":  true,
	"image/gif":  true,
	"image/webp": true,
}

var _ input.EventUseCase = (*EventService)(nil)

// EventService implements the event lifecycle: create, edit, cancel, list.
type EventService struct {
	events    output.EventRepository
	interests output.InterestRepository
	messenger output.Messenger
	announcer output.Announcer
}

func NewEventService(
	events output.EventRepository,
	interests output.InterestRepository,
	messenger output.Messenger,
	announcer output.Announcer,
) *EventService {
	return &EventService{
		events:    events,
		interests: interests,
		messenger: messenger,
		announcer: announcer,
	}
}

func validateName(name string) (string, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return "", domain.ErrNameRequired
	}
	if len(name) > maxNameLen {
		return "", domain.ErrNameTooLong
	}
	return name, nil
}

func validateDescription(desc string) (string, error) {
	desc = strings.TrimSpace(desc)
	if desc == "" {
		return "", domain.ErrDescriptionRequired
	}
	if len(desc) > maxDescriptionLen {
		return "", domain.ErrDescriptionTooLong
	}
	return desc, nil
}

func validateImage(contentType string) error {
	if !allowedImageTypes[strings.ToLower(strings.TrimSpace(contentType))] {
		return domain.ErrInvalidImageType
	}
	return nil
}

// Create validates and persists a new event, then publishes the public
// announcement best-effort. A start time in the past is accepted; such events
// show up struck through in listings and are skipped by the notifier.
func (s *EventService) Create(ctx context.Context, p input.CreateEventParams) (*entities.Event, error) {
	name, err := validateName(p.Name)
	if err != nil {
		return nil, err
	}
	desc, err := validateDescription(p.Description)
	if err != nil {
		return nil, err
	}
	startTime, err := datetime.Parse(p.DateTime)
	if err != nil {
		return nil, err
	}
	if p.ImageURL != "" {
		if err := validateImage(p.ImageContentType); err != nil {
			return nil, err
		}
	}

	event := &entities.Event{
		Name:        name,
		Description: desc,
		StartTime:   startTime,
		HostType:    p.HostType,
		HostID:      p.HostID,
		HostName:    p.HostName,
		ImageURL:    p.ImageURL,
		CreatedBy:   p.CreatorID,
		GuildID:     p.GuildID,
	}
	if err := s.events.Create(ctx, event); err != nil {
		return nil, fmt.Errorf("create event: %w", err)
	}

	// A failed announcement never fails the create.
	channelID, messageID, err := s.announcer.Publish(ctx, event)
	if err != nil {
		log.Printf("⚠️ Failed to publish announcement for event %d: %v", event.ID, err)
		return event, nil
	}
	if channelID != "" && messageID != "" {
		if err := s.events.SetAnnouncement(ctx, event.ID, channelID, messageID); err != nil {
			log.Printf("⚠️ Failed to record announcement reference for event %d: %v", event.ID, err)
		} else {
			event.AnnouncementChannelID = channelID
			event.AnnouncementMessageID = messageID
		}
	}
	return event, nil
}

// Edit applies the supplied fields and notifies every registrant with the
// change list. Per-recipient DM failures are logged and skipped.
func (s *EventService) Edit(ctx context.Context, p input.EditEventParams) (*input.EditResult, error) {
	if p.Name == nil && p.Description == nil && p.DateTime == nil && p.ImageURL == nil && !p.RemoveImage {
		return nil, domain.ErrNothingToEdit
	}

	event, err := s.events.FindByID(ctx, p.EventID, p.GuildID)
	if err != nil {
		return nil, err
	}
	if event.CreatedBy != p.RequesterID && !p.RequesterIsManager {
		return nil, domain.ErrNotPermitted
	}

	var changes []string
	if p.Name != nil {
		name, err := validateName(*p.Name)
		if err != nil {
			return nil, err
		}
		changes = append(changes, fmt.Sprintf("**Name**: %s → %s", event.Name, name))
		event.Name = name
	}
	if p.Description != nil {
		desc, err := validateDescription(*p.Description)
		if err != nil {
			return nil, err
		}
		changes = append(changes, "**Description**: updated")
		event.Description = desc
	}
	if p.DateTime != nil {
		startTime, err := datetime.Parse(*p.DateTime)
		if err != nil {
			return nil, err
		}
		changes = append(changes, fmt.Sprintf("**Date & Time**: %s → %s",
			datetime.Mention(event.StartTime, "F"), datetime.Mention(startTime, "F")))
		event.StartTime = startTime
	}
	// A new image wins over remove_image when both are supplied.
	if p.ImageURL != nil {
		contentType := ""
		if p.ImageContentType != nil {
			contentType = *p.ImageContentType
		}
		if err := validateImage(contentType); err != nil {
			return nil, err
		}
		changes = append(changes, "**Image**: updated")
		event.ImageURL = *p.ImageURL
	} else if p.RemoveImage {
		changes = append(changes, "**Image**: removed")
		event.ImageURL = ""
	}

	if err := s.events.Update(ctx, event); err != nil {
		return nil, fmt.Errorf("update event: %w", err)
	}

	notified := s.notifyRegistrants(ctx, event, func(userID string) error {
		return s.messenger.DMEventEdited(ctx, userID, event, changes, p.RequesterID)
	})

	announcementUpdated := false
	if event.HasAnnouncement() {
		count, err := s.interests.Count(ctx, event.ID)
		if err != nil {
			log.Printf("⚠️ Failed to count registrants for event %d: %v", event.ID, err)
		} else if err := s.announcer.Resync(ctx, event, count); err != nil {
			log.Printf("⚠️ Failed to resync announcement for event %d: %v", event.ID, err)
		} else {
			announcementUpdated = true
		}
	}

	return &input.EditResult{
		Event:               event,
		Changes:             changes,
		NotifiedCount:       notified,
		AnnouncementUpdated: announcementUpdated,
	}, nil
}

// Cancel notifies every registrant, removes the announcement, and deletes the
// event together with its interest registrations. Irreversible.
func (s *EventService) Cancel(ctx context.Context, eventID int64, guildID, requesterID string, requesterIsManager bool) (*input.CancelResult, error) {
	event, err := s.events.FindByID(ctx, eventID, guildID)
	if err != nil {
		return nil, err
	}
	if event.CreatedBy != requesterID && !requesterIsManager {
		return nil, domain.ErrNotPermitted
	}

	notified := s.notifyRegistrants(ctx, event, func(userID string) error {
		return s.messenger.DMEventCancelled(ctx, userID, event, requesterID)
	})

	announcementDeleted := false
	if event.HasAnnouncement() {
		if err := s.announcer.Delete(ctx, event); err != nil {
			log.Printf("⚠️ Failed to delete announcement for event %d: %v", event.ID, err)
		} else {
			announcementDeleted = true
		}
	}

	if err := s.interests.DeleteByEventID(ctx, event.ID); err != nil {
		return nil, fmt.Errorf("delete interests: %w", err)
	}
	if err := s.events.Delete(ctx, event.ID); err != nil {
		return nil, fmt.Errorf("delete event: %w", err)
	}
	log.Printf("🗑️ Event %d cancelled by %s (%d registrants notified)", event.ID, requesterID, notified)

	return &input.CancelResult{
		Event:               event,
		NotifiedCount:       notified,
		AnnouncementDeleted: announcementDeleted,
	}, nil
}

// List returns at most 10 events of the guild by ascending start time.
func (s *EventService) List(ctx context.Context, guildID string, upcomingOnly bool) ([]entities.Event, error) {
	events, err := s.events.List(ctx, guildID, upcomingOnly, time.Now().UTC(), listLimit)
	if err != nil {
		return nil, fmt.Errorf("list events: %w", err)
	}
	return events, nil
}

// notifyRegistrants delivers send to every registrant sequentially and returns
// the success count. One unreachable user never blocks the others.
func (s *EventService) notifyRegistrants(ctx context.Context, event *entities.Event, send func(userID string) error) int {
	userIDs, err := s.interests.UserIDs(ctx, event.ID)
	if err != nil {
		log.Printf("❌ Failed to load registrants for event %d: %v", event.ID, err)
		return 0
	}
	notified := 0
	for _, userID := range userIDs {
		if err := send(userID); err != nil {
			log.Printf("❌ Failed to DM user %s for event %d: %v", userID, event.ID, err)
			continue
		}
		notified++
	}
	return notified
}
