package application

import (
	"context"
	"errors"
	"fmt"
	"log"

	"eventbot/internal/domain"
	"eventbot/internal/domain/entities"
	"eventbot/internal/ports/input"
	"eventbot/internal/ports/output"
)

var _ input.InterestUseCase = (*InterestService)(nil)

// InterestService implements the interest registry: a single idempotent-in-pairs
// toggle per (event, user).
type InterestService struct {
	interests output.InterestRepository
	events    output.EventRepository
	announcer output.Announcer
}

func NewInterestService(
	interests output.InterestRepository,
	events output.EventRepository,
	announcer output.Announcer,
) *InterestService {
	return &InterestService{
		interests: interests,
		events:    events,
		announcer: announcer,
	}
}

// Toggle removes the registration when present, inserts it otherwise. The
// uniqueness of the (event, user) pair is enforced by the store, so two
// concurrent toggles can never double-insert. A toggle racing a cancellation
// fails with domain.ErrEventNotFound.
func (s *InterestService) Toggle(ctx context.Context, eventID int64, userID, guildID string) (input.InterestState, int64, error) {
	removed, err := s.interests.Remove(ctx, eventID, userID)
	if err != nil {
		return "", 0, fmt.Errorf("remove interest: %w", err)
	}

	state := input.InterestRemoved
	if !removed {
		_, err := s.interests.Add(ctx, &entities.InterestRegistration{
			EventID: eventID,
			UserID:  userID,
			GuildID: guildID,
		})
		if err != nil {
			if errors.Is(err, domain.ErrEventNotFound) {
				return "", 0, err
			}
			return "", 0, fmt.Errorf("add interest: %w", err)
		}
		state = input.InterestAdded
	}

	count, err := s.interests.Count(ctx, eventID)
	if err != nil {
		return state, 0, fmt.Errorf("count interests: %w", err)
	}

	// Reflect the new count on the announcement, best-effort.
	event, err := s.events.FindByID(ctx, eventID, guildID)
	if err != nil {
		log.Printf("⚠️ Failed to reload event %d after toggle: %v", eventID, err)
		return state, count, nil
	}
	if event.HasAnnouncement() {
		if err := s.announcer.Resync(ctx, event, count); err != nil {
			log.Printf("⚠️ Failed to resync announcement for event %d: %v", eventID, err)
		}
	}
	return state, count, nil
}
