package application

import (
	"context"
	"fmt"
	"log"
	"time"

	"eventbot/internal/domain/entities"
	"eventbot/internal/ports/output"
)

const (
	// SweepInterval is how often the notifier scans for due events. Combined
	// with the one-minute window every event is inspected by at least one
	// sweep at or shortly after its start time.
	SweepInterval = 30 * time.Second

	notifyWindow = time.Minute
)

// NotifierService sweeps for events crossing their start time and fires the
// at-most-once start notification.
type NotifierService struct {
	events    output.EventRepository
	interests output.InterestRepository
	messenger output.Messenger
	announcer output.Announcer
}

func NewNotifierService(
	events output.EventRepository,
	interests output.InterestRepository,
	messenger output.Messenger,
	announcer output.Announcer,
) *NotifierService {
	return &NotifierService{
		events:    events,
		interests: interests,
		messenger: messenger,
		announcer: announcer,
	}
}

// Run sweeps once immediately, then on every tick until ctx is cancelled.
func (s *NotifierService) Run(ctx context.Context, interval time.Duration) {
	log.Printf("🔔 Event notifier started (interval=%s)", interval)
	if err := s.Sweep(ctx, time.Now().UTC()); err != nil {
		log.Printf("❌ Notifier sweep failed: %v", err)
	}
	ticker := time.NewTicker(interval)
	defer ticker.Stop()
	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			if err := s.Sweep(ctx, time.Now().UTC()); err != nil {
				log.Printf("❌ Notifier sweep failed: %v", err)
			}
		}
	}
}

// Sweep processes every unnotified event whose start time falls within one
// minute of now. Events whose start time drifted outside the window before
// their first sweep are never notified; that gap is accepted.
func (s *NotifierService) Sweep(ctx context.Context, now time.Time) error {
	due, err := s.events.FindDueUnnotified(ctx, now.Add(-notifyWindow), now.Add(notifyWindow))
	if err != nil {
		return fmt.Errorf("find due events: %w", err)
	}
	for i := range due {
		if err := s.notify(ctx, &due[i]); err != nil {
			// The event stays unnotified and is retried while it remains
			// inside the window.
			log.Printf("❌ Failed to process event %d: %v", due[i].ID, err)
		}
	}
	return nil
}

// notify delivers all start notifications for one event, then flips the
// notified flag. Delivery comes first: a crash in between can at worst cause
// a duplicate, never a silent loss.
func (s *NotifierService) notify(ctx context.Context, event *entities.Event) error {
	log.Printf("🔔 Sending start notifications for event %q (id=%d)", event.Name, event.ID)

	count, err := s.interests.Count(ctx, event.ID)
	if err != nil {
		return fmt.Errorf("count interests: %w", err)
	}
	userIDs, err := s.interests.UserIDs(ctx, event.ID)
	if err != nil {
		return fmt.Errorf("load registrants: %w", err)
	}

	for _, userID := range userIDs {
		if err := s.messenger.DMEventStarting(ctx, userID, event, count); err != nil {
			log.Printf("❌ Failed to DM user %s for event %d: %v", userID, event.ID, err)
			continue
		}
	}

	if event.HasAnnouncement() {
		if err := s.announcer.AnnounceStarting(ctx, event, count); err != nil {
			log.Printf("❌ Failed to post start announcement for event %d: %v", event.ID, err)
		}
	}

	if err := s.events.MarkNotified(ctx, event.ID); err != nil {
		return fmt.Errorf("mark notified: %w", err)
	}
	return nil
}
