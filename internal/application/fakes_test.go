package application

import (
	"context"
	"errors"
	"slices"
	"sort"
	"time"

	"eventbot/internal/domain"
	"eventbot/internal/domain/entities"
)

var errUnreachable = errors.New("user unreachable")

// fakeEventRepo is an in-memory EventRepository. It stores values and hands
// out copies so tests observe re-read semantics like a real store.
type fakeEventRepo struct {
	byID        map[int64]entities.Event
	nextID      int64
	createErr   error
	updateErr   error
	updateCalls int
}

func newFakeEventRepo() *fakeEventRepo {
	return &fakeEventRepo{
		byID:   make(map[int64]entities.Event),
		nextID: 1,
	}
}

func (f *fakeEventRepo) Create(ctx context.Context, event *entities.Event) error {
	if f.createErr != nil {
		return f.createErr
	}
	event.ID = f.nextID
	event.CreatedAt = time.Now().UTC()
	f.nextID++
	f.byID[event.ID] = *event
	return nil
}

func (f *fakeEventRepo) FindByID(ctx context.Context, id int64, guildID string) (*entities.Event, error) {
	e, ok := f.byID[id]
	if !ok || e.GuildID != guildID {
		return nil, domain.ErrEventNotFound
	}
	out := e
	return &out, nil
}

func (f *fakeEventRepo) List(ctx context.Context, guildID string, upcomingOnly bool, now time.Time, limit int) ([]entities.Event, error) {
	var out []entities.Event
	for _, e := range f.byID {
		if e.GuildID != guildID {
			continue
		}
		if upcomingOnly && e.StartTime.Before(now) {
			continue
		}
		out = append(out, e)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].StartTime.Before(out[j].StartTime) })
	if len(out) > limit {
		out = out[:limit]
	}
	return out, nil
}

func (f *fakeEventRepo) Update(ctx context.Context, event *entities.Event) error {
	if f.updateErr != nil {
		return f.updateErr
	}
	if _, ok := f.byID[event.ID]; !ok {
		return domain.ErrEventNotFound
	}
	f.updateCalls++
	f.byID[event.ID] = *event
	return nil
}

func (f *fakeEventRepo) SetAnnouncement(ctx context.Context, id int64, channelID, messageID string) error {
	e, ok := f.byID[id]
	if !ok {
		return domain.ErrEventNotFound
	}
	e.AnnouncementChannelID = channelID
	e.AnnouncementMessageID = messageID
	f.byID[id] = e
	return nil
}

func (f *fakeEventRepo) FindDueUnnotified(ctx context.Context, from, to time.Time) ([]entities.Event, error) {
	var out []entities.Event
	for _, e := range f.byID {
		if e.Notified {
			continue
		}
		if e.StartTime.After(from) && !e.StartTime.After(to) {
			out = append(out, e)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

func (f *fakeEventRepo) MarkNotified(ctx context.Context, id int64) error {
	e, ok := f.byID[id]
	if !ok {
		return domain.ErrEventNotFound
	}
	e.Notified = true
	f.byID[id] = e
	return nil
}

func (f *fakeEventRepo) Delete(ctx context.Context, id int64) error {
	delete(f.byID, id)
	return nil
}

// fakeInterestRepo is an in-memory InterestRepository. When events is set,
// Add enforces the foreign key like the real store does.
type fakeInterestRepo struct {
	byEvent map[int64][]string
	events  *fakeEventRepo
}

func newFakeInterestRepo(events *fakeEventRepo) *fakeInterestRepo {
	return &fakeInterestRepo{
		byEvent: make(map[int64][]string),
		events:  events,
	}
}

func (f *fakeInterestRepo) Add(ctx context.Context, reg *entities.InterestRegistration) (bool, error) {
	if f.events != nil {
		if _, ok := f.events.byID[reg.EventID]; !ok {
			return false, domain.ErrEventNotFound
		}
	}
	if slices.Contains(f.byEvent[reg.EventID], reg.UserID) {
		return false, nil
	}
	f.byEvent[reg.EventID] = append(f.byEvent[reg.EventID], reg.UserID)
	return true, nil
}

func (f *fakeInterestRepo) Remove(ctx context.Context, eventID int64, userID string) (bool, error) {
	users := f.byEvent[eventID]
	idx := slices.Index(users, userID)
	if idx < 0 {
		return false, nil
	}
	f.byEvent[eventID] = slices.Delete(users, idx, idx+1)
	return true, nil
}

func (f *fakeInterestRepo) UserIDs(ctx context.Context, eventID int64) ([]string, error) {
	return slices.Clone(f.byEvent[eventID]), nil
}

func (f *fakeInterestRepo) Count(ctx context.Context, eventID int64) (int64, error) {
	return int64(len(f.byEvent[eventID])), nil
}

func (f *fakeInterestRepo) DeleteByEventID(ctx context.Context, eventID int64) error {
	delete(f.byEvent, eventID)
	return nil
}

type sentDM struct {
	userID  string
	eventID int64
}

// fakeMessenger records delivered DMs and can fail for chosen recipients.
type fakeMessenger struct {
	started   []sentDM
	edited    []sentDM
	cancelled []sentDM
	failFor   map[string]bool
}

func newFakeMessenger() *fakeMessenger {
	return &fakeMessenger{failFor: make(map[string]bool)}
}

func (f *fakeMessenger) DMEventStarting(ctx context.Context, userID string, event *entities.Event, interestedCount int64) error {
	if f.failFor[userID] {
		return errUnreachable
	}
	f.started = append(f.started, sentDM{userID: userID, eventID: event.ID})
	return nil
}

func (f *fakeMessenger) DMEventEdited(ctx context.Context, userID string, event *entities.Event, changes []string, editorID string) error {
	if f.failFor[userID] {
		return errUnreachable
	}
	f.edited = append(f.edited, sentDM{userID: userID, eventID: event.ID})
	return nil
}

func (f *fakeMessenger) DMEventCancelled(ctx context.Context, userID string, event *entities.Event, cancellerID string) error {
	if f.failFor[userID] {
		return errUnreachable
	}
	f.cancelled = append(f.cancelled, sentDM{userID: userID, eventID: event.ID})
	return nil
}

// fakeAnnouncer records announcement calls. With channelID empty, Publish
// reports publishing disabled.
type fakeAnnouncer struct {
	channelID   string
	messageID   string
	publishErr  error
	resyncErr   error
	deleteErr   error
	announceErr error

	resyncCalls   int
	resyncCount   int64
	deleteCalls   int
	startingCalls int
}

func (f *fakeAnnouncer) Publish(ctx context.Context, event *entities.Event) (string, string, error) {
	if f.publishErr != nil {
		return "", "", f.publishErr
	}
	return f.channelID, f.messageID, nil
}

func (f *fakeAnnouncer) Resync(ctx context.Context, event *entities.Event, interestedCount int64) error {
	if f.resyncErr != nil {
		return f.resyncErr
	}
	f.resyncCalls++
	f.resyncCount = interestedCount
	return nil
}

func (f *fakeAnnouncer) Delete(ctx context.Context, event *entities.Event) error {
	if f.deleteErr != nil {
		return f.deleteErr
	}
	f.deleteCalls++
	return nil
}

func (f *fakeAnnouncer) AnnounceStarting(ctx context.Context, event *entities.Event, interestedCount int64) error {
	if f.announceErr != nil {
		return f.announceErr
	}
	f.startingCalls++
	return nil
}
