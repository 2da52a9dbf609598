package application

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"eventbot/internal/domain"
	"eventbot/internal/ports/input"
)

func newInterestFixture(t *testing.T) (*InterestService, *EventService, *fakeInterestRepo, *fakeAnnouncer, int64) {
	t.Helper()
	eventSvc, events, interests, _, announcer := newEventFixture()
	svc := NewInterestService(interests, events, announcer)

	event, err := eventSvc.Create(context.Background(), createParams())
	require.NoError(t, err)
	return svc, eventSvc, interests, announcer, event.ID
}

func TestToggleAlternates(t *testing.T) {
	svc, _, _, _, eventID := newInterestFixture(t)
	ctx := context.Background()

	state, count, err := svc.Toggle(ctx, eventID, "alice", testGuild)
	require.NoError(t, err)
	assert.Equal(t, input.InterestAdded, state)
	assert.Equal(t, int64(1), count)

	state, count, err = svc.Toggle(ctx, eventID, "alice", testGuild)
	require.NoError(t, err)
	assert.Equal(t, input.InterestRemoved, state)
	assert.Zero(t, count)

	// Toggling again after a removal re-registers.
	state, count, err = svc.Toggle(ctx, eventID, "alice", testGuild)
	require.NoError(t, err)
	assert.Equal(t, input.InterestAdded, state)
	assert.Equal(t, int64(1), count)
}

func TestToggleCountsAreShared(t *testing.T) {
	svc, _, _, _, eventID := newInterestFixture(t)
	ctx := context.Background()

	_, _, err := svc.Toggle(ctx, eventID, "alice", testGuild)
	require.NoError(t, err)
	_, count, err := svc.Toggle(ctx, eventID, "bob", testGuild)
	require.NoError(t, err)
	assert.Equal(t, int64(2), count)

	_, count, err = svc.Toggle(ctx, eventID, "alice", testGuild)
	require.NoError(t, err)
	assert.Equal(t, int64(1), count)
}

func TestToggleUnknownEvent(t *testing.T) {
	svc, _, _, _, _ := newInterestFixture(t)

	_, _, err := svc.Toggle(context.Background(), 42, "alice", testGuild)
	assert.ErrorIs(t, err, domain.ErrEventNotFound)
}

func TestToggleAgainstCancelledEvent(t *testing.T) {
	svc, eventSvc, _, _, eventID := newInterestFixture(t)
	ctx := context.Background()

	_, err := eventSvc.Cancel(ctx, eventID, testGuild, "creator", false)
	require.NoError(t, err)

	_, _, err = svc.Toggle(ctx, eventID, "alice", testGuild)
	assert.ErrorIs(t, err, domain.ErrEventNotFound)
}

func TestToggleResyncsAnnouncement(t *testing.T) {
	eventSvc, events, interests, _, announcer := newEventFixture()
	announcer.channelID = "chan-1"
	announcer.messageID = "msg-1"
	svc := NewInterestService(interests, events, announcer)
	ctx := context.Background()

	event, err := eventSvc.Create(ctx, createParams())
	require.NoError(t, err)
	resyncsAfterCreate := announcer.resyncCalls

	_, _, err = svc.Toggle(ctx, event.ID, "alice", testGuild)
	require.NoError(t, err)
	assert.Equal(t, resyncsAfterCreate+1, announcer.resyncCalls)
	assert.Equal(t, int64(1), announcer.resyncCount)
}

func TestToggleResyncFailureIsNotSurfaced(t *testing.T) {
	eventSvc, events, interests, _, announcer := newEventFixture()
	announcer.channelID = "chan-1"
	announcer.messageID = "msg-1"
	svc := NewInterestService(interests, events, announcer)
	ctx := context.Background()

	event, err := eventSvc.Create(ctx, createParams())
	require.NoError(t, err)

	announcer.resyncErr = errUnreachable
	state, count, err := svc.Toggle(ctx, event.ID, "alice", testGuild)
	require.NoError(t, err)
	assert.Equal(t, input.InterestAdded, state)
	assert.Equal(t, int64(1), count)
}
