package chat

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pkordes/csr-assistant/internal/domain"
	"github.com/pkordes/csr-assistant/internal/service"
)

func newTestStore(ttl time.Duration) (*SessionStore, *time.Time) {
	c := domain.NewCatalog(
		[]domain.Service{"plumbing"},
		[]string{"94115"},
		[]domain.Technician{{Name: "Michael Page", Services: []domain.Service{"plumbing"}, ZipCodes: []string{"94115"}}},
	)
	bot := NewBot(c, nil, service.NewFAQService(c))
	store := NewSessionStore(bot, ttl)

	clock := time.Date(2025, 2, 15, 9, 0, 0, 0, time.UTC)
	store.now = func() time.Time { return clock }
	return store, &clock
}

func TestSessionStore_GetCreatesAndReuses(t *testing.T) {
	store, _ := newTestStore(time.Minute)

	id, first := store.Get("")
	require.NotEmpty(t, id)

	again, second := store.Get(id)
	assert.Equal(t, id, again)
	assert.Same(t, first, second)

	other, third := store.Get("not-a-known-id")
	assert.NotEqual(t, id, other)
	assert.NotSame(t, first, third)
	assert.Equal(t, 2, store.Len())
}

// TestSessionStore_keepsDialogueState verifies that a booking dialogue
// started through one Get continues through the next.
func TestSessionStore_keepsDialogueState(t *testing.T) {
	store, _ := newTestStore(time.Minute)

	id, s := store.Get("")
	s.Handle(context.Background(), "book")

	_, s = store.Get(id)
	assert.True(t, s.Booking())
}

func TestSessionStore_expiresIdleSessions(t *testing.T) {
	store, clock := newTestStore(time.Minute)

	id, first := store.Get("")

	*clock = clock.Add(30 * time.Second)
	_, s := store.Get(id)
	assert.Same(t, first, s, "refreshed before expiry")

	*clock = clock.Add(61 * time.Second)
	newID, s := store.Get(id)
	assert.NotEqual(t, id, newID)
	assert.NotSame(t, first, s)
	assert.Equal(t, 1, store.Len())
}

func TestSessionStore_Delete(t *testing.T) {
	store, _ := newTestStore(0)

	id, _ := store.Get("")
	store.Delete(id)

	assert.Zero(t, store.Len())
}
