package chat

import (
	"sync"
	"time"

	"github.com/google/uuid"
)

// SessionStore keeps web conversations keyed by an opaque ID, usually a
// cookie value. Sessions idle for longer than the TTL are dropped.
type SessionStore struct {
	bot *Bot
	ttl time.Duration
	now func() time.Time

	mu       sync.Mutex
	sessions map[string]*storedSession
}

type storedSession struct {
	session  *Session
	lastSeen time.Time
}

// NewSessionStore returns an empty store. A non-positive ttl keeps
// sessions forever.
func NewSessionStore(bot *Bot, ttl time.Duration) *SessionStore {
	return &SessionStore{
		bot:      bot,
		ttl:      ttl,
		now:      time.Now,
		sessions: make(map[string]*storedSession),
	}
}

// Get returns the session for id and refreshes its idle timer. When id is
// empty, unknown or expired a new session is created under a fresh ID;
// the returned ID is the one the caller must use from now on.
func (s *SessionStore) Get(id string) (string, *Session) {
	s.mu.Lock()
	defer s.mu.Unlock()

	now := s.now()
	s.evictLocked(now)

	if st, ok := s.sessions[id]; ok && id != "" {
		st.lastSeen = now
		return id, st.session
	}

	id = uuid.NewString()
	sess := s.bot.NewSession()
	s.sessions[id] = &storedSession{session: sess, lastSeen: now}
	return id, sess
}

// Delete forgets the session for id.
func (s *SessionStore) Delete(id string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.sessions, id)
}

// Len returns the number of live sessions.
func (s *SessionStore) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.evictLocked(s.now())
	return len(s.sessions)
}

func (s *SessionStore) evictLocked(now time.Time) {
	if s.ttl <= 0 {
		return
	}
	for id, st := range s.sessions {
		if now.Sub(st.lastSeen) > s.ttl {
			delete(s.sessions, id)
		}
	}
}
