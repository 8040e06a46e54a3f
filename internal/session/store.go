// Package session tracks anonymous browser sessions. There is no login in
// this application; a session exists only to give the anti-forgery token
// something stable to bind to. Sessions live in an in-memory store with a
// sliding expiration (no background janitor; cleanup is lazy or via
// PurgeExpired).
package session

import (
	"sync"
	"time"

	"github.com/google/uuid"
)

// DefaultTTL is the sliding session lifetime used until SetTTL is called.
const DefaultTTL = 24 * time.Hour

// Session is one anonymous browser session.
type Session struct {
	ID        string
	CreatedAt time.Time
	ExpiresAt time.Time
}

// Store is a mutex-guarded in-memory session store.
type Store struct {
	mu    sync.RWMutex
	ttl   time.Duration
	items map[string]Session
}

var storeInstance *Store
var once sync.Once

// GetStore returns the process-wide session store.
func GetStore() *Store {
	once.Do(func() {
		storeInstance = NewStore(DefaultTTL)
	})
	return storeInstance
}

// NewStore creates an empty store with the given sliding TTL.
func NewStore(ttl time.Duration) *Store {
	if ttl <= 0 {
		ttl = DefaultTTL
	}
	return &Store{
		ttl:   ttl,
		items: make(map[string]Session),
	}
}

// now is a small indirection to allow test stubbing.
var now = time.Now

// SetTTL changes the sliding lifetime applied to sessions created or touched
// from now on.
func (s *Store) SetTTL(ttl time.Duration) {
	if ttl <= 0 {
		return
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.ttl = ttl
}

// TTL returns the current sliding lifetime.
func (s *Store) TTL() time.Duration {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.ttl
}

// Create starts a new session with a fresh random ID.
func (s *Store) Create() Session {
	s.mu.Lock()
	defer s.mu.Unlock()

	ts := now()
	sess := Session{
		ID:        uuid.NewString(),
		CreatedAt: ts,
		ExpiresAt: ts.Add(s.ttl),
	}
	s.items[sess.ID] = sess

	return sess
}

// Get returns the session and whether it was present and not expired.
// Expired entries are treated as misses (cleanup deferred to PurgeExpired).
func (s *Store) Get(id string) (Session, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	sess, ok := s.items[id]
	if !ok || now().After(sess.ExpiresAt) {
		return Session{}, false
	}
	return sess, true
}

// Touch extends a live session's expiry by the store TTL and returns it.
// Touching a missing or expired session is a miss.
func (s *Store) Touch(id string) (Session, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	sess, ok := s.items[id]
	if !ok || now().After(sess.ExpiresAt) {
		return Session{}, false
	}

	sess.ExpiresAt = now().Add(s.ttl)
	s.items[id] = sess

	return sess, true
}

// Delete removes a session if present.
func (s *Store) Delete(id string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.items, id)
}

// Len returns the number of non-expired sessions currently stored.
func (s *Store) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()

	count := 0
	ts := now()
	for _, sess := range s.items {
		if ts.Before(sess.ExpiresAt) {
			count++
		}
	}
	return count
}

// PurgeExpired scans and removes expired sessions.
func (s *Store) PurgeExpired() {
	s.mu.Lock()
	defer s.mu.Unlock()

	if len(s.items) == 0 {
		return
	}
	ts := now()
	for id, sess := range s.items {
		if ts.After(sess.ExpiresAt) {
			delete(s.items, id)
		}
	}
}
