package otp

import (
	"context"
	"math/rand"
	"strconv"
	"sync"
	"time"
)

// DefaultTTL is how long an issued verification code stays valid.
const DefaultTTL = 5 * time.Minute

// Clock supplies the current time. Tests substitute a fixed clock so
// expiry is exercised without waiting.
type Clock func() time.Time

// Entry is a stored verification code with its validity window.
type Entry struct {
	Identifier string    `json:"identifier"`
	Code       string    `json:"code"`
	IssuedAt   time.Time `json:"issued_at"`
	ExpiresAt  time.Time `json:"expires_at"`
}

// Store issues and validates short-lived verification codes. At most one
// live code exists per identifier; issuing again replaces the previous
// one. Validation never consumes a matching code; an entry disappears
// only through expiry or Invalidate.
type Store interface {
	Issue(ctx context.Context, identifier string, ttl time.Duration) (*Entry, error)
	Validate(ctx context.Context, identifier, candidate string) (bool, error)
	Invalidate(ctx context.Context, identifier string) error
}

// generateCode returns a uniformly random 4-digit code in [1000, 9999].
func generateCode() string {
	return strconv.Itoa(1000 + rand.Intn(9000))
}

// MemoryStore keeps verification codes in process memory. Expired entries
// are garbage-collected by per-entry timers, but Validate always re-checks
// expiry against the clock so correctness never depends on timer delivery.
type MemoryStore struct {
	mu      sync.Mutex
	entries map[string]*memoryEntry
	clock   Clock
}

type memoryEntry struct {
	Entry
	cleanup *time.Timer
}

// NewMemoryStore creates an in-memory store using wall-clock time.
func NewMemoryStore() *MemoryStore {
	return NewMemoryStoreWithClock(func() time.Time { return time.Now().UTC() })
}

// NewMemoryStoreWithClock creates an in-memory store reading time from clock.
func NewMemoryStoreWithClock(clock Clock) *MemoryStore {
	return &MemoryStore{
		entries: make(map[string]*memoryEntry),
		clock:   clock,
	}
}

// Issue generates a fresh code for the identifier, replacing any previous
// entry. A non-positive ttl falls back to DefaultTTL.
func (s *MemoryStore) Issue(_ context.Context, identifier string, ttl time.Duration) (*Entry, error) {
	if ttl <= 0 {
		ttl = DefaultTTL
	}
	now := s.clock()
	entry := Entry{
		Identifier: identifier,
		Code:       generateCode(),
		IssuedAt:   now,
		ExpiresAt:  now.Add(ttl),
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if prev, ok := s.entries[identifier]; ok && prev.cleanup != nil {
		prev.cleanup.Stop()
	}
	stored := &memoryEntry{Entry: entry}
	stored.cleanup = time.AfterFunc(ttl, func() {
		s.removeExpired(identifier, entry.ExpiresAt)
	})
	s.entries[identifier] = stored

	return &entry, nil
}

// Validate reports whether candidate matches the live code for the
// identifier. A missing entry is false; an entry past its expiry instant
// is deleted and false. A match leaves the entry in place.
func (s *MemoryStore) Validate(_ context.Context, identifier, candidate string) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	current, ok := s.entries[identifier]
	if !ok {
		return false, nil
	}
	if s.clock().After(current.ExpiresAt) {
		if current.cleanup != nil {
			current.cleanup.Stop()
		}
		delete(s.entries, identifier)
		return false, nil
	}
	return current.Code == candidate, nil
}

// Invalidate removes the identifier's entry, if any.
func (s *MemoryStore) Invalidate(_ context.Context, identifier string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if current, ok := s.entries[identifier]; ok {
		if current.cleanup != nil {
			current.cleanup.Stop()
		}
		delete(s.entries, identifier)
	}
	return nil
}

// Close stops all cleanup timers and drops every entry.
func (s *MemoryStore) Close() {
	s.mu.Lock()
	defer s.mu.Unlock()

	for identifier, current := range s.entries {
		if current.cleanup != nil {
			current.cleanup.Stop()
		}
		delete(s.entries, identifier)
	}
}

// removeExpired deletes the entry only while it still belongs to the timer
// that fired; a re-issued entry carries a later expiry and stays.
func (s *MemoryStore) removeExpired(identifier string, expiresAt time.Time) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if current, ok := s.entries[identifier]; ok && current.ExpiresAt.Equal(expiresAt) {
		delete(s.entries, identifier)
	}
}
