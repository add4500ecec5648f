package oauth

import (
	"context"
	"crypto/rand"
	"encoding/hex"
	"sync"
	"time"

	domainerrors "passage/internal/domain/errors"
	"passage/internal/domain/service"
	"passage/internal/errors"
)

const defaultStateTTL = 10 * time.Minute

// MemoryStateStore keeps OAuth CSRF states in process memory. A state is
// valid once and for ten minutes.
type MemoryStateStore struct {
	mu     sync.Mutex
	states map[string]service.OAuthState
	ttl    time.Duration
	now    func() time.Time
}

// NewMemoryStateStore creates an empty store.
func NewMemoryStateStore() service.OAuthStateStore {
	return &MemoryStateStore{
		states: make(map[string]service.OAuthState),
		ttl:    defaultStateTTL,
		now:    time.Now,
	}
}

// Issue stores state under a fresh random value.
func (s *MemoryStateStore) Issue(_ context.Context, state service.OAuthState) (string, error) {
	value, err := generateState()
	if err != nil {
		return "", err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	now := s.now()
	state.CreatedAt = now
	s.states[value] = state
	s.cleanupExpiredLocked(now)

	return value, nil
}

// Consume returns the stored state and removes it to prevent replay.
func (s *MemoryStateStore) Consume(_ context.Context, value string) (*service.OAuthState, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	state, ok := s.states[value]
	if !ok {
		return nil, domainerrors.ErrOAuthStateInvalid
	}
	delete(s.states, value)

	if s.now().Sub(state.CreatedAt) > s.ttl {
		return nil, domainerrors.ErrOAuthStateInvalid
	}

	return &state, nil
}

func (s *MemoryStateStore) cleanupExpiredLocked(now time.Time) {
	for value, state := range s.states {
		if now.Sub(state.CreatedAt) > s.ttl {
			delete(s.states, value)
		}
	}
}

// generateState generates a cryptographically secure random state string
func generateState() (string, error) {
	bytes := make([]byte, 32)
	if _, err := rand.Read(bytes); err != nil {
		return "", errors.Wrap(err, "generate oauth state")
	}

	return hex.EncodeToString(bytes), nil
}
