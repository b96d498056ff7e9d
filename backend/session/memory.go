package session

import (
	"context"
	"sync"
	"time"

	"skillshub/backend/models"
)

// MemoryRegistry keeps sessions in a process-local map. State is lost on
// restart, which only signs users out.
type MemoryRegistry struct {
	mu       sync.RWMutex
	sessions map[string]models.Session
	ttl      time.Duration
	now      func() time.Time
}

func NewMemoryRegistry(ttl time.Duration) *MemoryRegistry {
	return &MemoryRegistry{
		sessions: make(map[string]models.Session),
		ttl:      ttl,
		now:      time.Now,
	}
}

func (r *MemoryRegistry) Create(_ context.Context, userID string) (string, error) {
	token := newToken()

	r.mu.Lock()
	r.sessions[token] = models.Session{
		Token:     token,
		UserID:    userID,
		ExpiresAt: r.now().Add(r.ttl),
	}
	r.mu.Unlock()

	return token, nil
}

// Verify resolves a token to its user id. An expired entry is deleted on
// the spot and reported as not found.
func (r *MemoryRegistry) Verify(_ context.Context, token string) (string, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	sess, ok := r.sessions[token]
	if !ok {
		return "", nil
	}
	if sess.Expired(r.now()) {
		delete(r.sessions, token)
		return "", nil
	}
	return sess.UserID, nil
}

// Delete removes the session if present. Deleting an unknown token is a
// no-op, so sign-out is idempotent.
func (r *MemoryRegistry) Delete(_ context.Context, token string) error {
	r.mu.Lock()
	delete(r.sessions, token)
	r.mu.Unlock()
	return nil
}

// Len reports the number of live entries, including not-yet-collected
// expired ones.
func (r *MemoryRegistry) Len() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.sessions)
}
