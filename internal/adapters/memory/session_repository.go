package memory

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/SscSPs/money_changer_pos/internal/apperrors"
	"github.com/SscSPs/money_changer_pos/internal/core/domain"
	portsrepo "github.com/SscSPs/money_changer_pos/internal/core/ports/repositories"
)

// SessionRepository keeps counter sessions in process memory. Sessions idle for
// longer than the configured timeout are dropped the next time the store is touched.
type SessionRepository struct {
	mu          sync.Mutex
	sessions    map[string]*domain.SessionState
	idleTimeout time.Duration
	now         func() time.Time
}

// SessionRepositoryOption configures a SessionRepository.
type SessionRepositoryOption func(*SessionRepository)

// WithRepositoryClock overrides the time source used for idle expiry.
func WithRepositoryClock(now func() time.Time) SessionRepositoryOption {
	return func(r *SessionRepository) {
		r.now = now
	}
}

// NewSessionRepository creates the repository. A zero idleTimeout disables expiry.
func NewSessionRepository(idleTimeout time.Duration, options ...SessionRepositoryOption) *SessionRepository {
	r := &SessionRepository{
		sessions:    make(map[string]*domain.SessionState),
		idleTimeout: idleTimeout,
		now:         time.Now,
	}
	for _, option := range options {
		option(r)
	}
	return r
}

var _ portsrepo.SessionRepositoryFacade = (*SessionRepository)(nil)

func (r *SessionRepository) SaveSession(_ context.Context, state *domain.SessionState) error {
	if state == nil || state.SessionID == "" {
		return fmt.Errorf("session ID is required: %w", apperrors.ErrValidation)
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	r.evictExpiredLocked()
	r.sessions[state.SessionID] = state.Clone()
	return nil
}

func (r *SessionRepository) FindSessionByID(_ context.Context, sessionID string) (*domain.SessionState, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	state, err := r.getLocked(sessionID)
	if err != nil {
		return nil, err
	}
	return state.Clone(), nil
}

func (r *SessionRepository) UpdateSession(_ context.Context, sessionID string, fn portsrepo.SessionMutator) (*domain.SessionState, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	state, err := r.getLocked(sessionID)
	if err != nil {
		return nil, err
	}

	working := state.Clone()
	if err := fn(working); err != nil {
		return nil, err
	}
	r.sessions[sessionID] = working
	return working.Clone(), nil
}

func (r *SessionRepository) DeleteSession(_ context.Context, sessionID string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	delete(r.sessions, sessionID)
	return nil
}

// Len returns the number of live sessions.
func (r *SessionRepository) Len() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.evictExpiredLocked()
	return len(r.sessions)
}

func (r *SessionRepository) getLocked(sessionID string) (*domain.SessionState, error) {
	state, ok := r.sessions[sessionID]
	if !ok {
		return nil, fmt.Errorf("session %s: %w", sessionID, apperrors.ErrNotFound)
	}
	if r.expired(state) {
		delete(r.sessions, sessionID)
		return nil, fmt.Errorf("session %s expired: %w", sessionID, apperrors.ErrNotFound)
	}
	return state, nil
}

func (r *SessionRepository) evictExpiredLocked() {
	for id, state := range r.sessions {
		if r.expired(state) {
			delete(r.sessions, id)
		}
	}
}

func (r *SessionRepository) expired(state *domain.SessionState) bool {
	return r.idleTimeout > 0 && r.now().Sub(state.LastSeenAt) > r.idleTimeout
}
