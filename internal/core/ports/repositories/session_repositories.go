package repositories

import (
	"context"

	"github.com/SscSPs/money_changer_pos/internal/core/domain"
)

// SessionMutator changes a working copy of a session. Returning an error discards the change.
type SessionMutator func(state *domain.SessionState) error

// SessionReader defines read operations for counter sessions
type SessionReader interface {
	// FindSessionByID returns a copy of the session or apperrors.ErrNotFound.
	FindSessionByID(ctx context.Context, sessionID string) (*domain.SessionState, error)
}

// SessionWriter defines write operations for counter sessions
type SessionWriter interface {
	// SaveSession stores a new session, replacing any session with the same ID.
	SaveSession(ctx context.Context, state *domain.SessionState) error

	// UpdateSession applies fn atomically and returns a copy of the stored result.
	UpdateSession(ctx context.Context, sessionID string, fn SessionMutator) (*domain.SessionState, error)

	// DeleteSession removes the session. Deleting an unknown session is not an error.
	DeleteSession(ctx context.Context, sessionID string) error
}

// SessionRepositoryFacade combines all session-related repository interfaces
type SessionRepositoryFacade interface {
	SessionReader
	SessionWriter
}
