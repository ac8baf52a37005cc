package session

import (
	"context"
	"errors"
)

// ErrNotFound is returned by Get when no session exists for the id.
var ErrNotFound = errors.New("session not found")

// Store persists sessions keyed by session id. Implementations must be safe
// for concurrent use; turn-level serialization is handled by the engine.
type Store interface {
	// Get returns the session for id, or ErrNotFound.
	Get(ctx context.Context, id string) (*Session, error)
	// Put writes the session, creating or replacing it.
	Put(ctx context.Context, s *Session) error
}
