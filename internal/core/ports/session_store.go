package ports

import (
	"context"
	"errors"
	"time"
)

// ErrSessionNotFound is returned when no conversation session exists for a
// user, either because none was started or because it expired.
var ErrSessionNotFound = errors.New("session not found")

// Session is the per-user conversation state of the ordering assistant: the
// current step of the dialog plus whatever values earlier steps collected.
type Session struct {
	Step string            `json:"step"`
	Data map[string]string `json:"data,omitempty"`
}

// SessionStore keeps one conversation session per user with a TTL, so two
// users talking to the assistant at the same time never see each other's
// state and abandoned dialogs clean themselves up.
type SessionStore interface {
	// Get retrieves the user's session. Returns ErrSessionNotFound when the
	// session does not exist or has expired.
	Get(ctx context.Context, userID string) (Session, error)

	// Set stores the user's session and resets its expiry to ttl from now.
	Set(ctx context.Context, userID string, session Session, ttl time.Duration) error

	// Delete removes the user's session, ending the conversation.
	Delete(ctx context.Context, userID string) error
}
