package contracts

import (
	"context"

	"medicapp-gateway/internal/app/models"
)

// SessionService is the single source of truth for authentication
// state. No other component touches session storage directly.
type SessionService interface {
	// Save persists tokens and identity as one document; a concurrent
	// Load observes either the previous session or the new one, never
	// a mix. It overwrites any prior session under the same ID.
	Save(ctx context.Context, sessionID string, tokens models.Tokens, identity models.Identity) error

	// Load never fails: corrupt, partial, or missing documents come
	// back as an anonymous session.
	Load(ctx context.Context, sessionID string) *models.Session

	// Clear is idempotent.
	Clear(ctx context.Context, sessionID string) error
}
