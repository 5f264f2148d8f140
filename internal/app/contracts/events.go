package contracts

import (
	"context"

	"medicapp-gateway/internal/app/models"
)

// EventPublisher is best effort: a broker outage must never fail an
// authentication call.
type EventPublisher interface {
	PublishAuthEvent(ctx context.Context, event *models.AuthEvent) error
}
