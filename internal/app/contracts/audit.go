package contracts

import (
	"context"

	"medicapp-gateway/internal/app/models"
)

type AuditRepository interface {
	RecordLoginAttempt(ctx context.Context, attempt *models.LoginAttempt) error
}
