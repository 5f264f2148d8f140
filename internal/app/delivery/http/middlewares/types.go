package middlewares

import (
	"medicapp-gateway/internal/app/config"
	"medicapp-gateway/internal/app/contracts"

	"go.uber.org/zap"
)

type Middlewares struct {
	Log            *zap.Logger
	SessionService contracts.SessionService
	InternalConfig *config.InternalConfig

	loginLimiter *loginLimiter
}

func NewMiddlewares(log *zap.Logger, sessionService contracts.SessionService, internalConfig *config.InternalConfig) *Middlewares {
	return &Middlewares{
		Log:            log,
		SessionService: sessionService,
		InternalConfig: internalConfig,
		loginLimiter:   newLoginLimiter(internalConfig.App.LoginAttemptsPerMinute),
	}
}
