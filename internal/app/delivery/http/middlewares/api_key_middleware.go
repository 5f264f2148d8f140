package middlewares

import (
	"context"
	"net/http"

	"medicapp-gateway/internal/pkg/constvars"
	"medicapp-gateway/internal/pkg/exceptions"
	"medicapp-gateway/internal/pkg/utils"

	"go.uber.org/zap"
)

// APIKeyAuth guards the ops surface. The configured value is a bcrypt
// hash so the key itself never sits in the environment.
func (m *Middlewares) APIKeyAuth(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		apiKey := r.Header.Get(constvars.HeaderAPIKey)

		if apiKey == "" || m.InternalConfig.App.OpsAPIKeyHash == "" {
			utils.BuildErrorResponse(m.Log, w, exceptions.ErrInvalidAPIKey(nil))
			return
		}

		if !utils.CheckAPIKeyHash(apiKey, m.InternalConfig.App.OpsAPIKeyHash) {
			utils.BuildErrorResponse(m.Log, w, exceptions.ErrInvalidAPIKey(nil))
			return
		}

		m.Log.Info("API key authentication successful",
			zap.String("ip", r.RemoteAddr),
			zap.String("endpoint", r.URL.Path),
			zap.String("method", r.Method))

		ctx := context.WithValue(r.Context(), constvars.ContextAPIKeyAuth, true)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}
