package middlewares

import (
	"context"
	"net/http"
	"strings"

	"medicapp-gateway/internal/app/models"
	"medicapp-gateway/internal/pkg/constvars"
	"medicapp-gateway/internal/pkg/exceptions"
	"medicapp-gateway/internal/pkg/utils"
)

// gatewayToken pulls the token from the Authorization header, falling
// back to the session cookie set at login for plain browser
// navigations.
func gatewayToken(r *http.Request) string {
	authHeader := r.Header.Get(constvars.HeaderAuthorization)
	if authHeader != "" {
		return strings.TrimPrefix(authHeader, "Bearer ")
	}
	cookie, err := r.Cookie(constvars.SessionCookieName)
	if err != nil {
		return ""
	}
	return cookie.Value
}

// WithSession resolves the session for every request and never rejects:
// an invalid or absent token simply yields an anonymous session. Route
// gating decides what anonymous may reach.
func (m *Middlewares) WithSession(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		session := models.AnonymousSession("")

		token := gatewayToken(r)
		if token != "" {
			if sessionID, err := utils.ParseJWT(token, m.InternalConfig.JWT.Secret); err == nil {
				session = m.SessionService.Load(r.Context(), sessionID)
			}
		}

		ctx := context.WithValue(r.Context(), constvars.ContextSession, session)
		ctx = context.WithValue(ctx, constvars.ContextSessionID, session.ID)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// Authenticate rejects requests without an authenticated session. Use
// on API endpoints; dashboard navigations go through WithSession plus
// the authorizer so they redirect instead of failing.
func (m *Middlewares) Authenticate(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		token := gatewayToken(r)
		if token == "" {
			utils.BuildErrorResponse(m.Log, w, exceptions.ErrTokenMissing(nil))
			return
		}

		sessionID, err := utils.ParseJWT(token, m.InternalConfig.JWT.Secret)
		if err != nil {
			utils.BuildErrorResponse(m.Log, w, err)
			return
		}

		session := m.SessionService.Load(r.Context(), sessionID)
		if !session.Authenticated() {
			utils.BuildErrorResponse(m.Log, w, exceptions.ErrTokenInvalidOrExpired(nil))
			return
		}

		ctx := context.WithValue(r.Context(), constvars.ContextSession, session)
		ctx = context.WithValue(ctx, constvars.ContextSessionID, sessionID)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// SessionFromContext returns the session placed by WithSession or
// Authenticate, or an anonymous session when neither ran.
func SessionFromContext(ctx context.Context) *models.Session {
	session, ok := ctx.Value(constvars.ContextSession).(*models.Session)
	if !ok || session == nil {
		return models.AnonymousSession("")
	}
	return session
}
