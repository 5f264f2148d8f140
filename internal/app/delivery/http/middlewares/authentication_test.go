package middlewares

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"medicapp-gateway/internal/app/config"
	"medicapp-gateway/internal/app/models"
	"medicapp-gateway/internal/pkg/constvars"
	"medicapp-gateway/internal/pkg/utils"

	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"
)

const testJWTSecret = "test-secret"

// stubSessionService serves a single pre-seeded session; everything
// else resolves anonymous.
type stubSessionService struct {
	sessionID string
	session   *models.Session
}

func (s *stubSessionService) Save(context.Context, string, models.Tokens, models.Identity) error {
	return nil
}

func (s *stubSessionService) Load(_ context.Context, sessionID string) *models.Session {
	if sessionID == s.sessionID && s.session != nil {
		return s.session
	}
	return models.AnonymousSession(sessionID)
}

func (s *stubSessionService) Clear(context.Context, string) error { return nil }

func authMiddlewares(sessionService *stubSessionService) *Middlewares {
	return &Middlewares{
		Log:            zap.NewNop(),
		SessionService: sessionService,
		InternalConfig: &config.InternalConfig{
			JWT: config.JWT{Secret: testJWTSecret, ExpTimeInHour: 1},
		},
	}
}

func nurseSession(sessionID string) *models.Session {
	return &models.Session{
		ID:     sessionID,
		Tokens: models.Tokens{Access: "acc", Refresh: "ref"},
		Identity: models.Identity{
			FullName:   "Dewi Lestari",
			Email:      "dewi@medicapp.test",
			Department: models.DepartmentNurse,
		},
	}
}

func TestWithSession_NoTokenYieldsAnonymous(t *testing.T) {
	m := authMiddlewares(&stubSessionService{})
	handler := m.WithSession(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		session := SessionFromContext(r.Context())
		assert.False(t, session.Authenticated())
	}))

	req := httptest.NewRequest(http.MethodGet, "/dashboard", nil)
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestWithSession_GarbageTokenYieldsAnonymous(t *testing.T) {
	m := authMiddlewares(&stubSessionService{})
	handler := m.WithSession(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.False(t, SessionFromContext(r.Context()).Authenticated())
	}))

	req := httptest.NewRequest(http.MethodGet, "/dashboard", nil)
	req.Header.Set(constvars.HeaderAuthorization, "Bearer not-a-jwt")
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestWithSession_BearerTokenResolvesSession(t *testing.T) {
	sessionService := &stubSessionService{sessionID: "sid-1", session: nurseSession("sid-1")}
	m := authMiddlewares(sessionService)

	token, err := utils.GenerateJWT("sid-1", testJWTSecret, time.Hour)
	assert.NoError(t, err)

	handler := m.WithSession(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		session := SessionFromContext(r.Context())
		assert.True(t, session.Authenticated())
		assert.Equal(t, models.DepartmentNurse, session.Role())
	}))

	req := httptest.NewRequest(http.MethodGet, "/dashboard/nurse", nil)
	req.Header.Set(constvars.HeaderAuthorization, "Bearer "+token)
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestWithSession_CookieFallback(t *testing.T) {
	sessionService := &stubSessionService{sessionID: "sid-1", session: nurseSession("sid-1")}
	m := authMiddlewares(sessionService)

	token, err := utils.GenerateJWT("sid-1", testJWTSecret, time.Hour)
	assert.NoError(t, err)

	handler := m.WithSession(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.True(t, SessionFromContext(r.Context()).Authenticated())
	}))

	req := httptest.NewRequest(http.MethodGet, "/dashboard/nurse", nil)
	req.AddCookie(&http.Cookie{Name: constvars.SessionCookieName, Value: token})
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestAuthenticate_MissingToken(t *testing.T) {
	m := authMiddlewares(&stubSessionService{})
	handler := m.Authenticate(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		t.Fatal("handler must not run without a token")
	}))

	req := httptest.NewRequest(http.MethodGet, "/api/navigation/menu", nil)
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestAuthenticate_ExpiredToken(t *testing.T) {
	m := authMiddlewares(&stubSessionService{})
	token, err := utils.GenerateJWT("sid-1", testJWTSecret, -time.Minute)
	assert.NoError(t, err)

	handler := m.Authenticate(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		t.Fatal("handler must not run with an expired token")
	}))

	req := httptest.NewRequest(http.MethodGet, "/api/navigation/menu", nil)
	req.Header.Set(constvars.HeaderAuthorization, "Bearer "+token)
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestAuthenticate_ValidTokenButClearedSession(t *testing.T) {
	// Token still valid, session already force-cleared: the request
	// must be rejected, not served anonymously.
	m := authMiddlewares(&stubSessionService{})
	token, err := utils.GenerateJWT("sid-gone", testJWTSecret, time.Hour)
	assert.NoError(t, err)

	handler := m.Authenticate(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		t.Fatal("handler must not run for a cleared session")
	}))

	req := httptest.NewRequest(http.MethodGet, "/api/navigation/menu", nil)
	req.Header.Set(constvars.HeaderAuthorization, "Bearer "+token)
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestAuthenticate_ValidSession(t *testing.T) {
	sessionService := &stubSessionService{sessionID: "sid-1", session: nurseSession("sid-1")}
	m := authMiddlewares(sessionService)
	token, err := utils.GenerateJWT("sid-1", testJWTSecret, time.Hour)
	assert.NoError(t, err)

	handler := m.Authenticate(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		sessionID, _ := r.Context().Value(constvars.ContextSessionID).(string)
		assert.Equal(t, "sid-1", sessionID)
	}))

	req := httptest.NewRequest(http.MethodGet, "/api/navigation/menu", nil)
	req.Header.Set(constvars.HeaderAuthorization, "Bearer "+token)
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
}
