package sessions

import (
	"context"
	"sync"
	"time"

	"medicapp-gateway/internal/app/contracts"
	"medicapp-gateway/internal/app/models"
	"medicapp-gateway/internal/pkg/constvars"

	"github.com/goccy/go-json"
	"go.uber.org/zap"
)

// sessionDocument is the wire layout in redis. The legacy dashboard
// persisted the department twice: inside the user object and as a bare
// "role" string. Both are written for compatibility and either resolves
// the department on load.
type sessionDocument struct {
	Access  string           `json:"access,omitempty"`
	Refresh string           `json:"refresh,omitempty"`
	User    *models.Identity `json:"user,omitempty"`
	Role    string           `json:"role,omitempty"`
}

type sessionService struct {
	RedisRepository contracts.RedisRepository
	Expiry          time.Duration
	Log             *zap.Logger

	// fallback holds sessions for the process lifetime when redis is
	// unavailable; never surfaced to callers as an error.
	fallbackMu sync.RWMutex
	fallback   map[string]string
}

func NewSessionService(redisRepository contracts.RedisRepository, expiry time.Duration, log *zap.Logger) contracts.SessionService {
	return &sessionService{
		RedisRepository: redisRepository,
		Expiry:          expiry,
		Log:             log,
		fallback:        make(map[string]string),
	}
}

func (s *sessionService) Save(ctx context.Context, sessionID string, tokens models.Tokens, identity models.Identity) error {
	document := &sessionDocument{
		Access:  tokens.Access,
		Refresh: tokens.Refresh,
		User:    &identity,
		Role:    identity.Department.String(),
	}

	err := s.RedisRepository.Set(ctx, sessionKey(sessionID), document, s.Expiry)
	if err == nil {
		return nil
	}

	s.Log.Warn("Session write degraded to in-memory store", zap.Error(err))
	raw, marshalErr := json.Marshal(document)
	if marshalErr != nil {
		return marshalErr
	}
	s.fallbackMu.Lock()
	s.fallback[sessionID] = string(raw)
	s.fallbackMu.Unlock()
	return nil
}

func (s *sessionService) Load(ctx context.Context, sessionID string) *models.Session {
	if sessionID == "" {
		return models.AnonymousSession(sessionID)
	}

	raw, err := s.RedisRepository.Get(ctx, sessionKey(sessionID))
	if err != nil {
		s.Log.Warn("Session read degraded to in-memory store", zap.Error(err))
		raw = ""
	}
	if raw == "" {
		s.fallbackMu.RLock()
		raw = s.fallback[sessionID]
		s.fallbackMu.RUnlock()
	}
	if raw == "" {
		return models.AnonymousSession(sessionID)
	}

	var document sessionDocument
	if err := json.Unmarshal([]byte(raw), &document); err != nil {
		s.Log.Warn("Discarding corrupt session document", zap.String("session_id", sessionID))
		return models.AnonymousSession(sessionID)
	}

	session := &models.Session{
		ID:     sessionID,
		Tokens: models.Tokens{Access: document.Access, Refresh: document.Refresh},
	}
	if document.User != nil {
		session.Identity = *document.User
	}
	if !session.Identity.Department.Known() {
		session.Identity.Department = models.ParseDepartment(document.Role)
	}

	// Partial documents (token without identity or vice versa) must not
	// surface as authenticated-with-holes.
	if !session.Authenticated() {
		return models.AnonymousSession(sessionID)
	}
	return session
}

func (s *sessionService) Clear(ctx context.Context, sessionID string) error {
	if sessionID == "" {
		return nil
	}

	if err := s.RedisRepository.Delete(ctx, sessionKey(sessionID)); err != nil {
		s.Log.Warn("Session delete failed in redis, clearing in-memory copy only", zap.Error(err))
	}
	s.fallbackMu.Lock()
	delete(s.fallback, sessionID)
	s.fallbackMu.Unlock()
	return nil
}

func sessionKey(sessionID string) string {
	return constvars.SessionKeyPrefix + sessionID
}
