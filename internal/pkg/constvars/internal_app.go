package constvars

type ContextKey string

const (
	ContextSession    ContextKey = "session"
	ContextSessionID  ContextKey = "session_id"
	ContextAPIKeyAuth ContextKey = "api_key_auth"
)

const (
	HeaderAuthorization = "Authorization"
	HeaderContentType   = "Content-Type"
	HeaderAPIKey        = "x-api-key"

	MIMEApplicationJSON = "application/json"
)

const (
	// SessionCookieName carries the gateway token for plain browser
	// navigations that cannot attach an Authorization header.
	SessionCookieName = "medicapp_session"

	// SessionKeyPrefix namespaces session documents in redis.
	SessionKeyPrefix = "session:"
)

const (
	PathLanding    = "/"
	PathDashboard  = "/dashboard"
	QueryParamPath = "path"
)

const (
	AuditOutcomeGranted = "granted"
	AuditOutcomeDenied  = "denied"
	AuditCollection     = "login_attempts"

	EventQueueAuth = "medicapp.auth.events"

	EventUserRegistered = "user.registered"
	EventLoginGranted   = "login.granted"
	EventLoginDenied    = "login.denied"
)
