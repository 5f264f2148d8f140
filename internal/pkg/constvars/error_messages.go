package constvars

// Error messages for clients
const (
	ErrClientSomethingWrongWithApplication = "something went wrong with the application, please contact admin"
	ErrClientCannotProcessRequest          = "cannot process request, please check your input"
	ErrClientInvalidEmailOrPassword        = "invalid email or password"
	ErrClientNotAuthorized                 = "you are not authorized to perform this action"
	ErrClientNotLoggedIn                   = "you are not logged in"
	ErrClientWrongDepartment               = "this account does not belong to the selected department"
	ErrClientAccountUnverified             = "your account has not been verified yet, please wait for approval"
	ErrClientRegistrationFailed            = "registration could not be completed, please check your input"
	ErrClientPasswordRequired              = "a password is required for this department"
	ErrClientUnknownDepartment             = "unknown department"
	ErrClientTooManyLoginAttempts          = "too many login attempts, please try again later"
	ErrClientUpstreamUnreachable           = "the hospital service is temporarily unreachable, please retry"
	ErrClientSessionNotFound               = "session not found"
)

// Error messages for developers
const (
	ErrDevCannotParseJSON          = "Failed to parse JSON request body"
	ErrDevValidationFailed         = "Request validation failed"
	ErrDevInvalidCredentials       = "Upstream rejected the supplied credentials"
	ErrDevDepartmentMismatch       = "Authenticated department does not match the requested department"
	ErrDevAccountUnverified        = "Upstream 2xx response missing access token or user payload"
	ErrDevRegistrationRejected     = "Upstream rejected the registration payload"
	ErrDevUnknownDepartment        = "Department is not part of the known enumeration"
	ErrDevAuthTokenMissing         = "Authorization header and session cookie are both absent"
	ErrDevAuthTokenInvalid         = "Gateway token is invalid or expired"
	ErrDevAuthSigningMethod        = "Unexpected JWT signing method"
	ErrDevAuthGenerateToken        = "Failed to sign gateway token"
	ErrDevSessionStoreWrite        = "Failed to persist session document"
	ErrDevSessionNotFound          = "No session document for the supplied session ID"
	ErrDevUpstreamRequestBuild     = "Failed to build upstream request"
	ErrDevUpstreamRequestSend      = "Failed to reach upstream users API"
	ErrDevUpstreamResponseDecode   = "Failed to decode upstream response body"
	ErrDevCannotMarshalJSON        = "Failed to marshal value to JSON"
	ErrDevRedisSet                 = "Failed to SET value in redis"
	ErrDevRedisGet                 = "Failed to GET value from redis"
	ErrDevRedisDelete              = "Failed to DEL key in redis"
	ErrDevInvalidAPIKey            = "Supplied x-api-key does not match the configured ops key"
	ErrDevTooManyLoginAttempts     = "Per-IP login limiter exhausted"
	ErrDevAuditWrite               = "Failed to record login attempt"
	ErrDevEventPublish             = "Failed to publish auth event"
	ErrDevServerDeadlineExceeded   = "Request deadline exceeded"
	ErrDevURLParamMissingSessionID = "URL parameter sessionID is empty"
)
