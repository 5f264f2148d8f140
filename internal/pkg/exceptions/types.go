package exceptions

import (
	"net/http"

	"medicapp-gateway/internal/pkg/constvars"
)

var (
	ErrCannotParseJSON = func(err error) *CustomError {
		return BuildNewCustomError(err, http.StatusBadRequest, constvars.ErrClientCannotProcessRequest, constvars.ErrDevCannotParseJSON)
	}
	ErrInputValidation = func(err error) *CustomError {
		return BuildNewCustomError(err, http.StatusBadRequest, FormatFirstValidationError(err), constvars.ErrDevValidationFailed)
	}
	ErrUnknownDepartment = func(err error) *CustomError {
		return BuildNewCustomError(err, http.StatusBadRequest, constvars.ErrClientUnknownDepartment, constvars.ErrDevUnknownDepartment)
	}

	// AuthenticationError: bad credentials or upstream rejection.
	ErrInvalidCredentials = func(err error, clientMessage string) *CustomError {
		if clientMessage == "" {
			clientMessage = constvars.ErrClientInvalidEmailOrPassword
		}
		return BuildNewCustomError(err, http.StatusUnauthorized, clientMessage, constvars.ErrDevInvalidCredentials)
	}
	// AccessDeniedError: valid credentials, wrong department.
	ErrDepartmentMismatch = func(err error) *CustomError {
		return BuildNewCustomError(err, http.StatusForbidden, constvars.ErrClientWrongDepartment, constvars.ErrDevDepartmentMismatch)
	}
	// UnverifiedAccountError: federated identity valid, account not approved.
	ErrAccountUnverified = func(err error) *CustomError {
		return BuildNewCustomError(err, http.StatusForbidden, constvars.ErrClientAccountUnverified, constvars.ErrDevAccountUnverified)
	}
	// RegistrationError: validation or conflict on sign-up.
	ErrRegistrationRejected = func(err error, clientMessage string) *CustomError {
		if clientMessage == "" {
			clientMessage = constvars.ErrClientRegistrationFailed
		}
		return BuildNewCustomError(err, http.StatusBadRequest, clientMessage, constvars.ErrDevRegistrationRejected)
	}
	ErrPasswordRequired = func(err error) *CustomError {
		return BuildNewCustomError(err, http.StatusBadRequest, constvars.ErrClientPasswordRequired, constvars.ErrDevValidationFailed)
	}

	ErrTokenMissing = func(err error) *CustomError {
		return BuildNewCustomError(err, http.StatusUnauthorized, constvars.ErrClientNotAuthorized, constvars.ErrDevAuthTokenMissing)
	}
	ErrTokenInvalidOrExpired = func(err error) *CustomError {
		return BuildNewCustomError(err, http.StatusUnauthorized, constvars.ErrClientNotLoggedIn, constvars.ErrDevAuthTokenInvalid)
	}
	ErrTokenGenerate = func(err error) *CustomError {
		return BuildNewCustomError(err, http.StatusInternalServerError, constvars.ErrClientSomethingWrongWithApplication, constvars.ErrDevAuthGenerateToken)
	}
	ErrSigningMethod = func(err error) *CustomError {
		return BuildNewCustomError(err, http.StatusInternalServerError, constvars.ErrClientSomethingWrongWithApplication, constvars.ErrDevAuthSigningMethod)
	}

	ErrInvalidAPIKey = func(err error) *CustomError {
		return BuildNewCustomError(err, http.StatusUnauthorized, constvars.ErrClientNotAuthorized, constvars.ErrDevInvalidAPIKey)
	}
	ErrTooManyLoginAttempts = func(err error) *CustomError {
		return BuildNewCustomError(err, http.StatusTooManyRequests, constvars.ErrClientTooManyLoginAttempts, constvars.ErrDevTooManyLoginAttempts)
	}
	ErrSessionNotFound = func(err error) *CustomError {
		return BuildNewCustomError(err, http.StatusNotFound, constvars.ErrClientSessionNotFound, constvars.ErrDevSessionNotFound)
	}

	ErrUpstreamRequestBuild = func(err error) *CustomError {
		return BuildNewCustomError(err, http.StatusInternalServerError, constvars.ErrClientSomethingWrongWithApplication, constvars.ErrDevUpstreamRequestBuild)
	}
	ErrUpstreamUnreachable = func(err error) *CustomError {
		return BuildNewCustomError(err, http.StatusBadGateway, constvars.ErrClientUpstreamUnreachable, constvars.ErrDevUpstreamRequestSend)
	}
	ErrUpstreamResponseDecode = func(err error) *CustomError {
		return BuildNewCustomError(err, http.StatusBadGateway, constvars.ErrClientSomethingWrongWithApplication, constvars.ErrDevUpstreamResponseDecode)
	}

	ErrCannotMarshalJSON = func(err error) *CustomError {
		return BuildNewCustomError(err, http.StatusInternalServerError, constvars.ErrClientSomethingWrongWithApplication, constvars.ErrDevCannotMarshalJSON)
	}
	ErrRedisSet = func(err error) *CustomError {
		return BuildNewCustomError(err, http.StatusInternalServerError, constvars.ErrClientSomethingWrongWithApplication, constvars.ErrDevRedisSet)
	}
	ErrRedisGet = func(err error) *CustomError {
		return BuildNewCustomError(err, http.StatusInternalServerError, constvars.ErrClientSomethingWrongWithApplication, constvars.ErrDevRedisGet)
	}
	ErrRedisDelete = func(err error) *CustomError {
		return BuildNewCustomError(err, http.StatusInternalServerError, constvars.ErrClientSomethingWrongWithApplication, constvars.ErrDevRedisDelete)
	}
	ErrServerDeadlineExceeded = func(err error) *CustomError {
		return BuildNewCustomError(err, http.StatusGatewayTimeout, constvars.ErrClientSomethingWrongWithApplication, constvars.ErrDevServerDeadlineExceeded)
	}
)
