package auth

import (
	"context"
	"time"

	"medicapp-gateway/internal/app/config"
	"medicapp-gateway/internal/app/contracts"
	"medicapp-gateway/internal/app/models"
	"medicapp-gateway/internal/pkg/constvars"
	"medicapp-gateway/internal/pkg/dto/requests"
	"medicapp-gateway/internal/pkg/dto/responses"
	"medicapp-gateway/internal/pkg/exceptions"
	"medicapp-gateway/internal/pkg/utils"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

const (
	methodCredentials = "credentials"
	methodGoogle      = "google"
	methodRegister    = "register"
)

type authUsecase struct {
	UsersClient     contracts.UsersClient
	SessionService  contracts.SessionService
	AuditRepository contracts.AuditRepository
	EventPublisher  contracts.EventPublisher
	InternalConfig  *config.InternalConfig
	Log             *zap.Logger
}

func NewAuthUsecase(
	usersClient contracts.UsersClient,
	sessionService contracts.SessionService,
	auditRepository contracts.AuditRepository,
	eventPublisher contracts.EventPublisher,
	internalConfig *config.InternalConfig,
	log *zap.Logger,
) contracts.AuthUsecase {
	return &authUsecase{
		UsersClient:     usersClient,
		SessionService:  sessionService,
		AuditRepository: auditRepository,
		EventPublisher:  eventPublisher,
		InternalConfig:  internalConfig,
		Log:             log,
	}
}

func (uc *authUsecase) Login(ctx context.Context, request *requests.Login) (*responses.Login, error) {
	expected := models.ParseDepartment(request.Department)
	if !expected.Known() {
		return nil, exceptions.ErrUnknownDepartment(nil)
	}

	upstreamAuth, err := uc.UsersClient.Login(ctx, &requests.UpstreamLogin{
		Email:      request.Email,
		Password:   request.Password,
		Department: request.Department,
	})
	if err != nil {
		uc.recordAttempt(request.Email, request.Department, methodCredentials, constvars.AuditOutcomeDenied, "upstream rejection", request.RemoteAddr)
		return nil, err
	}

	return uc.establishSession(ctx, upstreamAuth, expected, request.Email, methodCredentials, request.RemoteAddr)
}

func (uc *authUsecase) GoogleLogin(ctx context.Context, request *requests.GoogleLogin) (*responses.Login, error) {
	expected := models.ParseDepartment(request.Department)
	if !expected.Known() {
		return nil, exceptions.ErrUnknownDepartment(nil)
	}

	upstreamAuth, err := uc.UsersClient.GoogleLogin(ctx, &requests.UpstreamGoogleLogin{
		Token:      request.Token,
		Department: request.Department,
	})
	if err != nil {
		uc.recordAttempt("", request.Department, methodGoogle, constvars.AuditOutcomeDenied, "upstream rejection", request.RemoteAddr)
		return nil, err
	}

	// A 2xx without tokens or user means the account exists but has
	// not been approved yet. No session may be created.
	if upstreamAuth.Access == "" || upstreamAuth.Refresh == "" || upstreamAuth.User == nil {
		uc.recordAttempt("", request.Department, methodGoogle, constvars.AuditOutcomeDenied, "account unverified", request.RemoteAddr)
		return nil, exceptions.ErrAccountUnverified(nil)
	}

	return uc.establishSession(ctx, upstreamAuth, expected, upstreamAuth.User.Email, methodGoogle, request.RemoteAddr)
}

func (uc *authUsecase) Register(ctx context.Context, request *requests.Register) error {
	department := models.ParseDepartment(request.Department)
	if !department.Known() {
		return exceptions.ErrUnknownDepartment(nil)
	}
	if department == models.DepartmentAdmin && request.Password == "" {
		return exceptions.ErrPasswordRequired(nil)
	}

	upstreamRequest := &requests.UpstreamRegister{
		FullName:   request.FullName,
		Email:      request.Email,
		Department: request.Department,
	}
	if department == models.DepartmentAdmin {
		upstreamRequest.Password = request.Password
	}

	if err := uc.UsersClient.Register(ctx, upstreamRequest); err != nil {
		uc.recordAttempt(request.Email, request.Department, methodRegister, constvars.AuditOutcomeDenied, "upstream rejection", request.RemoteAddr)
		return err
	}

	uc.recordAttempt(request.Email, request.Department, methodRegister, constvars.AuditOutcomeGranted, "", request.RemoteAddr)
	uc.publishEvent(constvars.EventUserRegistered, request.Email, request.Department)
	return nil
}

func (uc *authUsecase) Logout(ctx context.Context, sessionID string) error {
	return uc.SessionService.Clear(ctx, sessionID)
}

// establishSession enforces the department-match invariant and only
// then touches the session store: every failure path leaves the store
// exactly as it was.
func (uc *authUsecase) establishSession(ctx context.Context, upstreamAuth *responses.UpstreamAuth, expected models.Department, email, method, remoteAddr string) (*responses.Login, error) {
	if upstreamAuth.User == nil || models.ParseDepartment(upstreamAuth.User.Department) != expected {
		uc.recordAttempt(email, expected.String(), method, constvars.AuditOutcomeDenied, "department mismatch", remoteAddr)
		uc.publishEvent(constvars.EventLoginDenied, email, expected.String())
		return nil, exceptions.ErrDepartmentMismatch(nil)
	}

	identity := models.Identity{
		FullName:   upstreamAuth.User.FullName,
		Email:      upstreamAuth.User.Email,
		Department: expected,
	}
	tokens := models.Tokens{Access: upstreamAuth.Access, Refresh: upstreamAuth.Refresh}

	sessionID := uuid.New().String()
	if err := uc.SessionService.Save(ctx, sessionID, tokens, identity); err != nil {
		return nil, err
	}

	expiry := time.Duration(uc.InternalConfig.JWT.ExpTimeInHour) * time.Hour
	tokenString, err := utils.GenerateJWT(sessionID, uc.InternalConfig.JWT.Secret, expiry)
	if err != nil {
		return nil, err
	}

	uc.recordAttempt(identity.Email, expected.String(), method, constvars.AuditOutcomeGranted, "", remoteAddr)
	uc.publishEvent(constvars.EventLoginGranted, identity.Email, expected.String())

	return &responses.Login{
		Token: tokenString,
		User:  identity,
		Home:  constvars.PathDashboard + "/" + expected.String(),
	}, nil
}

// recordAttempt and publishEvent are best effort: the audit trail and
// the broker never fail an authentication call.
func (uc *authUsecase) recordAttempt(email, department, method, outcome, reason, remoteAddr string) {
	ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
	defer cancel()

	attempt := &models.LoginAttempt{
		Email:      email,
		Department: department,
		Method:     method,
		Outcome:    outcome,
		Reason:     reason,
		RemoteAddr: remoteAddr,
		CreatedAt:  time.Now().UTC(),
	}
	if err := uc.AuditRepository.RecordLoginAttempt(ctx, attempt); err != nil {
		uc.Log.Warn(constvars.ErrDevAuditWrite, zap.Error(err))
	}
}

func (uc *authUsecase) publishEvent(eventType, email, department string) {
	ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
	defer cancel()

	event := &models.AuthEvent{
		Type:       eventType,
		Email:      email,
		Department: department,
		OccurredAt: time.Now().UTC(),
	}
	if err := uc.EventPublisher.PublishAuthEvent(ctx, event); err != nil {
		uc.Log.Warn(constvars.ErrDevEventPublish, zap.Error(err))
	}
}
