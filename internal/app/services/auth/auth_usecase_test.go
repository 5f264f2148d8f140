package auth

import (
	"context"
	"errors"
	"net/http"
	"testing"

	"medicapp-gateway/internal/app/config"
	"medicapp-gateway/internal/app/models"
	"medicapp-gateway/internal/pkg/dto/requests"
	"medicapp-gateway/internal/pkg/dto/responses"
	"medicapp-gateway/internal/pkg/exceptions"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"go.uber.org/zap"
)

type MockUsersClient struct {
	mock.Mock
}

func (m *MockUsersClient) Login(ctx context.Context, request *requests.UpstreamLogin) (*responses.UpstreamAuth, error) {
	args := m.Called(ctx, request)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*responses.UpstreamAuth), args.Error(1)
}

func (m *MockUsersClient) GoogleLogin(ctx context.Context, request *requests.UpstreamGoogleLogin) (*responses.UpstreamAuth, error) {
	args := m.Called(ctx, request)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*responses.UpstreamAuth), args.Error(1)
}

func (m *MockUsersClient) Register(ctx context.Context, request *requests.UpstreamRegister) error {
	args := m.Called(ctx, request)
	return args.Error(0)
}

// fakeSessionService records writes so tests can assert the store was
// left untouched on denial paths.
type fakeSessionService struct {
	saved      map[string]models.Identity
	cleared    []string
	saveErr    error
	saveCalled int
}

func newFakeSessionService() *fakeSessionService {
	return &fakeSessionService{saved: make(map[string]models.Identity)}
}

func (f *fakeSessionService) Save(_ context.Context, sessionID string, _ models.Tokens, identity models.Identity) error {
	f.saveCalled++
	if f.saveErr != nil {
		return f.saveErr
	}
	f.saved[sessionID] = identity
	return nil
}

func (f *fakeSessionService) Load(_ context.Context, sessionID string) *models.Session {
	return models.AnonymousSession(sessionID)
}

func (f *fakeSessionService) Clear(_ context.Context, sessionID string) error {
	f.cleared = append(f.cleared, sessionID)
	return nil
}

type nopAudit struct{}

func (nopAudit) RecordLoginAttempt(context.Context, *models.LoginAttempt) error { return nil }

type nopEvents struct{}

func (nopEvents) PublishAuthEvent(context.Context, *models.AuthEvent) error { return nil }

func testInternalConfig() *config.InternalConfig {
	return &config.InternalConfig{
		JWT: config.JWT{Secret: "test-secret", ExpTimeInHour: 1},
	}
}

func doctorUpstreamAuth() *responses.UpstreamAuth {
	return &responses.UpstreamAuth{
		Access:  "upstream-access",
		Refresh: "upstream-refresh",
		User: &responses.UpstreamUser{
			FullName:   "Budi Santoso",
			Email:      "budi@medicapp.test",
			Department: "doctor",
		},
	}
}

func TestLogin_Success(t *testing.T) {
	usersClient := new(MockUsersClient)
	usersClient.On("Login", mock.Anything, mock.Anything).Return(doctorUpstreamAuth(), nil)
	sessionService := newFakeSessionService()
	usecase := NewAuthUsecase(usersClient, sessionService, nopAudit{}, nopEvents{}, testInternalConfig(), zap.NewNop())

	result, err := usecase.Login(context.Background(), &requests.Login{
		Email:      "budi@medicapp.test",
		Password:   "correct-horse",
		Department: "doctor",
	})

	assert.NoError(t, err)
	assert.NotEmpty(t, result.Token)
	assert.Equal(t, "/dashboard/doctor", result.Home)
	assert.Equal(t, models.DepartmentDoctor, result.User.Department)
	assert.Equal(t, 1, sessionService.saveCalled)
	usersClient.AssertExpectations(t)
}

func TestLogin_UnknownDepartmentRejectedBeforeUpstream(t *testing.T) {
	usersClient := new(MockUsersClient)
	sessionService := newFakeSessionService()
	usecase := NewAuthUsecase(usersClient, sessionService, nopAudit{}, nopEvents{}, testInternalConfig(), zap.NewNop())

	_, err := usecase.Login(context.Background(), &requests.Login{
		Email:      "budi@medicapp.test",
		Password:   "correct-horse",
		Department: "janitor",
	})

	var customErr *exceptions.CustomError
	assert.ErrorAs(t, err, &customErr)
	assert.Equal(t, http.StatusBadRequest, customErr.StatusCode)
	usersClient.AssertNotCalled(t, "Login")
	assert.Zero(t, sessionService.saveCalled)
}

func TestLogin_DepartmentMismatchLeavesStoreUntouched(t *testing.T) {
	usersClient := new(MockUsersClient)
	usersClient.On("Login", mock.Anything, mock.Anything).Return(doctorUpstreamAuth(), nil)
	sessionService := newFakeSessionService()
	usecase := NewAuthUsecase(usersClient, sessionService, nopAudit{}, nopEvents{}, testInternalConfig(), zap.NewNop())

	_, err := usecase.Login(context.Background(), &requests.Login{
		Email:      "budi@medicapp.test",
		Password:   "correct-horse",
		Department: "nurse",
	})

	var customErr *exceptions.CustomError
	assert.ErrorAs(t, err, &customErr)
	assert.Equal(t, http.StatusForbidden, customErr.StatusCode)
	assert.Zero(t, sessionService.saveCalled)
}

func TestLogin_UpstreamRejectionPropagates(t *testing.T) {
	usersClient := new(MockUsersClient)
	usersClient.On("Login", mock.Anything, mock.Anything).
		Return(nil, exceptions.ErrInvalidCredentials(nil, "Incorrect email or password."))
	sessionService := newFakeSessionService()
	usecase := NewAuthUsecase(usersClient, sessionService, nopAudit{}, nopEvents{}, testInternalConfig(), zap.NewNop())

	_, err := usecase.Login(context.Background(), &requests.Login{
		Email:      "budi@medicapp.test",
		Password:   "wrong-password",
		Department: "doctor",
	})

	var customErr *exceptions.CustomError
	assert.ErrorAs(t, err, &customErr)
	assert.Equal(t, http.StatusUnauthorized, customErr.StatusCode)
	assert.Equal(t, "Incorrect email or password.", customErr.ClientMessage)
	assert.Zero(t, sessionService.saveCalled)
}

func TestGoogleLogin_UnverifiedAccountCreatesNoSession(t *testing.T) {
	usersClient := new(MockUsersClient)
	usersClient.On("GoogleLogin", mock.Anything, mock.Anything).
		Return(&responses.UpstreamAuth{}, nil)
	sessionService := newFakeSessionService()
	usecase := NewAuthUsecase(usersClient, sessionService, nopAudit{}, nopEvents{}, testInternalConfig(), zap.NewNop())

	_, err := usecase.GoogleLogin(context.Background(), &requests.GoogleLogin{
		Token:      "google-id-token",
		Department: "doctor",
	})

	var customErr *exceptions.CustomError
	assert.ErrorAs(t, err, &customErr)
	assert.Equal(t, http.StatusForbidden, customErr.StatusCode)
	assert.Zero(t, sessionService.saveCalled)
}

func TestGoogleLogin_Success(t *testing.T) {
	usersClient := new(MockUsersClient)
	usersClient.On("GoogleLogin", mock.Anything, mock.Anything).Return(doctorUpstreamAuth(), nil)
	sessionService := newFakeSessionService()
	usecase := NewAuthUsecase(usersClient, sessionService, nopAudit{}, nopEvents{}, testInternalConfig(), zap.NewNop())

	result, err := usecase.GoogleLogin(context.Background(), &requests.GoogleLogin{
		Token:      "google-id-token",
		Department: "doctor",
	})

	assert.NoError(t, err)
	assert.NotEmpty(t, result.Token)
	assert.Equal(t, 1, sessionService.saveCalled)
}

func TestRegister_AdminRequiresPassword(t *testing.T) {
	usersClient := new(MockUsersClient)
	usecase := NewAuthUsecase(usersClient, newFakeSessionService(), nopAudit{}, nopEvents{}, testInternalConfig(), zap.NewNop())

	err := usecase.Register(context.Background(), &requests.Register{
		FullName:   "Budi Santoso",
		Email:      "budi@medicapp.test",
		Department: "admin",
	})

	var customErr *exceptions.CustomError
	assert.ErrorAs(t, err, &customErr)
	assert.Equal(t, http.StatusBadRequest, customErr.StatusCode)
	usersClient.AssertNotCalled(t, "Register")
}

func TestRegister_NonAdminPasswordNotForwarded(t *testing.T) {
	usersClient := new(MockUsersClient)
	usersClient.On("Register", mock.Anything, mock.MatchedBy(func(request *requests.UpstreamRegister) bool {
		return request.Password == ""
	})).Return(nil)
	usecase := NewAuthUsecase(usersClient, newFakeSessionService(), nopAudit{}, nopEvents{}, testInternalConfig(), zap.NewNop())

	err := usecase.Register(context.Background(), &requests.Register{
		FullName:   "Budi Santoso",
		Email:      "budi@medicapp.test",
		Department: "doctor",
		Password:   "should-be-dropped",
	})

	assert.NoError(t, err)
	usersClient.AssertExpectations(t)
}

func TestRegister_NeverCreatesSession(t *testing.T) {
	usersClient := new(MockUsersClient)
	usersClient.On("Register", mock.Anything, mock.Anything).Return(nil)
	sessionService := newFakeSessionService()
	usecase := NewAuthUsecase(usersClient, sessionService, nopAudit{}, nopEvents{}, testInternalConfig(), zap.NewNop())

	err := usecase.Register(context.Background(), &requests.Register{
		FullName:   "Siti Rahma",
		Email:      "siti@medicapp.test",
		Department: "lab",
	})

	assert.NoError(t, err)
	assert.Zero(t, sessionService.saveCalled)
}

func TestLogout_ClearsSession(t *testing.T) {
	sessionService := newFakeSessionService()
	usecase := NewAuthUsecase(new(MockUsersClient), sessionService, nopAudit{}, nopEvents{}, testInternalConfig(), zap.NewNop())

	err := usecase.Logout(context.Background(), "sid-1")

	assert.NoError(t, err)
	assert.Equal(t, []string{"sid-1"}, sessionService.cleared)
}

func TestLogin_SessionStoreFailurePropagates(t *testing.T) {
	usersClient := new(MockUsersClient)
	usersClient.On("Login", mock.Anything, mock.Anything).Return(doctorUpstreamAuth(), nil)
	sessionService := newFakeSessionService()
	sessionService.saveErr = errors.New("marshal failure")
	usecase := NewAuthUsecase(usersClient, sessionService, nopAudit{}, nopEvents{}, testInternalConfig(), zap.NewNop())

	result, err := usecase.Login(context.Background(), &requests.Login{
		Email:      "budi@medicapp.test",
		Password:   "correct-horse",
		Department: "doctor",
	})

	assert.Error(t, err)
	assert.Nil(t, result)
}
