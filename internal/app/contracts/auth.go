package contracts

import (
	"context"

	"medicapp-gateway/internal/pkg/dto/requests"
	"medicapp-gateway/internal/pkg/dto/responses"
)

type AuthUsecase interface {
	Login(ctx context.Context, request *requests.Login) (*responses.Login, error)
	GoogleLogin(ctx context.Context, request *requests.GoogleLogin) (*responses.Login, error)
	// Register never creates a session; the caller logs in afterwards.
	Register(ctx context.Context, request *requests.Register) error
	Logout(ctx context.Context, sessionID string) error
}
