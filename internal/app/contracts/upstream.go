package contracts

import (
	"context"

	"medicapp-gateway/internal/pkg/dto/requests"
	"medicapp-gateway/internal/pkg/dto/responses"
)

// UsersClient talks to the remote hospital users API. The gateway never
// stores credentials; it only forwards them and keeps the issued tokens.
type UsersClient interface {
	Login(ctx context.Context, request *requests.UpstreamLogin) (*responses.UpstreamAuth, error)
	GoogleLogin(ctx context.Context, request *requests.UpstreamGoogleLogin) (*responses.UpstreamAuth, error)
	Register(ctx context.Context, request *requests.UpstreamRegister) error
}
