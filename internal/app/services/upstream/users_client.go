package upstream

import (
	"bytes"
	"context"
	"io"
	"net/http"
	"time"

	"medicapp-gateway/internal/app/config"
	"medicapp-gateway/internal/app/contracts"
	"medicapp-gateway/internal/pkg/constvars"
	"medicapp-gateway/internal/pkg/dto/requests"
	"medicapp-gateway/internal/pkg/dto/responses"
	"medicapp-gateway/internal/pkg/exceptions"

	"github.com/goccy/go-json"
	"github.com/hashicorp/go-retryablehttp"
)

const (
	loginPath       = "/api/users/login/"
	registerPath    = "/api/users/register/"
	googleLoginPath = "/api/users/google/login/"
)

type usersClient struct {
	client  *http.Client
	baseURL string
}

func NewUsersClient(upstreamConfig config.Upstream) contracts.UsersClient {
	retryClient := retryablehttp.NewClient()
	retryClient.RetryMax = upstreamConfig.RetryMax
	retryClient.RetryWaitMin = 500 * time.Millisecond
	retryClient.RetryWaitMax = 5 * time.Second
	retryClient.HTTPClient.Timeout = time.Duration(upstreamConfig.RequestTimeoutInSeconds) * time.Second
	retryClient.Logger = nil

	// Only transport-level failures are retried; a 4xx from the users
	// API is a final answer about the credentials.
	retryClient.CheckRetry = func(ctx context.Context, resp *http.Response, err error) (bool, error) {
		if err != nil {
			return retryablehttp.DefaultRetryPolicy(ctx, resp, err)
		}
		return false, nil
	}

	return &usersClient{
		client:  retryClient.StandardClient(),
		baseURL: upstreamConfig.BaseURL,
	}
}

func (c *usersClient) Login(ctx context.Context, request *requests.UpstreamLogin) (*responses.UpstreamAuth, error) {
	body, status, err := c.post(ctx, loginPath, request)
	if err != nil {
		return nil, err
	}
	if status < 200 || status >= 300 {
		return nil, exceptions.ErrInvalidCredentials(nil, upstreamDetail(body))
	}
	return decodeAuth(body)
}

func (c *usersClient) GoogleLogin(ctx context.Context, request *requests.UpstreamGoogleLogin) (*responses.UpstreamAuth, error) {
	body, status, err := c.post(ctx, googleLoginPath, request)
	if err != nil {
		return nil, err
	}
	if status < 200 || status >= 300 {
		return nil, exceptions.ErrInvalidCredentials(nil, upstreamDetail(body))
	}
	return decodeAuth(body)
}

func (c *usersClient) Register(ctx context.Context, request *requests.UpstreamRegister) error {
	body, status, err := c.post(ctx, registerPath, request)
	if err != nil {
		return err
	}
	if status < 200 || status >= 300 {
		return exceptions.ErrRegistrationRejected(nil, upstreamDetail(body))
	}
	return nil
}

func (c *usersClient) post(ctx context.Context, path string, payload interface{}) ([]byte, int, error) {
	jsonBody, err := json.Marshal(payload)
	if err != nil {
		return nil, 0, exceptions.ErrCannotMarshalJSON(err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+path, bytes.NewReader(jsonBody))
	if err != nil {
		return nil, 0, exceptions.ErrUpstreamRequestBuild(err)
	}
	req.Header.Set(constvars.HeaderContentType, constvars.MIMEApplicationJSON)

	resp, err := c.client.Do(req)
	if err != nil {
		return nil, 0, exceptions.ErrUpstreamUnreachable(err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, 0, exceptions.ErrUpstreamResponseDecode(err)
	}
	return body, resp.StatusCode, nil
}

func decodeAuth(body []byte) (*responses.UpstreamAuth, error) {
	var auth responses.UpstreamAuth
	if err := json.Unmarshal(body, &auth); err != nil {
		return nil, exceptions.ErrUpstreamResponseDecode(err)
	}
	return &auth, nil
}

// upstreamDetail extracts the server-supplied message when present,
// else returns "" so the caller falls back to a generic one.
func upstreamDetail(body []byte) string {
	var upstreamErr responses.UpstreamError
	if err := json.Unmarshal(body, &upstreamErr); err != nil {
		return ""
	}
	return upstreamErr.Detail
}
