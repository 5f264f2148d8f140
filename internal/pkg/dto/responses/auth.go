package responses

import "medicapp-gateway/internal/app/models"

// Login carries the gateway token plus the identity the dashboard
// renders in its navbar.
type Login struct {
	Token string          `json:"token"`
	User  models.Identity `json:"user"`
	// Home is the role landing path the client navigates to next.
	Home string `json:"home"`
}

// UpstreamAuth is the success shape shared by the upstream login and
// google login endpoints. A 2xx google response may legitimately miss
// Access or User: that marks an unverified account.
type UpstreamAuth struct {
	Access  string        `json:"access"`
	Refresh string        `json:"refresh"`
	User    *UpstreamUser `json:"user"`
}

type UpstreamUser struct {
	FullName   string `json:"full_name"`
	Email      string `json:"email"`
	Department string `json:"department"`
}

// UpstreamError is the remote API's error body.
type UpstreamError struct {
	Detail string `json:"detail"`
}
