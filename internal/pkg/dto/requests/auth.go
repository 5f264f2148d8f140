package requests

// Login is the credential sign-in payload from the dashboard modal.
type Login struct {
	Email      string `json:"email" validate:"required,email"`
	Password   string `json:"password" validate:"required,min=8"`
	Department string `json:"department" validate:"required"`
	RemoteAddr string `json:"-"`
}

// GoogleLogin exchanges a Google-issued ID token plus the desired
// department for a session.
type GoogleLogin struct {
	Token      string `json:"token" validate:"required"`
	Department string `json:"department" validate:"required"`
	RemoteAddr string `json:"-"`
}

// Register is the self-service sign-up payload. Password is only
// meaningful for the admin department; the usecase enforces that.
type Register struct {
	FullName   string `json:"full_name" validate:"required,min=2"`
	Email      string `json:"email" validate:"required,email"`
	Department string `json:"department" validate:"required"`
	Password   string `json:"password" validate:"omitempty,min=8"`
	RemoteAddr string `json:"-"`
}

// Upstream payloads mirror the remote users API bodies.

type UpstreamLogin struct {
	Email      string `json:"email"`
	Password   string `json:"password"`
	Department string `json:"department,omitempty"`
}

type UpstreamGoogleLogin struct {
	Token      string `json:"token"`
	Department string `json:"department"`
}

type UpstreamRegister struct {
	FullName   string `json:"full_name"`
	Email      string `json:"email"`
	Department string `json:"department"`
	Password   string `json:"password,omitempty"`
}
