package models

// Identity is the profile slice the dashboard needs from the upstream
// users API.
type Identity struct {
	FullName   string     `json:"full_name"`
	Email      string     `json:"email"`
	Department Department `json:"department"`
}

// Tokens are the opaque bearer credentials issued upstream.
type Tokens struct {
	Access  string `json:"access"`
	Refresh string `json:"refresh"`
}

// Session is either anonymous or fully authenticated; the store never
// returns a partial state.
type Session struct {
	ID       string
	Tokens   Tokens
	Identity Identity
}

func (s *Session) Authenticated() bool {
	return s != nil &&
		s.Tokens.Access != "" &&
		s.Tokens.Refresh != "" &&
		s.Identity.Department.Known()
}

// Role returns the session's department, or DepartmentNone when the
// session is anonymous.
func (s *Session) Role() Department {
	if !s.Authenticated() {
		return DepartmentNone
	}
	return s.Identity.Department
}

// AnonymousSession is what callers receive when nothing valid is stored.
func AnonymousSession(sessionID string) *Session {
	return &Session{ID: sessionID}
}
