package navigation

import (
	"strings"

	"medicapp-gateway/internal/app/models"
	"medicapp-gateway/internal/pkg/constvars"
)

type Action int

const (
	Allow Action = iota
	RedirectToLanding
	RedirectToRoleHome
)

// Outcome is terminal: either render the requested path or redirect to
// Target. Authorize never errors; unknown states fall back to the
// safest redirect.
type Outcome struct {
	Action Action
	Target string
}

// Authorize decides one navigation attempt. The dashboard must never
// render for an anonymous session, and a session may not enter another
// role's subtree: both redirect. Unknown path segments under the
// session's own subtree pass through verbatim; not-found handling is
// someone else's job.
func Authorize(role models.Department, requestedPath string) Outcome {
	if !strings.HasPrefix(requestedPath, constvars.PathDashboard) {
		return Outcome{Action: Allow, Target: requestedPath}
	}

	if !role.Known() {
		return Outcome{Action: RedirectToLanding, Target: constvars.PathLanding}
	}

	roleHome := constvars.PathDashboard + "/" + role.String()

	trimmed := strings.TrimPrefix(requestedPath, constvars.PathDashboard)
	trimmed = strings.Trim(trimmed, "/")
	if trimmed == "" {
		return Outcome{Action: RedirectToRoleHome, Target: roleHome}
	}

	firstSegment := trimmed
	if idx := strings.Index(trimmed, "/"); idx >= 0 {
		firstSegment = trimmed[:idx]
	}

	segmentRole := models.ParseDepartment(firstSegment)
	if segmentRole.Known() && segmentRole != role {
		return Outcome{Action: RedirectToRoleHome, Target: roleHome}
	}

	return Outcome{Action: Allow, Target: requestedPath}
}
