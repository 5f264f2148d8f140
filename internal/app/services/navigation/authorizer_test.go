package navigation

import (
	"testing"

	"medicapp-gateway/internal/app/models"

	"github.com/stretchr/testify/assert"
)

func TestAuthorize_PublicPathsPassThrough(t *testing.T) {
	outcome := Authorize(models.DepartmentNone, "/")

	assert.Equal(t, Allow, outcome.Action)
	assert.Equal(t, "/", outcome.Target)
}

func TestAuthorize_AnonymousDashboardRedirectsToLanding(t *testing.T) {
	paths := []string{
		"/dashboard",
		"/dashboard/lab",
		"/dashboard/lab/test-requests",
		"/dashboard/anything/at/all",
	}

	for _, path := range paths {
		outcome := Authorize(models.DepartmentNone, path)

		assert.Equal(t, RedirectToLanding, outcome.Action, "path %s", path)
		assert.Equal(t, "/", outcome.Target, "path %s", path)
	}
}

func TestAuthorize_BareDashboardRedirectsToRoleHome(t *testing.T) {
	outcome := Authorize(models.DepartmentLab, "/dashboard")

	assert.Equal(t, RedirectToRoleHome, outcome.Action)
	assert.Equal(t, "/dashboard/lab", outcome.Target)
}

func TestAuthorize_OwnSubtreeAllowed(t *testing.T) {
	outcome := Authorize(models.DepartmentLab, "/dashboard/lab/test-requests")

	assert.Equal(t, Allow, outcome.Action)
	assert.Equal(t, "/dashboard/lab/test-requests", outcome.Target)
}

func TestAuthorize_CrossRoleSubtreeRedirectsToOwnHome(t *testing.T) {
	outcome := Authorize(models.DepartmentNurse, "/dashboard/admin/staff")

	assert.Equal(t, RedirectToRoleHome, outcome.Action)
	assert.Equal(t, "/dashboard/nurse", outcome.Target)
}

func TestAuthorize_UnknownSegmentUnderDashboardAllowed(t *testing.T) {
	// Segments that are not a department name are not cross-role access.
	// Whether they resolve to a page is the router's problem.
	outcome := Authorize(models.DepartmentDoctor, "/dashboard/logout")

	assert.Equal(t, Allow, outcome.Action)
	assert.Equal(t, "/dashboard/logout", outcome.Target)
}

func TestAuthorize_TrailingSlashNormalized(t *testing.T) {
	outcome := Authorize(models.DepartmentReception, "/dashboard/")

	assert.Equal(t, RedirectToRoleHome, outcome.Action)
	assert.Equal(t, "/dashboard/reception", outcome.Target)
}
