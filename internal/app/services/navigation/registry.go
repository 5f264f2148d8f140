package navigation

import (
	"strings"

	"medicapp-gateway/internal/app/models"
)

// The registry is static configuration: one ordered destination list
// per department, consumed by both the presenter and the authorizer so
// menus and gating can never drift apart. {role} resolves to the
// session's department at lookup time.

const rolePlaceholder = "{role}"

var sharedHead = []models.Destination{
	{Label: "Overview", PathTemplate: "/dashboard/{role}", Icon: "layout-dashboard"},
}

var sharedTail = []models.Destination{
	{Label: "Profile", PathTemplate: "/dashboard/{role}/profile", Icon: "user-circle"},
	{Label: "Log Out", PathTemplate: "/dashboard/logout", Icon: "log-out"},
}

var registry = map[models.Department][]models.Destination{
	models.DepartmentAdmin: {
		{Label: "Staff", PathTemplate: "/dashboard/{role}/staff", Icon: "users"},
		{Label: "Departments", PathTemplate: "/dashboard/{role}/departments", Icon: "building"},
		{Label: "Facilities", PathTemplate: "/dashboard/{role}/facilities", Icon: "hospital"},
		{Label: "Insurance Providers", PathTemplate: "/dashboard/{role}/insurance-providers", Icon: "shield-check"},
		{Label: "Programs", PathTemplate: "/dashboard/{role}/programs", Icon: "clipboard-list"},
	},
	models.DepartmentDoctor: {
		{Label: "Patients", PathTemplate: "/dashboard/{role}/patients", Icon: "users"},
		{Label: "Programs", PathTemplate: "/dashboard/{role}/programs", Icon: "clipboard-list"},
	},
	models.DepartmentNurse: {
		{Label: "Patients", PathTemplate: "/dashboard/{role}/patients", Icon: "users"},
		{Label: "Programs", PathTemplate: "/dashboard/{role}/programs", Icon: "clipboard-list"},
	},
	models.DepartmentLab: {
		{Label: "Test Requests", PathTemplate: "/dashboard/{role}/test-requests", Icon: "flask-conical"},
	},
	models.DepartmentReception: {
		{Label: "Register Patient", PathTemplate: "/dashboard/{role}/register", Icon: "user-plus"},
		{Label: "Patients", PathTemplate: "/dashboard/{role}/patients", Icon: "users"},
	},
	models.DepartmentCheckout: {
		{Label: "Insurance Claims", PathTemplate: "/dashboard/{role}/insurance-claims", Icon: "shield-check"},
		{Label: "Insurance Providers", PathTemplate: "/dashboard/{role}/insurance-providers", Icon: "hospital"},
	},
	models.DepartmentPharmacy: {
		{Label: "Prescriptions", PathTemplate: "/dashboard/{role}/prescriptions", Icon: "pill"},
	},
}

// DestinationsFor returns the ordered destination list for a role with
// path templates resolved. Unknown roles fall back to the admin list.
// Never empty, never fails.
func DestinationsFor(role models.Department) []models.Destination {
	if !role.Known() {
		role = models.DepartmentAdmin
	}

	templates := make([]models.Destination, 0, len(sharedHead)+len(registry[role])+len(sharedTail))
	templates = append(templates, sharedHead...)
	templates = append(templates, registry[role]...)
	templates = append(templates, sharedTail...)

	resolved := make([]models.Destination, len(templates))
	for i, destination := range templates {
		destination.PathTemplate = strings.ReplaceAll(destination.PathTemplate, rolePlaceholder, role.String())
		resolved[i] = destination
	}
	return resolved
}
