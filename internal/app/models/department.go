package models

// Department identifies the ward a dashboard session belongs to. Every
// navigable destination and every downstream data fetch is scoped by it.
type Department string

const (
	DepartmentAdmin     Department = "admin"
	DepartmentDoctor    Department = "doctor"
	DepartmentNurse     Department = "nurse"
	DepartmentLab       Department = "lab"
	DepartmentReception Department = "reception"
	DepartmentCheckout  Department = "checkout"
	DepartmentPharmacy  Department = "pharmacy"

	// DepartmentNone marks an anonymous session.
	DepartmentNone Department = "none"
)

var knownDepartments = map[Department]bool{
	DepartmentAdmin:     true,
	DepartmentDoctor:    true,
	DepartmentNurse:     true,
	DepartmentLab:       true,
	DepartmentReception: true,
	DepartmentCheckout:  true,
	DepartmentPharmacy:  true,
}

// ParseDepartment maps a raw string onto the closed enumeration.
// Anything outside it, including the empty string, parses to
// DepartmentNone; callers decide whether that is an error.
func ParseDepartment(raw string) Department {
	department := Department(raw)
	if knownDepartments[department] {
		return department
	}
	return DepartmentNone
}

func (d Department) Known() bool {
	return knownDepartments[d]
}

func (d Department) String() string {
	return string(d)
}
