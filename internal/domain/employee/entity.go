package employee

type Role string

const (
	RoleAdmin    Role = "admin"    // Manages users, tasks and reports
	RoleEmployee Role = "employee" // Clocks in/out and accrues points
)

// ValidRole reports whether r is one of the known roles.
func ValidRole(r Role) bool {
	return r == RoleAdmin || r == RoleEmployee
}

// Employee is keyed by email across every record set. PasswordHash stays
// nil until the first successful login sets it.
type Employee struct {
	Email        string
	Name         string
	Role         Role
	Schedule     string
	PasswordHash *string
}

// IsAdmin checks if the employee holds the admin role.
func (e *Employee) IsAdmin() bool {
	return e.Role == RoleAdmin
}

// HasPassword reports whether a password has been set yet.
func (e *Employee) HasPassword() bool {
	return e.PasswordHash != nil && *e.PasswordHash != ""
}
