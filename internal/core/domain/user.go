package domain

// UserRole restricts the set of roles a user can hold.
type UserRole string

const (
	RoleResourceCoordinator UserRole = "resource_coordinator"
	RoleTechManager         UserRole = "tech_manager"
	RoleConsultant          UserRole = "consultant"
	RoleUser                UserRole = "user"
)

// IsValid reports whether the role is one of the known values.
func (r UserRole) IsValid() bool {
	switch r {
	case RoleResourceCoordinator, RoleTechManager, RoleConsultant, RoleUser:
		return true
	}
	return false
}

// User represents an account in the system. PasswordHash never leaves the
// backend; responses are shaped through dto.UserResponse.
type User struct {
	ID           int64    `json:"id"`
	Username     string   `json:"username"`
	PasswordHash string   `json:"-"`
	Role         UserRole `json:"role"`
	Timestamps
}
