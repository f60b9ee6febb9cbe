package user

import "time"

type Role string

const (
	RoleStaff      Role = "staff"      // Submits leave requests against own balance
	RoleSupervisor Role = "supervisor" // Approves/rejects requests for their project
	RoleAdmin      Role = "admin"      // Manages users, projects and capacity
	RoleHR         Role = "hr"         // Read-only analytics and reports
)

// AllRoles returns the closed set of valid roles
func AllRoles() []Role {
	return []Role{RoleStaff, RoleSupervisor, RoleAdmin, RoleHR}
}

// DefaultLeaveBalance is the yearly allocation granted to a newly
// provisioned user when the admin does not specify one.
const DefaultLeaveBalance = 20

type User struct {
	ID           string
	CompanyCode  string
	Name         *string
	Email        *string
	PasswordHash *string
	Role         Role
	ProjectID    *string
	LeaveBalance int
	CreatedAt    time.Time
	UpdatedAt    time.Time
	LastSignedIn *time.Time
}

// IsAdmin checks if user is an administrator
func (u *User) IsAdmin() bool {
	return u.Role == RoleAdmin
}

// IsSupervisor checks if user is supervisor or admin
func (u *User) IsSupervisor() bool {
	return u.Role == RoleSupervisor || u.Role == RoleAdmin
}

// IsHR checks if user may view HR analytics
func (u *User) IsHR() bool {
	return u.Role == RoleHR || u.Role == RoleAdmin
}

// CanApprove checks if user can decide leave requests
func (u *User) CanApprove() bool {
	return u.IsSupervisor()
}
