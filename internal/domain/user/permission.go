package user

type Permission string

const (
	// Self Management
	PermissionViewOwnProfile Permission = "profile.view_own"

	// Leave Management
	PermissionLeaveViewOwn Permission = "leave.view_own"
	PermissionLeaveCreate  Permission = "leave.create"
	PermissionLeaveViewAll Permission = "leave.view_all"
	PermissionLeaveApprove Permission = "leave.approve"

	// Capacity Management
	PermissionSlotsView   Permission = "slots.view"
	PermissionSlotsManage Permission = "slots.manage"

	// User / Project Management
	PermissionUserManage    Permission = "user.manage"
	PermissionProjectManage Permission = "project.manage"

	// Analytics
	PermissionAnalyticsView Permission = "analytics.view"
)

// RolePermissions maps roles to their permissions
var RolePermissions = map[Role][]Permission{
	RoleAdmin: {
		// Admin has all permissions
		PermissionViewOwnProfile,
		PermissionLeaveViewOwn,
		PermissionLeaveCreate,
		PermissionLeaveViewAll,
		PermissionLeaveApprove,
		PermissionSlotsView,
		PermissionSlotsManage,
		PermissionUserManage,
		PermissionProjectManage,
		PermissionAnalyticsView,
	},
	RoleSupervisor: {
		// Supervisor decides requests and views team data
		PermissionViewOwnProfile,
		PermissionLeaveViewOwn,
		PermissionLeaveViewAll,
		PermissionLeaveApprove,
		PermissionSlotsView,
	},
	RoleHR: {
		// HR has read-only reporting access
		PermissionViewOwnProfile,
		PermissionLeaveViewAll,
		PermissionAnalyticsView,
	},
	RoleStaff: {
		// Staff submit and track their own requests
		PermissionViewOwnProfile,
		PermissionLeaveViewOwn,
		PermissionLeaveCreate,
	},
}

// HasPermission checks if a role has a specific permission
func HasPermission(role Role, permission Permission) bool {
	permissions, exists := RolePermissions[role]
	if !exists {
		return false
	}

	for _, p := range permissions {
		if p == permission {
			return true
		}
	}

	return false
}
