package user

import (
	"github.com/leavedesk/leave-backend-go/internal/pkg/validator"
)

// UserResponse represents user data in API responses
type UserResponse struct {
	ID           string  `json:"id"`
	CompanyCode  string  `json:"company_code"`
	Name         *string `json:"name,omitempty"`
	Email        *string `json:"email,omitempty"`
	Role         string  `json:"role"`
	ProjectID    *string `json:"project_id,omitempty"`
	LeaveBalance int     `json:"leave_balance"`
	CreatedAt    string  `json:"created_at"`
	UpdatedAt    string  `json:"updated_at"`
}

// CreateUserRequest represents an admin provisioning a new user
type CreateUserRequest struct {
	Name         string  `json:"name"`
	CompanyCode  string  `json:"company_code"`
	Email        *string `json:"email,omitempty"`
	Password     string  `json:"password"`
	Role         string  `json:"role"`
	ProjectID    *string `json:"project_id,omitempty"`
	LeaveBalance *int    `json:"leave_balance,omitempty"`
}

func (r *CreateUserRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.Name) {
		errs = append(errs, validator.ValidationError{
			Field:   "name",
			Message: "name is required",
		})
	}

	if validator.IsEmpty(r.CompanyCode) {
		errs = append(errs, validator.ValidationError{
			Field:   "company_code",
			Message: "company_code is required",
		})
	} else if !validator.IsValidCompanyCode(r.CompanyCode) {
		errs = append(errs, validator.ValidationError{
			Field:   "company_code",
			Message: "invalid company code format",
		})
	}

	if r.Email != nil && !validator.IsValidEmail(*r.Email) {
		errs = append(errs, validator.ValidationError{
			Field:   "email",
			Message: "invalid email format",
		})
	}

	if validator.IsEmpty(r.Password) {
		errs = append(errs, validator.ValidationError{
			Field:   "password",
			Message: "password is required",
		})
	} else if len(r.Password) < 8 {
		errs = append(errs, validator.ValidationError{
			Field:   "password",
			Message: "password must be at least 8 characters",
		})
	}

	if validator.IsEmpty(r.Role) {
		errs = append(errs, validator.ValidationError{
			Field:   "role",
			Message: "role is required",
		})
	} else {
		validRoles := []string{string(RoleStaff), string(RoleSupervisor), string(RoleAdmin), string(RoleHR)}
		if !validator.IsInSlice(r.Role, validRoles) {
			errs = append(errs, validator.ValidationError{
				Field:   "role",
				Message: "invalid role",
			})
		}
	}

	if r.LeaveBalance != nil && *r.LeaveBalance < 0 {
		errs = append(errs, validator.ValidationError{
			Field:   "leave_balance",
			Message: "leave_balance must not be negative",
		})
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

// UpdateUserRequest represents request to update user
type UpdateUserRequest struct {
	ID           string  `json:"id"`
	Name         *string `json:"name,omitempty"`
	Email        *string `json:"email,omitempty"`
	Role         *string `json:"role,omitempty"`
	ProjectID    *string `json:"project_id,omitempty"`
	LeaveBalance *int    `json:"leave_balance,omitempty"`
}

func (r *UpdateUserRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.ID) {
		errs = append(errs, validator.ValidationError{
			Field:   "id",
			Message: "id is required",
		})
	}

	if r.Email != nil {
		if validator.IsEmpty(*r.Email) {
			errs = append(errs, validator.ValidationError{
				Field:   "email",
				Message: "email must not be empty",
			})
		} else if !validator.IsValidEmail(*r.Email) {
			errs = append(errs, validator.ValidationError{
				Field:   "email",
				Message: "invalid email format",
			})
		}
	}

	if r.Role != nil {
		validRoles := []string{string(RoleStaff), string(RoleSupervisor), string(RoleAdmin), string(RoleHR)}
		if !validator.IsInSlice(*r.Role, validRoles) {
			errs = append(errs, validator.ValidationError{
				Field:   "role",
				Message: "invalid role",
			})
		}
	}

	if r.LeaveBalance != nil && *r.LeaveBalance < 0 {
		errs = append(errs, validator.ValidationError{
			Field:   "leave_balance",
			Message: "leave_balance must not be negative",
		})
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

// ToResponse converts a User entity to its API representation
func (u *User) ToResponse() UserResponse {
	return UserResponse{
		ID:           u.ID,
		CompanyCode:  u.CompanyCode,
		Name:         u.Name,
		Email:        u.Email,
		Role:         string(u.Role),
		ProjectID:    u.ProjectID,
		LeaveBalance: u.LeaveBalance,
		CreatedAt:    u.CreatedAt.Format("2006-01-02T15:04:05Z07:00"),
		UpdatedAt:    u.UpdatedAt.Format("2006-01-02T15:04:05Z07:00"),
	}
}
