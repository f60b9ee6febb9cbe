package project

import (
	"github.com/leavedesk/leave-backend-go/internal/pkg/validator"
)

// ProjectResponse represents project data in API responses
type ProjectResponse struct {
	ID        string  `json:"id"`
	Name      string  `json:"name"`
	Location  *string `json:"location,omitempty"`
	AdminID   string  `json:"admin_id"`
	CreatedAt string  `json:"created_at"`
	UpdatedAt string  `json:"updated_at"`
}

// CreateProjectRequest represents request to create a project
type CreateProjectRequest struct {
	Name     string  `json:"name"`
	Location *string `json:"location,omitempty"`
	AdminID  string  `json:"admin_id"`
}

func (r *CreateProjectRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.Name) {
		errs = append(errs, validator.ValidationError{
			Field:   "name",
			Message: "name is required",
		})
	}

	if validator.IsEmpty(r.AdminID) {
		errs = append(errs, validator.ValidationError{
			Field:   "admin_id",
			Message: "admin_id is required",
		})
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

// UpdateProjectRequest represents request to update a project
type UpdateProjectRequest struct {
	ID       string  `json:"id"`
	Name     *string `json:"name,omitempty"`
	Location *string `json:"location,omitempty"`
	AdminID  *string `json:"admin_id,omitempty"`
}

func (r *UpdateProjectRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.ID) {
		errs = append(errs, validator.ValidationError{
			Field:   "id",
			Message: "id is required",
		})
	}

	if r.Name != nil && validator.IsEmpty(*r.Name) {
		errs = append(errs, validator.ValidationError{
			Field:   "name",
			Message: "name must not be empty",
		})
	}

	if r.AdminID != nil && validator.IsEmpty(*r.AdminID) {
		errs = append(errs, validator.ValidationError{
			Field:   "admin_id",
			Message: "admin_id must not be empty",
		})
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

// ToResponse converts a Project entity to its API representation
func (p *Project) ToResponse() ProjectResponse {
	return ProjectResponse{
		ID:        p.ID,
		Name:      p.Name,
		Location:  p.Location,
		AdminID:   p.AdminID,
		CreatedAt: p.CreatedAt.Format("2006-01-02T15:04:05Z07:00"),
		UpdatedAt: p.UpdatedAt.Format("2006-01-02T15:04:05Z07:00"),
	}
}
