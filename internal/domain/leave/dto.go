package leave

import (
	"time"

	"github.com/leavedesk/leave-backend-go/internal/pkg/validator"
)

// CreateLeaveRequestRequest represents a staff member submitting leave.
// UserID is always taken from the authenticated session, never the body.
type CreateLeaveRequestRequest struct {
	UserID    string  `json:"-"`
	StartDate string  `json:"start_date"`
	EndDate   string  `json:"end_date"`
	Reason    *string `json:"reason,omitempty"`
}

func (r *CreateLeaveRequestRequest) Validate() error {
	var errs validator.ValidationErrors

	var start, end time.Time
	if validator.IsEmpty(r.StartDate) {
		errs = append(errs, validator.ValidationError{
			Field:   "start_date",
			Message: "start_date is required",
		})
	} else {
		var ok bool
		if start, ok = validator.IsValidDate(r.StartDate); !ok {
			errs = append(errs, validator.ValidationError{
				Field:   "start_date",
				Message: "start_date must be formatted as YYYY-MM-DD",
			})
		}
	}

	if validator.IsEmpty(r.EndDate) {
		errs = append(errs, validator.ValidationError{
			Field:   "end_date",
			Message: "end_date is required",
		})
	} else {
		var ok bool
		if end, ok = validator.IsValidDate(r.EndDate); !ok {
			errs = append(errs, validator.ValidationError{
				Field:   "end_date",
				Message: "end_date must be formatted as YYYY-MM-DD",
			})
		}
	}

	if !start.IsZero() && !end.IsZero() && end.Before(start) {
		errs = append(errs, validator.ValidationError{
			Field:   "end_date",
			Message: "end_date must not be before start_date",
		})
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

// Dates returns the parsed start and end dates. Call Validate first.
func (r *CreateLeaveRequestRequest) Dates() (time.Time, time.Time) {
	start, _ := validator.IsValidDate(r.StartDate)
	end, _ := validator.IsValidDate(r.EndDate)
	return start, end
}

// DecideRequestRequest carries an approve/reject decision. SupervisorID
// is taken from the authenticated session.
type DecideRequestRequest struct {
	RequestID    string `json:"request_id"`
	SupervisorID string `json:"-"`
}

func (r *DecideRequestRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.RequestID) {
		errs = append(errs, validator.ValidationError{
			Field:   "request_id",
			Message: "request_id is required",
		})
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

// SetMaxSlotsRequest lets an admin configure daily capacity for a
// project outside the workflow.
type SetMaxSlotsRequest struct {
	ProjectID string `json:"project_id"`
	Date      string `json:"date"`
	MaxSlots  int    `json:"max_slots"`
}

func (r *SetMaxSlotsRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.ProjectID) {
		errs = append(errs, validator.ValidationError{
			Field:   "project_id",
			Message: "project_id is required",
		})
	}

	if _, ok := validator.IsValidDate(r.Date); !ok {
		errs = append(errs, validator.ValidationError{
			Field:   "date",
			Message: "date must be formatted as YYYY-MM-DD",
		})
	}

	if r.MaxSlots < 1 {
		errs = append(errs, validator.ValidationError{
			Field:   "max_slots",
			Message: "max_slots must be at least 1",
		})
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

// LeaveRequestFilter narrows request listings
type LeaveRequestFilter struct {
	UserID    *string
	ProjectID *string
	Status    *string
	StartDate *string
	EndDate   *string
	Page      int
	Limit     int
	SortBy    string
	SortOrder string
}

func (f *LeaveRequestFilter) Validate() error {
	var errs validator.ValidationErrors

	if f.Status != nil {
		validStatuses := []string{
			string(RequestStatusPending),
			string(RequestStatusApproved),
			string(RequestStatusRejected),
			string(RequestStatusHRPending),
		}
		if !validator.IsInSlice(*f.Status, validStatuses) {
			errs = append(errs, validator.ValidationError{
				Field:   "status",
				Message: "invalid status",
			})
		}
	}

	if f.StartDate != nil {
		if _, ok := validator.IsValidDate(*f.StartDate); !ok {
			errs = append(errs, validator.ValidationError{
				Field:   "start_date",
				Message: "start_date must be formatted as YYYY-MM-DD",
			})
		}
	}

	if f.EndDate != nil {
		if _, ok := validator.IsValidDate(*f.EndDate); !ok {
			errs = append(errs, validator.ValidationError{
				Field:   "end_date",
				Message: "end_date must be formatted as YYYY-MM-DD",
			})
		}
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

// LeaveRequestResponse represents a request in API responses
type LeaveRequestResponse struct {
	ID             string  `json:"id"`
	UserID         string  `json:"user_id"`
	RequesterName  *string `json:"requester_name,omitempty"`
	ProjectID      *string `json:"project_id,omitempty"`
	ProjectName    *string `json:"project_name,omitempty"`
	SupervisorID   *string `json:"supervisor_id,omitempty"`
	SupervisorName *string `json:"supervisor_name,omitempty"`
	Status         string  `json:"status"`
	StartDate      string  `json:"start_date"`
	EndDate        string  `json:"end_date"`
	DaysCount      int     `json:"days_count"`
	Reason         *string `json:"reason,omitempty"`
	CreatedAt      string  `json:"created_at"`
	UpdatedAt      string  `json:"updated_at"`
}

// ToResponse converts a LeaveRequest entity to its API representation
func (lr *LeaveRequest) ToResponse() LeaveRequestResponse {
	return LeaveRequestResponse{
		ID:             lr.ID,
		UserID:         lr.UserID,
		RequesterName:  lr.RequesterName,
		ProjectID:      lr.ProjectID,
		ProjectName:    lr.ProjectName,
		SupervisorID:   lr.SupervisorID,
		SupervisorName: lr.SupervisorName,
		Status:         string(lr.Status),
		StartDate:      lr.StartDate.Format("2006-01-02"),
		EndDate:        lr.EndDate.Format("2006-01-02"),
		DaysCount:      lr.DaysCount,
		Reason:         lr.Reason,
		CreatedAt:      lr.CreatedAt.Format(time.RFC3339),
		UpdatedAt:      lr.UpdatedAt.Format(time.RFC3339),
	}
}

// LeaveRequestListResponse is a paginated request listing
type LeaveRequestListResponse struct {
	Requests []LeaveRequestResponse `json:"requests"`
	Total    int64                  `json:"total"`
	Page     int                    `json:"page"`
	Limit    int                    `json:"limit"`
}

// LeaveSlotResponse represents a capacity slot in API responses
type LeaveSlotResponse struct {
	ID        string `json:"id"`
	ProjectID string `json:"project_id"`
	Date      string `json:"date"`
	MaxSlots  int    `json:"max_slots"`
	UsedSlots int    `json:"used_slots"`
}

// ToResponse converts a LeaveSlot entity to its API representation
func (s *LeaveSlot) ToResponse() LeaveSlotResponse {
	return LeaveSlotResponse{
		ID:        s.ID,
		ProjectID: s.ProjectID,
		Date:      s.Date.Format("2006-01-02"),
		MaxSlots:  s.MaxSlots,
		UsedSlots: s.UsedSlots,
	}
}
