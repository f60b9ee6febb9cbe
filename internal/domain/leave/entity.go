package leave

import (
	"time"
)

type RequestStatus string

const (
	RequestStatusPending  RequestStatus = "pending"
	RequestStatusApproved RequestStatus = "approved"
	RequestStatusRejected RequestStatus = "rejected"

	// RequestStatusHRPending exists in the schema but no transition
	// produces or consumes it. Kept so stored rows with the value still
	// scan; do not emit it.
	RequestStatusHRPending RequestStatus = "hr_pending"
)

// IsTerminal reports whether no further decision may be taken on a
// request in this status.
func (s RequestStatus) IsTerminal() bool {
	return s == RequestStatusApproved || s == RequestStatusRejected
}

// LeaveRequest entity
type LeaveRequest struct {
	ID           string
	UserID       string
	SupervisorID *string
	Status       RequestStatus

	StartDate time.Time
	EndDate   time.Time
	DaysCount int
	Reason    *string

	CreatedAt time.Time
	UpdatedAt time.Time

	// Joined fields (for responses)
	RequesterName  *string
	RequesterEmail *string
	ProjectID      *string
	ProjectName    *string
	SupervisorName *string
}

// LeaveSlot tracks daily leave capacity for one project. Created lazily
// on first approval touching the date.
type LeaveSlot struct {
	ID        string
	ProjectID string
	Date      time.Time
	MaxSlots  int
	UsedSlots int
	CreatedAt time.Time
	UpdatedAt time.Time
}

// DefaultMaxSlots is the conservative cap applied when a slot is created
// lazily without explicit admin configuration.
const DefaultMaxSlots = 1

// HasCapacity reports whether one more approval fits on this day.
func (s *LeaveSlot) HasCapacity() bool {
	return s.UsedSlots < s.MaxSlots
}

// DaysInclusive returns the day count of the inclusive [start, end] span.
// Both bounds are treated as calendar dates; time-of-day is ignored.
func DaysInclusive(start, end time.Time) int {
	startDay := time.Date(start.Year(), start.Month(), start.Day(), 0, 0, 0, 0, time.UTC)
	endDay := time.Date(end.Year(), end.Month(), end.Day(), 0, 0, 0, 0, time.UTC)
	return int(endDay.Sub(startDay).Hours()/24) + 1
}

// DatesInRange expands the inclusive [start, end] span into individual
// calendar days, one per capacity slot to check.
func DatesInRange(start, end time.Time) []time.Time {
	startDay := time.Date(start.Year(), start.Month(), start.Day(), 0, 0, 0, 0, time.UTC)
	endDay := time.Date(end.Year(), end.Month(), end.Day(), 0, 0, 0, 0, time.UTC)

	var dates []time.Time
	for d := startDay; !d.After(endDay); d = d.AddDate(0, 0, 1) {
		dates = append(dates, d)
	}
	return dates
}
