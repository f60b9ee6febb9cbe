package leave

import (
	"context"
	"time"
)

// LeaveRequestRepository - interface for leave_requests table
type LeaveRequestRepository interface {
	Create(ctx context.Context, request LeaveRequest) (LeaveRequest, error)
	GetByID(ctx context.Context, id string) (LeaveRequest, error)

	// GetByIDForUpdate locks the request row for the duration of the
	// surrounding transaction. Approval/rejection load through this so
	// two concurrent decisions serialize on the row.
	GetByIDForUpdate(ctx context.Context, id string) (LeaveRequest, error)

	GetByUserID(ctx context.Context, userID string, filter LeaveRequestFilter) ([]LeaveRequest, int64, error)
	List(ctx context.Context, filter LeaveRequestFilter) ([]LeaveRequest, int64, error)
	UpdateStatus(ctx context.Context, id string, status RequestStatus, supervisorID string) error
}

// LeaveSlotRepository - interface for leave_slots table
type LeaveSlotRepository interface {
	// GetOrCreateForUpdate returns the slot for (projectID, date),
	// inserting one with the default cap when missing, and locks the row
	// for the surrounding transaction.
	GetOrCreateForUpdate(ctx context.Context, projectID string, date time.Time) (LeaveSlot, error)

	IncrementUsed(ctx context.Context, id string) error
	GetByProjectAndRange(ctx context.Context, projectID string, from, to time.Time) ([]LeaveSlot, error)
	SetMaxSlots(ctx context.Context, projectID string, date time.Time, maxSlots int) (LeaveSlot, error)
}
