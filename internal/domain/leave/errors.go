package leave

import (
	"errors"
	"fmt"
	"time"
)

var (
	ErrLeaveRequestNotFound = errors.New("leave request not found")
	ErrAlreadyProcessed     = errors.New("leave request already processed")
	ErrUnauthorizedAccess   = errors.New("unauthorized access to leave request")
	ErrSlotNotFound         = errors.New("leave slot not found")
)

// InsufficientBalanceError is returned at submission time when the
// requested span exceeds the requester's remaining balance.
type InsufficientBalanceError struct {
	Requested int
	Available int
}

func (e *InsufficientBalanceError) Error() string {
	return fmt.Sprintf("insufficient leave balance: need %d but only have %d", e.Requested, e.Available)
}

// CapacityExceededError is returned at approval time, naming the first
// saturated date in the request's range.
type CapacityExceededError struct {
	Date time.Time
}

func (e *CapacityExceededError) Error() string {
	return fmt.Sprintf("leave capacity exceeded for %s", e.Date.Format("2006-01-02"))
}
