package leave

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/leavedesk/leave-backend-go/internal/pkg/validator"
)

func TestCreateLeaveRequestRequestValidate(t *testing.T) {
	t.Run("valid range", func(t *testing.T) {
		req := CreateLeaveRequestRequest{StartDate: "2025-12-20", EndDate: "2025-12-22"}
		assert.NoError(t, req.Validate())

		start, end := req.Dates()
		assert.Equal(t, 3, DaysInclusive(start, end))
	})

	t.Run("same day is valid", func(t *testing.T) {
		req := CreateLeaveRequestRequest{StartDate: "2025-07-01", EndDate: "2025-07-01"}
		assert.NoError(t, req.Validate())
	})

	t.Run("missing dates", func(t *testing.T) {
		req := CreateLeaveRequestRequest{}
		err := req.Validate()
		require.Error(t, err)

		var errs validator.ValidationErrors
		require.ErrorAs(t, err, &errs)
		assert.Len(t, errs, 2)
	})

	t.Run("malformed dates", func(t *testing.T) {
		req := CreateLeaveRequestRequest{StartDate: "20-12-2025", EndDate: "2025/12/22"}
		err := req.Validate()
		require.Error(t, err)

		var errs validator.ValidationErrors
		require.ErrorAs(t, err, &errs)
		assert.Len(t, errs, 2)
	})

	t.Run("end before start", func(t *testing.T) {
		req := CreateLeaveRequestRequest{StartDate: "2025-12-22", EndDate: "2025-12-20"}
		err := req.Validate()
		require.Error(t, err)

		var errs validator.ValidationErrors
		require.ErrorAs(t, err, &errs)
		require.Len(t, errs, 1)
		assert.Equal(t, "end_date", errs[0].Field)
	})
}

func TestDecideRequestRequestValidate(t *testing.T) {
	req := DecideRequestRequest{RequestID: "0198d0f2-7b8c-7b4a-8a2b-6b8b8b8b8b8b"}
	assert.NoError(t, req.Validate())

	req = DecideRequestRequest{}
	assert.Error(t, req.Validate())
}

func TestSetMaxSlotsRequestValidate(t *testing.T) {
	req := SetMaxSlotsRequest{ProjectID: "p1", Date: "2025-12-20", MaxSlots: 2}
	assert.NoError(t, req.Validate())

	req.MaxSlots = 0
	assert.Error(t, req.Validate())

	req = SetMaxSlotsRequest{ProjectID: "", Date: "not-a-date", MaxSlots: 1}
	err := req.Validate()
	var errs validator.ValidationErrors
	require.ErrorAs(t, err, &errs)
	assert.Len(t, errs, 2)
}

func TestLeaveRequestFilterValidate(t *testing.T) {
	status := "approved"
	f := LeaveRequestFilter{Status: &status}
	assert.NoError(t, f.Validate())

	bad := "cancelled"
	f.Status = &bad
	assert.Error(t, f.Validate())

	badDate := "2025-13-40"
	f = LeaveRequestFilter{StartDate: &badDate}
	assert.Error(t, f.Validate())
}

func TestInsufficientBalanceErrorMessage(t *testing.T) {
	err := &InsufficientBalanceError{Requested: 3, Available: 2}
	assert.Equal(t, "insufficient leave balance: need 3 but only have 2", err.Error())
}

func TestCapacityExceededErrorMessage(t *testing.T) {
	err := &CapacityExceededError{Date: date(2025, 12, 21)}
	assert.Equal(t, "leave capacity exceeded for 2025-12-21", err.Error())
}
