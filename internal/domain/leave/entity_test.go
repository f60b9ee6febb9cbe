package leave

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func TestDaysInclusive(t *testing.T) {
	cases := []struct {
		name  string
		start time.Time
		end   time.Time
		want  int
	}{
		{"single day", date(2025, 7, 1), date(2025, 7, 1), 1},
		{"three days", date(2025, 12, 20), date(2025, 12, 22), 3},
		{"full week", date(2025, 3, 3), date(2025, 3, 9), 7},
		{"across month boundary", date(2025, 1, 30), date(2025, 2, 2), 4},
		{"across year boundary", date(2025, 12, 30), date(2026, 1, 2), 4},
		{"leap february", date(2024, 2, 28), date(2024, 3, 1), 3},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			assert.Equal(t, c.want, DaysInclusive(c.start, c.end))
		})
	}
}

func TestDaysInclusiveIgnoresTimeOfDay(t *testing.T) {
	start := time.Date(2025, 12, 20, 23, 30, 0, 0, time.UTC)
	end := time.Date(2025, 12, 22, 0, 15, 0, 0, time.UTC)
	assert.Equal(t, 3, DaysInclusive(start, end))
}

func TestDatesInRange(t *testing.T) {
	dates := DatesInRange(date(2025, 12, 20), date(2025, 12, 22))
	assert.Len(t, dates, 3)
	assert.Equal(t, date(2025, 12, 20), dates[0])
	assert.Equal(t, date(2025, 12, 21), dates[1])
	assert.Equal(t, date(2025, 12, 22), dates[2])

	single := DatesInRange(date(2025, 7, 1), date(2025, 7, 1))
	assert.Len(t, single, 1)
}

func TestRequestStatusIsTerminal(t *testing.T) {
	assert.False(t, RequestStatusPending.IsTerminal())
	assert.False(t, RequestStatusHRPending.IsTerminal())
	assert.True(t, RequestStatusApproved.IsTerminal())
	assert.True(t, RequestStatusRejected.IsTerminal())
}

func TestLeaveSlotHasCapacity(t *testing.T) {
	slot := LeaveSlot{MaxSlots: DefaultMaxSlots, UsedSlots: 0}
	assert.True(t, slot.HasCapacity())

	slot.UsedSlots = 1
	assert.False(t, slot.HasCapacity())

	slot = LeaveSlot{MaxSlots: 3, UsedSlots: 2}
	assert.True(t, slot.HasCapacity())

	slot.UsedSlots = 3
	assert.False(t, slot.HasCapacity())
}
