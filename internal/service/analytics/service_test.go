package analytics

import (
	"bytes"
	"context"
	"encoding/csv"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"

	"github.com/leavedesk/leave-backend-go/internal/domain/analytics"
)

type fakeRepo struct {
	total, approved, rejected, pending int
	totalDays                          int
	avgDuration                        float64
	trends                             []analytics.MonthlyTrend
	byProject                          []analytics.ProjectUsage
	seasonal                           []analytics.SeasonalPattern
	exportRows                         []analytics.ExportRow
}

func (f *fakeRepo) GetStatusCounts(ctx context.Context) (int, int, int, int, error) {
	return f.total, f.approved, f.rejected, f.pending, nil
}

func (f *fakeRepo) GetDurationStats(ctx context.Context) (int, float64, error) {
	return f.totalDays, f.avgDuration, nil
}

func (f *fakeRepo) GetMonthlyTrends(ctx context.Context, months int) ([]analytics.MonthlyTrend, error) {
	return f.trends, nil
}

func (f *fakeRepo) GetLeaveByProject(ctx context.Context) ([]analytics.ProjectUsage, error) {
	return f.byProject, nil
}

func (f *fakeRepo) GetSeasonalPatterns(ctx context.Context) ([]analytics.SeasonalPattern, error) {
	return f.seasonal, nil
}

func (f *fakeRepo) GetExportRows(ctx context.Context) ([]analytics.ExportRow, error) {
	return f.exportRows, nil
}

func TestGetSummary(t *testing.T) {
	repo := &fakeRepo{
		total:       12,
		approved:    7,
		rejected:    3,
		pending:     2,
		totalDays:   21,
		avgDuration: 3.1666,
	}
	svc := NewAnalyticsService(repo)

	summary, err := svc.GetSummary(context.Background())
	require.NoError(t, err)

	assert.Equal(t, 12, summary.TotalRequests)
	assert.Equal(t, 7, summary.ApprovedCount)
	assert.Equal(t, 3, summary.RejectedCount)
	assert.Equal(t, 2, summary.PendingCount)
	assert.Equal(t, 21, summary.TotalLeaveDays)

	// Rates are percentages rounded to one decimal.
	assert.InDelta(t, 58.3, summary.ApprovalRate, 0.001)
	assert.InDelta(t, 25.0, summary.RejectionRate, 0.001)
	assert.InDelta(t, 16.7, summary.PendingRate, 0.001)
	assert.InDelta(t, 3.2, summary.AvgLeaveDuration, 0.001)
}

func TestGetSummaryEmpty(t *testing.T) {
	svc := NewAnalyticsService(&fakeRepo{})

	summary, err := svc.GetSummary(context.Background())
	require.NoError(t, err)

	assert.Zero(t, summary.TotalRequests)
	assert.Zero(t, summary.ApprovalRate)
	assert.Zero(t, summary.RejectionRate)
	assert.Zero(t, summary.PendingRate)
}

func TestGetReport(t *testing.T) {
	repo := &fakeRepo{
		total:    2,
		approved: 2,
		trends: []analytics.MonthlyTrend{
			{Month: "2025-11", TotalRequests: 1},
			{Month: "2025-12", TotalRequests: 1},
		},
		byProject: []analytics.ProjectUsage{{ProjectName: "Platform"}},
		seasonal:  []analytics.SeasonalPattern{{Quarter: "Q4"}},
	}
	svc := NewAnalyticsService(repo)

	report, err := svc.GetReport(context.Background())
	require.NoError(t, err)

	assert.Equal(t, 2, report.Summary.TotalRequests)
	assert.Len(t, report.MonthlyTrends, 2)
	assert.Len(t, report.LeaveByProject, 1)
	assert.Len(t, report.SeasonalPatterns, 1)
}

func exportFixture() []analytics.ExportRow {
	return []analytics.ExportRow{
		{
			RequestID:      "lr-1",
			RequesterName:  "Alice",
			RequesterEmail: "alice@example.com",
			ProjectName:    "Platform",
			StartDate:      "2025-12-20",
			EndDate:        "2025-12-22",
			DaysCount:      3,
			Status:         "approved",
			Reason:         "family trip",
			SupervisorName: "Bob",
			CreatedAt:      "2025-12-01 09:30",
		},
	}
}

func TestExportCSV(t *testing.T) {
	svc := NewAnalyticsService(&fakeRepo{exportRows: exportFixture()})

	data, err := svc.ExportCSV(context.Background())
	require.NoError(t, err)

	records, err := csv.NewReader(bytes.NewReader(data)).ReadAll()
	require.NoError(t, err)
	require.Len(t, records, 2)

	assert.Equal(t, exportHeader, records[0])
	assert.Equal(t, "lr-1", records[1][0])
	assert.Equal(t, "Alice", records[1][1])
	assert.Equal(t, "3", records[1][6])
	assert.Equal(t, "approved", records[1][7])
}

func TestExportXLSX(t *testing.T) {
	svc := NewAnalyticsService(&fakeRepo{exportRows: exportFixture()})

	data, err := svc.ExportXLSX(context.Background())
	require.NoError(t, err)

	f, err := excelize.OpenReader(bytes.NewReader(data))
	require.NoError(t, err)
	defer f.Close()

	rows, err := f.GetRows("Leave Requests")
	require.NoError(t, err)
	require.Len(t, rows, 2)
	assert.Equal(t, "Request ID", rows[0][0])
	assert.Equal(t, "lr-1", rows[1][0])
	assert.Equal(t, "approved", rows[1][7])
}
