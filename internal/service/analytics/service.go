package analytics

import (
	"bytes"
	"context"
	"encoding/csv"
	"fmt"
	"math"
	"strconv"

	"github.com/xuri/excelize/v2"

	"github.com/leavedesk/leave-backend-go/internal/domain/analytics"
)

// TrendMonths is how far back the monthly trend series reaches.
const TrendMonths = 12

type Service interface {
	GetReport(ctx context.Context) (*analytics.Report, error)
	GetSummary(ctx context.Context) (*analytics.Summary, error)
	ExportCSV(ctx context.Context) ([]byte, error)
	ExportXLSX(ctx context.Context) ([]byte, error)
}

type serviceImpl struct {
	repo analytics.Repository
}

func NewAnalyticsService(repo analytics.Repository) Service {
	return &serviceImpl{repo: repo}
}

// GetSummary implements Service.
func (s *serviceImpl) GetSummary(ctx context.Context) (*analytics.Summary, error) {
	total, approved, rejected, pending, err := s.repo.GetStatusCounts(ctx)
	if err != nil {
		return nil, err
	}

	totalDays, avgDuration, err := s.repo.GetDurationStats(ctx)
	if err != nil {
		return nil, err
	}

	summary := &analytics.Summary{
		TotalRequests:    total,
		ApprovedCount:    approved,
		RejectedCount:    rejected,
		PendingCount:     pending,
		AvgLeaveDuration: round1(avgDuration),
		TotalLeaveDays:   totalDays,
	}

	if total > 0 {
		summary.ApprovalRate = rate(approved, total)
		summary.RejectionRate = rate(rejected, total)
		summary.PendingRate = rate(pending, total)
	}

	return summary, nil
}

// GetReport implements Service.
func (s *serviceImpl) GetReport(ctx context.Context) (*analytics.Report, error) {
	summary, err := s.GetSummary(ctx)
	if err != nil {
		return nil, err
	}

	trends, err := s.repo.GetMonthlyTrends(ctx, TrendMonths)
	if err != nil {
		return nil, err
	}

	byProject, err := s.repo.GetLeaveByProject(ctx)
	if err != nil {
		return nil, err
	}

	seasonal, err := s.repo.GetSeasonalPatterns(ctx)
	if err != nil {
		return nil, err
	}

	return &analytics.Report{
		Summary:          *summary,
		MonthlyTrends:    trends,
		LeaveByProject:   byProject,
		SeasonalPatterns: seasonal,
	}, nil
}

var exportHeader = []string{
	"Request ID", "Requester", "Email", "Project",
	"Start Date", "End Date", "Days", "Status",
	"Reason", "Supervisor", "Submitted At",
}

// ExportCSV implements Service.
func (s *serviceImpl) ExportCSV(ctx context.Context) ([]byte, error) {
	rows, err := s.repo.GetExportRows(ctx)
	if err != nil {
		return nil, err
	}

	var buf bytes.Buffer
	w := csv.NewWriter(&buf)

	if err := w.Write(exportHeader); err != nil {
		return nil, fmt.Errorf("failed to write csv header: %w", err)
	}

	for _, row := range rows {
		record := []string{
			row.RequestID,
			row.RequesterName,
			row.RequesterEmail,
			row.ProjectName,
			row.StartDate,
			row.EndDate,
			strconv.Itoa(row.DaysCount),
			row.Status,
			row.Reason,
			row.SupervisorName,
			row.CreatedAt,
		}
		if err := w.Write(record); err != nil {
			return nil, fmt.Errorf("failed to write csv row: %w", err)
		}
	}

	w.Flush()
	if err := w.Error(); err != nil {
		return nil, err
	}

	return buf.Bytes(), nil
}

// ExportXLSX implements Service.
func (s *serviceImpl) ExportXLSX(ctx context.Context) ([]byte, error) {
	rows, err := s.repo.GetExportRows(ctx)
	if err != nil {
		return nil, err
	}

	f := excelize.NewFile()
	defer f.Close()

	const sheet = "Leave Requests"
	index, err := f.NewSheet(sheet)
	if err != nil {
		return nil, fmt.Errorf("failed to create sheet: %w", err)
	}
	f.SetActiveSheet(index)
	f.DeleteSheet("Sheet1")

	for col, title := range exportHeader {
		cell, err := excelize.CoordinatesToCellName(col+1, 1)
		if err != nil {
			return nil, err
		}
		if err := f.SetCellValue(sheet, cell, title); err != nil {
			return nil, err
		}
	}

	for i, row := range rows {
		values := []interface{}{
			row.RequestID,
			row.RequesterName,
			row.RequesterEmail,
			row.ProjectName,
			row.StartDate,
			row.EndDate,
			row.DaysCount,
			row.Status,
			row.Reason,
			row.SupervisorName,
			row.CreatedAt,
		}
		for col, value := range values {
			cell, err := excelize.CoordinatesToCellName(col+1, i+2)
			if err != nil {
				return nil, err
			}
			if err := f.SetCellValue(sheet, cell, value); err != nil {
				return nil, err
			}
		}
	}

	var buf bytes.Buffer
	if err := f.Write(&buf); err != nil {
		return nil, fmt.Errorf("failed to write workbook: %w", err)
	}

	return buf.Bytes(), nil
}

func rate(part, total int) float64 {
	return round1(float64(part) / float64(total) * 100)
}

func round1(v float64) float64 {
	return math.Round(v*10) / 10
}
