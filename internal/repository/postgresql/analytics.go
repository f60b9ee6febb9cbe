package postgresql

import (
	"context"
	"fmt"

	"github.com/leavedesk/leave-backend-go/internal/domain/analytics"
	"github.com/leavedesk/leave-backend-go/internal/pkg/database"
)

type analyticsRepositoryImpl struct {
	db *database.DB
}

func NewAnalyticsRepository(db *database.DB) analytics.Repository {
	return &analyticsRepositoryImpl{db: db}
}

// GetStatusCounts implements analytics.Repository.
func (r *analyticsRepositoryImpl) GetStatusCounts(ctx context.Context) (total, approved, rejected, pending int, err error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT
			COUNT(*),
			COUNT(*) FILTER (WHERE status = 'approved'),
			COUNT(*) FILTER (WHERE status = 'rejected'),
			COUNT(*) FILTER (WHERE status = 'pending')
		FROM leave_requests
	`

	err = q.QueryRow(ctx, query).Scan(&total, &approved, &rejected, &pending)
	if err != nil {
		return 0, 0, 0, 0, fmt.Errorf("failed to count leave requests by status: %w", err)
	}

	return total, approved, rejected, pending, nil
}

// GetDurationStats implements analytics.Repository.
func (r *analyticsRepositoryImpl) GetDurationStats(ctx context.Context) (totalDays int, avgDuration float64, err error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT
			COALESCE(SUM(days_count) FILTER (WHERE status = 'approved'), 0),
			COALESCE(AVG(days_count), 0)
		FROM leave_requests
	`

	err = q.QueryRow(ctx, query).Scan(&totalDays, &avgDuration)
	if err != nil {
		return 0, 0, fmt.Errorf("failed to aggregate leave durations: %w", err)
	}

	return totalDays, avgDuration, nil
}

// GetMonthlyTrends implements analytics.Repository.
func (r *analyticsRepositoryImpl) GetMonthlyTrends(ctx context.Context, months int) ([]analytics.MonthlyTrend, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT
			TO_CHAR(DATE_TRUNC('month', created_at), 'YYYY-MM') AS month,
			COUNT(*),
			COUNT(*) FILTER (WHERE status = 'approved'),
			COUNT(*) FILTER (WHERE status = 'rejected'),
			COUNT(*) FILTER (WHERE status = 'pending'),
			COALESCE(SUM(days_count), 0)
		FROM leave_requests
		WHERE created_at >= DATE_TRUNC('month', NOW()) - ($1 - 1) * INTERVAL '1 month'
		GROUP BY DATE_TRUNC('month', created_at)
		ORDER BY month
	`

	rows, err := q.Query(ctx, query, months)
	if err != nil {
		return nil, fmt.Errorf("failed to query monthly trends: %w", err)
	}
	defer rows.Close()

	var trends []analytics.MonthlyTrend
	for rows.Next() {
		var t analytics.MonthlyTrend
		err := rows.Scan(&t.Month, &t.TotalRequests, &t.ApprovedCount, &t.RejectedCount, &t.PendingCount, &t.TotalDays)
		if err != nil {
			return nil, err
		}
		trends = append(trends, t)
	}

	return trends, rows.Err()
}

// GetLeaveByProject implements analytics.Repository.
func (r *analyticsRepositoryImpl) GetLeaveByProject(ctx context.Context) ([]analytics.ProjectUsage, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT p.id, p.name,
			   COUNT(lr.id),
			   COALESCE(SUM(lr.days_count) FILTER (WHERE lr.status = 'approved'), 0)
		FROM projects p
		LEFT JOIN users u ON u.project_id = p.id
		LEFT JOIN leave_requests lr ON lr.user_id = u.id
		GROUP BY p.id, p.name
		ORDER BY p.name
	`

	rows, err := q.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to query leave by project: %w", err)
	}
	defer rows.Close()

	var usages []analytics.ProjectUsage
	for rows.Next() {
		var u analytics.ProjectUsage
		if err := rows.Scan(&u.ProjectID, &u.ProjectName, &u.RequestCount, &u.TotalDays); err != nil {
			return nil, err
		}
		usages = append(usages, u)
	}

	return usages, rows.Err()
}

// GetSeasonalPatterns implements analytics.Repository.
func (r *analyticsRepositoryImpl) GetSeasonalPatterns(ctx context.Context) ([]analytics.SeasonalPattern, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT 'Q' || EXTRACT(QUARTER FROM start_date)::text AS quarter,
			   COUNT(*),
			   COALESCE(SUM(days_count), 0)
		FROM leave_requests
		GROUP BY quarter
		ORDER BY quarter
	`

	rows, err := q.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to query seasonal patterns: %w", err)
	}
	defer rows.Close()

	var patterns []analytics.SeasonalPattern
	for rows.Next() {
		var p analytics.SeasonalPattern
		if err := rows.Scan(&p.Quarter, &p.RequestCount, &p.TotalDays); err != nil {
			return nil, err
		}
		patterns = append(patterns, p)
	}

	return patterns, rows.Err()
}

// GetExportRows implements analytics.Repository.
func (r *analyticsRepositoryImpl) GetExportRows(ctx context.Context) ([]analytics.ExportRow, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT
			lr.id,
			COALESCE(u.name, ''),
			COALESCE(u.email, ''),
			COALESCE(p.name, ''),
			TO_CHAR(lr.start_date, 'YYYY-MM-DD'),
			TO_CHAR(lr.end_date, 'YYYY-MM-DD'),
			lr.days_count,
			lr.status,
			COALESCE(lr.reason, ''),
			COALESCE(s.name, ''),
			TO_CHAR(lr.created_at, 'YYYY-MM-DD HH24:MI:SS')
		FROM leave_requests lr
		INNER JOIN users u ON lr.user_id = u.id
		LEFT JOIN projects p ON u.project_id = p.id
		LEFT JOIN users s ON lr.supervisor_id = s.id
		ORDER BY lr.created_at DESC
	`

	rows, err := q.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to query export rows: %w", err)
	}
	defer rows.Close()

	var exportRows []analytics.ExportRow
	for rows.Next() {
		var row analytics.ExportRow
		err := rows.Scan(
			&row.RequestID,
			&row.RequesterName,
			&row.RequesterEmail,
			&row.ProjectName,
			&row.StartDate,
			&row.EndDate,
			&row.DaysCount,
			&row.Status,
			&row.Reason,
			&row.SupervisorName,
			&row.CreatedAt,
		)
		if err != nil {
			return nil, err
		}
		exportRows = append(exportRows, row)
	}

	return exportRows, rows.Err()
}
