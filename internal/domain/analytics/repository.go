package analytics

import "context"

// Repository runs SQL-side aggregations over leave requests. Rates and
// averages are computed in the service so rounding stays in one place.
type Repository interface {
	GetStatusCounts(ctx context.Context) (total, approved, rejected, pending int, err error)
	GetDurationStats(ctx context.Context) (totalDays int, avgDuration float64, err error)
	GetMonthlyTrends(ctx context.Context, months int) ([]MonthlyTrend, error)
	GetLeaveByProject(ctx context.Context) ([]ProjectUsage, error)
	GetSeasonalPatterns(ctx context.Context) ([]SeasonalPattern, error)
	GetExportRows(ctx context.Context) ([]ExportRow, error)
}
