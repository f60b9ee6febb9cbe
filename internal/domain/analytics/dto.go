package analytics

// Summary aggregates leave requests over the whole history
type Summary struct {
	TotalRequests    int     `json:"totalRequests"`
	ApprovedCount    int     `json:"approvedCount"`
	RejectedCount    int     `json:"rejectedCount"`
	PendingCount     int     `json:"pendingCount"`
	ApprovalRate     float64 `json:"approvalRate"`
	RejectionRate    float64 `json:"rejectionRate"`
	PendingRate      float64 `json:"pendingRate"`
	AvgLeaveDuration float64 `json:"avgLeaveDuration"`
	TotalLeaveDays   int     `json:"totalLeaveDays"`
}

// MonthlyTrend counts requests submitted in one calendar month
type MonthlyTrend struct {
	Month         string `json:"month"` // formatted as 2006-01
	TotalRequests int    `json:"totalRequests"`
	ApprovedCount int    `json:"approvedCount"`
	RejectedCount int    `json:"rejectedCount"`
	PendingCount  int    `json:"pendingCount"`
	TotalDays     int    `json:"totalDays"`
}

// ProjectUsage sums approved leave per project
type ProjectUsage struct {
	ProjectID    string `json:"projectId"`
	ProjectName  string `json:"projectName"`
	RequestCount int    `json:"requestCount"`
	TotalDays    int    `json:"totalDays"`
}

// SeasonalPattern counts requests per calendar quarter across all years
type SeasonalPattern struct {
	Quarter      string `json:"quarter"` // Q1..Q4
	RequestCount int    `json:"requestCount"`
	TotalDays    int    `json:"totalDays"`
}

// Report bundles every aggregate into one dashboard payload
type Report struct {
	Summary          Summary           `json:"summary"`
	MonthlyTrends    []MonthlyTrend    `json:"monthlyTrends"`
	LeaveByProject   []ProjectUsage    `json:"leaveByProject"`
	SeasonalPatterns []SeasonalPattern `json:"seasonalPatterns"`
}

// ExportRow is one detailed leave request line in a CSV or XLSX export
type ExportRow struct {
	RequestID      string
	RequesterName  string
	RequesterEmail string
	ProjectName    string
	StartDate      string
	EndDate        string
	DaysCount      int
	Status         string
	Reason         string
	SupervisorName string
	CreatedAt      string
}
