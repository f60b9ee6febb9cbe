package postgresql

import (
	"context"
	"fmt"
	"strings"

	"github.com/jackc/pgx/v5"

	"github.com/leavedesk/leave-backend-go/internal/domain/leave"
	"github.com/leavedesk/leave-backend-go/internal/pkg/database"
)

type leaveRequestRepositoryImpl struct {
	db *database.DB
}

func NewLeaveRequestRepository(db *database.DB) leave.LeaveRequestRepository {
	return &leaveRequestRepositoryImpl{db: db}
}

func (r *leaveRequestRepositoryImpl) Create(ctx context.Context, request leave.LeaveRequest) (leave.LeaveRequest, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO leave_requests (
			id, user_id, status,
			start_date, end_date, days_count, reason,
			created_at, updated_at
		) VALUES (
			uuidv7(), $1, $2,
			$3, $4, $5, $6,
			NOW(), NOW()
		) RETURNING id, created_at, updated_at
	`

	err := q.QueryRow(ctx, query,
		request.UserID, request.Status,
		request.StartDate, request.EndDate, request.DaysCount, request.Reason,
	).Scan(&request.ID, &request.CreatedAt, &request.UpdatedAt)
	if err != nil {
		return leave.LeaveRequest{}, err
	}

	return request, nil
}

const leaveRequestSelect = `
		SELECT
			lr.id, lr.user_id, lr.supervisor_id, lr.status,
			lr.start_date, lr.end_date, lr.days_count, lr.reason,
			lr.created_at, lr.updated_at,
			u.name AS requester_name,
			u.email AS requester_email,
			u.project_id,
			p.name AS project_name,
			s.name AS supervisor_name
		FROM leave_requests lr
		INNER JOIN users u ON lr.user_id = u.id
		LEFT JOIN projects p ON u.project_id = p.id
		LEFT JOIN users s ON lr.supervisor_id = s.id
`

func scanLeaveRequest(row pgx.Row) (leave.LeaveRequest, error) {
	var lr leave.LeaveRequest
	err := row.Scan(
		&lr.ID, &lr.UserID, &lr.SupervisorID, &lr.Status,
		&lr.StartDate, &lr.EndDate, &lr.DaysCount, &lr.Reason,
		&lr.CreatedAt, &lr.UpdatedAt,
		&lr.RequesterName,
		&lr.RequesterEmail,
		&lr.ProjectID,
		&lr.ProjectName,
		&lr.SupervisorName,
	)
	return lr, err
}

func (r *leaveRequestRepositoryImpl) GetByID(ctx context.Context, id string) (leave.LeaveRequest, error) {
	q := GetQuerier(ctx, r.db)

	query := leaveRequestSelect + ` WHERE lr.id = $1`

	lr, err := scanLeaveRequest(q.QueryRow(ctx, query, id))
	if err != nil {
		if err == pgx.ErrNoRows {
			return leave.LeaveRequest{}, leave.ErrLeaveRequestNotFound
		}
		return leave.LeaveRequest{}, err
	}

	return lr, nil
}

// GetByIDForUpdate implements leave.LeaveRequestRepository.
func (r *leaveRequestRepositoryImpl) GetByIDForUpdate(ctx context.Context, id string) (leave.LeaveRequest, error) {
	q := GetQuerier(ctx, r.db)

	// The join would require FOR UPDATE OF; lock only the request row and
	// fill joined fields afterwards when the caller needs them.
	query := `
		SELECT id, user_id, supervisor_id, status,
			   start_date, end_date, days_count, reason,
			   created_at, updated_at
		FROM leave_requests
		WHERE id = $1
		FOR UPDATE
	`

	var lr leave.LeaveRequest
	err := q.QueryRow(ctx, query, id).Scan(
		&lr.ID, &lr.UserID, &lr.SupervisorID, &lr.Status,
		&lr.StartDate, &lr.EndDate, &lr.DaysCount, &lr.Reason,
		&lr.CreatedAt, &lr.UpdatedAt,
	)
	if err != nil {
		if err == pgx.ErrNoRows {
			return leave.LeaveRequest{}, leave.ErrLeaveRequestNotFound
		}
		return leave.LeaveRequest{}, err
	}

	return lr, nil
}

// GetByUserID implements leave.LeaveRequestRepository.
func (r *leaveRequestRepositoryImpl) GetByUserID(ctx context.Context, userID string, filter leave.LeaveRequestFilter) ([]leave.LeaveRequest, int64, error) {
	filter.UserID = &userID
	return r.List(ctx, filter)
}

// List implements leave.LeaveRequestRepository.
func (r *leaveRequestRepositoryImpl) List(ctx context.Context, filter leave.LeaveRequestFilter) ([]leave.LeaveRequest, int64, error) {
	q := GetQuerier(ctx, r.db)

	baseQuery := `
		FROM leave_requests lr
		INNER JOIN users u ON lr.user_id = u.id
		LEFT JOIN projects p ON u.project_id = p.id
		LEFT JOIN users s ON lr.supervisor_id = s.id
		WHERE 1=1
	`

	args := []interface{}{}
	argIdx := 1

	whereClauses := []string{}

	if filter.UserID != nil && *filter.UserID != "" {
		whereClauses = append(whereClauses, fmt.Sprintf("lr.user_id = $%d", argIdx))
		args = append(args, *filter.UserID)
		argIdx++
	}

	if filter.ProjectID != nil && *filter.ProjectID != "" {
		whereClauses = append(whereClauses, fmt.Sprintf("u.project_id = $%d", argIdx))
		args = append(args, *filter.ProjectID)
		argIdx++
	}

	if filter.Status != nil && *filter.Status != "" {
		whereClauses = append(whereClauses, fmt.Sprintf("lr.status = $%d", argIdx))
		args = append(args, *filter.Status)
		argIdx++
	}

	if filter.StartDate != nil && *filter.StartDate != "" {
		whereClauses = append(whereClauses, fmt.Sprintf("lr.start_date >= $%d", argIdx))
		args = append(args, *filter.StartDate)
		argIdx++
	}

	if filter.EndDate != nil && *filter.EndDate != "" {
		whereClauses = append(whereClauses, fmt.Sprintf("lr.end_date <= $%d", argIdx))
		args = append(args, *filter.EndDate)
		argIdx++
	}

	if len(whereClauses) > 0 {
		baseQuery += " AND " + strings.Join(whereClauses, " AND ")
	}

	countQuery := "SELECT COUNT(*) " + baseQuery
	var total int64
	if err := q.QueryRow(ctx, countQuery, args...).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("failed to count leave requests: %w", err)
	}

	selectQuery := `
		SELECT
			lr.id, lr.user_id, lr.supervisor_id, lr.status,
			lr.start_date, lr.end_date, lr.days_count, lr.reason,
			lr.created_at, lr.updated_at,
			u.name AS requester_name,
			u.email AS requester_email,
			u.project_id,
			p.name AS project_name,
			s.name AS supervisor_name
	` + baseQuery

	orderBy := "lr.created_at"
	switch filter.SortBy {
	case "start_date":
		orderBy = "lr.start_date"
	case "end_date":
		orderBy = "lr.end_date"
	case "status":
		orderBy = "lr.status"
	case "days_count":
		orderBy = "lr.days_count"
	}

	if strings.ToLower(filter.SortOrder) == "asc" {
		orderBy += " ASC"
	} else {
		orderBy += " DESC"
	}

	selectQuery += " ORDER BY " + orderBy

	limit := filter.Limit
	if limit < 1 {
		limit = 20
	}
	page := filter.Page
	if page < 1 {
		page = 1
	}
	offset := (page - 1) * limit

	selectQuery += fmt.Sprintf(" LIMIT $%d OFFSET $%d", argIdx, argIdx+1)
	args = append(args, limit, offset)

	rows, err := q.Query(ctx, selectQuery, args...)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to query leave requests: %w", err)
	}
	defer rows.Close()

	var requests []leave.LeaveRequest
	for rows.Next() {
		lr, err := scanLeaveRequest(rows)
		if err != nil {
			return nil, 0, fmt.Errorf("failed to scan leave request: %w", err)
		}
		requests = append(requests, lr)
	}

	if err = rows.Err(); err != nil {
		return nil, 0, fmt.Errorf("rows iteration error: %w", err)
	}

	return requests, total, nil
}

// UpdateStatus implements leave.LeaveRequestRepository.
func (r *leaveRequestRepositoryImpl) UpdateStatus(ctx context.Context, id string, status leave.RequestStatus, supervisorID string) error {
	q := GetQuerier(ctx, r.db)

	query := `
		UPDATE leave_requests
		SET status = $2, supervisor_id = $3, updated_at = NOW()
		WHERE id = $1
	`

	tag, err := q.Exec(ctx, query, id, status, supervisorID)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return leave.ErrLeaveRequestNotFound
	}

	return nil
}
