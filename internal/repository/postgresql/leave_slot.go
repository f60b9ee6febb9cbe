package postgresql

import (
	"context"
	"time"

	"github.com/jackc/pgx/v5"

	"github.com/leavedesk/leave-backend-go/internal/domain/leave"
	"github.com/leavedesk/leave-backend-go/internal/pkg/database"
)

type leaveSlotRepositoryImpl struct {
	db *database.DB
}

func NewLeaveSlotRepository(db *database.DB) leave.LeaveSlotRepository {
	return &leaveSlotRepositoryImpl{db: db}
}

// GetOrCreateForUpdate implements leave.LeaveSlotRepository.
func (r *leaveSlotRepositoryImpl) GetOrCreateForUpdate(ctx context.Context, projectID string, date time.Time) (leave.LeaveSlot, error) {
	q := GetQuerier(ctx, r.db)

	// ON CONFLICT DO NOTHING instead of an upsert so a concurrent insert
	// of the same (project_id, date) cannot clobber used_slots. The
	// follow-up SELECT ... FOR UPDATE sees whichever row won.
	insertQuery := `
		INSERT INTO leave_slots (id, project_id, date, max_slots, used_slots, created_at, updated_at)
		VALUES (uuidv7(), $1, $2, $3, 0, NOW(), NOW())
		ON CONFLICT (project_id, date) DO NOTHING
	`
	if _, err := q.Exec(ctx, insertQuery, projectID, date, leave.DefaultMaxSlots); err != nil {
		return leave.LeaveSlot{}, err
	}

	selectQuery := `
		SELECT id, project_id, date, max_slots, used_slots, created_at, updated_at
		FROM leave_slots
		WHERE project_id = $1 AND date = $2
		FOR UPDATE
	`

	var slot leave.LeaveSlot
	err := q.QueryRow(ctx, selectQuery, projectID, date).Scan(
		&slot.ID,
		&slot.ProjectID,
		&slot.Date,
		&slot.MaxSlots,
		&slot.UsedSlots,
		&slot.CreatedAt,
		&slot.UpdatedAt,
	)
	if err != nil {
		if err == pgx.ErrNoRows {
			return leave.LeaveSlot{}, leave.ErrSlotNotFound
		}
		return leave.LeaveSlot{}, err
	}

	return slot, nil
}

// IncrementUsed implements leave.LeaveSlotRepository.
func (r *leaveSlotRepositoryImpl) IncrementUsed(ctx context.Context, id string) error {
	q := GetQuerier(ctx, r.db)

	query := `
		UPDATE leave_slots
		SET used_slots = used_slots + 1, updated_at = NOW()
		WHERE id = $1
	`

	tag, err := q.Exec(ctx, query, id)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return leave.ErrSlotNotFound
	}

	return nil
}

// GetByProjectAndRange implements leave.LeaveSlotRepository.
func (r *leaveSlotRepositoryImpl) GetByProjectAndRange(ctx context.Context, projectID string, from, to time.Time) ([]leave.LeaveSlot, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT id, project_id, date, max_slots, used_slots, created_at, updated_at
		FROM leave_slots
		WHERE project_id = $1 AND date BETWEEN $2 AND $3
		ORDER BY date
	`

	rows, err := q.Query(ctx, query, projectID, from, to)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var slots []leave.LeaveSlot
	for rows.Next() {
		var slot leave.LeaveSlot
		err := rows.Scan(
			&slot.ID,
			&slot.ProjectID,
			&slot.Date,
			&slot.MaxSlots,
			&slot.UsedSlots,
			&slot.CreatedAt,
			&slot.UpdatedAt,
		)
		if err != nil {
			return nil, err
		}
		slots = append(slots, slot)
	}

	return slots, rows.Err()
}

// SetMaxSlots implements leave.LeaveSlotRepository.
func (r *leaveSlotRepositoryImpl) SetMaxSlots(ctx context.Context, projectID string, date time.Time, maxSlots int) (leave.LeaveSlot, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO leave_slots (id, project_id, date, max_slots, used_slots, created_at, updated_at)
		VALUES (uuidv7(), $1, $2, $3, 0, NOW(), NOW())
		ON CONFLICT (project_id, date)
		DO UPDATE SET max_slots = EXCLUDED.max_slots, updated_at = NOW()
		RETURNING id, project_id, date, max_slots, used_slots, created_at, updated_at
	`

	var slot leave.LeaveSlot
	err := q.QueryRow(ctx, query, projectID, date, maxSlots).Scan(
		&slot.ID,
		&slot.ProjectID,
		&slot.Date,
		&slot.MaxSlots,
		&slot.UsedSlots,
		&slot.CreatedAt,
		&slot.UpdatedAt,
	)
	if err != nil {
		return leave.LeaveSlot{}, err
	}

	return slot, nil
}
