package postgresql

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"

	"github.com/leavedesk/leave-backend-go/internal/domain/user"
	"github.com/leavedesk/leave-backend-go/internal/pkg/database"
)

type userRepositoryImpl struct {
	db *database.DB
}

func NewUserRepository(db *database.DB) user.UserRepository {
	return &userRepositoryImpl{db: db}
}

const userColumns = `id, company_code, name, email, password_hash, role, project_id,
			  leave_balance, created_at, updated_at, last_signed_in`

func scanUser(row pgx.Row) (user.User, error) {
	var u user.User
	err := row.Scan(
		&u.ID,
		&u.CompanyCode,
		&u.Name,
		&u.Email,
		&u.PasswordHash,
		&u.Role,
		&u.ProjectID,
		&u.LeaveBalance,
		&u.CreatedAt,
		&u.UpdatedAt,
		&u.LastSignedIn,
	)
	return u, err
}

// Create implements user.UserRepository.
func (r *userRepositoryImpl) Create(ctx context.Context, u user.User) (user.User, error) {
	q := GetQuerier(ctx, r.db)

	insertQuery := `
		INSERT INTO users (id, company_code, name, email, password_hash, role, project_id, leave_balance, created_at, updated_at)
		VALUES (uuidv7(), $1, $2, $3, $4, $5, $6, $7, NOW(), NOW())
		RETURNING ` + userColumns

	created, err := scanUser(q.QueryRow(ctx, insertQuery,
		u.CompanyCode,
		u.Name,
		u.Email,
		u.PasswordHash,
		u.Role,
		u.ProjectID,
		u.LeaveBalance,
	))
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			switch pgErr.ConstraintName {
			case "users_email_key":
				return user.User{}, user.ErrUserEmailExists
			default:
				return user.User{}, user.ErrCompanyCodeExists
			}
		}
		return user.User{}, err
	}

	return created, nil
}

// GetByID implements user.UserRepository.
func (r *userRepositoryImpl) GetByID(ctx context.Context, id string) (user.User, error) {
	q := GetQuerier(ctx, r.db)

	query := `SELECT ` + userColumns + ` FROM users WHERE id = $1`

	u, err := scanUser(q.QueryRow(ctx, query, id))
	if err != nil {
		if err == pgx.ErrNoRows {
			return user.User{}, user.ErrUserNotFound
		}
		return user.User{}, err
	}

	return u, nil
}

// GetByEmail implements user.UserRepository.
func (r *userRepositoryImpl) GetByEmail(ctx context.Context, email string) (user.User, error) {
	q := GetQuerier(ctx, r.db)

	query := `SELECT ` + userColumns + ` FROM users WHERE email = $1`

	u, err := scanUser(q.QueryRow(ctx, query, email))
	if err != nil {
		if err == pgx.ErrNoRows {
			return user.User{}, user.ErrUserNotFound
		}
		return user.User{}, err
	}

	return u, nil
}

// GetByCompanyCode implements user.UserRepository.
func (r *userRepositoryImpl) GetByCompanyCode(ctx context.Context, code string) (user.User, error) {
	q := GetQuerier(ctx, r.db)

	query := `SELECT ` + userColumns + ` FROM users WHERE company_code = $1`

	u, err := scanUser(q.QueryRow(ctx, query, code))
	if err != nil {
		if err == pgx.ErrNoRows {
			return user.User{}, user.ErrUserNotFound
		}
		return user.User{}, err
	}

	return u, nil
}

// GetAll implements user.UserRepository.
func (r *userRepositoryImpl) GetAll(ctx context.Context) ([]user.User, error) {
	q := GetQuerier(ctx, r.db)

	query := `SELECT ` + userColumns + ` FROM users ORDER BY created_at DESC`

	rows, err := q.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var users []user.User
	for rows.Next() {
		u, err := scanUser(rows)
		if err != nil {
			return nil, err
		}
		users = append(users, u)
	}

	return users, rows.Err()
}

// GetByProjectID implements user.UserRepository.
func (r *userRepositoryImpl) GetByProjectID(ctx context.Context, projectID string) ([]user.User, error) {
	q := GetQuerier(ctx, r.db)

	query := `SELECT ` + userColumns + ` FROM users WHERE project_id = $1 ORDER BY created_at DESC`

	rows, err := q.Query(ctx, query, projectID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var users []user.User
	for rows.Next() {
		u, err := scanUser(rows)
		if err != nil {
			return nil, err
		}
		users = append(users, u)
	}

	return users, rows.Err()
}

// GetByProjectAndRole implements user.UserRepository.
func (r *userRepositoryImpl) GetByProjectAndRole(ctx context.Context, projectID string, role user.Role) ([]user.User, error) {
	q := GetQuerier(ctx, r.db)

	query := `SELECT ` + userColumns + ` FROM users WHERE project_id = $1 AND role = $2`

	rows, err := q.Query(ctx, query, projectID, role)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var users []user.User
	for rows.Next() {
		u, err := scanUser(rows)
		if err != nil {
			return nil, err
		}
		users = append(users, u)
	}

	return users, rows.Err()
}

// Update implements user.UserRepository.
func (r *userRepositoryImpl) Update(ctx context.Context, req user.UpdateUserRequest) error {
	q := GetQuerier(ctx, r.db)

	updateQuery := `
		UPDATE users
		SET name = COALESCE($2, name),
			email = COALESCE($3, email),
			role = COALESCE($4, role),
			project_id = COALESCE($5, project_id),
			leave_balance = COALESCE($6, leave_balance),
			updated_at = NOW()
		WHERE id = $1
	`

	tag, err := q.Exec(ctx, updateQuery,
		req.ID,
		req.Name,
		req.Email,
		req.Role,
		req.ProjectID,
		req.LeaveBalance,
	)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			return user.ErrUserEmailExists
		}
		return err
	}
	if tag.RowsAffected() == 0 {
		return user.ErrUserNotFound
	}

	return nil
}

// UpdateLastSignedIn implements user.UserRepository.
func (r *userRepositoryImpl) UpdateLastSignedIn(ctx context.Context, id string) error {
	q := GetQuerier(ctx, r.db)

	_, err := q.Exec(ctx, `UPDATE users SET last_signed_in = NOW() WHERE id = $1`, id)
	return err
}

// DebitLeaveBalance implements user.UserRepository.
func (r *userRepositoryImpl) DebitLeaveBalance(ctx context.Context, id string, days int) (int, error) {
	q := GetQuerier(ctx, r.db)

	// Clamped at zero so the ledger never goes negative.
	updateQuery := `
		UPDATE users
		SET leave_balance = GREATEST(leave_balance - $2, 0),
			updated_at = NOW()
		WHERE id = $1
		RETURNING leave_balance
	`

	var balance int
	err := q.QueryRow(ctx, updateQuery, id, days).Scan(&balance)
	if err != nil {
		if err == pgx.ErrNoRows {
			return 0, user.ErrUserNotFound
		}
		return 0, err
	}

	return balance, nil
}

// Delete implements user.UserRepository.
func (r *userRepositoryImpl) Delete(ctx context.Context, id string) error {
	q := GetQuerier(ctx, r.db)

	tag, err := q.Exec(ctx, `DELETE FROM users WHERE id = $1`, id)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return user.ErrUserNotFound
	}

	return nil
}
