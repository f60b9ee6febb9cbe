package user

import (
	"context"
)

// UserRepository - interface for users table
type UserRepository interface {
	Create(ctx context.Context, u User) (User, error)
	GetByID(ctx context.Context, id string) (User, error)
	GetByEmail(ctx context.Context, email string) (User, error)
	GetByCompanyCode(ctx context.Context, code string) (User, error)
	GetAll(ctx context.Context) ([]User, error)
	GetByProjectID(ctx context.Context, projectID string) ([]User, error)
	GetByProjectAndRole(ctx context.Context, projectID string, role Role) ([]User, error)
	Update(ctx context.Context, req UpdateUserRequest) error
	UpdateLastSignedIn(ctx context.Context, id string) error

	// DebitLeaveBalance subtracts days from the user's balance, clamped at
	// zero, and returns the new balance. Must run inside the approval
	// transaction so the read-modify-write cannot interleave.
	DebitLeaveBalance(ctx context.Context, id string, days int) (int, error)

	Delete(ctx context.Context, id string) error
}
