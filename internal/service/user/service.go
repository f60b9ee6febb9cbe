package user

import (
	"context"
	"fmt"

	"golang.org/x/crypto/bcrypt"

	"github.com/leavedesk/leave-backend-go/internal/domain/user"
	"github.com/leavedesk/leave-backend-go/internal/pkg/database"
)

type Service interface {
	Create(ctx context.Context, req user.CreateUserRequest) (user.UserResponse, error)
	GetByID(ctx context.Context, id string) (user.UserResponse, error)
	GetAll(ctx context.Context) ([]user.UserResponse, error)
	GetByProjectID(ctx context.Context, projectID string) ([]user.UserResponse, error)
	Update(ctx context.Context, req user.UpdateUserRequest) (user.UserResponse, error)
	Delete(ctx context.Context, id string) error
}

type serviceImpl struct {
	db       *database.DB
	userRepo user.UserRepository
}

func NewUserService(db *database.DB, userRepo user.UserRepository) Service {
	return &serviceImpl{db: db, userRepo: userRepo}
}

// Create provisions a new user. Only admins reach this path; the router
// enforces that.
func (s *serviceImpl) Create(ctx context.Context, req user.CreateUserRequest) (user.UserResponse, error) {
	if err := req.Validate(); err != nil {
		return user.UserResponse{}, err
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return user.UserResponse{}, fmt.Errorf("failed to hash password: %w", err)
	}
	hashed := string(hash)

	balance := user.DefaultLeaveBalance
	if req.LeaveBalance != nil {
		balance = *req.LeaveBalance
	}

	newUser := user.User{
		CompanyCode:  req.CompanyCode,
		Name:         &req.Name,
		Email:        req.Email,
		PasswordHash: &hashed,
		Role:         user.Role(req.Role),
		ProjectID:    req.ProjectID,
		LeaveBalance: balance,
	}

	created, err := s.userRepo.Create(ctx, newUser)
	if err != nil {
		return user.UserResponse{}, err
	}

	return created.ToResponse(), nil
}

// GetByID implements Service.
func (s *serviceImpl) GetByID(ctx context.Context, id string) (user.UserResponse, error) {
	u, err := s.userRepo.GetByID(ctx, id)
	if err != nil {
		return user.UserResponse{}, err
	}
	return u.ToResponse(), nil
}

// GetAll implements Service.
func (s *serviceImpl) GetAll(ctx context.Context) ([]user.UserResponse, error) {
	users, err := s.userRepo.GetAll(ctx)
	if err != nil {
		return nil, err
	}

	responses := make([]user.UserResponse, len(users))
	for i := range users {
		responses[i] = users[i].ToResponse()
	}
	return responses, nil
}

// GetByProjectID implements Service.
func (s *serviceImpl) GetByProjectID(ctx context.Context, projectID string) ([]user.UserResponse, error) {
	users, err := s.userRepo.GetByProjectID(ctx, projectID)
	if err != nil {
		return nil, err
	}

	responses := make([]user.UserResponse, len(users))
	for i := range users {
		responses[i] = users[i].ToResponse()
	}
	return responses, nil
}

// Update implements Service.
func (s *serviceImpl) Update(ctx context.Context, req user.UpdateUserRequest) (user.UserResponse, error) {
	if err := req.Validate(); err != nil {
		return user.UserResponse{}, err
	}

	if err := s.userRepo.Update(ctx, req); err != nil {
		return user.UserResponse{}, err
	}

	updated, err := s.userRepo.GetByID(ctx, req.ID)
	if err != nil {
		return user.UserResponse{}, err
	}
	return updated.ToResponse(), nil
}

// Delete implements Service.
func (s *serviceImpl) Delete(ctx context.Context, id string) error {
	return s.userRepo.Delete(ctx, id)
}
