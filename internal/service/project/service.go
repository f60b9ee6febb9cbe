package project

import (
	"context"
	"errors"

	"github.com/leavedesk/leave-backend-go/internal/domain/project"
	"github.com/leavedesk/leave-backend-go/internal/domain/user"
)

type Service interface {
	Create(ctx context.Context, req project.CreateProjectRequest) (project.ProjectResponse, error)
	GetByID(ctx context.Context, id string) (project.ProjectResponse, error)
	GetAll(ctx context.Context) ([]project.ProjectResponse, error)
	Update(ctx context.Context, req project.UpdateProjectRequest) (project.ProjectResponse, error)
	Delete(ctx context.Context, id string) error
}

type serviceImpl struct {
	projectRepo project.ProjectRepository
	userRepo    user.UserRepository
}

func NewProjectService(projectRepo project.ProjectRepository, userRepo user.UserRepository) Service {
	return &serviceImpl{projectRepo: projectRepo, userRepo: userRepo}
}

// Create implements Service.
func (s *serviceImpl) Create(ctx context.Context, req project.CreateProjectRequest) (project.ProjectResponse, error) {
	if err := req.Validate(); err != nil {
		return project.ProjectResponse{}, err
	}

	// The admin must exist before the project can reference them.
	if _, err := s.userRepo.GetByID(ctx, req.AdminID); err != nil {
		return project.ProjectResponse{}, err
	}

	created, err := s.projectRepo.Create(ctx, project.Project{
		Name:     req.Name,
		Location: req.Location,
		AdminID:  req.AdminID,
	})
	if err != nil {
		return project.ProjectResponse{}, err
	}

	return created.ToResponse(), nil
}

// GetByID implements Service.
func (s *serviceImpl) GetByID(ctx context.Context, id string) (project.ProjectResponse, error) {
	p, err := s.projectRepo.GetByID(ctx, id)
	if err != nil {
		return project.ProjectResponse{}, err
	}
	return p.ToResponse(), nil
}

// GetAll implements Service.
func (s *serviceImpl) GetAll(ctx context.Context) ([]project.ProjectResponse, error) {
	projects, err := s.projectRepo.GetAll(ctx)
	if err != nil {
		return nil, err
	}

	responses := make([]project.ProjectResponse, len(projects))
	for i := range projects {
		responses[i] = projects[i].ToResponse()
	}
	return responses, nil
}

// Update implements Service.
func (s *serviceImpl) Update(ctx context.Context, req project.UpdateProjectRequest) (project.ProjectResponse, error) {
	if err := req.Validate(); err != nil {
		return project.ProjectResponse{}, err
	}

	if req.AdminID != nil {
		if _, err := s.userRepo.GetByID(ctx, *req.AdminID); err != nil {
			return project.ProjectResponse{}, err
		}
	}

	if err := s.projectRepo.Update(ctx, req); err != nil {
		return project.ProjectResponse{}, err
	}

	updated, err := s.projectRepo.GetByID(ctx, req.ID)
	if err != nil {
		return project.ProjectResponse{}, err
	}
	return updated.ToResponse(), nil
}

// Delete implements Service.
func (s *serviceImpl) Delete(ctx context.Context, id string) error {
	members, err := s.userRepo.GetByProjectID(ctx, id)
	if err != nil && !errors.Is(err, user.ErrUserNotFound) {
		return err
	}
	if len(members) > 0 {
		return project.ErrProjectInUse
	}

	return s.projectRepo.Delete(ctx, id)
}
