package project

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/leavedesk/leave-backend-go/internal/domain/project"
	"github.com/leavedesk/leave-backend-go/internal/domain/user"
)

type fakeProjectRepo struct {
	projects map[string]project.Project
	nextID   int
}

func newFakeProjectRepo() *fakeProjectRepo {
	return &fakeProjectRepo{projects: make(map[string]project.Project)}
}

func (f *fakeProjectRepo) Create(ctx context.Context, p project.Project) (project.Project, error) {
	f.nextID++
	p.ID = "proj-" + string(rune('0'+f.nextID))
	f.projects[p.ID] = p
	return p, nil
}

func (f *fakeProjectRepo) GetByID(ctx context.Context, id string) (project.Project, error) {
	p, ok := f.projects[id]
	if !ok {
		return project.Project{}, project.ErrProjectNotFound
	}
	return p, nil
}

func (f *fakeProjectRepo) GetAll(ctx context.Context) ([]project.Project, error) {
	var out []project.Project
	for _, p := range f.projects {
		out = append(out, p)
	}
	return out, nil
}

func (f *fakeProjectRepo) Update(ctx context.Context, req project.UpdateProjectRequest) error {
	p, ok := f.projects[req.ID]
	if !ok {
		return project.ErrProjectNotFound
	}
	if req.Name != nil {
		p.Name = *req.Name
	}
	if req.Location != nil {
		p.Location = req.Location
	}
	if req.AdminID != nil {
		p.AdminID = *req.AdminID
	}
	f.projects[req.ID] = p
	return nil
}

func (f *fakeProjectRepo) Delete(ctx context.Context, id string) error {
	if _, ok := f.projects[id]; !ok {
		return project.ErrProjectNotFound
	}
	delete(f.projects, id)
	return nil
}

type fakeUserLookup struct {
	users map[string]user.User
}

func (f *fakeUserLookup) Create(ctx context.Context, u user.User) (user.User, error) {
	return u, nil
}

func (f *fakeUserLookup) GetByID(ctx context.Context, id string) (user.User, error) {
	u, ok := f.users[id]
	if !ok {
		return user.User{}, user.ErrUserNotFound
	}
	return u, nil
}

func (f *fakeUserLookup) GetByEmail(ctx context.Context, email string) (user.User, error) {
	return user.User{}, user.ErrUserNotFound
}

func (f *fakeUserLookup) GetByCompanyCode(ctx context.Context, code string) (user.User, error) {
	return user.User{}, user.ErrUserNotFound
}

func (f *fakeUserLookup) GetAll(ctx context.Context) ([]user.User, error) { return nil, nil }

func (f *fakeUserLookup) GetByProjectID(ctx context.Context, projectID string) ([]user.User, error) {
	var out []user.User
	for _, u := range f.users {
		if u.ProjectID != nil && *u.ProjectID == projectID {
			out = append(out, u)
		}
	}
	return out, nil
}

func (f *fakeUserLookup) GetByProjectAndRole(ctx context.Context, projectID string, role user.Role) ([]user.User, error) {
	return nil, nil
}

func (f *fakeUserLookup) Update(ctx context.Context, req user.UpdateUserRequest) error { return nil }

func (f *fakeUserLookup) UpdateLastSignedIn(ctx context.Context, id string) error { return nil }

func (f *fakeUserLookup) DebitLeaveBalance(ctx context.Context, id string, days int) (int, error) {
	return 0, nil
}

func (f *fakeUserLookup) Delete(ctx context.Context, id string) error { return nil }

func TestCreateProject(t *testing.T) {
	users := &fakeUserLookup{users: map[string]user.User{
		"admin-1": {ID: "admin-1", Role: user.RoleAdmin},
	}}
	svc := NewProjectService(newFakeProjectRepo(), users)

	resp, err := svc.Create(context.Background(), project.CreateProjectRequest{
		Name:    "Platform",
		AdminID: "admin-1",
	})
	require.NoError(t, err)
	assert.NotEmpty(t, resp.ID)
	assert.Equal(t, "Platform", resp.Name)
}

func TestCreateProjectUnknownAdmin(t *testing.T) {
	svc := NewProjectService(newFakeProjectRepo(), &fakeUserLookup{users: map[string]user.User{}})

	_, err := svc.Create(context.Background(), project.CreateProjectRequest{
		Name:    "Platform",
		AdminID: "ghost",
	})
	assert.ErrorIs(t, err, user.ErrUserNotFound)
}

func TestDeleteProjectWithMembers(t *testing.T) {
	projects := newFakeProjectRepo()
	users := &fakeUserLookup{users: map[string]user.User{
		"admin-1": {ID: "admin-1", Role: user.RoleAdmin},
	}}
	svc := NewProjectService(projects, users)

	resp, err := svc.Create(context.Background(), project.CreateProjectRequest{
		Name:    "Platform",
		AdminID: "admin-1",
	})
	require.NoError(t, err)

	users.users["staff-1"] = user.User{ID: "staff-1", Role: user.RoleStaff, ProjectID: &resp.ID}

	err = svc.Delete(context.Background(), resp.ID)
	assert.ErrorIs(t, err, project.ErrProjectInUse)

	delete(users.users, "staff-1")
	assert.NoError(t, svc.Delete(context.Background(), resp.ID))
}

func TestUpdateProject(t *testing.T) {
	users := &fakeUserLookup{users: map[string]user.User{
		"admin-1": {ID: "admin-1", Role: user.RoleAdmin},
		"admin-2": {ID: "admin-2", Role: user.RoleAdmin},
	}}
	svc := NewProjectService(newFakeProjectRepo(), users)

	created, err := svc.Create(context.Background(), project.CreateProjectRequest{
		Name:    "Platform",
		AdminID: "admin-1",
	})
	require.NoError(t, err)

	newAdmin := "admin-2"
	newName := "Platform Core"
	updated, err := svc.Update(context.Background(), project.UpdateProjectRequest{
		ID:      created.ID,
		Name:    &newName,
		AdminID: &newAdmin,
	})
	require.NoError(t, err)
	assert.Equal(t, "Platform Core", updated.Name)
	assert.Equal(t, "admin-2", updated.AdminID)

	ghost := "ghost"
	_, err = svc.Update(context.Background(), project.UpdateProjectRequest{
		ID:      created.ID,
		AdminID: &ghost,
	})
	assert.ErrorIs(t, err, user.ErrUserNotFound)
}
