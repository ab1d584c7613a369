package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/teamdash/teamdash/internal/domain"
	"github.com/teamdash/teamdash/internal/repository/jsonstore"
	"github.com/teamdash/teamdash/internal/store"
)

// testEnv wires the four services over a memory-only store, mirroring how
// the composition root wires them in production.
type testEnv struct {
	teams    TeamService
	users    UserService
	tasks    TaskService
	comments CommentService
}

func newTestEnv(t *testing.T) *testEnv {
	t.Helper()
	st := store.NewMemory()

	teamRepo := jsonstore.NewTeamRepository(st)
	userRepo := jsonstore.NewUserRepository(st)
	taskRepo := jsonstore.NewTaskRepository(st)
	commentRepo := jsonstore.NewCommentRepository(st)

	return &testEnv{
		teams:    NewTeamService(teamRepo),
		users:    NewUserService(userRepo),
		tasks:    NewTaskService(taskRepo, teamRepo, commentRepo),
		comments: NewCommentService(commentRepo),
	}
}

func (e *testEnv) createTeam(t *testing.T, name string) *domain.Team {
	t.Helper()
	team, err := e.teams.Create(context.Background(), domain.CreateTeam{Name: name})
	require.NoError(t, err)
	return team
}

func (e *testEnv) createUser(t *testing.T, email, name string, teamID *string) *domain.User {
	t.Helper()
	user, err := e.users.Create(context.Background(), domain.CreateUser{
		Email:  email,
		Name:   name,
		TeamID: teamID,
	})
	require.NoError(t, err)
	return user
}

func (e *testEnv) createTask(t *testing.T, input domain.CreateTask, createdByID string) *domain.Task {
	t.Helper()
	task, err := e.tasks.Create(context.Background(), input, createdByID)
	require.NoError(t, err)
	return task
}

func strPtr(s string) *string {
	return &s
}
