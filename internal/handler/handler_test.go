package handler_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/teamdash/teamdash/internal/domain"
	"github.com/teamdash/teamdash/internal/handler"
	"github.com/teamdash/teamdash/internal/handler/server"
	"github.com/teamdash/teamdash/internal/service"
)

type serviceMocks struct {
	teams    *service.MockTeamService
	users    *service.MockUserService
	tasks    *service.MockTaskService
	comments *service.MockCommentService
}

func newTestMux() (*http.ServeMux, *serviceMocks) {
	m := &serviceMocks{
		teams:    new(service.MockTeamService),
		users:    new(service.MockUserService),
		tasks:    new(service.MockTaskService),
		comments: new(service.MockCommentService),
	}
	h := handler.NewHandler(m.teams, m.users, m.tasks, m.comments)
	mux := http.NewServeMux()
	server.SetupRoutes(mux, h)
	return mux, m
}

func doRequest(mux *http.ServeMux, method, path, body string, headers map[string]string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	for k, v := range headers {
		req.Header.Set(k, v)
	}
	rec := httptest.NewRecorder()
	mux.ServeHTTP(rec, req)
	return rec
}

func decodeError(t *testing.T, rec *httptest.ResponseRecorder) handler.ErrorDetail {
	t.Helper()
	var resp handler.ErrorResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	return resp.Error
}

var testTime = time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)

func sampleTask(id string) *domain.Task {
	return &domain.Task{
		ID:          id,
		Title:       "Fix deploy pipeline",
		TeamID:      "team-1",
		CreatedByID: "user-1",
		Status:      domain.StatusNotStarted,
		Priority:    domain.PriorityP2,
		CreatedAt:   testTime,
		UpdatedAt:   testTime,
	}
}

func TestHealth(t *testing.T) {
	mux, _ := newTestMux()

	rec := doRequest(mux, http.MethodGet, "/health", "", nil)

	assert.Equal(t, http.StatusOK, rec.Code)
	var resp handler.HealthResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, "ok", resp.Status)
	assert.NotEmpty(t, resp.Timestamp)
}

func TestCreateTeam(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		mux, m := newTestMux()
		m.teams.On("Create", mock.Anything, domain.CreateTeam{Name: "Platform"}).
			Return(&domain.Team{ID: "team-1", Name: "Platform", CreatedAt: testTime, UpdatedAt: testTime}, nil)

		rec := doRequest(mux, http.MethodPost, "/api/teams", `{"name":"Platform"}`, nil)

		assert.Equal(t, http.StatusCreated, rec.Code)
		var resp handler.TeamResponse
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
		assert.Equal(t, "team-1", resp.ID)
		m.teams.AssertExpectations(t)
	})

	t.Run("missing name", func(t *testing.T) {
		mux, m := newTestMux()

		rec := doRequest(mux, http.MethodPost, "/api/teams", `{}`, nil)

		assert.Equal(t, http.StatusBadRequest, rec.Code)
		assert.Equal(t, "VALIDATION", decodeError(t, rec).Code)
		m.teams.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
	})

	t.Run("malformed body", func(t *testing.T) {
		mux, _ := newTestMux()

		rec := doRequest(mux, http.MethodPost, "/api/teams", `{"name":`, nil)

		assert.Equal(t, http.StatusBadRequest, rec.Code)
		assert.Equal(t, "VALIDATION", decodeError(t, rec).Code)
	})
}

func TestGetTeam_NotFound(t *testing.T) {
	mux, m := newTestMux()
	m.teams.On("Get", mock.Anything, "nope").
		Return(nil, domain.NewNotFoundError("team with id nope"))

	rec := doRequest(mux, http.MethodGet, "/api/teams/nope", "", nil)

	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Equal(t, "NOT_FOUND", decodeError(t, rec).Code)
}

func TestDeleteTeam(t *testing.T) {
	t.Run("removed", func(t *testing.T) {
		mux, m := newTestMux()
		m.teams.On("Delete", mock.Anything, "team-1").Return(true, nil)

		rec := doRequest(mux, http.MethodDelete, "/api/teams/team-1", "", nil)

		assert.Equal(t, http.StatusNoContent, rec.Code)
		assert.Empty(t, rec.Body.String())
	})

	t.Run("unknown id", func(t *testing.T) {
		mux, m := newTestMux()
		m.teams.On("Delete", mock.Anything, "nope").Return(false, nil)

		rec := doRequest(mux, http.MethodDelete, "/api/teams/nope", "", nil)

		assert.Equal(t, http.StatusNotFound, rec.Code)
	})
}

func TestCreateUser(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		mux, m := newTestMux()
		m.users.On("Create", mock.Anything, domain.CreateUser{Email: "alice@x.com", Name: "Alice"}).
			Return(&domain.User{ID: "user-1", Email: "alice@x.com", Name: "Alice", Role: domain.RoleMember, CreatedAt: testTime, UpdatedAt: testTime}, nil)

		rec := doRequest(mux, http.MethodPost, "/api/users", `{"email":"alice@x.com","name":"Alice"}`, nil)

		assert.Equal(t, http.StatusCreated, rec.Code)
		var resp handler.UserResponse
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
		assert.Equal(t, "member", resp.Role)
	})

	t.Run("invalid email", func(t *testing.T) {
		mux, m := newTestMux()

		rec := doRequest(mux, http.MethodPost, "/api/users", `{"email":"not-an-email","name":"Alice"}`, nil)

		assert.Equal(t, http.StatusBadRequest, rec.Code)
		m.users.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
	})

	t.Run("unknown role", func(t *testing.T) {
		mux, _ := newTestMux()

		rec := doRequest(mux, http.MethodPost, "/api/users", `{"email":"alice@x.com","name":"Alice","role":"owner"}`, nil)

		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})
}

func TestUpdateUser(t *testing.T) {
	t.Run("explicit null clears the team", func(t *testing.T) {
		mux, m := newTestMux()
		m.users.On("Update", mock.Anything, "user-1", mock.MatchedBy(func(u domain.UserUpdate) bool {
			return u.TeamID.Set && !u.TeamID.Valid && !u.Name.Set
		})).Return(&domain.User{ID: "user-1", Email: "alice@x.com", Name: "Alice", Role: domain.RoleMember, CreatedAt: testTime, UpdatedAt: testTime}, nil)

		rec := doRequest(mux, http.MethodPatch, "/api/users/user-1", `{"team_id":null}`, nil)

		assert.Equal(t, http.StatusOK, rec.Code)
		m.users.AssertExpectations(t)
	})

	t.Run("absent fields are not sent", func(t *testing.T) {
		mux, m := newTestMux()
		m.users.On("Update", mock.Anything, "user-1", mock.MatchedBy(func(u domain.UserUpdate) bool {
			return u.Name.Set && u.Name.Valid && u.Name.Value == "Alicia" &&
				!u.Email.Set && !u.TeamID.Set && !u.Role.Set
		})).Return(&domain.User{ID: "user-1", Email: "alice@x.com", Name: "Alicia", Role: domain.RoleMember, CreatedAt: testTime, UpdatedAt: testTime}, nil)

		rec := doRequest(mux, http.MethodPatch, "/api/users/user-1", `{"name":"Alicia"}`, nil)

		assert.Equal(t, http.StatusOK, rec.Code)
		m.users.AssertExpectations(t)
	})

	t.Run("null name rejected", func(t *testing.T) {
		mux, m := newTestMux()

		rec := doRequest(mux, http.MethodPatch, "/api/users/user-1", `{"name":null}`, nil)

		assert.Equal(t, http.StatusBadRequest, rec.Code)
		m.users.AssertNotCalled(t, "Update", mock.Anything, mock.Anything, mock.Anything)
	})
}

func TestListTasks(t *testing.T) {
	t.Run("filters forwarded", func(t *testing.T) {
		mux, m := newTestMux()
		m.tasks.On("List", mock.Anything, domain.TaskFilter{
			TeamID:   "team-1",
			Status:   domain.StatusInProgress,
			Priority: domain.PriorityP1,
		}).Return([]*domain.Task{sampleTask("task-1")}, nil)

		rec := doRequest(mux, http.MethodGet, "/api/tasks?team_id=team-1&status=in_progress&priority=P1", "", nil)

		assert.Equal(t, http.StatusOK, rec.Code)
		var resp []handler.TaskResponse
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
		require.Len(t, resp, 1)
		assert.Equal(t, "task-1", resp[0].ID)
		m.tasks.AssertExpectations(t)
	})

	t.Run("invalid status", func(t *testing.T) {
		mux, m := newTestMux()

		rec := doRequest(mux, http.MethodGet, "/api/tasks?status=doing", "", nil)

		assert.Equal(t, http.StatusBadRequest, rec.Code)
		m.tasks.AssertNotCalled(t, "List", mock.Anything, mock.Anything)
	})
}

func TestCreateTask(t *testing.T) {
	t.Run("creator from body", func(t *testing.T) {
		mux, m := newTestMux()
		m.tasks.On("Create", mock.Anything, mock.Anything, "user-1").
			Return(sampleTask("task-1"), nil)

		rec := doRequest(mux, http.MethodPost, "/api/tasks",
			`{"title":"Fix deploy pipeline","team_id":"team-1","created_by_id":"user-1"}`, nil)

		assert.Equal(t, http.StatusCreated, rec.Code)
		m.tasks.AssertExpectations(t)
	})

	t.Run("creator falls back to header", func(t *testing.T) {
		mux, m := newTestMux()
		m.tasks.On("Create", mock.Anything, mock.Anything, "user-2").
			Return(sampleTask("task-1"), nil)

		rec := doRequest(mux, http.MethodPost, "/api/tasks",
			`{"title":"Fix deploy pipeline","team_id":"team-1"}`,
			map[string]string{"X-User-Id": "user-2"})

		assert.Equal(t, http.StatusCreated, rec.Code)
		m.tasks.AssertExpectations(t)
	})

	t.Run("no creator anywhere", func(t *testing.T) {
		mux, m := newTestMux()

		rec := doRequest(mux, http.MethodPost, "/api/tasks",
			`{"title":"Fix deploy pipeline","team_id":"team-1"}`, nil)

		assert.Equal(t, http.StatusBadRequest, rec.Code)
		m.tasks.AssertNotCalled(t, "Create", mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("invalid priority", func(t *testing.T) {
		mux, _ := newTestMux()

		rec := doRequest(mux, http.MethodPost, "/api/tasks",
			`{"title":"x","team_id":"team-1","created_by_id":"user-1","priority":"P0"}`, nil)

		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})

	t.Run("unknown team", func(t *testing.T) {
		mux, m := newTestMux()
		m.tasks.On("Create", mock.Anything, mock.Anything, "user-1").
			Return(nil, domain.NewNotFoundError("team with id nope"))

		rec := doRequest(mux, http.MethodPost, "/api/tasks",
			`{"title":"x","team_id":"nope","created_by_id":"user-1"}`, nil)

		assert.Equal(t, http.StatusNotFound, rec.Code)
	})
}

func TestGetTask(t *testing.T) {
	mux, m := newTestMux()
	userID := "user-1"
	m.tasks.On("Get", mock.Anything, "task-1").Return(sampleTask("task-1"), nil)
	m.comments.On("List", mock.Anything, "task-1").Return([]*domain.Comment{
		{ID: "c-1", TaskID: "task-1", UserID: &userID, Content: "on it", CreatedAt: testTime},
	}, nil)

	rec := doRequest(mux, http.MethodGet, "/api/tasks/task-1", "", nil)

	assert.Equal(t, http.StatusOK, rec.Code)
	var resp handler.TaskDetailResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, "task-1", resp.ID)
	require.Len(t, resp.Comments, 1)
	assert.Equal(t, "on it", resp.Comments[0].Content)
}

func TestGetKanban(t *testing.T) {
	mux, m := newTestMux()
	m.tasks.On("Kanban", mock.Anything, "team-1").Return(&domain.Kanban{
		NotStarted: []*domain.Task{},
		InProgress: []*domain.Task{sampleTask("task-1")},
		Blocked:    []*domain.Task{},
		Completed:  []*domain.Task{},
	}, nil)

	rec := doRequest(mux, http.MethodGet, "/api/tasks/kanban/team-1", "", nil)

	assert.Equal(t, http.StatusOK, rec.Code)

	// Every bucket must be present as an array, even when empty.
	var raw map[string]json.RawMessage
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &raw))
	for _, key := range []string{"not_started", "in_progress", "blocked", "completed"} {
		require.Contains(t, raw, key)
		assert.True(t, strings.HasPrefix(string(raw[key]), "["))
	}
}

func TestUpdateTask(t *testing.T) {
	t.Run("explicit null clears the assignee", func(t *testing.T) {
		mux, m := newTestMux()
		m.tasks.On("Update", mock.Anything, "task-1", mock.MatchedBy(func(u domain.TaskUpdate) bool {
			return u.AssigneeID.Set && !u.AssigneeID.Valid && !u.Title.Set
		})).Return(sampleTask("task-1"), nil)

		rec := doRequest(mux, http.MethodPatch, "/api/tasks/task-1", `{"assignee_id":null}`, nil)

		assert.Equal(t, http.StatusOK, rec.Code)
		m.tasks.AssertExpectations(t)
	})

	t.Run("status change", func(t *testing.T) {
		mux, m := newTestMux()
		m.tasks.On("Update", mock.Anything, "task-1", mock.MatchedBy(func(u domain.TaskUpdate) bool {
			return u.Status.Set && u.Status.Valid && u.Status.Value == domain.StatusBlocked
		})).Return(sampleTask("task-1"), nil)

		rec := doRequest(mux, http.MethodPatch, "/api/tasks/task-1", `{"status":"blocked"}`, nil)

		assert.Equal(t, http.StatusOK, rec.Code)
		m.tasks.AssertExpectations(t)
	})

	t.Run("invalid status", func(t *testing.T) {
		mux, m := newTestMux()

		rec := doRequest(mux, http.MethodPatch, "/api/tasks/task-1", `{"status":"done"}`, nil)

		assert.Equal(t, http.StatusBadRequest, rec.Code)
		m.tasks.AssertNotCalled(t, "Update", mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("unknown id", func(t *testing.T) {
		mux, m := newTestMux()
		m.tasks.On("Update", mock.Anything, "nope", mock.Anything).
			Return(nil, domain.NewNotFoundError("task with id nope"))

		rec := doRequest(mux, http.MethodPatch, "/api/tasks/nope", `{"title":"x"}`, nil)

		assert.Equal(t, http.StatusNotFound, rec.Code)
	})
}

func TestDeleteTask(t *testing.T) {
	t.Run("removed", func(t *testing.T) {
		mux, m := newTestMux()
		m.tasks.On("Delete", mock.Anything, "task-1").Return(true, nil)

		rec := doRequest(mux, http.MethodDelete, "/api/tasks/task-1", "", nil)

		assert.Equal(t, http.StatusNoContent, rec.Code)
	})

	t.Run("unknown id", func(t *testing.T) {
		mux, m := newTestMux()
		m.tasks.On("Delete", mock.Anything, "nope").Return(false, nil)

		rec := doRequest(mux, http.MethodDelete, "/api/tasks/nope", "", nil)

		assert.Equal(t, http.StatusNotFound, rec.Code)
	})
}

func TestCreateComment(t *testing.T) {
	t.Run("author from header", func(t *testing.T) {
		mux, m := newTestMux()
		userID := "user-2"
		m.comments.On("Create", mock.Anything, mock.MatchedBy(func(in domain.CreateComment) bool {
			return in.TaskID == "task-1" && in.AuthorID != nil && *in.AuthorID == "user-2"
		})).Return(&domain.Comment{ID: "c-1", TaskID: "task-1", UserID: &userID, Content: "done", CreatedAt: testTime}, nil)

		rec := doRequest(mux, http.MethodPost, "/api/tasks/task-1/comments",
			`{"content":"done"}`, map[string]string{"X-User-Id": "user-2"})

		assert.Equal(t, http.StatusCreated, rec.Code)
		m.comments.AssertExpectations(t)
	})

	t.Run("no author at all", func(t *testing.T) {
		mux, m := newTestMux()
		m.comments.On("Create", mock.Anything, mock.MatchedBy(func(in domain.CreateComment) bool {
			return in.AuthorID == nil
		})).Return(&domain.Comment{ID: "c-1", TaskID: "task-1", Content: "bot note", IsAutomated: true, CreatedAt: testTime}, nil)

		rec := doRequest(mux, http.MethodPost, "/api/tasks/task-1/comments", `{"content":"bot note"}`, nil)

		assert.Equal(t, http.StatusCreated, rec.Code)
		var resp handler.CommentResponse
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
		assert.True(t, resp.IsAutomated)
	})

	t.Run("empty content", func(t *testing.T) {
		mux, m := newTestMux()

		rec := doRequest(mux, http.MethodPost, "/api/tasks/task-1/comments", `{}`, nil)

		assert.Equal(t, http.StatusBadRequest, rec.Code)
		m.comments.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
	})
}

func TestListComments(t *testing.T) {
	mux, m := newTestMux()
	m.comments.On("List", mock.Anything, "task-1").Return([]*domain.Comment{}, nil)

	rec := doRequest(mux, http.MethodGet, "/api/tasks/task-1/comments", "", nil)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "[]\n", rec.Body.String())
}
