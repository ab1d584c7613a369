package server

import (
	"net/http"

	"github.com/teamdash/teamdash/internal/handler"
)

func SetupRoutes(mux *http.ServeMux, h *handler.Handler) {
	mux.HandleFunc("GET /health", h.Health)

	mux.HandleFunc("GET /api/teams", h.ListTeams)
	mux.HandleFunc("POST /api/teams", h.CreateTeam)
	mux.HandleFunc("GET /api/teams/{id}", h.GetTeam)
	mux.HandleFunc("PATCH /api/teams/{id}", h.UpdateTeam)
	mux.HandleFunc("DELETE /api/teams/{id}", h.DeleteTeam)

	mux.HandleFunc("GET /api/users", h.ListUsers)
	mux.HandleFunc("POST /api/users", h.CreateUser)
	mux.HandleFunc("GET /api/users/{id}", h.GetUser)
	mux.HandleFunc("PATCH /api/users/{id}", h.UpdateUser)
	mux.HandleFunc("DELETE /api/users/{id}", h.DeleteUser)

	mux.HandleFunc("GET /api/tasks", h.ListTasks)
	mux.HandleFunc("POST /api/tasks", h.CreateTask)
	mux.HandleFunc("GET /api/tasks/kanban/{teamID}", h.GetKanban)
	mux.HandleFunc("GET /api/tasks/{id}", h.GetTask)
	mux.HandleFunc("PATCH /api/tasks/{id}", h.UpdateTask)
	mux.HandleFunc("DELETE /api/tasks/{id}", h.DeleteTask)
	mux.HandleFunc("GET /api/tasks/{id}/comments", h.ListComments)
	mux.HandleFunc("POST /api/tasks/{id}/comments", h.CreateComment)
}
