package handler

import (
	"net/http"

	"github.com/teamdash/teamdash/internal/domain"
)

func (h *Handler) ListUsers(w http.ResponseWriter, r *http.Request) {
	users, err := h.userService.List(r.Context(), r.URL.Query().Get("team_id"))
	if err != nil {
		h.handleError(w, err)
		return
	}
	h.writeJSON(w, http.StatusOK, domainUsersToHTTP(users))
}

func (h *Handler) GetUser(w http.ResponseWriter, r *http.Request) {
	user, err := h.userService.Get(r.Context(), r.PathValue("id"))
	if err != nil {
		h.handleError(w, err)
		return
	}
	h.writeJSON(w, http.StatusOK, domainUserToHTTP(user))
}

func (h *Handler) CreateUser(w http.ResponseWriter, r *http.Request) {
	var req CreateUserRequest
	if err := decodeBody(r, &req); err != nil {
		h.handleError(w, err)
		return
	}
	if err := validateCreateUser(req); err != nil {
		h.handleError(w, err)
		return
	}

	user, err := h.userService.Create(r.Context(), domain.CreateUser{
		Email:  req.Email,
		Name:   req.Name,
		TeamID: req.TeamID,
		Role:   domain.UserRole(req.Role),
	})
	if err != nil {
		h.handleError(w, err)
		return
	}
	h.writeJSON(w, http.StatusCreated, domainUserToHTTP(user))
}

func (h *Handler) UpdateUser(w http.ResponseWriter, r *http.Request) {
	var req UpdateUserRequest
	if err := decodeBody(r, &req); err != nil {
		h.handleError(w, err)
		return
	}
	if err := validateUpdateUser(req); err != nil {
		h.handleError(w, err)
		return
	}

	user, err := h.userService.Update(r.Context(), r.PathValue("id"), httpUserUpdateToDomain(req))
	if err != nil {
		h.handleError(w, err)
		return
	}
	h.writeJSON(w, http.StatusOK, domainUserToHTTP(user))
}

func (h *Handler) DeleteUser(w http.ResponseWriter, r *http.Request) {
	existed, err := h.userService.Delete(r.Context(), r.PathValue("id"))
	if err != nil {
		h.handleError(w, err)
		return
	}
	if !existed {
		h.handleError(w, domain.NewNotFoundError("user"))
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
