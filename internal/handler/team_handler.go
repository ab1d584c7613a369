package handler

import (
	"net/http"

	"github.com/teamdash/teamdash/internal/domain"
)

func (h *Handler) ListTeams(w http.ResponseWriter, r *http.Request) {
	teams, err := h.teamService.List(r.Context())
	if err != nil {
		h.handleError(w, err)
		return
	}
	h.writeJSON(w, http.StatusOK, domainTeamsToHTTP(teams))
}

func (h *Handler) GetTeam(w http.ResponseWriter, r *http.Request) {
	team, err := h.teamService.Get(r.Context(), r.PathValue("id"))
	if err != nil {
		h.handleError(w, err)
		return
	}
	h.writeJSON(w, http.StatusOK, domainTeamToHTTP(team))
}

func (h *Handler) CreateTeam(w http.ResponseWriter, r *http.Request) {
	var req CreateTeamRequest
	if err := decodeBody(r, &req); err != nil {
		h.handleError(w, err)
		return
	}
	if err := validateCreateTeam(req); err != nil {
		h.handleError(w, err)
		return
	}

	team, err := h.teamService.Create(r.Context(), domain.CreateTeam{
		Name:        req.Name,
		Description: req.Description,
	})
	if err != nil {
		h.handleError(w, err)
		return
	}
	h.writeJSON(w, http.StatusCreated, domainTeamToHTTP(team))
}

func (h *Handler) UpdateTeam(w http.ResponseWriter, r *http.Request) {
	var req UpdateTeamRequest
	if err := decodeBody(r, &req); err != nil {
		h.handleError(w, err)
		return
	}

	team, err := h.teamService.Update(r.Context(), r.PathValue("id"), domain.TeamUpdate{
		Name:        req.Name,
		Description: req.Description,
	})
	if err != nil {
		h.handleError(w, err)
		return
	}
	h.writeJSON(w, http.StatusOK, domainTeamToHTTP(team))
}

func (h *Handler) DeleteTeam(w http.ResponseWriter, r *http.Request) {
	existed, err := h.teamService.Delete(r.Context(), r.PathValue("id"))
	if err != nil {
		h.handleError(w, err)
		return
	}
	if !existed {
		h.handleError(w, domain.NewNotFoundError("team"))
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
