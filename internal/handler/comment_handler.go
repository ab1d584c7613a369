package handler

import (
	"net/http"
	"time"

	"github.com/teamdash/teamdash/internal/domain"
)

func (h *Handler) ListComments(w http.ResponseWriter, r *http.Request) {
	comments, err := h.commentService.List(r.Context(), r.PathValue("id"))
	if err != nil {
		h.handleError(w, err)
		return
	}
	h.writeJSON(w, http.StatusOK, domainCommentsToHTTP(comments))
}

func (h *Handler) CreateComment(w http.ResponseWriter, r *http.Request) {
	var req CreateCommentRequest
	if err := decodeBody(r, &req); err != nil {
		h.handleError(w, err)
		return
	}
	if err := validateCreateComment(req); err != nil {
		h.handleError(w, err)
		return
	}

	authorID := req.UserID
	if authorID == nil {
		if v := r.Header.Get("X-User-Id"); v != "" {
			authorID = &v
		}
	}

	comment, err := h.commentService.Create(r.Context(), domain.CreateComment{
		TaskID:      r.PathValue("id"),
		Content:     req.Content,
		AuthorID:    authorID,
		IsAutomated: req.IsAutomated,
	})
	if err != nil {
		h.handleError(w, err)
		return
	}
	h.writeJSON(w, http.StatusCreated, domainCommentToHTTP(comment))
}

func (h *Handler) Health(w http.ResponseWriter, r *http.Request) {
	h.writeJSON(w, http.StatusOK, HealthResponse{
		Status:    "ok",
		Timestamp: formatTime(time.Now()),
	})
}
