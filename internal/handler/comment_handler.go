package handler

import (
	"encoding/json"
	"net/http"

	"github.com/sanjay-2003-ss/Projecthub-backend/internal/apperror"
	"github.com/sanjay-2003-ss/Projecthub-backend/internal/models"
	"github.com/sanjay-2003-ss/Projecthub-backend/internal/service"

	"github.com/go-chi/chi/v5"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

type CommentHandler struct {
	svc *service.CommentService
}

func NewCommentHandler(s *service.CommentService) *CommentHandler {
	return &CommentHandler{svc: s}
}

// @Summary List a project's comments, newest first
// @Tags comments
// @Produce json
// @Param projectId path string true "project id"
// @Success 200 {array} models.CommentDoc
// @Router /api/comments/project/{projectId} [get]
func (h *CommentHandler) ListByProject(w http.ResponseWriter, r *http.Request) {
	projectID, err := primitive.ObjectIDFromHex(chi.URLParam(r, "projectId"))
	if err != nil {
		respondError(w, apperror.Validation("projectId", "invalid project id"))
		return
	}

	list, err := h.svc.ListByProject(r.Context(), projectID)
	if err != nil {
		respondError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, list)
}

// @Summary Add a comment to a project
// @Tags comments
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param body body models.CommentCreateRequest true "comment"
// @Success 201 {object} map[string]any
// @Failure 400 {object} map[string]string
// @Router /api/comments [post]
func (h *CommentHandler) Create(w http.ResponseWriter, r *http.Request) {
	user := UserFromContext(r.Context())

	var req models.CommentCreateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondErrorMsg(w, http.StatusBadRequest, "invalid body")
		return
	}

	projectID, err := primitive.ObjectIDFromHex(req.ProjectID)
	if err != nil {
		respondError(w, apperror.Validation("projectId", "invalid project id"))
		return
	}

	c, err := h.svc.Create(r.Context(), user, projectID, req.Text)
	if err != nil {
		respondError(w, err)
		return
	}

	respondJSON(w, http.StatusCreated, map[string]any{
		"success": true,
		"message": "Comment added successfully.",
		"comment": c,
	})
}

// @Summary Delete a comment (author only)
// @Tags comments
// @Security BearerAuth
// @Produce json
// @Param id path string true "comment id"
// @Success 200 {object} map[string]any
// @Failure 403 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /api/comments/{id} [delete]
func (h *CommentHandler) Delete(w http.ResponseWriter, r *http.Request) {
	user := UserFromContext(r.Context())

	id, err := primitive.ObjectIDFromHex(chi.URLParam(r, "id"))
	if err != nil {
		respondError(w, apperror.Validation("id", "invalid comment id"))
		return
	}

	if err := h.svc.Delete(r.Context(), user, id); err != nil {
		respondError(w, err)
		return
	}

	respondJSON(w, http.StatusOK, map[string]any{
		"success": true,
		"message": "Comment deleted successfully.",
	})
}
