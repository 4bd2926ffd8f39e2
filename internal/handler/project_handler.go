package handler

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/sanjay-2003-ss/Projecthub-backend/internal/apperror"
	"github.com/sanjay-2003-ss/Projecthub-backend/internal/models"
	"github.com/sanjay-2003-ss/Projecthub-backend/internal/service"

	"github.com/go-chi/chi/v5"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

type ProjectHandler struct {
	svc *service.ProjectService
}

func NewProjectHandler(s *service.ProjectService) *ProjectHandler {
	return &ProjectHandler{svc: s}
}

func projectIDParam(r *http.Request) (primitive.ObjectID, error) {
	id, err := primitive.ObjectIDFromHex(chi.URLParam(r, "id"))
	if err != nil {
		return primitive.NilObjectID, apperror.Validation("id", "invalid project id")
	}
	return id, nil
}

// @Summary List projects (paginated, filterable)
// @Tags projects
// @Produce json
// @Param page query int false "page (default 1)"
// @Param limit query int false "page size (default 10, max 100)"
// @Param search query string false "substring match on title or description"
// @Param tag query string false "exact tag membership"
// @Success 200 {object} models.ProjectPage
// @Router /api/projects [get]
func (h *ProjectHandler) List(w http.ResponseWriter, r *http.Request) {
	page, _ := strconv.Atoi(r.URL.Query().Get("page"))
	limit, _ := strconv.Atoi(r.URL.Query().Get("limit"))

	q := models.ProjectListQuery{
		Page:     page,
		PageSize: limit,
		Search:   r.URL.Query().Get("search"),
		Tag:      r.URL.Query().Get("tag"),
	}

	result, err := h.svc.List(r.Context(), q)
	if err != nil {
		respondError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, result)
}

// @Summary Get a single project
// @Tags projects
// @Produce json
// @Param id path string true "project id"
// @Success 200 {object} models.ProjectDoc
// @Failure 404 {object} map[string]string
// @Router /api/projects/{id} [get]
func (h *ProjectHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, err := projectIDParam(r)
	if err != nil {
		respondError(w, err)
		return
	}

	p, err := h.svc.Get(r.Context(), id)
	if err != nil {
		respondError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, p)
}

// @Summary Create a project
// @Tags projects
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param body body models.ProjectCreateRequest true "project"
// @Success 201 {object} models.ProjectDoc
// @Router /api/projects [post]
func (h *ProjectHandler) Create(w http.ResponseWriter, r *http.Request) {
	user := UserFromContext(r.Context())

	var req models.ProjectCreateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondErrorMsg(w, http.StatusBadRequest, "invalid body")
		return
	}

	p, err := h.svc.Create(r.Context(), user, &req)
	if err != nil {
		respondError(w, err)
		return
	}

	respondJSON(w, http.StatusCreated, map[string]any{
		"success": true,
		"message": "Project created successfully",
		"project": p,
	})
}

// @Summary Update a project (owner only)
// @Tags projects
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param id path string true "project id"
// @Param body body models.ProjectUpdateRequest true "fields to update"
// @Success 200 {object} models.ProjectDoc
// @Failure 403 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /api/projects/{id} [put]
func (h *ProjectHandler) Update(w http.ResponseWriter, r *http.Request) {
	user := UserFromContext(r.Context())

	id, err := projectIDParam(r)
	if err != nil {
		respondError(w, err)
		return
	}

	var req models.ProjectUpdateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondErrorMsg(w, http.StatusBadRequest, "invalid body")
		return
	}

	p, err := h.svc.Update(r.Context(), user, id, &req)
	if err != nil {
		respondError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, p)
}

// @Summary Delete a project (owner only)
// @Tags projects
// @Security BearerAuth
// @Produce json
// @Param id path string true "project id"
// @Success 200 {object} map[string]string
// @Router /api/projects/{id} [delete]
func (h *ProjectHandler) Delete(w http.ResponseWriter, r *http.Request) {
	user := UserFromContext(r.Context())

	id, err := projectIDParam(r)
	if err != nil {
		respondError(w, err)
		return
	}

	if err := h.svc.Delete(r.Context(), user, id); err != nil {
		respondError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, map[string]string{"message": "Project deleted"})
}

// @Summary Toggle the caller's like on a project
// @Tags projects
// @Security BearerAuth
// @Produce json
// @Param id path string true "project id"
// @Success 200 {object} map[string]int
// @Router /api/projects/{id}/like [post]
func (h *ProjectHandler) ToggleLike(w http.ResponseWriter, r *http.Request) {
	user := UserFromContext(r.Context())

	id, err := projectIDParam(r)
	if err != nil {
		respondError(w, err)
		return
	}

	likes, err := h.svc.ToggleLike(r.Context(), user, id)
	if err != nil {
		respondError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, map[string]int{"likes": likes})
}

type rateRequest struct {
	Rating int `json:"rating"`
}

// @Summary Rate a project (1-5, one rating per user)
// @Tags projects
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param id path string true "project id"
// @Param body body rateRequest true "rating"
// @Success 200 {object} map[string]any
// @Failure 400 {object} map[string]string
// @Router /api/projects/{id}/rate [post]
func (h *ProjectHandler) Rate(w http.ResponseWriter, r *http.Request) {
	user := UserFromContext(r.Context())

	id, err := projectIDParam(r)
	if err != nil {
		respondError(w, err)
		return
	}

	var req rateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondErrorMsg(w, http.StatusBadRequest, "invalid body")
		return
	}

	avg, err := h.svc.Rate(r.Context(), user, id, req.Rating)
	if err != nil {
		respondError(w, err)
		return
	}

	respondJSON(w, http.StatusOK, map[string]any{
		"success":       true,
		"message":       "Rating updated successfully",
		"averageRating": avg,
	})
}

// @Summary List the caller's own projects
// @Tags projects
// @Security BearerAuth
// @Produce json
// @Success 200 {array} models.ProjectDoc
// @Router /api/projects/user/my-projects [get]
func (h *ProjectHandler) MyProjects(w http.ResponseWriter, r *http.Request) {
	user := UserFromContext(r.Context())

	list, err := h.svc.ByAuthor(r.Context(), user.ID)
	if err != nil {
		respondError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, list)
}
