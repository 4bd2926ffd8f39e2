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

type UserHandler struct {
	users    *service.UserService
	projects *service.ProjectService
}

func NewUserHandler(u *service.UserService, p *service.ProjectService) *UserHandler {
	return &UserHandler{users: u, projects: p}
}

// @Summary Create or update the caller's profile
// @Tags users
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param body body models.ProfileUpdateRequest true "profile fields"
// @Success 200 {object} models.UserDoc
// @Router /api/users/profile [post]
func (h *UserHandler) UpsertProfile(w http.ResponseWriter, r *http.Request) {
	ident, ok := IdentityFromContext(r.Context())
	if !ok {
		respondErrorMsg(w, http.StatusUnauthorized, "unauthenticated")
		return
	}

	var req models.ProfileUpdateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondErrorMsg(w, http.StatusBadRequest, "invalid body")
		return
	}

	u, err := h.users.UpsertProfile(r.Context(), ident, &req)
	if err != nil {
		respondError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, u)
}

// @Summary Public profile page: user plus their projects
// @Tags users
// @Produce json
// @Param uid path string true "external subject id"
// @Success 200 {object} map[string]any
// @Failure 404 {object} map[string]string
// @Router /api/users/profile/{uid} [get]
func (h *UserHandler) GetProfile(w http.ResponseWriter, r *http.Request) {
	uid := chi.URLParam(r, "uid")

	u, err := h.users.GetByUID(r.Context(), uid)
	if err != nil {
		respondError(w, err)
		return
	}

	projects, err := h.projects.ByAuthor(r.Context(), u.ID)
	if err != nil {
		respondError(w, err)
		return
	}

	// favorites stay private, profile pages expose the public view
	respondJSON(w, http.StatusOK, map[string]any{
		"user":     u.Public(),
		"projects": projects,
	})
}

// @Summary Current user, auto-provisioned on first contact
// @Tags users
// @Security BearerAuth
// @Produce json
// @Success 200 {object} models.UserDoc
// @Router /api/users/me [get]
func (h *UserHandler) Me(w http.ResponseWriter, r *http.Request) {
	// ResolveUser already did the get-or-create
	respondJSON(w, http.StatusOK, UserFromContext(r.Context()))
}

// @Summary Toggle a project in the caller's favorites
// @Tags users
// @Security BearerAuth
// @Produce json
// @Param projectId path string true "project id"
// @Success 200 {object} map[string]any
// @Router /api/users/favorites/{projectId} [post]
func (h *UserHandler) ToggleFavorite(w http.ResponseWriter, r *http.Request) {
	user := UserFromContext(r.Context())

	projectID, err := primitive.ObjectIDFromHex(chi.URLParam(r, "projectId"))
	if err != nil {
		respondError(w, apperror.Validation("projectId", "invalid project id"))
		return
	}

	favorites, err := h.users.ToggleFavorite(r.Context(), user, projectID)
	if err != nil {
		respondError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, map[string]any{"favorites": favorites})
}

// @Summary List the caller's favorite projects
// @Tags users
// @Security BearerAuth
// @Produce json
// @Success 200 {array} models.ProjectDoc
// @Router /api/users/favorites [get]
func (h *UserHandler) Favorites(w http.ResponseWriter, r *http.Request) {
	user := UserFromContext(r.Context())

	list, err := h.users.Favorites(r.Context(), user)
	if err != nil {
		respondError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, list)
}
