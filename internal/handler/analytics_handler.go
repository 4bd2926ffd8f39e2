package handler

import (
	"net/http"

	"github.com/sanjay-2003-ss/Projecthub-backend/internal/service"
)

type AnalyticsHandler struct {
	svc *service.AnalyticsService
}

func NewAnalyticsHandler(s *service.AnalyticsService) *AnalyticsHandler {
	return &AnalyticsHandler{svc: s}
}

// @Summary Aggregate rollup: counts, most liked, top rated, popular tags
// @Tags analytics
// @Produce json
// @Success 200 {object} models.Analytics
// @Router /api/analytics [get]
func (h *AnalyticsHandler) Get(w http.ResponseWriter, r *http.Request) {
	a, err := h.svc.Rollup(r.Context())
	if err != nil {
		respondError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, a)
}
