package handler

import (
	"net/http"
	"time"
)

// @Summary Healthcheck
// @Tags health
// @Produce json
// @Success 200 {object} map[string]any
// @Router /api/health [get]
func Health(w http.ResponseWriter, r *http.Request) {
	respondJSON(w, http.StatusOK, map[string]any{
		"status":    "ok",
		"timestamp": time.Now().UTC(),
	})
}
