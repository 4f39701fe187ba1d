package api

import (
	"net/http"

	"github.com/IvanChernomyrdin/go-aquamate/internal/shared/models"
)

// Health проверяет доступность БД.
//
// @Summary      Health check
// @Tags         health
// @Produce      json
// @Success      200 {object} models.HealthResponse
// @Failure      503 {object} models.HealthResponse
// @Router       /health [get]
func (h *Handler) Health(w http.ResponseWriter, r *http.Request) {
	if err := h.Svc.Health.Check(r.Context()); err != nil {
		h.Log.Logger.Sugar().Warnw("health check failed", "error", err)
		writeJSON(w, http.StatusServiceUnavailable, models.HealthResponse{Status: "unavailable"})
		return
	}
	writeJSON(w, http.StatusOK, models.HealthResponse{Status: "ok"})
}
