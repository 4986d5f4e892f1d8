package api

import (
	"net/http"
	"time"

	"github.com/trovehq/trove/internal/api/respond"
	"github.com/trovehq/trove/internal/store"
)

// HealthHandler handles health check endpoints.
type HealthHandler struct {
	kv store.KV
}

// NewHealthHandler creates a new health handler bound to the store handle.
func NewHealthHandler(kv store.KV) *HealthHandler {
	return &HealthHandler{kv: kv}
}

// CheckHealth handles GET /api/health. The single dependency is the embedded
// store, probed inline; the response always carries a 200 with the status in
// the body.
func (h *HealthHandler) CheckHealth(w http.ResponseWriter, r *http.Request) {
	status := "healthy"
	if err := h.kv.Ping(r.Context()); err != nil {
		status = "unhealthy"
	}
	respond.WriteJSON(w, http.StatusOK, map[string]interface{}{
		"status":    status,
		"timestamp": time.Now().Format(time.RFC3339),
	})
}
