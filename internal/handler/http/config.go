package http

import (
	"encoding/json"
	"net/http"

	"github.com/vperelygin/go-conf-sync/internal/logger"
)

// valueResponse is the envelope for single-value reads. Value is null when
// nothing exists at the requested path.
type valueResponse struct {
	Path  string `json:"path"`
	Value any    `json:"value"`
}

// getFullConfig serves GET /api/config: the complete resolved document with
// runtime overrides layered on top.
func (h *Handler) getFullConfig(w http.ResponseWriter, r *http.Request) {
	h.writeJSON(w, r, h.services.Config.GetFullConfig())
}

// getConfigValue serves GET /api/config/value?path=<dot.path>: the effective
// value at one path. An empty path yields the full resolved document.
func (h *Handler) getConfigValue(w http.ResponseWriter, r *http.Request) {
	path := r.URL.Query().Get("path")
	h.writeJSON(w, r, valueResponse{
		Path:  path,
		Value: h.services.Config.GetConfig(path),
	})
}

// getOverrides serves GET /api/overrides?path=<dot.path>: the raw override
// value at one path, or the whole override tree when path is empty.
func (h *Handler) getOverrides(w http.ResponseWriter, r *http.Request) {
	path := r.URL.Query().Get("path")
	h.writeJSON(w, r, valueResponse{
		Path:  path,
		Value: h.services.Config.GetOverrides(path),
	})
}

// getStoreDocument serves GET /api/store: the persisted document exactly as
// written, without override layering.
func (h *Handler) getStoreDocument(w http.ResponseWriter, r *http.Request) {
	h.writeJSON(w, r, h.services.Config.GetStore())
}

func (h *Handler) writeJSON(w http.ResponseWriter, r *http.Request, body any) {
	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(body); err != nil {
		logger.FromRequest(r).Err(err).Msg("error writing response body")
	}
}
