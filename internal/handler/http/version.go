package http

import (
	"net/http"
)

func (h *Handler) getServerVersion(w http.ResponseWriter, r *http.Request) {
	serverVersion := h.services.AppInfo.Version()

	w.Header().Set("Content-Type", "text/plain")
	w.Write([]byte(serverVersion))
}
