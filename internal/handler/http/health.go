package http

import (
	"net/http"

	"github.com/MKhiriev/go-blog-api/internal/logger"
	"github.com/MKhiriev/go-blog-api/internal/service"
)

// health reports the last probe result; 503 when the database is down.
func (h *Handler) health(w http.ResponseWriter, r *http.Request) {
	report := h.services.HealthService.Status(r.Context())

	status := http.StatusOK
	if report.Status == service.StatusUnhealthy {
		status = http.StatusServiceUnavailable
	}

	h.writeJSON(w, r, report, status)
}

// getServerVersion answers with the bare version string as text/plain.
func (h *Handler) getServerVersion(w http.ResponseWriter, r *http.Request) {
	version := h.services.AppInfoService.GetAppVersion(r.Context())

	w.Header().Set("Content-Type", "text/plain")
	if _, err := w.Write([]byte(version)); err != nil {
		logger.FromRequest(r).Debug().Err(err).Msg("writing version")
	}
}
