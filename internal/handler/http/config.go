package http

import (
	"net/http"

	"github.com/MKhiriev/go-env-server/internal/logger"
)

func (h *Handler) serveConfig(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", h.payload.ContentType)
	w.WriteHeader(http.StatusOK)

	if _, err := w.Write(h.payload.Body); err != nil {
		logger.FromRequest(r).Error().Err(err).Msg("error writing config payload")
	}
}
