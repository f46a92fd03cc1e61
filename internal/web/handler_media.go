package web

import (
	"errors"
	"io"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/vbonduro/amblitz/internal/media"
)

func (s *Server) handleMedia(w http.ResponseWriter, r *http.Request) {
	if s.media == nil {
		http.NotFound(w, r)
		return
	}
	key := chi.URLParam(r, "*")

	reader, mimeType, err := s.media.Get(r.Context(), key)
	if err != nil {
		if !errors.Is(err, media.ErrNotFound) {
			s.logger.Warn("media lookup rejected", "key", key, "error", err)
		}
		http.NotFound(w, r)
		return
	}
	defer closeWithLog(reader, "media reader", s.logger)

	w.Header().Set("Content-Type", mimeType)
	w.Header().Set("Cache-Control", "public, max-age=86400")
	if _, err := io.Copy(w, reader); err != nil {
		s.logger.Error("write media failed", "key", key, "error", err)
	}
}

func closeWithLog(c io.Closer, label string, logger *slog.Logger) {
	if err := c.Close(); err != nil {
		logger.Error("failed to close resource", "label", label, "error", err)
	}
}
