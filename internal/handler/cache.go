package handler

import (
	"fmt"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/vladislavprovich/rental-cache/internal/model"
)

type (
	clearResponse struct {
		Cleared int `json:"cleared"`
	}

	keysResponse struct {
		Domain string   `json:"domain"`
		Keys   []string `json:"keys"`
	}
)

func (h *ServiceHandler) CacheStats(w http.ResponseWriter, r *http.Request) {
	h.sendJSON(r.Context(), w, http.StatusOK, h.reporter.Report())
}

func (h *ServiceHandler) CacheKeys(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	domain, err := h.caches.Domain(chi.URLParam(r, "domain"))
	if err != nil {
		h.sendError(ctx, w, "CacheKeys", err)
		return
	}

	h.sendJSON(ctx, w, http.StatusOK, keysResponse{
		Domain: string(domain.Name()),
		Keys:   domain.Keys(),
	})
}

func (h *ServiceHandler) CacheEntry(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	domain, err := h.caches.Domain(chi.URLParam(r, "domain"))
	if err != nil {
		h.sendError(ctx, w, "CacheEntry", err)
		return
	}

	key := chi.URLParam(r, "key")
	info, ok := domain.Inspect(key)
	if !ok {
		h.sendError(ctx, w, "CacheEntry", fmt.Errorf("cache key %q: %w", key, model.ErrNotFound))
		return
	}

	h.sendJSON(ctx, w, http.StatusOK, info)
}

func (h *ServiceHandler) ClearCache(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	domain, err := h.caches.Domain(chi.URLParam(r, "domain"))
	if err != nil {
		h.sendError(ctx, w, "ClearCache", err)
		return
	}

	cleared := domain.Clear()
	h.logger.InfoContext(ctx, "cache cleared", slog.String("domain", string(domain.Name())), slog.Int("cleared", cleared))

	h.sendJSON(ctx, w, http.StatusOK, clearResponse{Cleared: cleared})
}

func (h *ServiceHandler) ClearAllCaches(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	cleared := h.caches.ClearAll()
	h.logger.InfoContext(ctx, "all caches cleared", slog.Int("cleared", cleared))

	h.sendJSON(ctx, w, http.StatusOK, clearResponse{Cleared: cleared})
}
