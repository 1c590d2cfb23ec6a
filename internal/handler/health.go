package handler

import "net/http"

func (h *ServiceHandler) Health(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	resp, err := h.service.Health(ctx)
	if err != nil {
		h.sendError(ctx, w, "Health", err)
		return
	}

	h.sendJSON(ctx, w, http.StatusOK, resp)
}
