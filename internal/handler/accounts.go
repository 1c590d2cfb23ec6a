package handler

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/vladislavprovich/rental-cache/internal/model"
)

func (h *ServiceHandler) ListAccounts(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	resp, err := h.service.ListAccounts(ctx)
	if err != nil {
		h.sendError(ctx, w, "ListAccounts", err)
		return
	}

	h.sendJSON(ctx, w, http.StatusOK, resp)
}

func (h *ServiceHandler) SearchAccounts(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	resp, err := h.service.SearchAccounts(ctx, chi.URLParam(r, "email"))
	if err != nil {
		h.sendError(ctx, w, "SearchAccounts", err)
		return
	}

	h.sendJSON(ctx, w, http.StatusOK, resp)
}

func (h *ServiceHandler) GetAccount(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	resp, err := h.service.GetAccount(ctx, chi.URLParam(r, "id"))
	if err != nil {
		h.sendError(ctx, w, "GetAccount", err)
		return
	}

	h.sendJSON(ctx, w, http.StatusOK, resp)
}

func (h *ServiceHandler) CreateAccount(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var req model.AccountRequest
	if !h.decode(ctx, w, r, &req) {
		return
	}

	resp, err := h.service.CreateAccount(ctx, &req)
	if err != nil {
		h.sendError(ctx, w, "CreateAccount", err)
		return
	}

	h.sendJSON(ctx, w, http.StatusCreated, resp)
}

func (h *ServiceHandler) UpdateAccount(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var req model.AccountRequest
	if !h.decode(ctx, w, r, &req) {
		return
	}

	resp, err := h.service.UpdateAccount(ctx, chi.URLParam(r, "id"), &req)
	if err != nil {
		h.sendError(ctx, w, "UpdateAccount", err)
		return
	}

	h.sendJSON(ctx, w, http.StatusOK, resp)
}

func (h *ServiceHandler) DeleteAccount(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	if err := h.service.DeleteAccount(ctx, chi.URLParam(r, "id")); err != nil {
		h.sendError(ctx, w, "DeleteAccount", err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
