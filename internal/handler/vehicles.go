package handler

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/vladislavprovich/rental-cache/internal/model"
)

// ListVehicles serves all vehicles, or a filtered view when ?status= or
// ?location= (available vehicles only) is given.
func (h *ServiceHandler) ListVehicles(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	query := r.URL.Query()

	var (
		resp []model.Vehicle
		err  error
	)
	switch {
	case query.Get("location") != "":
		resp, err = h.service.ListAvailableVehicles(ctx, query.Get("location"))
	case query.Get("status") != "":
		resp, err = h.service.ListVehiclesByStatus(ctx, query.Get("status"))
	default:
		resp, err = h.service.ListVehicles(ctx)
	}
	if err != nil {
		h.sendError(ctx, w, "ListVehicles", err)
		return
	}

	h.sendJSON(ctx, w, http.StatusOK, resp)
}

func (h *ServiceHandler) GetVehicle(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	resp, err := h.service.GetVehicle(ctx, chi.URLParam(r, "id"))
	if err != nil {
		h.sendError(ctx, w, "GetVehicle", err)
		return
	}

	h.sendJSON(ctx, w, http.StatusOK, resp)
}

func (h *ServiceHandler) CreateVehicle(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var req model.VehicleRequest
	if !h.decode(ctx, w, r, &req) {
		return
	}

	resp, err := h.service.CreateVehicle(ctx, &req)
	if err != nil {
		h.sendError(ctx, w, "CreateVehicle", err)
		return
	}

	h.sendJSON(ctx, w, http.StatusCreated, resp)
}

func (h *ServiceHandler) UpdateVehicle(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var req model.VehicleRequest
	if !h.decode(ctx, w, r, &req) {
		return
	}

	resp, err := h.service.UpdateVehicle(ctx, chi.URLParam(r, "id"), &req)
	if err != nil {
		h.sendError(ctx, w, "UpdateVehicle", err)
		return
	}

	h.sendJSON(ctx, w, http.StatusOK, resp)
}

func (h *ServiceHandler) DeleteVehicle(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	if err := h.service.DeleteVehicle(ctx, chi.URLParam(r, "id")); err != nil {
		h.sendError(ctx, w, "DeleteVehicle", err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
