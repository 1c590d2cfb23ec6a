package handler

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/vladislavprovich/rental-cache/internal/model"
)

func (h *ServiceHandler) ListBookings(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	query := r.URL.Query()

	var (
		resp []model.Booking
		err  error
	)
	switch {
	case query.Get("account_id") != "":
		resp, err = h.service.ListBookingsByAccount(ctx, query.Get("account_id"))
	case query.Get("status") != "":
		resp, err = h.service.ListBookingsByStatus(ctx, query.Get("status"))
	default:
		resp, err = h.service.ListBookings(ctx)
	}
	if err != nil {
		h.sendError(ctx, w, "ListBookings", err)
		return
	}

	h.sendJSON(ctx, w, http.StatusOK, h.service.Describe(ctx, resp...))
}

func (h *ServiceHandler) GetBooking(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	resp, err := h.service.GetBooking(ctx, chi.URLParam(r, "id"))
	if err != nil {
		h.sendError(ctx, w, "GetBooking", err)
		return
	}

	h.sendJSON(ctx, w, http.StatusOK, h.service.Describe(ctx, *resp)[0])
}

func (h *ServiceHandler) CreateBooking(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var req model.BookingRequest
	if !h.decode(ctx, w, r, &req) {
		return
	}

	resp, err := h.service.CreateBooking(ctx, &req)
	if err != nil {
		h.sendError(ctx, w, "CreateBooking", err)
		return
	}

	h.sendJSON(ctx, w, http.StatusCreated, h.service.Describe(ctx, *resp)[0])
}

func (h *ServiceHandler) UpdateBookingStatus(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var req model.BookingStatusRequest
	if !h.decode(ctx, w, r, &req) {
		return
	}

	resp, err := h.service.UpdateBookingStatus(ctx, chi.URLParam(r, "id"), &req)
	if err != nil {
		h.sendError(ctx, w, "UpdateBookingStatus", err)
		return
	}

	h.sendJSON(ctx, w, http.StatusOK, h.service.Describe(ctx, *resp)[0])
}

func (h *ServiceHandler) DeleteBooking(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	if err := h.service.DeleteBooking(ctx, chi.URLParam(r, "id")); err != nil {
		h.sendError(ctx, w, "DeleteBooking", err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

func (h *ServiceHandler) BookingMetrics(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	resp, err := h.service.BookingMetrics(ctx)
	if err != nil {
		h.sendError(ctx, w, "BookingMetrics", err)
		return
	}

	h.sendJSON(ctx, w, http.StatusOK, resp)
}
