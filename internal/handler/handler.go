package handler

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"net/http"

	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/unrolled/render"

	"github.com/vladislavprovich/rental-cache/internal/domaincache"
	"github.com/vladislavprovich/rental-cache/internal/model"
	"github.com/vladislavprovich/rental-cache/internal/service"
)

type Handler interface {
	Health(w http.ResponseWriter, r *http.Request)

	ListAccounts(w http.ResponseWriter, r *http.Request)
	SearchAccounts(w http.ResponseWriter, r *http.Request)
	GetAccount(w http.ResponseWriter, r *http.Request)
	CreateAccount(w http.ResponseWriter, r *http.Request)
	UpdateAccount(w http.ResponseWriter, r *http.Request)
	DeleteAccount(w http.ResponseWriter, r *http.Request)

	ListVehicles(w http.ResponseWriter, r *http.Request)
	GetVehicle(w http.ResponseWriter, r *http.Request)
	CreateVehicle(w http.ResponseWriter, r *http.Request)
	UpdateVehicle(w http.ResponseWriter, r *http.Request)
	DeleteVehicle(w http.ResponseWriter, r *http.Request)

	ListBookings(w http.ResponseWriter, r *http.Request)
	GetBooking(w http.ResponseWriter, r *http.Request)
	CreateBooking(w http.ResponseWriter, r *http.Request)
	UpdateBookingStatus(w http.ResponseWriter, r *http.Request)
	DeleteBooking(w http.ResponseWriter, r *http.Request)
	BookingMetrics(w http.ResponseWriter, r *http.Request)

	CacheStats(w http.ResponseWriter, r *http.Request)
	CacheKeys(w http.ResponseWriter, r *http.Request)
	CacheEntry(w http.ResponseWriter, r *http.Request)
	ClearCache(w http.ResponseWriter, r *http.Request)
	ClearAllCaches(w http.ResponseWriter, r *http.Request)
}

type ServiceHandler struct {
	service  *service.Service
	caches   *domaincache.Registry
	reporter *domaincache.Reporter
	logger   *slog.Logger
	cfg      *Config
	render   *render.Render
}

func NewServiceHandler(
	srv *service.Service,
	caches *domaincache.Registry,
	logger *slog.Logger,
	cfg *Config,
	render *render.Render,
) *ServiceHandler {
	return &ServiceHandler{
		service:  srv,
		caches:   caches,
		reporter: domaincache.NewReporter(caches),
		logger:   logger,
		cfg:      cfg,
		render:   render,
	}
}

type errorResponse struct {
	Error string `json:"error"`
}

func (h *ServiceHandler) sendJSON(ctx context.Context, w io.Writer, status int, body any) {
	if err := h.render.JSON(w, status, body); err != nil {
		h.logger.ErrorContext(ctx, "render JSON error", slog.Any("error", err))
	}
}

// sendError maps service errors to status codes.
func (h *ServiceHandler) sendError(ctx context.Context, w io.Writer, op string, err error) {
	var verrs validation.Errors
	switch {
	case errors.As(err, &verrs):
		h.sendJSON(ctx, w, http.StatusBadRequest, verrs)
	case errors.Is(err, model.ErrStartInPast):
		h.sendJSON(ctx, w, http.StatusBadRequest, errorResponse{Error: err.Error()})
	case errors.Is(err, model.ErrNotFound), errors.Is(err, domaincache.ErrUnknownDomain):
		h.sendJSON(ctx, w, http.StatusNotFound, errorResponse{Error: err.Error()})
	case errors.Is(err, model.ErrVehicleUnavailable), errors.Is(err, model.ErrAlreadyExists):
		h.sendJSON(ctx, w, http.StatusConflict, errorResponse{Error: err.Error()})
	default:
		h.logger.ErrorContext(ctx, op+" error", slog.Any("error", err))
		h.sendJSON(ctx, w, http.StatusInternalServerError, errorResponse{Error: "internal error"})
	}
}

func (h *ServiceHandler) decode(ctx context.Context, w io.Writer, r *http.Request, dst any) bool {
	if err := json.NewDecoder(r.Body).Decode(dst); err != nil {
		h.logger.WarnContext(ctx, "failed to decode request body", slog.Any("error", err))
		h.sendJSON(ctx, w, http.StatusBadRequest, errorResponse{Error: "invalid request body"})
		return false
	}
	return true
}
