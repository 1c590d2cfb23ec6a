package handler

import (
	"fmt"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	chiMiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"

	logger2 "github.com/vladislavprovich/rental-cache/pkg/logger"
)

func NewRouter(handler Handler, logger *slog.Logger, cfg *Config) *chi.Mux {
	mux := chi.NewRouter()

	mux.Use(chiMiddleware.Recoverer)
	mux.Use(chiMiddleware.Timeout(cfg.Timeout))

	mux.Use(cors.Handler(cors.Options{
		AllowedOrigins: []string{"https://*", "http://*"},
		AllowedMethods: []string{
			http.MethodGet,
			http.MethodPost,
			http.MethodPut,
			http.MethodDelete,
			http.MethodOptions,
		},
		AllowedHeaders:   []string{"Accept", "Content-Type", "authorization"},
		AllowCredentials: cfg.AllowCredentials,
		MaxAge:           int(cfg.MaxAge),
	}))

	wrappedLogger := &logger2.Logger{Logger: logger}
	mux.Use(chiMiddleware.RequestID)
	mux.Use(chiMiddleware.RequestLogger(&chiMiddleware.DefaultLogFormatter{
		Logger:  wrappedLogger,
		NoColor: true,
	}))

	mux.Get("/health", handler.Health)

	routeURL := fmt.Sprintf("/api/%s", cfg.APIVersion)
	mux.Route(routeURL, func(r chi.Router) {
		r.Route("/accounts", func(r chi.Router) {
			r.Get("/", handler.ListAccounts)
			r.Post("/", handler.CreateAccount)
			r.Get("/search/{email}", handler.SearchAccounts)
			r.Get("/{id}", handler.GetAccount)
			r.Put("/{id}", handler.UpdateAccount)
			r.Delete("/{id}", handler.DeleteAccount)
		})

		r.Route("/vehicles", func(r chi.Router) {
			r.Get("/", handler.ListVehicles)
			r.Post("/", handler.CreateVehicle)
			r.Get("/{id}", handler.GetVehicle)
			r.Put("/{id}", handler.UpdateVehicle)
			r.Delete("/{id}", handler.DeleteVehicle)
		})

		r.Route("/bookings", func(r chi.Router) {
			r.Get("/", handler.ListBookings)
			r.Post("/", handler.CreateBooking)
			r.Get("/metrics", handler.BookingMetrics)
			r.Get("/{id}", handler.GetBooking)
			r.Put("/{id}/status", handler.UpdateBookingStatus)
			r.Delete("/{id}", handler.DeleteBooking)
		})

		r.Route("/cache", func(r chi.Router) {
			r.Get("/stats", handler.CacheStats)
			r.Delete("/", handler.ClearAllCaches)
			r.Get("/{domain}/keys", handler.CacheKeys)
			r.Get("/{domain}/entries/{key}", handler.CacheEntry)
			r.Delete("/{domain}", handler.ClearCache)
		})
	})

	return mux
}
