package service

import (
	"context"
	"net/http"
)

type HealthResponse struct {
	Status            int `json:"status"`
	TotalCacheEntries int `json:"total_cache_entries"`
}

func (s *Service) Health(_ context.Context) (*HealthResponse, error) {
	return &HealthResponse{
		Status:            http.StatusOK,
		TotalCacheEntries: s.caches.AllStats().TotalCacheEntries,
	}, nil
}
