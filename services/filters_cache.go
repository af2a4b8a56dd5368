package services

import (
	"context"

	"hotelbooking/dto"
)

// SaveLastFilters remembers the last search of a session for 30 minutes.
func SaveLastFilters(ctx context.Context, cache Cache, sessionID string, filters *dto.SearchFilters) error {
	if cache == nil || sessionID == "" {
		return nil
	}
	return cache.Set(ctx, cacheKeyLastFilters+sessionID, filters, lastFiltersTTL)
}

// GetLastFilters returns nil when the session has no remembered search.
func GetLastFilters(ctx context.Context, cache Cache, sessionID string) (*dto.SearchFilters, error) {
	if cache == nil || sessionID == "" {
		return nil, nil
	}
	var filters dto.SearchFilters
	found, err := cache.Get(ctx, cacheKeyLastFilters+sessionID, &filters)
	if err != nil || !found {
		return nil, err
	}
	return &filters, nil
}

// ClearLastFilters forgets the remembered search of a session.
func ClearLastFilters(ctx context.Context, cache Cache, sessionID string) error {
	if cache == nil || sessionID == "" {
		return nil
	}
	return cache.Delete(ctx, cacheKeyLastFilters+sessionID)
}
