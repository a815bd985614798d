package service

import (
	"context"
	"fmt"
	"sort"
	"strings"

	"github.com/google/uuid"

	"github.com/curtishsu/travelog/internal/repo"
)

// TypeService implements business logic for trip types.
// Its primary responsibility is normalization: types are lowercase, trimmed,
// and deduplicated before they reach the database.
type TypeService struct {
	trips repo.TripRepo
	types repo.TypeRepo
}

// NewTypeService constructs a TypeService backed by the provided repos.
func NewTypeService(trips repo.TripRepo, types repo.TypeRepo) *TypeService {
	return &TypeService{trips: trips, types: types}
}

// Replace overwrites the full type set of a trip with the normalized input.
// An empty input clears all types. Entries that normalize to empty are
// dropped rather than rejected.
// Returns domain.ErrNotFound if the trip does not exist.
func (s *TypeService) Replace(ctx context.Context, tripID uuid.UUID, types []string) ([]string, error) {
	if _, err := s.trips.GetByID(ctx, tripID); err != nil {
		return nil, fmt.Errorf("service.TypeService.Replace: %w", err)
	}

	normalized := normalizeTypes(types)
	if err := s.types.Replace(ctx, tripID, normalized); err != nil {
		return nil, fmt.Errorf("service.TypeService.Replace: %w", err)
	}
	return normalized, nil
}

// ListByTrip returns all types on a trip, ordered alphabetically.
// Always returns a non-nil slice so callers can safely range over it.
func (s *TypeService) ListByTrip(ctx context.Context, tripID uuid.UUID) ([]string, error) {
	if _, err := s.trips.GetByID(ctx, tripID); err != nil {
		return nil, fmt.Errorf("service.TypeService.ListByTrip: %w", err)
	}
	types, err := s.types.ListByTrip(ctx, tripID)
	if err != nil {
		return nil, fmt.Errorf("service.TypeService.ListByTrip: %w", err)
	}
	if types == nil {
		types = []string{}
	}
	return types, nil
}

// normalizeTypes lowercases, trims, dedupes, and sorts the input.
func normalizeTypes(types []string) []string {
	seen := make(map[string]struct{}, len(types))
	out := make([]string, 0, len(types))
	for _, t := range types {
		norm := strings.ToLower(strings.TrimSpace(t))
		if norm == "" {
			continue
		}
		if _, dup := seen[norm]; dup {
			continue
		}
		seen[norm] = struct{}{}
		out = append(out, norm)
	}
	sort.Strings(out)
	return out
}
