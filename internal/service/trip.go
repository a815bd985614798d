// Package service contains the business logic for the Travelog API.
// Services validate inputs, enforce business rules, and orchestrate repo calls.
// No SQL lives here — services depend on repo interfaces, not implementations.
package service

import (
	"context"
	"fmt"
	"strings"

	"github.com/google/uuid"

	"github.com/curtishsu/travelog/internal/domain"
	"github.com/curtishsu/travelog/internal/repo"
)

// TripService implements business logic for Trip operations.
// It owns the day-generation rule: every trip has exactly one TripDay per
// calendar date in its inclusive start..end range, with 1-based day_index.
// The stats engine assumes this correspondence instead of re-deriving it.
type TripService struct {
	trips repo.TripRepo
	days  repo.DayRepo
}

// NewTripService constructs a TripService backed by the provided repos.
func NewTripService(trips repo.TripRepo, days repo.DayRepo) *TripService {
	return &TripService{trips: trips, days: days}
}

// Create validates and persists a new trip, then generates its day rows.
// Returns domain.ErrValidation if input violates business rules.
func (s *TripService) Create(ctx context.Context, trip domain.Trip) (domain.Trip, error) {
	if err := validateTrip(trip); err != nil {
		return domain.Trip{}, err
	}
	created, err := s.trips.Create(ctx, trip)
	if err != nil {
		return domain.Trip{}, fmt.Errorf("service.TripService.Create: %w", err)
	}
	if _, err := s.days.ReplaceForTrip(ctx, created.ID, generateDays(created)); err != nil {
		return domain.Trip{}, fmt.Errorf("service.TripService.Create: days: %w", err)
	}
	return created, nil
}

// GetByID returns a single trip by ID.
// Returns domain.ErrNotFound if no trip with that ID exists.
func (s *TripService) GetByID(ctx context.Context, id uuid.UUID) (domain.Trip, error) {
	result, err := s.trips.GetByID(ctx, id)
	if err != nil {
		return domain.Trip{}, fmt.Errorf("service.TripService.GetByID: %w", err)
	}
	return result, nil
}

// ListPaged returns one page of trips (most recent first) plus the total count.
func (s *TripService) ListPaged(ctx context.Context, p domain.PaginationParams) ([]domain.Trip, int64, error) {
	trips, total, err := s.trips.ListPaged(ctx, p)
	if err != nil {
		return nil, 0, fmt.Errorf("service.TripService.ListPaged: %w", err)
	}
	if trips == nil {
		trips = []domain.Trip{}
	}
	return trips, total, nil
}

// Update validates and persists changes to an existing trip. When the date
// range changed, the trip's day rows are regenerated; day notes on removed
// or shifted days are discarded with them, so unchanged ranges keep theirs.
func (s *TripService) Update(ctx context.Context, trip domain.Trip) (domain.Trip, error) {
	if err := validateTrip(trip); err != nil {
		return domain.Trip{}, err
	}
	current, err := s.trips.GetByID(ctx, trip.ID)
	if err != nil {
		return domain.Trip{}, fmt.Errorf("service.TripService.Update: %w", err)
	}

	updated, err := s.trips.Update(ctx, trip)
	if err != nil {
		return domain.Trip{}, fmt.Errorf("service.TripService.Update: %w", err)
	}

	datesChanged := !current.StartDate.Equal(updated.StartDate) || !current.EndDate.Equal(updated.EndDate)
	if datesChanged {
		if _, err := s.days.ReplaceForTrip(ctx, updated.ID, generateDays(updated)); err != nil {
			return domain.Trip{}, fmt.Errorf("service.TripService.Update: days: %w", err)
		}
	}
	return updated, nil
}

// Delete removes a trip by ID. Days, locations, hashtags, and types go with
// it via the database cascade.
func (s *TripService) Delete(ctx context.Context, id uuid.UUID) error {
	if err := s.trips.Delete(ctx, id); err != nil {
		return fmt.Errorf("service.TripService.Delete: %w", err)
	}
	return nil
}

// ListDays returns all days of a trip ordered by day_index.
// Returns domain.ErrNotFound if the trip does not exist.
func (s *TripService) ListDays(ctx context.Context, tripID uuid.UUID) ([]domain.TripDay, error) {
	if _, err := s.trips.GetByID(ctx, tripID); err != nil {
		return nil, fmt.Errorf("service.TripService.ListDays: %w", err)
	}
	days, err := s.days.ListByTrip(ctx, tripID)
	if err != nil {
		return nil, fmt.Errorf("service.TripService.ListDays: %w", err)
	}
	if days == nil {
		days = []domain.TripDay{}
	}
	return days, nil
}

// validateTrip enforces business rules common to both Create and Update.
//   - Name must be non-empty (whitespace-only names are rejected).
//   - EndDate must not be before StartDate.
func validateTrip(trip domain.Trip) error {
	if strings.TrimSpace(trip.Name) == "" {
		return fmt.Errorf("%w: name is required", domain.ErrValidation)
	}
	if trip.EndDate.Before(trip.StartDate) {
		return fmt.Errorf("%w: end_date must not be before start_date", domain.ErrValidation)
	}
	return nil
}

// generateDays builds one TripDay per calendar date in the trip's inclusive
// range, with 1-based day_index following date order.
func generateDays(trip domain.Trip) []domain.TripDay {
	n := trip.Days()
	out := make([]domain.TripDay, 0, n)
	for i := 0; i < n; i++ {
		out = append(out, domain.TripDay{
			Date:     trip.StartDate.AddDate(0, 0, i),
			DayIndex: i + 1,
		})
	}
	return out
}
