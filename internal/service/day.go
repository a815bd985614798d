package service

import (
	"context"
	"fmt"
	"strings"

	"github.com/google/uuid"

	"github.com/curtishsu/travelog/internal/domain"
	"github.com/curtishsu/travelog/internal/repo"
)

// DayService implements business logic for day-scoped operations: journal
// notes, locations, and hashtags. It holds the day repo so every operation
// can verify the parent day exists before touching child rows.
type DayService struct {
	days      repo.DayRepo
	locations repo.LocationRepo
	hashtags  repo.HashtagRepo
}

// NewDayService constructs a DayService backed by the provided repos.
func NewDayService(days repo.DayRepo, locations repo.LocationRepo, hashtags repo.HashtagRepo) *DayService {
	return &DayService{days: days, locations: locations, hashtags: hashtags}
}

// GetByID returns a single day by ID.
func (s *DayService) GetByID(ctx context.Context, id uuid.UUID) (domain.TripDay, error) {
	day, err := s.days.GetByID(ctx, id)
	if err != nil {
		return domain.TripDay{}, fmt.Errorf("service.DayService.GetByID: %w", err)
	}
	return day, nil
}

// UpdateNotes overwrites the journal notes of a day.
func (s *DayService) UpdateNotes(ctx context.Context, id uuid.UUID, notes string) (domain.TripDay, error) {
	day, err := s.days.UpdateNotes(ctx, id, notes)
	if err != nil {
		return domain.TripDay{}, fmt.Errorf("service.DayService.UpdateNotes: %w", err)
	}
	return day, nil
}

// AddLocation verifies the day exists, validates, then persists the location.
// At least one of city, region, or country must be set — a fully empty
// location would never contribute to anything.
func (s *DayService) AddLocation(ctx context.Context, loc domain.TripLocation) (domain.TripLocation, error) {
	if _, err := s.days.GetByID(ctx, loc.TripDayID); err != nil {
		return domain.TripLocation{}, fmt.Errorf("service.DayService.AddLocation: %w", err)
	}
	if emptyText(loc.City) && emptyText(loc.Region) && emptyText(loc.Country) {
		return domain.TripLocation{}, fmt.Errorf("%w: at least one of city, region, country is required", domain.ErrValidation)
	}
	created, err := s.locations.Create(ctx, loc)
	if err != nil {
		return domain.TripLocation{}, fmt.Errorf("service.DayService.AddLocation: %w", err)
	}
	return created, nil
}

// ListLocations returns all locations attached to a day.
// Always returns a non-nil slice so callers can safely range over it.
func (s *DayService) ListLocations(ctx context.Context, dayID uuid.UUID) ([]domain.TripLocation, error) {
	if _, err := s.days.GetByID(ctx, dayID); err != nil {
		return nil, fmt.Errorf("service.DayService.ListLocations: %w", err)
	}
	locs, err := s.locations.ListByDay(ctx, dayID)
	if err != nil {
		return nil, fmt.Errorf("service.DayService.ListLocations: %w", err)
	}
	if locs == nil {
		locs = []domain.TripLocation{}
	}
	return locs, nil
}

// RemoveLocation removes a location by ID, scoped to the given day.
func (s *DayService) RemoveLocation(ctx context.Context, dayID, locID uuid.UUID) error {
	if err := s.locations.Delete(ctx, dayID, locID); err != nil {
		return fmt.Errorf("service.DayService.RemoveLocation: %w", err)
	}
	return nil
}

// AddHashtag normalizes and attaches a hashtag to a day. Idempotent.
// Returns domain.ErrValidation if the hashtag normalizes to empty.
func (s *DayService) AddHashtag(ctx context.Context, dayID uuid.UUID, hashtag string) (string, error) {
	tag, err := normalizeHashtag(hashtag)
	if err != nil {
		return "", err
	}
	if _, err := s.days.GetByID(ctx, dayID); err != nil {
		return "", fmt.Errorf("service.DayService.AddHashtag: %w", err)
	}
	if err := s.hashtags.Add(ctx, dayID, tag); err != nil {
		return "", fmt.Errorf("service.DayService.AddHashtag: %w", err)
	}
	return tag, nil
}

// RemoveHashtag detaches a hashtag from a day, applying the same
// normalization as AddHashtag so callers can pass either form.
func (s *DayService) RemoveHashtag(ctx context.Context, dayID uuid.UUID, hashtag string) error {
	tag, err := normalizeHashtag(hashtag)
	if err != nil {
		return err
	}
	if err := s.hashtags.Remove(ctx, dayID, tag); err != nil {
		return fmt.Errorf("service.DayService.RemoveHashtag: %w", err)
	}
	return nil
}

// ListHashtags returns all hashtags on a day, ordered alphabetically.
// Always returns a non-nil slice so callers can safely range over it.
func (s *DayService) ListHashtags(ctx context.Context, dayID uuid.UUID) ([]string, error) {
	if _, err := s.days.GetByID(ctx, dayID); err != nil {
		return nil, fmt.Errorf("service.DayService.ListHashtags: %w", err)
	}
	tags, err := s.hashtags.ListByDay(ctx, dayID)
	if err != nil {
		return nil, fmt.Errorf("service.DayService.ListHashtags: %w", err)
	}
	if tags == nil {
		tags = []string{}
	}
	return tags, nil
}

// normalizeHashtag lowercases, trims, and strips a leading '#'. Hashtag
// identity is the normalized form, so "#Food", "food", and " FOOD " all
// refer to the same tag.
func normalizeHashtag(raw string) (string, error) {
	tag := strings.ToLower(strings.TrimSpace(raw))
	tag = strings.TrimPrefix(tag, "#")
	if tag == "" {
		return "", fmt.Errorf("%w: hashtag is required", domain.ErrValidation)
	}
	return tag, nil
}

// emptyText reports whether a nullable text field is nil or whitespace-only.
func emptyText(s *string) bool {
	return s == nil || strings.TrimSpace(*s) == ""
}
