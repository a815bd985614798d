package repo

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"

	"github.com/curtishsu/travelog/internal/domain"
)

// LocationRepo defines the persistence operations for TripLocations.
// Write and single-read operations are scoped by dayID to enforce ownership.
type LocationRepo interface {
	// Create inserts a new location and returns the persisted record.
	Create(ctx context.Context, loc domain.TripLocation) (domain.TripLocation, error)

	// ListByDay returns all locations for a day ordered by created_at ascending.
	ListByDay(ctx context.Context, dayID uuid.UUID) ([]domain.TripLocation, error)

	// Delete removes a location by ID, scoped to the given dayID.
	// Returns domain.ErrNotFound if no location with that ID exists under that day.
	Delete(ctx context.Context, dayID, locID uuid.UUID) error
}

// pgLocationRepo is the Postgres implementation of LocationRepo.
type pgLocationRepo struct {
	db db
}

// NewLocationRepo constructs a LocationRepo backed by the provided db connection.
func NewLocationRepo(db db) LocationRepo {
	return &pgLocationRepo{db: db}
}

func (r *pgLocationRepo) Create(ctx context.Context, loc domain.TripLocation) (domain.TripLocation, error) {
	const q = `
		INSERT INTO trip_locations (trip_day_id, city, region, country)
		VALUES (@trip_day_id, @city, @region, @country)
		RETURNING id, trip_day_id, city, region, country, created_at`

	args := pgx.NamedArgs{
		"trip_day_id": loc.TripDayID,
		"city":        loc.City, // nil becomes NULL
		"region":      loc.Region,
		"country":     loc.Country,
	}

	row := r.db.QueryRow(ctx, q, args)
	result, err := scanLocation(row)
	if err != nil {
		return domain.TripLocation{}, fmt.Errorf("repo.LocationRepo.Create: %w", err)
	}
	return result, nil
}

func (r *pgLocationRepo) ListByDay(ctx context.Context, dayID uuid.UUID) ([]domain.TripLocation, error) {
	const q = `
		SELECT id, trip_day_id, city, region, country, created_at
		FROM trip_locations
		WHERE trip_day_id = @trip_day_id
		ORDER BY created_at`

	rows, err := r.db.Query(ctx, q, pgx.NamedArgs{"trip_day_id": dayID})
	if err != nil {
		return nil, fmt.Errorf("repo.LocationRepo.ListByDay: %w", err)
	}
	defer rows.Close()

	return collectLocations(rows, "repo.LocationRepo.ListByDay")
}

func (r *pgLocationRepo) Delete(ctx context.Context, dayID, locID uuid.UUID) error {
	const q = `DELETE FROM trip_locations WHERE id = @id AND trip_day_id = @trip_day_id`

	tag, err := r.db.Exec(ctx, q, pgx.NamedArgs{"id": locID, "trip_day_id": dayID})
	if err != nil {
		return fmt.Errorf("repo.LocationRepo.Delete: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("repo.LocationRepo.Delete: %w", domain.ErrNotFound)
	}
	return nil
}

// scanLocation maps a single database row into a domain.TripLocation.
// NULL city/region/country stay nil pointers.
func scanLocation(s scanner) (domain.TripLocation, error) {
	var (
		l     domain.TripLocation
		id    pgtype.UUID
		dayID pgtype.UUID
	)

	err := s.Scan(&id, &dayID, &l.City, &l.Region, &l.Country, &l.CreatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return domain.TripLocation{}, domain.ErrNotFound
		}
		return domain.TripLocation{}, err
	}

	l.ID = uuid.UUID(id.Bytes)
	l.TripDayID = uuid.UUID(dayID.Bytes)
	return l, nil
}

func collectLocations(rows pgx.Rows, op string) ([]domain.TripLocation, error) {
	locs := []domain.TripLocation{}
	for rows.Next() {
		l, err := scanLocation(rows)
		if err != nil {
			return nil, fmt.Errorf("%s: scan: %w", op, err)
		}
		locs = append(locs, l)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%s: rows: %w", op, err)
	}
	return locs, nil
}
