package repo

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgtype"

	"github.com/curtishsu/travelog/internal/domain"
	"github.com/curtishsu/travelog/internal/stats"
)

// StatsRepo loads the flat record sets the statistics engine consumes.
// It deliberately returns un-joined rows: all reconciliation of the
// many-to-many relations happens inside the stats package, not in SQL.
type StatsRepo interface {
	// LoadInput fetches all trips, days, locations, hashtags, and types in
	// one call. Any fetch error aborts the whole load — the engine is never
	// invoked with a partial input set.
	LoadInput(ctx context.Context) (stats.Input, error)
}

// pgStatsRepo is the Postgres implementation of StatsRepo.
type pgStatsRepo struct {
	db db
}

// NewStatsRepo constructs a StatsRepo backed by the provided db connection.
func NewStatsRepo(db db) StatsRepo {
	return &pgStatsRepo{db: db}
}

func (r *pgStatsRepo) LoadInput(ctx context.Context) (stats.Input, error) {
	var in stats.Input
	var err error

	if in.Trips, err = r.loadTrips(ctx); err != nil {
		return stats.Input{}, fmt.Errorf("repo.StatsRepo.LoadInput: %w", err)
	}
	if in.Days, err = r.loadDays(ctx); err != nil {
		return stats.Input{}, fmt.Errorf("repo.StatsRepo.LoadInput: %w", err)
	}
	if in.Locations, err = r.loadLocations(ctx); err != nil {
		return stats.Input{}, fmt.Errorf("repo.StatsRepo.LoadInput: %w", err)
	}
	if in.Hashtags, err = r.loadHashtags(ctx); err != nil {
		return stats.Input{}, fmt.Errorf("repo.StatsRepo.LoadInput: %w", err)
	}
	if in.Types, err = r.loadTypes(ctx); err != nil {
		return stats.Input{}, fmt.Errorf("repo.StatsRepo.LoadInput: %w", err)
	}
	return in, nil
}

func (r *pgStatsRepo) loadTrips(ctx context.Context) ([]domain.Trip, error) {
	const q = `
		SELECT id, name, start_date, end_date, notes, created_at, updated_at
		FROM trips`

	rows, err := r.db.Query(ctx, q)
	if err != nil {
		return nil, fmt.Errorf("trips: %w", err)
	}
	defer rows.Close()

	return collectTrips(rows, "trips")
}

func (r *pgStatsRepo) loadDays(ctx context.Context) ([]domain.TripDay, error) {
	const q = `
		SELECT id, trip_id, date, day_index, notes, created_at, updated_at
		FROM trip_days`

	rows, err := r.db.Query(ctx, q)
	if err != nil {
		return nil, fmt.Errorf("days: %w", err)
	}
	defer rows.Close()

	return collectDays(rows, "days")
}

func (r *pgStatsRepo) loadLocations(ctx context.Context) ([]domain.TripLocation, error) {
	const q = `
		SELECT id, trip_day_id, city, region, country, created_at
		FROM trip_locations`

	rows, err := r.db.Query(ctx, q)
	if err != nil {
		return nil, fmt.Errorf("locations: %w", err)
	}
	defer rows.Close()

	return collectLocations(rows, "locations")
}

func (r *pgStatsRepo) loadHashtags(ctx context.Context) ([]domain.TripDayHashtag, error) {
	const q = `SELECT trip_day_id, hashtag FROM trip_day_hashtags`

	rows, err := r.db.Query(ctx, q)
	if err != nil {
		return nil, fmt.Errorf("hashtags: %w", err)
	}
	defer rows.Close()

	out := []domain.TripDayHashtag{}
	for rows.Next() {
		var (
			h     domain.TripDayHashtag
			dayID pgtype.UUID
		)
		if err := rows.Scan(&dayID, &h.Hashtag); err != nil {
			return nil, fmt.Errorf("hashtags: scan: %w", err)
		}
		h.TripDayID = uuid.UUID(dayID.Bytes)
		out = append(out, h)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("hashtags: rows: %w", err)
	}
	return out, nil
}

func (r *pgStatsRepo) loadTypes(ctx context.Context) ([]domain.TripType, error) {
	const q = `SELECT trip_id, type FROM trip_types`

	rows, err := r.db.Query(ctx, q)
	if err != nil {
		return nil, fmt.Errorf("types: %w", err)
	}
	defer rows.Close()

	out := []domain.TripType{}
	for rows.Next() {
		var (
			t      domain.TripType
			tripID pgtype.UUID
		)
		if err := rows.Scan(&tripID, &t.Type); err != nil {
			return nil, fmt.Errorf("types: scan: %w", err)
		}
		t.TripID = uuid.UUID(tripID.Bytes)
		out = append(out, t)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("types: rows: %w", err)
	}
	return out, nil
}
