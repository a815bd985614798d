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

// DayRepo defines the persistence operations for TripDays.
type DayRepo interface {
	// GetByID retrieves a single day by its UUID primary key.
	// Returns domain.ErrNotFound if no day with that ID exists.
	GetByID(ctx context.Context, id uuid.UUID) (domain.TripDay, error)

	// ListByTrip returns all days of a trip ordered by day_index ascending.
	ListByTrip(ctx context.Context, tripID uuid.UUID) ([]domain.TripDay, error)

	// ReplaceForTrip deletes the trip's existing days and inserts one day per
	// entry in dates, with 1-based day_index following slice order. The
	// delete cascades to locations and hashtags on the removed days.
	ReplaceForTrip(ctx context.Context, tripID uuid.UUID, dates []domain.TripDay) ([]domain.TripDay, error)

	// UpdateNotes overwrites the journal notes of a day.
	// Returns domain.ErrNotFound if no day with that ID exists.
	UpdateNotes(ctx context.Context, id uuid.UUID, notes string) (domain.TripDay, error)
}

// pgDayRepo is the Postgres implementation of DayRepo.
type pgDayRepo struct {
	db db
}

// NewDayRepo constructs a DayRepo backed by the provided db connection.
func NewDayRepo(db db) DayRepo {
	return &pgDayRepo{db: db}
}

func (r *pgDayRepo) GetByID(ctx context.Context, id uuid.UUID) (domain.TripDay, error) {
	const q = `
		SELECT id, trip_id, date, day_index, notes, created_at, updated_at
		FROM trip_days
		WHERE id = @id`

	row := r.db.QueryRow(ctx, q, pgx.NamedArgs{"id": id})
	result, err := scanDay(row)
	if err != nil {
		return domain.TripDay{}, fmt.Errorf("repo.DayRepo.GetByID: %w", err)
	}
	return result, nil
}

func (r *pgDayRepo) ListByTrip(ctx context.Context, tripID uuid.UUID) ([]domain.TripDay, error) {
	const q = `
		SELECT id, trip_id, date, day_index, notes, created_at, updated_at
		FROM trip_days
		WHERE trip_id = @trip_id
		ORDER BY day_index`

	rows, err := r.db.Query(ctx, q, pgx.NamedArgs{"trip_id": tripID})
	if err != nil {
		return nil, fmt.Errorf("repo.DayRepo.ListByTrip: %w", err)
	}
	defer rows.Close()

	return collectDays(rows, "repo.DayRepo.ListByTrip")
}

// ReplaceForTrip rewrites the day set for a trip. The caller (TripService)
// runs it after every date change, so day rows never drift from the trip's
// inclusive date range.
func (r *pgDayRepo) ReplaceForTrip(ctx context.Context, tripID uuid.UUID, days []domain.TripDay) ([]domain.TripDay, error) {
	const del = `DELETE FROM trip_days WHERE trip_id = @trip_id`
	if _, err := r.db.Exec(ctx, del, pgx.NamedArgs{"trip_id": tripID}); err != nil {
		return nil, fmt.Errorf("repo.DayRepo.ReplaceForTrip: delete: %w", err)
	}

	const ins = `
		INSERT INTO trip_days (trip_id, date, day_index, notes)
		VALUES (@trip_id, @date, @day_index, @notes)
		RETURNING id, trip_id, date, day_index, notes, created_at, updated_at`

	out := make([]domain.TripDay, 0, len(days))
	for _, d := range days {
		args := pgx.NamedArgs{
			"trip_id":   tripID,
			"date":      d.Date,
			"day_index": d.DayIndex,
			"notes":     d.Notes,
		}
		created, err := scanDay(r.db.QueryRow(ctx, ins, args))
		if err != nil {
			return nil, fmt.Errorf("repo.DayRepo.ReplaceForTrip: insert: %w", err)
		}
		out = append(out, created)
	}
	return out, nil
}

func (r *pgDayRepo) UpdateNotes(ctx context.Context, id uuid.UUID, notes string) (domain.TripDay, error) {
	const q = `
		UPDATE trip_days
		SET notes = @notes, updated_at = now()
		WHERE id = @id
		RETURNING id, trip_id, date, day_index, notes, created_at, updated_at`

	row := r.db.QueryRow(ctx, q, pgx.NamedArgs{"id": id, "notes": notes})
	result, err := scanDay(row)
	if err != nil {
		return domain.TripDay{}, fmt.Errorf("repo.DayRepo.UpdateNotes: %w", err)
	}
	return result, nil
}

// scanDay maps a single database row into a domain.TripDay.
func scanDay(s scanner) (domain.TripDay, error) {
	var (
		d      domain.TripDay
		id     pgtype.UUID
		tripID pgtype.UUID
		date   pgtype.Date
	)

	err := s.Scan(&id, &tripID, &date, &d.DayIndex, &d.Notes, &d.CreatedAt, &d.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return domain.TripDay{}, domain.ErrNotFound
		}
		return domain.TripDay{}, err
	}

	d.ID = uuid.UUID(id.Bytes)
	d.TripID = uuid.UUID(tripID.Bytes)
	d.Date = date.Time
	return d, nil
}

func collectDays(rows pgx.Rows, op string) ([]domain.TripDay, error) {
	days := []domain.TripDay{}
	for rows.Next() {
		d, err := scanDay(rows)
		if err != nil {
			return nil, fmt.Errorf("%s: scan: %w", op, err)
		}
		days = append(days, d)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%s: rows: %w", op, err)
	}
	return days, nil
}
