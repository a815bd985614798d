package repo

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

// TypeRepo defines the persistence operations for trip types.
type TypeRepo interface {
	// Replace overwrites the full type set of a trip.
	// Passing an empty slice clears all types.
	Replace(ctx context.Context, tripID uuid.UUID, types []string) error

	// ListByTrip returns all types on a trip, ordered alphabetically.
	ListByTrip(ctx context.Context, tripID uuid.UUID) ([]string, error)
}

// pgTypeRepo is the Postgres implementation of TypeRepo.
type pgTypeRepo struct {
	db db
}

// NewTypeRepo constructs a TypeRepo backed by the provided db connection.
func NewTypeRepo(db db) TypeRepo {
	return &pgTypeRepo{db: db}
}

// Replace clears and rewrites the trip's type set. The service layer has
// already deduplicated types, so plain inserts are safe.
func (r *pgTypeRepo) Replace(ctx context.Context, tripID uuid.UUID, types []string) error {
	const del = `DELETE FROM trip_types WHERE trip_id = @trip_id`
	if _, err := r.db.Exec(ctx, del, pgx.NamedArgs{"trip_id": tripID}); err != nil {
		return fmt.Errorf("repo.TypeRepo.Replace: delete: %w", err)
	}

	const ins = `INSERT INTO trip_types (trip_id, type) VALUES (@trip_id, @type)`
	for _, typ := range types {
		if _, err := r.db.Exec(ctx, ins, pgx.NamedArgs{"trip_id": tripID, "type": typ}); err != nil {
			return fmt.Errorf("repo.TypeRepo.Replace: insert: %w", err)
		}
	}
	return nil
}

func (r *pgTypeRepo) ListByTrip(ctx context.Context, tripID uuid.UUID) ([]string, error) {
	const q = `
		SELECT type
		FROM trip_types
		WHERE trip_id = @trip_id
		ORDER BY type`

	rows, err := r.db.Query(ctx, q, pgx.NamedArgs{"trip_id": tripID})
	if err != nil {
		return nil, fmt.Errorf("repo.TypeRepo.ListByTrip: %w", err)
	}
	defer rows.Close()

	types := []string{}
	for rows.Next() {
		var typ string
		if err := rows.Scan(&typ); err != nil {
			return nil, fmt.Errorf("repo.TypeRepo.ListByTrip: scan: %w", err)
		}
		types = append(types, typ)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("repo.TypeRepo.ListByTrip: rows: %w", err)
	}
	return types, nil
}
