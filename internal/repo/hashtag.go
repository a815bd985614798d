package repo

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"github.com/curtishsu/travelog/internal/domain"
)

// HashtagRepo defines the persistence operations for day hashtags.
type HashtagRepo interface {
	// Add links a hashtag to a day. Idempotent — no error if already linked.
	Add(ctx context.Context, dayID uuid.UUID, hashtag string) error

	// Remove unlinks a hashtag from a day.
	// Returns domain.ErrNotFound if the hashtag is not on the day.
	Remove(ctx context.Context, dayID uuid.UUID, hashtag string) error

	// ListByDay returns all hashtags on a day, ordered alphabetically.
	ListByDay(ctx context.Context, dayID uuid.UUID) ([]string, error)
}

// pgHashtagRepo is the Postgres implementation of HashtagRepo.
type pgHashtagRepo struct {
	db db
}

// NewHashtagRepo constructs a HashtagRepo backed by the provided db connection.
func NewHashtagRepo(db db) HashtagRepo {
	return &pgHashtagRepo{db: db}
}

// Add links a hashtag to a day. Idempotent via ON CONFLICT DO NOTHING, which
// is also what keeps the same hashtag on the same day stored exactly once.
func (r *pgHashtagRepo) Add(ctx context.Context, dayID uuid.UUID, hashtag string) error {
	const q = `
		INSERT INTO trip_day_hashtags (trip_day_id, hashtag)
		VALUES (@trip_day_id, @hashtag)
		ON CONFLICT (trip_day_id, hashtag) DO NOTHING`

	_, err := r.db.Exec(ctx, q, pgx.NamedArgs{"trip_day_id": dayID, "hashtag": hashtag})
	if err != nil {
		return fmt.Errorf("repo.HashtagRepo.Add: %w", err)
	}
	return nil
}

func (r *pgHashtagRepo) Remove(ctx context.Context, dayID uuid.UUID, hashtag string) error {
	const q = `
		DELETE FROM trip_day_hashtags
		WHERE trip_day_id = @trip_day_id AND hashtag = @hashtag`

	tag, err := r.db.Exec(ctx, q, pgx.NamedArgs{"trip_day_id": dayID, "hashtag": hashtag})
	if err != nil {
		return fmt.Errorf("repo.HashtagRepo.Remove: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("repo.HashtagRepo.Remove: %w", domain.ErrNotFound)
	}
	return nil
}

func (r *pgHashtagRepo) ListByDay(ctx context.Context, dayID uuid.UUID) ([]string, error) {
	const q = `
		SELECT hashtag
		FROM trip_day_hashtags
		WHERE trip_day_id = @trip_day_id
		ORDER BY hashtag`

	rows, err := r.db.Query(ctx, q, pgx.NamedArgs{"trip_day_id": dayID})
	if err != nil {
		return nil, fmt.Errorf("repo.HashtagRepo.ListByDay: %w", err)
	}
	defer rows.Close()

	tags := []string{}
	for rows.Next() {
		var tag string
		if err := rows.Scan(&tag); err != nil {
			return nil, fmt.Errorf("repo.HashtagRepo.ListByDay: scan: %w", err)
		}
		tags = append(tags, tag)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("repo.HashtagRepo.ListByDay: rows: %w", err)
	}
	return tags, nil
}
