// Package stats implements the aggregate user statistics repository using
// PostgreSQL.
package stats

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	postgres "github.com/learnlux/learnlux-backend/internal/adapter/postgres"
	"github.com/learnlux/learnlux-backend/internal/domain"
)

// Repo provides user stats persistence backed by PostgreSQL.
type Repo struct {
	pool *pgxpool.Pool
}

// New creates a new user stats repository.
func New(pool *pgxpool.Pool) *Repo {
	return &Repo{pool: pool}
}

// getOrCreateSQL upserts an empty row first so the subsequent read always
// finds one, even for a user's very first review.
const getOrCreateSQL = `
INSERT INTO user_stats (user_id, created_at, updated_at)
VALUES ($1, $2, $2)
ON CONFLICT (user_id) DO NOTHING`

const getSQL = `
SELECT user_id, total_cards_studied, total_correct, total_incorrect,
       current_streak, longest_streak, last_study_date, created_at, updated_at
FROM user_stats
WHERE user_id = $1`

const updateSQL = `
UPDATE user_stats
SET total_cards_studied = $2, total_correct = $3, total_incorrect = $4,
    current_streak = $5, longest_streak = $6, last_study_date = $7, updated_at = $8
WHERE user_id = $1`

// GetOrCreate returns the user's stats row, creating an empty one when the
// user has never studied.
func (r *Repo) GetOrCreate(ctx context.Context, userID uuid.UUID) (*domain.UserStats, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	if _, err := q.Exec(ctx, getOrCreateSQL, userID, time.Now().UTC()); err != nil {
		return nil, postgres.MapError(err, "user stats", userID.String())
	}

	rows, err := q.Query(ctx, getSQL, userID)
	if err != nil {
		return nil, postgres.MapError(err, "user stats", userID.String())
	}
	stats, err := pgx.CollectOneRow(rows, scanStats)
	if err != nil {
		return nil, postgres.MapError(err, "user stats", userID.String())
	}
	return &stats, nil
}

// Update overwrites the mutable fields of the user's stats row.
func (r *Repo) Update(ctx context.Context, stats *domain.UserStats) error {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	tag, err := q.Exec(ctx, updateSQL,
		stats.UserID, stats.TotalCardsStudied, stats.TotalCorrect, stats.TotalIncorrect,
		stats.CurrentStreak, stats.LongestStreak, stats.LastStudyDate, time.Now().UTC(),
	)
	if err != nil {
		return postgres.MapError(err, "user stats", stats.UserID.String())
	}
	if tag.RowsAffected() == 0 {
		return postgres.MapError(pgx.ErrNoRows, "user stats", stats.UserID.String())
	}
	return nil
}

func scanStats(row pgx.CollectableRow) (domain.UserStats, error) {
	var s domain.UserStats
	err := row.Scan(
		&s.UserID, &s.TotalCardsStudied, &s.TotalCorrect, &s.TotalIncorrect,
		&s.CurrentStreak, &s.LongestStreak, &s.LastStudyDate, &s.CreatedAt, &s.UpdatedAt,
	)
	return s, err
}
