// Package topicprogress implements the per-(user, topic) completion
// tracking repository using PostgreSQL.
package topicprogress

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	postgres "github.com/learnlux/learnlux-backend/internal/adapter/postgres"
	"github.com/learnlux/learnlux-backend/internal/domain"
)

// Repo provides topic progress persistence backed by PostgreSQL.
type Repo struct {
	pool *pgxpool.Pool
}

// New creates a new topic progress repository.
func New(pool *pgxpool.Pool) *Repo {
	return &Repo{pool: pool}
}

const getOrCreateSQL = `
INSERT INTO topic_progress (user_id, topic_id, started_at, updated_at)
VALUES ($1, $2, $3, $3)
ON CONFLICT (user_id, topic_id) DO NOTHING`

const getSQL = `
SELECT user_id, topic_id, cards_seen, cards_mastered, started_at, completed_at, updated_at
FROM topic_progress
WHERE user_id = $1 AND topic_id = $2`

const updateSQL = `
UPDATE topic_progress
SET cards_seen = $3, cards_mastered = $4, completed_at = $5, updated_at = $6
WHERE user_id = $1 AND topic_id = $2`

const listByUserSQL = `
SELECT user_id, topic_id, cards_seen, cards_mastered, started_at, completed_at, updated_at
FROM topic_progress
WHERE user_id = $1
ORDER BY started_at ASC`

// GetOrCreate returns the (user, topic) progress row, creating an empty
// one the first time the user meets the topic.
func (r *Repo) GetOrCreate(ctx context.Context, userID, topicID uuid.UUID, now time.Time) (*domain.TopicProgress, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	if _, err := q.Exec(ctx, getOrCreateSQL, userID, topicID, now); err != nil {
		return nil, postgres.MapError(err, "topic progress", topicID.String())
	}

	rows, err := q.Query(ctx, getSQL, userID, topicID)
	if err != nil {
		return nil, postgres.MapError(err, "topic progress", topicID.String())
	}
	progress, err := pgx.CollectOneRow(rows, scanProgress)
	if err != nil {
		return nil, postgres.MapError(err, "topic progress", topicID.String())
	}
	return &progress, nil
}

// Update overwrites the mutable fields of a (user, topic) progress row.
func (r *Repo) Update(ctx context.Context, progress *domain.TopicProgress) error {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	tag, err := q.Exec(ctx, updateSQL,
		progress.UserID, progress.TopicID,
		progress.CardsSeen, progress.CardsMastered, progress.CompletedAt, time.Now().UTC(),
	)
	if err != nil {
		return postgres.MapError(err, "topic progress", progress.TopicID.String())
	}
	if tag.RowsAffected() == 0 {
		return postgres.MapError(pgx.ErrNoRows, "topic progress", progress.TopicID.String())
	}
	return nil
}

// ListByUser returns every topic the user has started.
func (r *Repo) ListByUser(ctx context.Context, userID uuid.UUID) ([]domain.TopicProgress, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	rows, err := q.Query(ctx, listByUserSQL, userID)
	if err != nil {
		return nil, postgres.MapError(err, "topic progress", userID.String())
	}
	list, err := pgx.CollectRows(rows, scanProgress)
	if err != nil {
		return nil, postgres.MapError(err, "topic progress", userID.String())
	}
	return list, nil
}

func scanProgress(row pgx.CollectableRow) (domain.TopicProgress, error) {
	var p domain.TopicProgress
	err := row.Scan(
		&p.UserID, &p.TopicID, &p.CardsSeen, &p.CardsMastered,
		&p.StartedAt, &p.CompletedAt, &p.UpdatedAt,
	)
	return p, err
}
