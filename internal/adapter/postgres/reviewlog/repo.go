// Package reviewlog implements the append-only review history repository
// using PostgreSQL. Rows are written once and never updated.
package reviewlog

import (
	"context"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	postgres "github.com/learnlux/learnlux-backend/internal/adapter/postgres"
	"github.com/learnlux/learnlux-backend/internal/domain"
)

// Repo provides review log persistence backed by PostgreSQL.
type Repo struct {
	pool *pgxpool.Pool
}

// New creates a new review log repository.
func New(pool *pgxpool.Pool) *Repo {
	return &Repo{pool: pool}
}

const insertSQL = `
INSERT INTO review_logs (id, user_id, card_kind, card_id, direction, user_answer, was_correct, reviewed_at)
VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`

const listByCardSQL = `
SELECT id, user_id, card_kind, card_id, direction, user_answer, was_correct, reviewed_at
FROM review_logs
WHERE user_id = $1 AND card_kind = $2 AND card_id = $3
ORDER BY reviewed_at DESC
LIMIT $4`

const countByUserSQL = `SELECT count(*) FROM review_logs WHERE user_id = $1`

// Create appends one review record.
func (r *Repo) Create(ctx context.Context, log *domain.ReviewLog) error {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	_, err := q.Exec(ctx, insertSQL,
		log.ID, log.UserID, log.Card.Kind, log.Card.ID,
		log.Direction, log.UserAnswer, log.WasCorrect, log.ReviewedAt,
	)
	return postgres.MapError(err, "review log", log.ID.String())
}

// ListByCard returns the most recent reviews of one card by one user.
func (r *Repo) ListByCard(ctx context.Context, userID uuid.UUID, card domain.CardKey, limit int) ([]domain.ReviewLog, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	rows, err := q.Query(ctx, listByCardSQL, userID, card.Kind, card.ID, limit)
	if err != nil {
		return nil, postgres.MapError(err, "review logs", card.ID.String())
	}
	logs, err := pgx.CollectRows(rows, scanLog)
	if err != nil {
		return nil, postgres.MapError(err, "review logs", card.ID.String())
	}
	return logs, nil
}

// CountByUser returns the total number of reviews a user has submitted.
func (r *Repo) CountByUser(ctx context.Context, userID uuid.UUID) (int, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	var count int
	if err := q.QueryRow(ctx, countByUserSQL, userID).Scan(&count); err != nil {
		return 0, postgres.MapError(err, "review logs", userID.String())
	}
	return count, nil
}

func scanLog(row pgx.CollectableRow) (domain.ReviewLog, error) {
	var l domain.ReviewLog
	err := row.Scan(
		&l.ID, &l.UserID, &l.Card.Kind, &l.Card.ID,
		&l.Direction, &l.UserAnswer, &l.WasCorrect, &l.ReviewedAt,
	)
	return l, err
}
