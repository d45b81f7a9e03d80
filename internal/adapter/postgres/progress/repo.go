// Package progress implements the per-(user, card) scheduling state
// repository using PostgreSQL.
package progress

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	postgres "github.com/learnlux/learnlux-backend/internal/adapter/postgres"
	"github.com/learnlux/learnlux-backend/internal/domain"
)

// Repo provides card progress persistence backed by PostgreSQL.
type Repo struct {
	pool *pgxpool.Pool
}

// New creates a new card progress repository.
func New(pool *pgxpool.Pool) *Repo {
	return &Repo{pool: pool}
}

const progressColumns = `user_id, card_kind, card_id, times_shown, times_correct, times_incorrect,
       ease_factor, interval_days, repetitions, last_shown_at, next_review_at, created_at, updated_at`

const getSQL = `
SELECT ` + progressColumns + `
FROM card_progress
WHERE user_id = $1 AND card_kind = $2 AND card_id = $3`

const insertSQL = `
INSERT INTO card_progress (user_id, card_kind, card_id, times_shown, times_correct, times_incorrect,
                           ease_factor, interval_days, repetitions, last_shown_at, next_review_at,
                           created_at, updated_at)
VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $12)`

const updateSQL = `
UPDATE card_progress
SET times_shown = $4, times_correct = $5, times_incorrect = $6,
    ease_factor = $7, interval_days = $8, repetitions = $9,
    last_shown_at = $10, next_review_at = $11, updated_at = $12
WHERE user_id = $1 AND card_kind = $2 AND card_id = $3`

// listDueSQL joins the catalogue so due rows for deactivated cards never
// surface in study selection.
const listDueSQL = `
SELECT ` + prefixedProgressColumns + `
FROM card_progress p
JOIN cards c ON c.id = p.card_id AND c.kind = p.card_kind
WHERE p.user_id = $1 AND p.next_review_at <= $2 AND c.is_active
  AND ($3::uuid IS NULL OR EXISTS (
        SELECT 1 FROM card_topics ct WHERE ct.card_id = c.id AND ct.topic_id = $3))
ORDER BY p.next_review_at ASC
LIMIT $4`

const prefixedProgressColumns = `p.user_id, p.card_kind, p.card_id, p.times_shown, p.times_correct,
       p.times_incorrect, p.ease_factor, p.interval_days, p.repetitions, p.last_shown_at,
       p.next_review_at, p.created_at, p.updated_at`

const listSeenSQL = `
SELECT card_id FROM card_progress WHERE user_id = $1 AND card_kind = $2`

// Get returns the scheduling state for one (user, card) pair.
func (r *Repo) Get(ctx context.Context, userID uuid.UUID, card domain.CardKey) (*domain.CardProgress, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	rows, err := q.Query(ctx, getSQL, userID, card.Kind, card.ID)
	if err != nil {
		return nil, postgres.MapError(err, "progress", card.ID.String())
	}
	p, err := pgx.CollectOneRow(rows, scanProgress)
	if err != nil {
		return nil, postgres.MapError(err, "progress", card.ID.String())
	}
	return &p, nil
}

// Create inserts a fresh scheduling state.
func (r *Repo) Create(ctx context.Context, p *domain.CardProgress) error {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	now := time.Now().UTC()
	_, err := q.Exec(ctx, insertSQL,
		p.UserID, p.Card.Kind, p.Card.ID,
		p.TimesShown, p.TimesCorrect, p.TimesIncorrect,
		p.EaseFactor, p.IntervalDays, p.Repetitions,
		p.LastShownAt, p.NextReviewAt, now,
	)
	return postgres.MapError(err, "progress", p.Card.ID.String())
}

// Update overwrites the mutable fields of an existing scheduling state.
func (r *Repo) Update(ctx context.Context, p *domain.CardProgress) error {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	tag, err := q.Exec(ctx, updateSQL,
		p.UserID, p.Card.Kind, p.Card.ID,
		p.TimesShown, p.TimesCorrect, p.TimesIncorrect,
		p.EaseFactor, p.IntervalDays, p.Repetitions,
		p.LastShownAt, p.NextReviewAt, time.Now().UTC(),
	)
	if err != nil {
		return postgres.MapError(err, "progress", p.Card.ID.String())
	}
	if tag.RowsAffected() == 0 {
		return postgres.MapError(pgx.ErrNoRows, "progress", p.Card.ID.String())
	}
	return nil
}

// ListDue returns the user's earliest-due scheduling states for active
// cards, optionally restricted to one topic.
func (r *Repo) ListDue(ctx context.Context, userID uuid.UUID, now time.Time, topicID *uuid.UUID, limit int) ([]domain.CardProgress, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	rows, err := q.Query(ctx, listDueSQL, userID, now, topicID, limit)
	if err != nil {
		return nil, postgres.MapError(err, "due progress", userID.String())
	}
	due, err := pgx.CollectRows(rows, scanProgress)
	if err != nil {
		return nil, postgres.MapError(err, "due progress", userID.String())
	}
	return due, nil
}

// ListSeenCardIDs returns the ids of every card of the given kind the user
// has a scheduling state for.
func (r *Repo) ListSeenCardIDs(ctx context.Context, userID uuid.UUID, kind domain.CardKind) ([]uuid.UUID, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	rows, err := q.Query(ctx, listSeenSQL, userID, kind)
	if err != nil {
		return nil, postgres.MapError(err, "seen cards", userID.String())
	}
	ids, err := pgx.CollectRows(rows, pgx.RowTo[uuid.UUID])
	if err != nil {
		return nil, postgres.MapError(err, "seen cards", userID.String())
	}
	return ids, nil
}

func scanProgress(row pgx.CollectableRow) (domain.CardProgress, error) {
	var p domain.CardProgress
	err := row.Scan(
		&p.UserID, &p.Card.Kind, &p.Card.ID,
		&p.TimesShown, &p.TimesCorrect, &p.TimesIncorrect,
		&p.EaseFactor, &p.IntervalDays, &p.Repetitions,
		&p.LastShownAt, &p.NextReviewAt, &p.CreatedAt, &p.UpdatedAt,
	)
	return p, err
}
