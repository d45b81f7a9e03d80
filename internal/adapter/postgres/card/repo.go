// Package card implements the card catalogue repository using PostgreSQL.
// Fixed-shape queries use raw SQL; the candidate filter for multiple-choice
// distractors is built dynamically with squirrel.
package card

import (
	"context"
	"fmt"

	sq "github.com/Masterminds/squirrel"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	postgres "github.com/learnlux/learnlux-backend/internal/adapter/postgres"
	"github.com/learnlux/learnlux-backend/internal/domain"
)

// Repo provides card catalogue persistence backed by PostgreSQL.
type Repo struct {
	pool *pgxpool.Pool
}

// New creates a new card repository.
func New(pool *pgxpool.Pool) *Repo {
	return &Repo{pool: pool}
}

// cardColumns is the shared SELECT list; every card query aggregates the
// card's topic ids in one round trip.
const cardColumns = `c.id, c.kind, c.luxembourgish, c.english, c.difficulty, c.register,
       c.is_active, c.created_at, c.updated_at,
       COALESCE(array_agg(ct.topic_id) FILTER (WHERE ct.topic_id IS NOT NULL), '{}') AS topic_ids`

const getByKeySQL = `
SELECT ` + cardColumns + `
FROM cards c
LEFT JOIN card_topics ct ON ct.card_id = c.id
WHERE c.id = $1 AND c.kind = $2
GROUP BY c.id`

const firstUnseenSQL = `
SELECT ` + cardColumns + `
FROM cards c
LEFT JOIN card_topics ct ON ct.card_id = c.id
WHERE c.kind = $1 AND c.is_active
  AND NOT (c.id = ANY($2::uuid[]))
  AND ($3::uuid IS NULL OR EXISTS (
        SELECT 1 FROM card_topics tf WHERE tf.card_id = c.id AND tf.topic_id = $3))
GROUP BY c.id
ORDER BY c.difficulty ASC, c.created_at ASC
LIMIT 1`

const getByTextSQL = `
SELECT ` + cardColumns + `
FROM cards c
LEFT JOIN card_topics ct ON ct.card_id = c.id
WHERE c.kind = $1 AND c.luxembourgish = $2 AND c.english = $3
GROUP BY c.id`

const countActiveByTopicSQL = `
SELECT count(*)
FROM cards c
JOIN card_topics ct ON ct.card_id = c.id
WHERE ct.topic_id = $1 AND c.is_active`

const insertCardSQL = `
INSERT INTO cards (id, kind, luxembourgish, english, difficulty, register, is_active, created_at, updated_at)
VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)`

const insertCardTopicSQL = `
INSERT INTO card_topics (card_id, topic_id)
VALUES ($1, $2)
ON CONFLICT DO NOTHING`

// GetByKey returns a card by its (kind, id) identity, active or not.
func (r *Repo) GetByKey(ctx context.Context, key domain.CardKey) (*domain.Card, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	rows, err := q.Query(ctx, getByKeySQL, key.ID, key.Kind)
	if err != nil {
		return nil, postgres.MapError(err, "card", key.ID.String())
	}

	card, err := pgx.CollectOneRow(rows, scanCard)
	if err != nil {
		return nil, postgres.MapError(err, "card", key.ID.String())
	}
	return &card, nil
}

// ListCandidates returns active cards matching the distractor filter.
// All criteria are ANDed; empty slice criteria are skipped.
func (r *Repo) ListCandidates(ctx context.Context, filter domain.CandidateFilter) ([]domain.Card, error) {
	qb := sq.Select(cardColumns).
		From("cards c").
		LeftJoin("card_topics ct ON ct.card_id = c.id").
		Where(sq.Eq{"c.kind": filter.Kind}).
		Where("c.is_active").
		GroupBy("c.id").
		OrderBy("c.created_at ASC").
		PlaceholderFormat(sq.Dollar)

	if len(filter.TopicIDs) > 0 {
		qb = qb.Where("EXISTS (SELECT 1 FROM card_topics ti WHERE ti.card_id = c.id AND ti.topic_id = ANY(?))",
			filter.TopicIDs)
	}
	if len(filter.ExcludeTopicIDs) > 0 {
		qb = qb.Where("NOT EXISTS (SELECT 1 FROM card_topics te WHERE te.card_id = c.id AND te.topic_id = ANY(?))",
			filter.ExcludeTopicIDs)
	}
	if filter.Difficulty != nil {
		qb = qb.Where(sq.Eq{"c.difficulty": *filter.Difficulty})
	}
	if filter.ExcludeDifficulty != nil {
		qb = qb.Where(sq.NotEq{"c.difficulty": *filter.ExcludeDifficulty})
	}
	if len(filter.ExcludeIDs) > 0 {
		qb = qb.Where("NOT (c.id = ANY(?))", filter.ExcludeIDs)
	}
	if filter.Limit > 0 {
		qb = qb.Limit(uint64(filter.Limit))
	}

	sqlStr, args, err := qb.ToSql()
	if err != nil {
		return nil, fmt.Errorf("build candidate query: %w", err)
	}

	q := postgres.QuerierFromCtx(ctx, r.pool)
	rows, err := q.Query(ctx, sqlStr, args...)
	if err != nil {
		return nil, postgres.MapError(err, "cards", string(filter.Kind))
	}

	cards, err := pgx.CollectRows(rows, scanCard)
	if err != nil {
		return nil, postgres.MapError(err, "cards", string(filter.Kind))
	}
	return cards, nil
}

// FirstUnseen returns the easiest, oldest active card of the given kind
// whose id is not in seenIDs, optionally restricted to one topic.
// Returns domain.ErrNotFound when the pool is empty.
func (r *Repo) FirstUnseen(ctx context.Context, kind domain.CardKind, topicID *uuid.UUID, seenIDs []uuid.UUID) (*domain.Card, error) {
	if seenIDs == nil {
		seenIDs = []uuid.UUID{}
	}

	q := postgres.QuerierFromCtx(ctx, r.pool)
	rows, err := q.Query(ctx, firstUnseenSQL, kind, seenIDs, topicID)
	if err != nil {
		return nil, postgres.MapError(err, "card", string(kind))
	}

	card, err := pgx.CollectOneRow(rows, scanCard)
	if err != nil {
		return nil, postgres.MapError(err, "card", string(kind))
	}
	return &card, nil
}

// GetByText returns a card by its unique (kind, luxembourgish, english)
// content. Used by the seeder for idempotent loads.
func (r *Repo) GetByText(ctx context.Context, kind domain.CardKind, lux, eng string) (*domain.Card, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	rows, err := q.Query(ctx, getByTextSQL, kind, lux, eng)
	if err != nil {
		return nil, postgres.MapError(err, "card", lux)
	}

	card, err := pgx.CollectOneRow(rows, scanCard)
	if err != nil {
		return nil, postgres.MapError(err, "card", lux)
	}
	return &card, nil
}

// CountActiveByTopic returns the number of active cards in a topic.
func (r *Repo) CountActiveByTopic(ctx context.Context, topicID uuid.UUID) (int, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	var count int
	if err := q.QueryRow(ctx, countActiveByTopicSQL, topicID).Scan(&count); err != nil {
		return 0, postgres.MapError(err, "topic cards", topicID.String())
	}
	return count, nil
}

// Create inserts a card and its topic links. Callers that need the card
// and links to appear together should run it inside a transaction.
func (r *Repo) Create(ctx context.Context, card *domain.Card) error {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	_, err := q.Exec(ctx, insertCardSQL,
		card.ID, card.Kind, card.Luxembourgish, card.English,
		card.Difficulty, card.Register, card.IsActive,
		card.CreatedAt, card.UpdatedAt,
	)
	if err != nil {
		return postgres.MapError(err, "card", card.ID.String())
	}

	for _, topicID := range card.TopicIDs {
		if _, err := q.Exec(ctx, insertCardTopicSQL, card.ID, topicID); err != nil {
			return postgres.MapError(err, "card topic", topicID.String())
		}
	}
	return nil
}

// scanCard scans one card row including the aggregated topic ids.
func scanCard(row pgx.CollectableRow) (domain.Card, error) {
	var c domain.Card
	err := row.Scan(
		&c.ID, &c.Kind, &c.Luxembourgish, &c.English, &c.Difficulty,
		&c.Register, &c.IsActive, &c.CreatedAt, &c.UpdatedAt, &c.TopicIDs,
	)
	return c, err
}
