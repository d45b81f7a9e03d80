// Package topic implements the topic repository using PostgreSQL.
package topic

import (
	"context"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	postgres "github.com/learnlux/learnlux-backend/internal/adapter/postgres"
	"github.com/learnlux/learnlux-backend/internal/domain"
)

// Repo provides topic persistence backed by PostgreSQL.
type Repo struct {
	pool *pgxpool.Pool
}

// New creates a new topic repository.
func New(pool *pgxpool.Pool) *Repo {
	return &Repo{pool: pool}
}

const topicColumns = `id, name, slug, description, parent_id, difficulty, position, created_at, updated_at`

const getByIDSQL = `SELECT ` + topicColumns + ` FROM topics WHERE id = $1`

const getBySlugSQL = `SELECT ` + topicColumns + ` FROM topics WHERE slug = $1`

const listSQL = `SELECT ` + topicColumns + ` FROM topics ORDER BY position ASC, name ASC`

const insertSQL = `
INSERT INTO topics (id, name, slug, description, parent_id, difficulty, position, created_at, updated_at)
VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)`

// GetByID returns a topic by primary key.
func (r *Repo) GetByID(ctx context.Context, id uuid.UUID) (*domain.Topic, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	rows, err := q.Query(ctx, getByIDSQL, id)
	if err != nil {
		return nil, postgres.MapError(err, "topic", id.String())
	}
	topic, err := pgx.CollectOneRow(rows, scanTopic)
	if err != nil {
		return nil, postgres.MapError(err, "topic", id.String())
	}
	return &topic, nil
}

// GetBySlug returns a topic by its unique slug.
func (r *Repo) GetBySlug(ctx context.Context, slug string) (*domain.Topic, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	rows, err := q.Query(ctx, getBySlugSQL, slug)
	if err != nil {
		return nil, postgres.MapError(err, "topic", slug)
	}
	topic, err := pgx.CollectOneRow(rows, scanTopic)
	if err != nil {
		return nil, postgres.MapError(err, "topic", slug)
	}
	return &topic, nil
}

// List returns all topics in curriculum order.
func (r *Repo) List(ctx context.Context) ([]domain.Topic, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	rows, err := q.Query(ctx, listSQL)
	if err != nil {
		return nil, postgres.MapError(err, "topics", "all")
	}
	topics, err := pgx.CollectRows(rows, scanTopic)
	if err != nil {
		return nil, postgres.MapError(err, "topics", "all")
	}
	return topics, nil
}

// Create inserts a topic.
func (r *Repo) Create(ctx context.Context, topic *domain.Topic) error {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	_, err := q.Exec(ctx, insertSQL,
		topic.ID, topic.Name, topic.Slug, topic.Description, topic.ParentID,
		topic.Difficulty, topic.Position, topic.CreatedAt, topic.UpdatedAt,
	)
	return postgres.MapError(err, "topic", topic.Slug)
}

func scanTopic(row pgx.CollectableRow) (domain.Topic, error) {
	var t domain.Topic
	err := row.Scan(
		&t.ID, &t.Name, &t.Slug, &t.Description, &t.ParentID,
		&t.Difficulty, &t.Position, &t.CreatedAt, &t.UpdatedAt,
	)
	return t, err
}
