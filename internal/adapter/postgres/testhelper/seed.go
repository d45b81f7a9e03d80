package testhelper

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/learnlux/learnlux-backend/internal/domain"
)

// uniqueSuffix returns a short unique string for generating non-conflicting test data.
func uniqueSuffix() string {
	return uuid.New().String()[:8]
}

// SeedUser creates a user row and returns its id.
func SeedUser(t *testing.T, pool *pgxpool.Pool) uuid.UUID {
	t.Helper()
	ctx := context.Background()

	suffix := uniqueSuffix()
	now := time.Now().UTC().Truncate(time.Microsecond)
	id := uuid.New()

	_, err := pool.Exec(ctx,
		`INSERT INTO users (id, email, name, created_at, updated_at)
		 VALUES ($1, $2, $3, $4, $4)`,
		id, "testuser-"+suffix+"@example.com", "Test User "+suffix, now,
	)
	if err != nil {
		t.Fatalf("testhelper: SeedUser insert user: %v", err)
	}

	return id
}

// SeedTopic creates a topic with a unique slug.
func SeedTopic(t *testing.T, pool *pgxpool.Pool, difficulty domain.Difficulty) domain.Topic {
	t.Helper()
	ctx := context.Background()

	suffix := uniqueSuffix()
	now := time.Now().UTC().Truncate(time.Microsecond)
	topic := domain.Topic{
		ID:         uuid.New(),
		Name:       "Topic " + suffix,
		Slug:       "topic-" + suffix,
		Difficulty: difficulty,
		CreatedAt:  now,
		UpdatedAt:  now,
	}

	_, err := pool.Exec(ctx,
		`INSERT INTO topics (id, name, slug, description, parent_id, difficulty, position, created_at, updated_at)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)`,
		topic.ID, topic.Name, topic.Slug, topic.Description, topic.ParentID,
		topic.Difficulty, topic.Position, topic.CreatedAt, topic.UpdatedAt,
	)
	if err != nil {
		t.Fatalf("testhelper: SeedTopic insert topic: %v", err)
	}

	return topic
}

// SeedCard creates an active card of the given kind linked to the given
// topics. Luxembourgish and English sides get unique texts.
func SeedCard(t *testing.T, pool *pgxpool.Pool, kind domain.CardKind, difficulty domain.Difficulty, topicIDs ...uuid.UUID) domain.Card {
	t.Helper()

	suffix := uniqueSuffix()
	return SeedCardWithText(t, pool, kind, difficulty, "lux-"+suffix, "eng-"+suffix, topicIDs...)
}

// SeedCardWithText creates an active card with explicit answer texts.
func SeedCardWithText(t *testing.T, pool *pgxpool.Pool, kind domain.CardKind, difficulty domain.Difficulty, lux, eng string, topicIDs ...uuid.UUID) domain.Card {
	t.Helper()
	ctx := context.Background()

	now := time.Now().UTC().Truncate(time.Microsecond)
	card := domain.Card{
		ID:            uuid.New(),
		Kind:          kind,
		Luxembourgish: lux,
		English:       eng,
		Difficulty:    difficulty,
		Register:      domain.RegisterNeutral,
		IsActive:      true,
		TopicIDs:      topicIDs,
		CreatedAt:     now,
		UpdatedAt:     now,
	}

	_, err := pool.Exec(ctx,
		`INSERT INTO cards (id, kind, luxembourgish, english, difficulty, register, is_active, created_at, updated_at)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)`,
		card.ID, card.Kind, card.Luxembourgish, card.English,
		card.Difficulty, card.Register, card.IsActive, card.CreatedAt, card.UpdatedAt,
	)
	if err != nil {
		t.Fatalf("testhelper: SeedCard insert card: %v", err)
	}

	for _, topicID := range topicIDs {
		_, err := pool.Exec(ctx,
			`INSERT INTO card_topics (card_id, topic_id) VALUES ($1, $2)`,
			card.ID, topicID,
		)
		if err != nil {
			t.Fatalf("testhelper: SeedCard insert card_topic: %v", err)
		}
	}

	return card
}

// DeactivateCard flips a card's is_active flag off.
func DeactivateCard(t *testing.T, pool *pgxpool.Pool, cardID uuid.UUID) {
	t.Helper()

	_, err := pool.Exec(context.Background(),
		`UPDATE cards SET is_active = FALSE WHERE id = $1`, cardID)
	if err != nil {
		t.Fatalf("testhelper: DeactivateCard: %v", err)
	}
}

// SeedProgress creates a scheduling state due at the given time.
func SeedProgress(t *testing.T, pool *pgxpool.Pool, userID uuid.UUID, card domain.CardKey, nextReviewAt time.Time) domain.CardProgress {
	t.Helper()
	ctx := context.Background()

	now := time.Now().UTC().Truncate(time.Microsecond)
	progress := domain.CardProgress{
		UserID:       userID,
		Card:         card,
		EaseFactor:   domain.DefaultEaseFactor,
		NextReviewAt: nextReviewAt,
		CreatedAt:    now,
		UpdatedAt:    now,
	}

	_, err := pool.Exec(ctx,
		`INSERT INTO card_progress (user_id, card_kind, card_id, times_shown, times_correct, times_incorrect,
		                            ease_factor, interval_days, repetitions, last_shown_at, next_review_at,
		                            created_at, updated_at)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $12)`,
		progress.UserID, progress.Card.Kind, progress.Card.ID,
		progress.TimesShown, progress.TimesCorrect, progress.TimesIncorrect,
		progress.EaseFactor, progress.IntervalDays, progress.Repetitions,
		progress.LastShownAt, progress.NextReviewAt, now,
	)
	if err != nil {
		t.Fatalf("testhelper: SeedProgress insert: %v", err)
	}

	return progress
}
