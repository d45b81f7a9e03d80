// Package seeder loads the sample Luxembourgish starter content:
// a small topic curriculum plus vocabulary and phrase cards. It is
// idempotent: topics are matched by slug, cards by their text, and
// existing rows are left untouched.
package seeder

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/learnlux/learnlux-backend/internal/domain"
)

type topicRepo interface {
	GetBySlug(ctx context.Context, slug string) (*domain.Topic, error)
	Create(ctx context.Context, topic *domain.Topic) error
}

type cardRepo interface {
	GetByText(ctx context.Context, kind domain.CardKind, lux, eng string) (*domain.Card, error)
	Create(ctx context.Context, card *domain.Card) error
}

// Summary reports what one run actually inserted.
type Summary struct {
	TopicsCreated  int
	TopicsSkipped  int
	VocabCreated   int
	PhrasesCreated int
	CardsSkipped   int
}

// Seeder writes the sample content through the catalogue repositories.
type Seeder struct {
	log    *slog.Logger
	topics topicRepo
	cards  cardRepo
}

// New creates a Seeder.
func New(log *slog.Logger, topics topicRepo, cards cardRepo) *Seeder {
	return &Seeder{log: log, topics: topics, cards: cards}
}

// Run loads topics first (parents before children), then vocabulary and
// phrase cards. Already-present rows are counted as skipped.
func (s *Seeder) Run(ctx context.Context) (Summary, error) {
	var sum Summary

	topicIDs, err := s.seedTopics(ctx, &sum)
	if err != nil {
		return sum, err
	}

	if err := s.seedVocabulary(ctx, topicIDs, &sum); err != nil {
		return sum, err
	}
	if err := s.seedPhrases(ctx, topicIDs, &sum); err != nil {
		return sum, err
	}

	s.log.InfoContext(ctx, "sample data loaded",
		slog.Int("topics_created", sum.TopicsCreated),
		slog.Int("vocab_created", sum.VocabCreated),
		slog.Int("phrases_created", sum.PhrasesCreated),
		slog.Int("cards_skipped", sum.CardsSkipped),
	)
	return sum, nil
}

func (s *Seeder) seedTopics(ctx context.Context, sum *Summary) (map[string]uuid.UUID, error) {
	ids := make(map[string]uuid.UUID, len(sampleTopics))

	for _, td := range sampleTopics {
		existing, err := s.topics.GetBySlug(ctx, td.Slug)
		if err == nil {
			ids[td.Slug] = existing.ID
			sum.TopicsSkipped++
			continue
		}
		if !errors.Is(err, domain.ErrNotFound) {
			return nil, fmt.Errorf("look up topic %q: %w", td.Slug, err)
		}

		var parentID *uuid.UUID
		if td.ParentSlug != "" {
			pid, ok := ids[td.ParentSlug]
			if !ok {
				return nil, fmt.Errorf("topic %q: parent %q not seeded yet", td.Slug, td.ParentSlug)
			}
			parentID = &pid
		}

		now := time.Now().UTC()
		topic := &domain.Topic{
			ID:          uuid.New(),
			Name:        td.Name,
			Slug:        td.Slug,
			Description: td.Description,
			ParentID:    parentID,
			Difficulty:  td.Difficulty,
			Position:    td.Position,
			CreatedAt:   now,
			UpdatedAt:   now,
		}
		if err := s.topics.Create(ctx, topic); err != nil {
			return nil, fmt.Errorf("create topic %q: %w", td.Slug, err)
		}
		ids[td.Slug] = topic.ID
		sum.TopicsCreated++
	}

	return ids, nil
}

func (s *Seeder) seedVocabulary(ctx context.Context, topicIDs map[string]uuid.UUID, sum *Summary) error {
	for _, vd := range sampleVocabulary {
		created, err := s.seedCard(ctx, &domain.Card{
			ID:            uuid.New(),
			Kind:          domain.CardKindVocabulary,
			Luxembourgish: vd.Luxembourgish,
			English:       vd.English,
			Difficulty:    vd.Difficulty,
			Register:      domain.RegisterNeutral,
			IsActive:      true,
		}, topicIDs, vd.TopicSlug)
		if err != nil {
			return err
		}
		if created {
			sum.VocabCreated++
		} else {
			sum.CardsSkipped++
		}
	}
	return nil
}

func (s *Seeder) seedPhrases(ctx context.Context, topicIDs map[string]uuid.UUID, sum *Summary) error {
	for _, pd := range samplePhrases {
		created, err := s.seedCard(ctx, &domain.Card{
			ID:            uuid.New(),
			Kind:          domain.CardKindPhrase,
			Luxembourgish: pd.Luxembourgish,
			English:       pd.English,
			Difficulty:    domain.DifficultyAdvanced,
			Register:      pd.Register,
			IsActive:      true,
		}, topicIDs, pd.TopicSlug)
		if err != nil {
			return err
		}
		if created {
			sum.PhrasesCreated++
		} else {
			sum.CardsSkipped++
		}
	}
	return nil
}

func (s *Seeder) seedCard(ctx context.Context, card *domain.Card, topicIDs map[string]uuid.UUID, topicSlug string) (bool, error) {
	_, err := s.cards.GetByText(ctx, card.Kind, card.Luxembourgish, card.English)
	if err == nil {
		return false, nil
	}
	if !errors.Is(err, domain.ErrNotFound) {
		return false, fmt.Errorf("look up card %q: %w", card.Luxembourgish, err)
	}

	topicID, ok := topicIDs[topicSlug]
	if !ok {
		return false, fmt.Errorf("card %q: unknown topic %q", card.Luxembourgish, topicSlug)
	}
	card.TopicIDs = []uuid.UUID{topicID}

	now := time.Now().UTC()
	card.CreatedAt = now
	card.UpdatedAt = now

	if err := s.cards.Create(ctx, card); err != nil {
		return false, fmt.Errorf("create card %q: %w", card.Luxembourgish, err)
	}
	return true, nil
}
