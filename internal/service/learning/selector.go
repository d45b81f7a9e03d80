package learning

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/learnlux/learnlux-backend/internal/domain"
)

// GetNextCard picks the next card for the user to study. With probability
// ReviewRatio it attempts a due review card first, otherwise a card the
// user has never seen; each path falls back to the other when empty.
// Returns (nil, nil) when the user has exhausted both pools.
func (s *Service) GetNextCard(ctx context.Context, input NextCardInput) (*domain.Card, error) {
	if err := input.Validate(); err != nil {
		return nil, err
	}
	return s.nextCard(ctx, input.UserID, input.TopicID)
}

// GetSessionCards assembles a study session by drawing cards one at a
// time, deduplicating by card identity. It attempts at most twice the
// requested count of draws and may return fewer cards when the pool is
// exhausted.
func (s *Service) GetSessionCards(ctx context.Context, input SessionInput) ([]domain.Card, error) {
	if err := input.Validate(); err != nil {
		return nil, err
	}

	count := input.Count
	if count == 0 {
		count = s.cfg.SessionSize
	}

	cards := make([]domain.Card, 0, count)
	picked := make(map[domain.CardKey]struct{}, count)

	for attempt := 0; attempt < 2*count && len(cards) < count; attempt++ {
		card, err := s.nextCard(ctx, input.UserID, input.TopicID)
		if err != nil {
			return nil, err
		}
		if card == nil {
			break
		}
		if _, ok := picked[card.Key()]; ok {
			continue
		}
		picked[card.Key()] = struct{}{}
		cards = append(cards, *card)
	}

	s.log.DebugContext(ctx, "session assembled",
		slog.String("user_id", input.UserID.String()),
		slog.Int("requested", count),
		slog.Int("collected", len(cards)),
	)
	return cards, nil
}

func (s *Service) nextCard(ctx context.Context, userID uuid.UUID, topicID *uuid.UUID) (*domain.Card, error) {
	now := s.clock.Now()

	if s.rand.Float64() < s.cfg.ReviewRatio {
		card, err := s.dueCard(ctx, userID, topicID, now)
		if err != nil {
			return nil, err
		}
		if card != nil {
			return card, nil
		}
	}

	card, err := s.freshCard(ctx, userID, topicID)
	if err != nil {
		return nil, err
	}
	if card != nil {
		return card, nil
	}

	return s.dueCard(ctx, userID, topicID, now)
}

// dueCard samples one card uniformly at random from the user's earliest
// due scheduling states, bounded by DueSampleSize.
func (s *Service) dueCard(ctx context.Context, userID uuid.UUID, topicID *uuid.UUID, now time.Time) (*domain.Card, error) {
	due, err := s.progress.ListDue(ctx, userID, now, topicID, s.cfg.DueSampleSize)
	if err != nil {
		return nil, fmt.Errorf("list due cards: %w", err)
	}
	if len(due) == 0 {
		return nil, nil
	}

	chosen := due[s.rand.Intn(len(due))]
	card, err := s.catalogue.GetByKey(ctx, chosen.Card)
	if err != nil {
		return nil, fmt.Errorf("get due card: %w", err)
	}
	return card, nil
}

// freshCard picks the easiest oldest card the user has never seen. When
// both an unseen vocabulary card and an unseen phrase card exist, a coin
// flip decides between them.
func (s *Service) freshCard(ctx context.Context, userID uuid.UUID, topicID *uuid.UUID) (*domain.Card, error) {
	vocab, err := s.firstUnseen(ctx, userID, domain.CardKindVocabulary, topicID)
	if err != nil {
		return nil, err
	}
	phrase, err := s.firstUnseen(ctx, userID, domain.CardKindPhrase, topicID)
	if err != nil {
		return nil, err
	}

	switch {
	case vocab != nil && phrase != nil:
		if s.rand.Intn(2) == 0 {
			return vocab, nil
		}
		return phrase, nil
	case vocab != nil:
		return vocab, nil
	default:
		return phrase, nil
	}
}

func (s *Service) firstUnseen(ctx context.Context, userID uuid.UUID, kind domain.CardKind, topicID *uuid.UUID) (*domain.Card, error) {
	seen, err := s.progress.ListSeenCardIDs(ctx, userID, kind)
	if err != nil {
		return nil, fmt.Errorf("list seen %s cards: %w", kind, err)
	}
	card, err := s.catalogue.FirstUnseen(ctx, kind, topicID, seen)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("first unseen %s card: %w", kind, err)
	}
	return card, nil
}
