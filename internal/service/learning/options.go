package learning

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/learnlux/learnlux-backend/internal/domain"
)

// Options is a rendered multiple-choice question: the shuffled answer
// strings and the position of the correct one.
type Options struct {
	CorrectAnswer string
	Options       []string
	CorrectIndex  int
}

// GetOptions builds a multiple-choice question for the given card. Wrong
// answers are collected from a cascade of candidate pools, each widening
// the net: same topics and same difficulty first, then same topics at any
// other difficulty, then same difficulty outside the card's topics, and
// finally any active card as a last resort. Returns
// domain.ErrInsufficientOptions when the whole cascade cannot produce
// enough unique wrong answers; the caller is expected to fall back to
// free-text mode for that card.
func (s *Service) GetOptions(ctx context.Context, input OptionsInput) (*Options, error) {
	if err := input.Validate(); err != nil {
		return nil, err
	}

	count := input.Count
	if count == 0 {
		count = s.cfg.WrongOptionCount
	}

	card, err := s.catalogue.GetByKey(ctx, input.Card)
	if err != nil {
		return nil, fmt.Errorf("get card: %w", err)
	}

	correct := card.Answer(input.Direction)
	wrong := make([]string, 0, count)
	seen := map[string]struct{}{correct: {}}

	for tier, filter := range s.optionTiers(card) {
		candidates, err := s.catalogue.ListCandidates(ctx, filter)
		if err != nil {
			return nil, fmt.Errorf("list candidates (tier %d): %w", tier+1, err)
		}
		for _, candidate := range candidates {
			if candidate.ID == card.ID {
				continue
			}
			answer := candidate.Answer(input.Direction)
			if _, ok := seen[answer]; ok {
				continue
			}
			seen[answer] = struct{}{}
			wrong = append(wrong, answer)
			if len(wrong) >= count {
				break
			}
		}
		if len(wrong) >= count {
			break
		}
	}

	if len(wrong) < count {
		s.log.InfoContext(ctx, "not enough distractors",
			slog.String("card_id", card.ID.String()),
			slog.String("kind", string(card.Kind)),
			slog.Int("found", len(wrong)),
			slog.Int("needed", count),
		)
		return nil, domain.ErrInsufficientOptions
	}

	options := make([]string, 0, count+1)
	options = append(options, correct)
	options = append(options, wrong...)
	s.rand.Shuffle(len(options), func(i, j int) {
		options[i], options[j] = options[j], options[i]
	})

	correctIndex := 0
	for i, option := range options {
		if option == correct {
			correctIndex = i
			break
		}
	}

	return &Options{
		CorrectAnswer: correct,
		Options:       options,
		CorrectIndex:  correctIndex,
	}, nil
}

// optionTiers builds the cascade of candidate filters for one target card.
// Every tier is restricted to the card's kind; vocabulary targets never
// receive phrase distractors.
func (s *Service) optionTiers(card *domain.Card) []domain.CandidateFilter {
	difficulty := card.Difficulty
	return []domain.CandidateFilter{
		{
			Kind:       card.Kind,
			TopicIDs:   card.TopicIDs,
			Difficulty: &difficulty,
		},
		{
			Kind:              card.Kind,
			TopicIDs:          card.TopicIDs,
			ExcludeDifficulty: &difficulty,
		},
		{
			Kind:            card.Kind,
			Difficulty:      &difficulty,
			ExcludeTopicIDs: card.TopicIDs,
		},
		{
			Kind:  card.Kind,
			Limit: s.cfg.FallbackSampleSize,
		},
	}
}
