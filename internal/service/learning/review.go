package learning

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/learnlux/learnlux-backend/internal/domain"
	"github.com/learnlux/learnlux-backend/internal/service/learning/sm2"
)

// SubmitReview records one completed review: it reschedules the card via
// SM-2, appends an immutable review log entry, and updates the user's
// aggregate stats and per-topic completion. All writes happen in a single
// transaction so a failure leaves no partial state behind.
func (s *Service) SubmitReview(ctx context.Context, input SubmitReviewInput) (*domain.CardProgress, error) {
	if err := input.Validate(); err != nil {
		return nil, err
	}

	now := s.clock.Now()

	var updated *domain.CardProgress
	err := s.tx.RunInTx(ctx, func(ctx context.Context) error {
		card, err := s.catalogue.GetByKey(ctx, input.Card)
		if err != nil {
			return fmt.Errorf("get card: %w", err)
		}

		progress, firstReview, err := s.getOrCreateProgress(ctx, input.UserID, input.Card, now)
		if err != nil {
			return err
		}

		quality := sm2.QualityFromCorrect(input.WasCorrect)
		result := sm2.Calculate(quality, progress.EaseFactor, progress.IntervalDays, progress.Repetitions, now)

		progress.EaseFactor = result.EaseFactor
		progress.IntervalDays = result.IntervalDays
		progress.Repetitions = result.Repetitions
		progress.NextReviewAt = result.NextReviewAt
		progress.TimesShown++
		if input.WasCorrect {
			progress.TimesCorrect++
		} else {
			progress.TimesIncorrect++
		}
		progress.LastShownAt = &now

		if err := s.progress.Update(ctx, progress); err != nil {
			return fmt.Errorf("update progress: %w", err)
		}

		log := &domain.ReviewLog{
			ID:         uuid.New(),
			UserID:     input.UserID,
			Card:       input.Card,
			Direction:  input.Direction,
			UserAnswer: input.UserAnswer,
			WasCorrect: input.WasCorrect,
			ReviewedAt: now,
		}
		if err := s.reviews.Create(ctx, log); err != nil {
			return fmt.Errorf("create review log: %w", err)
		}

		if err := s.updateStats(ctx, input.UserID, input.WasCorrect, firstReview, now); err != nil {
			return err
		}

		if err := s.updateTopicProgress(ctx, input.UserID, card, firstReview, now); err != nil {
			return err
		}

		updated = progress
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.log.InfoContext(ctx, "review recorded",
		slog.String("user_id", input.UserID.String()),
		slog.String("card_id", input.Card.ID.String()),
		slog.Bool("was_correct", input.WasCorrect),
		slog.Int("interval_days", updated.IntervalDays),
	)
	return updated, nil
}

// getOrCreateProgress fetches the per-(user, card) scheduling state,
// creating a fresh one on first contact. The second return value reports
// whether the card was new to the user.
func (s *Service) getOrCreateProgress(ctx context.Context, userID uuid.UUID, card domain.CardKey, now time.Time) (*domain.CardProgress, bool, error) {
	progress, err := s.progress.Get(ctx, userID, card)
	if err == nil {
		return progress, false, nil
	}
	if !errors.Is(err, domain.ErrNotFound) {
		return nil, false, fmt.Errorf("get progress: %w", err)
	}

	progress = domain.NewCardProgress(userID, card, now)
	if err := s.progress.Create(ctx, progress); err != nil {
		return nil, false, fmt.Errorf("create progress: %w", err)
	}
	return progress, true, nil
}

func (s *Service) updateStats(ctx context.Context, userID uuid.UUID, wasCorrect, firstReview bool, now time.Time) error {
	stats, err := s.stats.GetOrCreate(ctx, userID)
	if err != nil {
		return fmt.Errorf("get user stats: %w", err)
	}

	if firstReview {
		stats.TotalCardsStudied++
	}
	if wasCorrect {
		stats.TotalCorrect++
	} else {
		stats.TotalIncorrect++
	}

	today := startOfDay(now)
	switch {
	case stats.LastStudyDate == nil:
		stats.CurrentStreak = 1
	default:
		switch daysBetween(*stats.LastStudyDate, today) {
		case 0:
			// Already studied today; streak unchanged.
		case 1:
			stats.CurrentStreak++
		default:
			stats.CurrentStreak = 1
		}
	}
	if stats.CurrentStreak > stats.LongestStreak {
		stats.LongestStreak = stats.CurrentStreak
	}
	stats.LastStudyDate = &today

	if err := s.stats.Update(ctx, stats); err != nil {
		return fmt.Errorf("update user stats: %w", err)
	}
	return nil
}

func (s *Service) updateTopicProgress(ctx context.Context, userID uuid.UUID, card *domain.Card, firstReview bool, now time.Time) error {
	for _, topicID := range card.TopicIDs {
		topic, err := s.topics.GetOrCreate(ctx, userID, topicID, now)
		if err != nil {
			return fmt.Errorf("get topic progress: %w", err)
		}

		if firstReview {
			topic.CardsSeen++
		}

		if topic.CompletedAt == nil {
			total, err := s.catalogue.CountActiveByTopic(ctx, topicID)
			if err != nil {
				return fmt.Errorf("count topic cards: %w", err)
			}
			if total > 0 && topic.CardsSeen >= total {
				completed := now
				topic.CompletedAt = &completed
			}
		}

		if err := s.topics.Update(ctx, topic); err != nil {
			return fmt.Errorf("update topic progress: %w", err)
		}
	}
	return nil
}

// startOfDay truncates a timestamp to its calendar day in UTC.
func startOfDay(t time.Time) time.Time {
	year, month, day := t.UTC().Date()
	return time.Date(year, month, day, 0, 0, 0, 0, time.UTC)
}

// daysBetween returns the whole calendar days from a to b.
func daysBetween(a, b time.Time) int {
	return int(startOfDay(b).Sub(startOfDay(a)).Hours() / 24)
}
