// Package learning implements the study business logic: spaced repetition
// scheduling, answer checking, multiple-choice option generation, and card
// selection.
package learning

import (
	"context"
	"log/slog"
	"math/rand"
	"time"

	"github.com/google/uuid"

	"github.com/learnlux/learnlux-backend/internal/domain"
)

// ---------------------------------------------------------------------------
// Consumer-defined interfaces (private)
// ---------------------------------------------------------------------------

type cardCatalog interface {
	GetByKey(ctx context.Context, key domain.CardKey) (*domain.Card, error)
	ListCandidates(ctx context.Context, filter domain.CandidateFilter) ([]domain.Card, error)
	FirstUnseen(ctx context.Context, kind domain.CardKind, topicID *uuid.UUID, seenIDs []uuid.UUID) (*domain.Card, error)
	CountActiveByTopic(ctx context.Context, topicID uuid.UUID) (int, error)
}

type progressRepo interface {
	Get(ctx context.Context, userID uuid.UUID, card domain.CardKey) (*domain.CardProgress, error)
	Create(ctx context.Context, progress *domain.CardProgress) error
	Update(ctx context.Context, progress *domain.CardProgress) error
	ListDue(ctx context.Context, userID uuid.UUID, now time.Time, topicID *uuid.UUID, limit int) ([]domain.CardProgress, error)
	ListSeenCardIDs(ctx context.Context, userID uuid.UUID, kind domain.CardKind) ([]uuid.UUID, error)
}

type reviewLogRepo interface {
	Create(ctx context.Context, log *domain.ReviewLog) error
}

type statsRepo interface {
	GetOrCreate(ctx context.Context, userID uuid.UUID) (*domain.UserStats, error)
	Update(ctx context.Context, stats *domain.UserStats) error
}

type topicProgressRepo interface {
	GetOrCreate(ctx context.Context, userID, topicID uuid.UUID, now time.Time) (*domain.TopicProgress, error)
	Update(ctx context.Context, progress *domain.TopicProgress) error
}

type txManager interface {
	RunInTx(ctx context.Context, fn func(ctx context.Context) error) error
}

type clock interface {
	Now() time.Time
}

// randSource covers the randomness the selector and option generator need.
// *rand.Rand satisfies it.
type randSource interface {
	Float64() float64
	Intn(n int) int
	Shuffle(n int, swap func(i, j int))
}

type systemClock struct{}

func (systemClock) Now() time.Time { return time.Now().UTC() }

// ---------------------------------------------------------------------------
// Service
// ---------------------------------------------------------------------------

// Service implements the learning business logic.
type Service struct {
	catalogue cardCatalog
	progress  progressRepo
	reviews   reviewLogRepo
	stats     statsRepo
	topics    topicProgressRepo
	tx        txManager

	checker *Checker
	rand    randSource
	clock   clock
	log     *slog.Logger
	cfg     domain.LearningConfig
}

// NewService creates a new learning service. Zero config fields fall back
// to the production defaults.
func NewService(
	log *slog.Logger,
	catalogue cardCatalog,
	progress progressRepo,
	reviews reviewLogRepo,
	stats statsRepo,
	topics topicProgressRepo,
	tx txManager,
	cfg domain.LearningConfig,
) *Service {
	defaults := domain.DefaultLearningConfig()
	if cfg.ReviewRatio <= 0 {
		cfg.ReviewRatio = defaults.ReviewRatio
	}
	if cfg.DueSampleSize <= 0 {
		cfg.DueSampleSize = defaults.DueSampleSize
	}
	if cfg.FallbackSampleSize <= 0 {
		cfg.FallbackSampleSize = defaults.FallbackSampleSize
	}
	if cfg.WrongOptionCount <= 0 {
		cfg.WrongOptionCount = defaults.WrongOptionCount
	}
	if cfg.SessionSize <= 0 {
		cfg.SessionSize = defaults.SessionSize
	}
	if cfg.TypoTolerance < 0 {
		cfg.TypoTolerance = defaults.TypoTolerance
	}

	return &Service{
		catalogue: catalogue,
		progress:  progress,
		reviews:   reviews,
		stats:     stats,
		topics:    topics,
		tx:        tx,
		checker:   NewChecker(cfg.CaseSensitive, cfg.TypoTolerance),
		rand:      rand.New(rand.NewSource(time.Now().UnixNano())),
		clock:     systemClock{},
		log:       log,
		cfg:       cfg,
	}
}

// CheckAnswer grades a free-text answer against a card in the given
// direction.
func (s *Service) CheckAnswer(ctx context.Context, input CheckAnswerInput) (CheckResult, error) {
	if err := input.Validate(); err != nil {
		return CheckResult{}, err
	}

	card, err := s.catalogue.GetByKey(ctx, input.Card)
	if err != nil {
		return CheckResult{}, err
	}

	return s.checker.Check(input.Answer, card.Answer(input.Direction)), nil
}
