package learning

// Hand-rolled func-field mocks for the package's private interfaces.
// A nil func means the test does not expect that call; invoking it panics.

import (
	"context"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/learnlux/learnlux-backend/internal/domain"
)

type cardCatalogMock struct {
	GetByKeyFunc           func(ctx context.Context, key domain.CardKey) (*domain.Card, error)
	ListCandidatesFunc     func(ctx context.Context, filter domain.CandidateFilter) ([]domain.Card, error)
	FirstUnseenFunc        func(ctx context.Context, kind domain.CardKind, topicID *uuid.UUID, seenIDs []uuid.UUID) (*domain.Card, error)
	CountActiveByTopicFunc func(ctx context.Context, topicID uuid.UUID) (int, error)
}

func (m *cardCatalogMock) GetByKey(ctx context.Context, key domain.CardKey) (*domain.Card, error) {
	if m.GetByKeyFunc == nil {
		panic("unexpected call to GetByKey")
	}
	return m.GetByKeyFunc(ctx, key)
}

func (m *cardCatalogMock) ListCandidates(ctx context.Context, filter domain.CandidateFilter) ([]domain.Card, error) {
	if m.ListCandidatesFunc == nil {
		panic("unexpected call to ListCandidates")
	}
	return m.ListCandidatesFunc(ctx, filter)
}

func (m *cardCatalogMock) FirstUnseen(ctx context.Context, kind domain.CardKind, topicID *uuid.UUID, seenIDs []uuid.UUID) (*domain.Card, error) {
	if m.FirstUnseenFunc == nil {
		panic("unexpected call to FirstUnseen")
	}
	return m.FirstUnseenFunc(ctx, kind, topicID, seenIDs)
}

func (m *cardCatalogMock) CountActiveByTopic(ctx context.Context, topicID uuid.UUID) (int, error) {
	if m.CountActiveByTopicFunc == nil {
		panic("unexpected call to CountActiveByTopic")
	}
	return m.CountActiveByTopicFunc(ctx, topicID)
}

type progressRepoMock struct {
	GetFunc             func(ctx context.Context, userID uuid.UUID, card domain.CardKey) (*domain.CardProgress, error)
	CreateFunc          func(ctx context.Context, progress *domain.CardProgress) error
	UpdateFunc          func(ctx context.Context, progress *domain.CardProgress) error
	ListDueFunc         func(ctx context.Context, userID uuid.UUID, now time.Time, topicID *uuid.UUID, limit int) ([]domain.CardProgress, error)
	ListSeenCardIDsFunc func(ctx context.Context, userID uuid.UUID, kind domain.CardKind) ([]uuid.UUID, error)
}

func (m *progressRepoMock) Get(ctx context.Context, userID uuid.UUID, card domain.CardKey) (*domain.CardProgress, error) {
	if m.GetFunc == nil {
		panic("unexpected call to Get")
	}
	return m.GetFunc(ctx, userID, card)
}

func (m *progressRepoMock) Create(ctx context.Context, progress *domain.CardProgress) error {
	if m.CreateFunc == nil {
		panic("unexpected call to Create")
	}
	return m.CreateFunc(ctx, progress)
}

func (m *progressRepoMock) Update(ctx context.Context, progress *domain.CardProgress) error {
	if m.UpdateFunc == nil {
		panic("unexpected call to Update")
	}
	return m.UpdateFunc(ctx, progress)
}

func (m *progressRepoMock) ListDue(ctx context.Context, userID uuid.UUID, now time.Time, topicID *uuid.UUID, limit int) ([]domain.CardProgress, error) {
	if m.ListDueFunc == nil {
		panic("unexpected call to ListDue")
	}
	return m.ListDueFunc(ctx, userID, now, topicID, limit)
}

func (m *progressRepoMock) ListSeenCardIDs(ctx context.Context, userID uuid.UUID, kind domain.CardKind) ([]uuid.UUID, error) {
	if m.ListSeenCardIDsFunc == nil {
		panic("unexpected call to ListSeenCardIDs")
	}
	return m.ListSeenCardIDsFunc(ctx, userID, kind)
}

type reviewLogRepoMock struct {
	CreateFunc func(ctx context.Context, log *domain.ReviewLog) error
}

func (m *reviewLogRepoMock) Create(ctx context.Context, log *domain.ReviewLog) error {
	if m.CreateFunc == nil {
		panic("unexpected call to Create")
	}
	return m.CreateFunc(ctx, log)
}

type statsRepoMock struct {
	GetOrCreateFunc func(ctx context.Context, userID uuid.UUID) (*domain.UserStats, error)
	UpdateFunc      func(ctx context.Context, stats *domain.UserStats) error
}

func (m *statsRepoMock) GetOrCreate(ctx context.Context, userID uuid.UUID) (*domain.UserStats, error) {
	if m.GetOrCreateFunc == nil {
		panic("unexpected call to GetOrCreate")
	}
	return m.GetOrCreateFunc(ctx, userID)
}

func (m *statsRepoMock) Update(ctx context.Context, stats *domain.UserStats) error {
	if m.UpdateFunc == nil {
		panic("unexpected call to Update")
	}
	return m.UpdateFunc(ctx, stats)
}

type topicProgressRepoMock struct {
	GetOrCreateFunc func(ctx context.Context, userID, topicID uuid.UUID, now time.Time) (*domain.TopicProgress, error)
	UpdateFunc      func(ctx context.Context, progress *domain.TopicProgress) error
}

func (m *topicProgressRepoMock) GetOrCreate(ctx context.Context, userID, topicID uuid.UUID, now time.Time) (*domain.TopicProgress, error) {
	if m.GetOrCreateFunc == nil {
		panic("unexpected call to GetOrCreate")
	}
	return m.GetOrCreateFunc(ctx, userID, topicID, now)
}

func (m *topicProgressRepoMock) Update(ctx context.Context, progress *domain.TopicProgress) error {
	if m.UpdateFunc == nil {
		panic("unexpected call to Update")
	}
	return m.UpdateFunc(ctx, progress)
}

// txManagerMock runs the callback directly, like a committed transaction.
type txManagerMock struct {
	RunInTxFunc func(ctx context.Context, fn func(ctx context.Context) error) error
}

func (m *txManagerMock) RunInTx(ctx context.Context, fn func(ctx context.Context) error) error {
	if m.RunInTxFunc != nil {
		return m.RunInTxFunc(ctx, fn)
	}
	return fn(ctx)
}

// fixedClock always reports the same instant.
type fixedClock struct {
	now time.Time
}

func (c fixedClock) Now() time.Time { return c.now }

// randStub makes the service's random choices deterministic. The zero
// value always flips to the first branch and leaves shuffles untouched.
type randStub struct {
	Float64Val  float64
	IntnFunc    func(n int) int
	ShuffleFunc func(n int, swap func(i, j int))
}

func (r *randStub) Float64() float64 { return r.Float64Val }

func (r *randStub) Intn(n int) int {
	if r.IntnFunc != nil {
		return r.IntnFunc(n)
	}
	return 0
}

func (r *randStub) Shuffle(n int, swap func(i, j int)) {
	if r.ShuffleFunc != nil {
		r.ShuffleFunc(n, swap)
	}
}

// newTestService wires a Service with safe defaults; tests override the
// collaborators they care about.
func newTestService(overrides func(s *Service)) *Service {
	s := &Service{
		tx:      &txManagerMock{},
		checker: NewChecker(false, 1),
		rand:    &randStub{},
		clock:   fixedClock{now: time.Date(2026, 3, 10, 15, 0, 0, 0, time.UTC)},
		log:     slog.Default(),
		cfg:     domain.DefaultLearningConfig(),
	}
	if overrides != nil {
		overrides(s)
	}
	return s
}
