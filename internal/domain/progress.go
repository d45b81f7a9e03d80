package domain

import (
	"time"

	"github.com/google/uuid"
)

// SM-2 scheduling defaults. MinEaseFactor is the hard floor the scheduler
// never goes below.
const (
	DefaultEaseFactor = 2.5
	MinEaseFactor     = 1.3
)

// CardProgress tracks one user's SM-2 scheduling state for one card.
// Created lazily on the first review; mutated only via SubmitReview.
type CardProgress struct {
	UserID         uuid.UUID
	Card           CardKey
	TimesShown     int
	TimesCorrect   int
	TimesIncorrect int
	EaseFactor     float64
	IntervalDays   int
	Repetitions    int
	LastShownAt    *time.Time
	NextReviewAt   time.Time
	CreatedAt      time.Time
	UpdatedAt      time.Time
}

// NewCardProgress returns fresh scheduling state: default ease, zero
// interval, due immediately.
func NewCardProgress(userID uuid.UUID, card CardKey, now time.Time) *CardProgress {
	return &CardProgress{
		UserID:       userID,
		Card:         card,
		EaseFactor:   DefaultEaseFactor,
		IntervalDays: 0,
		Repetitions:  0,
		NextReviewAt: now,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
}

// IsDue reports whether the card needs review at the given time.
func (p *CardProgress) IsDue(now time.Time) bool {
	return !p.NextReviewAt.After(now)
}

// Accuracy returns the percentage of correct reviews for this card, 0–100.
func (p *CardProgress) Accuracy() int {
	total := p.TimesCorrect + p.TimesIncorrect
	if total == 0 {
		return 0
	}
	return int(float64(p.TimesCorrect)/float64(total)*100 + 0.5)
}

// ReviewLog is a write-once record of a single review.
type ReviewLog struct {
	ID         uuid.UUID
	UserID     uuid.UUID
	Card       CardKey
	Direction  Direction
	UserAnswer string
	WasCorrect bool
	ReviewedAt time.Time
}

// UserStats aggregates a user's lifetime study activity.
// LastStudyDate is a calendar date (midnight UTC); streaks are computed
// from whole-day differences, not 24-hour windows.
type UserStats struct {
	UserID            uuid.UUID
	TotalCardsStudied int
	TotalCorrect      int
	TotalIncorrect    int
	CurrentStreak     int
	LongestStreak     int
	LastStudyDate     *time.Time
	CreatedAt         time.Time
	UpdatedAt         time.Time
}

// Accuracy returns the user's overall answer accuracy, 0–100.
func (s *UserStats) Accuracy() int {
	total := s.TotalCorrect + s.TotalIncorrect
	if total == 0 {
		return 0
	}
	return int(float64(s.TotalCorrect)/float64(total)*100 + 0.5)
}

// TopicProgress tracks how far a user has worked through one topic.
// CompletedAt is stamped exactly once, when CardsSeen first reaches the
// topic's active card count.
type TopicProgress struct {
	UserID        uuid.UUID
	TopicID       uuid.UUID
	CardsSeen     int
	CardsMastered int
	StartedAt     time.Time
	CompletedAt   *time.Time
	UpdatedAt     time.Time
}

// CompletionPercent returns completion of a topic with totalCards active
// cards, capped at 100.
func (p *TopicProgress) CompletionPercent(totalCards int) int {
	if totalCards == 0 {
		return 0
	}
	pct := int(float64(p.CardsSeen)/float64(totalCards)*100 + 0.5)
	if pct > 100 {
		return 100
	}
	return pct
}
