// Package sm2 implements the SuperMemo-2 spaced repetition algorithm.
// All functions are pure: no DB, no context, no logger.
package sm2

import (
	"math"
	"time"
)

const (
	// MinEaseFactor is the floor below which the ease factor never drops.
	MinEaseFactor = 1.3
	// DefaultEaseFactor is the starting ease for unseen cards.
	DefaultEaseFactor = 2.5
)

// Quality scores on the 0–5 SM-2 scale.
const (
	QualityBlackout          = 0 // complete blackout, no memory
	QualityIncorrect         = 1 // incorrect, but recognized after seeing the answer
	QualityIncorrectEasy     = 2 // incorrect, but the answer seemed easy to recall
	QualityCorrectDifficult  = 3 // correct with serious difficulty
	QualityCorrectHesitation = 4 // correct with some hesitation
	QualityPerfect           = 5 // perfect response
)

// Result holds the updated scheduling state after one review.
type Result struct {
	EaseFactor   float64
	IntervalDays int
	Repetitions  int
	NextReviewAt time.Time
}

// Calculate applies one SM-2 step to the current scheduling state.
// Quality is clamped into [0,5]. A failing answer (quality < 3) resets
// the repetition count and schedules the card for tomorrow with no memory
// credit; a passing answer grows the interval 1 → 6 → round(prev × ease').
func Calculate(quality int, easeFactor float64, intervalDays, repetitions int, now time.Time) Result {
	if quality < 0 {
		quality = 0
	}
	if quality > 5 {
		quality = 5
	}

	q := float64(quality)
	ease := easeFactor + (0.1 - (5-q)*(0.08+(5-q)*0.02))
	if ease < MinEaseFactor {
		ease = MinEaseFactor
	}

	var newInterval, newRepetitions int
	if quality < QualityCorrectDifficult {
		newRepetitions = 0
		newInterval = 1
	} else {
		newRepetitions = repetitions + 1
		switch newRepetitions {
		case 1:
			newInterval = 1
		case 2:
			newInterval = 6
		default:
			newInterval = int(math.Round(float64(intervalDays) * ease))
		}
	}

	return Result{
		EaseFactor:   ease,
		IntervalDays: newInterval,
		Repetitions:  newRepetitions,
		NextReviewAt: now.AddDate(0, 0, newInterval),
	}
}

// QualityFromCorrect bridges the binary correctness signal to the SM-2
// quality scale: correct answers count as "correct with some hesitation",
// incorrect ones as "incorrect but recognized". A finer signal (e.g. from
// response latency) would slot in here.
func QualityFromCorrect(wasCorrect bool) int {
	if wasCorrect {
		return QualityCorrectHesitation
	}
	return QualityIncorrect
}
