package domain

// LearningConfig holds the tunables of the learning services (pure domain
// type; the config package maps its own section onto this).
type LearningConfig struct {
	// ReviewRatio is the probability of attempting a due review card
	// before a new card when selecting the next card.
	ReviewRatio float64
	// DueSampleSize bounds how many earliest-due cards the selector
	// samples from.
	DueSampleSize int
	// FallbackSampleSize bounds the last-resort distractor candidate pool.
	FallbackSampleSize int
	// WrongOptionCount is the number of distractors per multiple-choice
	// question.
	WrongOptionCount int
	// SessionSize is the default number of cards per study session.
	SessionSize int
	// CaseSensitive toggles case-sensitive answer checking.
	CaseSensitive bool
	// TypoTolerance is the edit-distance budget for "close" answers.
	TypoTolerance int
}

// DefaultLearningConfig mirrors the production defaults.
func DefaultLearningConfig() LearningConfig {
	return LearningConfig{
		ReviewRatio:        0.3,
		DueSampleSize:      20,
		FallbackSampleSize: 20,
		WrongOptionCount:   2,
		SessionSize:        10,
		CaseSensitive:      false,
		TypoTolerance:      1,
	}
}
