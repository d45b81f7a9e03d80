package domain

import "github.com/google/uuid"

// CandidateFilter narrows the active-card catalogue when collecting
// multiple-choice distractor candidates. All criteria are ANDed; slice
// criteria are skipped when empty. Candidates are always restricted to a
// single kind — vocabulary targets never receive phrase distractors and
// vice versa.
type CandidateFilter struct {
	Kind CardKind

	// TopicIDs requires overlap with at least one of the given topics.
	TopicIDs []uuid.UUID
	// ExcludeTopicIDs rejects cards sharing any of the given topics.
	ExcludeTopicIDs []uuid.UUID

	// Difficulty requires an exact tier match.
	Difficulty *Difficulty
	// ExcludeDifficulty rejects an exact tier.
	ExcludeDifficulty *Difficulty

	// ExcludeIDs rejects specific cards (of the filter's kind).
	ExcludeIDs []uuid.UUID

	// Limit bounds the result set; 0 means no limit.
	Limit int
}
