package domain

import (
	"time"

	"github.com/google/uuid"
)

// CardKey is the stable identity of a card across both kinds.
// Vocabulary and phrase cards live in separate ID spaces, so progress
// records must always be keyed by (kind, id), never by id alone.
type CardKey struct {
	Kind CardKind
	ID   uuid.UUID
}

func (k CardKey) IsZero() bool { return k.ID == uuid.Nil }

// Card is a bilingual flashcard. Kind discriminates the variant:
// vocabulary cards are single terms, phrase cards carry a speech register.
type Card struct {
	ID            uuid.UUID
	Kind          CardKind
	Luxembourgish string
	English       string
	Difficulty    Difficulty
	Register      Register // phrase cards only; empty for vocabulary
	IsActive      bool
	TopicIDs      []uuid.UUID
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

// Key returns the card's (kind, id) identity.
func (c *Card) Key() CardKey {
	return CardKey{Kind: c.Kind, ID: c.ID}
}

// Answer returns the text the user must produce for the given direction.
func (c *Card) Answer(direction Direction) string {
	if direction == DirectionLuxToEng {
		return c.English
	}
	return c.Luxembourgish
}

// Prompt returns the text shown to the user for the given direction.
func (c *Card) Prompt(direction Direction) string {
	if direction == DirectionLuxToEng {
		return c.Luxembourgish
	}
	return c.English
}

// HasTopic reports whether the card belongs to the given topic.
func (c *Card) HasTopic(topicID uuid.UUID) bool {
	for _, id := range c.TopicIDs {
		if id == topicID {
			return true
		}
	}
	return false
}

// Topic groups cards into an optionally hierarchical curriculum unit.
type Topic struct {
	ID          uuid.UUID
	Name        string
	Slug        string
	Description string
	ParentID    *uuid.UUID
	Difficulty  Difficulty
	Position    int // order within the curriculum
	CreatedAt   time.Time
	UpdatedAt   time.Time
}
