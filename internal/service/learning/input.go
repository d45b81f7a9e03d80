package learning

import (
	"github.com/google/uuid"

	"github.com/learnlux/learnlux-backend/internal/domain"
)

// CheckAnswerInput holds the parameters for grading a free-text answer.
type CheckAnswerInput struct {
	Card      domain.CardKey
	Direction domain.Direction
	Answer    string
}

// Validate checks all fields and collects all errors.
func (i *CheckAnswerInput) Validate() error {
	var errs []domain.FieldError

	if !i.Card.Kind.IsValid() {
		errs = append(errs, domain.FieldError{Field: "card.kind", Message: "must be VOCABULARY or PHRASE"})
	}
	if i.Card.ID == uuid.Nil {
		errs = append(errs, domain.FieldError{Field: "card.id", Message: "required"})
	}
	if !i.Direction.IsValid() {
		errs = append(errs, domain.FieldError{Field: "direction", Message: "must be LUX_TO_ENG or ENG_TO_LUX"})
	}
	// Answer is not validated: empty strings are legitimate answers.

	if len(errs) > 0 {
		return domain.NewValidationErrors(errs)
	}
	return nil
}

// OptionsInput holds the parameters for generating multiple-choice options.
type OptionsInput struct {
	Card      domain.CardKey
	Direction domain.Direction
	// Count is the number of wrong options; 0 means the configured default.
	Count int
}

// Validate checks all fields and collects all errors.
func (i *OptionsInput) Validate() error {
	var errs []domain.FieldError

	if !i.Card.Kind.IsValid() {
		errs = append(errs, domain.FieldError{Field: "card.kind", Message: "must be VOCABULARY or PHRASE"})
	}
	if i.Card.ID == uuid.Nil {
		errs = append(errs, domain.FieldError{Field: "card.id", Message: "required"})
	}
	if !i.Direction.IsValid() {
		errs = append(errs, domain.FieldError{Field: "direction", Message: "must be LUX_TO_ENG or ENG_TO_LUX"})
	}
	if i.Count < 0 || i.Count > 10 {
		errs = append(errs, domain.FieldError{Field: "count", Message: "must be between 0 and 10"})
	}

	if len(errs) > 0 {
		return domain.NewValidationErrors(errs)
	}
	return nil
}

// NextCardInput holds the parameters for selecting the next study card.
type NextCardInput struct {
	UserID    uuid.UUID
	Direction domain.Direction
	// TopicID optionally restricts selection to one topic.
	TopicID *uuid.UUID
}

// Validate checks all fields and collects all errors.
func (i *NextCardInput) Validate() error {
	var errs []domain.FieldError

	if i.UserID == uuid.Nil {
		errs = append(errs, domain.FieldError{Field: "user_id", Message: "required"})
	}
	if !i.Direction.IsValid() {
		errs = append(errs, domain.FieldError{Field: "direction", Message: "must be LUX_TO_ENG or ENG_TO_LUX"})
	}
	if i.TopicID != nil && *i.TopicID == uuid.Nil {
		errs = append(errs, domain.FieldError{Field: "topic_id", Message: "must not be the zero id"})
	}

	if len(errs) > 0 {
		return domain.NewValidationErrors(errs)
	}
	return nil
}

// SessionInput holds the parameters for assembling a study session.
type SessionInput struct {
	UserID    uuid.UUID
	Direction domain.Direction
	TopicID   *uuid.UUID
	// Count is the number of cards to collect; 0 means the configured default.
	Count int
}

// Validate checks all fields and collects all errors.
func (i *SessionInput) Validate() error {
	var errs []domain.FieldError

	if i.UserID == uuid.Nil {
		errs = append(errs, domain.FieldError{Field: "user_id", Message: "required"})
	}
	if !i.Direction.IsValid() {
		errs = append(errs, domain.FieldError{Field: "direction", Message: "must be LUX_TO_ENG or ENG_TO_LUX"})
	}
	if i.TopicID != nil && *i.TopicID == uuid.Nil {
		errs = append(errs, domain.FieldError{Field: "topic_id", Message: "must not be the zero id"})
	}
	if i.Count < 0 || i.Count > 100 {
		errs = append(errs, domain.FieldError{Field: "count", Message: "must be between 0 and 100"})
	}

	if len(errs) > 0 {
		return domain.NewValidationErrors(errs)
	}
	return nil
}

// SubmitReviewInput holds the parameters for recording a completed review.
type SubmitReviewInput struct {
	UserID     uuid.UUID
	Card       domain.CardKey
	Direction  domain.Direction
	UserAnswer string
	WasCorrect bool
}

// Validate checks all fields and collects all errors.
func (i *SubmitReviewInput) Validate() error {
	var errs []domain.FieldError

	if i.UserID == uuid.Nil {
		errs = append(errs, domain.FieldError{Field: "user_id", Message: "required"})
	}
	if !i.Card.Kind.IsValid() {
		errs = append(errs, domain.FieldError{Field: "card.kind", Message: "must be VOCABULARY or PHRASE"})
	}
	if i.Card.ID == uuid.Nil {
		errs = append(errs, domain.FieldError{Field: "card.id", Message: "required"})
	}
	if !i.Direction.IsValid() {
		errs = append(errs, domain.FieldError{Field: "direction", Message: "must be LUX_TO_ENG or ENG_TO_LUX"})
	}

	if len(errs) > 0 {
		return domain.NewValidationErrors(errs)
	}
	return nil
}
