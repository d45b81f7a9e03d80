package domain

// CardKind discriminates the two flashcard variants.
type CardKind string

const (
	CardKindVocabulary CardKind = "VOCABULARY"
	CardKindPhrase     CardKind = "PHRASE"
)

func (k CardKind) String() string { return string(k) }

func (k CardKind) IsValid() bool {
	switch k {
	case CardKindVocabulary, CardKindPhrase:
		return true
	}
	return false
}

// Difficulty is the curriculum tier of a card or topic.
// Stored as a small integer so catalogue queries can order by it directly.
type Difficulty int

const (
	DifficultyBeginner     Difficulty = 1
	DifficultyIntermediate Difficulty = 2
	DifficultyAdvanced     Difficulty = 3
)

func (d Difficulty) String() string {
	switch d {
	case DifficultyBeginner:
		return "BEGINNER"
	case DifficultyIntermediate:
		return "INTERMEDIATE"
	case DifficultyAdvanced:
		return "ADVANCED"
	}
	return "UNKNOWN"
}

func (d Difficulty) IsValid() bool {
	return d >= DifficultyBeginner && d <= DifficultyAdvanced
}

// Register is the speech register of a phrase card.
type Register string

const (
	RegisterNeutral  Register = "NEUTRAL"
	RegisterFormal   Register = "FORMAL"
	RegisterInformal Register = "INFORMAL"
)

func (r Register) String() string { return string(r) }

func (r Register) IsValid() bool {
	switch r {
	case RegisterNeutral, RegisterFormal, RegisterInformal:
		return true
	}
	return false
}

// Direction is the translation direction of a review.
type Direction string

const (
	DirectionLuxToEng Direction = "LUX_TO_ENG"
	DirectionEngToLux Direction = "ENG_TO_LUX"
)

func (d Direction) String() string { return string(d) }

func (d Direction) IsValid() bool {
	switch d {
	case DirectionLuxToEng, DirectionEngToLux:
		return true
	}
	return false
}

// MatchQuality grades how a user's answer compared to the reference answer.
type MatchQuality string

const (
	MatchExact     MatchQuality = "EXACT"
	MatchClose     MatchQuality = "CLOSE"
	MatchIncorrect MatchQuality = "INCORRECT"
)

func (q MatchQuality) String() string { return string(q) }

func (q MatchQuality) IsValid() bool {
	switch q {
	case MatchExact, MatchClose, MatchIncorrect:
		return true
	}
	return false
}
