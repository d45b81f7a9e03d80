package domain

import "testing"

func TestCardKind_IsValid(t *testing.T) {
	t.Parallel()

	tests := []struct {
		kind CardKind
		want bool
	}{
		{CardKindVocabulary, true},
		{CardKindPhrase, true},
		{CardKind("INVALID"), false},
		{CardKind(""), false},
	}
	for _, tt := range tests {
		t.Run(string(tt.kind), func(t *testing.T) {
			t.Parallel()
			if got := tt.kind.IsValid(); got != tt.want {
				t.Errorf("CardKind(%q).IsValid() = %v, want %v", tt.kind, got, tt.want)
			}
		})
	}
}

func TestDifficulty_IsValid(t *testing.T) {
	t.Parallel()

	tests := []struct {
		difficulty Difficulty
		want       bool
	}{
		{DifficultyBeginner, true},
		{DifficultyIntermediate, true},
		{DifficultyAdvanced, true},
		{Difficulty(0), false},
		{Difficulty(4), false},
		{Difficulty(-1), false},
	}
	for _, tt := range tests {
		t.Run(tt.difficulty.String(), func(t *testing.T) {
			t.Parallel()
			if got := tt.difficulty.IsValid(); got != tt.want {
				t.Errorf("Difficulty(%d).IsValid() = %v, want %v", tt.difficulty, got, tt.want)
			}
		})
	}
}

func TestDifficulty_String(t *testing.T) {
	t.Parallel()

	if got := DifficultyBeginner.String(); got != "BEGINNER" {
		t.Errorf("got %q, want BEGINNER", got)
	}
	if got := Difficulty(9).String(); got != "UNKNOWN" {
		t.Errorf("got %q, want UNKNOWN", got)
	}
}

func TestRegister_IsValid(t *testing.T) {
	t.Parallel()

	tests := []struct {
		register Register
		want     bool
	}{
		{RegisterNeutral, true},
		{RegisterFormal, true},
		{RegisterInformal, true},
		{Register("SLANG"), false},
		{Register(""), false},
	}
	for _, tt := range tests {
		t.Run(string(tt.register), func(t *testing.T) {
			t.Parallel()
			if got := tt.register.IsValid(); got != tt.want {
				t.Errorf("Register(%q).IsValid() = %v, want %v", tt.register, got, tt.want)
			}
		})
	}
}

func TestDirection_IsValid(t *testing.T) {
	t.Parallel()

	tests := []struct {
		direction Direction
		want      bool
	}{
		{DirectionLuxToEng, true},
		{DirectionEngToLux, true},
		{Direction("ENG_TO_FRA"), false},
		{Direction(""), false},
	}
	for _, tt := range tests {
		t.Run(string(tt.direction), func(t *testing.T) {
			t.Parallel()
			if got := tt.direction.IsValid(); got != tt.want {
				t.Errorf("Direction(%q).IsValid() = %v, want %v", tt.direction, got, tt.want)
			}
		})
	}
}

func TestMatchQuality_IsValid(t *testing.T) {
	t.Parallel()

	tests := []struct {
		quality MatchQuality
		want    bool
	}{
		{MatchExact, true},
		{MatchClose, true},
		{MatchIncorrect, true},
		{MatchQuality("PARTIAL"), false},
		{MatchQuality(""), false},
	}
	for _, tt := range tests {
		t.Run(string(tt.quality), func(t *testing.T) {
			t.Parallel()
			if got := tt.quality.IsValid(); got != tt.want {
				t.Errorf("MatchQuality(%q).IsValid() = %v, want %v", tt.quality, got, tt.want)
			}
		})
	}
}
