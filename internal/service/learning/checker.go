package learning

import (
	"strings"

	"github.com/agnivade/levenshtein"
	"golang.org/x/text/unicode/norm"

	"github.com/learnlux/learnlux-backend/internal/domain"
)

// CheckResult is the verdict for one user answer.
type CheckResult struct {
	IsCorrect         bool
	MatchQuality      domain.MatchQuality
	NormalizedUser    string
	NormalizedCorrect string
}

// Checker compares user answers against reference answers with typo
// tolerance. All inputs are valid, including empty strings; Check never
// fails.
type Checker struct {
	caseSensitive bool
	typoTolerance int
}

// NewChecker creates a Checker. typoTolerance is the Levenshtein budget
// for answers still counted as correct; negative values are treated as 0.
func NewChecker(caseSensitive bool, typoTolerance int) *Checker {
	if typoTolerance < 0 {
		typoTolerance = 0
	}
	return &Checker{caseSensitive: caseSensitive, typoTolerance: typoTolerance}
}

// Check normalizes both answers and grades the match. First hit wins:
// exact match, close match within the typo budget, then the slash
// alternatives of the correct answer ("the/a house" accepts "the a house"
// and "thea house" spellings of the collapsed form).
func (c *Checker) Check(userAnswer, correctAnswer string) CheckResult {
	user := c.normalize(userAnswer)
	correct := c.normalize(correctAnswer)

	result := CheckResult{
		NormalizedUser:    user,
		NormalizedCorrect: correct,
	}

	if user == correct {
		result.IsCorrect = true
		result.MatchQuality = domain.MatchExact
		return result
	}

	if levenshtein.ComputeDistance(user, correct) <= c.typoTolerance {
		result.IsCorrect = true
		result.MatchQuality = domain.MatchClose
		return result
	}

	if c.matchesAlternative(user, correct) {
		result.IsCorrect = true
		result.MatchQuality = domain.MatchExact
		return result
	}

	result.MatchQuality = domain.MatchIncorrect
	return result
}

// normalize collapses whitespace, applies NFC so precomposed and
// decomposed accents compare equal, lowercases unless case-sensitive,
// and strips one trailing sentence terminator.
func (c *Checker) normalize(text string) string {
	text = strings.Join(strings.Fields(text), " ")
	text = norm.NFC.String(text)
	if !c.caseSensitive {
		text = strings.ToLower(text)
	}
	if len(text) > 0 {
		switch text[len(text)-1] {
		case '.', '!', '?':
			text = text[:len(text)-1]
		}
	}
	return text
}

// matchesAlternative handles correct answers with slash alternatives,
// e.g. "d'/eng Haus": the user answer is accepted when it equals the
// correct answer with the slash replaced by a space or removed entirely.
func (c *Checker) matchesAlternative(user, correct string) bool {
	if !strings.Contains(correct, "/") {
		return false
	}
	alternatives := []string{
		strings.ReplaceAll(correct, "/", " "),
		strings.ReplaceAll(correct, "/", ""),
	}
	for _, alt := range alternatives {
		if user == c.normalize(alt) {
			return true
		}
	}
	return false
}
