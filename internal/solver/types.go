// internal/solver/types.go
//
// Core type definitions for the solving engine.
// Defines:
//   - Mark: per-letter classification of a guessed letter (correct/present/absent).
//   - Feedback: the five-mark row produced for one guess.
//   - Turn: one round of the game, a guess paired with its feedback.
//   - Sentinel errors for the boundary and for contradictory feedback.

package solver

import "errors"

const (
	// WordLen is the fixed word length.
	WordLen = 5

	// MaxRounds is the number of attempts the bot gets per game.
	MaxRounds = 6
)

// Mark represents the evaluation result for a single letter in a guess.
// Possible values:
//   - "correct": letter is in the answer at this exact position.
//   - "present": letter is in the answer but at a different position.
//   - "absent":  letter has no usable occurrence in the answer.
type Mark string

const (
	MarkCorrect Mark = "correct"
	MarkPresent Mark = "present"
	MarkAbsent  Mark = "absent"
)

// Feedback is the per-position classification of one guess,
// always WordLen marks long.
type Feedback []Mark

// Turn records one completed round: the guess, its feedback, and how many
// candidates survived the winnowing that followed.
type Turn struct {
	Guess     string   `json:"guess"`
	Feedback  Feedback `json:"feedback"`
	Remaining int      `json:"remaining"`
}

var (
	// ErrInvalidWord rejects guesses or answers that are not exactly
	// five ASCII letters.
	ErrInvalidWord = errors.New("word must be exactly 5 letters a-z")

	// ErrInvalidFeedback rejects externally supplied feedback codes that
	// are not exactly five symbols from b/y/g.
	ErrInvalidFeedback = errors.New("feedback must be exactly 5 symbols from b, y, g")

	// ErrExhausted reports that winnowing removed every candidate, which
	// means the accumulated feedback is contradictory.
	ErrExhausted = errors.New("no candidates remain: feedback is contradictory")

	// ErrNoCandidates reports a guess request against an empty candidate set.
	ErrNoCandidates = errors.New("no candidates to choose from")

	// ErrFinished rejects further moves on a solved or failed session.
	ErrFinished = errors.New("session finished")
)

// Solved reports whether every mark is MarkCorrect.
func (f Feedback) Solved() bool {
	for _, m := range f {
		if m != MarkCorrect {
			return false
		}
	}
	return len(f) == WordLen
}

// Code renders the feedback as a compact b/y/g string, the same alphabet
// accepted by ParseFeedback.
func (f Feedback) Code() string {
	buf := make([]byte, len(f))
	for i, m := range f {
		switch m {
		case MarkCorrect:
			buf[i] = 'g'
		case MarkPresent:
			buf[i] = 'y'
		default:
			buf[i] = 'b'
		}
	}
	return string(buf)
}

// ValidateWord checks that w is exactly WordLen lowercase ASCII letters.
// Callers normalize case before validating.
func ValidateWord(w string) error {
	if len(w) != WordLen || !isAlpha(w) {
		return ErrInvalidWord
	}
	return nil
}

// isAlpha checks that a string consists only of lowercase a-z.
func isAlpha(s string) bool {
	for _, r := range s {
		if r < 'a' || r > 'z' {
			return false
		}
	}
	return true
}
