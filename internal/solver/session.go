// internal/solver/session.go
//
// Session is the game loop for one solve: it owns the candidate set and
// the guess history, proposes guesses, accepts feedback (computed or
// external), winnows, and tracks the terminal state.
//
// State machine per round:
//   NextGuess (pick + hold pending) → ApplyFeedback (record, winnow) →
//   next round, until solved (all-correct feedback) or failed (MaxRounds
// reached, or contradictory feedback exhausted the candidates).

package solver

import (
	"math/rand"
	"strings"

	"github.com/google/uuid"
)

// Session states.
const (
	StatePlaying = "playing"
	StateSolved  = "solved"
	StateFailed  = "failed"
)

// Session holds the state of a single solve.
type Session struct {
	ID         string
	Candidates []string
	History    []Turn

	state    string
	pending  string // guess proposed but not yet answered
	selector *Selector
}

// NewSession constructs a session over a copy of the dictionary, with an
// explicitly seeded random source so runs are reproducible.
func NewSession(dictionary []string, seed int64) *Session {
	cands := make([]string, len(dictionary))
	copy(cands, dictionary)
	return &Session{
		ID:         uuid.NewString(),
		Candidates: cands,
		state:      StatePlaying,
		selector:   NewSelector(rand.New(rand.NewSource(seed))),
	}
}

// State reports "playing", "solved", or "failed".
func (s *Session) State() string { return s.state }

// Round reports the number of completed rounds.
func (s *Session) Round() int { return len(s.History) }

// Remaining reports the current candidate count.
func (s *Session) Remaining() int { return len(s.Candidates) }

// PendingGuess returns the guess awaiting feedback, if any.
func (s *Session) PendingGuess() string { return s.pending }

// NextGuess proposes the next guess and holds it until feedback arrives.
// Calling it again before ApplyFeedback returns the same guess.
func (s *Session) NextGuess() (string, error) {
	if s.state != StatePlaying {
		return "", ErrFinished
	}
	if s.pending != "" {
		return s.pending, nil
	}
	g, err := s.selector.SelectGuess(s.Candidates, len(s.History))
	if err != nil {
		return "", err
	}
	s.pending = g
	return g, nil
}

// ApplyFeedback records feedback for the pending guess, winnows the
// candidates, and advances the state machine. It returns the resulting
// state. ErrExhausted marks the session failed: the feedback contradicts
// every candidate and cannot self-correct.
func (s *Session) ApplyFeedback(fb Feedback) (string, error) {
	if s.state != StatePlaying {
		return s.state, ErrFinished
	}
	if s.pending == "" {
		if _, err := s.NextGuess(); err != nil {
			return s.state, err
		}
	}
	guess := s.pending
	s.pending = ""

	if fb.Solved() {
		s.History = append(s.History, Turn{Guess: guess, Feedback: fb, Remaining: 1})
		s.state = StateSolved
		return s.state, nil
	}

	winnowed, err := Winnow(s.Candidates, guess, fb)
	if err != nil {
		s.History = append(s.History, Turn{Guess: guess, Feedback: fb, Remaining: 0})
		s.state = StateFailed
		return s.state, err
	}
	s.Candidates = winnowed
	s.History = append(s.History, Turn{Guess: guess, Feedback: fb, Remaining: len(winnowed)})

	if len(s.History) >= MaxRounds {
		s.state = StateFailed
	}
	return s.state, nil
}

// Play runs the session to completion in self-play against answer,
// computing feedback internally each round. The answer joins the
// candidate set if the dictionary lacks it, so the filter invariant
// (the true answer always survives winnowing) holds from round one.
func (s *Session) Play(answer string) error {
	answer = strings.ToLower(strings.TrimSpace(answer))
	if err := ValidateWord(answer); err != nil {
		return err
	}
	s.ensureCandidate(answer)

	for s.state == StatePlaying {
		guess, err := s.NextGuess()
		if err != nil {
			return err
		}
		if _, err := s.ApplyFeedback(Score(answer, guess)); err != nil {
			return err
		}
	}
	return nil
}

// ensureCandidate appends w if absent. Session-local only; the source
// dictionary is never touched.
func (s *Session) ensureCandidate(w string) {
	for _, c := range s.Candidates {
		if c == w {
			return
		}
	}
	s.Candidates = append(s.Candidates, w)
}
