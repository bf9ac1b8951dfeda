package solver

import (
	"testing"

	"github.com/Epidiah/wordlebot/internal/words"
)

func testDictionary(t *testing.T) []string {
	t.Helper()
	if err := words.Init(); err != nil {
		t.Fatalf("words.Init: %v", err)
	}
	return words.Dictionary()
}

func TestSessionSelfPlaySolvesCrane(t *testing.T) {
	dict := testDictionary(t)
	for seed := int64(1); seed <= 10; seed++ {
		s := NewSession(dict, seed)
		if err := s.Play("crane"); err != nil {
			t.Fatalf("seed %d: Play: %v", seed, err)
		}
		if s.State() != StateSolved {
			t.Fatalf("seed %d: state = %q, want solved (history %v)", seed, s.State(), s.History)
		}
		if n := len(s.History); n < 1 || n > MaxRounds {
			t.Fatalf("seed %d: %d rounds, want 1..%d", seed, n, MaxRounds)
		}
		last := s.History[len(s.History)-1]
		if last.Guess != "crane" {
			t.Errorf("seed %d: final guess = %q, want crane", seed, last.Guess)
		}
		if !last.Feedback.Solved() {
			t.Errorf("seed %d: final feedback %v not all-correct", seed, last.Feedback)
		}
	}
}

func TestSessionSelfPlayAppendsUnknownAnswer(t *testing.T) {
	dict := testDictionary(t)
	s := NewSession(dict, 3)
	if err := s.Play("zonal"); err != nil {
		t.Fatalf("Play: %v", err)
	}
	if s.State() != StateSolved {
		t.Fatalf("state = %q, want solved", s.State())
	}
	if got := s.History[len(s.History)-1].Guess; got != "zonal" {
		t.Errorf("final guess = %q, want zonal", got)
	}
}

func TestSessionSelfPlayRejectsInvalidAnswer(t *testing.T) {
	s := NewSession([]string{"crane"}, 1)
	for _, answer := range []string{"", "cr", "cranes", "cr4ne"} {
		if err := s.Play(answer); err != ErrInvalidWord {
			t.Errorf("Play(%q) = %v, want ErrInvalidWord", answer, err)
		}
	}
}

func TestSessionNextGuessIsSticky(t *testing.T) {
	s := NewSession([]string{"crane", "slate"}, 5)
	first, err := s.NextGuess()
	if err != nil {
		t.Fatalf("NextGuess: %v", err)
	}
	again, err := s.NextGuess()
	if err != nil {
		t.Fatalf("NextGuess: %v", err)
	}
	if first != again {
		t.Errorf("repeated NextGuess changed: %q then %q", first, again)
	}
}

func TestSessionContradictoryFeedbackFails(t *testing.T) {
	s := NewSession([]string{"slate", "crane"}, 2)
	if _, err := s.NextGuess(); err != nil {
		t.Fatalf("NextGuess: %v", err)
	}
	// All-absent feedback prohibits every letter of the guess; both
	// candidates share letters with either possible guess, so nothing
	// can survive.
	allAbsent := Feedback{MarkAbsent, MarkAbsent, MarkAbsent, MarkAbsent, MarkAbsent}
	state, err := s.ApplyFeedback(allAbsent)
	if err != ErrExhausted {
		t.Fatalf("ApplyFeedback err = %v, want ErrExhausted", err)
	}
	if state != StateFailed {
		t.Errorf("state = %q, want failed", state)
	}
	if _, err := s.NextGuess(); err != ErrFinished {
		t.Errorf("NextGuess after failure = %v, want ErrFinished", err)
	}
}

func TestSessionSolvedFeedbackTerminates(t *testing.T) {
	s := NewSession([]string{"crane", "slate"}, 4)
	guess, err := s.NextGuess()
	if err != nil {
		t.Fatalf("NextGuess: %v", err)
	}
	allCorrect := Feedback{MarkCorrect, MarkCorrect, MarkCorrect, MarkCorrect, MarkCorrect}
	state, err := s.ApplyFeedback(allCorrect)
	if err != nil {
		t.Fatalf("ApplyFeedback: %v", err)
	}
	if state != StateSolved {
		t.Fatalf("state = %q, want solved", state)
	}
	if got := s.History[0].Guess; got != guess {
		t.Errorf("history guess = %q, want %q", got, guess)
	}
	if _, err := s.ApplyFeedback(allCorrect); err != ErrFinished {
		t.Errorf("ApplyFeedback after solve = %v, want ErrFinished", err)
	}
}

func TestSessionRoundLimit(t *testing.T) {
	dict := testDictionary(t)
	s := NewSession(dict, 9)
	if err := s.Play("query"); err != nil {
		t.Fatalf("Play: %v", err)
	}
	if n := len(s.History); n > MaxRounds {
		t.Errorf("history %d rounds, exceeds limit %d", n, MaxRounds)
	}
	if s.State() == StatePlaying {
		t.Errorf("session still playing after Play returned")
	}
}
