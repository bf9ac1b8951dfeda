package solver

import (
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestWinnowPositionalConstraints(t *testing.T) {
	// answer "error", guess "robot" → [present absent absent correct absent].
	// Prohibited letters: o (absent at 1, correct elsewhere does not
	// exempt it), b, t. Present r must occur outside position 3.
	fb := Score("error", "robot")

	tests := []struct {
		name string
		word string
		keep bool
	}{
		{"true answer survives", "error", true},
		{"prohibited o outside correct position", "moron", false},
		{"prohibited b", "rebor", false},
		{"missing correct letter at position", "river", false},
		{"missing required present letter", "cadon", false},
		{"present letter at its coded position", "rarot", false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Winnow([]string{tt.word, "error"}, "robot", fb)
			if err != nil {
				t.Fatalf("Winnow: %v", err)
			}
			kept := false
			for _, w := range got {
				if w == tt.word {
					kept = true
				}
			}
			if kept != tt.keep {
				t.Errorf("Winnow kept %q = %v, want %v", tt.word, kept, tt.keep)
			}
		})
	}
}

// A letter coded absent at one spot but present at another stays usable:
// prohibiting it globally would discard the true answer.
func TestWinnowDuplicateLetterProhibition(t *testing.T) {
	// answer "crane", guess "ahead" → a present at 0, absent at 3.
	fb := Score("crane", "ahead")
	got, err := Winnow([]string{"crane", "whack", "dread"}, "ahead", fb)
	if err != nil {
		t.Fatalf("Winnow: %v", err)
	}
	// crane survives (soundness); whack drops for its h, dread for its d.
	want := []string{"crane"}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("Winnow mismatch (-want +got):\n%s", diff)
	}
}

// An exempted letter is still barred from the exact position where it
// was coded absent: the guess would have scored correct there.
func TestWinnowRejectsGuessLetterAtAbsentPosition(t *testing.T) {
	// answer "crane", guess "ahead" → a present at 0, absent at 3, so a
	// stays usable elsewhere but never at position 3.
	fb := Score("crane", "ahead")
	got, err := Winnow([]string{"crane", "essay", "least"}, "ahead", fb)
	if err != nil {
		t.Fatalf("Winnow: %v", err)
	}
	// essay drops for its a at position 3; least keeps a at position 2.
	want := []string{"crane", "least"}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("Winnow mismatch (-want +got):\n%s", diff)
	}
}

// Winnowing with feedback computed against the answer always keeps the
// answer.
func TestWinnowSoundness(t *testing.T) {
	candidates := []string{"crane", "error", "sleep", "geese", "abbey", "robot", "llama", "peels"}
	for _, answer := range candidates {
		for _, guess := range candidates {
			got, err := Winnow(candidates, guess, Score(answer, guess))
			if err != nil {
				t.Fatalf("Winnow(answer=%q, guess=%q): %v", answer, guess, err)
			}
			found := false
			for _, w := range got {
				if w == answer {
					found = true
				}
			}
			if !found {
				t.Errorf("Winnow(answer=%q, guess=%q) discarded the answer", answer, guess)
			}
		}
	}
}

func TestWinnowIdempotent(t *testing.T) {
	candidates := []string{"crane", "crank", "craze", "slate", "trace", "grace"}
	fb := Score("crane", "trace")
	once, err := Winnow(candidates, "trace", fb)
	if err != nil {
		t.Fatalf("first Winnow: %v", err)
	}
	twice, err := Winnow(once, "trace", fb)
	if err != nil {
		t.Fatalf("second Winnow: %v", err)
	}
	if diff := cmp.Diff(once, twice); diff != "" {
		t.Errorf("re-winnowing changed the set (-once +twice):\n%s", diff)
	}
}

func TestWinnowMonotonic(t *testing.T) {
	candidates := []string{"crane", "crank", "craze", "slate", "trace", "grace", "error", "robot"}
	for _, answer := range candidates {
		for _, guess := range candidates {
			got, err := Winnow(candidates, guess, Score(answer, guess))
			if err != nil {
				t.Fatalf("Winnow(answer=%q, guess=%q): %v", answer, guess, err)
			}
			if len(got) > len(candidates) {
				t.Errorf("Winnow grew the set: %d > %d", len(got), len(candidates))
			}
		}
	}
}

func TestWinnowDoesNotMutateInput(t *testing.T) {
	candidates := []string{"crane", "slate", "trace"}
	orig := []string{"crane", "slate", "trace"}
	if _, err := Winnow(candidates, "trace", Score("crane", "trace")); err != nil {
		t.Fatalf("Winnow: %v", err)
	}
	if diff := cmp.Diff(orig, candidates); diff != "" {
		t.Errorf("input mutated (-want +got):\n%s", diff)
	}
}

func TestWinnowExhaustion(t *testing.T) {
	// Feedback claiming the guess is the answer, against candidates that
	// do not include it, must error rather than return an empty set.
	allCorrect := Feedback{MarkCorrect, MarkCorrect, MarkCorrect, MarkCorrect, MarkCorrect}
	got, err := Winnow([]string{"slate", "trace"}, "crane", allCorrect)
	if err != ErrExhausted {
		t.Fatalf("Winnow err = %v, want ErrExhausted", err)
	}
	if got != nil {
		t.Errorf("Winnow returned %v alongside the error, want nil", got)
	}
}
