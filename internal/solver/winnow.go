// internal/solver/winnow.go
//
// Candidate filtering. Winnow removes every candidate inconsistent with
// one round's (guess, feedback) pair, in two stages:
//
//   Stage A (positions): a correct position pins the candidate letter.
//   Every other position must differ from the guess letter there (the
//   guess would have scored correct otherwise) and must not hold a
//   globally prohibited letter.
//
//   Stage B (presence): each present-coded letter must occur somewhere in
//   the candidate outside the correct-coded positions.
//
// A letter is globally prohibited when it is coded absent and has no
// present-coded occurrence in the same guess. A letter that is correct in
// one spot and absent in another is still prohibited from every
// non-correct position: the answer holds no occurrences beyond the ones
// already matched. A present-coded occurrence exempts the letter, since
// prohibiting it would contradict the stage B requirement and could
// discard the true answer.

package solver

// Winnow returns the candidates consistent with feedback for guess.
// The input slice is not mutated. Returns ErrExhausted if nothing
// survives, which signals contradictory feedback.
func Winnow(candidates []string, guess string, fb Feedback) ([]string, error) {
	var prohibited, present [26]bool
	for i := 0; i < WordLen; i++ {
		switch fb[i] {
		case MarkAbsent:
			prohibited[guess[i]-'a'] = true
		case MarkPresent:
			present[guess[i]-'a'] = true
		}
	}
	for j := range prohibited {
		if present[j] {
			prohibited[j] = false
		}
	}

	// Stage A: one combined positional predicate per candidate.
	out := make([]string, 0, len(candidates))
	for _, w := range candidates {
		if matchesPositions(w, guess, fb, &prohibited) {
			out = append(out, w)
		}
	}

	// Stage B: sift for each present letter in turn.
	for i := 0; i < WordLen; i++ {
		if fb[i] != MarkPresent {
			continue
		}
		out = sift(out, guess[i], fb)
	}

	if len(out) == 0 {
		return nil, ErrExhausted
	}
	return out, nil
}

// matchesPositions applies the five positional constraints at once.
func matchesPositions(w, guess string, fb Feedback, prohibited *[26]bool) bool {
	for i := 0; i < WordLen; i++ {
		if fb[i] == MarkCorrect {
			if w[i] != guess[i] {
				return false
			}
			continue
		}
		if w[i] == guess[i] {
			return false
		}
		if prohibited[w[i]-'a'] {
			return false
		}
	}
	return true
}

// sift keeps candidates containing letter at some non-correct position.
func sift(candidates []string, letter byte, fb Feedback) []string {
	out := candidates[:0]
	for _, w := range candidates {
		for i := 0; i < WordLen; i++ {
			if fb[i] != MarkCorrect && w[i] == letter {
				out = append(out, w)
				break
			}
		}
	}
	return out
}
