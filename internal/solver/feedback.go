// internal/solver/feedback.go
//
// Feedback encoding: compares a guess against a known answer, or parses a
// b/y/g code supplied by an external oracle.
//
// Score implements the standard two-pass algorithm:
//   Pass 1: mark exact matches as correct and count the remaining answer
//           letters.
//   Pass 2: for each non-correct guess letter, mark present while unused
//           occurrences remain, consuming one per mark; otherwise absent.
//
// The consumption rule in pass 2 is what keeps repeated letters honest: a
// guess with two of a letter against an answer with one yields exactly one
// correct/present mark for that letter.

package solver

// Score compares guess to answer and returns the per-letter feedback.
// Both inputs must already be validated five-letter lowercase words.
// Evaluation is strictly left to right, so duplicate-letter resolution
// is deterministic.
func Score(answer, guess string) Feedback {
	fb := make(Feedback, WordLen)

	// Letter counts for the non-correct answer positions (a-z).
	var counts [26]int

	for i := 0; i < WordLen; i++ {
		if guess[i] == answer[i] {
			fb[i] = MarkCorrect
		} else {
			counts[answer[i]-'a']++
		}
	}

	for i := 0; i < WordLen; i++ {
		if fb[i] == MarkCorrect {
			continue
		}
		j := int(guess[i] - 'a')
		if j >= 0 && j < 26 && counts[j] > 0 {
			fb[i] = MarkPresent
			counts[j]--
		} else {
			fb[i] = MarkAbsent
		}
	}
	return fb
}

// ParseFeedback converts an externally supplied b/y/g code into Feedback.
// The code must be exactly five symbols: b=absent, y=present, g=correct.
// Anything else is ErrInvalidFeedback; re-prompting is the caller's job.
func ParseFeedback(code string) (Feedback, error) {
	if len(code) != WordLen {
		return nil, ErrInvalidFeedback
	}
	fb := make(Feedback, WordLen)
	for i := 0; i < WordLen; i++ {
		switch code[i] {
		case 'b':
			fb[i] = MarkAbsent
		case 'y':
			fb[i] = MarkPresent
		case 'g':
			fb[i] = MarkCorrect
		default:
			return nil, ErrInvalidFeedback
		}
	}
	return fb, nil
}
