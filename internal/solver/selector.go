// internal/solver/selector.go
//
// Guess selection policy. Round 0 picks one of the three strategies
// uniformly at random (a blind opener); every later round scores the
// already-winnowed candidates with CommonLetters. Ties break to the first
// candidate encountered in list order, so selection is deterministic for
// a given candidate order and seed.

package solver

import "math/rand"

// Selector chooses the next guess from the remaining candidates.
type Selector struct {
	rng        *rand.Rand
	strategies []Strategy
	common     Strategy
}

// NewSelector builds a selector around an injected random source.
func NewSelector(rng *rand.Rand) *Selector {
	return &Selector{
		rng: rng,
		strategies: []Strategy{
			CommonLetters{},
			ColumnFrequency{},
			Random{Rng: rng},
		},
		common: CommonLetters{},
	}
}

// SelectGuess returns the top-scoring candidate for the given round.
// Returns ErrNoCandidates on an empty set, which indicates the caller fed
// the session inconsistent feedback.
func (s *Selector) SelectGuess(candidates []string, round int) (string, error) {
	if len(candidates) == 0 {
		return "", ErrNoCandidates
	}
	strat := s.common
	if round == 0 {
		strat = s.strategies[s.rng.Intn(len(s.strategies))]
	}
	return argmax(candidates, strat.Score(candidates)), nil
}

// argmax walks candidates in order and keeps the first strictly greater
// score, which is what makes the tie-break first-in-list.
func argmax(candidates []string, scores map[string]float64) string {
	best := candidates[0]
	bestScore := scores[best]
	for _, w := range candidates[1:] {
		if v := scores[w]; v > bestScore {
			best, bestScore = w, v
		}
	}
	return best
}
