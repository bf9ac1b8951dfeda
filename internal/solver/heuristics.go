// internal/solver/heuristics.go
//
// Scoring heuristics. Each strategy assigns a desirability score to every
// remaining candidate; the selector takes the argmax. Three strategies:
//   - CommonLetters: rewards words that test many distinct high-frequency
//     letters (pooled across all positions, repeats counted once).
//   - ColumnFrequency: rewards words matching common per-position letters.
//   - Random: a full random permutation of ranks, used as a deliberate
//     exploration fallback.
//
// All strategies are pure over the candidate slice; frequency tables are
// rebuilt per call and never persisted.

package solver

import "math/rand"

// Strategy scores candidates for guess selection.
type Strategy interface {
	Name() string
	Score(candidates []string) map[string]float64
}

// letterCounts tallies letter occurrences across candidates, pooled and
// per position.
func letterCounts(candidates []string) (pooled [26]int, byCol [WordLen][26]int) {
	for _, w := range candidates {
		for i := 0; i < WordLen; i++ {
			j := w[i] - 'a'
			pooled[j]++
			byCol[i][j]++
		}
	}
	return pooled, byCol
}

// CommonLetters scores a word by the summed probabilities of its distinct
// letters, where a letter's probability is its share of all letter
// occurrences in the candidate set.
type CommonLetters struct{}

func (CommonLetters) Name() string { return "common-letters" }

func (CommonLetters) Score(candidates []string) map[string]float64 {
	pooled, _ := letterCounts(candidates)
	total := 0
	for _, n := range pooled {
		total += n
	}
	scores := make(map[string]float64, len(candidates))
	if total == 0 {
		return scores
	}
	for _, w := range candidates {
		var seen [26]bool
		sum := 0.0
		for i := 0; i < WordLen; i++ {
			j := w[i] - 'a'
			if seen[j] {
				continue
			}
			seen[j] = true
			sum += float64(pooled[j]) / float64(total)
		}
		scores[w] = sum
	}
	return scores
}

// ColumnFrequency scores a word by the summed per-position probabilities
// of its letters, where a position's letter probability is its frequency
// in that column divided by the candidate count.
type ColumnFrequency struct{}

func (ColumnFrequency) Name() string { return "column-frequency" }

func (ColumnFrequency) Score(candidates []string) map[string]float64 {
	_, byCol := letterCounts(candidates)
	n := len(candidates)
	scores := make(map[string]float64, n)
	if n == 0 {
		return scores
	}
	for _, w := range candidates {
		sum := 0.0
		for i := 0; i < WordLen; i++ {
			sum += float64(byCol[i][w[i]-'a']) / float64(n)
		}
		scores[w] = sum
	}
	return scores
}

// Random assigns each candidate a distinct pseudo-random rank, a hail
// mary to break out of a wrong path. The source is injected so tests can
// seed it.
type Random struct {
	Rng *rand.Rand
}

func (Random) Name() string { return "random" }

func (r Random) Score(candidates []string) map[string]float64 {
	scores := make(map[string]float64, len(candidates))
	for i, p := range r.Rng.Perm(len(candidates)) {
		scores[candidates[i]] = float64(p)
	}
	return scores
}
