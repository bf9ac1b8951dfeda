// cmd/simulate/main.go
//
// Batch solver benchmark. Plays the bot against every dictionary word
// (optionally multiple trials with varied seeds) and prints the guess
// distribution plus summary metrics. With -answer it instead plays a
// single colored game for inspection.

package main

import (
	"flag"
	"fmt"
	"os"
	"runtime"
	"sort"
	"strings"
	"sync"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/schollz/progressbar/v3"
	"golang.org/x/exp/constraints"
	"golang.org/x/sync/errgroup"

	"github.com/Epidiah/wordlebot/internal/render"
	"github.com/Epidiah/wordlebot/internal/solver"
	"github.com/Epidiah/wordlebot/internal/words"
)

// Bucket layout: index = guesses for solved games, failBucket for games
// that ran out of rounds.
const (
	failBucket = solver.MaxRounds + 1
	nBuckets   = solver.MaxRounds + 2
)

func main() {
	_ = godotenv.Load()
	zerolog.SetGlobalLevel(zerolog.WarnLevel)

	seed := flag.Int64("seed", 1, "base RNG seed; trial seeds are derived from it")
	trials := flag.Int("trials", 1, "games per target word")
	answer := flag.String("answer", "", "play a single colored game against this word")
	flag.Parse()

	if err := words.Init(); err != nil {
		log.Fatal().Err(err).Msg("failed to load dictionary")
	}
	dict := words.Dictionary()

	if *answer != "" {
		if err := playOne(dict, *answer, *seed); err != nil {
			fmt.Fprintln(os.Stderr, "error:", err)
			os.Exit(1)
		}
		return
	}
	playAll(dict, *seed, *trials)
}

// playOne runs and prints a single game with colored rows.
func playOne(dict []string, answer string, seed int64) error {
	sess := solver.NewSession(dict, seed)
	if err := sess.Play(answer); err != nil {
		return err
	}
	for _, turn := range sess.History {
		fmt.Printf("%s   (%d candidates left)\n", render.Colored(turn.Guess, turn.Feedback), turn.Remaining)
	}
	if sess.State() == solver.StateSolved {
		fmt.Printf("solved in %d\n", sess.Round())
	} else {
		fmt.Printf("not solved in %d rounds\n", solver.MaxRounds)
	}
	return nil
}

// playAll fans solving out across all targets and reports the distribution.
func playAll(dict []string, seed int64, trials int) {
	results := make(map[string]*[nBuckets]int, len(dict))
	for _, w := range dict {
		results[w] = new([nBuckets]int)
	}

	bar := progressbar.Default(int64(len(dict) * trials))
	var mu sync.Mutex

	var g errgroup.Group
	g.SetLimit(runtime.NumCPU())
	for i, target := range dict {
		i, target := i, target
		g.Go(func() error {
			for j := 0; j < trials; j++ {
				s := solver.NewSession(dict, seed+int64(i)*1000003+int64(j))
				if err := s.Play(target); err != nil {
					return fmt.Errorf("play %q: %w", target, err)
				}
				bucket := s.Round()
				if s.State() != solver.StateSolved {
					bucket = failBucket
				}
				mu.Lock()
				results[target][bucket]++
				mu.Unlock()
			}
			_ = bar.Add(trials)
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		log.Fatal().Err(err).Msg("simulation failed")
	}

	printDistribution(results, len(dict)*trials)
	for _, m := range metrics {
		fmt.Println(m.run(results))
	}
}

// printDistribution prints count per guess bucket with cumulative totals.
func printDistribution(results map[string]*[nBuckets]int, n int) {
	var totals [nBuckets]int
	for _, r := range results {
		for i, c := range r {
			totals[i] += c
		}
	}
	cum := 0
	for i := 1; i < nBuckets; i++ {
		if totals[i] == 0 {
			continue
		}
		cum += totals[i]
		label := fmt.Sprintf("%d", i)
		if i == failBucket {
			label = "X"
		}
		fmt.Printf("%s: %5d/%d (cum. %5d/%d)\n", label, totals[i], n, cum, n)
	}
}

// metricImpl scores each target by a badness function and reports the worst.
type metricImpl[T constraints.Ordered] struct {
	name        string
	badnessFunc func(*[nBuckets]int) T
}

func (m *metricImpl[T]) run(results map[string]*[nBuckets]int) string {
	var worst T
	var worstWords []string
	for w, r := range results {
		badness := m.badnessFunc(r)
		switch {
		case worst < badness:
			worstWords = []string{w}
			worst = badness
		case worst == badness:
			worstWords = append(worstWords, w)
		}
	}
	sort.Strings(worstWords)
	if len(worstWords) > 8 {
		worstWords = append(worstWords[:8], "...")
	}
	return fmt.Sprintf("worst %v: %v (%v)", m.name, worst, strings.Join(worstWords, " "))
}

type metric interface {
	run(results map[string]*[nBuckets]int) string
}

var metrics = []metric{
	&metricImpl[int]{"rounds", func(r *[nBuckets]int) int {
		for i := nBuckets - 1; i >= 0; i-- {
			if r[i] > 0 {
				return i
			}
		}
		return 0
	}},
	&metricImpl[float64]{"average", func(r *[nBuckets]int) float64 {
		sum := 0
		ct := 0
		for i := 1; i < nBuckets; i++ {
			sum += i * r[i]
			ct += r[i]
		}
		if ct == 0 {
			return 0
		}
		return float64(sum) / float64(ct)
	}},
	&metricImpl[float64]{"unsolved %", func(r *[nBuckets]int) float64 {
		total := 0
		for _, c := range r {
			total += c
		}
		if total == 0 {
			return 0
		}
		return 100 * float64(r[failBucket]) / float64(total)
	}},
}
