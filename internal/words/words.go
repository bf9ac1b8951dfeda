// internal/words/words.go
//
// Dictionary provider for the solving engine.
//
// Responsibilities:
//   - Load the candidate dictionary from an environment-provided file or
//     fall back to the embedded default.
//   - Keep the list in source order (the engine's tie-break depends on it)
//     and never deduplicate.
//   - Expose Dictionary, Contains, and Stats.
//
// Initialization behavior (Init):
//   1. If DICTIONARY_FILE is set, load one word per line from that file.
//   2. Otherwise use the embedded dictionary from assets.
//
// Constraints:
//   • Words must be 5 alphabetic letters (a–z).
//   • Lists are normalized to lowercase.
//   • Initialization is run once (sync.Once).

package words

import (
	"bufio"
	"errors"
	"os"
	"strings"
	"sync"

	"github.com/Epidiah/wordlebot/assets"
)

var (
	initOnce   sync.Once
	dictionary []string
	wordSet    map[string]struct{}
	initialErr error
)

// Init loads the dictionary exactly once.
// Returns an error if the dictionary ends up empty.
func Init() error {
	initOnce.Do(func() {
		var list []string
		var err error

		if path := os.Getenv("DICTIONARY_FILE"); path != "" {
			list, err = ReadWordFile(path)
		} else {
			list, err = assets.DictionaryList()
		}
		if err != nil {
			initialErr = err
			return
		}

		dictionary = list
		wordSet = make(map[string]struct{}, len(list))
		for _, w := range list {
			wordSet[w] = struct{}{}
		}

		if len(dictionary) == 0 {
			initialErr = errors.New("words: dictionary is empty")
		}
	})
	return initialErr
}

// ReadWordFile loads one word per line from a file,
// lowercases, trims, and keeps only valid 5-letter alphabetic words.
func ReadWordFile(path string) ([]string, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	var out []string
	sc := bufio.NewScanner(f)
	for sc.Scan() {
		w := strings.TrimSpace(strings.ToLower(sc.Text()))
		if len(w) == 5 && isAlpha(w) {
			out = append(out, w)
		}
	}
	return out, sc.Err()
}

// isAlpha reports whether s is all lowercase ASCII letters.
func isAlpha(s string) bool {
	for _, r := range s {
		if r < 'a' || r > 'z' {
			return false
		}
	}
	return true
}

// Dictionary returns the loaded word list in source order.
// Callers must not mutate it; sessions copy it on construction.
func Dictionary() []string {
	return dictionary
}

// Contains reports whether w is in the dictionary.
func Contains(w string) bool {
	_, ok := wordSet[strings.ToLower(w)]
	return ok
}

// Stats returns the number of loaded words.
func Stats() int {
	return len(dictionary)
}
