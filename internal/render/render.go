// internal/render/render.go
//
// Display rendering for feedback rows. The engine exposes raw marks; this
// package turns them into emoji rows for sharing, ANSI-colored rows for
// terminals, and the share summary block.

package render

import (
	"fmt"
	"strings"

	"github.com/mitchellh/colorstring"

	"github.com/Epidiah/wordlebot/internal/solver"
)

// Emoji renders one feedback row as the usual share squares.
func Emoji(fb solver.Feedback) string {
	var b strings.Builder
	for _, m := range fb {
		switch m {
		case solver.MarkCorrect:
			b.WriteString("\U0001F7E9") // green square
		case solver.MarkPresent:
			b.WriteString("\U0001F7E8") // yellow square
		default:
			b.WriteString("⬛") // black square
		}
	}
	return b.String()
}

// EmojiRows renders the emoji row for every turn in history order.
func EmojiRows(history []solver.Turn) []string {
	rows := make([]string, len(history))
	for i, turn := range history {
		rows[i] = Emoji(turn.Feedback)
	}
	return rows
}

// Colored renders a guess with per-letter colored backgrounds for
// terminal output.
func Colored(guess string, fb solver.Feedback) string {
	var b strings.Builder
	for i, m := range fb {
		letter := strings.ToUpper(string(guess[i]))
		switch m {
		case solver.MarkCorrect:
			b.WriteString(colorstring.Color("[light_green]" + letter))
		case solver.MarkPresent:
			b.WriteString(colorstring.Color("[light_yellow]" + letter))
		default:
			b.WriteString(colorstring.Color("[dark_gray]" + letter))
		}
		if i < solver.WordLen-1 {
			b.WriteByte(' ')
		}
	}
	return b.String()
}

// ShareText builds the share block: a header naming the game number and
// score, then one emoji row per guess. An unsolved game scores X.
func ShareText(gameNumber int, history []solver.Turn, solved bool) string {
	score := "X"
	if solved {
		score = fmt.Sprintf("%d", len(history))
	}
	var b strings.Builder
	fmt.Fprintf(&b, "**Wordle Bot Got:**\nWordle %d  %s/%d\n\n", gameNumber, score, solver.MaxRounds)
	b.WriteString(strings.Join(EmojiRows(history), "\n"))
	return b.String()
}
