// Package share renders a finished (or in-progress) game as the text players
// paste to others, and as a QR code of that text.
package share

import (
	"fmt"
	"strings"

	"github.com/skip2/go-qrcode"

	"github.com/robalobadob/kluro/internal/game"
)

// Title is the game's name as shown in shared results.
const Title = "🅺🅻🆄🆁🅾"

var squares = map[game.Outcome]string{
	game.Correct: "🟩",
	game.Present: "🟨",
	game.Absent:  "⬛",
}

// Text renders the result block:
//
//	🅺🅻🆄🆁🅾 #815 2024-05-05 3/6
//
//	⬛🟨⬛⬛🟩
//	...
//
// The score is "X" when the game was lost and "-" while it is still running.
// Only outcomes are shown, never letters.
func Text(st game.State, dayIndex int, date string) string {
	score := "-"
	switch {
	case st.IsWon:
		score = fmt.Sprint(st.CurrentRow)
	case st.IsComplete:
		score = "X"
	}

	var b strings.Builder
	fmt.Fprintf(&b, "%s #%d %s %s/%d\n", Title, dayIndex, date, score, game.MaxAttempts)
	if len(st.Grid) > 0 {
		b.WriteString("\n")
	}
	for _, row := range st.Grid {
		for _, c := range row {
			b.WriteString(squares[c.Status])
		}
		b.WriteString("\n")
	}
	return b.String()
}

// QR encodes text as a PNG QR code of size×size pixels.
func QR(text string, size int) ([]byte, error) {
	if size <= 0 {
		size = 256
	}
	png, err := qrcode.Encode(text, qrcode.Medium, size)
	if err != nil {
		return nil, fmt.Errorf("qr encode: %w", err)
	}
	return png, nil
}
