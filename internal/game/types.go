// internal/game/types.go
//
// Core type definitions for the puzzle engine.
// Defines:
//   - Outcome: per-letter result of a guess, ordered by informativeness.
//   - Cell/Row: one evaluated letter and one evaluated guess.
//   - Keyboard: best outcome seen so far for each alphabet letter.
//   - State: everything a session persists between guesses.

package game

import (
	"fmt"
	"strings"
)

// Outcome is the evaluation result for a single letter.
// Values are ordered: Unused < Absent < Present < Correct, so the stronger of
// two outcomes is simply max(a, b).
type Outcome int

const (
	Unused  Outcome = iota // keyboard-only initial value, never appears in a Row
	Absent                 // letter not available in the target
	Present                // letter in the target at another position
	Correct                // letter in the right position
)

var outcomeNames = [...]string{
	Unused:  "unused",
	Absent:  "absent",
	Present: "present",
	Correct: "correct",
}

func (o Outcome) String() string {
	if o < Unused || o > Correct {
		return fmt.Sprintf("Outcome(%d)", int(o))
	}
	return outcomeNames[o]
}

// MarshalText encodes the outcome by name ("correct", "present", ...).
func (o Outcome) MarshalText() ([]byte, error) {
	if o < Unused || o > Correct {
		return nil, fmt.Errorf("game: unknown outcome %d", int(o))
	}
	return []byte(outcomeNames[o]), nil
}

// UnmarshalText decodes an outcome name.
func (o *Outcome) UnmarshalText(b []byte) error {
	for i, name := range outcomeNames {
		if string(b) == name {
			*o = Outcome(i)
			return nil
		}
	}
	return fmt.Errorf("game: unknown outcome %q", b)
}

// Cell is one evaluated letter of a guess.
type Cell struct {
	Letter string  `json:"letter"`
	Status Outcome `json:"status"`
}

// Row is one evaluated guess; len(Row) equals the target length.
type Row []Cell

// Word joins the letters of the row.
func (r Row) Word() string {
	var b strings.Builder
	for _, c := range r {
		b.WriteString(c.Letter)
	}
	return b.String()
}

// Keyboard maps every alphabet letter to the most informative outcome seen.
type Keyboard map[string]Outcome

// newKeyboard returns a keyboard with every alphabet letter Unused.
func newKeyboard() Keyboard {
	kb := make(Keyboard, len(alphabet))
	for _, r := range alphabet {
		kb[string(r)] = Unused
	}
	return kb
}

// fold upgrades the keyboard with a new row. Status only moves up.
func (kb Keyboard) fold(row Row) {
	for _, c := range row {
		kb[c.Letter] = max(kb[c.Letter], c.Status)
	}
}

// State is the full persisted state of a session.
type State struct {
	Grid         []Row    `json:"grid"`
	Keyboard     Keyboard `json:"keyboard"`
	IsComplete   bool     `json:"isComplete"`
	IsWon        bool     `json:"isWon"`
	CurrentRow   int      `json:"currentRow"`
	RevealedWord string   `json:"revealedWord"` // target once IsComplete, "" before
}

// clone returns a deep copy that shares no slices or maps with s.
func (s State) clone() State {
	out := s
	out.Grid = make([]Row, len(s.Grid))
	for i, row := range s.Grid {
		out.Grid[i] = append(Row(nil), row...)
	}
	out.Keyboard = make(Keyboard, len(s.Keyboard))
	for k, v := range s.Keyboard {
		out.Keyboard[k] = v
	}
	return out
}

// Status is a coarse view of where a session is in its lifecycle.
type Status string

const (
	StatusActive Status = "active"
	StatusWon    Status = "won"
	StatusLost   Status = "lost"
)
