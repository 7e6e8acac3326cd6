// internal/game/engine.go
//
// Feedback evaluation for a single guess.
//
// Evaluate is the classic two-pass scorer, generalized from ASCII counts to
// runes so the accented letters score like any other:
//
// Pass 1:
//   - Mark exact matches Correct and consume that target position.
//
// Pass 2:
//   - For each remaining guess letter, left to right, consume the lowest
//     unconsumed target position holding the same letter and mark Present;
//     otherwise mark Absent.
//
// Earlier duplicates in the guess are credited first when occurrences in the
// target run out, and no letter is ever credited more often than it occurs.
package game

import "fmt"

// Evaluate scores guess against target. Both must already be normalized.
// It panics if they differ in length; callers validate length first.
func Evaluate(target, guess string) Row {
	t, g := []rune(target), []rune(guess)
	if len(t) != len(g) {
		panic(fmt.Sprintf("game: evaluate %d-letter guess against %d-letter target", len(g), len(t)))
	}

	row := make(Row, len(g))
	consumed := make([]bool, len(t))

	// First pass: exact matches.
	for i := range g {
		row[i] = Cell{Letter: string(g[i]), Status: Absent}
		if g[i] == t[i] {
			row[i].Status = Correct
			consumed[i] = true
		}
	}

	// Second pass: misplaced letters against what is left of the target.
	for i := range g {
		if row[i].Status == Correct {
			continue
		}
		for j := range t {
			if !consumed[j] && t[j] == g[i] {
				row[i].Status = Present
				consumed[j] = true
				break
			}
		}
	}
	return row
}
