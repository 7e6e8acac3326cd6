// internal/words/words.go
//
// Word list management.
//
// Responsibilities:
//   - Hold the ordered daily candidates ("answers") the selector indexes into.
//   - Answer the membership question for guesses (answers ∪ allowed).
//   - Load lists from files or fall back to the embedded, encoded defaults.
//
// A List is an ordinary value passed to whoever needs it; there is no
// package-level word list.
//
// Load behavior:
//   1. answersPath and allowedPath both set: answers from the first,
//      extra guesses from the second.
//   2. Only one of them set: that file serves as both.
//   3. Neither set: embedded assets.
//
// File lines are encoded like the embedded lists unless plain is true.
// Blank lines and lines starting with '#' are skipped.

package words

import (
	"bufio"
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/robalobadob/kluro/assets"
	"github.com/robalobadob/kluro/internal/game"
)

// List is an ordered list of daily candidates plus a membership set.
type List struct {
	answers []string            // normalized, in play order
	allowed map[string]struct{} // answers ∪ extra guesses, normalized
}

// NewList normalizes both lists and drops words outside the alphabet.
// Answers are always accepted as guesses.
func NewList(answers, allowed []string) *List {
	l := &List{allowed: make(map[string]struct{}, len(answers)+len(allowed))}
	for _, w := range answers {
		if n, ok := clean(w); ok {
			l.answers = append(l.answers, n)
			l.allowed[n] = struct{}{}
		}
	}
	for _, w := range allowed {
		if n, ok := clean(w); ok {
			l.allowed[n] = struct{}{}
		}
	}
	return l
}

func clean(w string) (string, bool) {
	n := game.Normalize(strings.TrimSpace(w))
	return n, n != "" && game.InAlphabet(n)
}

// Contains reports whether candidate is an accepted guess, ignoring case.
func (l *List) Contains(candidate string) bool {
	_, ok := l.allowed[game.Normalize(candidate)]
	return ok
}

// Words returns a copy of the ordered answers.
func (l *List) Words() []string { return append([]string(nil), l.answers...) }

// At returns the i-th answer.
func (l *List) At(i int) string { return l.answers[i] }

// Len is the number of answers.
func (l *List) Len() int { return len(l.answers) }

// Stats returns counts of loaded words: (answers, accepted guesses).
func (l *List) Stats() (answersCount int, allowedCount int) {
	return len(l.answers), len(l.allowed)
}

// Load builds a List from files or the embedded defaults.
// Returns an error if the answers list ends up empty.
func Load(answersPath, allowedPath string, plain bool) (*List, error) {
	var ansList, allowList []string
	var err error

	switch {
	case answersPath != "" && allowedPath != "":
		if ansList, err = readWordFile(answersPath, plain); err != nil {
			return nil, err
		}
		if allowList, err = readWordFile(allowedPath, plain); err != nil {
			return nil, err
		}

	case answersPath != "" || allowedPath != "":
		path := answersPath + allowedPath
		if ansList, err = readWordFile(path, plain); err != nil {
			return nil, err
		}

	default:
		if ansList, err = decodeAll(assets.AnswersList()); err != nil {
			return nil, err
		}
		if allowList, err = decodeAll(assets.AllowedList()); err != nil {
			return nil, err
		}
	}

	l := NewList(ansList, allowList)
	if l.Len() == 0 {
		return nil, errors.New("words: answers list is empty")
	}
	return l, nil
}

// readWordFile loads one word per line from path.
func readWordFile(path string, plain bool) ([]string, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	var lines []string
	sc := bufio.NewScanner(f)
	for sc.Scan() {
		s := strings.TrimSpace(sc.Text())
		if s == "" || strings.HasPrefix(s, "#") {
			continue
		}
		lines = append(lines, s)
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("read %s: %w", path, err)
	}
	if plain {
		return lines, nil
	}
	out, err := decodeAll(lines, nil)
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", path, err)
	}
	return out, nil
}

func decodeAll(lines []string, err error) ([]string, error) {
	if err != nil {
		return nil, err
	}
	out := make([]string, 0, len(lines))
	for _, enc := range lines {
		w, err := Decode(enc)
		if err != nil {
			return nil, err
		}
		out = append(out, w)
	}
	return out, nil
}
