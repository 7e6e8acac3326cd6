// internal/game/session.go
//
// Session is the state machine around Evaluate for one target word.
//
// States:
//   - active: fewer than MaxAttempts guesses and no win yet.
//   - won:    the last guess equalled the target.
//   - lost:   MaxAttempts guesses without a match.
// Won and lost are terminal.
//
// A Session has no internal locking. Callers that share one between
// goroutines must serialize calls to Submit themselves.
package game

import (
	"encoding/json"
	"fmt"
	"unicode/utf8"
)

// MaxAttempts is the number of guesses allowed per session.
const MaxAttempts = 6

// Session holds the target word and the accumulated state for it.
type Session struct {
	target string
	state  State
}

// New starts a fresh session for target. The target is normalized and must
// be a non-empty word over the alphabet.
func New(target string) (*Session, error) {
	t, err := normalizeTarget(target)
	if err != nil {
		return nil, err
	}
	return &Session{
		target: t,
		state: State{
			Grid:     []Row{},
			Keyboard: newKeyboard(),
		},
	}, nil
}

// Resume rebuilds a session from a blob produced by Serialize for the same
// target. The decoded state is adopted as is; only an empty keyboard is
// initialized.
func Resume(target, blob string) (*Session, error) {
	t, err := normalizeTarget(target)
	if err != nil {
		return nil, err
	}
	st, err := Deserialize(blob)
	if err != nil {
		return nil, err
	}
	if err := checkState(st, utf8.RuneCountInString(t)); err != nil {
		return nil, err
	}
	if len(st.Keyboard) == 0 {
		st.Keyboard = newKeyboard()
	}
	if st.Grid == nil {
		st.Grid = []Row{}
	}
	return &Session{target: t, state: st}, nil
}

func normalizeTarget(target string) (string, error) {
	t := Normalize(target)
	if t == "" || !InAlphabet(t) {
		return "", fmt.Errorf("%w: %q", ErrInvalidTarget, target)
	}
	return t, nil
}

// checkState rejects blobs that no sequence of guesses could have produced.
func checkState(st State, wordLen int) error {
	if st.CurrentRow < 0 || st.CurrentRow > MaxAttempts {
		return fmt.Errorf("%w: current row %d", ErrCorruptState, st.CurrentRow)
	}
	if st.CurrentRow != len(st.Grid) {
		return fmt.Errorf("%w: current row %d with %d rows", ErrCorruptState, st.CurrentRow, len(st.Grid))
	}
	switch {
	case st.CurrentRow == MaxAttempts && !st.IsComplete:
		return fmt.Errorf("%w: %d rows but not complete", ErrCorruptState, st.CurrentRow)
	case st.IsWon && !st.IsComplete:
		return fmt.Errorf("%w: won but not complete", ErrCorruptState)
	case st.IsComplete && st.CurrentRow == 0:
		return fmt.Errorf("%w: complete without guesses", ErrCorruptState)
	}
	for i, row := range st.Grid {
		if len(row) != wordLen {
			return fmt.Errorf("%w: row %d has %d letters, want %d", ErrCorruptState, i, len(row), wordLen)
		}
	}
	return nil
}

// Target returns the normalized target word.
func (s *Session) Target() string { return s.target }

// WordLength is the number of letters every guess must have.
func (s *Session) WordLength() int { return utf8.RuneCountInString(s.target) }

// State returns a snapshot of the current state.
func (s *Session) State() State { return s.state.clone() }

// Status reports whether the session is still accepting guesses.
func (s *Session) Status() Status {
	switch {
	case s.state.IsWon:
		return StatusWon
	case s.state.IsComplete:
		return StatusLost
	default:
		return StatusActive
	}
}

// Submit validates, scores and records one guess, returning a snapshot of
// the resulting state.
//
// Validation rules, checked in order:
//   - Session must not be complete.
//   - Guess must be non-empty valid UTF-8.
//   - Normalized guess must have as many letters as the target.
//   - Every letter must belong to the alphabet.
//
// On error the session is left unchanged.
func (s *Session) Submit(raw string) (State, error) {
	if s.state.IsComplete || s.state.CurrentRow >= MaxAttempts {
		return State{}, ErrSessionComplete
	}
	if raw == "" || !utf8.ValidString(raw) {
		return State{}, fmt.Errorf("%w: %q", ErrInvalidInput, raw)
	}
	guess := Normalize(raw)
	if got, want := utf8.RuneCountInString(guess), s.WordLength(); got != want {
		return State{}, fmt.Errorf("%w: got %d letters, want %d", ErrInvalidLength, got, want)
	}
	if !InAlphabet(guess) {
		return State{}, fmt.Errorf("%w: %q", ErrInvalidCharacters, raw)
	}

	row := Evaluate(s.target, guess)
	s.state.Grid = append(s.state.Grid, row)
	s.state.Keyboard.fold(row)

	won := guess == s.target
	s.state.CurrentRow++
	s.state.IsComplete = won || s.state.CurrentRow >= MaxAttempts
	s.state.IsWon = won
	if s.state.IsComplete {
		s.state.RevealedWord = s.target
	}
	return s.state.clone(), nil
}

// Serialize encodes the full state as JSON. The target is not included;
// pass it to Resume alongside the blob.
func (s *Session) Serialize() (string, error) {
	b, err := json.Marshal(s.state)
	if err != nil {
		return "", fmt.Errorf("serialize state: %w", err)
	}
	return string(b), nil
}

// Deserialize decodes a blob produced by Serialize.
func Deserialize(blob string) (State, error) {
	var st State
	if err := json.Unmarshal([]byte(blob), &st); err != nil {
		return State{}, fmt.Errorf("%w: %v", ErrCorruptState, err)
	}
	return st, nil
}
