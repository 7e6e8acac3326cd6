package game

import "errors"

// Guess rejections. Submit returns them wrapped with detail; match with errors.Is.
// A rejected guess never changes the session.
var (
	ErrSessionComplete   = errors.New("game is already complete")
	ErrInvalidInput      = errors.New("invalid guess type")
	ErrInvalidLength     = errors.New("invalid guess length")
	ErrInvalidCharacters = errors.New("invalid characters in guess")
)

var (
	ErrInvalidTarget = errors.New("invalid target word")
	ErrCorruptState  = errors.New("corrupt game state")
)
