package domain

import "errors"

// Domain errors
var (
	ErrGameNotFound   = errors.New("game not found")
	ErrRollInProgress = errors.New("a roll is already in progress")
	ErrGameOver       = errors.New("game is over")
	ErrRollNotStarted = errors.New("no roll to resolve")
	ErrInvalidRoll    = errors.New("die value out of range")
)
