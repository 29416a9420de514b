package game

import "errors"

var (
	ErrWrongPhase    = errors.New("operation not valid in current phase")
	ErrInvalidPile   = errors.New("invalid pile")
	ErrNoChip        = errors.New("player holds no chip of that colour")
	ErrNotEligible   = errors.New("player is not eligible to play next")
	ErrNotInPile     = errors.New("chip is not in the captured pile")
	ErrUnknownLetter = errors.New("unknown player letter")
	ErrGameOver      = errors.New("game is over")

	// ErrInvariant reports an internal consistency failure. It should be
	// unreachable; seeing it means the engine has a bug.
	ErrInvariant = errors.New("game state invariant violated")
)
