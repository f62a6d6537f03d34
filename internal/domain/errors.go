package domain

import "errors"

var (
	ErrRoundOver         = errors.New("round is over, start a new game")
	ErrGuessInFlight     = errors.New("a guess is already being checked")
	ErrStaleResponse     = errors.New("response belongs to a previous round")
	ErrOracleUnavailable = errors.New("game service unavailable")
	ErrInvalidConfig     = errors.New("invalid configuration")
)
