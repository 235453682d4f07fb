package apperror

import "errors"

var (
	ErrSessionNotFound = errors.New("session not found")
	ErrGameFinished    = errors.New("game is already finished")
	ErrInvalidCell     = errors.New("invalid cell index")
	ErrCellOccupied    = errors.New("cell is already occupied")
	ErrBotMove         = errors.New("bot returned an illegal move")
)
