package apperror

import "errors"

var (
	ErrInvalidCell    = errors.New("invalid cell coordinates")
	ErrInvalidPlayer  = errors.New("invalid player id")
	ErrCellOccupied   = errors.New("cell is already occupied")
	ErrGameFinished   = errors.New("game is already finished")
	ErrCorruptedBoard = errors.New("board holds a value outside the cell domain")
)
