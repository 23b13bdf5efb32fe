package entity

import (
	"fmt"

	"github.com/rocketscienceinc/tictactoe-engine/internal/apperror"
)

const (
	// BoardSize - the board is a fixed BoardSize x BoardSize grid.
	BoardSize = 3

	PlayerOne = 1
	PlayerTwo = 2
)

// Cell is the value held by a single board position.
type Cell uint8

const (
	CellEmpty Cell = iota
	CellPlayerOne
	CellPlayerTwo
)

// BoardStatus is the terminal-detection result computed from grid contents alone.
type BoardStatus uint8

const (
	BoardPlaying BoardStatus = iota
	BoardPlayerOneWin
	BoardPlayerTwoWin
	BoardTie
)

// winLines - the 8 winning triples of (row, column) coordinates.
// Checked in a fixed order: 3 columns, 3 rows, 2 diagonals.
var winLines = [8][3][2]int{
	{{0, 0}, {1, 0}, {2, 0}},
	{{0, 1}, {1, 1}, {2, 1}},
	{{0, 2}, {1, 2}, {2, 2}},
	{{0, 0}, {0, 1}, {0, 2}},
	{{1, 0}, {1, 1}, {1, 2}},
	{{2, 0}, {2, 1}, {2, 2}},
	{{0, 0}, {1, 1}, {2, 2}},
	{{0, 2}, {1, 1}, {2, 0}},
}

// Gameboard owns the 3x3 grid. PlaceMove is its sole mutation point; a cell
// set once is never overwritten.
type Gameboard struct {
	grid [BoardSize][BoardSize]Cell
}

func NewGameboard() *Gameboard {
	return &Gameboard{}
}

// Cells - returns a snapshot of the grid. Arrays are value types, so the
// caller gets an independent copy and can never mutate internal state.
func (that *Gameboard) Cells() [BoardSize][BoardSize]Cell {
	return that.grid
}

// PlaceMove - marks the cell at (row, column) for the given player.
func (that *Gameboard) PlaceMove(row, column, player int) error {
	if row < 0 || row >= BoardSize || column < 0 || column >= BoardSize {
		return fmt.Errorf("%w: row %d, column %d", apperror.ErrInvalidCell, row, column)
	}

	mark, err := cellForPlayer(player)
	if err != nil {
		return err
	}

	if that.grid[row][column] != CellEmpty {
		return fmt.Errorf("%w: row %d, column %d", apperror.ErrCellOccupied, row, column)
	}

	that.grid[row][column] = mark

	return nil
}

// Status - scans the win-lines and reports whether the board is still playable,
// won, or tied.
func (that *Gameboard) Status() (BoardStatus, error) {
	for _, line := range winLines {
		a := that.grid[line[0][0]][line[0][1]]
		b := that.grid[line[1][0]][line[1][1]]
		c := that.grid[line[2][0]][line[2][1]]

		if a == CellEmpty || a != b || b != c {
			continue
		}

		switch a {
		case CellPlayerOne:
			return BoardPlayerOneWin, nil
		case CellPlayerTwo:
			return BoardPlayerTwoWin, nil
		default:
			// unreachable on a legally played board, kept as a loud
			// corruption check instead of silently reporting Playing
			return BoardPlaying, fmt.Errorf("%w: value %d at row %d, column %d",
				apperror.ErrCorruptedBoard, a, line[0][0], line[0][1])
		}
	}

	for _, row := range that.grid {
		for _, cell := range row {
			if cell == CellEmpty {
				return BoardPlaying, nil
			}
		}
	}

	return BoardTie, nil
}

func cellForPlayer(player int) (Cell, error) {
	switch player {
	case PlayerOne:
		return CellPlayerOne, nil
	case PlayerTwo:
		return CellPlayerTwo, nil
	default:
		return CellEmpty, fmt.Errorf("%w: %d", apperror.ErrInvalidPlayer, player)
	}
}
