package tui

import (
	"fmt"

	"github.com/mattn/go-runewidth"

	"github.com/rocketscienceinc/tictactoe-engine/internal/config"
	"github.com/rocketscienceinc/tictactoe-engine/internal/entity"
	"github.com/rocketscienceinc/tictactoe-engine/internal/tictactoe"
)

// Board geometry on screen. Each cell is cellWidth columns by cellHeight rows,
// separator lines included.
const (
	boardLeft  = 2
	boardTop   = 2
	cellWidth  = 4
	cellHeight = 2

	contentWidth = cellWidth - 1
)

const helpLine = "arrows/click: select  enter/space: place  r: reset  q: quit"

// glyphFor - maps a cell value to its display rune. Empty cells render blank.
func glyphFor(cell entity.Cell, display config.Display) rune {
	switch cell {
	case entity.CellPlayerOne:
		return firstRune(display.PlayerOneGlyph, 'X')
	case entity.CellPlayerTwo:
		return firstRune(display.PlayerTwoGlyph, 'O')
	default:
		return ' '
	}
}

// statusLine - human-readable line for the current game status, using the
// configured glyphs.
func statusLine(status tictactoe.Status, display config.Display) string {
	one := firstRune(display.PlayerOneGlyph, 'X')
	two := firstRune(display.PlayerTwoGlyph, 'O')

	switch status {
	case tictactoe.StatusPlayerOneTurn:
		return fmt.Sprintf("%c to move", one)
	case tictactoe.StatusPlayerTwoTurn:
		return fmt.Sprintf("%c to move", two)
	case tictactoe.StatusPlayerOneWin:
		return fmt.Sprintf("%c wins", one)
	case tictactoe.StatusPlayerTwoWin:
		return fmt.Sprintf("%c wins", two)
	case tictactoe.StatusTie:
		return "tie game"
	default:
		return status.String()
	}
}

// cellAt - maps a screen position to board coordinates. Separator rows and
// columns belong to no cell.
func cellAt(x, y int) (row, column int, ok bool) {
	for r := 0; r < entity.BoardSize; r++ {
		if y != boardTop+r*cellHeight {
			continue
		}

		for c := 0; c < entity.BoardSize; c++ {
			left := boardLeft + c*cellWidth
			if x >= left && x < left+contentWidth {
				return r, c, true
			}
		}
	}

	return 0, 0, false
}

// glyphOffset - column offset that centers a glyph inside a cell, accounting
// for double-width runes.
func glyphOffset(glyph rune) int {
	pad := (contentWidth - runewidth.RuneWidth(glyph)) / 2
	if pad < 0 {
		return 0
	}
	return pad
}

func firstRune(s string, fallback rune) rune {
	for _, r := range s {
		return r
	}
	return fallback
}
