package tui

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rocketscienceinc/tictactoe-engine/internal/config"
	"github.com/rocketscienceinc/tictactoe-engine/internal/entity"
	"github.com/rocketscienceinc/tictactoe-engine/internal/tictactoe"
)

func TestGlyphFor(t *testing.T) {
	t.Run("Maps cells to configured glyphs", func(t *testing.T) {
		// Given: a display configuration with custom glyphs
		display := config.Display{PlayerOneGlyph: "✕", PlayerTwoGlyph: "◯"}

		// Then: each cell value should map to its glyph, empty to blank
		assert.Equal(t, '✕', glyphFor(entity.CellPlayerOne, display))
		assert.Equal(t, '◯', glyphFor(entity.CellPlayerTwo, display))
		assert.Equal(t, ' ', glyphFor(entity.CellEmpty, display))
	})

	t.Run("Falls back to defaults on empty configuration", func(t *testing.T) {
		// Given: an empty display configuration
		display := config.Display{}

		// Then: the standard marks should be used
		assert.Equal(t, 'X', glyphFor(entity.CellPlayerOne, display))
		assert.Equal(t, 'O', glyphFor(entity.CellPlayerTwo, display))
	})
}

func TestStatusLine(t *testing.T) {
	// Given: the default display configuration
	display := config.Display{PlayerOneGlyph: "X", PlayerTwoGlyph: "O"}

	// Then: every status should render a readable line
	assert.Equal(t, "X to move", statusLine(tictactoe.StatusPlayerOneTurn, display))
	assert.Equal(t, "O to move", statusLine(tictactoe.StatusPlayerTwoTurn, display))
	assert.Equal(t, "X wins", statusLine(tictactoe.StatusPlayerOneWin, display))
	assert.Equal(t, "O wins", statusLine(tictactoe.StatusPlayerTwoWin, display))
	assert.Equal(t, "tie game", statusLine(tictactoe.StatusTie, display))
}

func TestCellAt(t *testing.T) {
	t.Run("Hits every cell at its content area", func(t *testing.T) {
		for expectedRow := 0; expectedRow < entity.BoardSize; expectedRow++ {
			for expectedColumn := 0; expectedColumn < entity.BoardSize; expectedColumn++ {
				// Given: a screen position inside the cell's content area
				x := boardLeft + expectedColumn*cellWidth + 1
				y := boardTop + expectedRow*cellHeight

				// When: hit-testing that position
				row, column, ok := cellAt(x, y)

				// Then: it should resolve to the matching board cell
				require.True(t, ok)
				require.Equal(t, expectedRow, row)
				require.Equal(t, expectedColumn, column)
			}
		}
	})

	t.Run("Misses separators and positions outside the board", func(t *testing.T) {
		positions := [][2]int{
			{boardLeft, boardTop + 1},             // horizontal separator
			{boardLeft + cellWidth - 1, boardTop}, // vertical separator
			{0, 0},                                // title area
			{boardLeft, boardTop + entity.BoardSize*cellHeight}, // below the board
		}

		for _, position := range positions {
			// When: hit-testing a position that belongs to no cell
			_, _, ok := cellAt(position[0], position[1])

			// Then: the click should be ignored
			assert.False(t, ok, "position %v should not hit a cell", position)
		}
	})
}

func TestGlyphOffset(t *testing.T) {
	// Then: narrow glyphs are centered, wide glyphs shifted left accordingly
	assert.Equal(t, 1, glyphOffset('X'))
	assert.Equal(t, 0, glyphOffset('全'))
}
