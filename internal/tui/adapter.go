// Package tui is the presentation layer: it renders board snapshots and
// forwards cell activations to the game. Rejected moves are discarded here;
// the engine itself never swallows an error.
package tui

import (
	"context"
	"fmt"
	"log/slog"

	termbox "github.com/nsf/termbox-go"

	"github.com/rocketscienceinc/tictactoe-engine/internal/config"
	"github.com/rocketscienceinc/tictactoe-engine/internal/entity"
	"github.com/rocketscienceinc/tictactoe-engine/internal/tictactoe"
)

type game interface {
	Status() tictactoe.Status
	Board() [entity.BoardSize][entity.BoardSize]entity.Cell
	MakeMove(row, column int) error
	Reset()
}

type Adapter struct {
	logger  *slog.Logger
	display config.Display
	game    game

	cursorRow    int
	cursorColumn int
}

func New(logger *slog.Logger, display config.Display, game game) *Adapter {
	return &Adapter{
		logger:  logger.With("component", "tui"),
		display: display,
		game:    game,
	}
}

// Run - owns the terminal until the user quits or ctx is canceled. All game
// calls happen on this goroutine, so the engine sees strictly serialized
// MakeMove/Reset invocations.
func (that *Adapter) Run(ctx context.Context) error {
	if err := termbox.Init(); err != nil {
		return fmt.Errorf("failed to initialize terminal: %w", err)
	}
	defer termbox.Close()

	termbox.SetInputMode(termbox.InputEsc | termbox.InputMouse)

	go func() {
		<-ctx.Done()
		termbox.Interrupt()
	}()

	that.redraw()

	for {
		switch event := termbox.PollEvent(); event.Type {
		case termbox.EventKey:
			if done := that.handleKey(event); done {
				return nil
			}
		case termbox.EventMouse:
			that.handleMouse(event)
		case termbox.EventResize:
			// redrawn below
		case termbox.EventInterrupt:
			return nil
		case termbox.EventError:
			return fmt.Errorf("terminal event error: %w", event.Err)
		}

		that.redraw()
	}
}

func (that *Adapter) handleKey(event termbox.Event) bool {
	switch {
	case event.Key == termbox.KeyEsc, event.Key == termbox.KeyCtrlC, event.Ch == 'q':
		return true
	case event.Key == termbox.KeyArrowUp:
		that.moveCursor(-1, 0)
	case event.Key == termbox.KeyArrowDown:
		that.moveCursor(1, 0)
	case event.Key == termbox.KeyArrowLeft:
		that.moveCursor(0, -1)
	case event.Key == termbox.KeyArrowRight:
		that.moveCursor(0, 1)
	case event.Key == termbox.KeyEnter, event.Key == termbox.KeySpace:
		that.activateCell(that.cursorRow, that.cursorColumn)
	case event.Ch == 'r':
		that.game.Reset()
	}

	return false
}

func (that *Adapter) handleMouse(event termbox.Event) {
	if event.Key != termbox.MouseLeft {
		return
	}

	row, column, ok := cellAt(event.MouseX, event.MouseY)
	if !ok {
		return
	}

	that.cursorRow, that.cursorColumn = row, column
	that.activateCell(row, column)
}

// activateCell - forwards a move to the game. A rejected move is normal user
// interaction (occupied cell, finished game): it is logged and dropped, and
// the unchanged board is simply rendered again.
func (that *Adapter) activateCell(row, column int) {
	if err := that.game.MakeMove(row, column); err != nil {
		that.logger.Debug("move rejected", "row", row, "column", column, "error", err)
	}
}

func (that *Adapter) moveCursor(dRow, dColumn int) {
	that.cursorRow = clamp(that.cursorRow+dRow, 0, entity.BoardSize-1)
	that.cursorColumn = clamp(that.cursorColumn+dColumn, 0, entity.BoardSize-1)
}

func (that *Adapter) redraw() {
	termbox.Clear(termbox.ColorDefault, termbox.ColorDefault)

	drawText(boardLeft, 0, "tic-tac-toe", termbox.AttrBold)

	that.drawGrid()
	that.drawCells()

	statusY := boardTop + entity.BoardSize*cellHeight
	drawText(boardLeft, statusY, statusLine(that.game.Status(), that.display), termbox.ColorDefault)
	drawText(boardLeft, statusY+2, helpLine, termbox.ColorBlue)

	termbox.Flush()
}

func (that *Adapter) drawGrid() {
	for sep := 1; sep < entity.BoardSize; sep++ {
		y := boardTop + sep*cellHeight - 1
		for x := 0; x < entity.BoardSize*cellWidth-1; x++ {
			termbox.SetCell(boardLeft+x, y, '─', termbox.ColorDefault, termbox.ColorDefault)
		}
	}

	for sep := 1; sep < entity.BoardSize; sep++ {
		x := boardLeft + sep*cellWidth - 1
		for row := 0; row < entity.BoardSize*cellHeight-1; row++ {
			y := boardTop + row
			ch := '│'
			if (row+1)%cellHeight == 0 {
				ch = '┼'
			}
			termbox.SetCell(x, y, ch, termbox.ColorDefault, termbox.ColorDefault)
		}
	}
}

func (that *Adapter) drawCells() {
	board := that.game.Board()
	terminal := that.game.Status().IsTerminal()

	for row := 0; row < entity.BoardSize; row++ {
		for column := 0; column < entity.BoardSize; column++ {
			glyph := glyphFor(board[row][column], that.display)

			foreground, background := termbox.ColorDefault, termbox.ColorDefault
			if !terminal && row == that.cursorRow && column == that.cursorColumn {
				foreground, background = termbox.ColorBlack, termbox.ColorWhite
			}

			left := boardLeft + column*cellWidth
			y := boardTop + row*cellHeight
			for x := 0; x < contentWidth; x++ {
				termbox.SetCell(left+x, y, ' ', foreground, background)
			}
			termbox.SetCell(left+glyphOffset(glyph), y, glyph, foreground, background)
		}
	}
}

func drawText(x, y int, text string, fg termbox.Attribute) {
	for _, r := range text {
		termbox.SetCell(x, y, r, fg, termbox.ColorDefault)
		x++
	}
}

func clamp(v, low, high int) int {
	if v < low {
		return low
	}
	if v > high {
		return high
	}
	return v
}
