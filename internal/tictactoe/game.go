package tictactoe

import (
	"fmt"

	"github.com/rocketscienceinc/tictactoe-engine/internal/apperror"
	"github.com/rocketscienceinc/tictactoe-engine/internal/entity"
)

// Status is the turn/outcome state of a game, layered above the board status.
type Status uint8

const (
	StatusPlayerOneTurn Status = iota
	StatusPlayerTwoTurn
	StatusPlayerOneWin
	StatusPlayerTwoWin
	StatusTie
)

func (that Status) String() string {
	switch that {
	case StatusPlayerOneTurn:
		return "player one's turn"
	case StatusPlayerTwoTurn:
		return "player two's turn"
	case StatusPlayerOneWin:
		return "player one wins"
	case StatusPlayerTwoWin:
		return "player two wins"
	case StatusTie:
		return "tie"
	default:
		return fmt.Sprintf("unknown status %d", uint8(that))
	}
}

// IsTerminal - reports whether no further moves are possible.
func (that Status) IsTerminal() bool {
	return that != StatusPlayerOneTurn && that != StatusPlayerTwoTurn
}

// Game tracks whose turn it is on top of one Gameboard and two bound player
// handles. All operations are synchronous; callers must serialize MakeMove and
// Reset themselves.
type Game struct {
	board     *entity.Gameboard
	playerOne *entity.Player
	playerTwo *entity.Player
	status    Status
}

// New - creates a game with a fresh board, both player handles bound to it,
// and player one to move.
func New() *Game {
	board := entity.NewGameboard()

	return &Game{
		board:     board,
		playerOne: entity.NewPlayer(entity.PlayerOne, board),
		playerTwo: entity.NewPlayer(entity.PlayerTwo, board),
		status:    StatusPlayerOneTurn,
	}
}

func (that *Game) Status() Status {
	return that.status
}

// Board - returns a snapshot of the grid; same copy guarantee as
// Gameboard.Cells.
func (that *Game) Board() [entity.BoardSize][entity.BoardSize]entity.Cell {
	return that.board.Cells()
}

// CurrentPlayer - returns the handle of the player to move.
func (that *Game) CurrentPlayer() (*entity.Player, error) {
	switch that.status {
	case StatusPlayerOneTurn:
		return that.playerOne, nil
	case StatusPlayerTwoTurn:
		return that.playerTwo, nil
	default:
		return nil, fmt.Errorf("%w: %s", apperror.ErrGameFinished, that.status)
	}
}

// MakeMove - applies a move for the player whose turn it is, then advances the
// status. A rejected move leaves both board and status untouched.
func (that *Game) MakeMove(row, column int) error {
	player, err := that.CurrentPlayer()
	if err != nil {
		return err
	}

	if err = player.MakeMove(row, column); err != nil {
		return err
	}

	return that.updateGameStatus()
}

// Reset - discards the board, rebinds both player handles to a fresh one and
// hands the first move back to player one.
func (that *Game) Reset() {
	board := entity.NewGameboard()

	that.board = board
	that.playerOne.ReplaceBoardWith(board)
	that.playerTwo.ReplaceBoardWith(board)
	that.status = StatusPlayerOneTurn
}

func (that *Game) updateGameStatus() error {
	boardStatus, err := that.board.Status()
	if err != nil {
		return fmt.Errorf("failed to read board status: %w", err)
	}

	switch boardStatus {
	case entity.BoardPlayerOneWin:
		that.status = StatusPlayerOneWin
	case entity.BoardPlayerTwoWin:
		that.status = StatusPlayerTwoWin
	case entity.BoardTie:
		that.status = StatusTie
	default:
		that.status = that.nextTurn()
	}

	return nil
}

func (that *Game) nextTurn() Status {
	if that.status == StatusPlayerOneTurn {
		return StatusPlayerTwoTurn
	}
	return StatusPlayerOneTurn
}
