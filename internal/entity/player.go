package entity

// Player is a lightweight handle pairing a fixed identity with the currently
// active board. Move-placement rules stay with the Gameboard.
type Player struct {
	id    int
	board *Gameboard
}

func NewPlayer(id int, board *Gameboard) *Player {
	return &Player{id: id, board: board}
}

func (that *Player) ID() int {
	return that.id
}

// MakeMove - delegates to the bound board with this player's identity.
// Errors propagate unchanged.
func (that *Player) MakeMove(row, column int) error {
	return that.board.PlaceMove(row, column, that.id)
}

// ReplaceBoardWith - rebinds the handle to a fresh board. Moves placed on the
// discarded board are unaffected.
func (that *Player) ReplaceBoardWith(board *Gameboard) {
	that.board = board
}
