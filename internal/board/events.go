package board

// Listener receives state-changing events so a presentation layer can
// react. Calls are synchronous but the engine never depends on a
// listener doing anything; rules logic continues regardless.
type Listener interface {
	// PieceCreated fires for every piece placed from the initial layout
	// and for promotion replacements.
	PieceCreated(p *Piece)

	// PieceMoved fires after a committed move has been applied to the
	// board.
	PieceMoved(p *Piece, from, to Coord)

	// PieceRemoved fires when a piece leaves play: capture, or a pawn
	// being replaced by its promotion piece.
	PieceRemoved(p *Piece)

	// GameFinished fires once, when checkmate ends the game.
	GameFinished(winner Team)
}

// NopListener discards all events. Useful for headless play and tests.
var NopListener Listener = nopListener{}

type nopListener struct{}

func (nopListener) PieceCreated(*Piece)             {}
func (nopListener) PieceMoved(*Piece, Coord, Coord) {}
func (nopListener) PieceRemoved(*Piece)             {}
func (nopListener) GameFinished(Team)               {}
