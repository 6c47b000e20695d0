package board

import "log"

// State is the game lifecycle tag. Transitions are monotonic:
// Init → Play → Finished, with no reentry after Finished.
type State uint8

const (
	// StateInit means board and pieces are still being constructed; no
	// interaction is accepted.
	StateInit State = iota
	// StatePlay is the normal turn loop.
	StatePlay
	// StateFinished is terminal; no further moves are accepted.
	StateFinished
)

// Interaction is the outcome of a tap delivered to HandleTap.
type Interaction uint8

const (
	// Ignored means the tap changed nothing.
	Ignored Interaction = iota
	// Selected means a piece of the active team was selected.
	Selected
	// Deselected means the current selection was cleared.
	Deselected
	// Moved means a move was committed (and the turn resolved fully).
	Moved
)

// Game orchestrates turns. It owns the board and both players, runs the
// state machine, detects checkmate, and dispatches capture and
// promotion events. Built with explicit references; there is no ambient
// session state.
type Game struct {
	board    *Board
	players  [2]*Player
	active   Team
	state    State
	winner   Team
	selected *Piece
	layout   []Placement
	listener Listener
}

// NewGame validates the layout, places the pieces, generates the first
// player's moves, and enters Play. A nil listener means NopListener.
func NewGame(layout []Placement, l Listener) (*Game, error) {
	if l == nil {
		l = NopListener
	}
	g := &Game{layout: layout, listener: l}
	if err := g.setup(); err != nil {
		return nil, err
	}
	return g, nil
}

// setup (re)builds the board and both players from the layout. Shared
// by NewGame and Restart.
func (g *Game) setup() error {
	if err := validateLayout(g.layout); err != nil {
		return err
	}

	g.state = StateInit
	g.board = NewBoard()
	g.players[White] = NewPlayer(White, g.board)
	g.players[Black] = NewPlayer(Black, g.board)
	g.active = White
	g.winner = White
	g.selected = nil

	for _, pl := range g.layout {
		p := NewPiece(pl.Kind, pl.Team, pl.At)
		g.players[pl.Team].AddPiece(p)
		g.board.Place(pl.At, p)
		g.listener.PieceCreated(p)
	}

	g.players[White].GenerateAllMoves(g.players[Black])
	g.players[Black].GenerateAllMoves(g.players[White])
	g.state = StatePlay
	return nil
}

// Restart discards the current session and rebuilds the starting
// configuration from the layout provider. Valid in any state.
func (g *Game) Restart() error {
	return g.setup()
}

// Board returns the shared board, for occupancy queries.
func (g *Game) Board() *Board {
	return g.board
}

// Player returns the player for a team.
func (g *Game) Player(t Team) *Player {
	return g.players[t]
}

// Active returns the team permitted to move.
func (g *Game) Active() Team {
	return g.active
}

// State returns the lifecycle state.
func (g *Game) State() State {
	return g.state
}

// Winner returns the winning team; meaningful only once the state is
// StateFinished.
func (g *Game) Winner() Team {
	return g.winner
}

// Selected returns the currently selected piece, or nil.
func (g *Game) Selected() *Piece {
	return g.selected
}

// KingInDanger reports whether the active team's king square is reached
// by any opposing raw candidate move, and where that king stands.
func (g *Game) KingInDanger() (Coord, bool) {
	kings := g.players[g.active].PiecesOfKind(King)
	if len(kings) == 0 {
		return Coord{}, false
	}
	opp := g.players[g.active.Other()]
	if len(opp.PiecesAttackingKind(King, g.players[g.active])) == 0 {
		return Coord{}, false
	}
	return kings[0].Pos, true
}

// HandleTap is the single interaction intake: the input layer supplies
// a raw board coordinate for the active team and the engine decides
// what, if anything, it means. Illegal taps are no-ops. The returned
// Interaction tells the caller what happened; on Moved the whole turn
// (move, regeneration, checkmate test, turn toggle) has already
// resolved.
func (g *Game) HandleTap(c Coord) Interaction {
	if g.state != StatePlay || !c.OnBoard() {
		return Ignored
	}

	target := g.board.PieceAt(c)

	if g.selected != nil {
		if target == g.selected {
			g.selected = nil
			return Deselected
		}
		if g.selected.CanMoveTo(c) {
			g.commitMove(g.selected, c)
			return Moved
		}
	}

	if target != nil && target.Team == g.active {
		g.selected = target
		return Selected
	}

	if g.selected != nil {
		g.selected = nil
		return Deselected
	}
	return Ignored
}

// commitMove applies a validated move and resolves the turn: capture,
// relocation, promotion, move regeneration for mover then opponent,
// checkmate test, and either game end or turn toggle. Regeneration
// order matters — the checkmate test reads both players' refreshed
// move lists.
func (g *Game) commitMove(p *Piece, dst Coord) {
	mover := g.players[g.active]
	opponent := g.players[g.active.Other()]
	from := p.Pos

	if captured := g.board.PieceAt(dst); captured != nil {
		opponent.RemovePiece(captured)
		g.listener.PieceRemoved(captured)
	}

	g.board.MovePiece(dst, from, p, nil)
	p.Pos = dst
	g.selected = nil
	g.listener.PieceMoved(p, from, dst)
	log.Printf("[MOVE] %s %s %s -> %s", p.Team, p.Kind, from, dst)

	if p.Kind == Pawn && dst.Rank == promotionRank(p.Team) {
		g.promote(p)
	}

	mover.GenerateAllMoves(opponent)
	opponent.GenerateAllMoves(mover)

	if g.isCheckmate(mover, opponent) {
		g.state = StateFinished
		g.winner = g.active
		log.Printf("[GAME] checkmate, %s wins", g.winner)
		g.listener.GameFinished(g.winner)
		return
	}

	g.active = g.active.Other()
}

// promote replaces a pawn that reached the farthest rank with a queen
// of the same team on the same square. Fixed substitution, no player
// choice.
func (g *Game) promote(pawn *Piece) {
	pl := g.players[pawn.Team]
	pl.RemovePiece(pawn)
	g.board.Place(pawn.Pos, nil)
	g.listener.PieceRemoved(pawn)

	queen := NewPiece(Queen, pawn.Team, pawn.Pos)
	pl.AddPiece(queen)
	g.board.Place(queen.Pos, queen)
	g.listener.PieceCreated(queen)
	log.Printf("[GAME] %s pawn promoted at %s", pawn.Team, queen.Pos)
}

// isCheckmate runs the termination test after mover's move: the
// opponent is mated when its king is attacked, the king itself has no
// safe move left, and no opponent piece can interpose or capture to
// remove the attack.
func (g *Game) isCheckmate(mover, opponent *Player) bool {
	if len(mover.PiecesAttackingKind(King, opponent)) == 0 {
		return false
	}

	kings := opponent.PiecesOfKind(King)
	if len(kings) == 0 {
		return true
	}
	king := kings[0]

	opponent.RemoveMovesExposing(King, mover, king)
	if len(king.Moves()) > 0 {
		return false
	}

	return !opponent.CanHideFromAttack(King, mover)
}
