package board

// Player owns the active pieces of one team. It aggregates per-piece
// candidate moves, filters out moves that would leave the team's own
// king attacked, and answers the attack queries checkmate detection
// needs. Pieces referenced here live on the shared Board; AddPiece and
// RemovePiece keep the two in step at creation and capture.
type Player struct {
	Team  Team
	board *Board

	pieces []*Piece
}

// NewPlayer creates a player with no pieces yet.
func NewPlayer(t Team, b *Board) *Player {
	return &Player{Team: t, board: b}
}

// AddPiece registers a piece with the player. The caller places it on
// the board.
func (pl *Player) AddPiece(p *Piece) {
	pl.pieces = append(pl.pieces, p)
}

// RemovePiece drops a captured (or promoted-away) piece from the active
// set. Unknown pieces are ignored.
func (pl *Player) RemovePiece(p *Piece) {
	for i, q := range pl.pieces {
		if q == p {
			pl.pieces = append(pl.pieces[:i], pl.pieces[i+1:]...)
			return
		}
	}
}

// Pieces returns the active pieces. Callers must not mutate the slice.
func (pl *Player) Pieces() []*Piece {
	return pl.pieces
}

// PiecesOfKind returns the active pieces of the given kind.
func (pl *Player) PiecesOfKind(k Kind) []*Piece {
	var out []*Piece
	for _, p := range pl.pieces {
		if p.Kind == k {
			out = append(out, p)
		}
	}
	return out
}

// GenerateAllMoves recomputes every piece's candidate moves and then
// filters each move list so that no stored move, if taken, would let
// the opponent immediately capture this player's king. Idempotent
// until the board changes.
func (pl *Player) GenerateAllMoves(opponent *Player) {
	for _, p := range pl.pieces {
		p.moves = candidateMoves(p, pl.board)
	}
	for _, p := range pl.pieces {
		pl.RemoveMovesExposing(King, opponent, p)
	}
}

// PiecesAttackingKind returns the pieces whose current raw candidate
// moves include the square of an opposing piece of kind k. Candidates
// are recomputed here rather than read from the filtered cache: a move
// can threaten the enemy king even when taking it is barred by
// check-safety.
func (pl *Player) PiecesAttackingKind(k Kind, opponent *Player) []*Piece {
	targets := opponent.PiecesOfKind(k)
	if len(targets) == 0 {
		return nil
	}

	var out []*Piece
	for _, p := range pl.pieces {
		if attacksAny(candidateMoves(p, pl.board), targets) {
			out = append(out, p)
		}
	}
	return out
}

func attacksAny(moves []Coord, targets []*Piece) bool {
	for _, m := range moves {
		for _, t := range targets {
			if t.Pos == m {
				return true
			}
		}
	}
	return false
}

// RemoveMovesExposing filters the piece's stored available moves,
// discarding every destination after which the opponent could
// immediately capture a friendly piece of kind k. With k == King this
// is the check-safety filter.
func (pl *Player) RemoveMovesExposing(k Kind, opponent *Player, p *Piece) {
	kept := make([]Coord, 0, len(p.moves))
	for _, dst := range p.moves {
		if !pl.moveExposes(k, opponent, p, dst) {
			kept = append(kept, dst)
		}
	}
	p.moves = kept
}

// CanHideFromAttack reports whether any owned piece has an available
// move after which the opponent's recomputed raw moves no longer reach
// a friendly piece of kind k — a block, a capture of the attacker, or
// an escape.
func (pl *Player) CanHideFromAttack(k Kind, opponent *Player) bool {
	for _, p := range pl.pieces {
		for _, dst := range p.moves {
			if !pl.moveExposes(k, opponent, p, dst) {
				return true
			}
		}
	}
	return false
}

// moveExposes speculatively applies p→dst on the board, asks whether
// any opponent raw candidate then lands on a friendly piece of kind k,
// and unconditionally restores the pre-simulation occupancy before
// returning. Simulations are never interleaved; the grid a caller sees
// after this returns is bit-for-bit the grid it saw before.
func (pl *Player) moveExposes(k Kind, opponent *Player, p *Piece, dst Coord) bool {
	from := p.Pos
	captured := pl.board.PieceAt(dst)

	pl.board.MovePiece(dst, from, p, nil)
	p.Pos = dst

	exposed := false
scan:
	for _, enemy := range opponent.pieces {
		if enemy == captured {
			// Hypothetically off the board for this simulation.
			continue
		}
		for _, atk := range candidateMoves(enemy, pl.board) {
			if occ := pl.board.PieceAt(atk); occ != nil && occ.Team == pl.Team && occ.Kind == k {
				exposed = true
				break scan
			}
		}
	}

	p.Pos = from
	pl.board.MovePiece(from, dst, p, captured)

	return exposed
}
