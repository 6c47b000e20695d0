package board

import "strings"

// Board owns the 8×8 occupancy grid. It is the single source of truth
// for which piece stands on which square; a piece's Pos field is caller
// bookkeeping that must be reconciled at the same mutation points.
//
// Board is mutated synchronously from the game-logic goroutine only.
// The check-safety simulation in Player performs a speculative
// mutate-and-restore cycle on it; nothing else writes the grid outside
// MovePiece and Place.
type Board struct {
	grid [BoardSize][BoardSize]*Piece
}

// NewBoard returns an empty board.
func NewBoard() *Board {
	return &Board{}
}

// PieceAt returns the piece on c, or nil for an empty or out-of-bounds
// square. Out-of-bounds coordinates are tolerated, never a fault.
func (b *Board) PieceAt(c Coord) *Piece {
	if !c.OnBoard() {
		return nil
	}
	return b.grid[c.File][c.Rank]
}

// OnBoard reports whether c addresses a real square.
func (b *Board) OnBoard(c Coord) bool {
	return c.OnBoard()
}

// Place overwrites the grid entry at c. No-op if c is out of bounds.
// Callers must have already reconciled the piece's own Pos field.
func (b *Board) Place(c Coord, p *Piece) {
	if !c.OnBoard() {
		return
	}
	b.grid[c.File][c.Rank] = p
}

// MovePiece sets the old square to oldOcc (typically nil) and the new
// square to newOcc in one step. This is the single mutation point for
// board topology; both the committed move path and the check-safety
// simulation go through it, the latter calling it a second time with
// the snapshotted occupants to restore the grid.
func (b *Board) MovePiece(newC, oldC Coord, newOcc, oldOcc *Piece) {
	b.Place(oldC, oldOcc)
	b.Place(newC, newOcc)
}

// Contains reports whether the piece occupies some square of the grid.
// Linear scan; used defensively, not on hot paths.
func (b *Board) Contains(p *Piece) bool {
	if p == nil {
		return false
	}
	for file := 0; file < BoardSize; file++ {
		for rank := 0; rank < BoardSize; rank++ {
			if b.grid[file][rank] == p {
				return true
			}
		}
	}
	return false
}

// String renders the board as an ASCII diagram, rank 7 at the top.
// Uppercase letters are White, lowercase Black.
func (b *Board) String() string {
	var sb strings.Builder
	for rank := BoardSize - 1; rank >= 0; rank-- {
		sb.WriteByte('1' + byte(rank))
		sb.WriteByte(' ')
		for file := 0; file < BoardSize; file++ {
			p := b.grid[file][rank]
			switch {
			case p == nil:
				sb.WriteByte('.')
			case p.Team == White:
				sb.WriteByte(p.Kind.Char() - 'a' + 'A')
			default:
				sb.WriteByte(p.Kind.Char())
			}
			sb.WriteByte(' ')
		}
		sb.WriteByte('\n')
	}
	sb.WriteString("  a b c d e f g h")
	return sb.String()
}
