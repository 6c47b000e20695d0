package board

import "testing"

func TestPieceAtToleratesOutOfBounds(t *testing.T) {
	b := NewBoard()

	for _, c := range []Coord{
		{-1, 0}, {0, -1}, {8, 0}, {0, 8}, {-3, 12}, {100, 100},
	} {
		if p := b.PieceAt(c); p != nil {
			t.Errorf("PieceAt(%v) = %v, want nil", c, p)
		}
		if b.OnBoard(c) {
			t.Errorf("OnBoard(%v) = true, want false", c)
		}
	}

	if !b.OnBoard(Sq(0, 0)) || !b.OnBoard(Sq(7, 7)) {
		t.Error("corner squares should be on the board")
	}
}

func TestPlaceOutOfBoundsIsNoOp(t *testing.T) {
	b := NewBoard()
	p := NewPiece(Rook, White, Sq(-1, 4))

	b.Place(Sq(-1, 4), p)

	if b.Contains(p) {
		t.Error("out-of-bounds Place should not register the piece anywhere")
	}
}

func TestMovePieceUpdatesBothSquares(t *testing.T) {
	b := NewBoard()
	rook := NewPiece(Rook, White, Sq(0, 0))
	b.Place(rook.Pos, rook)

	b.MovePiece(Sq(0, 5), Sq(0, 0), rook, nil)
	rook.Pos = Sq(0, 5)

	if got := b.PieceAt(Sq(0, 0)); got != nil {
		t.Errorf("old square still occupied by %v", got)
	}
	if got := b.PieceAt(Sq(0, 5)); got != rook {
		t.Errorf("new square holds %v, want the rook", got)
	}
}

func TestMovePieceRestoresSnapshot(t *testing.T) {
	// The simulation path replays MovePiece with the snapshotted
	// occupants; the grid must come back bit-for-bit.
	b := NewBoard()
	rook := NewPiece(Rook, White, Sq(2, 2))
	pawn := NewPiece(Pawn, Black, Sq(2, 6))
	b.Place(rook.Pos, rook)
	b.Place(pawn.Pos, pawn)
	before := b.String()

	b.MovePiece(Sq(2, 6), Sq(2, 2), rook, nil) // speculative capture
	b.MovePiece(Sq(2, 2), Sq(2, 6), rook, pawn) // restore

	if after := b.String(); after != before {
		t.Errorf("board changed across a simulate/restore cycle:\nbefore:\n%s\nafter:\n%s", before, after)
	}
}

func TestContains(t *testing.T) {
	b := NewBoard()
	knight := NewPiece(Knight, Black, Sq(3, 3))

	if b.Contains(knight) {
		t.Error("empty board should not contain the knight")
	}
	b.Place(knight.Pos, knight)
	if !b.Contains(knight) {
		t.Error("board should contain the placed knight")
	}
	if b.Contains(nil) {
		t.Error("Contains(nil) should be false")
	}
}
