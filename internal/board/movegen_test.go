package board

import "testing"

func containsCoord(moves []Coord, c Coord) bool {
	for _, m := range moves {
		if m == c {
			return true
		}
	}
	return false
}

func TestBishopStopsAtEnemyCapture(t *testing.T) {
	// Empty board except a white bishop on d4 and a black pawn on f6:
	// the capture square is included, everything beyond it is not.
	b := NewBoard()
	bishop := NewPiece(Bishop, White, Sq(3, 3))
	pawn := NewPiece(Pawn, Black, Sq(5, 5))
	b.Place(bishop.Pos, bishop)
	b.Place(pawn.Pos, pawn)

	moves := candidateMoves(bishop, b)
	t.Log("bishop candidates:", moves)

	if !containsCoord(moves, Sq(5, 5)) {
		t.Error("expected capture square f6 in candidates")
	}
	for _, beyond := range []Coord{Sq(6, 6), Sq(7, 7)} {
		if containsCoord(moves, beyond) {
			t.Errorf("candidate %s lies beyond the blocking pawn", beyond)
		}
	}
	// The other diagonals are open all the way.
	for _, open := range []Coord{Sq(0, 0), Sq(0, 6), Sq(6, 0), Sq(4, 4)} {
		if !containsCoord(moves, open) {
			t.Errorf("expected open diagonal square %s", open)
		}
	}
}

func TestRookStopsBeforeFriend(t *testing.T) {
	b := NewBoard()
	rook := NewPiece(Rook, White, Sq(0, 0))
	friend := NewPiece(Pawn, White, Sq(0, 3))
	b.Place(rook.Pos, rook)
	b.Place(friend.Pos, friend)

	moves := candidateMoves(rook, b)

	for _, want := range []Coord{Sq(0, 1), Sq(0, 2)} {
		if !containsCoord(moves, want) {
			t.Errorf("expected %s before the friendly blocker", want)
		}
	}
	for _, blocked := range []Coord{Sq(0, 3), Sq(0, 4), Sq(0, 7)} {
		if containsCoord(moves, blocked) {
			t.Errorf("candidate %s is on or beyond a friendly piece", blocked)
		}
	}
}

func TestSlidingCountsOnEmptyBoard(t *testing.T) {
	// From d4 on an empty board: rook 14, bishop 13, queen their union.
	b := NewBoard()
	cases := []struct {
		kind Kind
		want int
	}{
		{Rook, 14},
		{Bishop, 13},
		{Queen, 27},
	}
	for _, tc := range cases {
		p := NewPiece(tc.kind, White, Sq(3, 3))
		b.Place(p.Pos, p)
		if got := len(candidateMoves(p, b)); got != tc.want {
			t.Errorf("%s from d4: %d candidates, want %d", tc.kind, got, tc.want)
		}
		b.Place(p.Pos, nil)
	}
}

func TestKnightOffsets(t *testing.T) {
	b := NewBoard()
	knight := NewPiece(Knight, White, Sq(3, 3))
	b.Place(knight.Pos, knight)

	moves := candidateMoves(knight, b)
	if len(moves) != 8 {
		t.Fatalf("knight from d4: %d candidates, want 8", len(moves))
	}
	for _, m := range moves {
		df, dr := m.File-3, m.Rank-3
		if df*df+dr*dr != 5 {
			t.Errorf("candidate %s is not an L-shaped jump", m)
		}
	}

	// Corner knight, one target blocked by a friend, one by an enemy.
	corner := NewPiece(Knight, White, Sq(0, 0))
	friend := NewPiece(Pawn, White, Sq(1, 2))
	enemy := NewPiece(Pawn, Black, Sq(2, 1))
	b.Place(corner.Pos, corner)
	b.Place(friend.Pos, friend)
	b.Place(enemy.Pos, enemy)

	moves = candidateMoves(corner, b)
	if containsCoord(moves, Sq(1, 2)) {
		t.Error("knight may not land on a friendly pawn")
	}
	if !containsCoord(moves, Sq(2, 1)) {
		t.Error("knight capture of the enemy pawn missing")
	}
}

func TestKingOffsets(t *testing.T) {
	b := NewBoard()
	king := NewPiece(King, White, Sq(3, 3))
	b.Place(king.Pos, king)

	if got := len(candidateMoves(king, b)); got != 8 {
		t.Errorf("king from d4: %d candidates, want 8", got)
	}

	b.Place(king.Pos, nil)
	king.Pos = Sq(0, 0)
	b.Place(king.Pos, king)
	if got := len(candidateMoves(king, b)); got != 3 {
		t.Errorf("king from a1: %d candidates, want 3", got)
	}
}

func TestPawnForwardMoves(t *testing.T) {
	b := NewBoard()

	// On its start rank with a clear path: single and double push.
	pawn := NewPiece(Pawn, White, Sq(4, 1))
	b.Place(pawn.Pos, pawn)
	moves := candidateMoves(pawn, b)
	if !containsCoord(moves, Sq(4, 2)) || !containsCoord(moves, Sq(4, 3)) {
		t.Errorf("start-rank pawn should push one or two, got %v", moves)
	}

	// Off the start rank: no double push.
	b.Place(pawn.Pos, nil)
	pawn.Pos = Sq(4, 2)
	b.Place(pawn.Pos, pawn)
	moves = candidateMoves(pawn, b)
	if containsCoord(moves, Sq(4, 4)) {
		t.Error("double push allowed off the start rank")
	}

	// Blocked one square ahead: no pushes at all, even the double.
	b.Place(pawn.Pos, nil)
	pawn.Pos = Sq(4, 1)
	b.Place(pawn.Pos, pawn)
	blocker := NewPiece(Knight, Black, Sq(4, 2))
	b.Place(blocker.Pos, blocker)
	moves = candidateMoves(pawn, b)
	if containsCoord(moves, Sq(4, 2)) || containsCoord(moves, Sq(4, 3)) {
		t.Errorf("blocked pawn should have no forward moves, got %v", moves)
	}

	// Blocked two squares ahead: single push only.
	b.Place(blocker.Pos, nil)
	blocker.Pos = Sq(4, 3)
	b.Place(blocker.Pos, blocker)
	moves = candidateMoves(pawn, b)
	if !containsCoord(moves, Sq(4, 2)) {
		t.Error("single push should survive a blocker on the double-push square")
	}
	if containsCoord(moves, Sq(4, 3)) {
		t.Error("double push onto an occupied square")
	}
}

func TestPawnDiagonalCaptures(t *testing.T) {
	b := NewBoard()
	pawn := NewPiece(Pawn, Black, Sq(4, 6))
	enemy := NewPiece(Rook, White, Sq(3, 5))
	friend := NewPiece(Pawn, Black, Sq(5, 5))
	b.Place(pawn.Pos, pawn)
	b.Place(enemy.Pos, enemy)
	b.Place(friend.Pos, friend)

	moves := candidateMoves(pawn, b)
	if !containsCoord(moves, Sq(3, 5)) {
		t.Error("diagonal capture of the white rook missing")
	}
	if containsCoord(moves, Sq(5, 5)) {
		t.Error("pawn may not capture its own pawn")
	}

	// Black pawns move toward rank 0.
	if !containsCoord(moves, Sq(4, 5)) || !containsCoord(moves, Sq(4, 4)) {
		t.Errorf("black start-rank pawn pushes missing, got %v", moves)
	}

	// Empty diagonals produce nothing.
	b.Place(enemy.Pos, nil)
	moves = candidateMoves(pawn, b)
	if containsCoord(moves, Sq(3, 5)) {
		t.Error("diagonal candidate onto an empty square")
	}
}
