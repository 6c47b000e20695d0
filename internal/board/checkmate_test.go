package board

import "testing"

// tap is a test helper that fails loudly when an interaction does not
// resolve the way the scenario script expects.
func tap(t *testing.T, g *Game, c Coord, want Interaction) {
	t.Helper()
	if got := g.HandleTap(c); got != want {
		t.Fatalf("HandleTap(%s) = %d, want %d\nboard:\n%s", c, got, want, g.Board())
	}
}

func TestQueenMateGuardedByKing(t *testing.T) {
	// White queen b6 and king c6 against the bare black king on a8.
	// Qb7 is mate: the queen is guarded, and a7/b8 are covered.
	g, err := NewGame([]Placement{
		{Sq(0, 7), Black, King},
		{Sq(1, 5), White, Queen},
		{Sq(2, 5), White, King},
	}, nil)
	if err != nil {
		t.Fatal(err)
	}

	tap(t, g, Sq(1, 5), Selected)
	tap(t, g, Sq(1, 6), Moved)

	t.Log("final position:\n" + g.Board().String())
	if g.State() != StateFinished {
		t.Fatal("expected the game to finish on Qb7")
	}
	if g.Winner() != White {
		t.Errorf("winner = %s, want White", g.Winner())
	}

	// Terminal state: further taps change nothing.
	if got := g.HandleTap(Sq(0, 7)); got != Ignored {
		t.Errorf("tap after checkmate = %d, want Ignored", got)
	}
}

func TestQueenMateMirrored(t *testing.T) {
	// Same pattern with colors swapped. White must burn a tempo first
	// since White always opens.
	g, err := NewGame([]Placement{
		{Sq(0, 0), White, King},
		{Sq(7, 1), White, Pawn},
		{Sq(1, 2), Black, Queen},
		{Sq(2, 2), Black, King},
	}, nil)
	if err != nil {
		t.Fatal(err)
	}

	tap(t, g, Sq(7, 1), Selected)
	tap(t, g, Sq(7, 2), Moved)

	tap(t, g, Sq(1, 2), Selected)
	tap(t, g, Sq(1, 1), Moved)

	if g.State() != StateFinished {
		t.Fatalf("expected checkmate, board:\n%s", g.Board())
	}
	if g.Winner() != Black {
		t.Errorf("winner = %s, want Black", g.Winner())
	}
}

func TestBackRankMate(t *testing.T) {
	// Classic back-rank pattern: Ra8 mates the king boxed in by its
	// own pawns.
	g, err := NewGame([]Placement{
		{Sq(0, 0), White, King},
		{Sq(0, 1), White, Rook},
		{Sq(7, 7), Black, King},
		{Sq(6, 6), Black, Pawn},
		{Sq(7, 6), Black, Pawn},
	}, nil)
	if err != nil {
		t.Fatal(err)
	}

	tap(t, g, Sq(0, 1), Selected)
	tap(t, g, Sq(0, 7), Moved)

	if g.State() != StateFinished || g.Winner() != White {
		t.Fatalf("expected White to win by back-rank mate, state=%d board:\n%s",
			g.State(), g.Board())
	}
}

func TestNotMateWhenKingCanCaptureChecker(t *testing.T) {
	// The checking rook lands next to the king unguarded; the king
	// just takes it.
	g, err := NewGame([]Placement{
		{Sq(0, 0), White, King},
		{Sq(6, 0), White, Rook},
		{Sq(7, 7), Black, King},
	}, nil)
	if err != nil {
		t.Fatal(err)
	}

	tap(t, g, Sq(6, 0), Selected)
	tap(t, g, Sq(6, 7), Moved)

	if g.State() != StatePlay {
		t.Fatal("king can capture the rook, game must continue")
	}
	if g.Active() != Black {
		t.Errorf("active = %s, want Black", g.Active())
	}

	king := g.Player(Black).PiecesOfKind(King)[0]
	if !king.CanMoveTo(Sq(6, 7)) {
		t.Errorf("king should be able to take the rook, moves: %v", king.Moves())
	}
}

func TestNotMateWhenRookCanInterpose(t *testing.T) {
	// Back-rank check, but Black has a rook on d7 that drops to d8.
	g, err := NewGame([]Placement{
		{Sq(0, 0), White, King},
		{Sq(0, 1), White, Rook},
		{Sq(7, 7), Black, King},
		{Sq(6, 6), Black, Pawn},
		{Sq(7, 6), Black, Pawn},
		{Sq(3, 6), Black, Rook},
	}, nil)
	if err != nil {
		t.Fatal(err)
	}

	tap(t, g, Sq(0, 1), Selected)
	tap(t, g, Sq(0, 7), Moved)

	if g.State() != StatePlay {
		t.Fatal("interposition is available, game must continue")
	}

	// And the interposition actually resolves the check.
	tap(t, g, Sq(3, 6), Selected)
	tap(t, g, Sq(3, 7), Moved)
	if got := g.Player(White).PiecesAttackingKind(King, g.Player(Black)); len(got) != 0 {
		t.Errorf("black king still attacked after interposing: %v", got)
	}
}

func TestCheckIsNotTerminal(t *testing.T) {
	g, err := NewGame([]Placement{
		{Sq(0, 0), White, King},
		{Sq(0, 1), White, Rook},
		{Sq(7, 7), Black, King},
	}, nil)
	if err != nil {
		t.Fatal(err)
	}

	// Ra8+ against a mobile king: check, not mate.
	tap(t, g, Sq(0, 1), Selected)
	tap(t, g, Sq(0, 7), Moved)

	if g.State() != StatePlay {
		t.Fatal("plain check must not end the game")
	}
	sq, danger := g.KingInDanger()
	if !danger {
		t.Fatal("black king should be reported in danger")
	}
	if sq != Sq(7, 7) {
		t.Errorf("danger square = %s, want h8", sq)
	}
}
