package board

import "fmt"

// Placement is one record of the initial layout: which kind goes where
// for which team. The layout provider hands the engine a slice of these
// once per game start or restart.
type Placement struct {
	At   Coord
	Team Team
	Kind Kind
}

// StandardLayout returns the regulation starting position.
func StandardLayout() []Placement {
	backRank := [BoardSize]Kind{Rook, Knight, Bishop, Queen, King, Bishop, Knight, Rook}

	var out []Placement
	for file := 0; file < BoardSize; file++ {
		out = append(out,
			Placement{At: Sq(file, 0), Team: White, Kind: backRank[file]},
			Placement{At: Sq(file, 1), Team: White, Kind: Pawn},
			Placement{At: Sq(file, BoardSize-2), Team: Black, Kind: Pawn},
			Placement{At: Sq(file, BoardSize-1), Team: Black, Kind: backRank[file]},
		)
	}
	return out
}

// validateLayout rejects malformed layouts at startup: out-of-bounds
// placements, doubly-claimed squares, and anything other than exactly
// one king per team.
func validateLayout(layout []Placement) error {
	if len(layout) == 0 {
		return fmt.Errorf("layout: no placements")
	}

	seen := make(map[Coord]bool, len(layout))
	kings := [2]int{}

	for _, pl := range layout {
		if !pl.At.OnBoard() {
			return fmt.Errorf("layout: %s %s placed off the board at (%d,%d)",
				pl.Team, pl.Kind, pl.At.File, pl.At.Rank)
		}
		if seen[pl.At] {
			return fmt.Errorf("layout: square %s claimed twice", pl.At)
		}
		seen[pl.At] = true
		if pl.Kind == King {
			kings[pl.Team]++
		}
	}

	for _, t := range [2]Team{White, Black} {
		if kings[t] != 1 {
			return fmt.Errorf("layout: %s has %d kings, want 1", t, kings[t])
		}
	}
	return nil
}
