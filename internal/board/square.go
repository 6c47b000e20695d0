// Package board implements the chess rules engine: board occupancy,
// per-kind move generation, check-safety filtering, and the turn state
// machine. The package is deterministic and single-threaded; rendering
// and input layers live elsewhere and talk to it through Game.
package board

import "fmt"

// BoardSize is the number of files and ranks.
const BoardSize = 8

// Coord identifies a board square by file and rank, both 0-indexed.
// File 0 is the a-file; rank 0 is White's back rank. Coords outside
// [0,7]×[0,7] are representable and every query tolerates them.
type Coord struct {
	File int
	Rank int
}

// Sq is a shorthand constructor, mostly for tests and tables.
func Sq(file, rank int) Coord {
	return Coord{File: file, Rank: rank}
}

// OnBoard reports whether both axes are in [0,7].
func (c Coord) OnBoard() bool {
	return c.File >= 0 && c.File < BoardSize && c.Rank >= 0 && c.Rank < BoardSize
}

// Add returns the coordinate offset by (df, dr). The result may be off
// the board; callers bounds-check via OnBoard.
func (c Coord) Add(df, dr int) Coord {
	return Coord{File: c.File + df, Rank: c.Rank + dr}
}

// String returns algebraic notation (e.g. "e4"), or "-" off the board.
func (c Coord) String() string {
	if !c.OnBoard() {
		return "-"
	}
	return fmt.Sprintf("%c%c", 'a'+c.File, '1'+c.Rank)
}

// Direction and offset tables. A delta is stored as a Coord whose fields
// are per-step increments rather than an absolute square.
var (
	// diagonalDirs are the bishop rays.
	diagonalDirs = [4]Coord{{1, 1}, {1, -1}, {-1, 1}, {-1, -1}}

	// orthogonalDirs are the rook rays.
	orthogonalDirs = [4]Coord{{1, 0}, {-1, 0}, {0, 1}, {0, -1}}

	// compassDirs is the union of both ray sets: queen rays and the
	// king's one-step neighborhood.
	compassDirs = [8]Coord{
		{1, 1}, {1, -1}, {-1, 1}, {-1, -1},
		{1, 0}, {-1, 0}, {0, 1}, {0, -1},
	}

	// knightOffsets are the eight L-shaped jumps.
	knightOffsets = [8]Coord{
		{1, 2}, {2, 1}, {2, -1}, {1, -2},
		{-1, -2}, {-2, -1}, {-2, 1}, {-1, 2},
	}
)
