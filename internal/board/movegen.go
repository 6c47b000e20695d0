package board

// candidateMoves returns every square the piece could move to given the
// current occupancy, ignoring whether the move would leave its own king
// attacked. Pure function of the piece's kind, position, and the grid.
//
// The ruleset is deliberately simplified: no en passant, no castling,
// and pawn promotion is handled by the controller rather than encoded
// as a move flag.
func candidateMoves(p *Piece, b *Board) []Coord {
	switch p.Kind {
	case Pawn:
		return pawnMoves(p, b)
	case Knight:
		return steppingMoves(p, b, knightOffsets[:])
	case Bishop:
		return slidingMoves(p, b, diagonalDirs[:])
	case Rook:
		return slidingMoves(p, b, orthogonalDirs[:])
	case Queen:
		return slidingMoves(p, b, compassDirs[:])
	case King:
		return steppingMoves(p, b, compassDirs[:])
	}
	return nil
}

// slidingMoves walks each ray one square at a time: empty squares are
// recorded and the walk continues, the first enemy square is recorded
// and ends the ray, a friendly square or the board edge ends the ray
// unrecorded. Shared by bishop, rook, and queen; only the ray set
// differs.
func slidingMoves(p *Piece, b *Board, dirs []Coord) []Coord {
	var out []Coord
	for _, d := range dirs {
		for c := p.Pos.Add(d.File, d.Rank); c.OnBoard(); c = c.Add(d.File, d.Rank) {
			occ := b.PieceAt(c)
			if occ == nil {
				out = append(out, c)
				continue
			}
			if occ.Team != p.Team {
				out = append(out, c)
			}
			break
		}
	}
	return out
}

// steppingMoves records each fixed offset that lands on the board and
// is not occupied by a friendly piece. Shared by knight and king.
func steppingMoves(p *Piece, b *Board, offsets []Coord) []Coord {
	var out []Coord
	for _, d := range offsets {
		c := p.Pos.Add(d.File, d.Rank)
		if !c.OnBoard() {
			continue
		}
		if occ := b.PieceAt(c); occ != nil && occ.Team == p.Team {
			continue
		}
		out = append(out, c)
	}
	return out
}

// pawnStartRank is the rank a team's pawns start on; a pawn still on it
// has not moved yet.
func pawnStartRank(t Team) int {
	if t == White {
		return 1
	}
	return BoardSize - 2
}

// promotionRank is the farthest rank for a team's pawns.
func promotionRank(t Team) int {
	if t == White {
		return BoardSize - 1
	}
	return 0
}

// pawnMoves generates forward pushes onto empty squares (two from the
// start rank when both squares are empty) and diagonal captures onto
// enemy-occupied squares only.
func pawnMoves(p *Piece, b *Board) []Coord {
	dir := 1
	if p.Team == Black {
		dir = -1
	}

	var out []Coord

	one := p.Pos.Add(0, dir)
	if one.OnBoard() && b.PieceAt(one) == nil {
		out = append(out, one)

		two := p.Pos.Add(0, 2*dir)
		if p.Pos.Rank == pawnStartRank(p.Team) && two.OnBoard() && b.PieceAt(two) == nil {
			out = append(out, two)
		}
	}

	for _, df := range [2]int{-1, 1} {
		c := p.Pos.Add(df, dir)
		if occ := b.PieceAt(c); occ != nil && occ.Team != p.Team {
			out = append(out, c)
		}
	}

	return out
}
