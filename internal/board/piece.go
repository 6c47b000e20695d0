package board

// Team represents the side a piece or player belongs to.
type Team uint8

const (
	White Team = iota
	Black
)

// Other returns the opposite team.
func (t Team) Other() Team {
	return t ^ 1
}

// String returns the team name.
func (t Team) String() string {
	if t == White {
		return "White"
	}
	return "Black"
}

// Kind is the closed set of piece kinds. The layout provider supplies
// kinds directly; there is no lookup by name.
type Kind uint8

const (
	Pawn Kind = iota
	Knight
	Bishop
	Rook
	Queen
	King
)

// String returns the kind name.
func (k Kind) String() string {
	switch k {
	case Pawn:
		return "Pawn"
	case Knight:
		return "Knight"
	case Bishop:
		return "Bishop"
	case Rook:
		return "Rook"
	case Queen:
		return "Queen"
	case King:
		return "King"
	default:
		return "None"
	}
}

// Char returns the single-letter code for the kind (lowercase).
func (k Kind) Char() byte {
	chars := []byte{'p', 'n', 'b', 'r', 'q', 'k'}
	if int(k) >= len(chars) {
		return ' '
	}
	return chars[k]
}

// Piece is one chessman. A piece is owned by exactly one Player and
// registered on exactly one Board square; Pos and the Board grid are
// reconciled together at every mutation point.
type Piece struct {
	Kind Kind
	Team Team
	Pos  Coord

	// moves caches the piece's available moves: candidate moves that
	// survived check-safety filtering. Written by Player, read by the
	// controller and the presentation layer.
	moves []Coord
}

// NewPiece creates a piece of the given kind and team at a square.
func NewPiece(k Kind, t Team, at Coord) *Piece {
	return &Piece{Kind: k, Team: t, Pos: at}
}

// Moves returns the piece's available moves as of the last generation
// pass. The slice is owned by the engine; callers must not mutate it.
func (p *Piece) Moves() []Coord {
	return p.moves
}

// CanMoveTo reports whether dst is among the piece's available moves.
func (p *Piece) CanMoveTo(dst Coord) bool {
	for _, m := range p.moves {
		if m == dst {
			return true
		}
	}
	return false
}

// String returns e.g. "White Queen at d1".
func (p *Piece) String() string {
	return p.Team.String() + " " + p.Kind.String() + " at " + p.Pos.String()
}
