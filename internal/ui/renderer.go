package ui

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"github.com/hailam/chessmat/internal/board"
)

// Theme defines the color scheme for the board.
type Theme struct {
	LightSquare    color.RGBA
	DarkSquare     color.RGBA
	SelectedSquare color.RGBA
	MoveDotColor   color.RGBA
	LastMoveColor  color.RGBA
	DangerColor    color.RGBA
	Background     color.RGBA
	TextColor      color.RGBA
}

// DefaultTheme returns the default color theme.
func DefaultTheme() *Theme {
	return &Theme{
		LightSquare:    color.RGBA{240, 217, 181, 255}, // Tan
		DarkSquare:     color.RGBA{181, 136, 99, 255},  // Brown
		SelectedSquare: color.RGBA{247, 247, 105, 180}, // Yellow highlight
		MoveDotColor:   color.RGBA{130, 151, 105, 200}, // Green dots
		LastMoveColor:  color.RGBA{180, 190, 100, 90},  // Soft yellow-green
		DangerColor:    color.RGBA{255, 100, 100, 180}, // Red
		Background:     color.RGBA{40, 44, 52, 255},    // Dark gray
		TextColor:      color.RGBA{220, 220, 220, 255}, // Light gray
	}
}

// Renderer handles all board drawing.
type Renderer struct {
	sprites    *SpriteManager
	theme      *Theme
	boardSize  int
	squareSize int
	flipped    bool    // Black at the bottom
	scale      float64 // HiDPI scale factor
}

// NewRenderer creates a new renderer.
func NewRenderer(boardSize, squareSize int) *Renderer {
	return &Renderer{
		sprites:    NewSpriteManager(squareSize),
		theme:      DefaultTheme(),
		boardSize:  boardSize,
		squareSize: squareSize,
		scale:      1.0,
	}
}

// SetScale sets the HiDPI scale factor for rendering.
func (r *Renderer) SetScale(scale float64) {
	r.scale = scale
	r.sprites.SetScale(scale)
}

// SetFlipped draws the board from Black's perspective when set.
func (r *Renderer) SetFlipped(flipped bool) {
	r.flipped = flipped
}

// Flipped reports the current orientation.
func (r *Renderer) Flipped() bool {
	return r.flipped
}

// s returns the scaled value for rendering.
func (r *Renderer) s(v int) float32 {
	return float32(float64(v) * r.scale)
}

// Theme returns the current theme.
func (r *Renderer) Theme() *Theme {
	return r.theme
}

// DrawBoard draws the checkered squares.
func (r *Renderer) DrawBoard(screen *ebiten.Image) {
	for rank := 0; rank < board.BoardSize; rank++ {
		for file := 0; file < board.BoardSize; file++ {
			x, y := r.CoordToScreen(board.Sq(file, rank))

			var c color.RGBA
			if (rank+file)%2 == 0 {
				c = r.theme.DarkSquare
			} else {
				c = r.theme.LightSquare
			}
			vector.DrawFilledRect(screen, r.s(x), r.s(y), r.s(r.squareSize), r.s(r.squareSize), c, false)
		}
	}
}

// DrawHighlights draws the last move, the selection, and the selected
// piece's available moves.
func (r *Renderer) DrawHighlights(screen *ebiten.Image, selected *board.Piece, lastFrom, lastTo board.Coord, hasLast bool) {
	if hasLast {
		r.highlightSquare(screen, lastFrom, r.theme.LastMoveColor)
		r.highlightSquare(screen, lastTo, r.theme.LastMoveColor)
	}

	if selected == nil {
		return
	}
	r.highlightSquare(screen, selected.Pos, r.theme.SelectedSquare)
	for _, m := range selected.Moves() {
		r.drawMoveDot(screen, m)
	}
}

// DrawDanger tints the given square (the attacked king's).
func (r *Renderer) DrawDanger(screen *ebiten.Image, sq board.Coord) {
	r.highlightSquare(screen, sq, r.theme.DangerColor)
}

// highlightSquare draws a colored overlay on a square.
func (r *Renderer) highlightSquare(screen *ebiten.Image, sq board.Coord, c color.RGBA) {
	if !sq.OnBoard() {
		return
	}
	x, y := r.CoordToScreen(sq)
	vector.DrawFilledRect(screen, r.s(x), r.s(y), r.s(r.squareSize), r.s(r.squareSize), c, false)
}

// drawMoveDot draws a circle on an available-move square.
func (r *Renderer) drawMoveDot(screen *ebiten.Image, sq board.Coord) {
	x, y := r.CoordToScreen(sq)
	cx := r.s(x) + r.s(r.squareSize)/2
	cy := r.s(y) + r.s(r.squareSize)/2
	radius := r.s(r.squareSize) * 0.15

	vector.DrawFilledCircle(screen, cx, cy, radius, r.theme.MoveDotColor, false)
}

// DrawPieces draws every piece registered on the board grid.
func (r *Renderer) DrawPieces(screen *ebiten.Image, b *board.Board) {
	for file := 0; file < board.BoardSize; file++ {
		for rank := 0; rank < board.BoardSize; rank++ {
			sq := board.Sq(file, rank)
			p := b.PieceAt(sq)
			if p == nil {
				continue
			}
			x, y := r.CoordToScreen(sq)
			r.sprites.DrawPieceAt(screen, p, int(r.s(x)), int(r.s(y)))
		}
	}
}

// CoordToScreen converts a board coordinate to logical screen pixels.
// Rank 0 sits at the bottom unless the board is flipped.
func (r *Renderer) CoordToScreen(sq board.Coord) (int, int) {
	file, rank := sq.File, sq.Rank
	if r.flipped {
		file = board.BoardSize - 1 - file
		rank = board.BoardSize - 1 - rank
	}
	x := file * r.squareSize
	y := (board.BoardSize - 1 - rank) * r.squareSize
	return x, y
}

// ScreenToCoord converts logical screen pixels to a board coordinate.
// Off-board positions map to an out-of-bounds coordinate, which the
// engine tolerates.
func (r *Renderer) ScreenToCoord(x, y int) board.Coord {
	if x < 0 || x >= r.boardSize || y < 0 || y >= r.boardSize {
		return board.Sq(-1, -1)
	}
	file := x / r.squareSize
	rank := board.BoardSize - 1 - y/r.squareSize
	if r.flipped {
		file = board.BoardSize - 1 - file
		rank = board.BoardSize - 1 - rank
	}
	return board.Sq(file, rank)
}
