package ui

import (
	"fmt"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"github.com/hailam/chessmat/internal/board"
)

// Panel layout
const (
	PanelPadding   = 20
	ButtonHeight   = 40
	SectionSpacing = 28
)

// Panel colors
var (
	panelBg       = color.RGBA{38, 40, 45, 255}    // Dark background
	buttonBg      = color.RGBA{50, 54, 60, 255}    // Button background
	buttonHoverBg = color.RGBA{65, 70, 78, 255}    // Button hover
	buttonBorder  = color.RGBA{70, 75, 82, 255}    // Subtle button border
	accentColor   = color.RGBA{76, 175, 120, 255}  // Green accent
	textPrimary   = color.RGBA{240, 240, 245, 255} // Primary text
	textSecondary = color.RGBA{160, 165, 175, 255} // Secondary text
	statusDanger  = color.RGBA{255, 120, 120, 255} // Check warning
	statusGameEnd = color.RGBA{255, 200, 80, 255}  // Win announcement
)

// Button is a clickable panel element.
type Button struct {
	X, Y, W, H int
	Label      string
	OnClick    func()
	hovered    bool
}

// Update refreshes hover state and fires OnClick on a press.
func (b *Button) Update(input *InputHandler) bool {
	b.hovered = input.IsInBounds(b.X, b.Y, b.W, b.H)
	if b.hovered && input.IsLeftJustPressed() && b.OnClick != nil {
		b.OnClick()
		return true
	}
	return false
}

// Draw renders the button.
func (b *Button) Draw(screen *ebiten.Image, scale float64) {
	s := func(v int) float32 { return float32(float64(v) * scale) }

	bg := buttonBg
	if b.hovered {
		bg = buttonHoverBg
	}
	vector.DrawFilledRect(screen, s(b.X), s(b.Y), s(b.W), s(b.H), bg, false)
	vector.StrokeRect(screen, s(b.X), s(b.Y), s(b.W), s(b.H), float32(scale), buttonBorder, false)

	drawText(screen, b.Label, regularFace, b.X+12, b.Y+b.H/2-8, scale, textPrimary)
}

// drawText draws a string at logical coordinates with the HiDPI scale
// applied.
func drawText(screen *ebiten.Image, str string, face *text.GoTextFace, x, y int, scale float64, col color.RGBA) {
	if face == nil {
		return
	}
	op := &text.DrawOptions{}
	op.GeoM.Scale(scale, scale)
	op.GeoM.Translate(float64(x)*scale, float64(y)*scale)
	op.ColorScale.ScaleWithColor(col)
	text.Draw(screen, str, face, op)
}

// Panel is the side panel: turn/status display, restart control, and
// persisted match statistics.
type Panel struct {
	game  *Game
	scale float64

	newGameBtn *Button
	flipBtn    *Button
	dotsBtn    *Button
}

// NewPanel creates the side panel bound to the game.
func NewPanel(g *Game) *Panel {
	p := &Panel{game: g, scale: 1.0}

	x := BoardSize + PanelPadding
	w := PanelWidth - 2*PanelPadding

	p.newGameBtn = &Button{
		X: x, Y: 120, W: w, H: ButtonHeight,
		Label:   "New Game",
		OnClick: g.NewGameAction,
	}
	p.flipBtn = &Button{
		X: x, Y: 120 + ButtonHeight + 12, W: w, H: ButtonHeight,
		Label:   "Flip Board",
		OnClick: g.FlipBoardAction,
	}
	p.dotsBtn = &Button{
		X: x, Y: 120 + 2*(ButtonHeight+12), W: w, H: ButtonHeight,
		Label:   "Toggle Move Dots",
		OnClick: g.ToggleMoveDotsAction,
	}
	return p
}

// SetScale sets the HiDPI scale factor.
func (p *Panel) SetScale(scale float64) {
	p.scale = scale
}

// HandleInput processes panel clicks. Returns true when the panel
// consumed the input.
func (p *Panel) HandleInput(input *InputHandler) bool {
	consumed := p.newGameBtn.Update(input)
	consumed = p.flipBtn.Update(input) || consumed
	consumed = p.dotsBtn.Update(input) || consumed

	// Swallow any click landing on the panel area.
	if input.IsLeftJustPressed() && input.IsInBounds(BoardSize, 0, PanelWidth, ScreenHeight) {
		return true
	}
	return consumed
}

// AnyButtonHovered reports whether the cursor rests on a panel button.
func (p *Panel) AnyButtonHovered() bool {
	return p.newGameBtn.hovered || p.flipBtn.hovered || p.dotsBtn.hovered
}

// Draw renders the panel.
func (p *Panel) Draw(screen *ebiten.Image) {
	s := func(v int) float32 { return float32(float64(v) * p.scale) }
	vector.DrawFilledRect(screen, s(BoardSize), 0, s(PanelWidth), s(ScreenHeight), panelBg, false)

	x := BoardSize + PanelPadding
	drawText(screen, "ChessMat", boldFace, x, PanelPadding, p.scale, accentColor)

	// Status line
	match := p.game.Match()
	statusY := PanelPadding + SectionSpacing + 12
	switch match.State() {
	case board.StateFinished:
		msg := fmt.Sprintf("%s wins by checkmate!", match.Winner())
		drawText(screen, msg, regularFace, x, statusY, p.scale, statusGameEnd)
	default:
		drawText(screen, fmt.Sprintf("%s to move", match.Active()), regularFace, x, statusY, p.scale, textPrimary)
		if _, danger := match.KingInDanger(); danger {
			drawText(screen, "Check!", regularFace, x, statusY+22, p.scale, statusDanger)
		}
	}

	p.newGameBtn.Draw(screen, p.scale)
	p.flipBtn.Draw(screen, p.scale)
	p.dotsBtn.Draw(screen, p.scale)

	// Match statistics
	stats := p.game.Stats()
	if stats != nil {
		y := 120 + 3*(ButtonHeight+12) + SectionSpacing
		drawText(screen, "Statistics", boldFace, x, y, p.scale, textPrimary)
		drawText(screen, fmt.Sprintf("Games played: %d", stats.GamesPlayed), regularFace, x, y+30, p.scale, textSecondary)
		drawText(screen, fmt.Sprintf("White wins: %d", stats.WhiteWins), regularFace, x, y+52, p.scale, textSecondary)
		drawText(screen, fmt.Sprintf("Black wins: %d", stats.BlackWins), regularFace, x, y+74, p.scale, textSecondary)
	}
}
