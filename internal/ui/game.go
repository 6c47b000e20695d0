package ui

import (
	"log"

	"github.com/hajimehoshi/ebiten/v2"

	"github.com/hailam/chessmat/internal/board"
	"github.com/hailam/chessmat/internal/storage"
)

// UI Constants
const (
	ScreenWidth  = 960
	ScreenHeight = 640
	BoardSize    = 640
	SquareSize   = BoardSize / 8
	PanelWidth   = ScreenWidth - BoardSize
)

// UIScale is the global HiDPI scale factor for all UI drawing.
// Set by Game.Layout() and read by the input handler.
var UIScale float64 = 1.0

// Game implements ebiten.Game around the rules engine. It forwards raw
// board taps into the engine, renders whatever state the engine holds,
// and persists preferences and match statistics. It also implements
// board.Listener so state-changing events reach the log and the
// last-move highlight without the engine knowing anything about
// rendering.
type Game struct {
	match *board.Game

	// Components
	renderer *Renderer
	input    *InputHandler
	panel    *Panel

	// Storage
	storage *storage.Storage
	prefs   *storage.UserPreferences
	stats   *storage.MatchStats

	// Last committed move, for the highlight.
	lastFrom, lastTo board.Coord
	hasLast          bool

	// HiDPI scaling
	scale float64
}

// NewGame creates the desktop game around a fresh engine session.
func NewGame() *Game {
	g := &Game{
		renderer: NewRenderer(BoardSize, SquareSize),
		input:    NewInputHandler(),
		scale:    1.0,
	}

	match, err := board.NewGame(board.StandardLayout(), g)
	if err != nil {
		// The standard layout is well-formed by construction.
		log.Fatalf("failed to start game: %v", err)
	}
	g.match = match

	var serr error
	g.storage, serr = storage.NewStorage()
	if serr != nil {
		log.Printf("Warning: Failed to initialize storage: %v", serr)
	}
	g.loadPreferences()
	g.loadStats()

	g.panel = NewPanel(g)
	return g
}

// Match exposes the engine session to the panel.
func (g *Game) Match() *board.Game {
	return g.match
}

// Stats returns the loaded match statistics, possibly nil.
func (g *Game) Stats() *storage.MatchStats {
	return g.stats
}

// loadPreferences loads user preferences from storage.
func (g *Game) loadPreferences() {
	if g.storage == nil {
		g.prefs = storage.DefaultPreferences()
		return
	}

	var err error
	g.prefs, err = g.storage.LoadPreferences()
	if err != nil {
		log.Printf("Warning: Failed to load preferences: %v", err)
		g.prefs = storage.DefaultPreferences()
	}
	g.renderer.SetFlipped(g.prefs.FlipBoard)
}

// savePreferences saves current preferences to storage.
func (g *Game) savePreferences() {
	if g.storage == nil {
		return
	}
	if err := g.storage.SavePreferences(g.prefs); err != nil {
		log.Printf("Warning: Failed to save preferences: %v", err)
	}
}

// loadStats loads match statistics from storage.
func (g *Game) loadStats() {
	if g.storage == nil {
		return
	}
	var err error
	g.stats, err = g.storage.LoadStats()
	if err != nil {
		log.Printf("Warning: Failed to load stats: %v", err)
	}
}

// Update handles one frame of input.
func (g *Game) Update() error {
	g.input.Update()

	if g.panel.HandleInput(g.input) {
		g.updateCursor()
		return nil
	}

	g.handleBoardInput()
	g.updateCursor()
	return nil
}

// handleBoardInput forwards board clicks to the engine. The engine does
// all validation; this layer only maps pixels to a coordinate.
func (g *Game) handleBoardInput() {
	if !g.input.IsLeftJustPressed() {
		return
	}
	mx, my := g.input.MousePosition()
	if mx >= BoardSize || my >= BoardSize {
		return
	}
	g.match.HandleTap(g.renderer.ScreenToCoord(mx, my))
}

// updateCursor sets the cursor shape based on hover state.
func (g *Game) updateCursor() {
	if g.panel.AnyButtonHovered() {
		ebiten.SetCursorShape(ebiten.CursorShapePointer)
	} else {
		ebiten.SetCursorShape(ebiten.CursorShapeDefault)
	}
}

// Draw renders the frame.
func (g *Game) Draw(screen *ebiten.Image) {
	g.renderer.SetScale(g.scale)
	g.panel.SetScale(g.scale)

	screen.Fill(g.renderer.Theme().Background)
	g.renderer.DrawBoard(screen)

	if sq, danger := g.match.KingInDanger(); danger {
		g.renderer.DrawDanger(screen, sq)
	}

	selected := g.match.Selected()
	if !g.prefs.ShowMoveDots {
		// Keep the selection tint but not the dots.
		if selected != nil {
			g.renderer.DrawHighlights(screen, nil, g.lastFrom, g.lastTo, g.hasLast)
			g.renderer.highlightSquare(screen, selected.Pos, g.renderer.Theme().SelectedSquare)
		} else {
			g.renderer.DrawHighlights(screen, nil, g.lastFrom, g.lastTo, g.hasLast)
		}
	} else {
		g.renderer.DrawHighlights(screen, selected, g.lastFrom, g.lastTo, g.hasLast)
	}

	g.renderer.DrawPieces(screen, g.match.Board())
	g.panel.Draw(screen)
}

// Layout returns the screen dimensions, honoring the device scale
// factor for crisp rendering on HiDPI displays.
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	g.scale = ebiten.Monitor().DeviceScaleFactor()
	if g.scale < 1.0 {
		g.scale = 1.0
	}
	UIScale = g.scale
	return int(float64(ScreenWidth) * g.scale), int(float64(ScreenHeight) * g.scale)
}

// NewGameAction restarts the session from the initial layout.
func (g *Game) NewGameAction() {
	if err := g.match.Restart(); err != nil {
		log.Printf("Warning: restart failed: %v", err)
		return
	}
	g.hasLast = false
}

// FlipBoardAction flips the board orientation and persists the choice.
func (g *Game) FlipBoardAction() {
	g.prefs.FlipBoard = !g.prefs.FlipBoard
	g.renderer.SetFlipped(g.prefs.FlipBoard)
	g.savePreferences()
}

// ToggleMoveDotsAction toggles the available-move dots and persists the
// choice.
func (g *Game) ToggleMoveDotsAction() {
	g.prefs.ShowMoveDots = !g.prefs.ShowMoveDots
	g.savePreferences()
}

// Close cleans up resources.
func (g *Game) Close() {
	if g.storage != nil {
		g.storage.Close()
	}
}

// PieceCreated implements board.Listener.
func (g *Game) PieceCreated(p *board.Piece) {}

// PieceMoved implements board.Listener.
func (g *Game) PieceMoved(p *board.Piece, from, to board.Coord) {
	g.lastFrom, g.lastTo = from, to
	g.hasLast = true
}

// PieceRemoved implements board.Listener.
func (g *Game) PieceRemoved(p *board.Piece) {
	log.Printf("[UI] %v leaves play", p)
}

// GameFinished implements board.Listener.
func (g *Game) GameFinished(winner board.Team) {
	if g.storage == nil {
		return
	}
	stats, err := g.storage.RecordWin(winner == board.White)
	if err != nil {
		log.Printf("Warning: Failed to record result: %v", err)
		return
	}
	g.stats = stats
}
