// Package ui implements the chess game UI using Ebitengine. It is thin
// glue around the rules engine in internal/board: all legality and
// game-state decisions stay on the engine side.
package ui

import (
	"bytes"
	"embed"
	"fmt"
	"image"
	"log"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/srwiley/oksvg"
	"github.com/srwiley/rasterx"

	"github.com/hailam/chessmat/internal/board"
)

//go:embed assets/pieces/*.svg
var pieceAssets embed.FS

// spriteKey identifies one piece sprite.
type spriteKey struct {
	kind board.Kind
	team board.Team
}

// SpriteManager rasterizes and caches the piece sprites.
type SpriteManager struct {
	pieces      map[spriteKey]*ebiten.Image
	size        int     // Display size in logical pixels
	renderScale float64 // Rasterize larger for sharp downscaling
	scale       float64 // HiDPI factor
}

// NewSpriteManager creates a sprite manager with pieces of the given
// display size.
func NewSpriteManager(size int) *SpriteManager {
	sm := &SpriteManager{
		pieces:      make(map[spriteKey]*ebiten.Image),
		size:        size,
		renderScale: 3.0,
		scale:       1.0,
	}
	sm.loadPieces()
	return sm
}

// SetScale sets the HiDPI scale factor.
func (sm *SpriteManager) SetScale(scale float64) {
	sm.scale = scale
}

// assetName maps a piece to its SVG file, e.g. "wQ.svg" / "bN.svg".
func assetName(k board.Kind, t board.Team) string {
	side := byte('w')
	if t == board.Black {
		side = 'b'
	}
	letters := map[board.Kind]byte{
		board.Pawn:   'P',
		board.Knight: 'N',
		board.Bishop: 'B',
		board.Rook:   'R',
		board.Queen:  'Q',
		board.King:   'K',
	}
	return fmt.Sprintf("assets/pieces/%c%c.svg", side, letters[k])
}

// loadPieces rasterizes every piece SVG once at startup.
func (sm *SpriteManager) loadPieces() {
	renderSize := int(float64(sm.size) * sm.renderScale)

	kinds := []board.Kind{
		board.Pawn, board.Knight, board.Bishop,
		board.Rook, board.Queen, board.King,
	}
	for _, team := range []board.Team{board.White, board.Black} {
		for _, kind := range kinds {
			path := assetName(kind, team)
			data, err := pieceAssets.ReadFile(path)
			if err != nil {
				log.Printf("Failed to read piece asset %s: %v", path, err)
				continue
			}

			icon, err := oksvg.ReadIconStream(bytes.NewReader(data))
			if err != nil {
				log.Printf("Failed to parse SVG %s: %v", path, err)
				continue
			}
			icon.SetTarget(0, 0, float64(renderSize), float64(renderSize))

			rgba := image.NewRGBA(image.Rect(0, 0, renderSize, renderSize))
			scanner := rasterx.NewScannerGV(renderSize, renderSize, rgba, rgba.Bounds())
			raster := rasterx.NewDasher(renderSize, renderSize, scanner)
			icon.Draw(raster, 1.0)

			sm.pieces[spriteKey{kind, team}] = ebiten.NewImageFromImage(rgba)
		}
	}
}

// DrawPieceAt draws a piece sprite at the given device pixel position.
func (sm *SpriteManager) DrawPieceAt(screen *ebiten.Image, p *board.Piece, x, y int) {
	if p == nil {
		return
	}
	sprite := sm.pieces[spriteKey{p.Kind, p.Team}]
	if sprite == nil {
		return
	}
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(sm.scale/sm.renderScale, sm.scale/sm.renderScale)
	op.GeoM.Translate(float64(x), float64(y))
	op.Filter = ebiten.FilterLinear
	screen.DrawImage(sprite, op)
}
