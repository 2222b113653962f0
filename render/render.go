// Package render draws the arena with ebiten. Renderers only read the world.
package render

import (
	"image/color"

	cfg "github.com/automoto/telegraph/config"
	"github.com/automoto/telegraph/fonts"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text" //nolint:staticcheck // TODO: migrate to text/v2
	"github.com/yohamta/donburi/ecs"
	math2 "github.com/yohamta/donburi/features/math"
)

var pixel *ebiten.Image

// squareOp is reused for every rotated square
var squareOp = &ebiten.DrawImageOptions{}

// DrawBackground clears the frame and draws the control hint.
func DrawBackground(ecs *ecs.ECS, screen *ebiten.Image) {
	screen.Fill(cfg.Arena.Background)
	text.Draw(screen, cfg.HUD.Hint, fonts.Regular.Get(), cfg.HUD.HintX, cfg.HUD.HintY, cfg.HUD.TextColor)
}

// drawSquare draws a size x size square centred on center and rotated by angle radians.
func drawSquare(screen *ebiten.Image, center math2.Vec2, size, angle float64, clr color.Color, alpha float64) {
	if pixel == nil {
		pixel = ebiten.NewImage(1, 1)
		pixel.Fill(color.White)
	}

	squareOp.GeoM.Reset()
	squareOp.GeoM.Scale(size, size)
	squareOp.GeoM.Translate(-size/2, -size/2)
	squareOp.GeoM.Rotate(angle)
	squareOp.GeoM.Translate(center.X, center.Y)
	squareOp.ColorScale.Reset()
	squareOp.ColorScale.ScaleWithColor(clr)
	squareOp.ColorScale.ScaleAlpha(float32(alpha))
	screen.DrawImage(pixel, squareOp)
}
