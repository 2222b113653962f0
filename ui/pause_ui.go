package ui

import (
	"bytes"
	"image/color"

	cfg "github.com/automoto/telegraph/config"
	"github.com/ebitenui/ebitenui"
	"github.com/ebitenui/ebitenui/widget"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
	"golang.org/x/image/font/gofont/goregular"
)

// PauseUI is the dimmed overlay shown while the simulation is paused
type PauseUI struct {
	UI *ebitenui.UI

	fade    *gween.Tween
	opacity float64
	paused  bool

	// Fonts (stored as interface for ebitenui compatibility)
	titleFace text.Face
	hintFace  text.Face
}

// NewPauseUI creates the pause overlay with ebitenui
func NewPauseUI() *PauseUI {
	pui := &PauseUI{}
	pui.loadFonts()
	pui.buildUI()
	return pui
}

func (pui *PauseUI) loadFonts() {
	fontSource, err := text.NewGoTextFaceSource(bytes.NewReader(goregular.TTF))
	if err != nil {
		panic(err)
	}

	pui.titleFace = &text.GoTextFace{
		Source: fontSource,
		Size:   cfg.Pause.TitleSize,
	}
	pui.hintFace = &text.GoTextFace{
		Source: fontSource,
		Size:   cfg.Pause.HintSize,
	}
}

func (pui *PauseUI) buildUI() {
	// Root container with AnchorLayout to fill the screen
	rootContainer := widget.NewContainer(
		widget.ContainerOpts.Layout(widget.NewAnchorLayout()),
	)

	contentContainer := widget.NewContainer(
		widget.ContainerOpts.Layout(widget.NewRowLayout(
			widget.RowLayoutOpts.Direction(widget.DirectionVertical),
			widget.RowLayoutOpts.Spacing(8),
		)),
		widget.ContainerOpts.WidgetOpts(
			widget.WidgetOpts.LayoutData(widget.AnchorLayoutData{
				HorizontalPosition: widget.AnchorLayoutPositionCenter,
				VerticalPosition:   widget.AnchorLayoutPositionCenter,
			}),
		),
	)

	titleLabel := widget.NewLabel(
		widget.LabelOpts.Text(cfg.Pause.Title, &pui.titleFace, &widget.LabelColor{
			Idle: cfg.White,
		}),
	)
	contentContainer.AddChild(titleLabel)

	hintLabel := widget.NewLabel(
		widget.LabelOpts.Text(cfg.Pause.Hint, &pui.hintFace, &widget.LabelColor{
			Idle: color.RGBA{200, 200, 200, 255},
		}),
	)
	contentContainer.AddChild(hintLabel)

	rootContainer.AddChild(contentContainer)

	pui.UI = &ebitenui.UI{
		Container: rootContainer,
	}
}

// Update starts a fade whenever the pause state flips and advances it by dt.
func (pui *PauseUI) Update(paused bool, dt float64) {
	if paused != pui.paused {
		pui.paused = paused
		target := 0.0
		if paused {
			target = 1
		}
		pui.fade = gween.New(float32(pui.opacity), float32(target), float32(cfg.Pause.FadeDuration), ease.OutQuad)
	}

	if pui.fade != nil {
		v, finished := pui.fade.Update(float32(dt))
		pui.opacity = float64(v)
		if finished {
			pui.fade = nil
		}
	}

	if pui.opacity > 0 {
		pui.UI.Update()
	}
}

// Draw renders the overlay at its current opacity.
func (pui *PauseUI) Draw(screen *ebiten.Image) {
	if pui.opacity <= 0 {
		return
	}

	overlay := cfg.Pause.OverlayColor
	bounds := screen.Bounds()
	vector.FillRect(
		screen,
		0, 0,
		float32(bounds.Dx()), float32(bounds.Dy()),
		color.NRGBA{R: overlay.R, G: overlay.G, B: overlay.B, A: uint8(float64(overlay.A) * pui.opacity)},
		false,
	)

	// Labels appear once the overlay is mostly in
	if pui.opacity > 0.5 {
		pui.UI.Draw(screen)
	}
}
