//go:build ebiten

package app

import (
	"image/color"
	"log"

	"wavegrid/internal/core"
	"wavegrid/internal/render"
	"wavegrid/internal/scene"
	"wavegrid/internal/ui"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

const (
	// wheelPixelsPerNotch converts ebiten wheel notches to browser-style
	// pixel deltas.
	wheelPixelsPerNotch = 100
	// maxPixelRatio caps the device scale factor used for the render target.
	maxPixelRatio = 2
	// textureW and textureH size the CPU fallback's surface texture.
	textureW = 1024
	textureH = 512
)

// Game adapts the wave grid scene to the ebiten.Game interface.
type Game struct {
	scene   *scene.Scene
	clock   *core.Clock
	gpu     *render.GridRenderer
	painter *render.GridPainter
	hud     *ui.HUD
	overlay *ui.Overlay

	showHUD bool
	err     error
}

// New constructs a Game for the provided scene. The GPU shader is used unless
// cfg.CPU is set or the shader fails to compile.
func New(sc *scene.Scene, cfg *Config) *Game {
	g := &Game{
		scene:   sc,
		clock:   core.NewClock(),
		hud:     ui.NewHUD(sc, cfg.PanelWidth),
		overlay: ui.NewOverlay(sc),
		showHUD: cfg.PanelWidth > 0,
	}
	if !cfg.CPU {
		gpu, err := render.NewGridRenderer()
		if err != nil {
			log.Printf("falling back to CPU grid texture: %v", err)
		} else {
			g.gpu = gpu
		}
	}
	if g.gpu == nil {
		g.painter = render.NewGridPainter(textureW, textureH, cfg.Workers)
	}
	return g
}

// Update handles input and advances the animation clock.
func (g *Game) Update() error {
	if g.err != nil {
		return g.err
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyQ) || inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		return ebiten.Termination
	}
	if inpututil.IsKeyJustPressed(ebiten.KeySpace) || inpututil.IsKeyJustPressed(ebiten.KeyP) {
		g.clock.SetPaused(!g.clock.Paused())
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyR) {
		g.scene.Reset()
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyTab) {
		g.showHUD = !g.showHUD
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyH) {
		g.overlay.Toggle()
	}
	if _, dy := ebiten.Wheel(); dy != 0 {
		// Wheel up is positive in ebiten and negative in browser deltas.
		g.scene.Scroll(-dy * wheelPixelsPerNotch)
	}

	if g.showHUD {
		g.hud.Update(g.panelOffsetX())
	}

	g.scene.Advance(g.clock.Elapsed())
	g.overlay.Update(g.rendererName(), g.clock.Paused())
	return nil
}

// Draw renders the grid, then the HUD and overlay.
func (g *Game) Draw(screen *ebiten.Image) {
	screen.Fill(color.Black)
	if g.gpu != nil {
		g.gpu.Draw(screen, g.scene)
	} else if err := g.painter.Draw(screen, g.scene); err != nil {
		g.err = err
	}
	if g.showHUD {
		g.hud.Draw(screen, g.panelOffsetX(), g.scene.Viewport().H)
	}
	g.overlay.Draw(screen)
}

// Layout sizes the render target to the window in device pixels, capped at
// twice the logical size, and keeps the camera aspect in sync.
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	ratio := ebiten.Monitor().DeviceScaleFactor()
	if ratio > maxPixelRatio {
		ratio = maxPixelRatio
	}
	if ratio <= 0 {
		ratio = 1
	}
	w := int(float64(outsideWidth) * ratio)
	h := int(float64(outsideHeight) * ratio)
	g.scene.Resize(w, h)
	return w, h
}

func (g *Game) panelOffsetX() int {
	return g.scene.Viewport().W - g.hud.Width()
}

func (g *Game) rendererName() string {
	if g.gpu != nil {
		return "shader"
	}
	return "cpu texture"
}
