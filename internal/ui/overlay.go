//go:build ebiten

package ui

import (
	"fmt"
	"image/color"

	"wavegrid/internal/core"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text"
	"golang.org/x/image/font/basicfont"
)

// Overlay prints clock and input state in the top-left corner.
type Overlay struct {
	target  core.Tunable
	visible bool
	lines   []string
}

// NewOverlay constructs a hidden overlay for target.
func NewOverlay(target core.Tunable) *Overlay {
	return &Overlay{target: target}
}

// Toggle flips overlay visibility.
func (o *Overlay) Toggle() { o.visible = !o.visible }

// Update rebuilds the status lines.
func (o *Overlay) Update(renderer string, paused bool) {
	if !o.visible {
		return
	}
	snap := o.target.Parameters()
	o.lines = o.lines[:0]
	for _, key := range []string{"time", "noise_offset"} {
		if p, ok := snap.Lookup(key); ok {
			o.lines = append(o.lines, fmt.Sprintf("%s: %s", p.Label, p.Value))
		}
	}
	o.lines = append(o.lines,
		fmt.Sprintf("FPS: %.1f  TPS: %.1f", ebiten.ActualFPS(), ebiten.ActualTPS()),
		fmt.Sprintf("Renderer: %s", renderer),
	)
	if paused {
		o.lines = append(o.lines, "Paused")
	}
}

// Draw renders the status lines onto screen.
func (o *Overlay) Draw(screen *ebiten.Image) {
	if !o.visible {
		return
	}
	face := basicfont.Face7x13
	for i, line := range o.lines {
		text.Draw(screen, line, face, 8, 18+i*16, color.RGBA{R: 200, G: 220, B: 240, A: 255})
	}
}
