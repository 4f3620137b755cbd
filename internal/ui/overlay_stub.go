//go:build !ebiten

package ui

import "wavegrid/internal/core"

// Overlay is a no-op placeholder used when the ebiten build tag is absent.
type Overlay struct{}

// NewOverlay constructs a stub overlay.
func NewOverlay(core.Tunable) *Overlay { return &Overlay{} }

// Toggle is a no-op in headless builds.
func (o *Overlay) Toggle() {}

// Update is a no-op in headless builds.
func (o *Overlay) Update(string, bool) {}

// Draw is a no-op placeholder.
func (o *Overlay) Draw(any) {}
