//go:build !ebiten

package ui

import "testing"

func TestHeadlessHUDIsInert(t *testing.T) {
	h := NewHUD(nil, 240)
	if h != nil {
		t.Fatalf("expected nil HUD in the headless build, got %v", h)
	}
	h.Update(100)
	h.Draw(nil, 100, 480)
	if w := h.Width(); w != 0 {
		t.Fatalf("expected zero width, got %d", w)
	}
}
