//go:build !ebiten

package ui

import (
	"github.com/amorcar/cpong/internal/core"
	"github.com/amorcar/cpong/internal/render"
)

// HUD is a no-op placeholder for headless builds.
type HUD struct{}

// NewHUD returns nil in the headless build.
func NewHUD(core.ParameterProvider, int) *HUD { return nil }

// Update is a no-op in the headless build.
func (h *HUD) Update() {}

// Draw is a no-op in the headless build.
func (h *HUD) Draw(any, render.Frame) {}
