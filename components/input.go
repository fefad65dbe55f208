package components

import (
	"github.com/hajimehoshi/ebiten/v2"
	cfg "github.com/milkrun/ascent/config"
	"github.com/yohamta/donburi"
)

// InputMethod represents the type of input device being used
type InputMethod int

const (
	InputKeyboard InputMethod = iota
	InputGamepad
)

// InputData stores the current and previous frame's pressed state for
// all actions. JustPressed/JustReleased are computed on-demand by
// comparing frames.
type InputData struct {
	Current         [cfg.ActionCount]bool // Current frame's Pressed state
	Previous        [cfg.ActionCount]bool // Previous frame's Pressed state
	BoundGamepadID  *ebiten.GamepadID     // Bound gamepad (nil = keyboard only)
	LastInputMethod InputMethod           // Most recently used input method
}

var Input = donburi.NewComponentType[InputData]()

// Pressed reports whether the action is held this frame.
func (d *InputData) Pressed(a cfg.ActionID) bool {
	return d.Current[a]
}

// JustPressed reports whether the action went down this frame.
func (d *InputData) JustPressed(a cfg.ActionID) bool {
	return d.Current[a] && !d.Previous[a]
}

// JustReleased reports whether the action came up this frame.
func (d *InputData) JustReleased(a cfg.ActionID) bool {
	return !d.Current[a] && d.Previous[a]
}
