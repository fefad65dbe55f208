package components

import (
	"github.com/milkrun/ascent/shared/kinematic"
	"github.com/tanema/gween"
	"github.com/yohamta/donburi"
)

// PlatformData drives a floating one-way platform. The tween sequence
// moves the surface between its anchor and anchor-Travel and back;
// riders are carried by the platform system.
type PlatformData struct {
	Surface *kinematic.Surface
	Tween   *gween.Sequence
	LastY   float64 // y at end of previous frame, for the per-frame delta
}

var Platform = donburi.NewComponentType[PlatformData]()
