package kinematic

import "github.com/go-gl/mathgl/mgl64"

// CollisionState is the result of one Move call. It is rebuilt from
// scratch every step; only the fields mirrored in stepMemory survive
// across calls.
type CollisionState struct {
	// Boundary contact flags for the step.
	Above, Below bool
	Left, Right  bool

	// Slope tracking. SlopeAngle is in degrees, 0 when flat.
	// SlopeAnglePrev is the previous step's SlopeAngle, used to detect
	// slope transitions.
	AscendingSlope  bool
	DescendingSlope bool
	SlopeAngle      float64
	SlopeAnglePrev  float64

	// FallingThroughPlatform is set while a drop-through is in
	// progress; it stays set across steps until the tracked platform is
	// fully cleared.
	FallingThroughPlatform bool

	// HorizontalDir is the sticky facing direction, ±1. It only changes
	// on steps with nonzero horizontal displacement.
	HorizontalDir int

	requested    mgl64.Vec2
	ignoreOneWay bool
}

// Colliding reports whether any boundary flag is set.
func (cs CollisionState) Colliding() bool {
	return cs.Above || cs.Below || cs.Left || cs.Right
}

// Requested returns the displacement the step was asked for, before any
// clipping or slope redirection.
func (cs CollisionState) Requested() mgl64.Vec2 {
	return cs.requested
}

// stepMemory holds the only controller state that persists across
// steps. Keeping it separate from CollisionState makes the persistence
// boundary explicit.
type stepMemory struct {
	slopeAnglePrev  float64
	horizontalDir   int
	throughPlatform *Surface
}
