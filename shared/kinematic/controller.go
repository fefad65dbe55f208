// Package kinematic implements a deterministic raycast character
// controller for an axis-aligned rectangular body moving through static
// tile geometry: flat walls, walkable slopes, and one-way platforms.
// It replaces impulse-solver physics with per-step displacement
// clipping, so the caller stays in full control of velocity.
//
// Coordinates are screen space: Y grows downward, so "moving up" means
// a negative vertical displacement.
package kinematic

import (
	"math"

	"github.com/go-gl/mathgl/mgl64"

	"github.com/milkrun/ascent/shared/geom"
)

const deg2rad = math.Pi / 180

// Controller moves a rectangular body through a Space one resolved step
// at a time. It is single-owner and step-driven; no method is safe for
// concurrent use.
type Controller struct {
	space *Space
	body  geom.Box
	cfg   Config

	origins  rayOrigins
	hSpacing float64
	vSpacing float64

	state CollisionState
	mem   stepMemory
}

// rayOrigins are the four corners of the skin-inset rectangle,
// recomputed at the start of every step.
type rayOrigins struct {
	topLeft, topRight       mgl64.Vec2
	bottomLeft, bottomRight mgl64.Vec2
}

func NewController(space *Space, body geom.Box, cfg Config) *Controller {
	return &Controller{
		space: space,
		body:  body,
		cfg:   cfg.normalized(),
		mem:   stepMemory{horizontalDir: 1},
	}
}

// Bounds returns the body's current world-space rectangle.
func (c *Controller) Bounds() geom.Box {
	return c.body
}

// State returns the collision state of the last completed step.
func (c *Controller) State() CollisionState {
	return c.state
}

func (c *Controller) Config() Config {
	return c.cfg
}

// SetConfig replaces the configuration. Only call between steps.
func (c *Controller) SetConfig(cfg Config) {
	c.cfg = cfg.normalized()
}

// SetPosition teleports the body, keeping its size. Collision flags and
// drop-through tracking are not touched; the next Move reflects the new
// surroundings.
func (c *Controller) SetPosition(pos mgl64.Vec2) {
	size := mgl64.Vec2{c.body.W(), c.body.H()}
	c.body = geom.Box{Min: pos, Max: pos.Add(size)}
}

// Move resolves one step: the requested displacement is clipped and
// redirected by nearby geometry, the body is translated by the result,
// and the step's collision state is returned. ignoreOneWay requests
// dropping through a one-way platform directly below.
//
// The call either completes fully or leaves the body untouched; the
// final position is committed once, after all probes have resolved.
func (c *Controller) Move(displacement mgl64.Vec2, ignoreOneWay bool) CollisionState {
	c.updateRayOrigins()
	c.resetState(displacement, ignoreOneWay)

	amount := displacement

	if amount.X() != 0 {
		if amount.X() > 0 {
			c.mem.horizontalDir = 1
		} else {
			c.mem.horizontalDir = -1
		}
		c.state.HorizontalDir = c.mem.horizontalDir
	}

	if amount.Y() > 0 {
		c.descendSlope(&amount)
	}

	// Horizontal always runs so static wall contact is detected even
	// with no horizontal input (wall-jump checks rely on this).
	c.horizontalCollisions(&amount)

	c.verticalCollisions(&amount)

	c.body.Translate(amount)
	return c.state
}

func (c *Controller) updateRayOrigins() {
	inset := c.body.Inset(c.cfg.SkinWidth)
	c.origins = rayOrigins{
		topLeft:     inset.Min,
		topRight:    mgl64.Vec2{inset.Max.X(), inset.Min.Y()},
		bottomLeft:  mgl64.Vec2{inset.Min.X(), inset.Max.Y()},
		bottomRight: inset.Max,
	}
	c.hSpacing = inset.H() / float64(c.cfg.HorizontalRayCount-1)
	c.vSpacing = inset.W() / float64(c.cfg.VerticalRayCount-1)
}

func (c *Controller) resetState(displacement mgl64.Vec2, ignoreOneWay bool) {
	c.mem.slopeAnglePrev = c.state.SlopeAngle
	c.state = CollisionState{
		SlopeAnglePrev:         c.mem.slopeAnglePrev,
		HorizontalDir:          c.mem.horizontalDir,
		FallingThroughPlatform: c.mem.throughPlatform != nil,
		requested:              displacement,
		ignoreOneWay:           ignoreOneWay,
	}
}

// horizontalCollisions clips the horizontal component against the
// nearest solid obstruction. The lowest ray may instead start a climb
// when the surface ahead is within the climb angle.
func (c *Controller) horizontalCollisions(amount *mgl64.Vec2) {
	dirX := float64(c.mem.horizontalDir)
	skin := c.cfg.SkinWidth

	rayLength := math.Abs(amount.X()) + skin
	if math.Abs(amount.X()) < skin {
		// Static contact probe: just far enough to find a wall the
		// body is resting against.
		rayLength = 2 * skin
	}

	for i := 0; i < c.cfg.HorizontalRayCount; i++ {
		origin := c.origins.bottomRight
		if dirX == -1 {
			origin = c.origins.bottomLeft
		}
		origin = origin.Add(mgl64.Vec2{0, -c.hSpacing * float64(i)})

		hit, _, ok := c.space.Cast(origin, mgl64.Vec2{dirX, 0}, rayLength, c.cfg.SolidTags...)
		if !ok {
			continue
		}
		if hit.Distance == 0 {
			// Already inside/flush; another ray will produce a usable
			// contact.
			continue
		}

		slopeAngle := geom.SurfaceAngle(hit.Normal)

		if i == 0 && slopeAngle <= c.cfg.MaxClimbAngle {
			if c.state.DescendingSlope {
				// Ascend wins over a descend started this step.
				c.state.DescendingSlope = false
				*amount = c.state.requested
			}
			// On a slope transition, consume the gap to the slope edge
			// first so the climb starts exactly at the surface.
			distanceToSlope := 0.0
			if slopeAngle != c.state.SlopeAnglePrev {
				distanceToSlope = hit.Distance - skin
				(*amount)[0] -= distanceToSlope * dirX
			}
			c.climbSlope(amount, slopeAngle)
			(*amount)[0] += distanceToSlope * dirX
		}

		if !c.state.AscendingSlope || slopeAngle > c.cfg.MaxClimbAngle {
			(*amount)[0] = (hit.Distance - skin) * dirX
			// Later rays cannot report a farther obstruction.
			rayLength = hit.Distance

			if c.state.AscendingSlope {
				(*amount)[1] = -math.Tan(c.state.SlopeAngle*deg2rad) * math.Abs(amount.X())
			}

			c.state.Left = dirX == -1
			c.state.Right = dirX == 1
		}
	}
}

// climbSlope redirects horizontal displacement along a walkable slope.
// An active jump carrying the body up faster than the climb is left
// alone.
func (c *Controller) climbSlope(amount *mgl64.Vec2, slopeAngle float64) {
	moveDistance := math.Abs(amount.X())
	climbY := math.Sin(slopeAngle*deg2rad) * moveDistance

	if -amount.Y() > climbY {
		return
	}

	(*amount)[1] = -climbY
	(*amount)[0] = math.Cos(slopeAngle*deg2rad) * moveDistance * sign(amount.X())
	c.state.Below = true
	c.state.AscendingSlope = true
	c.state.SlopeAngle = slopeAngle
}

// descendSlope redirects downward+horizontal travel along the slope
// underfoot, so the body follows the surface instead of stair-stepping
// off it. Only surfaces facing the travel direction and reachable
// within this step qualify.
func (c *Controller) descendSlope(amount *mgl64.Vec2) {
	dirX := sign(amount.X())
	skin := c.cfg.SkinWidth

	// Probe straight down from the trailing bottom corner, unbounded.
	origin := c.origins.bottomLeft
	if dirX == -1 {
		origin = c.origins.bottomRight
	}
	hit, _, ok := c.space.Cast(origin, geom.Down, geom.Unbounded, c.cfg.SolidTags...)
	if !ok {
		return
	}

	slopeAngle := geom.SurfaceAngle(hit.Normal)
	if slopeAngle == 0 || slopeAngle > c.cfg.MaxDescendAngle {
		return
	}
	if sign(hit.Normal.X()) != dirX {
		return
	}
	if hit.Distance-skin > math.Tan(slopeAngle*deg2rad)*math.Abs(amount.X()) {
		// Too far above the slope to reach it this step.
		return
	}

	moveDistance := math.Abs(amount.X())
	(*amount)[0] = math.Cos(slopeAngle*deg2rad) * moveDistance * dirX
	(*amount)[1] += math.Sin(slopeAngle*deg2rad) * moveDistance

	c.state.SlopeAngle = slopeAngle
	c.state.DescendingSlope = true
	c.state.Below = true
}

// verticalCollisions clips the vertical component against the nearest
// obstruction, applying the one-way platform filter on the way. Ray
// origins are offset by the already-resolved horizontal displacement.
func (c *Controller) verticalCollisions(amount *mgl64.Vec2) {
	dirY := sign(amount.Y())
	skin := c.cfg.SkinWidth
	rayLength := math.Abs(amount.Y()) + skin
	if amount.Y() == 0 {
		// Static contact probe toward gravity, so a body at rest still
		// reports ground contact.
		dirY = 1
		rayLength = 2 * skin
	}
	tags := c.cfg.verticalTags()

	sawThroughPlatform := false

	for i := 0; i < c.cfg.VerticalRayCount; i++ {
		origin := c.origins.bottomLeft
		if dirY == -1 {
			origin = c.origins.topLeft
		}
		origin = origin.Add(mgl64.Vec2{c.vSpacing*float64(i) + amount.X(), 0})

		hit, surface, ok := c.space.Cast(origin, mgl64.Vec2{0, dirY}, rayLength, tags...)
		if !ok {
			continue
		}
		skip := c.skipOneWay(dirY, hit, surface)
		// Tracking can start inside the filter, so the seen check must
		// run after it or a platform first recorded by the last ray
		// would be cleared in the same step.
		if surface == c.mem.throughPlatform {
			sawThroughPlatform = true
		}
		if skip {
			continue
		}

		(*amount)[1] = (hit.Distance - skin) * dirY
		rayLength = hit.Distance

		if c.state.AscendingSlope && c.state.SlopeAngle > 0 {
			// Keep the climb geometrically consistent with the clamped
			// vertical component.
			(*amount)[0] = -amount.Y() / math.Tan(c.state.SlopeAngle*deg2rad) * sign(amount.X())
		}

		c.state.Below = dirY == 1
		c.state.Above = dirY == -1
	}

	if c.state.AscendingSlope {
		c.recheckClimb(amount)
	}

	// A tracked drop-through platform that no longer shows up in the
	// probe picture has been fully cleared.
	if c.mem.throughPlatform != nil && !sawThroughPlatform {
		c.mem.throughPlatform = nil
		c.state.FallingThroughPlatform = false
	}
}

// skipOneWay decides whether a vertical hit against a one-way platform
// should be ignored. Checks run in contract order; the first match
// wins.
func (c *Controller) skipOneWay(dirY float64, hit geom.Hit, surface *Surface) bool {
	if !surface.hasAnyTag(c.cfg.OneWayTags) {
		return false
	}
	// Passing through from below, or already flush with the surface.
	if dirY == -1 || hit.Distance == 0 {
		return true
	}
	// A drop-through in progress keeps ignoring this exact platform.
	if surface == c.mem.throughPlatform {
		return true
	}
	// Drop-through requested this step: start tracking.
	if c.state.ignoreOneWay {
		c.mem.throughPlatform = surface
		c.state.FallingThroughPlatform = true
		return true
	}
	return false
}

// recheckClimb probes one extra horizontal ray from the resolved
// vertical position to catch a slope that gets steeper mid-step. A
// changed angle re-clamps the horizontal component; the edge-distance
// correction is deliberately not re-run here.
func (c *Controller) recheckClimb(amount *mgl64.Vec2) {
	dirX := sign(amount.X())
	skin := c.cfg.SkinWidth
	rayLength := math.Abs(amount.X()) + skin

	origin := c.origins.bottomRight
	if dirX == -1 {
		origin = c.origins.bottomLeft
	}
	origin = origin.Add(mgl64.Vec2{0, amount.Y()})

	hit, _, ok := c.space.Cast(origin, mgl64.Vec2{dirX, 0}, rayLength, c.cfg.SolidTags...)
	if !ok {
		return
	}
	slopeAngle := geom.SurfaceAngle(hit.Normal)
	if slopeAngle != c.state.SlopeAngle {
		(*amount)[0] = (hit.Distance - skin) * dirX
		c.state.SlopeAngle = slopeAngle
	}
}

func sign(x float64) float64 {
	if x < 0 {
		return -1
	}
	return 1
}
