// Package geom provides the raycast primitives used by the kinematic
// controller. It has no dependencies on ebitengine, donburi, or resolv —
// pure math only.
package geom

import (
	"math"

	"github.com/go-gl/mathgl/mgl64"
)

// Axis unit vectors in world space. Y grows downward (screen space), so
// Up is negative Y — the same convention the rest of the game uses.
var (
	Right = mgl64.Vec2{1, 0}
	Left  = mgl64.Vec2{-1, 0}
	Down  = mgl64.Vec2{0, 1}
	Up    = mgl64.Vec2{0, -1}
)

// Unbounded can be passed as the max distance of a raycast to disable the
// range check.
const Unbounded = math.MaxFloat64

// Hit describes the nearest intersection found by a raycast.
type Hit struct {
	Distance float64
	Point    mgl64.Vec2
	Normal   mgl64.Vec2 // unit length, points away from the surface
}

// Shape is any geometry a ray can be cast against.
type Shape interface {
	// Raycast returns the nearest intersection along origin + t*dir for
	// t in [0, max]. dir must be unit length. A ray starting inside a
	// solid shape reports Distance 0 with the normal opposing dir.
	Raycast(origin, dir mgl64.Vec2, max float64) (Hit, bool)

	// Bounds returns the axis-aligned bounding box of the shape.
	Bounds() Box

	// Translate moves the shape by d.
	Translate(d mgl64.Vec2)
}

func cross(a, b mgl64.Vec2) float64 {
	return a.X()*b.Y() - a.Y()*b.X()
}

// SurfaceAngle returns the angle in degrees between a surface normal and
// world up. Flat ground is 0, a vertical wall is 90.
func SurfaceAngle(normal mgl64.Vec2) float64 {
	dot := normal.Dot(Up)
	if dot > 1 {
		dot = 1
	} else if dot < -1 {
		dot = -1
	}
	return math.Acos(dot) * 180 / math.Pi
}

// Box is an axis-aligned rectangle. Min is the top-left corner in screen
// coordinates.
type Box struct {
	Min, Max mgl64.Vec2
}

func NewBox(x, y, w, h float64) *Box {
	return &Box{Min: mgl64.Vec2{x, y}, Max: mgl64.Vec2{x + w, y + h}}
}

func (b *Box) W() float64 { return b.Max.X() - b.Min.X() }
func (b *Box) H() float64 { return b.Max.Y() - b.Min.Y() }

func (b *Box) Bounds() Box { return *b }

func (b *Box) Translate(d mgl64.Vec2) {
	b.Min = b.Min.Add(d)
	b.Max = b.Max.Add(d)
}

// Contains reports whether p lies strictly inside the box.
func (b *Box) Contains(p mgl64.Vec2) bool {
	return p.X() > b.Min.X() && p.X() < b.Max.X() &&
		p.Y() > b.Min.Y() && p.Y() < b.Max.Y()
}

// Overlaps reports whether the two boxes intersect.
func (b *Box) Overlaps(o Box) bool {
	return b.Min.X() < o.Max.X() && b.Max.X() > o.Min.X() &&
		b.Min.Y() < o.Max.Y() && b.Max.Y() > o.Min.Y()
}

// Inset returns a copy of the box shrunk inward by m on every side.
func (b *Box) Inset(m float64) Box {
	return Box{
		Min: b.Min.Add(mgl64.Vec2{m, m}),
		Max: b.Max.Sub(mgl64.Vec2{m, m}),
	}
}

// Raycast intersects the ray with the box using the slab method.
func (b *Box) Raycast(origin, dir mgl64.Vec2, max float64) (Hit, bool) {
	if b.Contains(origin) {
		return Hit{Distance: 0, Point: origin, Normal: dir.Mul(-1)}, true
	}

	tMin := math.Inf(-1)
	tMax := math.Inf(1)
	var normal mgl64.Vec2

	for axis := 0; axis < 2; axis++ {
		o, d := origin[axis], dir[axis]
		lo, hi := b.Min[axis], b.Max[axis]

		if d == 0 {
			if o <= lo || o >= hi {
				return Hit{}, false
			}
			continue
		}

		t1 := (lo - o) / d
		t2 := (hi - o) / d
		n := -1.0
		if t1 > t2 {
			t1, t2 = t2, t1
			n = 1.0
		}
		if t1 > tMin {
			tMin = t1
			normal = mgl64.Vec2{}
			normal[axis] = n
		}
		if t2 < tMax {
			tMax = t2
		}
	}

	if tMin > tMax || tMax < 0 || tMin > max {
		return Hit{}, false
	}
	if tMin < 0 {
		// Origin on the boundary or inside along one axis only.
		return Hit{Distance: 0, Point: origin, Normal: dir.Mul(-1)}, true
	}
	return Hit{
		Distance: tMin,
		Point:    origin.Add(dir.Mul(tMin)),
		Normal:   normal,
	}, true
}

// Segment is a one-sided line segment from A to B. Rays only register a
// hit when travelling against the outward normal, which makes it the
// natural shape for one-way platform tops.
type Segment struct {
	A, B   mgl64.Vec2
	Normal mgl64.Vec2
}

// NewSegment builds a segment with the outward normal derived from the
// winding: the normal points to the left of the A→B direction, so a
// platform top authored left-to-right faces up.
func NewSegment(a, b mgl64.Vec2) *Segment {
	e := b.Sub(a)
	n := mgl64.Vec2{e.Y(), -e.X()}
	if l := n.Len(); l > 0 {
		n = n.Mul(1 / l)
	}
	return &Segment{A: a, B: b, Normal: n}
}

func (s *Segment) Bounds() Box {
	return Box{
		Min: mgl64.Vec2{math.Min(s.A.X(), s.B.X()), math.Min(s.A.Y(), s.B.Y())},
		Max: mgl64.Vec2{math.Max(s.A.X(), s.B.X()), math.Max(s.A.Y(), s.B.Y())},
	}
}

func (s *Segment) Translate(d mgl64.Vec2) {
	s.A = s.A.Add(d)
	s.B = s.B.Add(d)
}

func (s *Segment) Raycast(origin, dir mgl64.Vec2, max float64) (Hit, bool) {
	// Back-facing or parallel rays pass through.
	if dir.Dot(s.Normal) >= 0 {
		return Hit{}, false
	}

	e := s.B.Sub(s.A)
	denom := cross(dir, e)
	if denom == 0 {
		return Hit{}, false
	}
	ao := s.A.Sub(origin)
	t := cross(ao, e) / denom
	u := cross(ao, dir) / denom
	if t < 0 || t > max || u < 0 || u > 1 {
		return Hit{}, false
	}
	return Hit{Distance: t, Point: origin.Add(dir.Mul(t)), Normal: s.Normal}, true
}

// Polygon is a convex polygon wound clockwise on screen (Y down), so
// each edge A→B has outward normal {e.Y, -e.X}. Slope ramps are polygons
// so probes see their true surface normal.
type Polygon struct {
	Verts []mgl64.Vec2
}

// NewPolygon copies verts. Winding must be clockwise on screen.
func NewPolygon(verts ...mgl64.Vec2) *Polygon {
	p := &Polygon{Verts: make([]mgl64.Vec2, len(verts))}
	copy(p.Verts, verts)
	return p
}

func (p *Polygon) Bounds() Box {
	b := Box{
		Min: mgl64.Vec2{math.Inf(1), math.Inf(1)},
		Max: mgl64.Vec2{math.Inf(-1), math.Inf(-1)},
	}
	for _, v := range p.Verts {
		b.Min = mgl64.Vec2{math.Min(b.Min.X(), v.X()), math.Min(b.Min.Y(), v.Y())}
		b.Max = mgl64.Vec2{math.Max(b.Max.X(), v.X()), math.Max(b.Max.Y(), v.Y())}
	}
	return b
}

func (p *Polygon) Translate(d mgl64.Vec2) {
	for i := range p.Verts {
		p.Verts[i] = p.Verts[i].Add(d)
	}
}

// RampUpRight returns a triangular ramp filling the (x, y, w, h) cell,
// rising toward +X. The hypotenuse runs bottom-left to top-right.
func RampUpRight(x, y, w, h float64) *Polygon {
	return NewPolygon(
		mgl64.Vec2{x, y + h},
		mgl64.Vec2{x + w, y},
		mgl64.Vec2{x + w, y + h},
	)
}

// RampUpLeft returns a triangular ramp filling the (x, y, w, h) cell,
// rising toward -X. The hypotenuse runs top-left to bottom-right.
func RampUpLeft(x, y, w, h float64) *Polygon {
	return NewPolygon(
		mgl64.Vec2{x, y},
		mgl64.Vec2{x + w, y + h},
		mgl64.Vec2{x, y + h},
	)
}

func (p *Polygon) edgeNormal(i int) mgl64.Vec2 {
	a := p.Verts[i]
	b := p.Verts[(i+1)%len(p.Verts)]
	e := b.Sub(a)
	n := mgl64.Vec2{e.Y(), -e.X()}
	if l := n.Len(); l > 0 {
		n = n.Mul(1 / l)
	}
	return n
}

// contains reports whether the point is inside the convex hull.
func (p *Polygon) contains(pt mgl64.Vec2) bool {
	for i := range p.Verts {
		a := p.Verts[i]
		b := p.Verts[(i+1)%len(p.Verts)]
		if cross(b.Sub(a), pt.Sub(a)) < 0 {
			return false
		}
	}
	return true
}

func (p *Polygon) Raycast(origin, dir mgl64.Vec2, max float64) (Hit, bool) {
	if len(p.Verts) < 3 {
		return Hit{}, false
	}
	if p.contains(origin) {
		return Hit{Distance: 0, Point: origin, Normal: dir.Mul(-1)}, true
	}

	best := Hit{Distance: math.Inf(1)}
	found := false
	for i := range p.Verts {
		n := p.edgeNormal(i)
		if dir.Dot(n) >= 0 {
			continue
		}
		a := p.Verts[i]
		b := p.Verts[(i+1)%len(p.Verts)]
		e := b.Sub(a)
		denom := cross(dir, e)
		if denom == 0 {
			continue
		}
		ao := a.Sub(origin)
		t := cross(ao, e) / denom
		u := cross(ao, dir) / denom
		if t < 0 || t > max || u < 0 || u > 1 {
			continue
		}
		if t < best.Distance {
			best = Hit{Distance: t, Point: origin.Add(dir.Mul(t)), Normal: n}
			found = true
		}
	}
	return best, found
}
