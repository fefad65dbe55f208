package geom

import (
	"math"
	"testing"

	"github.com/go-gl/mathgl/mgl64"
)

func approx(a, b float64) bool {
	return math.Abs(a-b) < 1e-6
}

func vecApprox(a, b mgl64.Vec2) bool {
	return approx(a.X(), b.X()) && approx(a.Y(), b.Y())
}

func TestBoxRaycast(t *testing.T) {
	box := NewBox(10, 0, 10, 10)

	cases := []struct {
		name     string
		origin   mgl64.Vec2
		dir      mgl64.Vec2
		max      float64
		wantHit  bool
		wantDist float64
		wantNorm mgl64.Vec2
	}{
		{"from_left", mgl64.Vec2{0, 5}, Right, 20, true, 10, Left},
		{"from_right", mgl64.Vec2{30, 5}, Left, 20, true, 10, Right},
		{"from_above", mgl64.Vec2{15, -5}, Down, 20, true, 5, Up},
		{"from_below", mgl64.Vec2{15, 20}, Up, 20, true, 10, Down},
		{"out_of_range", mgl64.Vec2{0, 5}, Right, 9, false, 0, mgl64.Vec2{}},
		{"misses_above", mgl64.Vec2{0, -1}, Right, 100, false, 0, mgl64.Vec2{}},
		{"points_away", mgl64.Vec2{0, 5}, Left, 100, false, 0, mgl64.Vec2{}},
		{"inside", mgl64.Vec2{15, 5}, Right, 100, true, 0, Left},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			hit, ok := box.Raycast(c.origin, c.dir, c.max)
			if ok != c.wantHit {
				t.Fatalf("hit = %v, want %v", ok, c.wantHit)
			}
			if !ok {
				return
			}
			if !approx(hit.Distance, c.wantDist) {
				t.Errorf("distance = %v, want %v", hit.Distance, c.wantDist)
			}
			if !vecApprox(hit.Normal, c.wantNorm) {
				t.Errorf("normal = %v, want %v", hit.Normal, c.wantNorm)
			}
		})
	}
}

func TestSegmentOneSided(t *testing.T) {
	// Platform top authored left-to-right faces up.
	seg := NewSegment(mgl64.Vec2{0, 100}, mgl64.Vec2{64, 100})
	if !vecApprox(seg.Normal, Up) {
		t.Fatalf("normal = %v, want up", seg.Normal)
	}

	if hit, ok := seg.Raycast(mgl64.Vec2{32, 90}, Down, 20); !ok {
		t.Fatalf("downward ray should hit the platform top")
	} else if !approx(hit.Distance, 10) {
		t.Errorf("distance = %v, want 10", hit.Distance)
	}

	if _, ok := seg.Raycast(mgl64.Vec2{32, 110}, Up, 20); ok {
		t.Errorf("upward ray must pass through a one-sided platform top")
	}

	if _, ok := seg.Raycast(mgl64.Vec2{100, 90}, Down, 20); ok {
		t.Errorf("ray beyond the segment end must miss")
	}
}

func TestRampNormalsAndAngles(t *testing.T) {
	right := RampUpRight(0, 0, 10, 10)
	left := RampUpLeft(0, 0, 10, 10)

	// Horizontal ray into the hypotenuse of the up-right ramp.
	hit, ok := right.Raycast(mgl64.Vec2{-5, 5}, Right, 100)
	if !ok {
		t.Fatalf("ray should hit the ramp face")
	}
	if !approx(hit.Distance, 10) {
		t.Errorf("distance = %v, want 10", hit.Distance)
	}
	if !approx(SurfaceAngle(hit.Normal), 45) {
		t.Errorf("surface angle = %v, want 45", SurfaceAngle(hit.Normal))
	}
	if hit.Normal.X() >= 0 {
		t.Errorf("up-right ramp face should point -X, got %v", hit.Normal)
	}

	hit, ok = left.Raycast(mgl64.Vec2{15, 5}, Left, 100)
	if !ok {
		t.Fatalf("ray should hit the ramp face")
	}
	if !approx(SurfaceAngle(hit.Normal), 45) {
		t.Errorf("surface angle = %v, want 45", SurfaceAngle(hit.Normal))
	}
	if hit.Normal.X() <= 0 {
		t.Errorf("up-left ramp face should point +X, got %v", hit.Normal)
	}

	// A downward ray lands on the walkable face too.
	hit, ok = right.Raycast(mgl64.Vec2{5, -5}, Down, 100)
	if !ok {
		t.Fatalf("downward ray should hit the ramp")
	}
	if !approx(SurfaceAngle(hit.Normal), 45) {
		t.Errorf("surface angle = %v, want 45", SurfaceAngle(hit.Normal))
	}
}

func TestSurfaceAngle(t *testing.T) {
	cases := []struct {
		normal mgl64.Vec2
		want   float64
	}{
		{Up, 0},
		{Right, 90},
		{Left, 90},
		{mgl64.Vec2{-math.Sqrt2 / 2, -math.Sqrt2 / 2}, 45},
	}
	for _, c := range cases {
		if got := SurfaceAngle(c.normal); !approx(got, c.want) {
			t.Errorf("SurfaceAngle(%v) = %v, want %v", c.normal, got, c.want)
		}
	}
}

func TestBoxInsetAndOverlap(t *testing.T) {
	b := NewBox(0, 0, 16, 32)
	inset := b.Inset(2)
	if !approx(inset.W(), 12) || !approx(inset.H(), 28) {
		t.Errorf("inset size = %v x %v, want 12 x 28", inset.W(), inset.H())
	}

	b.Translate(mgl64.Vec2{10, -5})
	if !vecApprox(b.Min, mgl64.Vec2{10, -5}) {
		t.Errorf("min after translate = %v", b.Min)
	}

	other := *NewBox(20, 0, 10, 10)
	if !b.Overlaps(other) {
		t.Errorf("boxes should overlap")
	}
	if b.Overlaps(*NewBox(100, 100, 5, 5)) {
		t.Errorf("distant boxes should not overlap")
	}
}
