package kinematic

import (
	"github.com/go-gl/mathgl/mgl64"

	"github.com/milkrun/ascent/shared/geom"
)

// Surface tag constants understood by the default controller config.
// Levels are free to define more; the controller only cares about the
// tag sets named in its Config.
const (
	TagSolid  = "solid"
	TagOneWay = "oneway"
)

// Surface is a piece of static level geometry: a raycastable shape plus
// a set of string tags used for obstacle filtering. Surfaces are
// identified by pointer, which is what makes per-platform drop-through
// tracking possible.
type Surface struct {
	Shape geom.Shape

	// Data is an optional back-reference for the owner (an ECS entry in
	// the game shell). The controller never touches it.
	Data any

	tags map[string]struct{}
}

func NewSurface(shape geom.Shape, tags ...string) *Surface {
	s := &Surface{Shape: shape, tags: make(map[string]struct{}, len(tags))}
	s.AddTags(tags...)
	return s
}

func (s *Surface) AddTags(tags ...string) {
	for _, t := range tags {
		s.tags[t] = struct{}{}
	}
}

func (s *Surface) RemoveTags(tags ...string) {
	for _, t := range tags {
		delete(s.tags, t)
	}
}

// HasTags reports whether the surface carries every given tag.
func (s *Surface) HasTags(tags ...string) bool {
	for _, t := range tags {
		if _, ok := s.tags[t]; !ok {
			return false
		}
	}
	return true
}

func (s *Surface) hasAnyTag(tags []string) bool {
	for _, t := range tags {
		if _, ok := s.tags[t]; ok {
			return true
		}
	}
	return false
}

// Space holds the surfaces a controller probes against.
type Space struct {
	surfaces []*Surface
}

func NewSpace() *Space {
	return &Space{}
}

func (sp *Space) Add(surfaces ...*Surface) {
	sp.surfaces = append(sp.surfaces, surfaces...)
}

func (sp *Space) Remove(surface *Surface) {
	for i, s := range sp.surfaces {
		if s == surface {
			sp.surfaces = append(sp.surfaces[:i], sp.surfaces[i+1:]...)
			return
		}
	}
}

func (sp *Space) Surfaces() []*Surface {
	return sp.surfaces
}

// Cast finds the nearest surface carrying any of the given tags along
// the ray. dir must be unit length. Returns false when nothing is hit
// within max — the expected common case, not an error.
func (sp *Space) Cast(origin, dir mgl64.Vec2, max float64, tags ...string) (geom.Hit, *Surface, bool) {
	var (
		best     geom.Hit
		bestSurf *Surface
	)
	for _, s := range sp.surfaces {
		if !s.hasAnyTag(tags) {
			continue
		}
		hit, ok := s.Shape.Raycast(origin, dir, max)
		if !ok {
			continue
		}
		if bestSurf == nil || hit.Distance < best.Distance {
			best = hit
			bestSurf = s
		}
	}
	return best, bestSurf, bestSurf != nil
}
