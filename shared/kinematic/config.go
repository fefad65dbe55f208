package kinematic

// minRayCount guarantees both corners of every boundary are sampled.
const minRayCount = 2

// Config tunes a controller. It is read once per Move call; adjusting it
// between steps is allowed, mid-step is not.
type Config struct {
	// SkinWidth is the inward margin probe rays start from, keeping
	// them clear of surfaces the body is already flush against. Must be
	// small relative to the body size.
	SkinWidth float64

	// Ray counts per axis. Values below 2 are silently clamped up.
	HorizontalRayCount int
	VerticalRayCount   int

	// Angle limits in degrees from flat ground. Surfaces steeper than
	// MaxClimbAngle act as walls; descents steeper than MaxDescendAngle
	// are free fall.
	MaxClimbAngle   float64
	MaxDescendAngle float64

	// SolidTags selects surfaces that block from every direction.
	// OneWayTags selects drop-through platforms: vertical probes cast
	// against the union of both sets, horizontal probes only against
	// SolidTags.
	SolidTags  []string
	OneWayTags []string
}

func DefaultConfig() Config {
	return Config{
		SkinWidth:          1,
		HorizontalRayCount: 4,
		VerticalRayCount:   4,
		MaxClimbAngle:      55,
		MaxDescendAngle:    55,
		SolidTags:          []string{TagSolid},
		OneWayTags:         []string{TagOneWay},
	}
}

// normalized applies the defensive clamps from the configuration
// contract. Degenerate skin widths or body sizes stay the caller's
// problem.
func (c Config) normalized() Config {
	if c.HorizontalRayCount < minRayCount {
		c.HorizontalRayCount = minRayCount
	}
	if c.VerticalRayCount < minRayCount {
		c.VerticalRayCount = minRayCount
	}
	return c
}

// verticalTags returns the union of the solid and one-way tag sets,
// used by vertical probes.
func (c Config) verticalTags() []string {
	tags := make([]string, 0, len(c.SolidTags)+len(c.OneWayTags))
	tags = append(tags, c.SolidTags...)
	tags = append(tags, c.OneWayTags...)
	return tags
}
