package systems

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/milkrun/ascent/components"
	cfg "github.com/milkrun/ascent/config"
	"github.com/milkrun/ascent/shared/geom"
	"github.com/milkrun/ascent/shared/kinematic"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// Viewport culling skips draw calls for surfaces that are currently
// off-screen. A small padding prevents popping at the edges.
const cullPadding = 64.0

// DrawWorld renders the level surfaces and all controlled bodies as
// flat shapes, camera-translated.
func DrawWorld(ecs *ecs.ECS, screen *ebiten.Image) {
	cameraEntry, ok := components.Camera.First(ecs.World)
	if !ok {
		return // No camera yet
	}
	camera := components.Camera.Get(cameraEntry)
	width, height := screen.Bounds().Dx(), screen.Bounds().Dy()
	camX := float64(width)/2 - camera.Position.X
	camY := float64(height)/2 - camera.Position.Y

	minX := camera.Position.X - float64(width)/2 - cullPadding
	maxX := camera.Position.X + float64(width)/2 + cullPadding
	minY := camera.Position.Y - float64(height)/2 - cullPadding
	maxY := camera.Position.Y + float64(height)/2 + cullPadding

	levelEntry, ok := components.Level.First(ecs.World)
	if ok {
		level := components.Level.Get(levelEntry)
		for _, surface := range level.Space.Surfaces() {
			b := surface.Shape.Bounds()
			if b.Max.X() < minX || b.Min.X() > maxX || b.Max.Y() < minY || b.Min.Y() > maxY {
				continue
			}
			drawSurface(screen, surface, camX, camY)
		}
	}

	components.Controller.Each(ecs.World, func(e *donburi.Entry) {
		body := components.Controller.Get(e).Bounds()
		if body.Max.X() < minX || body.Min.X() > maxX || body.Max.Y() < minY || body.Min.Y() > maxY {
			return
		}

		bodyColor := cfg.UI.DebugBodyColor
		if e.HasComponent(components.Player) {
			bodyColor = playerColor(e)
		}
		vector.DrawFilledRect(screen,
			float32(body.Min.X()+camX), float32(body.Min.Y()+camY),
			float32(body.W()), float32(body.H()),
			bodyColor, false)
	})
}

func playerColor(e *donburi.Entry) color.RGBA {
	if e.HasComponent(components.Death) {
		return cfg.Red
	}
	physics := components.Physics.Get(e)
	switch {
	case physics.WallSliding != 0:
		return cfg.Yellow
	case !physics.OnGround:
		return cfg.LightBlue
	default:
		return cfg.Blue
	}
}

func drawSurface(screen *ebiten.Image, surface *kinematic.Surface, camX, camY float64) {
	if surface.HasTags(kinematic.TagOneWay) {
		drawOneWay(screen, surface, camX, camY)
		return
	}

	switch shape := surface.Shape.(type) {
	case *geom.Box:
		vector.DrawFilledRect(screen,
			float32(shape.Min.X()+camX), float32(shape.Min.Y()+camY),
			float32(shape.W()), float32(shape.H()),
			cfg.UI.DebugSurfaceColor, false)
	case *geom.Polygon:
		drawPolygon(screen, shape, camX, camY, cfg.UI.DebugSurfaceColor)
	case *geom.Segment:
		vector.StrokeLine(screen,
			float32(shape.A.X()+camX), float32(shape.A.Y()+camY),
			float32(shape.B.X()+camX), float32(shape.B.Y()+camY),
			2, cfg.UI.DebugSurfaceColor, false)
	}
}

// drawOneWay renders a one-way platform as a thick top edge, since
// only the top blocks movement.
func drawOneWay(screen *ebiten.Image, surface *kinematic.Surface, camX, camY float64) {
	b := surface.Shape.Bounds()
	vector.StrokeLine(screen,
		float32(b.Min.X()+camX), float32(b.Min.Y()+camY),
		float32(b.Max.X()+camX), float32(b.Min.Y()+camY),
		3, cfg.UI.DebugOneWayColor, false)
}

// drawPolygon fan-triangulates a convex polygon.
func drawPolygon(screen *ebiten.Image, p *geom.Polygon, camX, camY float64, c color.RGBA) {
	if len(p.Verts) < 3 {
		return
	}

	var path vector.Path
	path.MoveTo(float32(p.Verts[0].X()+camX), float32(p.Verts[0].Y()+camY))
	for _, v := range p.Verts[1:] {
		path.LineTo(float32(v.X()+camX), float32(v.Y()+camY))
	}
	path.Close()

	verts, indices := path.AppendVerticesAndIndicesForFilling(nil, nil)
	for i := range verts {
		verts[i].ColorR = float32(c.R) / 255
		verts[i].ColorG = float32(c.G) / 255
		verts[i].ColorB = float32(c.B) / 255
		verts[i].ColorA = float32(c.A) / 255
	}
	screen.DrawTriangles(verts, indices, whitePixel, &ebiten.DrawTrianglesOptions{
		AntiAlias: false,
	})
}

var whitePixel = func() *ebiten.Image {
	img := ebiten.NewImage(3, 3)
	img.Fill(color.White)
	return img.SubImage(img.Bounds().Inset(1)).(*ebiten.Image)
}()
