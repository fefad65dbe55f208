package factory

import (
	"github.com/milkrun/ascent/shared/geom"
	"github.com/milkrun/ascent/shared/kinematic"
	"github.com/milkrun/ascent/shared/leveldata"
)

// CreateTileSurface turns one collision tile into a raycastable
// surface. Flat tiles become boxes, slope tiles become ramp polygons,
// one-way tiles become drop-through boxes.
func CreateTileSurface(tile leveldata.TileRect) *kinematic.Surface {
	var shape geom.Shape
	switch tile.SlopeType {
	case leveldata.Slope45UpRight:
		shape = geom.RampUpRight(tile.X, tile.Y, tile.W, tile.H)
	case leveldata.Slope45UpLeft:
		shape = geom.RampUpLeft(tile.X, tile.Y, tile.W, tile.H)
	default:
		shape = geom.NewBox(tile.X, tile.Y, tile.W, tile.H)
	}

	if tile.OneWay {
		return kinematic.NewSurface(shape, kinematic.TagOneWay)
	}
	return kinematic.NewSurface(shape, kinematic.TagSolid)
}
