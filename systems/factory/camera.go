package factory

import (
	"github.com/milkrun/ascent/archetypes"
	"github.com/milkrun/ascent/components"
	"github.com/yohamta/donburi/ecs"
)

func CreateCamera(ecs *ecs.ECS) {
	camera := archetypes.Camera.Spawn(ecs)
	components.Camera.Set(camera, &components.CameraData{})
}
