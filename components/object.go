package components

import (
	"github.com/milkrun/ascent/shared/kinematic"
	"github.com/yohamta/donburi"
)

// ControllerData wraps the raycast collision controller owned by a
// moving entity. The controller is the authority on the body position.
type ControllerData struct {
	*kinematic.Controller
}

var Controller = donburi.NewComponentType[ControllerData]()
