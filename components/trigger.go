package components

import (
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
)

// TriggerData is an overlap-only volume in the level. Triggers never
// block movement; the trigger system checks them against the player
// body each frame.
type TriggerData struct {
	Object *resolv.Object
}

var Trigger = donburi.NewComponentType[TriggerData]()
