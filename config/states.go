package config

// StateID identifies a player locomotion state for logic and debug display.
type StateID int

const (
	StateNone StateID = iota
	Idle
	Running
	Jump
	Fall
	WallSlide
	Crouch
	Die
)

var stateNames = map[StateID]string{
	Idle:      "idle",
	Running:   "running",
	Jump:      "jump",
	Fall:      "fall",
	WallSlide: "wallslide",
	Crouch:    "crouch",
	Die:       "die",
}

func (s StateID) String() string {
	if name, ok := stateNames[s]; ok {
		return name
	}
	return "unknown"
}
