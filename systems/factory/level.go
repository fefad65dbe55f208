package factory

import (
	"fmt"

	"github.com/milkrun/ascent/archetypes"
	"github.com/milkrun/ascent/components"
	"github.com/milkrun/ascent/levels"
	"github.com/milkrun/ascent/shared/leveldata"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

func CreateLevel(ecs *ecs.ECS) *donburi.Entry {
	return CreateLevelByName(ecs, "")
}

// CreateLevelByName loads every embedded level, selects the named one
// (or the first when name is empty or unknown) and builds its collision
// and trigger spaces.
func CreateLevelByName(ecs *ecs.ECS, name string) *donburi.Entry {
	entry := archetypes.Level.Spawn(ecs)

	all, names, err := leveldata.LoadAllLevels(levels.FS, ".")
	if err != nil {
		panic(fmt.Sprintf("loading levels: %v", err))
	}
	if len(names) == 0 {
		panic("no levels embedded")
	}

	data, ok := all[name]
	if !ok {
		name = names[0]
		data = all[name]
	}

	levelData := &components.LevelData{
		CurrentLevel: data,
		LevelName:    name,
		LevelNames:   names,
		Levels:       all,
	}
	components.Level.Set(entry, levelData)

	BuildSpaces(ecs, levelData)

	return entry
}
