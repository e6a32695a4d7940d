package systems

import (
	"github.com/automoto/rts-cursor/selection"
	"github.com/yohamta/donburi/ecs"
)

// UpdateObjects keeps the spatial index in step with moving units.
func UpdateObjects(e *ecs.ECS, cursor *selection.Cursor) {
	if idx := cursor.Index(); idx != nil {
		idx.Sync(e.World)
	}
}
