package systems

import (
	"github.com/automoto/rts-cursor/components"
	cfg "github.com/automoto/rts-cursor/config"
	"github.com/automoto/rts-cursor/selection"
	"github.com/yohamta/donburi/ecs"
)

// WithCursor adapts a cursor step into a system. The step is skipped until a
// cursor has been attached to the world.
func WithCursor(step func(*ecs.ECS, *selection.Cursor)) ecs.System {
	return func(e *ecs.ECS) {
		cursor, ok := selection.First(e.World)
		if !ok {
			return
		}
		step(e, cursor)
	}
}

// UpdateCursorHit casts the pointer into the scene and moves the cursor to the hit.
func UpdateCursorHit(e *ecs.ECS, cursor *selection.Cursor) {
	cameraEntry, ok := components.Camera.First(e.World)
	if !ok {
		return
	}
	camera := components.Camera.Get(cameraEntry)
	pointer := getOrCreatePointer(e)

	ray, err := camera.ScreenRay(float64(pointer.X), float64(pointer.Y), cfg.C.Width, cfg.C.Height)
	if err != nil {
		return
	}
	cursor.ObserveHit(selection.CastCursor(e.World, ray))
}

// UpdateCursorDrag feeds the button edges to the drag controller.
func UpdateCursorDrag(e *ecs.ECS, cursor *selection.Cursor) {
	cursor.UpdateDrag(e.World, currentFrame(e))
}

// UpdateCursorSelection resolves a confirmed drag.
func UpdateCursorSelection(e *ecs.ECS, cursor *selection.Cursor) {
	cursor.ResolveSelection(e.World)
}

// UpdateBlinkers fades confirmation outlines.
func UpdateBlinkers(e *ecs.ECS, cursor *selection.Cursor) {
	selection.UpdateBlinkers(e.World, cursor.Host(), frameDelta())
}
