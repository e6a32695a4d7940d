package systems

import (
	"time"

	"github.com/automoto/rts-cursor/components"
	cfg "github.com/automoto/rts-cursor/config"
	"github.com/automoto/rts-cursor/selection"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/yohamta/donburi/ecs"
)

// SelectButton is the mouse button that drags the selection box.
const SelectButton = ebiten.MouseButtonLeft

// UpdateInput polls the mouse and updates the Pointer component.
// Must run BEFORE the cursor systems in the system order.
func UpdateInput(ecs *ecs.ECS) {
	pointer := getOrCreatePointer(ecs)
	x, y := ebiten.CursorPosition()
	pointer.Push(ebiten.IsMouseButtonPressed(SelectButton), x, y)

	if inpututil.IsKeyJustPressed(ebiten.KeyF3) {
		cfg.Debug.ShowSpatialIndex = !cfg.Debug.ShowSpatialIndex
	}
}

func getOrCreatePointer(ecs *ecs.ECS) *components.PointerData {
	if _, ok := components.Pointer.First(ecs.World); !ok {
		ecs.World.Create(components.Pointer)
	}
	ent, _ := components.Pointer.First(ecs.World)
	return components.Pointer.Get(ent)
}

// frameDelta is the simulated time of one update at the current TPS.
func frameDelta() time.Duration {
	tps := ebiten.TPS()
	if tps <= 0 {
		tps = ebiten.DefaultTPS
	}
	return time.Second / time.Duration(tps)
}

// currentFrame turns the pointer edges into a cursor frame. The hit is filled
// in by the ray system.
func currentFrame(ecs *ecs.ECS) selection.Frame {
	state := getOrCreatePointer(ecs).Select()
	return selection.Frame{
		JustPressed:  state.JustPressed,
		Pressed:      state.Pressed,
		JustReleased: state.JustReleased,
		Delta:        frameDelta(),
	}
}
