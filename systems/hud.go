package systems

import (
	"fmt"

	cfg "github.com/automoto/rts-cursor/config"
	"github.com/automoto/rts-cursor/selection"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/yohamta/donburi/ecs"
)

// DrawHUD prints the cursor state in the top-left corner.
func DrawHUD(e *ecs.ECS, screen *ebiten.Image) {
	cursor, ok := selection.First(e.World)
	if !ok {
		return
	}
	state := cursor.State()

	msg := fmt.Sprintf("selected: %d\nstate: %s\ncursor: %.1f, %.1f\nF3: spatial index  Esc: quit",
		len(cursor.Selected()),
		state.Phase(),
		state.Location.X(), state.Location.Z(),
	)
	ebitenutil.DebugPrintAt(screen, msg, cfg.UI.HUDMarginX, cfg.UI.HUDMarginY)
}
