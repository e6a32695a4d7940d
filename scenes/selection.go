package scenes

import (
	"image/color"
	"sync"

	"github.com/automoto/rts-cursor/assets"
	cfg "github.com/automoto/rts-cursor/config"
	"github.com/automoto/rts-cursor/systems"
	"github.com/automoto/rts-cursor/systems/factory"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/rs/zerolog"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

const (
	LayerDefault ecs.LayerID = iota
)

// SelectionScene shows a field of units that can be box-selected.
type SelectionScene struct {
	ecs       *ecs.ECS
	cursorCfg cfg.CursorConfig
	scenePath string
	logger    zerolog.Logger
	once      sync.Once
}

// NewSelectionScene validates the cursor configuration up front so that a bad
// configuration is reported before the window opens.
func NewSelectionScene(cursorCfg cfg.CursorConfig, scenePath string, logger zerolog.Logger) (*SelectionScene, error) {
	if err := cursorCfg.Validate(); err != nil {
		return nil, err
	}
	return &SelectionScene{
		cursorCfg: cursorCfg,
		scenePath: scenePath,
		logger:    logger,
	}, nil
}

func (ss *SelectionScene) Update() {
	ss.once.Do(ss.configure)
	ss.ecs.Update()
}

func (ss *SelectionScene) Draw(screen *ebiten.Image) {
	// Always clear screen to prevent white flashes from OS window background
	screen.Fill(color.Black)

	if ss.ecs == nil {
		return
	}
	ss.ecs.Draw(screen)
}

func (ss *SelectionScene) configure() {
	ecs := ecs.NewECS(donburi.NewWorld())

	// Input first, then the cursor in its fixed order: hit, drag, resolve, blink.
	ecs.AddSystem(systems.UpdateInput)
	ecs.AddSystem(systems.WithCursor(systems.UpdateObjects))
	ecs.AddSystem(systems.WithCursor(systems.UpdateCursorHit))
	ecs.AddSystem(systems.WithCursor(systems.UpdateCursorDrag))
	ecs.AddSystem(systems.WithCursor(systems.UpdateCursorSelection))
	ecs.AddSystem(systems.WithCursor(systems.UpdateBlinkers))

	// Add renderers
	ecs.AddRenderer(LayerDefault, systems.DrawGround)
	ecs.AddRenderer(LayerDefault, systems.DrawMeshes)
	ecs.AddRenderer(LayerDefault, systems.DrawDebug)
	ecs.AddRenderer(LayerDefault, systems.DrawHUD)

	ss.ecs = ecs

	factory.CreateCamera(ss.ecs, cfg.Camera)
	factory.CreatePointer(ss.ecs)
	factory.CreateGround(ss.ecs, ss.cursorCfg.Bounds)

	scene := assets.NewSceneLoader().MustLoadScene(ss.scenePath)
	for _, unit := range scene.Units {
		factory.CreateUnit(ss.ecs, unit)
	}
	ss.logger.Info().Str("scene", scene.Name).Int("units", len(scene.Units)).Msg("scene loaded")

	if _, err := factory.CreateCursor(ss.ecs, ss.cursorCfg, ss.logger); err != nil {
		panic("failed to create cursor: " + err.Error())
	}
}
