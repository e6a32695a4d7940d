package factory

import (
	"github.com/automoto/rts-cursor/config"
	"github.com/automoto/rts-cursor/selection"
	"github.com/automoto/rts-cursor/visual"
	"github.com/rs/zerolog"
	"github.com/yohamta/donburi/ecs"
)

// CreateCursor builds the selection cursor of the world, with a spatial
// index unless the configured cell size is zero.
func CreateCursor(ecs *ecs.ECS, cfg config.CursorConfig, logger zerolog.Logger) (*selection.Cursor, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	opts := []selection.Option{selection.WithLogger(logger)}
	if cfg.IndexCellSize > 0 {
		idx := selection.NewSpatialIndex(ecs.World, cfg.Bounds, cfg.IndexCellSize)
		opts = append(opts, selection.WithSpatialIndex(idx))
	}

	cursor, err := selection.New(cfg, visual.NewWorldHost(ecs.World), opts...)
	if err != nil {
		return nil, err
	}
	selection.Attach(ecs.World, cursor)
	return cursor, nil
}
