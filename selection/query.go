package selection

import (
	"errors"
	"fmt"

	"github.com/automoto/rts-cursor/components"
	"github.com/automoto/rts-cursor/visual"
	"github.com/yohamta/donburi"
)

var (
	ErrEntityNotFound = errors.New("entity not found")
	ErrNoTransform    = errors.New("entity has no transform")
	ErrNoExtents      = errors.New("entity has no extents")
)

// SceneQuery looks up where a candidate is and how big it is.
type SceneQuery interface {
	Lookup(e donburi.Entity) (components.TransformData, components.ExtentsData, error)
}

// WorldQuery reads transforms and extents straight from a donburi world.
// The returned translation is in world space.
type WorldQuery struct {
	World donburi.World
}

func (q WorldQuery) Lookup(e donburi.Entity) (components.TransformData, components.ExtentsData, error) {
	if !q.World.Valid(e) {
		return components.TransformData{}, components.ExtentsData{}, fmt.Errorf("lookup %d: %w", e, ErrEntityNotFound)
	}
	entry := q.World.Entry(e)
	if !entry.HasComponent(components.Transform) {
		return components.TransformData{}, components.ExtentsData{}, fmt.Errorf("lookup %d: %w", e, ErrNoTransform)
	}
	if !entry.HasComponent(components.Extents) {
		return components.TransformData{}, components.ExtentsData{}, fmt.Errorf("lookup %d: %w", e, ErrNoExtents)
	}

	tr := *components.Transform.Get(entry)
	tr.Translation = visual.WorldTranslation(q.World, e)
	return tr, *components.Extents.Get(entry), nil
}
