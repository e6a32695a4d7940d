package factory

import (
	"github.com/automoto/rts-cursor/archetypes"
	"github.com/automoto/rts-cursor/assets"
	"github.com/automoto/rts-cursor/components"
	"github.com/automoto/rts-cursor/config"
	"github.com/automoto/rts-cursor/shared/gamemath"
	"github.com/go-gl/mathgl/mgl64"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// CreateUnit places a pickable unit standing on the ground.
func CreateUnit(ecs *ecs.ECS, spawn assets.UnitSpawn) *donburi.Entry {
	unit := archetypes.Unit.Spawn(ecs.World)

	half := mgl64.Vec3{spawn.Width / 2, spawn.Height / 2, spawn.Depth / 2}
	components.Transform.SetValue(unit, components.NewTransform(mgl64.Vec3{spawn.X, half.Y(), spawn.Z}))
	components.Extents.SetValue(unit, components.ExtentsData{HalfExtents: half})
	components.Mesh.SetValue(unit, components.Box(half.Mul(-1), half))
	components.Material.SetValue(unit, components.MaterialData{
		BaseColor:      config.UI.UnitColor,
		Emissive:       config.UI.UnitColor,
		CastsShadow:    true,
		ReceivesShadow: true,
	})
	components.Name.SetValue(unit, components.NameData{Value: spawn.Name})

	return unit
}

// CreateGround spans the bounds with a flat surface the cursor ray can hit.
func CreateGround(ecs *ecs.ECS, bounds gamemath.Bounds2D) *donburi.Entry {
	ground := archetypes.Ground.Spawn(ecs.World)

	half := mgl64.Vec3{bounds.Width() / 2, 0, bounds.Depth() / 2}
	components.Transform.SetValue(ground, components.NewTransform(bounds.Center(0)))
	components.Extents.SetValue(ground, components.ExtentsData{HalfExtents: half})
	components.Mesh.SetValue(ground, components.Box(half.Mul(-1), half))
	components.Material.SetValue(ground, components.MaterialData{
		BaseColor:      config.UI.GroundColor,
		ReceivesShadow: true,
	})

	return ground
}
