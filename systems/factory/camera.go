package factory

import (
	"github.com/automoto/rts-cursor/archetypes"
	"github.com/automoto/rts-cursor/components"
	"github.com/automoto/rts-cursor/config"
	"github.com/automoto/rts-cursor/shared/raycast"
	"github.com/go-gl/mathgl/mgl64"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

func CreateCamera(ecs *ecs.ECS, cam config.CameraConfig) *donburi.Entry {
	camera := archetypes.Camera.Spawn(ecs.World)
	components.Camera.Set(camera, &components.CameraData{
		Camera: raycast.Camera{
			Eye:    cam.Eye,
			Target: cam.Target,
			Up:     mgl64.Vec3{0, 1, 0},
			FovY:   cam.FovY,
			Near:   cam.Near,
			Far:    cam.Far,
		},
	})
	return camera
}

func CreatePointer(ecs *ecs.ECS) *donburi.Entry {
	return archetypes.Pointer.Spawn(ecs.World)
}
