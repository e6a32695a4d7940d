package components

import (
	"github.com/automoto/rts-cursor/shared/raycast"
	"github.com/yohamta/donburi"
)

type CameraData struct {
	raycast.Camera
}

var Camera = donburi.NewComponentType[CameraData]()
