package config

import (
	"image/color"

	"github.com/go-gl/mathgl/mgl64"
)

type Config struct {
	Width  int
	Height int
	Title  string
}

// CameraConfig places the fixed perspective camera of the example scene.
type CameraConfig struct {
	Eye    mgl64.Vec3
	Target mgl64.Vec3
	FovY   float64 // degrees
	Near   float64
	Far    float64
}

// UIConfig contains colors for the example scene renderer.
type UIConfig struct {
	GroundColor   color.NRGBA
	GridColor     color.NRGBA
	UnitColor     color.NRGBA
	SelectedColor color.NRGBA
	HUDMarginX    int
	HUDMarginY    int
	TorusSegments int
}

type DebugConfig struct {
	ShowSpatialIndex bool // Draw resolv footprints of pickable units
	LogLevel         string
}

var C *Config

var Camera CameraConfig
var UI UIConfig
var Debug DebugConfig

func init() {
	C = &Config{
		Width:  960,
		Height: 640,
		Title:  "RTS Cursor",
	}

	Camera = CameraConfig{
		Eye:    mgl64.Vec3{-10, 22, -10},
		Target: mgl64.Vec3{12, 0, 12},
		FovY:   45,
		Near:   0.1,
		Far:    200,
	}

	UI = UIConfig{
		GroundColor:   color.NRGBA{R: 40, G: 40, B: 40, A: 255},
		GridColor:     color.NRGBA{R: 70, G: 70, B: 70, A: 255},
		UnitColor:     color.NRGBA{R: 120, G: 160, B: 220, A: 255},
		SelectedColor: color.NRGBA{R: 255, G: 255, B: 255, A: 255},
		HUDMarginX:    8,
		HUDMarginY:    8,
		TorusSegments: 24,
	}

	Debug = DebugConfig{
		ShowSpatialIndex: false,
		LogLevel:         "info",
	}
}
