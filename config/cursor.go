package config

import (
	"errors"
	"fmt"
	"image/color"
	"time"

	"github.com/automoto/rts-cursor/shared/gamemath"
	"golang.org/x/image/colornames"
)

var (
	ErrInvalidBounds = errors.New("bounds min exceeds max")
	ErrEmptyPlayArea = errors.New("padding leaves no play area")
	ErrInvalidBlink  = errors.New("invalid blink settings")
	ErrInvalidSize   = errors.New("thickness and tolerances must not be negative")
)

// Aesthetics holds the colors and line sizes of every selection visual.
type Aesthetics struct {
	BoundingBoxColor      color.NRGBA `mapstructure:"boundingBoxColor" json:"boundingBoxColor"`
	SelectedAreaBoxColor  color.NRGBA `mapstructure:"selectedAreaBoxColor" json:"selectedAreaBoxColor"`
	LineThickness         float64     `mapstructure:"lineThickness" json:"lineThickness"`
	SelectedLineThickness float64     `mapstructure:"selectedLineThickness" json:"selectedLineThickness"`
}

// BlinkConfig drives the confirmation outline fade.
type BlinkConfig struct {
	Speed    float64       `mapstructure:"speed" json:"speed"`
	Duration float64       `mapstructure:"duration" json:"duration"`
	Count    int           `mapstructure:"count" json:"count"`
	Tick     time.Duration `mapstructure:"tick" json:"tick"`
}

// CursorConfig is everything the selection cursor needs at construction.
// It is treated as immutable once a cursor has been built from it.
type CursorConfig struct {
	Bounds     gamemath.Bounds2D `mapstructure:"bounds" json:"bounds"`
	Aesthetics Aesthetics        `mapstructure:"aesthetics" json:"aesthetics"`
	Blink      BlinkConfig       `mapstructure:"blink" json:"blink"`

	// Padding shrinks the bounds when clamping the cursor location.
	Padding float64 `mapstructure:"padding" json:"padding"`
	// YInclusionLimit is the vertical slack granted to every candidate.
	YInclusionLimit float64 `mapstructure:"yInclusionLimit" json:"yInclusionLimit"`
	// TorusOffset is added to the footprint radius of a highlight ring.
	TorusOffset float64 `mapstructure:"torusOffset" json:"torusOffset"`
	// BoxLift raises the drag box so it does not clip with the ground.
	BoxLift float64 `mapstructure:"boxLift" json:"boxLift"`
	// IndexCellSize is the resolv cell size in world units; 0 disables the spatial index.
	IndexCellSize float64 `mapstructure:"indexCellSize" json:"indexCellSize"`
}

// Cursor is the default cursor configuration.
var Cursor CursorConfig

func init() {
	Cursor = DefaultCursor()
}

// DefaultCursor returns the stock configuration on a 32x32 play area.
func DefaultCursor() CursorConfig {
	return CursorConfig{
		Bounds: gamemath.Bounds2D{MinX: 0, MinZ: 0, MaxX: 32, MaxZ: 32},
		Aesthetics: Aesthetics{
			BoundingBoxColor:      withAlpha(colornames.Lime, 0.33),
			SelectedAreaBoxColor:  withAlpha(colornames.Yellow, 0.33),
			LineThickness:         0.1,
			SelectedLineThickness: 0.05,
		},
		Blink: BlinkConfig{
			Speed:    0.01,
			Duration: 0.08,
			Count:    2,
			Tick:     10 * time.Millisecond,
		},
		Padding:         0,
		YInclusionLimit: 1,
		TorusOffset:     0.1,
		BoxLift:         0.1,
		IndexCellSize:   1,
	}
}

// Validate rejects configurations that would make clamping or blinking
// indeterminate at runtime.
func (c CursorConfig) Validate() error {
	if !c.Bounds.Ordered() {
		return fmt.Errorf("%w: %+v", ErrInvalidBounds, c.Bounds)
	}
	if c.Padding < 0 || !c.Bounds.Fits(c.Padding) {
		return fmt.Errorf("%w: padding %g on %+v", ErrEmptyPlayArea, c.Padding, c.Bounds)
	}
	if c.Blink.Duration <= 0 || c.Blink.Speed < 0 || c.Blink.Count < 0 || c.Blink.Tick <= 0 {
		return fmt.Errorf("%w: %+v", ErrInvalidBlink, c.Blink)
	}
	if c.Aesthetics.LineThickness < 0 || c.Aesthetics.SelectedLineThickness < 0 ||
		c.YInclusionLimit < 0 || c.TorusOffset < 0 || c.IndexCellSize < 0 {
		return ErrInvalidSize
	}
	return nil
}

func withAlpha(c color.RGBA, alpha float64) color.NRGBA {
	return color.NRGBA{R: c.R, G: c.G, B: c.B, A: uint8(alpha * 255)}
}
