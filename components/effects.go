package components

import (
	"time"

	"github.com/automoto/rts-cursor/shared/gamemath"
	"github.com/yohamta/donburi"
)

// BlinkerData fades a visual in and out a fixed number of times, then
// destroys it. Elapsed runs between 0 and DurationConst and maps onto alpha.
type BlinkerData struct {
	Tick          time.Duration // fixed step between updates
	Accumulated   time.Duration // time since the last step
	Speed         float64
	Elapsed       float64
	DurationConst float64
	Blinks        int     // fade-outs left before destruction
	Direction     float64 // -1 fading out, +1 fading in
}

var Blinker = donburi.NewComponentType[BlinkerData]()

// NewBlinker starts fully visible and fading out.
func NewBlinker(speed, duration float64, blinks int, tick time.Duration) BlinkerData {
	return BlinkerData{
		Tick:          tick,
		Speed:         speed,
		Elapsed:       duration,
		DurationConst: duration,
		Blinks:        blinks,
		Direction:     -1,
	}
}

// Step advances the blinker by one frame of length dt. stepped is false when
// the tick has not elapsed yet; expired is true once every blink is spent and
// the owner should be destroyed.
func (b *BlinkerData) Step(dt time.Duration) (stepped, expired bool) {
	b.Accumulated += dt
	if b.Accumulated < b.Tick {
		return false, false
	}
	if b.Tick > 0 {
		b.Accumulated %= b.Tick
	} else {
		b.Accumulated = 0
	}

	if b.Blinks <= 0 {
		return true, true
	}

	if b.Elapsed < 0 {
		b.Elapsed = 0
		b.Direction = 1
		b.Blinks--
	}
	if b.Elapsed > b.DurationConst {
		b.Elapsed = b.DurationConst
		b.Direction = -1
	}

	b.Elapsed += (b.Speed + dt.Seconds()) * b.Direction
	return true, false
}

// Alpha maps Elapsed onto [0,1]. Overshoots are left for the caller to clamp.
func (b *BlinkerData) Alpha() float64 {
	return gamemath.MapRange(b.Elapsed, 0, b.DurationConst, 0, 1)
}
