// Package selection turns mouse drags on the ground into a selected set of
// pickable entities.
package selection

import (
	"time"

	"github.com/ErikKalkoken/go-set"
	"github.com/automoto/rts-cursor/shared/gamemath"
	"github.com/go-gl/mathgl/mgl64"
	"github.com/yohamta/donburi"
)

type Phase int

const (
	PhaseIdle Phase = iota
	PhaseDragging
	PhaseConfirmed
)

func (p Phase) String() string {
	switch p {
	case PhaseIdle:
		return "idle"
	case PhaseDragging:
		return "dragging"
	case PhaseConfirmed:
		return "confirmed"
	}
	return "unknown"
}

// Selection is what the cursor has picked so far.
type Selection struct {
	DragBox      *donburi.Entity
	Selected     set.Set[donburi.Entity]
	JustSelected bool // set on release, consumed by the resolver
}

// State is the mutable part of the cursor.
type State struct {
	Location        mgl64.Vec3 // latest clamped ray hit
	PressedLocation mgl64.Vec3 // drag anchor, Sentinel when not dragging
	Corner1         mgl64.Vec3 // rectangle min, Sentinel until confirmed
	Corner2         mgl64.Vec3 // rectangle max
	Selection       Selection

	boxCenter mgl64.Vec3
	boxScale  mgl64.Vec3
}

func newState() State {
	return State{
		PressedLocation: gamemath.Sentinel,
		Corner1:         gamemath.Sentinel,
		Corner2:         gamemath.Sentinel,
	}
}

func (s *State) Phase() Phase {
	switch {
	case s.Selection.JustSelected:
		return PhaseConfirmed
	case s.Selection.DragBox != nil:
		return PhaseDragging
	}
	return PhaseIdle
}

// DragBox returns the logical center and signed scale of the drag box.
func (s *State) DragBox() (center, scale mgl64.Vec3) {
	return s.boxCenter, s.boxScale
}

// Frame is everything the cursor samples once per frame.
type Frame struct {
	JustPressed  bool
	Pressed      bool
	JustReleased bool
	Hit          *mgl64.Vec3 // nil when the cursor ray hit nothing
	Delta        time.Duration
}
