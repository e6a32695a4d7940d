package components

import "github.com/yohamta/donburi"

// ActionState represents the temporal state of an action
type ActionState struct {
	Pressed      bool // Currently held down
	JustPressed  bool // Pressed this frame
	JustReleased bool // Released this frame
}

// PointerData stores the select button for the current and previous frame and
// the latest cursor position in screen pixels.
// JustPressed/JustReleased are computed on-demand by comparing frames.
type PointerData struct {
	Current  bool
	Previous bool
	X, Y     int
	Moved    bool
}

var Pointer = donburi.NewComponentType[PointerData]()

// Select returns the edge state of the select button.
func (p *PointerData) Select() ActionState {
	return ActionState{
		Pressed:      p.Current,
		JustPressed:  p.Current && !p.Previous,
		JustReleased: !p.Current && p.Previous,
	}
}

// Push advances the buffers by one frame.
func (p *PointerData) Push(pressed bool, x, y int) {
	p.Previous = p.Current
	p.Current = pressed
	p.Moved = x != p.X || y != p.Y
	p.X, p.Y = x, y
}
