package selection

import (
	"github.com/automoto/rts-cursor/visual"
	"github.com/yohamta/donburi"
)

// CursorData makes a cursor reachable from the systems of its world.
type CursorData struct {
	*Cursor
}

var Component = donburi.NewComponentType[CursorData]()

// Attach stores c on a new entity of w.
func Attach(w donburi.World, c *Cursor) *donburi.Entry {
	entry := w.Entry(w.Create(Component))
	Component.Set(entry, &CursorData{Cursor: c})
	return entry
}

// First returns the cursor attached to w, if any.
func First(w donburi.World) (*Cursor, bool) {
	entry, ok := Component.First(w)
	if !ok {
		return nil, false
	}
	return Component.Get(entry).Cursor, true
}

func (c *Cursor) Host() visual.Host { return c.host }

func (c *Cursor) Index() *SpatialIndex { return c.index }
