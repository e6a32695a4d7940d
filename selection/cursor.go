package selection

import (
	"slices"

	"github.com/automoto/rts-cursor/components"
	"github.com/automoto/rts-cursor/config"
	"github.com/automoto/rts-cursor/shared/gamemath"
	"github.com/automoto/rts-cursor/tags"
	"github.com/automoto/rts-cursor/visual"
	"github.com/go-gl/mathgl/mgl64"
	"github.com/rs/zerolog"
	"github.com/yohamta/donburi"
)

const (
	boxName       = "SelectionBox"
	highlightName = "SelectionHighlighter"
)

// Cursor owns the selection state and drives it one frame at a time. It is
// not safe for concurrent use.
type Cursor struct {
	cfg   config.CursorConfig
	host  visual.Host
	query SceneQuery
	index *SpatialIndex
	log   zerolog.Logger

	state State
}

type Option func(*Cursor)

func WithLogger(l zerolog.Logger) Option {
	return func(c *Cursor) { c.log = l }
}

// WithSceneQuery replaces the default lookup of transforms and extents.
func WithSceneQuery(q SceneQuery) Option {
	return func(c *Cursor) { c.query = q }
}

// WithSpatialIndex narrows candidates through idx instead of scanning every
// pickable entity. The index reads world transforms, so it is ignored when a
// custom SceneQuery is set.
func WithSpatialIndex(idx *SpatialIndex) Option {
	return func(c *Cursor) { c.index = idx }
}

// New validates cfg and returns an idle cursor.
func New(cfg config.CursorConfig, host visual.Host, opts ...Option) (*Cursor, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	c := &Cursor{
		cfg:   cfg,
		host:  host,
		log:   zerolog.Nop(),
		state: newState(),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c, nil
}

func (c *Cursor) Config() config.CursorConfig { return c.cfg }

func (c *Cursor) State() *State { return &c.state }

// Selected returns the selected entities in ascending order.
func (c *Cursor) Selected() []donburi.Entity {
	return slices.Sorted(c.state.Selection.Selected.All())
}

func (c *Cursor) IsSelected(e donburi.Entity) bool {
	return c.state.Selection.Selected.Contains(e)
}

// Update runs one frame: hit, drag, resolve, then blink.
func (c *Cursor) Update(w donburi.World, f Frame) {
	c.ObserveHit(f.Hit)
	c.UpdateDrag(w, f)
	c.ResolveSelection(w)
	UpdateBlinkers(w, c.host, f.Delta)
}

// ObserveHit moves the cursor to the clamped hit. Without a hit the last
// location is kept.
func (c *Cursor) ObserveHit(hit *mgl64.Vec3) {
	if hit == nil {
		return
	}
	c.state.Location = gamemath.KeepInBounds(c.cfg.Bounds, *hit, c.cfg.Padding)
}

// UpdateDrag applies the button edges of f to the state machine.
func (c *Cursor) UpdateDrag(w donburi.World, f Frame) {
	if f.JustPressed {
		c.press(w)
	}
	if f.Pressed && c.state.Selection.DragBox != nil {
		c.drag(w)
	}
	if f.JustReleased {
		c.release(w)
	}
}

func (c *Cursor) press(w donburi.World) {
	s := &c.state
	s.PressedLocation = s.Location
	s.Corner1 = gamemath.Sentinel
	s.Corner2 = gamemath.Sentinel

	if s.Selection.DragBox != nil {
		c.host.Destroy(*s.Selection.DragBox)
		s.Selection.DragBox = nil
	}

	s.boxCenter = s.Location
	s.boxScale = mgl64.Vec3{}
	box := c.host.Create(visual.Spec{
		Name: boxName,
		Mesh: components.Cube(1),
		Material: components.MaterialData{
			BaseColor: c.cfg.Aesthetics.BoundingBoxColor,
			Emissive:  c.cfg.Aesthetics.BoundingBoxColor,
			Blend:     true,
		},
		Transform: c.boxTransform(),
		Tags:      []donburi.IComponentType{tags.DragBox},
	})
	s.Selection.DragBox = &box

	if s.Selection.Selected.Size() > 0 {
		c.clearSelection(w)
	}

	c.log.Debug().
		Float64("x", s.PressedLocation.X()).
		Float64("z", s.PressedLocation.Z()).
		Msg("selection drag started")
}

func (c *Cursor) drag(w donburi.World) {
	s := &c.state
	diff := s.Location.Sub(s.PressedLocation)
	s.boxCenter = s.PressedLocation.Add(diff.Mul(0.5))
	s.boxScale = mgl64.Vec3{diff.X(), 0, diff.Z()}

	if s.Selection.DragBox == nil || !w.Valid(*s.Selection.DragBox) {
		return
	}
	components.Transform.SetValue(w.Entry(*s.Selection.DragBox), c.boxTransform())
}

func (c *Cursor) release(w donburi.World) {
	s := &c.state
	if s.Selection.DragBox != nil {
		c.drag(w)
		s.Corner1, s.Corner2 = gamemath.RectanglePoints(s.boxCenter, s.boxScale)
		c.host.Destroy(*s.Selection.DragBox)
		s.Selection.DragBox = nil
		s.Selection.JustSelected = true
	}
	s.PressedLocation = gamemath.Sentinel
}

// boxTransform is the rendered drag box, raised off the ground.
func (c *Cursor) boxTransform() components.TransformData {
	t := components.NewTransform(c.state.boxCenter.Add(mgl64.Vec3{0, c.cfg.BoxLift, 0}))
	t.Scale = c.state.boxScale
	return t
}

func (c *Cursor) clearSelection(w donburi.World) {
	c.state.Selection.Selected.Clear()

	var marked, rings []donburi.Entity
	tags.Selected.Each(w, func(entry *donburi.Entry) {
		marked = append(marked, entry.Entity())
	})
	tags.SelectionHighlighter.Each(w, func(entry *donburi.Entry) {
		rings = append(rings, entry.Entity())
	})

	for _, e := range marked {
		w.Entry(e).RemoveComponent(tags.Selected)
	}
	for _, e := range rings {
		c.host.Destroy(e)
	}
}
