package tags

import "github.com/yohamta/donburi"

var (
	Pickable             = donburi.NewTag().SetName("Pickable")
	Selected             = donburi.NewTag().SetName("Selected")
	SelectionHighlighter = donburi.NewTag().SetName("SelectionHighlighter")
	DragBox              = donburi.NewTag().SetName("DragBox")
	ConfirmOutline       = donburi.NewTag().SetName("ConfirmOutline")
	CursorReflector      = donburi.NewTag().SetName("CursorReflector")
	Visual               = donburi.NewTag().SetName("Visual")
	Unit                 = donburi.NewTag().SetName("Unit")
)

// Resolv tags for the selection spatial index
const (
	ResolvPickable = "pickable"
	ResolvQuery    = "query"
)
