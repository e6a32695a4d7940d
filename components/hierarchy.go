package components

import "github.com/yohamta/donburi"

// HierarchyData records parent/child links between entities so a parent can
// take its children with it when destroyed.
type HierarchyData struct {
	Parent    donburi.Entity
	HasParent bool
	Children  []donburi.Entity
}

var Hierarchy = donburi.NewComponentType[HierarchyData]()

// RemoveChild drops child from the list, keeping the order of the rest.
func (h *HierarchyData) RemoveChild(child donburi.Entity) {
	for i, c := range h.Children {
		if c == child {
			h.Children = append(h.Children[:i], h.Children[i+1:]...)
			return
		}
	}
}
