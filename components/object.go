package components

import (
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
)

// ObjectData is the footprint of a pickable entity in the spatial index.
type ObjectData struct {
	*resolv.Object
}

var Object = donburi.NewComponentType[ObjectData]()

// SpaceData holds the broad-phase grid of pickable footprints.
type SpaceData struct {
	*resolv.Space
	Resolution float64 // resolv units per world unit
	OriginX    float64
	OriginZ    float64
}

var Space = donburi.NewComponentType[SpaceData]()
