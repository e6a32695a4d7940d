package assets

import (
	"embed"
	"fmt"
	"path/filepath"
	"sort"

	"github.com/automoto/rts-cursor/shared/gamemath"
	"github.com/lafriks/go-tiled"
)

//go:embed all:scenes
var assetFS embed.FS

const (
	DefaultScene = "scenes/skirmish.tmx"

	unitsGroup    = "Units"
	defaultHeight = 1.0
)

// UnitSpawn places one pickable unit. X/Z is the footprint center; all sizes
// are world units, one tile per unit.
type UnitSpawn struct {
	Name   string
	X, Z   float64
	Width  float64
	Depth  float64
	Height float64
}

// Scene is the ground and the units of an example map.
type Scene struct {
	Name   string
	Bounds gamemath.Bounds2D
	Units  []UnitSpawn
}

type SceneLoader struct{}

func NewSceneLoader() *SceneLoader {
	return &SceneLoader{}
}

// SceneNames lists the embedded maps.
func (l *SceneLoader) SceneNames() ([]string, error) {
	entries, err := assetFS.ReadDir("scenes")
	if err != nil {
		return nil, fmt.Errorf("read scenes directory: %w", err)
	}

	var names []string
	for _, entry := range entries {
		if !entry.IsDir() && filepath.Ext(entry.Name()) == ".tmx" {
			names = append(names, filepath.Join("scenes", entry.Name()))
		}
	}
	return names, nil
}

func (l *SceneLoader) MustLoadScene(path string) Scene {
	scene, err := l.LoadScene(path)
	if err != nil {
		panic(err)
	}
	return scene
}

// LoadScene reads a TMX map. The map size gives the bounds and the objects of
// the "Units" group become units.
func (l *SceneLoader) LoadScene(path string) (Scene, error) {
	sceneMap, err := tiled.LoadFile(path, tiled.WithFileSystem(assetFS))
	if err != nil {
		return Scene{}, fmt.Errorf("load scene %s: %w", path, err)
	}
	if sceneMap.TileWidth <= 0 || sceneMap.TileHeight <= 0 {
		return Scene{}, fmt.Errorf("load scene %s: invalid tile size %dx%d", path, sceneMap.TileWidth, sceneMap.TileHeight)
	}

	tileW := float64(sceneMap.TileWidth)
	tileH := float64(sceneMap.TileHeight)
	scene := Scene{
		Name: path,
		Bounds: gamemath.Bounds2D{
			MaxX: float64(sceneMap.Width),
			MaxZ: float64(sceneMap.Height),
		},
		Units: []UnitSpawn{},
	}

	for _, og := range sceneMap.ObjectGroups {
		if og.Name != unitsGroup {
			continue
		}
		for _, o := range og.Objects {
			unit := UnitSpawn{
				Name:   o.Name,
				X:      (o.X + o.Width/2) / tileW,
				Z:      (o.Y + o.Height/2) / tileH,
				Width:  o.Width / tileW,
				Depth:  o.Height / tileH,
				Height: o.Properties.GetFloat("height"),
			}
			if w := o.Properties.GetFloat("width"); w > 0 {
				unit.Width = w
			}
			if d := o.Properties.GetFloat("depth"); d > 0 {
				unit.Depth = d
			}
			if unit.Height <= 0 {
				unit.Height = defaultHeight
			}
			scene.Units = append(scene.Units, unit)
		}
	}

	// Sort units by position for a stable spawn order
	sort.Slice(scene.Units, func(i, j int) bool {
		if scene.Units[i].Z != scene.Units[j].Z {
			return scene.Units[i].Z < scene.Units[j].Z
		}
		return scene.Units[i].X < scene.Units[j].X
	})

	return scene, nil
}
