package assets

import (
	"testing"

	"github.com/automoto/rts-cursor/shared/gamemath"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSceneNames(t *testing.T) {
	names, err := NewSceneLoader().SceneNames()
	require.NoError(t, err)
	assert.Contains(t, names, DefaultScene)
}

func TestLoadDefaultScene(t *testing.T) {
	scene, err := NewSceneLoader().LoadScene(DefaultScene)
	require.NoError(t, err)

	assert.Equal(t, gamemath.Bounds2D{MinX: 0, MinZ: 0, MaxX: 32, MaxZ: 32}, scene.Bounds)
	require.Len(t, scene.Units, 9)

	first := scene.Units[0]
	assert.Equal(t, "scout", first.Name)
	assert.Equal(t, 4.5, first.X)
	assert.Equal(t, 4.5, first.Z)
	assert.Equal(t, 1.0, first.Width)
	assert.Equal(t, 1.0, first.Depth)
	assert.Equal(t, 1.0, first.Height)

	for _, u := range scene.Units {
		assert.True(t, u.X >= scene.Bounds.MinX && u.X <= scene.Bounds.MaxX, "unit %+v", u)
		assert.True(t, u.Z >= scene.Bounds.MinZ && u.Z <= scene.Bounds.MaxZ, "unit %+v", u)
		assert.Greater(t, u.Height, 0.0)
	}
}

func TestLoadSceneMissing(t *testing.T) {
	_, err := NewSceneLoader().LoadScene("scenes/nope.tmx")
	assert.Error(t, err)
	assert.Panics(t, func() { NewSceneLoader().MustLoadScene("scenes/nope.tmx") })
}
