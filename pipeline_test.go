package delaunay

import (
	"testing"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/stretchr/testify/require"
)

func TestBuildManyDelaunay2D(t *testing.T) {
	batches := [][]mgl64.Vec2{
		{{0, 0}, {1, 0}, {0, 1}},
		{{0, 0}, {1, 0}, {1, 1}, {0, 1}},
		{{0, 0}, {1, 0}},
	}
	meshes, errs := BuildManyDelaunay2D(batches, 2)
	require.Len(t, meshes, 3)
	require.Len(t, errs, 3)

	require.NoError(t, errs[0])
	require.Equal(t, 1, meshes[0].NumLive())
	require.NoError(t, errs[1])
	require.Equal(t, 2, meshes[1].NumLive())
	require.ErrorIs(t, errs[2], ErrInsufficientInput)
	require.Nil(t, meshes[2])
}

func TestBuildManyDelaunay3D(t *testing.T) {
	batches := [][]mgl64.Vec3{
		{{0, 0, 0}, {1, 0, 0}, {0, 1, 0}, {0, 0, 1}},
		{{0, 0, 0}, {1, 0, 0}, {2, 0, 0}},
	}
	meshes, errs := BuildManyDelaunay3D(batches, 0)
	require.Len(t, meshes, 2)
	require.NoError(t, errs[0])
	require.Equal(t, 1, meshes[0].NumLive())
	require.ErrorIs(t, errs[1], ErrInsufficientInput)
}
