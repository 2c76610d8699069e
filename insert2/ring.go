package insert2

import (
	"fmt"

	"github.com/akmonengine/delaunay/mesh2"
)

// starReplace fans a closed boundary polygon [boundary[0], boundary[1],
// ..., boundary[k-1]] around p, creating k new triangles
// (boundary[i], boundary[i+1 mod k], p). ext[i] is the existing
// triangle across edge (boundary[i], boundary[i+1 mod k]) (or
// mesh2.Outside), and oldOwner[i] is the about-to-be-stale triangle
// index whose backlink inside ext[i] must now point at the new
// triangle instead.
//
// Callers must free every old triangle being replaced before calling
// starReplace, so the new Allocs recycle those slots.
func starReplace(m *mesh2.Mesh, boundary, ext, oldOwner []int, p int) ([]int, error) {
	k := len(boundary)
	newTris := make([]int, k)
	for i := 0; i < k; i++ {
		v0 := boundary[i]
		v1 := boundary[(i+1)%k]
		newTris[i] = m.Alloc([3]int{v0, v1, p}, [3]int{0, 0, 0})
	}
	for i := 0; i < k; i++ {
		next := newTris[(i+1)%k]
		prev := newTris[(i-1+k)%k]
		if err := m.SetNeighbor(newTris[i], 0, next); err != nil {
			return nil, err
		}
		if err := m.SetNeighbor(newTris[i], 1, prev); err != nil {
			return nil, err
		}
		if err := m.SetNeighbor(newTris[i], 2, ext[i]); err != nil {
			return nil, err
		}
		if err := fixBacklink(m, ext[i], oldOwner[i], newTris[i]); err != nil {
			return nil, err
		}
	}
	return newTris, nil
}

// fixBacklink updates owner's neighbor slot that currently points at
// oldIdx to point at newIdx instead. A no-op when owner is the outside
// sentinel.
func fixBacklink(m *mesh2.Mesh, owner, oldIdx, newIdx int) error {
	if owner == mesh2.Outside {
		return nil
	}
	neighbors, err := m.Neighbors(owner)
	if err != nil {
		return err
	}
	local := indexOf(neighbors[:], oldIdx)
	if local < 0 {
		return fmt.Errorf("%w: triangle %d has no neighbor link to %d", ErrInconsistentMesh, owner, oldIdx)
	}
	return m.SetNeighbor(owner, local, newIdx)
}

// indexOf returns the first index of target in s, or -1.
func indexOf(s []int, target int) int {
	for i, v := range s {
		if v == target {
			return i
		}
	}
	return -1
}

// localIndexOfVertex returns the local slot of vertex v within
// tri.Vertices, or -1 if v is not one of them.
func localIndexOfVertex(vertices [3]int, v int) int {
	return indexOf(vertices[:], v)
}
