// Command buildmesh demonstrates the two top-level entry points: a 2D
// Delaunay triangulation of a unit square and a 3D Delaunay
// tetrahedralization of its cube-extruded counterpart, then prints each
// mesh's live simplex count and boundary faces.
package main

import (
	"fmt"

	"github.com/akmonengine/delaunay"
	"github.com/akmonengine/delaunay/mesh2"
	"github.com/akmonengine/delaunay/mesh3"
	"github.com/go-gl/mathgl/mgl64"
)

func main() {
	mesh, err := delaunay.BuildDelaunay2D([]mgl64.Vec2{
		{0, 0}, {1, 0}, {1, 1}, {0, 1}, {0.5, 0.5},
	})
	if err != nil {
		fmt.Println("2D build failed:", err)
		return
	}
	fmt.Printf("2D mesh: %d triangles\n", mesh.NumLive())
	boundaryEdges := 0
	for _, idx := range mesh.LiveIndices() {
		tri, _ := mesh.Triangle(idx)
		for _, nb := range tri.Neighbors {
			if nb == mesh2.Outside {
				boundaryEdges++
			}
		}
	}
	fmt.Printf("2D mesh: %d boundary edges\n", boundaryEdges)

	volume, err := delaunay.BuildDelaunay3D([]mgl64.Vec3{
		{0, 0, 0}, {1, 0, 0}, {1, 1, 0}, {0, 1, 0},
		{0, 0, 1}, {1, 0, 1}, {1, 1, 1}, {0, 1, 1},
	})
	if err != nil {
		fmt.Println("3D build failed:", err)
		return
	}
	fmt.Printf("3D mesh: %d tetrahedra\n", volume.NumLive())
	boundaryFaces := 0
	for _, idx := range volume.LiveIndices() {
		tet, _ := volume.Tetrahedron(idx)
		for _, nb := range tet.Neighbors {
			if nb == mesh3.Outside {
				boundaryFaces++
			}
		}
	}
	fmt.Printf("3D mesh: %d boundary faces\n", boundaryFaces)
}
