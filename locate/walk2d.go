package locate

import (
	"fmt"

	"github.com/akmonengine/delaunay/mesh2"
	"github.com/akmonengine/delaunay/predicate"
	"github.com/go-gl/mathgl/mgl64"
)

// Walk2D locates p starting the visibility walk at simplex start. A
// freed or out-of-range start is treated as "any live simplex".
func Walk2D(m *mesh2.Mesh, start int, p mgl64.Vec2) (Result, error) {
	cur := start
	if !m.IsLive(cur) {
		live := m.LiveIndices()
		if len(live) == 0 {
			return Result{}, ErrDegenerateMesh
		}
		cur = live[0]
	}

	entryFace := -1
	maxSteps := m.NumLive() + 8

	for step := 0; ; step++ {
		if step > maxSteps {
			return Result{}, fmt.Errorf("%w: visibility walk did not terminate", ErrDegenerateMesh)
		}

		tri, err := m.Triangle(cur)
		if err != nil {
			return Result{}, fmt.Errorf("%w: %v", ErrDegenerateMesh, err)
		}

		var signs [3]int
		for i := 0; i < 3; i++ {
			a := m.Vertex(tri.Vertices[(i+1)%3])
			b := m.Vertex(tri.Vertices[(i+2)%3])
			sign, err := predicate.Orient2D(a, b, p)
			if err != nil {
				return Result{}, fmt.Errorf("%w: %v", ErrNonFiniteCoordinate, err)
			}
			signs[i] = sign
		}

		negFace := -1
		for i := 0; i < 3; i++ {
			if i == entryFace {
				continue
			}
			if signs[i] < 0 {
				negFace = i
				break
			}
		}

		if negFace == -1 {
			zeros := 0
			var zeroFaces []int
			for i, s := range signs {
				if s == 0 {
					zeros++
					zeroFaces = append(zeroFaces, i)
				}
			}
			switch zeros {
			case 0:
				return Result{Kind: Inside, Simplex: cur}, nil
			case 1:
				return Result{Kind: OnEdge2D, Simplex: cur, Faces: zeroFaces}, nil
			case 2:
				vertexLocal := 3 - zeroFaces[0] - zeroFaces[1]
				return Result{Kind: OnVertex, Simplex: cur, Vertex: tri.Vertices[vertexLocal]}, nil
			default:
				return Result{}, fmt.Errorf("%w: degenerate triangle at simplex %d", ErrDegenerateMesh, cur)
			}
		}

		neighbor := tri.Neighbors[negFace]
		if neighbor == mesh2.Outside {
			return Result{Kind: Outside, Simplex: cur, Faces: []int{negFace}}, nil
		}

		neighborTri, err := m.Triangle(neighbor)
		if err != nil {
			return Result{}, fmt.Errorf("%w: %v", ErrDegenerateMesh, err)
		}
		entryFace = localIndexOfNeighbor(neighborTri.Neighbors[:], cur)
		cur = neighbor
	}
}

func localIndexOfNeighbor(neighbors []int, target int) int {
	for i, n := range neighbors {
		if n == target {
			return i
		}
	}
	return -1
}
