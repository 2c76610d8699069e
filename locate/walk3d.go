package locate

import (
	"fmt"

	"github.com/akmonengine/delaunay/mesh3"
	"github.com/akmonengine/delaunay/predicate"
	"github.com/go-gl/mathgl/mgl64"
)

// face3 gives, for each local vertex index opposite a tetrahedron face,
// the other three local indices in the order that reproduces the
// tetrahedron's own positive orientation when tested against the
// opposite vertex (orient3d(face..., opposite) > 0).
var face3 = [4][3]int{
	{1, 3, 2},
	{0, 2, 3},
	{0, 3, 1},
	{0, 1, 2},
}

// Walk3D locates p starting the visibility walk at simplex start. A
// freed or out-of-range start is treated as "any live simplex".
func Walk3D(m *mesh3.Mesh, start int, p mgl64.Vec3) (Result, error) {
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

		tet, err := m.Tetrahedron(cur)
		if err != nil {
			return Result{}, fmt.Errorf("%w: %v", ErrDegenerateMesh, err)
		}

		var signs [4]int
		for i := 0; i < 4; i++ {
			idx := face3[i]
			a := m.Vertex(tet.Vertices[idx[0]])
			b := m.Vertex(tet.Vertices[idx[1]])
			c := m.Vertex(tet.Vertices[idx[2]])
			sign, err := predicate.Orient3D(a, b, c, p)
			if err != nil {
				return Result{}, fmt.Errorf("%w: %v", ErrNonFiniteCoordinate, err)
			}
			signs[i] = sign
		}

		negFace := -1
		for i := 0; i < 4; i++ {
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
				return Result{Kind: OnFace, Simplex: cur, Faces: zeroFaces}, nil
			case 2:
				return Result{Kind: OnEdge3D, Simplex: cur, Faces: zeroFaces}, nil
			case 3:
				vertexLocal := 6 - zeroFaces[0] - zeroFaces[1] - zeroFaces[2]
				return Result{Kind: OnVertex, Simplex: cur, Vertex: tet.Vertices[vertexLocal]}, nil
			default:
				return Result{}, fmt.Errorf("%w: degenerate tetrahedron at simplex %d", ErrDegenerateMesh, cur)
			}
		}

		neighbor := tet.Neighbors[negFace]
		if neighbor == mesh3.Outside {
			return Result{Kind: Outside, Simplex: cur, Faces: []int{negFace}}, nil
		}

		neighborTet, err := m.Tetrahedron(neighbor)
		if err != nil {
			return Result{}, fmt.Errorf("%w: %v", ErrDegenerateMesh, err)
		}
		entryFace = localIndexOfNeighbor3(neighborTet.Neighbors[:], cur)
		cur = neighbor
	}
}

func localIndexOfNeighbor3(neighbors []int, target int) int {
	for i, n := range neighbors {
		if n == target {
			return i
		}
	}
	return -1
}
