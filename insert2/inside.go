package insert2

import "github.com/akmonengine/delaunay/mesh2"

// insertInside splits triangle t into three triangles by connecting p
// to each of its vertices, then restores the Delaunay property.
func insertInside(m *mesh2.Mesh, t, p int) (int, error) {
	tri, err := m.Triangle(t)
	if err != nil {
		return 0, err
	}
	v0, v1, v2 := tri.Vertices[0], tri.Vertices[1], tri.Vertices[2]
	n0, n1, n2 := tri.Neighbors[0], tri.Neighbors[1], tri.Neighbors[2]

	if err := m.Free(t); err != nil {
		return 0, err
	}

	boundary := []int{v0, v1, v2}
	ext := []int{n2, n0, n1}
	oldOwner := []int{t, t, t}

	newTris, err := starReplace(m, boundary, ext, oldOwner, p)
	if err != nil {
		return 0, err
	}

	bufp := getEdgeStack()
	stack := *bufp
	defer func() {
		*bufp = stack
		putEdgeStack(bufp)
	}()
	for _, idx := range newTris {
		stack, err = pushOppositeP(m, stack, idx, p)
		if err != nil {
			return 0, err
		}
	}
	if err := propagateFlips(m, stack, p); err != nil {
		return 0, err
	}
	return newTris[0], nil
}
