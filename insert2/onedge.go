package insert2

import "github.com/akmonengine/delaunay/mesh2"

// insertOnEdge splits the triangle(s) straddling edge e of triangle t
// by connecting p, which lies exactly on that edge, to the vertex (or
// vertices) opposite it. When e is a convex-hull boundary edge there is
// no neighbor across it and only t itself splits, into two triangles;
// otherwise both t and its neighbor split, into four.
func insertOnEdge(m *mesh2.Mesh, t, e, p int) (int, error) {
	tri, err := m.Triangle(t)
	if err != nil {
		return 0, err
	}
	ve := tri.Vertices[e]
	ea := tri.Vertices[(e+1)%3]
	eb := tri.Vertices[(e+2)%3]
	extOppEb := tri.Neighbors[(e+2)%3] // across edge (ve, ea)
	extOppEa := tri.Neighbors[(e+1)%3] // across edge (eb, ve)
	across := tri.Neighbors[e]

	if across == mesh2.Outside {
		return insertOnHullEdge(m, t, ve, ea, eb, extOppEb, extOppEa, p)
	}
	return insertOnInteriorEdge(m, t, across, ve, ea, eb, extOppEb, extOppEa, p)
}

// insertOnHullEdge handles p landing on a convex-hull boundary edge:
// triangle t alone splits into Ta=(ve,ea,p) and Tb=(ve,p,eb), with the
// new edges (ea,p) and (p,eb) becoming the new hull boundary.
func insertOnHullEdge(m *mesh2.Mesh, t, ve, ea, eb, extOppEb, extOppEa, p int) (int, error) {
	if err := m.Free(t); err != nil {
		return 0, err
	}

	ta := m.Alloc([3]int{ve, ea, p}, [3]int{mesh2.Outside, 0, extOppEb})
	tb := m.Alloc([3]int{ve, p, eb}, [3]int{mesh2.Outside, extOppEa, 0})
	if err := m.SetNeighbor(ta, 1, tb); err != nil {
		return 0, err
	}
	if err := m.SetNeighbor(tb, 2, ta); err != nil {
		return 0, err
	}
	if err := fixBacklink(m, extOppEb, t, ta); err != nil {
		return 0, err
	}
	if err := fixBacklink(m, extOppEa, t, tb); err != nil {
		return 0, err
	}

	bufp := getEdgeStack()
	stack := *bufp
	defer func() {
		*bufp = stack
		putEdgeStack(bufp)
	}()
	var err error
	stack, err = pushOppositeP(m, stack, ta, p)
	if err != nil {
		return 0, err
	}
	stack, err = pushOppositeP(m, stack, tb, p)
	if err != nil {
		return 0, err
	}
	if err := propagateFlips(m, stack, p); err != nil {
		return 0, err
	}
	return ta, nil
}

// insertOnInteriorEdge handles p landing on an edge shared by two live
// triangles: the quadrilateral ve-ea-vf-eb they form is fanned around p
// into four triangles.
func insertOnInteriorEdge(m *mesh2.Mesh, t, tprime, ve, ea, eb, extOppEb, extOppEa, p int) (int, error) {
	tprimeTri, err := m.Triangle(tprime)
	if err != nil {
		return 0, err
	}
	ePrime := indexOf(tprimeTri.Neighbors[:], t)
	if ePrime < 0 {
		return 0, ErrInconsistentMesh
	}
	vf := tprimeTri.Vertices[ePrime]
	eaLocal := localIndexOfVertex(tprimeTri.Vertices, ea)
	ebLocal := localIndexOfVertex(tprimeTri.Vertices, eb)
	if eaLocal < 0 || ebLocal < 0 {
		return 0, ErrInconsistentMesh
	}
	extOppEbPrime := tprimeTri.Neighbors[ebLocal] // across edge (ea, vf), opposite eb
	extOppEaPrime := tprimeTri.Neighbors[eaLocal]  // across edge (vf, eb), opposite ea

	if err := m.Free(t); err != nil {
		return 0, err
	}
	if err := m.Free(tprime); err != nil {
		return 0, err
	}

	boundary := []int{ve, ea, vf, eb}
	ext := []int{extOppEb, extOppEbPrime, extOppEaPrime, extOppEa}
	oldOwner := []int{t, tprime, tprime, t}

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
