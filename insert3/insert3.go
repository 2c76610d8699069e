package insert3

import (
	"fmt"

	"github.com/akmonengine/delaunay/locate"
	"github.com/akmonengine/delaunay/mesh3"
)

// Insert applies loc (the Locator's classification of vertex p against
// m) to the mesh via a Bowyer-Watson cavity rebuild, returning a
// tetrahedron index near p suitable as the next Locator hint.
//
// For loc.Kind == locate.OnVertex, Insert performs no mesh edit and
// returns an error wrapping ErrDuplicatePoint; callers should report
// this as a soft warning and continue with the next input point.
func Insert(m *mesh3.Mesh, loc locate.Result, p int) (int, error) {
	var seeds []int
	switch loc.Kind {
	case locate.Inside, locate.OnFace, locate.OnEdge3D:
		seeds = []int{loc.Simplex}
	case locate.OnVertex:
		return loc.Simplex, fmt.Errorf("%w: vertex %d", ErrDuplicatePoint, loc.Vertex)
	case locate.Outside:
		visible, err := visibleHullFaces(m, loc.Simplex, loc.Faces[0], p)
		if err != nil {
			return 0, err
		}
		seeds = visible
	default:
		return 0, fmt.Errorf("%w: %v", ErrUnexpectedLocation, loc.Kind)
	}

	w := getCavityWorkspace()
	defer putCavityWorkspace(w)

	order, err := buildCavity(w, m, seeds, p)
	if err != nil {
		return 0, err
	}
	faces, err := cavityBoundary(m, w.inCavity, order)
	if err != nil {
		return 0, err
	}

	newTets, err := buildStar(m, faces, p)
	if err != nil {
		return 0, err
	}

	for _, idx := range order {
		if err := m.Free(idx); err != nil {
			return 0, err
		}
	}

	return newTets[0], nil
}
