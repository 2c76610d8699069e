package insert2

import (
	"fmt"

	"github.com/akmonengine/delaunay/locate"
	"github.com/akmonengine/delaunay/mesh2"
)

// Insert applies loc (the Locator's classification of vertex p against
// m) to the mesh: splitting, duplicate-reporting, or hull-extending as
// appropriate, then restoring the Delaunay property by edge flips. It
// returns a triangle index near p suitable as the next Locator hint.
//
// For loc.Kind == locate.OnVertex, Insert performs no mesh edit and
// returns an error wrapping ErrDuplicatePoint; callers should report
// this as a soft warning and continue with the next input point.
func Insert(m *mesh2.Mesh, loc locate.Result, p int) (int, error) {
	switch loc.Kind {
	case locate.Inside:
		return insertInside(m, loc.Simplex, p)
	case locate.OnEdge2D:
		return insertOnEdge(m, loc.Simplex, loc.Faces[0], p)
	case locate.OnVertex:
		return loc.Simplex, fmt.Errorf("%w: vertex %d", ErrDuplicatePoint, loc.Vertex)
	case locate.Outside:
		return insertOutside(m, loc.Simplex, loc.Faces[0], p)
	default:
		return 0, fmt.Errorf("%w: %v", ErrUnexpectedLocation, loc.Kind)
	}
}
