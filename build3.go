package delaunay

import (
	"errors"
	"fmt"

	"github.com/akmonengine/delaunay/hilbert"
	"github.com/akmonengine/delaunay/insert3"
	"github.com/akmonengine/delaunay/locate"
	"github.com/akmonengine/delaunay/mesh3"
	"github.com/go-gl/mathgl/mgl64"
)

// BuildDelaunay3D computes the Delaunay tetrahedralization of points.
// It mirrors BuildDelaunay2D one dimension up: exact-coordinate dedup,
// Hilbert ordering, a single seed tetrahedron, then one locate+insert
// per remaining point carrying the last-modified tetrahedron forward as
// the next locate hint.
func BuildDelaunay3D(points []mgl64.Vec3) (*mesh3.Mesh, error) {
	return BuildDelaunay3DWithOptions(points, Options{})
}

// BuildDelaunay3DWithOptions is BuildDelaunay3D with the given Options
// applied (a custom Logger, a mesh capacity hint).
func BuildDelaunay3DWithOptions(points []mgl64.Vec3, opt Options) (*mesh3.Mesh, error) {
	logger := opt.logger()

	pts := dedupPoints3(points, logger)
	order := hilbert.Order3D(pts)

	m := mesh3.New(pts)
	if opt.CapacityHint > 0 {
		m.Reserve(opt.CapacityHint)
	}

	seedTet, pending, err := seedTetrahedron(m, pts, order)
	if err != nil {
		return nil, err
	}

	hint := seedTet
	for _, idx := range pending {
		loc, err := locate.Walk3D(m, hint, pts[idx])
		if err != nil {
			if errors.Is(err, locate.ErrNonFiniteCoordinate) {
				return nil, fmt.Errorf("%w: %v", ErrInvalidInput, err)
			}
			return nil, fmt.Errorf("%w: %v", ErrInternal, err)
		}
		next, err := insert3.Insert(m, loc, idx)
		if err != nil {
			if isDuplicate3(err) {
				logger.Warn("duplicate input point dropped", "index", idx)
				continue
			}
			if errors.Is(err, insert3.ErrGeometricDegeneracy) {
				return nil, fmt.Errorf("%w: %v", ErrGeometricDegeneracy, err)
			}
			return nil, fmt.Errorf("%w: %v", ErrInternal, err)
		}
		hint = next
	}

	return m, nil
}
