package delaunay

import (
	"errors"
	"fmt"

	"github.com/akmonengine/delaunay/hilbert"
	"github.com/akmonengine/delaunay/insert2"
	"github.com/akmonengine/delaunay/locate"
	"github.com/akmonengine/delaunay/mesh2"
	"github.com/go-gl/mathgl/mgl64"
)

// BuildDelaunay2D computes the Delaunay triangulation of points. Input
// points are deduplicated (exact coordinate equality) before Hilbert
// ordering; duplicates are reported through a default logger and
// dropped. Resulting vertex indices in the returned mesh are into the
// post-deduplication point sequence, which keeps the input order of the
// first occurrence of each point.
func BuildDelaunay2D(points []mgl64.Vec2) (*mesh2.Mesh, error) {
	return BuildDelaunay2DWithOptions(points, Options{})
}

// BuildDelaunay2DWithOptions is BuildDelaunay2D with the given Options
// applied (a custom Logger, a mesh capacity hint).
func BuildDelaunay2DWithOptions(points []mgl64.Vec2, opt Options) (*mesh2.Mesh, error) {
	logger := opt.logger()

	pts := dedupPoints2(points, logger)
	order := hilbert.Order2D(pts)

	m := mesh2.New(pts)
	if opt.CapacityHint > 0 {
		m.Reserve(opt.CapacityHint)
	}

	seedTri, pending, err := seedTriangle(m, pts, order)
	if err != nil {
		return nil, err
	}

	hint := seedTri
	for _, idx := range pending {
		loc, err := locate.Walk2D(m, hint, pts[idx])
		if err != nil {
			if errors.Is(err, locate.ErrNonFiniteCoordinate) {
				return nil, fmt.Errorf("%w: %v", ErrInvalidInput, err)
			}
			return nil, fmt.Errorf("%w: %v", ErrInternal, err)
		}
		next, err := insert2.Insert(m, loc, idx)
		if err != nil {
			if isDuplicate2(err) {
				logger.Warn("duplicate input point dropped", "index", idx)
				continue
			}
			return nil, fmt.Errorf("%w: %v", ErrInternal, err)
		}
		hint = next
	}

	return m, nil
}
