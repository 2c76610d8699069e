package delaunay

import (
	"github.com/go-gl/mathgl/mgl64"
)

// dedupPoints2 returns the input with exact duplicates removed (points
// equal under ==, so -0 and +0 match), keeping the first occurrence and
// the input order of the survivors. Duplicates found here are reported
// through logger and never reach Hilbert ordering or the mesh.
func dedupPoints2(points []mgl64.Vec2, logger Logger) []mgl64.Vec2 {
	seen := make(map[mgl64.Vec2]int, len(points))
	out := make([]mgl64.Vec2, 0, len(points))
	for i, p := range points {
		if first, ok := seen[p]; ok {
			logger.Warn("duplicate input point dropped", "index", i, "duplicate_of", first, "x", p.X(), "y", p.Y())
			continue
		}
		seen[p] = i
		out = append(out, p)
	}
	return out
}

// dedupPoints3 is dedupPoints2 one dimension up.
func dedupPoints3(points []mgl64.Vec3, logger Logger) []mgl64.Vec3 {
	seen := make(map[mgl64.Vec3]int, len(points))
	out := make([]mgl64.Vec3, 0, len(points))
	for i, p := range points {
		if first, ok := seen[p]; ok {
			logger.Warn("duplicate input point dropped", "index", i, "duplicate_of", first, "x", p.X(), "y", p.Y(), "z", p.Z())
			continue
		}
		seen[p] = i
		out = append(out, p)
	}
	return out
}
