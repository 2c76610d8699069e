// Package insert2 inserts a single point into a 2D Delaunay mesh and
// restores the Delaunay property locally via Lawson edge flips. Insert
// dispatches on the point's locate.Result: an interior point splits its
// triangle in three, an on-edge point splits the pair of triangles
// straddling that edge in four (or, on a hull edge, the lone triangle
// in two), a duplicate vertex is reported and skipped, and a point
// outside the hull extends it with a fan of new triangles. Every case
// ends by draining a stack of candidate edges through the same
// in_circle-driven flip loop.
package insert2
