// Package locate implements the visibility walk: given a query point and
// a starting simplex, it crosses neighbor links until it finds the
// simplex containing the point, or reaches a convex-hull boundary face
// the point lies outside of. Walk2D and Walk3D classify the result as
// Inside, on a bounding face/edge, coincident with a vertex, or Outside.
package locate
