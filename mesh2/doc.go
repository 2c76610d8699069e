// Package mesh2 is the index-based triangle mesh used by the 2D Delaunay
// engine. A Mesh owns every triangle record in a dense, reusable slot
// array: clients hold int indices rather than pointers, and a freed slot
// is recycled by the next Alloc rather than left as a hole. The Mesh only
// enforces slot validity; SetNeighbor writes one side of a link and does
// not update or check the mirror link, so neighbor-link symmetry is not
// maintained by the Mesh. It has no notion of the Delaunay property
// itself, which is the Inserter's job.
package mesh2
