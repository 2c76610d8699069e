// Package mesh3 is the index-based tetrahedron mesh used by the 3D
// Delaunay engine. It mirrors mesh2's free-list slot allocator one
// dimension up: a Mesh owns every Tetrahedron record, clients hold int
// indices, and a freed slot is recycled by the next Alloc. The Mesh
// enforces only slot validity, never the Delaunay property; SetNeighbor
// writes one side of a link and does not update or check the mirror
// link, so neighbor-link symmetry is not maintained by the Mesh.
package mesh3
