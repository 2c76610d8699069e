// Package delaunay builds Delaunay triangulations of 2D point sets and
// Delaunay tetrahedralizations of 3D point sets. It wires the predicate,
// hilbert, mesh2/mesh3, locate, and insert2/insert3 packages into the two
// top-level entry points BuildDelaunay2D and BuildDelaunay3D: points are
// deduplicated and Hilbert-ordered, a non-degenerate seed simplex is
// found, then every remaining point is located and inserted in order,
// each insertion carrying the last-modified simplex forward as the next
// locate hint.
//
// The core is single-threaded and synchronous: a build is one call that
// runs to completion or returns an error, with no persistent state, no
// files, and no environment dependence. Multiple builds may run
// concurrently from different goroutines since each owns its own mesh.
package delaunay
