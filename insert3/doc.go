// Package insert3 implements the 3D Bowyer–Watson point-insertion
// engine: given a tetrahedral mesh already satisfying the Delaunay
// property and a new point's Locator classification, it grows a cavity
// of tetrahedra whose circumsphere contains the point, removes them,
// and rebuilds a star of new tetrahedra connecting the cavity boundary
// to the point.
package insert3
