package locate

// Kind classifies where a query point landed relative to the simplex
// the walk terminated on.
type Kind int

const (
	// Inside means p lies strictly within the simplex's interior.
	Inside Kind = iota
	// OnFace means p lies on exactly one bounding face of a tetrahedron
	// (3D only; a 2D walk reports OnEdge2D instead, since a triangle's
	// bounding faces are already edges).
	OnFace
	// OnEdge2D means p lies on exactly one bounding edge of a triangle.
	OnEdge2D
	// OnEdge3D means p lies on the edge shared by exactly two of a
	// tetrahedron's bounding faces.
	OnEdge3D
	// OnVertex means p coincides with an existing mesh vertex.
	OnVertex
	// Outside means p lies outside the convex hull, beyond the
	// returned boundary face of the returned simplex.
	Outside
)

// Result is the outcome of a visibility walk.
type Result struct {
	Kind Kind

	// Simplex is the triangle/tetrahedron the walk terminated on. For
	// Outside it is the last interior simplex reached, whose boundary
	// face p lies beyond.
	Simplex int

	// Faces holds the local face/edge indices with zero orientation
	// sign (OnFace, OnEdge2D, OnEdge3D), or the single boundary face
	// crossed (Outside). Unused (nil) for Inside and OnVertex.
	Faces []int

	// Vertex is the mesh vertex index p coincides with. Only
	// meaningful when Kind == OnVertex.
	Vertex int
}
