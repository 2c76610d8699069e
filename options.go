package delaunay

// Options carries algorithm-level knobs that do not change the output
// mesh's semantics, configured by field assignment on a Go struct rather
// than a config file or environment variable, mirroring how the
// teacher's World is configured directly through its exported fields.
type Options struct {
	// Logger receives DuplicatePoint warnings. Nil uses a default
	// backed by zerolog that writes structured warnings to stderr.
	Logger Logger

	// CapacityHint, when positive, preallocates the mesh's backing
	// simplex slice to this many entries, avoiding reallocation during
	// the insertion loop for callers that know their input size.
	CapacityHint int
}

func (o Options) logger() Logger {
	if o.Logger != nil {
		return o.Logger
	}
	return newDefaultLogger()
}
