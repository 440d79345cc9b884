package objgraph

var (
	// Version of objgraph.
	Version = "v0.1.0"

	// Build timestamp, set during compilation.
	Build = "n/a"
)
