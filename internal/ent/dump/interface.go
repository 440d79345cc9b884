package dump

import "github.com/gnames/objgraph/internal/ent/space"

// Dumper is the interface that wraps the Dump method.
type Dumper interface {
	// Dump walks all objects of a space and saves them to CSV files.
	Dump(space.Space) error
}
