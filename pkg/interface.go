package objgraph

import (
	"github.com/gnames/objgraph/internal/ent/dump"
	"github.com/gnames/objgraph/internal/ent/load"
	"github.com/gnames/objgraph/internal/ent/space"
)

// ObjGraph is an interface for dumping object spaces and importing the
// dumps into graph stores.
type ObjGraph interface {
	// Dump saves objects of a space to CSV files.
	Dump(dump.Dumper, space.Space) error

	// Import loads CSV files into a database.
	Import(load.Importer) error
}
