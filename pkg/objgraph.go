package objgraph

import (
	"log/slog"

	"github.com/gnames/objgraph/internal/ent/dump"
	"github.com/gnames/objgraph/internal/ent/load"
	"github.com/gnames/objgraph/internal/ent/space"
	"github.com/gnames/objgraph/pkg/config"
)

// objgraph is an implementation of ObjGraph interface.
type objgraph struct {
	cfg config.Config
}

// New creates a new instance of ObjGraph.
func New(
	cfg config.Config,
) ObjGraph {
	res := objgraph{
		cfg: cfg}
	return &res
}

// Dump walks the object space and writes CSV files.
func (o *objgraph) Dump(d dump.Dumper, sp space.Space) error {
	return d.Dump(sp)
}

// Import loads CSV files from the configured directory.
func (o *objgraph) Import(i load.Importer) error {
	slog.Info("Importing CSV dump", "dir", o.cfg.BaseDir)
	return i.Import()
}
