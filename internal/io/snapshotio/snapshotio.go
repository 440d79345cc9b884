package snapshotio

import (
	"fmt"
	"log/slog"
	"math"
	"os"
	"path/filepath"
	"strings"

	"github.com/dustin/go-humanize"
	"github.com/gnames/gnfmt"
	"github.com/gnames/objgraph/internal/ent/space"
)

// encoder picks gob for files with .gob extension and JSON for the rest.
func encoder(path string) gnfmt.Encoder {
	if strings.EqualFold(filepath.Ext(path), ".gob") {
		return gnfmt.GNgob{}
	}
	return gnfmt.GNjson{Pretty: true}
}

// Load reads a snapshot file and builds an object space from it.
func Load(path string) (*space.Graph, error) {
	bs, err := os.ReadFile(path)
	if err != nil {
		slog.Error("Cannot read snapshot", "path", path, "error", err)
		return nil, err
	}

	var snap Snapshot
	if err = encoder(path).Decode(bs, &snap); err != nil {
		slog.Error("Cannot decode snapshot", "path", path, "error", err)
		return nil, err
	}

	g, err := Build(snap)
	if err != nil {
		return nil, err
	}
	slog.Info("Snapshot is loaded",
		"path", path, "objects", humanize.Comma(int64(g.Len())))
	return g, nil
}

// Save writes a snapshot to a file.
func Save(path string, snap Snapshot) error {
	bs, err := encoder(path).Encode(snap)
	if err != nil {
		return err
	}
	return os.WriteFile(path, bs, 0644)
}

// Build converts a snapshot to an object space. Meta objects of the space
// get identities larger than any identity of the snapshot, or the lowest
// free identities if the snapshot uses the largest possible one.
func Build(snap Snapshot) (*space.Graph, error) {
	var maxID uint64
	kinds := make(map[uint64]space.Kind, len(snap.Objects))
	for _, e := range snap.Objects {
		if e.ID == 0 {
			return nil, fmt.Errorf("object identity must be positive")
		}
		kindName := e.Kind
		if kindName == "" {
			kindName = space.PlainKind.String()
		}
		k, ok := space.NewKind(kindName)
		if !ok {
			return nil, fmt.Errorf("object %d: unknown kind %q", e.ID, e.Kind)
		}
		kinds[e.ID] = k
		maxID = max(maxID, e.ID)
	}

	opt := space.OptFirstID(maxID + 1)
	if maxID == math.MaxUint64 {
		opt = space.OptReserved(func(id uint64) bool {
			_, ok := kinds[id]
			return ok
		})
	}
	g := space.NewGraph(opt)
	for _, e := range snap.Objects {
		n, err := g.Add(e.ID)
		if err != nil {
			return nil, err
		}
		n.SetName(e.Name)
		n.SetInspect(e.Inspect)
	}

	b := builder{g: g, kinds: kinds}
	for _, e := range snap.Objects {
		if err := b.link(e); err != nil {
			return nil, err
		}
	}
	return g, nil
}

type builder struct {
	g     *space.Graph
	kinds map[uint64]space.Kind
}

func (b builder) link(e Entry) error {
	n, _ := b.g.Get(e.ID)

	switch b.kinds[e.ID] {
	case space.ClassKind:
		n.SetClass(b.g.ClassMeta())
		super, err := b.class(e.Superclass)
		if err != nil {
			return fmt.Errorf("class %d: %w", e.ID, err)
		}
		n.SetSuperclass(super)
	case space.ModuleKind:
		n.SetClass(b.g.ModuleMeta())
	default:
		class, err := b.class(e.Class)
		if err != nil {
			return fmt.Errorf("object %d: %w", e.ID, err)
		}
		n.SetClass(class)
	}

	for _, id := range e.Modules {
		m, err := b.resolve(id, space.ModuleKind)
		if err != nil {
			return fmt.Errorf("object %d: %w", e.ID, err)
		}
		n.Include(m)
	}

	for _, a := range e.Attributes {
		v, ok := b.g.Get(a.ID)
		if !ok || !b.known(a.ID) {
			return fmt.Errorf("object %d: attribute %s references unknown object %d",
				e.ID, a.Name, a.ID)
		}
		n.SetAttr(a.Name, v)
	}
	return nil
}

func (b builder) class(id uint64) (*space.Node, error) {
	if id == 0 {
		return b.g.ObjectClass(), nil
	}
	return b.resolve(id, space.ClassKind)
}

func (b builder) resolve(id uint64, k space.Kind) (*space.Node, error) {
	kind, ok := b.kinds[id]
	if !ok {
		return nil, fmt.Errorf("unknown %s %d", k, id)
	}
	if kind != k {
		return nil, fmt.Errorf("object %d is a %s, not a %s", id, kind, k)
	}
	n, _ := b.g.Get(id)
	return n, nil
}

func (b builder) known(id uint64) bool {
	_, ok := b.kinds[id]
	return ok
}
