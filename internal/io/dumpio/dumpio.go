package dumpio

import (
	"errors"
	"fmt"
	"log/slog"
	"os"

	"github.com/dustin/go-humanize"
	"github.com/gnames/gnsys"
	"github.com/gnames/objgraph/internal/csvq"
	"github.com/gnames/objgraph/internal/ent/dump"
	"github.com/gnames/objgraph/internal/ent/kv"
	"github.com/gnames/objgraph/internal/ent/model"
	"github.com/gnames/objgraph/internal/ent/space"
	"github.com/gnames/objgraph/pkg/config"
)

type dumpio struct {
	cfg   config.Config
	seen  kv.Set
	files map[model.File]*os.File
	csvs  map[model.File]*csvq.Writer
	stats map[model.File]int
	count int
}

// New creates a Dumper that writes CSV files to cfg.BaseDir and keeps
// track of recorded objects in seen.
func New(cfg config.Config, seen kv.Set) (dump.Dumper, error) {
	res := dumpio{cfg: cfg, seen: seen}

	err := gnsys.MakeDir(res.cfg.BaseDir)
	if err != nil {
		slog.Error("Cannot create dump directory", "error", err)
		return nil, err
	}

	return &res, nil
}

// Dump walks all objects of the space and writes nodes and relationships
// to CSV files. The files are closed no matter how the walk ends.
func (d *dumpio) Dump(sp space.Space) (err error) {
	slog.Info("Dumping object space to CSV files", "dir", d.cfg.BaseDir)

	if err = d.seen.Open(); err != nil {
		slog.Error("Cannot open set of recorded objects", "error", err)
		return err
	}
	defer func() {
		err = errors.Join(err, d.seen.Close())
	}()

	if err = d.setup(); err != nil {
		return err
	}
	defer func() {
		err = errors.Join(err, d.close())
	}()

	if err = d.runPass(sp); err != nil {
		slog.Error("Object space walk failed", "error", err)
		return err
	}

	slog.Info("CSV dump is created",
		"objects", humanize.Comma(int64(d.stats[model.ObjectsFile])),
		"instance-variables", humanize.Comma(int64(d.stats[model.InstanceVariablesFile])),
		"object-classes", humanize.Comma(int64(d.stats[model.ObjectClassesFile])),
		"class-modules", humanize.Comma(int64(d.stats[model.ClassModulesFile])),
	)
	return nil
}

func (d *dumpio) setup() error {
	d.files = make(map[model.File]*os.File)
	d.csvs = make(map[model.File]*csvq.Writer)
	d.stats = make(map[model.File]int)
	d.count = 0

	for _, f := range model.Files {
		path := d.cfg.CSVPath(f.Name())
		file, err := os.Create(path)
		if err != nil {
			slog.Error("Cannot create CSV file", "path", path, "error", err)
			return errors.Join(err, d.close())
		}
		d.files[f] = file

		w := csvq.NewWriter(file)
		w.Comma = csvq.Tab
		w.Quote = csvq.SingleQuote
		d.csvs[f] = w
		if err = w.Write(f.Header()); err != nil {
			return errors.Join(err, d.close())
		}
	}
	return nil
}

// close flushes and closes every open file once.
func (d *dumpio) close() error {
	var errs []error
	for _, f := range model.Files {
		file, ok := d.files[f]
		if !ok {
			continue
		}
		if w, ok := d.csvs[f]; ok {
			errs = append(errs, w.Flush())
		}
		errs = append(errs, file.Close())
		delete(d.files, f)
		delete(d.csvs, f)
	}
	return errors.Join(errs...)
}

func (d *dumpio) runPass(sp space.Space) error {
	err := sp.Each(func(o space.Object) error {
		attrs, err := o.Attributes()
		if err != nil {
			return fmt.Errorf("cannot read attributes of object %d: %w", o.ID(), err)
		}

		if _, err = d.recordObject(o); err != nil {
			return err
		}

		for _, a := range attrs {
			if a.Value == nil {
				continue
			}
			if _, err = d.recordObject(a.Value); err != nil {
				return err
			}
			edge := model.AttributeEdge{
				OwnerID:  o.ID(),
				TargetID: a.Value.ID(),
				Name:     a.Name,
			}
			if err = d.write(model.InstanceVariablesFile, edge.Row()); err != nil {
				return err
			}
		}

		d.count++
		d.progress()
		return nil
	})

	if d.cfg.ProgressNum > 0 && d.count >= d.cfg.ProgressNum {
		fmt.Println()
	}
	return err
}

func (d *dumpio) progress() {
	if d.cfg.ProgressNum <= 0 || d.count%d.cfg.ProgressNum != 0 {
		return
	}
	fmt.Printf("\rProcessed %s objects, recorded %s",
		humanize.Comma(int64(d.count)), humanize.Comma(int64(d.seen.Len())))
}

func (d *dumpio) write(f model.File, row []string) error {
	w, ok := d.csvs[f]
	if !ok {
		return fmt.Errorf("file %s is not open", f)
	}
	if err := w.Write(row); err != nil {
		slog.Error("Cannot write to CSV file", "file", f, "error", err)
		return err
	}
	d.stats[f]++
	return nil
}
