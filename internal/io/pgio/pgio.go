package pgio

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strconv"
	"strings"

	"github.com/dustin/go-humanize"
	"github.com/gnames/objgraph/internal/csvq"
	"github.com/gnames/objgraph/internal/ent/load"
	"github.com/gnames/objgraph/internal/ent/model"
	"github.com/gnames/objgraph/pkg/config"
	"github.com/jackc/pgx/v5/pgxpool"
	"golang.org/x/sync/errgroup"
)

var (
	objectColumns = []string{"id", "inspect", "labels"}
	relColumns    = []string{"start_id", "end_id", "type", "variable"}
)

// pgio loads CSV dump files into PostgreSQL.
type pgio struct {
	cfg config.Config
	db  *pgxpool.Pool
}

// New returns an Importer that recreates objects and relationships tables
// in PostgreSQL from CSV dump files.
func New(cfg config.Config) (load.Importer, error) {
	res := pgio{cfg: cfg}
	db, err := pgxConn(cfg)
	if err != nil {
		return nil, err
	}
	res.db = db
	return &res, nil
}

// Import resets the database and copies all CSV files into it.
func (p *pgio) Import() error {
	var err error
	defer p.db.Close()

	if err = p.resetDB(); err != nil {
		return err
	}
	if err = p.migrate(); err != nil {
		return err
	}

	for _, f := range model.Files {
		tbl, columns := "relationships", relColumns
		if f == model.ObjectsFile {
			tbl, columns = "objects", objectColumns
		}
		if err = p.importFile(f, tbl, columns); err != nil {
			slog.Error("Cannot import file", "file", f, "error", err)
			return err
		}
	}
	return nil
}

func (p *pgio) importFile(f model.File, tbl string, columns []string) error {
	slog.Info("Importing CSV file", "file", f, "table", tbl)
	chIn := make(chan []string)

	g, ctx := errgroup.WithContext(context.Background())
	g.Go(func() error {
		defer close(chIn)
		return p.loadCSV(ctx, f, chIn)
	})
	g.Go(func() error {
		return p.saveRows(ctx, f, tbl, columns, chIn)
	})

	if err := g.Wait(); err != nil {
		return err
	}
	slog.Info("Uploaded CSV file", "file", f, "table", tbl)
	return nil
}

func (p *pgio) loadCSV(
	ctx context.Context,
	f model.File,
	chIn chan<- []string,
) error {
	path := p.cfg.CSVPath(f.Name())
	file, err := os.Open(path)
	if err != nil {
		slog.Error("Cannot open csv file", "path", path, "error", err)
		return err
	}
	defer file.Close()
	r := csvq.NewReader(file)

	// skip header
	if _, err = r.Read(); err != nil {
		slog.Error("Cannot read the header", "path", path, "error", err)
		return err
	}

	for {
		row, err := r.Read()
		if err == io.EOF {
			return nil
		}
		if err != nil {
			slog.Error("Cannot read csv file", "path", path, "error", err)
			return err
		}
		select {
		case <-ctx.Done():
			return ctx.Err()
		case chIn <- row:
		}
	}
}

func (p *pgio) saveRows(
	ctx context.Context,
	f model.File,
	tbl string,
	columns []string,
	chIn <-chan []string,
) error {
	var total int64
	batch := make([][]any, 0, p.cfg.BatchSize)

	flush := func() error {
		if len(batch) == 0 {
			return nil
		}
		n, err := p.insertRows(ctx, tbl, columns, batch)
		if err != nil {
			return err
		}
		total += n
		fmt.Printf("\r%s", strings.Repeat(" ", 40))
		fmt.Printf("\rSaved %s rows to %s", humanize.Comma(total), tbl)
		batch = batch[:0]
		return nil
	}

	for row := range chIn {
		vals, err := rowValues(f, row)
		if err != nil {
			return err
		}
		batch = append(batch, vals)
		if len(batch) >= p.cfg.BatchSize {
			if err = flush(); err != nil {
				return err
			}
		}
	}
	if err := flush(); err != nil {
		return err
	}
	if total > 0 {
		fmt.Println()
	}
	return nil
}

// rowValues converts a CSV row of a dump file to values of a table row.
func rowValues(f model.File, row []string) ([]any, error) {
	if len(row) < len(f.Header()) {
		return nil, fmt.Errorf("%s: expected %d fields, got %d",
			f, len(f.Header()), len(row))
	}

	start, err := parseID(row[0])
	if err != nil {
		return nil, fmt.Errorf("%s: %w", f, err)
	}
	if f == model.ObjectsFile {
		return []any{start, row[1], row[2]}, nil
	}

	end, err := parseID(row[1])
	if err != nil {
		return nil, fmt.Errorf("%s: %w", f, err)
	}
	var variable string
	if len(row) > 2 {
		variable = row[2]
	}
	return []any{start, end, string(f.RelType()), variable}, nil
}

// parseID reads an unsigned identity and stores its bits in int64, so
// identities above math.MaxInt64 become negative bigint values. Use
// ToID to get the original identity back.
func parseID(s string) (int64, error) {
	u, err := strconv.ParseUint(s, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("bad identity %q: %w", s, err)
	}
	return int64(u), nil
}

// ToID converts a bigint identity from the database to the identity
// written in CSV files.
func ToID(i int64) uint64 {
	return uint64(i)
}
