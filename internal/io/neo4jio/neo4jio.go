package neo4jio

import (
	"errors"
	"log/slog"
	"os"
	"os/exec"
	"strconv"
	"strings"

	"github.com/gnames/objgraph/internal/ent/load"
	"github.com/gnames/objgraph/internal/ent/model"
	"github.com/gnames/objgraph/pkg/config"
)

// importQuote is given to neo4j-import as the quote character. It differs
// from the quote used to write the CSV files.
const importQuote = "|"

type neo4jio struct {
	cfg config.Config
}

// New creates an Importer that runs the Neo4j bulk-import executable.
func New(cfg config.Config) load.Importer {
	return &neo4jio{cfg: cfg}
}

// Import removes the previous database and recreates it from CSV files.
func (n *neo4jio) Import() error {
	if n.cfg.DBPath == "" {
		return errors.New("path to the database is empty")
	}

	slog.Info("Removing previous database", "path", n.cfg.DBPath)
	if err := os.RemoveAll(n.cfg.DBPath); err != nil {
		slog.Error("Cannot remove database", "path", n.cfg.DBPath, "error", err)
		return err
	}

	args := n.args()
	command := CommandLine(n.cfg.ImportBin, args)

	slog.Info("Importing", "into", n.cfg.DBPath)
	slog.Info("Running command", "command", command)
	cmd := exec.Command(n.cfg.ImportBin, args...)
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr
	if err := cmd.Run(); err != nil {
		slog.Error("Import failed", "command", command, "error", err)
		return &load.ImportError{Command: command, Err: err}
	}

	slog.Info("Import is finished", "path", n.cfg.DBPath)
	return nil
}

func (n *neo4jio) args() []string {
	res := []string{
		"--delimiter", "TAB",
		"--quote", importQuote,
		"--into", n.cfg.DBPath,
		"--nodes", n.cfg.CSVPath(model.ObjectsFile.Name()),
	}
	for _, f := range model.Files {
		rel := f.RelType()
		if rel == "" {
			continue
		}
		res = append(res,
			"--relationships:"+string(rel), n.cfg.CSVPath(f.Name()))
	}
	return res
}

// CommandLine renders a command for logs and error messages. Arguments
// with spaces or shell metacharacters are quoted.
func CommandLine(bin string, args []string) string {
	parts := make([]string, 0, len(args)+1)
	for _, v := range append([]string{bin}, args...) {
		if v == "" || strings.ContainsAny(v, " \t\n|&;<>()$`\\\"'*?") {
			v = strconv.Quote(v)
		}
		parts = append(parts, v)
	}
	return strings.Join(parts, " ")
}
