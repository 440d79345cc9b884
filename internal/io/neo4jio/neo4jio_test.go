package neo4jio_test

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	. "github.com/onsi/ginkgo"
	. "github.com/onsi/gomega"

	"github.com/gnames/objgraph/internal/ent/load"
	"github.com/gnames/objgraph/internal/io/neo4jio"
	"github.com/gnames/objgraph/pkg/config"
)

var _ = Describe("Importer", func() {
	var dir, dbPath, argsPath string

	BeforeEach(func() {
		var err error
		dir, err = os.MkdirTemp("", "objgraph-import")
		Expect(err).ToNot(HaveOccurred())
		dbPath = filepath.Join(dir, "graph.db")
		argsPath = filepath.Join(dir, "args.txt")

		Expect(os.MkdirAll(filepath.Join(dbPath, "old"), 0755)).To(Succeed())
		Expect(os.WriteFile(filepath.Join(dbPath, "old", "store"), []byte("x"), 0644)).
			To(Succeed())
	})

	AfterEach(func() {
		os.RemoveAll(dir)
	})

	// script creates a fake neo4j-import that records its arguments and
	// whether the old database still existed.
	script := func(exitCode int) string {
		path := filepath.Join(dir, "neo4j-import")
		body := fmt.Sprintf(`#!/bin/sh
if [ -e %q ]; then echo "db exists" > %q; exit 3; fi
for a in "$@"; do echo "$a" >> %q; done
exit %d
`, dbPath, argsPath, argsPath, exitCode)
		Expect(os.WriteFile(path, []byte(body), 0755)).To(Succeed())
		return path
	}

	expectedArgs := func(cfg config.Config) []string {
		return []string{
			"--delimiter", "TAB",
			"--quote", "|",
			"--into", dbPath,
			"--nodes", cfg.CSVPath("objects"),
			"--relationships:INSTANCE_VARIABLE", cfg.CSVPath("instance_variables"),
			"--relationships:HAS_CLASS", cfg.CSVPath("object_classes"),
			"--relationships:INCLUDES_MODULE", cfg.CSVPath("class_modules"),
		}
	}

	readArgs := func() []string {
		bs, err := os.ReadFile(argsPath)
		Expect(err).ToNot(HaveOccurred())
		return strings.Split(strings.TrimSuffix(string(bs), "\n"), "\n")
	}

	It("removes the database and runs neo4j-import", func() {
		cfg := config.New(
			config.OptBaseDir(filepath.Join(dir, "csv")),
			config.OptDBPath(dbPath),
			config.OptImportBin(script(0)),
		)
		Expect(neo4jio.New(cfg).Import()).To(Succeed())
		Expect(readArgs()).To(Equal(expectedArgs(cfg)))
	})

	It("fails with the command line on non-zero exit", func() {
		bin := script(1)
		cfg := config.New(
			config.OptBaseDir(filepath.Join(dir, "csv")),
			config.OptDBPath(dbPath),
			config.OptImportBin(bin),
		)
		err := neo4jio.New(cfg).Import()
		Expect(err).To(HaveOccurred())

		var ierr *load.ImportError
		Expect(errors.As(err, &ierr)).To(BeTrue())
		command := neo4jio.CommandLine(bin, expectedArgs(cfg))
		Expect(ierr.Command).To(Equal(command))
		Expect(err.Error()).To(Equal("unable to run: " + command))

		// database was removed before the failing command
		Expect(readArgs()).To(Equal(expectedArgs(cfg)))
		_, err = os.Stat(dbPath)
		Expect(os.IsNotExist(err)).To(BeTrue())
	})

	It("fails when the executable is missing", func() {
		cfg := config.New(
			config.OptDBPath(dbPath),
			config.OptImportBin(filepath.Join(dir, "missing")),
		)
		err := neo4jio.New(cfg).Import()
		var ierr *load.ImportError
		Expect(errors.As(err, &ierr)).To(BeTrue())
		_, err = os.Stat(dbPath)
		Expect(os.IsNotExist(err)).To(BeTrue())
	})

	It("refuses an empty database path", func() {
		cfg := config.New(config.OptDBPath(""))
		Expect(neo4jio.New(cfg).Import()).ToNot(Succeed())
	})
})

var _ = Describe("CommandLine", func() {
	It("quotes arguments with special characters", func() {
		res := neo4jio.CommandLine("./db/bin/neo4j-import",
			[]string{"--quote", "|", "--into", "my db"})
		Expect(res).To(Equal(`./db/bin/neo4j-import --quote "|" --into "my db"`))
	})
})
