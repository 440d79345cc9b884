package config

import (
	"path/filepath"
)

// Config is a struct that holds configuration parameters for the package.
type Config struct {
	// BaseDir is a directory where CSV dump files are created.
	BaseDir string

	// DBPath is a directory of a Neo4j database created by the import.
	// Any previous content of this path is removed before the import.
	DBPath string

	// ImportBin is a path to the Neo4j bulk-import executable.
	ImportBin string

	// WithBadger switches the membership set of visited objects from memory
	// to an on-disk key-value store.
	WithBadger bool

	// SeenKVDir is a directory to keep key-value store of visited objects.
	SeenKVDir string

	// ProgressNum is a number of enumerated objects between progress
	// reports. Zero disables progress output.
	ProgressNum int

	// PgHost is a host name for PostgreSQL.
	PgHost string

	// PgUser is a user name for PostgreSQL.
	PgUser string

	// PgPass is a password for PostgreSQL.
	PgPass string

	// PgDB is a database name for PostgreSQL.
	PgDB string

	// BatchSize is a number of records to be saved in one transaction.
	BatchSize int
}

// Option type allows to change settings for Config.
type Option func(*Config)

// OptBaseDir sets a directory for CSV files.
func OptBaseDir(d string) Option {
	return func(cfg *Config) {
		cfg.BaseDir = d
	}
}

// OptDBPath sets the target directory of the Neo4j import.
func OptDBPath(p string) Option {
	return func(cfg *Config) {
		cfg.DBPath = p
	}
}

// OptImportBin sets the path to neo4j-import executable.
func OptImportBin(b string) Option {
	return func(cfg *Config) {
		cfg.ImportBin = b
	}
}

// OptWithBadger keeps visited objects in a key-value store instead of
// memory.
func OptWithBadger(b bool) Option {
	return func(cfg *Config) {
		cfg.WithBadger = b
	}
}

// OptSeenKVDir sets a directory for the key-value store of visited objects.
func OptSeenKVDir(d string) Option {
	return func(cfg *Config) {
		cfg.SeenKVDir = d
	}
}

// OptProgressNum sets how often the progress of a dump is reported.
func OptProgressNum(i int) Option {
	return func(cfg *Config) {
		cfg.ProgressNum = i
	}
}

// OptPgHost sets host name for PostgreSQL
func OptPgHost(h string) Option {
	return func(cfg *Config) {
		cfg.PgHost = h
	}
}

// OptPgUser sets user for PostgreSQL
func OptPgUser(u string) Option {
	return func(cfg *Config) {
		cfg.PgUser = u
	}
}

// OptPgPass sets password for PostgreSQL
func OptPgPass(p string) Option {
	return func(cfg *Config) {
		cfg.PgPass = p
	}
}

// OptPgDB sets database name for PostgreSQL
func OptPgDB(d string) Option {
	return func(cfg *Config) {
		cfg.PgDB = d
	}
}

// OptBatchSize sets the number of rows saved to PostgreSQL at once.
func OptBatchSize(i int) Option {
	return func(cfg *Config) {
		cfg.BatchSize = i
	}
}

// New creates a Config with default settings modified by options.
func New(opts ...Option) Config {
	res := Config{
		BaseDir:     ".",
		DBPath:      filepath.Join("db", "data", "graph.db"),
		ImportBin:   "./db/bin/neo4j-import",
		ProgressNum: 100_000,
		PgHost:      "0.0.0.0",
		PgUser:      "postgres",
		PgPass:      "postgres",
		PgDB:        "objgraph",
		BatchSize:   50_000,
	}

	for _, opt := range opts {
		opt(&res)
	}

	if res.SeenKVDir == "" {
		res.SeenKVDir = filepath.Join(res.BaseDir, "seen-kv")
	}
	if res.BatchSize <= 0 {
		res.BatchSize = 50_000
	}

	return res
}

// CSVPath returns the path of a dump file with the given base name.
func (cfg Config) CSVPath(base string) string {
	return filepath.Join(cfg.BaseDir, base+".csv")
}
