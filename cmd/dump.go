/*
Copyright © 2020 NAME HERE <EMAIL ADDRESS>

Licensed under the Apache License, Version 2.0 (the "License");
you may not use this file except in compliance with the License.
You may obtain a copy of the License at

	http://www.apache.org/licenses/LICENSE-2.0

Unless required by applicable law or agreed to in writing, software
distributed under the License is distributed on an "AS IS" BASIS,
WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
See the License for the specific language governing permissions and
limitations under the License.
*/
package cmd

import (
	"log/slog"
	"os"

	"github.com/gnames/objgraph/internal/ent/kv"
	"github.com/gnames/objgraph/internal/io/dumpio"
	"github.com/gnames/objgraph/internal/io/kvio"
	"github.com/gnames/objgraph/internal/io/neo4jio"
	"github.com/gnames/objgraph/internal/io/snapshotio"
	objgraph "github.com/gnames/objgraph/pkg"
	"github.com/gnames/objgraph/pkg/config"
	"github.com/spf13/cobra"
)

// dumpCmd represents the dump command
var dumpCmd = &cobra.Command{
	Use:   "dump SNAPSHOT",
	Short: "Converts objects of a snapshot file to CSV files for neo4j-import",
	Long: `Reads an object space snapshot (JSON, or gob for files with .gob
extension) and writes objects.csv, instance_variables.csv,
object_classes.csv and class_modules.csv. With --import flag the files
are imported into a Neo4j database afterwards.`,
	Args: cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		var err error
		var seen kv.Set
		opts = append(opts, dumpFlags(cmd)...)
		cfg := config.New(opts...)
		ogr := objgraph.New(cfg)

		sp, err := snapshotio.Load(args[0])
		if err != nil {
			slog.Error("Cannot load snapshot", "error", err)
			os.Exit(1)
		}

		seen = kvio.NewMemory()
		if cfg.WithBadger {
			seen, err = kvio.New(cfg.SeenKVDir)
			if err != nil {
				slog.Error("Cannot create Key-Value store.", "error", err)
				os.Exit(1)
			}
		}

		d, err := dumpio.New(cfg, seen)
		if err != nil {
			slog.Error("Cannot create Dumper.", "error", err)
			os.Exit(1)
		}
		err = ogr.Dump(d, sp)
		if err != nil {
			slog.Error("Cannot dump object space", "error", err)
			os.Exit(1)
		}

		withImport, _ := cmd.Flags().GetBool("import")
		if !withImport {
			return
		}
		err = ogr.Import(neo4jio.New(cfg))
		if err != nil {
			slog.Error("Cannot import CSV files", "error", err)
			os.Exit(1)
		}
	},
}

func init() {
	rootCmd.AddCommand(dumpCmd)

	dumpCmd.Flags().StringP("dir", "d", "", "directory for CSV files")
	dumpCmd.Flags().BoolP("badger", "b", false,
		"keep visited objects in a key-value store")
	dumpCmd.Flags().BoolP("import", "i", false,
		"run neo4j-import after the dump")
	dumpCmd.Flags().String("db", "", "directory of Neo4j database for import")
	dumpCmd.Flags().String("bin", "", "path to neo4j-import executable")
}
