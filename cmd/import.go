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

	"github.com/gnames/objgraph/internal/ent/load"
	"github.com/gnames/objgraph/internal/io/neo4jio"
	"github.com/gnames/objgraph/internal/io/pgio"
	objgraph "github.com/gnames/objgraph/pkg"
	"github.com/gnames/objgraph/pkg/config"
	"github.com/spf13/cobra"
)

// importCmd represents the import command
var importCmd = &cobra.Command{
	Use:   "import",
	Short: "Imports CSV dump files into Neo4j or PostgreSQL",
	Long: `Removes the Neo4j database directory and recreates it from CSV dump
files with neo4j-import. With --pg flag the files are loaded into
PostgreSQL tables instead.`,
	Run: func(cmd *cobra.Command, _ []string) {
		var err error
		var imp load.Importer
		opts = append(opts, importFlags(cmd)...)
		cfg := config.New(opts...)
		ogr := objgraph.New(cfg)

		imp = neo4jio.New(cfg)
		if withPg, _ := cmd.Flags().GetBool("pg"); withPg {
			imp, err = pgio.New(cfg)
			if err != nil {
				slog.Error("Cannot create PostgreSQL importer", "error", err)
				os.Exit(1)
			}
		}

		err = ogr.Import(imp)
		if err != nil {
			slog.Error("Cannot import CSV files", "error", err)
			os.Exit(1)
		}
	},
}

func init() {
	rootCmd.AddCommand(importCmd)

	importCmd.Flags().StringP("dir", "d", "", "directory with CSV files")
	importCmd.Flags().String("db", "", "directory of Neo4j database")
	importCmd.Flags().String("bin", "", "path to neo4j-import executable")
	importCmd.Flags().Bool("pg", false, "import into PostgreSQL")
}
