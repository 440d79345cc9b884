// Copyright © 2020 Dmitry Mozzherin <dmozzherin@gmail.com>
//
// Permission is hereby granted, free of charge, to any person obtaining a copy
// of this software and associated documentation files (the "Software"), to deal
// in the Software without restriction, including without limitation the rights
// to use, copy, modify, merge, publish, distribute, sublicense, and/or sell
// copies of the Software, and to permit persons to whom the Software is
// furnished to do so, subject to the following conditions:
//
// The above copyright notice and this permission notice shall be included in
// all copies or substantial portions of the Software.
//
// THE SOFTWARE IS PROVIDED "AS IS", WITHOUT WARRANTY OF ANY KIND, EXPRESS OR
// IMPLIED, INCLUDING BUT NOT LIMITED TO THE WARRANTIES OF MERCHANTABILITY,
// FITNESS FOR A PARTICULAR PURPOSE AND NONINFRINGEMENT. IN NO EVENT SHALL THE
// AUTHORS OR COPYRIGHT HOLDERS BE LIABLE FOR ANY CLAIM, DAMAGES OR OTHER
// LIABILITY, WHETHER IN AN ACTION OF CONTRACT, TORT OR OTHERWISE, ARISING FROM,
// OUT OF OR IN CONNECTION WITH THE SOFTWARE OR THE USE OR OTHER DEALINGS IN
// THE SOFTWARE.

package cmd

import (
	_ "embed"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/gnames/gnsys"
	objgraph "github.com/gnames/objgraph/pkg"
	"github.com/gnames/objgraph/pkg/config"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

//go:embed objgraph.yaml
var configText string

var (
	opts []config.Option
)

type cfgData struct {
	BaseDir     string
	DBPath      string
	ImportBin   string
	WithBadger  bool
	SeenKVDir   string
	ProgressNum *int
	PgHost      string
	PgUser      string
	PgPass      string
	PgDB        string
	BatchSize   int
}

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "objgraph",
	Short: "Converts object space snapshots to a Neo4j graph database",
	Long: `objgraph walks every object of an object space snapshot and saves
objects, their classes, included modules and instance variables as CSV
files for the Neo4j bulk importer. The files can then be imported into
a Neo4j database, or into PostgreSQL.`,
	Run: func(cmd *cobra.Command, args []string) {
		version, err := cmd.Flags().GetBool("version")
		if err != nil {
			slog.Error("Cannot get flag", "error", err)
			os.Exit(1)
		}
		if version {
			fmt.Printf("\nversion: %s\nbuild: %s\n\n", objgraph.Version, objgraph.Build)
			os.Exit(0)
		}

		_ = cmd.Help()
		os.Exit(0)
	},
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.Flags().BoolP("version", "V", false, "Returns version and build date")
}

// initConfig reads in config file and ENV variables if set.
func initConfig() {
	var err error
	var homeDir, cfgDir string
	configFile := "objgraph"

	// Find home directory.
	homeDir, err = os.UserHomeDir()
	if err != nil {
		slog.Error("Cannot find home dir", "error", err)
		os.Exit(1)
	}
	cfgDir = filepath.Join(homeDir, ".config")

	// Search config in home directory with name "objgraph" (without extension).
	viper.AddConfigPath(cfgDir)
	viper.SetConfigName(configFile)

	configPath := filepath.Join(cfgDir, fmt.Sprintf("%s.yaml", configFile))
	touchConfigFile(configPath)

	// If a config file is found, read it in.
	if err := viper.ReadInConfig(); err != nil {
		slog.Error("Config file objgraph.yaml not found", "error", err)
		os.Exit(1)
	}
	opts = getOpts()
}

// getOpts imports data from the configuration file. Some of the settings can
// be overriden by command line flags.
func getOpts() []config.Option {
	var res []config.Option
	cfg := cfgData{}
	err := viper.Unmarshal(&cfg)
	if err != nil {
		slog.Error("Cannot unmarshal config file", "error", err)
	}

	if cfg.BaseDir != "" {
		res = append(res, config.OptBaseDir(cfg.BaseDir))
	}
	if cfg.DBPath != "" {
		res = append(res, config.OptDBPath(cfg.DBPath))
	}
	if cfg.ImportBin != "" {
		res = append(res, config.OptImportBin(cfg.ImportBin))
	}
	if cfg.WithBadger {
		res = append(res, config.OptWithBadger(true))
	}
	if cfg.SeenKVDir != "" {
		res = append(res, config.OptSeenKVDir(cfg.SeenKVDir))
	}
	if cfg.ProgressNum != nil {
		res = append(res, config.OptProgressNum(*cfg.ProgressNum))
	}
	if cfg.PgHost != "" {
		res = append(res, config.OptPgHost(cfg.PgHost))
	}
	if cfg.PgUser != "" {
		res = append(res, config.OptPgUser(cfg.PgUser))
	}
	if cfg.PgPass != "" {
		res = append(res, config.OptPgPass(cfg.PgPass))
	}
	if cfg.PgDB != "" {
		res = append(res, config.OptPgDB(cfg.PgDB))
	}
	if cfg.BatchSize != 0 {
		res = append(res, config.OptBatchSize(cfg.BatchSize))
	}
	return res
}

// touchConfigFile checks if config file exists, and if not, it gets created.
func touchConfigFile(configPath string) {
	fileExists, _ := gnsys.FileExists(configPath)
	if fileExists {
		return
	}

	slog.Info("Creating config file", "path", configPath)
	createConfig(configPath)
}

// createConfig creates config file.
func createConfig(path string) {
	err := gnsys.MakeDir(filepath.Dir(path))
	if err != nil {
		slog.Error("Cannot create config dir", "error", err)
		os.Exit(1)
	}

	err = os.WriteFile(path, []byte(configText), 0644)
	if err != nil {
		slog.Error("Cannot write to config file", "error", err)
		os.Exit(1)
	}
}
