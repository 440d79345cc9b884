package cmd

import (
	"github.com/gnames/objgraph/pkg/config"
	"github.com/spf13/cobra"
)

func dumpFlags(cmd *cobra.Command) []config.Option {
	res := importFlags(cmd)
	if b, _ := cmd.Flags().GetBool("badger"); b {
		res = append(res, config.OptWithBadger(true))
	}
	return res
}

func importFlags(cmd *cobra.Command) []config.Option {
	var res []config.Option
	if s, _ := cmd.Flags().GetString("dir"); s != "" {
		res = append(res, config.OptBaseDir(s))
	}
	if s, _ := cmd.Flags().GetString("db"); s != "" {
		res = append(res, config.OptDBPath(s))
	}
	if s, _ := cmd.Flags().GetString("bin"); s != "" {
		res = append(res, config.OptImportBin(s))
	}
	return res
}
