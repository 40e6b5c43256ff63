package cmd

import (
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

var (
	rootCmd = &cobra.Command{
		Use:          "vyperfront",
		Short:        "vyperfront",
		SilenceUsage: true,
		Long:         "Front end CLI for the shape-vyper tokenizer and parser: tokens, ast, and check.",
	}

	verbose bool
	log     = logrus.StandardLogger()
)

// Execute executes the root command.
func Execute() error {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "log at debug level")
	cobra.OnInitialize(func() {
		if verbose {
			log.SetLevel(logrus.DebugLevel)
		}
	})
	return rootCmd.Execute()
}
