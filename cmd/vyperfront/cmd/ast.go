package cmd

import (
	"errors"
	"fmt"

	"github.com/alecthomas/repr"
	"github.com/spf13/cobra"

	"github.com/shapestone/shape-vyper/pkg/vyper"
)

var astCmd = &cobra.Command{
	Use:   "ast <file>",
	Short: "Parse a source file and dump its Module AST",
	RunE: func(cmd *cobra.Command, args []string) error {
		if len(args) != 1 {
			_ = cmd.Help()
			return errors.New("expected exactly one <file> argument")
		}
		source, err := readSource(args[0])
		if err != nil {
			return err
		}

		mod, err := vyper.Parse(source)
		if err != nil {
			printSyntaxError(err)
			return err
		}
		fmt.Println(repr.String(mod, repr.Indent("  ")))
		return nil
	},
}

func init() {
	rootCmd.AddCommand(astCmd)
}
