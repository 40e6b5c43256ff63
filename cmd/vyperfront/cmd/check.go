package cmd

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/shapestone/shape-vyper/pkg/vyper"
)

var checkCmd = &cobra.Command{
	Use:   "check <file>",
	Short: "Parse a source file and report the first fatal SyntaxError, if any",
	RunE: func(cmd *cobra.Command, args []string) error {
		if len(args) != 1 {
			_ = cmd.Help()
			return errors.New("expected exactly one <file> argument")
		}
		source, err := readSource(args[0])
		if err != nil {
			return err
		}

		if _, err := vyper.Parse(source); err != nil {
			printSyntaxError(err)
			return err
		}
		fmt.Println("ok")
		return nil
	},
}

func init() {
	rootCmd.AddCommand(checkCmd)
}
