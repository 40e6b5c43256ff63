package cmd

import (
	"errors"
	"fmt"

	"github.com/alecthomas/repr"
	"github.com/spf13/cobra"

	"github.com/shapestone/shape-vyper/pkg/vyper"
)

var tokensCmd = &cobra.Command{
	Use:   "tokens <file>",
	Short: "Dump the post-pipeline token stream of a source file",
	RunE: func(cmd *cobra.Command, args []string) error {
		if len(args) != 1 {
			_ = cmd.Help()
			return errors.New("expected exactly one <file> argument")
		}
		source, err := readSource(args[0])
		if err != nil {
			return err
		}

		stream, err := vyper.Tokenize(source)
		if err != nil {
			printSyntaxError(err)
			return err
		}
		for {
			t, ok, err := stream.Next()
			if err != nil {
				printSyntaxError(err)
				return err
			}
			if !ok {
				break
			}
			fmt.Println(repr.String(t, repr.Indent("  ")))
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(tokensCmd)
}
