// Command vyperfront is the operator-facing half of the front end: a thin
// cobra CLI over pkg/vyper's Tokenize and Parse.
package main

import (
	"os"

	"github.com/shapestone/shape-vyper/cmd/vyperfront/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
