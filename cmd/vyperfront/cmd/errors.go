package cmd

import (
	"errors"
	"fmt"

	"github.com/shapestone/shape-vyper/internal/diag"
)

// printSyntaxError renders a *diag.SyntaxError's caret excerpt to stdout
// and logs its kind at debug level; any other error has its message
// printed to stdout as-is.
func printSyntaxError(err error) {
	var synErr *diag.SyntaxError
	if errors.As(err, &synErr) {
		log.Debugf("fatal %s at %d:%d", synErr.Kind, synErr.Line, synErr.Column)
		fmt.Println(err.Error())
		return
	}
	fmt.Println(err.Error())
}
