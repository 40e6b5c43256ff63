package parser

import (
	"github.com/shapestone/shape-vyper/internal/ast"
	"github.com/shapestone/shape-vyper/internal/diag"
)

func unassignableTarget(e ast.Expr) error {
	at := e.Pos()
	return diag.New(diag.UnexpectedToken, at.Line, at.Column, "",
		"this expression is not a valid assignment target")
}
