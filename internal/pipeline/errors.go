package pipeline

import (
	"github.com/shapestone/shape-vyper/internal/diag"
	"github.com/shapestone/shape-vyper/internal/token"
)

func tooMuchIndenting(source string, at token.Token) error {
	return diag.New(diag.TooMuchIndenting, at.Line, at.Column, source,
		"indentation may only increase by one level at a time")
}

func misalignedIndent(source string, at token.Token) error {
	return diag.New(diag.MisalignedIndent, at.Line, at.Column, source,
		"a partial run of %d space(s) cannot follow a TAB on an indent", len(at.Text))
}

func spuriousIndent(source string, at token.Token) error {
	return diag.New(diag.SpuriousIndent, at.Line, at.Column, source,
		"indent increases twice with no intervening ':'")
}
