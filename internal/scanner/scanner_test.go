package scanner

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/shapestone/shape-vyper/internal/token"
)

func TestConvert_Atoms(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  []token.Kind
	}{
		{"name and keyword", "def foo", []token.Kind{token.DEF, token.SPACE, token.NAME}},
		{"decimal zero", "0", []token.Kind{token.DECNUM}},
		{"decimal", "123", []token.Kind{token.DECNUM}},
		{"hex", "0xff", []token.Kind{token.HEXNUM}},
		{"octal", "0o17", []token.Kind{token.OCTNUM}},
		{"binary", "0b101", []token.Kind{token.BINNUM}},
		{"float with dot", "3.14", []token.Kind{token.FLOAT}},
		{"float with exponent only", "10e5", []token.Kind{token.FLOAT}},
		{"string", `"hi"`, []token.Kind{token.STRING}},
		{"docstring", `"""hi"""`, []token.Kind{token.DOCSTR}},
		{"comment dropped later, seen here", "# hi", []token.Kind{token.COMMENT}},
		{"boolean literal", "True", []token.Kind{token.BOOL}},
		{"augmented add before add", "+=", []token.Kind{token.AUGADD}},
		{"arrow before sub", "->", []token.Kind{token.ARROW}},
		{"power before mul", "**", []token.Kind{token.POW}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			toks, err := Convert(New(), tt.input)
			require.NoError(t, err)
			require.Len(t, toks, len(tt.want))
			for i, k := range tt.want {
				assert.Equal(t, k, toks[i].Kind, "token %d", i)
			}
		})
	}
}

func TestConvert_IllegalCharacter(t *testing.T) {
	_, err := Convert(New(), "$")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "IllegalCharacter")
}

func TestConvert_MixedIndentLatch(t *testing.T) {
	// A tab-indented line followed by a four-space-indented line is fatal.
	src := "def f():\n\tx = 1\n    y = 2\n"
	_, err := Convert(New(), src)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "MixedIndent")
}

func TestConvert_ConsistentTabsAreFine(t *testing.T) {
	src := "def f():\n\tx = 1\n\ty = 2\n"
	_, err := Convert(New(), src)
	require.NoError(t, err)
}

func TestConvert_TabAndFourSpaceAreEquivalentStyles(t *testing.T) {
	// Four spaces is its own whitespace_style, distinct from tab, and is
	// self-consistent across a file.
	src := "def f():\n    x = 1\n    y = 2\n"
	_, err := Convert(New(), src)
	require.NoError(t, err)
}
