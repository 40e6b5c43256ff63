package vyper_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/shapestone/shape-vyper/internal/token"
	"github.com/shapestone/shape-vyper/pkg/vyper"
)

func TestTokenize_DrainsToENDSTMT(t *testing.T) {
	stream, err := vyper.Tokenize("x: uint256 = 1\n")
	require.NoError(t, err)

	var kinds []token.Kind
	for {
		tok, ok, err := stream.Next()
		require.NoError(t, err)
		if !ok {
			break
		}
		kinds = append(kinds, tok.Kind)
	}
	assert.Equal(t, []token.Kind{
		token.NAME, token.COLON, token.NAME, token.ASSIGN, token.DECNUM, token.ENDSTMT,
	}, kinds)
}

func TestTokenize_IllegalCharacterFailsEagerly(t *testing.T) {
	_, err := vyper.Tokenize("x: uint256 = $\n")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "IllegalCharacter")
}

func TestParse_SimpleModule(t *testing.T) {
	src := "MAX: constant(uint256) = 10\n\ndef double(x: uint256) -> uint256:\n\treturn x * 2\n"
	mod, err := vyper.Parse(src)
	require.NoError(t, err)
	require.Len(t, mod.Constants, 1)
	require.Len(t, mod.Functions, 1)
	assert.Equal(t, "double", mod.Functions[0].Name)
}

func TestParse_ModuleDocstring(t *testing.T) {
	mod, err := vyper.Parse("\"\"\"a module\"\"\"\n\nx: uint256\n")
	require.NoError(t, err)
	assert.True(t, mod.HasDoc)
	require.Len(t, mod.Storage, 1)
}

func TestParse_PropagatesSyntaxError(t *testing.T) {
	_, err := vyper.Parse("def f():\n\t\tx: uint256 = 1\n")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "TooMuchIndenting")
}
