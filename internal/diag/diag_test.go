package diag

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNew_ExcerptPointsAtColumn(t *testing.T) {
	source := "def f():\n\tx = $\n"
	err := New(IllegalCharacter, 2, 6, source, "unrecognized byte %q", '$')
	assert.Contains(t, err.Error(), "IllegalCharacter")
	assert.Contains(t, err.Error(), "2:6")
	assert.Contains(t, err.Error(), "x = $")
	assert.Contains(t, err.Error(), "^")
}

func TestNew_EmptySourceSkipsExcerpt(t *testing.T) {
	err := New(UnexpectedEOF, 1, 1, "", "expected %s, found end of input", "NAME")
	assert.Empty(t, err.Excerpt)
}

func TestSyntaxError_ImplementsError(t *testing.T) {
	var err error = New(MixedIndent, 3, 1, "", "mixed indent")
	assert.EqualError(t, err, "3:1: MixedIndent: mixed indent")
}
