package vector_test

import (
	"errors"
	"testing"

	"github.com/on-the-ground/vectors/vector"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestJoin_Glue(t *testing.T) {
	values := []string{"A", "b", "C"}

	got, err := vector.Join(values, ",")
	require.NoError(t, err)
	assert.Equal(t, "A,b,C", got)

	got, err = vector.Join(values, "\t")
	require.NoError(t, err)
	assert.Equal(t, "A\tb\tC", got)

	got, err = vector.Join(values, "\x00")
	require.NoError(t, err)
	assert.Equal(t, "A\x00b\x00C", got)

	_, err = vector.Join(values, "")
	assert.True(t, errors.Is(err, vector.ErrInvalidGlue))

	_, err = vector.Join(values, "::")
	assert.ErrorIs(t, err, vector.ErrInvalidGlue)

	// a multi-byte rune is more than one byte
	_, err = vector.Join(values, "é")
	assert.ErrorIs(t, err, vector.ErrInvalidGlue)
}

func TestJoin_Empty(t *testing.T) {
	got, err := vector.Join(nil, ",")
	require.NoError(t, err)
	assert.Equal(t, "", got)
}

func TestDigest(t *testing.T) {
	assert.Equal(t, vector.Digest([]string{"a", "b"}), vector.Digest([]string{"a", "b"}))

	assert.NotEqual(t, vector.Digest([]string{"ab"}), vector.Digest([]string{"a", "b"}))
	assert.NotEqual(t, vector.Digest([]string{"b", "a"}), vector.Digest([]string{"a", "b"}))
	assert.NotEqual(t, vector.Digest(nil), vector.Digest([]string{""}))
}
