package store_test

import (
	"iter"
	"slices"
	"testing"

	"github.com/on-the-ground/vectors/internal/store"
	"github.com/on-the-ground/vectors/vector"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"
)

func TestMain(m *testing.M) {
	goleak.VerifyTestMain(m)
}

func TestStore_CountIterateAndSnapshot(t *testing.T) {
	src := []int{3, 1, 2}
	s := store.New(src...)

	// constructor copies its input
	src[0] = 99
	assert.Equal(t, 3, s.Count())
	assert.Equal(t, []int{3, 1, 2}, slices.Collect(s.Values()))

	// restartable
	assert.Equal(t, slices.Collect(s.Values()), slices.Collect(s.Values()))

	var idx []int
	for i, v := range s.All() {
		idx = append(idx, i)
		assert.Equal(t, s.Array()[i], v)
	}
	assert.Equal(t, []int{0, 1, 2}, idx)

	snap := s.Array()
	snap[0] = 42
	assert.Equal(t, []int{3, 1, 2}, s.Array())

	s.Push(4)
	assert.Equal(t, []int{42, 1, 2}, snap)
	assert.Equal(t, []int{3, 1, 2, 4}, s.Array())
}

func TestStore_ZeroValueIsEmpty(t *testing.T) {
	var s store.Store[string]
	assert.NotNil(t, s.Array())
	assert.Empty(t, s.Array())
	assert.Equal(t, 0, s.Count())
	assert.Empty(t, slices.Collect(s.Values()))

	s.Push("a")
	assert.Equal(t, []string{"a"}, s.Items())
}

func TestStore_EarlyBreakAndPull(t *testing.T) {
	s := store.New("x", "y", "z")

	var got []string
	for v := range s.Values() {
		got = append(got, v)
		if v == "y" {
			break
		}
	}
	assert.Equal(t, []string{"x", "y"}, got)

	next, stop := iter.Pull(s.Values())
	defer stop()
	v, ok := next()
	require.True(t, ok)
	assert.Equal(t, "x", v)
}

func TestStore_ResetReindexes(t *testing.T) {
	s := store.New("a", "b", "c")
	s.Reset([]string{"a", "c"})
	for i, v := range s.All() {
		assert.Equal(t, []string{"a", "c"}[i], v)
	}
	assert.Equal(t, []string{"a", "c"}, s.Items())
}

func TestStore_JoinAndDigest(t *testing.T) {
	s := store.New("A", "b", "C")

	got, err := store.Join(&s, ",")
	require.NoError(t, err)
	assert.Equal(t, "A,b,C", got)

	_, err = store.Join(&s, "")
	assert.ErrorIs(t, err, vector.ErrInvalidGlue)

	assert.Equal(t, vector.Digest([]string{"A", "b", "C"}), store.Digest(&s))
}
