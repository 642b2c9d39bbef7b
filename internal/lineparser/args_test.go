package lineparser

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestArgs_Typed(t *testing.T) {
	args, err := TokenizeArgs("Mix  Water 3 2.5 on")
	require.NoError(t, err)
	require.Equal(t, 5, args.N())

	s, err := args.S(1)
	require.NoError(t, err)
	require.Equal(t, "Water", s)

	i, err := args.I(2)
	require.NoError(t, err)
	require.Equal(t, 3, i)

	d, err := args.D(3)
	require.NoError(t, err)
	require.Equal(t, 2.5, d)

	b, err := args.B(4)
	require.NoError(t, err)
	require.True(t, b)
}

func TestArgs_OutOfRange(t *testing.T) {
	args := NewArgs([]string{"only"})
	_, err := args.S(1)
	require.Error(t, err)
	require.Contains(t, err.Error(), "argument 1")
}

func TestArgs_BadInteger(t *testing.T) {
	args := NewArgs([]string{"abc"})
	_, err := args.I(0)
	require.Error(t, err)
	require.Contains(t, err.Error(), "not an integer")
}

func TestArgs_BadDouble(t *testing.T) {
	args := NewArgs([]string{"12.x"})
	_, err := args.D(0)
	require.Error(t, err)
}

func TestArgs_BoolSpellings(t *testing.T) {
	truthy := []string{"true", "True", "ON", "yes", "1"}
	falsy := []string{"false", "Off", "NO", "0"}

	for _, s := range truthy {
		v, err := NewArgs([]string{s}).B(0)
		require.NoError(t, err, s)
		require.True(t, v, s)
	}
	for _, s := range falsy {
		v, err := NewArgs([]string{s}).B(0)
		require.NoError(t, err, s)
		require.False(t, v, s)
	}

	_, err := NewArgs([]string{"maybe"}).B(0)
	require.Error(t, err)
}

func TestArgs_Slice(t *testing.T) {
	args := NewArgs([]string{"a", "b", "c"})
	require.Equal(t, []string{"b", "c"}, args.Slice(1))
	require.Nil(t, args.Slice(3))
}
