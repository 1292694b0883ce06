package memcore_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"forthvm/internal/memcore"
)

func TestArenaCell(t *testing.T) {
	a := memcore.NewArena(64)

	require.NoError(t, a.StoreCell(8, 42))
	v, err := a.FetchCell(8)
	require.NoError(t, err)
	assert.Equal(t, int32(42), v)

	_, err = a.FetchCell(9)
	assert.IsType(t, memcore.AlignError{}, err)

	_, err = a.FetchCell(64)
	assert.IsType(t, memcore.RangeError{}, err)
}

func TestArenaByte(t *testing.T) {
	a := memcore.NewArena(8)
	require.NoError(t, a.StoreByte(3, 'A'))
	b, err := a.FetchByte(3)
	require.NoError(t, err)
	assert.Equal(t, byte('A'), b)

	err = a.StoreByte(8, 'x')
	assert.IsType(t, memcore.RangeError{}, err)
}

func TestArenaCopyBytes(t *testing.T) {
	a := memcore.NewArena(16)
	for i, c := range []byte("HELLO") {
		require.NoError(t, a.StoreByte(i, c))
	}
	require.NoError(t, a.CopyBytes(8, 0, 5))
	got, err := a.Bytes(8, 5)
	require.NoError(t, err)
	assert.Equal(t, "HELLO", string(got))
}

func TestAlign(t *testing.T) {
	assert.Equal(t, 0, memcore.Align(0))
	assert.Equal(t, 4, memcore.Align(1))
	assert.Equal(t, 4, memcore.Align(4))
	assert.Equal(t, 8, memcore.Align(5))
}
