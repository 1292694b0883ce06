package forth

import (
	"context"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func stackOf(t *testing.T, m *Machine) []int32 {
	t.Helper()
	return m.snapshotDataStack()
}

// Scenario 2: stack shuffles.
func TestStackShuffles(t *testing.T) {
	m := New(WithInputString("1 2 DUP"))
	require.NoError(t, m.Run(context.Background()))
	assert.Equal(t, []int32{1, 2, 2}, stackOf(t, m))

	m = New(WithInputString("1 2 DUP DROP"))
	require.NoError(t, m.Run(context.Background()))
	assert.Equal(t, []int32{1, 2}, stackOf(t, m))

	m = New(WithInputString("1 2 SWAP"))
	require.NoError(t, m.Run(context.Background()))
	assert.Equal(t, []int32{2, 1}, stackOf(t, m))

	m = New(WithInputString("1 2 SWAP OVER"))
	require.NoError(t, m.Run(context.Background()))
	assert.Equal(t, []int32{2, 1, 2}, stackOf(t, m))
}

// Scenario 3: rotation.
func TestRotation(t *testing.T) {
	m := New(WithInputString("1 2 3 ROT"))
	require.NoError(t, m.Run(context.Background()))
	assert.Equal(t, []int32{2, 3, 1}, stackOf(t, m))

	m = New(WithInputString("1 2 3 ROT -ROT"))
	require.NoError(t, m.Run(context.Background()))
	assert.Equal(t, []int32{1, 2, 3}, stackOf(t, m))
}

// Scenario 4: arithmetic wraparound.
func TestArithmeticWraparound(t *testing.T) {
	prog := "-2147483648 -1 +"
	m := New(WithInputString(prog))
	require.NoError(t, m.Run(context.Background()))
	assert.Equal(t, []int32{math.MaxInt32}, stackOf(t, m))

	m = New(WithInputString(prog + " 1 +"))
	require.NoError(t, m.Run(context.Background()))
	assert.Equal(t, []int32{math.MinInt32}, stackOf(t, m))
}

func TestAddSubModular(t *testing.T) {
	for _, tc := range []struct{ a, b int32 }{
		{0, 0}, {1, 1}, {math.MaxInt32, 1}, {math.MinInt32, -1}, {12345, -6789},
	} {
		m := New()
		m.push(tc.a)
		m.push(tc.b)
		require.NoError(t, opcodeTable[opAdd](m))
		m.push(tc.b)
		require.NoError(t, opcodeTable[opSub](m))
		m.push(tc.b)
		require.NoError(t, opcodeTable[opSub](m))
		assert.Equal(t, tc.a-tc.b, m.pop(), "(a+b)-b-b should equal a-b")
	}
}

// Scenario 5: division.
func TestDivMod(t *testing.T) {
	m := New(WithInputString("30 7 /MOD"))
	require.NoError(t, m.Run(context.Background()))
	assert.Equal(t, []int32{2, 4}, stackOf(t, m))
}

func TestDivModIdentity(t *testing.T) {
	for _, tc := range []struct{ a, b int32 }{
		{30, 7}, {-30, 7}, {30, -7}, {-30, -7}, {1, 1}, {0, 5},
	} {
		m := New()
		m.push(tc.a)
		m.push(tc.b)
		require.NoError(t, opcodeTable[opDivMod](m))
		quot := m.pop()
		rem := m.pop()
		assert.Equal(t, tc.a, quot*tc.b+rem)
	}
}

func TestQDup(t *testing.T) {
	m := New(WithInputString("0 ?DUP"))
	require.NoError(t, m.Run(context.Background()))
	assert.Equal(t, []int32{0}, stackOf(t, m))

	m = New(WithInputString("5 ?DUP"))
	require.NoError(t, m.Run(context.Background()))
	assert.Equal(t, []int32{5, 5}, stackOf(t, m))
}

func TestUnusedReportsCellsBetweenHereAndSP(t *testing.T) {
	m := New(WithInputString("UNUSED"))
	// capture SP/HERE before Run: UNUSED's own push moves SP by a cell,
	// so the value it reports reflects SP as it stood before that push.
	spBefore, hereBefore := m.sp, m.here()
	require.NoError(t, m.Run(context.Background()))
	want := (spBefore - hereBefore) / 4
	assert.Equal(t, []int32{want}, stackOf(t, m))
	assert.Greater(t, want, int32(0))
}

func TestUnusedShrinksAsHereAdvances(t *testing.T) {
	before, _ := run(t, "UNUSED")
	after, _ := run(t, ": PAD 1 2 3 4 5 6 7 8 ; UNUSED")
	assert.Less(t, stackOf(t, after)[0], stackOf(t, before)[0])
}

func TestStoreFetchRoundTrip(t *testing.T) {
	m := New()
	addr := m.here()
	m.push(12345)
	m.push(addr)
	require.NoError(t, opcodeTable[opStore](m))
	m.push(addr)
	require.NoError(t, opcodeTable[opFetch](m))
	assert.Equal(t, int32(12345), m.pop())
}

func TestCStoreCFetchRoundTrip(t *testing.T) {
	m := New()
	addr := m.here()
	m.push(200)
	m.push(addr)
	require.NoError(t, opcodeTable[opCStore](m))
	m.push(addr)
	require.NoError(t, opcodeTable[opCFetch](m))
	assert.Equal(t, int32(200), m.pop())
}

func TestCMoveAscending(t *testing.T) {
	m := New()
	src := m.here()
	for i, b := range []byte("hello") {
		m.storeByte(src+int32(i), b)
	}
	dst := src + 16
	m.push(src)
	m.push(dst)
	m.push(5)
	require.NoError(t, opcodeTable[opCMove](m))
	assert.Equal(t, []byte("hello"), m.bytesAt(dst, 5))
}
