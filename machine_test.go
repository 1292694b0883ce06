package forth

import (
	"bytes"
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Scenario 1: fresh snapshot.
func TestFreshSnapshot(t *testing.T) {
	m := New()
	snap := m.Snapshot()

	assert.Greater(t, snap.HERE, int32(0))
	assert.Greater(t, snap.LATEST, int32(0))
	assert.Equal(t, int32(0), snap.STATE)
	assert.Equal(t, int32(10), snap.BASE)
	assert.Equal(t, int32(m.mem.Size()), snap.SP)
	assert.Equal(t, int32(m.ret.Size()), snap.RSP)
	assert.Empty(t, snap.Stack)
	assert.Empty(t, snap.ReturnStack)
	assert.Len(t, snap.Dict, int(snap.HERE))
}

func TestRunEmptyInputHaltsCleanly(t *testing.T) {
	m := New()
	require.NoError(t, m.Run(context.Background()))
}

func TestRunCancelledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	m := New(WithInputString("1 2 3"))
	err := m.Run(ctx)
	assert.ErrorIs(t, err, context.Canceled)
}

func TestDivideByZeroHaltsWithTypedError(t *testing.T) {
	m := New(WithInputString("5 0 /MOD"))
	err := m.Run(context.Background())
	var dz DivideByZeroError
	require.ErrorAs(t, err, &dz)
	assert.Equal(t, int32(5), dz.Dividend)
}

func TestParseErrorOnGarbageWord(t *testing.T) {
	m := New(WithInputString("not-a-word-or-number"))
	err := m.Run(context.Background())
	var pe ParseError
	require.ErrorAs(t, err, &pe)
}

func TestWithOutputTeesToEverySink(t *testing.T) {
	var a, b bytes.Buffer
	m := New(WithInputString("65 EMIT"), WithOutput(&a), WithOutput(&b))
	require.NoError(t, m.Run(context.Background()))
	assert.Equal(t, "A", a.String())
	assert.Equal(t, "A", b.String())
}

func TestHereStaysAlignedAndBelowSP(t *testing.T) {
	m := New(WithInputString(": DOUBLE DUP + ; 1 DOUBLE 2 DOUBLE 3 DOUBLE"))
	require.NoError(t, m.Run(context.Background()))
	assert.Equal(t, int32(0), m.here()%4)
	assert.Less(t, m.here(), m.sp)
}
