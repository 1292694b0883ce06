package forth

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Scenario 6: FIND/CFA of DROP.
func TestFindCFAOfDrop(t *testing.T) {
	m := New()
	e := m.findName("DROP")
	require.NotZero(t, e)

	cfa := m.cfaOf(e)
	assert.Equal(t, e+12, cfa)
	assert.Equal(t, int32(opDrop), m.fetchCell(cfa))
}

// Scenario 7: CREATE round-trip.
func TestCreateRoundTrip(t *testing.T) {
	m := New()
	assert.Zero(t, m.findName("FROBNICATE"), "fresh name must not be found")

	e := m.createEntryBytes([]byte("FROBNICATE"))
	require.NotZero(t, e)

	found := m.findName("FROBNICATE")
	assert.Equal(t, e, found)
}

func TestFindIsIdempotent(t *testing.T) {
	m := New()
	a := m.findName("SWAP")
	b := m.findName("SWAP")
	assert.Equal(t, a, b)
	assert.NotZero(t, a)
}

func TestFindReturnsZeroForUnknownName(t *testing.T) {
	m := New()
	assert.Zero(t, m.findName("THIS-WORD-DOES-NOT-EXIST"))
}

func TestFindSkipsHiddenEntries(t *testing.T) {
	m := New()
	e := m.createEntryBytes([]byte("SECRET"))
	require.NotZero(t, m.findName("SECRET"))

	m.toggleHidden(e)
	assert.Zero(t, m.findName("SECRET"), "hidden entry must not be found")

	m.toggleHidden(e)
	assert.Equal(t, e, m.findName("SECRET"), "unhiding restores visibility")
}

func TestNewestDefinitionShadowsOlder(t *testing.T) {
	m := New()
	first := m.createEntryBytes([]byte("DUPLICATE-NAME"))
	second := m.createEntryBytes([]byte("DUPLICATE-NAME"))
	require.NotEqual(t, first, second)
	assert.Equal(t, second, m.findName("DUPLICATE-NAME"), "FIND returns the most recent definition")
}

func TestToggleImmediate(t *testing.T) {
	m := New()
	e := m.createEntryBytes([]byte("MAYBE-IMMEDIATE"))
	assert.False(t, m.isImmediate(e))
	m.toggleImmediate(e)
	assert.True(t, m.isImmediate(e))
	m.toggleImmediate(e)
	assert.False(t, m.isImmediate(e))
}
