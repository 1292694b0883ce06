package forth

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Scenario 8: compile and run a literal-pushing definition.
func TestCompileAndRunLiteral(t *testing.T) {
	m := New(WithInputString(": ANSWER 42 ; ANSWER"))
	require.NoError(t, m.Run(context.Background()))
	assert.Equal(t, []int32{42}, stackOf(t, m))
}

func TestIfThen(t *testing.T) {
	m := New(WithInputString(": T 1 IF 111 THEN ; T"))
	require.NoError(t, m.Run(context.Background()))
	assert.Equal(t, []int32{111}, stackOf(t, m))

	m = New(WithInputString(": T 0 IF 111 THEN 222 ; T"))
	require.NoError(t, m.Run(context.Background()))
	assert.Equal(t, []int32{222}, stackOf(t, m))
}

func TestIfElseThen(t *testing.T) {
	m := New(WithInputString(": T 1 IF 1 ELSE 2 THEN ; T"))
	require.NoError(t, m.Run(context.Background()))
	assert.Equal(t, []int32{1}, stackOf(t, m))

	m = New(WithInputString(": T 0 IF 1 ELSE 2 THEN ; T"))
	require.NoError(t, m.Run(context.Background()))
	assert.Equal(t, []int32{2}, stackOf(t, m))
}

func TestBeginUntil(t *testing.T) {
	m := New(WithInputString(": COUNTDOWN 3 BEGIN DUP 1- DUP 0= UNTIL ; COUNTDOWN"))
	require.NoError(t, m.Run(context.Background()))
	assert.Equal(t, []int32{3, 2, 1, 0}, stackOf(t, m))
}

func TestBeginUntilCountsUp(t *testing.T) {
	// Counts up from 0 with BEGIN...UNTIL and stops once the counter
	// reaches 3.
	m := New(WithInputString(": LOOP3 0 BEGIN 1+ DUP 3 = UNTIL ; LOOP3"))
	require.NoError(t, m.Run(context.Background()))
	assert.Equal(t, []int32{3}, stackOf(t, m))
}

func TestBeginWhileRepeat(t *testing.T) {
	m := New(WithInputString(": SUM3 0 3 BEGIN DUP 0 > WHILE DUP ROT + SWAP 1- REPEAT DROP ; SUM3"))
	require.NoError(t, m.Run(context.Background()))
	assert.Equal(t, []int32{6}, stackOf(t, m))
}

func TestUnless(t *testing.T) {
	m := New(WithInputString(": T 0 UNLESS 99 THEN ; T"))
	require.NoError(t, m.Run(context.Background()))
	assert.Equal(t, []int32{99}, stackOf(t, m))

	m = New(WithInputString(": T 1 UNLESS 99 THEN 7 ; T"))
	require.NoError(t, m.Run(context.Background()))
	assert.Equal(t, []int32{7}, stackOf(t, m))
}

func TestRecurseCountdown(t *testing.T) {
	m := New(WithInputString(
		": COUNTDOWN DUP 0 > IF DUP 1- RECURSE THEN ; 3 COUNTDOWN"))
	require.NoError(t, m.Run(context.Background()))
	assert.Equal(t, []int32{3, 2, 1, 0}, stackOf(t, m))
}

func TestImmediateWordRunsAtCompileTime(t *testing.T) {
	m := New(WithInputString(": SHOUT IMMEDIATE 1 2 + ; SHOUT"))
	require.NoError(t, m.Run(context.Background()))
	assert.Equal(t, []int32{3}, stackOf(t, m))
	e := m.findName("SHOUT")
	require.NotZero(t, e)
	assert.True(t, m.isImmediate(e))
}

func TestSystemPreludeArithmeticWords(t *testing.T) {
	_, out := runWithPrelude(t, "-5 ABS . 3 7 MIN . 3 7 MAX .")
	assert.Equal(t, "5 3 7 ", out)
}

func TestSystemPreludeSpacesAndPrint(t *testing.T) {
	_, out := runWithPrelude(t, "3 SPACES 42 .")
	assert.Equal(t, "   42 ", out)
}

func TestSystemPreludeWithin(t *testing.T) {
	_, out := runWithPrelude(t, "5 0 10 WITHIN . 15 0 10 WITHIN . 0 0 10 WITHIN .")
	assert.Equal(t, "1 0 1 ", out)
}

func TestSystemPreludeDotS(t *testing.T) {
	_, out := runWithPrelude(t, "1 2 3 .S")
	assert.Equal(t, "3 2 1 ", out)
}
