package forth

import (
	"bytes"
	"context"
	"testing"

	"github.com/stretchr/testify/require"
)

// run builds a fresh Machine over program, runs it to completion, and
// returns the Machine (for register/stack assertions) and captured output.
// Grounded on the teacher's vmTestCase.run, simplified to this package's
// functional-option construction.
func run(t *testing.T, program string, opts ...Option) (*Machine, string) {
	t.Helper()
	var out bytes.Buffer
	all := append([]Option{WithInputString(program), WithOutput(&out)}, opts...)
	m := New(all...)
	err := m.Run(context.Background())
	require.NoError(t, err)
	return m, out.String()
}

// runWithPrelude behaves like run, but loads the system prelude first.
func runWithPrelude(t *testing.T, program string, opts ...Option) (*Machine, string) {
	t.Helper()
	return run(t, SystemPrelude+"\n"+program, opts...)
}
