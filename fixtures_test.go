package forth

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

// traceFixtures mirrors the program table in scripts/gen_trace_fixtures.go
// (kept in sync by hand, since that command lives in package main and
// cannot be imported from here) so the programs the generator snapshots
// are also exercised, with known-correct expectations, by the ordinary
// test suite.
var traceFixtures = []struct {
	name       string
	program    string
	wantOutput string
}{
	{"arith", "1 2 + 3 * .", "9 "},
	{"stack-shuffle", "1 2 3 ROT .", "1 "},
	{"compare", "3 4 < .", "1 "},
	{"define-and-run", ": SQUARE DUP * ; 7 SQUARE .", "49 "},
	{"loop", "5 SPACES", "     "},
}

func TestTraceFixtures(t *testing.T) {
	for _, fx := range traceFixtures {
		t.Run(fx.name, func(t *testing.T) {
			_, out := runWithPrelude(t, fx.program)
			assert.Equal(t, fx.wantOutput, out)
		})
	}
}
