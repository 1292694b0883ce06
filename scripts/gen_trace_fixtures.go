//go:build ignore

// Command gen_trace_fixtures runs a fixed set of short FORTH programs
// through the machine concurrently and writes one golden snapshot file per
// program under testdata/fixtures. Grounded on the teacher's
// scripts/gen_vm_expects.go: a small flag-driven generator invoked via
// go:generate, not part of the built module, sharing its errgroup-for-
// concurrent-independent-work shape.
//
//go:generate go run scripts/gen_trace_fixtures.go
package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"time"

	"golang.org/x/sync/errgroup"

	forth "forthvm"
)

type fixture struct {
	name    string
	program string
}

var fixtures = []fixture{
	{"arith", "1 2 + 3 * ."},
	{"stack-shuffle", "1 2 3 ROT ."},
	{"compare", "3 4 < ."},
	{"define-and-run", ": SQUARE DUP * ; 7 SQUARE ."},
	{"loop", "5 SPACES"},
}

var outDir = flag.String("out", "testdata/fixtures", "directory to write golden fixture files into")

func main() {
	flag.Parse()

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	eg, ctx := errgroup.WithContext(ctx)
	for _, fx := range fixtures {
		fx := fx
		eg.Go(func() error { return writeFixture(ctx, *outDir, fx) })
	}
	if err := eg.Wait(); err != nil {
		log.Fatalln(err)
	}
}

func writeFixture(ctx context.Context, dir string, fx fixture) error {
	var out fmtBuffer

	vm := forth.New(
		forth.WithInputString(forth.SystemPrelude),
		forth.WithInputString(fx.program),
		forth.WithOutput(&out),
	)
	if err := vm.Run(ctx); err != nil {
		return fmt.Errorf("fixture %v: %w", fx.name, err)
	}

	snap := vm.Snapshot()
	path := filepath.Join(dir, fx.name+".golden")
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()

	fmt.Fprintf(f, "# @generated from %v\n", fx.name)
	fmt.Fprintf(f, "program: %q\n", fx.program)
	fmt.Fprintf(f, "output: %q\n", out.String())
	fmt.Fprintf(f, "stack: %v\n", snap.Stack)
	fmt.Fprintf(f, "here: %v\n", snap.HERE)
	return nil
}

type fmtBuffer struct{ b []byte }

func (w *fmtBuffer) Write(p []byte) (int, error) {
	w.b = append(w.b, p...)
	return len(p), nil
}

func (w *fmtBuffer) String() string { return string(w.b) }
