// Command forth runs a hosted FORTH virtual machine over stdin, loading the
// system prelude first. Grounded on the teacher's main.go: flag-driven
// trace/dump/timeout/mem-limit options, a logio.Logger for diagnostics.
package main

import (
	"context"
	"flag"
	"os"
	"time"

	forth "forthvm"
	"forthvm/internal/logio"
)

func main() {
	var (
		memSize uint
		timeout time.Duration
		trace   bool
		dump    bool
	)
	flag.UintVar(&memSize, "mem-size", 0, "override data-space size in bytes")
	flag.DurationVar(&timeout, "timeout", 0, "specify a time limit")
	flag.BoolVar(&trace, "trace", false, "enable trace logging")
	flag.BoolVar(&dump, "dump", false, "print a dump after execution")
	flag.Parse()

	log := logio.Logger{}
	log.SetOutput(os.Stderr)
	defer os.Exit(log.ExitCode())

	opts := []forth.Option{
		forth.WithLogf(log.Leveledf("TRACE")),
		forth.WithTrace(trace),
		forth.WithInputString(forth.SystemPrelude),
		forth.WithInput(os.Stdin),
		forth.WithOutput(os.Stdout),
	}
	if memSize != 0 {
		opts = append(opts, forth.WithMemSize(int(memSize)))
	}

	vm := forth.New(opts...)

	if dump {
		lw := &logio.Writer{Logf: log.Leveledf("DUMP")}
		defer lw.Close()
		defer forth.NewDumper(vm, lw).Dump()
	}

	ctx := context.Background()
	if timeout != 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, timeout)
		defer cancel()
	}

	log.ErrorIf(vm.Run(ctx))
}
