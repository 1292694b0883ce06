package forth

import (
	"io"
	"strings"
)

// config accumulates construction-time settings. There is no package-level
// global state: every Machine is built fresh from a config by New.
type config struct {
	memSize int
	retSize int
	trace   bool
	logfn   func(mess string, args ...interface{})
	host    Host
	inputs  []io.Reader
	outputs []io.Writer
}

var defaultConfig = config{
	memSize: 65536,
	retSize: 4096,
	outputs: []io.Writer{io.Discard},
}

// Option configures a Machine at construction time, mirroring the teacher's
// VMOption/VMOptions functional-options composition.
type Option interface{ apply(cfg *config) }

type optionFunc func(cfg *config)

func (f optionFunc) apply(cfg *config) { f(cfg) }

// Options flattens a sequence of Option values into one, so that a caller
// can build up a reusable bundle the way the teacher's VMOptions does.
func Options(opts ...Option) Option {
	var flat []Option
	for _, opt := range opts {
		switch o := opt.(type) {
		case nil:
		case options:
			flat = append(flat, o...)
		default:
			flat = append(flat, o)
		}
	}
	switch len(flat) {
	case 0:
		return options(nil)
	case 1:
		return flat[0]
	default:
		return options(flat)
	}
}

type options []Option

func (opts options) apply(cfg *config) {
	for _, opt := range opts {
		opt.apply(cfg)
	}
}

// WithMemSize sets the data-space size in bytes (default 65536).
func WithMemSize(n int) Option {
	return optionFunc(func(cfg *config) { cfg.memSize = n })
}

// WithReturnStackSize sets the return-stack buffer size in bytes (default
// 4096).
func WithReturnStackSize(n int) Option {
	return optionFunc(func(cfg *config) { cfg.retSize = n })
}

// WithTrace enables per-opcode trace logging through the configured logf
// hook.
func WithTrace(enabled bool) Option {
	return optionFunc(func(cfg *config) { cfg.trace = enabled })
}

// WithLogf installs the leveled-logging hook used for trace and diagnostic
// output.
func WithLogf(logfn func(mess string, args ...interface{})) Option {
	return optionFunc(func(cfg *config) { cfg.logfn = logfn })
}

// WithHost installs a custom Host, superseding WithInput/WithOutput.
func WithHost(host Host) Option {
	return optionFunc(func(cfg *config) { cfg.host = host })
}

// WithInput queues r as an input source read after any previously queued
// source is exhausted. Multiple WithInput options may be given; they are
// read in the order supplied. Ignored if WithHost is also given.
func WithInput(r io.Reader) Option {
	return optionFunc(func(cfg *config) { cfg.inputs = append(cfg.inputs, r) })
}

// WithInputString queues s as an input source, a convenience over
// WithInput for literal program text such as a prelude.
func WithInputString(s string) Option {
	return optionFunc(func(cfg *config) { cfg.inputs = append(cfg.inputs, strings.NewReader(s)) })
}

// WithOutput adds w to the byte sinks written by EMIT. Given more than
// once, every sink is written (teed), in the order supplied. Ignored if
// WithHost is also given.
func WithOutput(w io.Writer) Option {
	return optionFunc(func(cfg *config) {
		if len(cfg.outputs) == 1 && cfg.outputs[0] == io.Discard {
			cfg.outputs = nil
		}
		cfg.outputs = append(cfg.outputs, w)
	})
}
