// Package flushio wraps io.Writer destinations with a uniform Flush, so the
// machine's output hook and the CLI's leveled log writer can share one
// "write then flush after every primitive" discipline regardless of what
// actually backs the writer.
package flushio

import (
	"bufio"
	"io"
)

// WriteFlusher is a flush-able io.Writer.
type WriteFlusher interface {
	io.Writer
	Flush() error
}

var discard WriteFlusher = nopFlusher{io.Discard}

// NewWriteFlusher wraps w so it can be flushed: io.Discard and in-memory
// buffers get a no-op Flush, a writer that already implements WriteFlusher
// is returned as-is, and anything else gets a buffered wrapper.
func NewWriteFlusher(w io.Writer) WriteFlusher {
	if w == io.Discard {
		return discard
	}
	if wf, ok := w.(WriteFlusher); ok {
		return wf
	}

	type buffer interface {
		io.Writer
		Cap() int
		Len() int
		Grow(n int)
		Reset()
	}
	if _, isBuffer := w.(buffer); isBuffer {
		return nopFlusher{w}
	}

	return bufio.NewWriter(w)
}

type nopFlusher struct{ io.Writer }

func (nf nopFlusher) Flush() error { return nil }

// WriteFlushers fans writes and flushes out to every wf, flattening any
// nested WriteFlushers passed in. Returns nil for zero inputs, the single
// input unwrapped for one.
func WriteFlushers(wfs ...WriteFlusher) WriteFlusher {
	flat := flattenWriteFlushers(nil, wfs...)
	switch len(flat) {
	case 0:
		return nil
	case 1:
		return flat[0]
	default:
		return flat
	}
}

type writeFlushers []WriteFlusher

func (wfs writeFlushers) Write(p []byte) (n int, err error) {
	for _, wf := range wfs {
		n, err = wf.Write(p)
		if err != nil {
			return n, err
		}
		if n != len(p) {
			return n, io.ErrShortWrite
		}
	}
	return len(p), nil
}

func (wfs writeFlushers) Flush() (err error) {
	for _, wf := range wfs {
		if ferr := wf.Flush(); err == nil {
			err = ferr
		}
	}
	return err
}

func flattenWriteFlushers(all writeFlushers, some ...WriteFlusher) writeFlushers {
	for _, one := range some {
		if many, ok := one.(writeFlushers); ok {
			all = append(all, many...)
		} else if one != nil {
			all = append(all, one)
		}
	}
	return all
}
