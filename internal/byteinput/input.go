// Package byteinput implements sequential byte reading across a queue of
// input streams, tracking line/column location for diagnostics the way a
// FORTH outer interpreter needs when reporting a parse error.
//
// Unlike a rune-oriented reader, byteinput never decodes UTF-8: a hosted
// FORTH system parses bytes, and WORD needs to push back exactly one byte
// when it oversteps a delimiter while scanning a name.
package byteinput

import (
	"bufio"
	"bytes"
	"fmt"
	"io"
)

// Location names a line in a named input stream.
type Location struct {
	Name string
	Line int
}

func (loc Location) String() string { return fmt.Sprintf("%v:%v", loc.Name, loc.Line) }

// Line combines a Location with the bytes scanned so far on it.
type Line struct {
	Location
	bytes.Buffer
}

func (il Line) String() string { return fmt.Sprintf("%v %q", il.Location, il.Buffer.String()) }

// Input reads bytes sequentially from a queue of io.Reader streams,
// tracking the current and most recently completed Line for diagnostics.
type Input struct {
	br    *bufio.Reader
	Queue []io.Reader
	Last  Line
	Scan  Line
}

// Push appends r to the queue of streams to read after the current one (and
// any already queued) are exhausted.
func (in *Input) Push(r io.Reader) { in.Queue = append(in.Queue, r) }

// ReadByte reads one byte from the current stream, advancing to the next
// queued stream on EOF, and rolling Scan over to Last after a line feed.
func (in *Input) ReadByte() (byte, error) {
	if in.br == nil && !in.nextIn() {
		return 0, io.EOF
	}

	b, err := in.br.ReadByte()
	for err == io.EOF && in.nextIn() {
		b, err = in.br.ReadByte()
	}
	if err != nil {
		return 0, err
	}

	if b == '\n' {
		in.nextLine()
	} else {
		in.Scan.WriteByte(b)
	}
	return b, nil
}

// UnreadByte pushes the last byte read by ReadByte back onto the current
// stream, so the next ReadByte call returns it again. It is an error to
// call UnreadByte without a prior ReadByte, or more than once in a row.
// Unreading a newline does not restore the Line/Scan split; callers that
// scan delimited words never need to, since WORD only pushes back the
// non-blank byte that ended a name.
func (in *Input) UnreadByte() error {
	if in.br == nil {
		return bufio.ErrInvalidUnreadByte
	}
	if err := in.br.UnreadByte(); err != nil {
		return err
	}
	if in.Scan.Len() > 0 {
		in.Scan.Truncate(in.Scan.Len() - 1)
	}
	return nil
}

func (in *Input) nextLine() {
	in.Last.Reset()
	in.Last.Name = in.Scan.Name
	in.Last.Line = in.Scan.Line
	in.Last.Write(in.Scan.Bytes())
	in.Scan.Reset()
	in.Scan.Line++
}

func (in *Input) nextIn() bool {
	in.nextLine()
	if in.br != nil {
		in.br = nil
	}
	for len(in.Queue) > 0 {
		r := in.Queue[0]
		in.Queue = in.Queue[1:]
		if r == nil {
			continue
		}
		in.br = bufio.NewReader(r)
		in.Scan.Name = nameOf(r)
		in.Scan.Line = 1
		return true
	}
	return false
}

func nameOf(obj interface{}) string {
	if nom, ok := obj.(interface{ Name() string }); ok {
		return nom.Name()
	}
	return fmt.Sprintf("<unnamed %T>", obj)
}
