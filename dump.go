package forth

import (
	"fmt"
	"io"
	"strconv"

	"forthvm/internal/ctlnames"
)

// Dumper renders a textual dump of a Machine's state to out: its register
// values, both stacks, and the dictionary walked from LATEST back to the
// sentinel. Grounded on the teacher's vmDumper, generalized from its
// fixed-offset low-memory layout to this machine's named variable cells and
// link+flags+length+name+codeword+param entry layout.
type Dumper struct {
	m   *Machine
	out io.Writer
}

// NewDumper builds a Dumper that writes to out.
func NewDumper(m *Machine, out io.Writer) Dumper { return Dumper{m: m, out: out} }

// Dump writes the full textual dump.
func (d Dumper) Dump() {
	here := d.m.here()
	fmt.Fprintf(d.out, "# Machine Dump\n")
	fmt.Fprintf(d.out, "  HERE=%v LATEST=%v STATE=%v BASE=%v\n",
		here, d.m.latest(), d.m.state(), d.m.base())
	fmt.Fprintf(d.out, "  IP=%v SP=%v RSP=%v\n", d.m.ip, d.m.sp, d.m.rsp)

	fmt.Fprintf(d.out, "  stack: %v\n", d.m.snapshotDataStack())
	fmt.Fprintf(d.out, "  return: %v\n", d.m.snapshotReturnStack())

	d.dumpDictionary(here)
}

func (d Dumper) dumpDictionary(here int32) {
	fmt.Fprintf(d.out, "# Dictionary\n")
	entries := d.walkEntries()
	for i := len(entries) - 1; i >= 0; i-- {
		addr := entries[i]
		flagsLen := d.m.entryFlags(addr)
		length := int32(flagsLen & FLenMask)
		name := renderName(d.m.bytesAt(addr+5, length))
		cfa := d.m.cfaOf(addr)

		var tag string
		if flagsLen&FImmed != 0 {
			tag += " immediate"
		}
		if flagsLen&FHidden != 0 {
			tag += " hidden"
		}
		fmt.Fprintf(d.out, "  @%v %s%s cfa=@%v", addr, name, tag, cfa)

		op := opcode(d.m.fetchCell(cfa))
		if op == opDOCOL {
			end := here
			if i+1 < len(entries) {
				end = entries[i+1]
			}
			fmt.Fprintf(d.out, " : %s\n", d.formatBody(cfa+4, end))
		} else {
			fmt.Fprintf(d.out, " (%v)\n", op)
		}
	}
}

// walkEntries returns every dictionary entry address, from the very first
// defined word (dictionary start) to LATEST, by first walking LATEST's link
// chain back to the sentinel and then reversing it.
func (d Dumper) walkEntries() []int32 {
	var addrs []int32
	for addr := d.m.latest(); addr != 0; addr = d.m.fetchCell(addr) {
		addrs = append(addrs, addr)
	}
	for i, j := 0, len(addrs)-1; i < j; i, j = i+1, j-1 {
		addrs[i], addrs[j] = addrs[j], addrs[i]
	}
	return addrs
}

// renderName renders a dictionary entry's name bytes for display: CREATE
// accepts any name WORD can scan, which excludes whitespace but not every
// control or high byte, so a dump must not assume the name is plain ASCII.
func renderName(name []byte) string {
	var out []byte
	for _, b := range name {
		out = append(out, ctlnames.Printable(b)...)
	}
	return string(out)
}

// formatBody renders the cfa cells of a compound word's body from start up
// to (not including) end as a space-separated list of raw decimal cell
// values, cfas and inline operands alike.
func (d Dumper) formatBody(start, end int32) string {
	var out []byte
	for addr := start; addr < end; addr += 4 {
		if len(out) > 0 {
			out = append(out, ' ')
		}
		cell := d.m.fetchCell(addr)
		out = append(out, strconv.Itoa(int(cell))...)
	}
	return string(out)
}
