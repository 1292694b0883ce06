package forth

// Snapshot is a read-only introspection view of a Machine, for tests and
// for the CLI's optional post-run dump. Grounded on the teacher's
// vmDumper, which renders similar state for its trace output.
type Snapshot struct {
	HERE, LATEST, STATE, BASE int32
	IP, SP, RSP               int32
	Stack                     []int32
	ReturnStack               []int32
	Dict                      []byte // data-space bytes [0, HERE)
}

// Snapshot captures the machine's current register and memory state. The
// returned slices are copies, safe to retain across further execution.
func (m *Machine) Snapshot() Snapshot {
	here := m.here()
	dict := make([]byte, here)
	copy(dict, m.bytesAt(0, here))

	return Snapshot{
		HERE:        here,
		LATEST:      m.latest(),
		STATE:       m.state(),
		BASE:        m.base(),
		IP:          m.ip,
		SP:          m.sp,
		RSP:         m.rsp,
		Stack:       m.snapshotDataStack(),
		ReturnStack: m.snapshotReturnStack(),
		Dict:        dict,
	}
}

// snapshotDataStack lists the data stack bottom first, top of stack last.
func (m *Machine) snapshotDataStack() []int32 {
	n := (int32(m.mem.Size()) - m.sp) / 4
	out := make([]int32, n)
	for i := int32(0); i < n; i++ {
		out[n-1-i] = m.fetchCell(m.sp + i*4)
	}
	return out
}

func (m *Machine) snapshotReturnStack() []int32 {
	n := (int32(m.ret.Size()) - m.rsp) / 4
	out := make([]int32, n)
	for i := int32(0); i < n; i++ {
		v, err := m.ret.FetchCell(int(m.rsp + i*4))
		if err != nil {
			m.halt(MemoryError{"fetch", m.rsp + i*4, err})
		}
		out[i] = v
	}
	return out
}
