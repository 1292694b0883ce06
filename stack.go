package forth

// The data stack occupies the top of data space, growing downward from
// dataspace.len; the return stack is a wholly separate byte buffer with
// its own pointer, also growing downward. Both are manipulated only
// through these helpers so SP/RSP bookkeeping lives in one place.

func (m *Machine) push(v int32) {
	sp := m.sp - 4
	if sp < m.here() || sp < 0 {
		m.halt(StackError{"data", "push", m.sp})
	}
	m.storeCell(sp, v)
	m.sp = sp
}

func (m *Machine) pop() int32 {
	if m.sp+4 > int32(m.mem.Size()) {
		m.halt(StackError{"data", "pop", m.sp})
	}
	v := m.fetchCell(m.sp)
	m.sp += 4
	return v
}

func (m *Machine) pick(depth int32) int32 {
	addr := m.sp + depth*4
	if addr < 0 || addr+4 > int32(m.mem.Size()) {
		m.halt(StackError{"data", "pick", addr})
	}
	return m.fetchCell(addr)
}

func (m *Machine) dropCells(n int32) {
	sp := m.sp + n*4
	if sp < 0 || sp > int32(m.mem.Size()) {
		m.halt(StackError{"data", "drop", sp})
	}
	m.sp = sp
}

func (m *Machine) rpush(v int32) {
	rsp := m.rsp - 4
	if rsp < 0 {
		m.halt(StackError{"return", "push", m.rsp})
	}
	if err := m.ret.StoreCell(int(rsp), v); err != nil {
		m.halt(MemoryError{"store", rsp, err})
	}
	m.rsp = rsp
}

func (m *Machine) rpop() int32 {
	if m.rsp+4 > int32(m.ret.Size()) {
		m.halt(StackError{"return", "pop", m.rsp})
	}
	v, err := m.ret.FetchCell(int(m.rsp))
	if err != nil {
		m.halt(MemoryError{"fetch", m.rsp, err})
	}
	m.rsp += 4
	return v
}
