package forth

// Thin halting wrappers around the data-space arena, used by every
// component that touches data space directly (dictionary management, the
// inner interpreter, the memory primitives). A failed access is always
// fatal per spec.md §4.1, so these never return an error -- they halt.

func (m *Machine) fetchCell(addr int32) int32 {
	v, err := m.mem.FetchCell(int(addr))
	if err != nil {
		m.halt(MemoryError{"fetch", addr, err})
	}
	return v
}

func (m *Machine) storeCell(addr, v int32) {
	if err := m.mem.StoreCell(int(addr), v); err != nil {
		m.halt(MemoryError{"store", addr, err})
	}
}

func (m *Machine) fetchByte(addr int32) byte {
	v, err := m.mem.FetchByte(int(addr))
	if err != nil {
		m.halt(MemoryError{"fetch", addr, err})
	}
	return v
}

func (m *Machine) storeByte(addr int32, v byte) {
	if err := m.mem.StoreByte(int(addr), v); err != nil {
		m.halt(MemoryError{"store", addr, err})
	}
}

func (m *Machine) bytesAt(addr, n int32) []byte {
	b, err := m.mem.Bytes(int(addr), int(n))
	if err != nil {
		m.halt(MemoryError{"fetch", addr, err})
	}
	return b
}

func (m *Machine) copyBytes(dst, src, n int32) {
	if err := m.mem.CopyBytes(int(dst), int(src), int(n)); err != nil {
		m.halt(MemoryError{"copy", src, err})
	}
}
