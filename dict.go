package forth

// createEntry builds a new dictionary header for the name found at
// nameAddr/length in data space: aligns HERE, writes the link back to the
// old LATEST, advances LATEST to the new entry, writes the flags+length
// byte (name length clamped to FLenMask) followed by the name bytes, then
// aligns HERE again. It leaves HERE pointing at the code field the caller
// writes next. Grounded on the teacher's compileHeader, rewritten to the
// spec's link+flags+length+name+pad+codeword+param layout.
func (m *Machine) createEntry(nameAddr, nameLen int32) (entryAddr int32) {
	return m.createEntryBytes(m.bytesAt(nameAddr, nameLen))
}

// createEntryBytes is createEntry's core, taking the name as a Go byte
// slice so bootstrap code can register a primitive or compound word by Go
// string literal without first copying it into data space.
func (m *Machine) createEntryBytes(name []byte) (entryAddr int32) {
	length := int32(len(name))
	if length > FLenMask {
		length = FLenMask
		name = name[:length]
	}

	here := alignUp(m.here())
	entryAddr = here

	old := m.latest()
	m.storeCell(here, old)
	here += 4

	m.storeByte(here, byte(length))
	here++

	for i := int32(0); i < length; i++ {
		m.storeByte(here+i, name[i])
	}
	here += length

	here = alignUp(here)
	m.setHere(here)
	m.setLatest(entryAddr)
	return entryAddr
}

// cfaOf computes the code-field address of the entry at entryAddr: past
// the link cell and the flags+length byte and name bytes, rounded up to a
// cell boundary.
func (m *Machine) cfaOf(entryAddr int32) int32 {
	flagsLen := m.fetchByte(entryAddr + 4)
	length := int32(flagsLen & FLenMask)
	return alignUp(entryAddr + 4 + 1 + length)
}

// find walks the dictionary from LATEST looking for a non-hidden entry
// whose name matches the length bytes at nameAddr exactly. Returns the
// entry address, or 0 if none matches -- 0 is never a valid entry address
// since it is the reserved sentinel.
func (m *Machine) find(nameAddr, length int32) int32 {
	return m.findBytes(m.bytesAt(nameAddr, length))
}

// findBytes is find's core, taking the name directly as a Go byte slice so
// bootstrap code can resolve a word by its Go string literal without first
// copying it into data space.
func (m *Machine) findBytes(name []byte) int32 {
	length := int32(len(name))
	for addr := m.latest(); addr != 0; addr = m.fetchCell(addr) {
		flagsLen := m.fetchByte(addr + 4)
		// masking with FHidden|FLenMask rejects hidden entries outright:
		// a set hidden bit pushes the masked value to >= FHidden, which
		// can never equal a plain length (< FHidden).
		if int32(flagsLen&(FHidden|FLenMask)) != length {
			continue
		}
		entryName := m.bytesAt(addr+5, length)
		if bytesEqual(entryName, name) {
			return addr
		}
	}
	return 0
}

func (m *Machine) findName(name string) int32 { return m.findBytes([]byte(name)) }

// entryFlags returns the flags+length byte of the entry at entryAddr.
func (m *Machine) entryFlags(entryAddr int32) byte {
	return m.fetchByte(entryAddr + 4)
}

func (m *Machine) setEntryFlags(entryAddr int32, flagsLen byte) {
	m.storeByte(entryAddr+4, flagsLen)
}

func (m *Machine) toggleImmediate(entryAddr int32) {
	m.setEntryFlags(entryAddr, m.entryFlags(entryAddr)^FImmed)
}

func (m *Machine) toggleHidden(entryAddr int32) {
	m.setEntryFlags(entryAddr, m.entryFlags(entryAddr)^FHidden)
}

func (m *Machine) isImmediate(entryAddr int32) bool {
	return m.entryFlags(entryAddr)&FImmed != 0
}

func alignUp(addr int32) int32 {
	const cell = 4
	return (addr + cell - 1) / cell * cell
}

func bytesEqual(a, b []byte) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}
