package forth

// LIT, LITSTRING, BRANCH, and 0BRANCH all carry an inline operand in the
// cell(s) immediately following their own cfa in a compiled body. Because
// docol's threading loop advances IP past an opcode's cfa before
// dispatching it, each of these sees IP already pointing at its operand.

func init() {
	defPrim(opLit, func(m *Machine) error {
		v := m.fetchCell(m.ip)
		m.push(v)
		m.ip += 4
		return nil
	})

	defPrim(opLitString, func(m *Machine) error {
		length := m.fetchCell(m.ip)
		addr := m.ip + 4
		m.push(addr)
		m.push(length)
		m.ip = alignUp(addr + length)
		return nil
	})

	defPrim(opBranch, func(m *Machine) error {
		offset := m.fetchCell(m.ip)
		m.ip += offset
		return nil
	})

	defPrim(op0Branch, func(m *Machine) error {
		offset := m.fetchCell(m.ip)
		if m.pop() == 0 {
			m.ip += offset
		} else {
			m.ip += 4
		}
		return nil
	})
}
