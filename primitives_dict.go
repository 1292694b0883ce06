package forth

func init() {
	defPrim(opFind, func(m *Machine) error { // FIND ( c-addr u -- entry-addr|0 )
		u, addr := m.pop(), m.pop()
		m.push(m.find(addr, u))
		return nil
	})

	defPrim(opToCFA, func(m *Machine) error { // >CFA ( entry-addr -- cfa )
		addr := m.pop()
		m.push(m.cfaOf(addr))
		return nil
	})

	defPrim(opCreate, func(m *Machine) error { // CREATE ( c-addr u -- )
		u, addr := m.pop(), m.pop()
		m.createEntry(addr, u)
		return nil
	})

	defPrim(opComma, func(m *Machine) error { // , ( x -- )
		x := m.pop()
		m.storeCell(m.here(), x)
		m.setHere(m.here() + 4)
		return nil
	})

	defPrim(opLBracket, func(m *Machine) error { m.setState(0); return nil }) // [
	defPrim(opRBracket, func(m *Machine) error { m.setState(1); return nil }) // ]

	defPrim(opImmediate, func(m *Machine) error { // IMMEDIATE
		m.toggleImmediate(m.latest())
		return nil
	})

	defPrim(opHidden, func(m *Machine) error { // HIDDEN ( a-addr -- )
		m.toggleHidden(m.pop())
		return nil
	})

	// ' (tick): per spec.md §4.4, behaves exactly as LIT when its opcode
	// is reached -- fetch the inline operand cell at IP, push it, and
	// advance IP. Neither ":" nor INTERPRET resolves the following source
	// word into tick's operand: a compiled ' pushes whatever cell comes
	// next in the body, exactly as LIT does.
	defPrim(opTick, func(m *Machine) error {
		v := m.fetchCell(m.ip)
		m.push(v)
		m.ip += 4
		return nil
	})

	defPrim(opChar, func(m *Machine) error { // CHAR ( -- char )
		addr, n := m.scanWord()
		if n == 0 {
			return CapacityError{"CHAR: expected a word", 0, 0}
		}
		m.push(int32(m.fetchByte(addr)))
		return nil
	})

	defPrim(opExecute, func(m *Machine) error { // EXECUTE ( xt -- )
		cfa := m.pop()
		m.executeCFA(cfa)
		return nil
	})
}
