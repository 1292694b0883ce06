package forth

func init() {
	defPrim(opKey, func(m *Machine) error { // KEY ( -- c )
		m.push(int32(m.readByte()))
		return nil
	})

	defPrim(opEmit, func(m *Machine) error { // EMIT ( c -- )
		m.writeByte(byte(m.pop()))
		return nil
	})

	defPrim(opWord, func(m *Machine) error { // WORD ( -- c-addr u )
		addr, n := m.scanWord()
		m.push(addr)
		m.push(n)
		return nil
	})

	defPrim(opNumber, func(m *Machine) error { // NUMBER ( c-addr u -- n unparsed )
		u, addr := m.pop(), m.pop()
		value, unparsed := m.parseNumber(addr, u)
		m.push(value)
		m.push(unparsed)
		return nil
	})
}
