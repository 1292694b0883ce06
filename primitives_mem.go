package forth

func init() {
	defPrim(opStore, func(m *Machine) error { // ! ( x a-addr -- )
		addr, x := m.pop(), m.pop()
		m.storeCell(addr, x)
		return nil
	})

	defPrim(opFetch, func(m *Machine) error { // @ ( a-addr -- x )
		addr := m.pop()
		m.push(m.fetchCell(addr))
		return nil
	})

	defPrim(opAddStore, func(m *Machine) error { // +! ( n a-addr -- )
		addr, n := m.pop(), m.pop()
		m.storeCell(addr, m.fetchCell(addr)+n)
		return nil
	})

	defPrim(opSubStore, func(m *Machine) error { // -! ( n a-addr -- )
		addr, n := m.pop(), m.pop()
		m.storeCell(addr, m.fetchCell(addr)-n)
		return nil
	})

	defPrim(opCStore, func(m *Machine) error { // C! ( c c-addr -- )
		addr, c := m.pop(), m.pop()
		m.storeByte(addr, byte(c))
		return nil
	})

	defPrim(opCFetch, func(m *Machine) error { // C@ ( c-addr -- c )
		addr := m.pop()
		m.push(int32(m.fetchByte(addr)))
		return nil
	})

	defPrim(opCMove, func(m *Machine) error { // CMOVE ( src dst u -- )
		u, dst, src := m.pop(), m.pop(), m.pop()
		m.copyBytes(dst, src, u)
		return nil
	})

	defPrim(opCFetchCStore, func(m *Machine) error { // C@C! ( src dst -- src+1 dst+1 )
		dst, src := m.pop(), m.pop()
		m.storeByte(dst, m.fetchByte(src))
		m.push(src + 1)
		m.push(dst + 1)
		return nil
	})
}
