package forth

func init() {
	defPrim(opToR, func(m *Machine) error { // >R ( x -- ) ( R: -- x )
		m.rpush(m.pop())
		return nil
	})

	defPrim(opFromR, func(m *Machine) error { // R> ( -- x ) ( R: x -- )
		m.push(m.rpop())
		return nil
	})

	defPrim(opRSPFetch, func(m *Machine) error { // RSP@ ( -- a-addr )
		m.push(m.rsp)
		return nil
	})

	defPrim(opRSPStore, func(m *Machine) error { // RSP! ( a-addr -- )
		addr := m.pop()
		if addr < 0 || addr > int32(m.ret.Size()) {
			return CapacityError{"RSP!", addr, int32(m.ret.Size())}
		}
		m.rsp = addr
		return nil
	})

	defPrim(opRDrop, func(m *Machine) error { // RDROP ( R: x -- )
		m.rpop()
		return nil
	})

	defPrim(opDSPFetch, func(m *Machine) error { // DSP@ ( -- a-addr )
		m.push(m.sp)
		return nil
	})

	defPrim(opDSPStore, func(m *Machine) error { // DSP! ( a-addr -- )
		addr := m.pop()
		if addr < m.here() || addr > int32(m.mem.Size()) {
			return CapacityError{"DSP!", addr, int32(m.mem.Size())}
		}
		m.sp = addr
		return nil
	})
}
