package forth

func init() {
	defPrim(opDrop, func(m *Machine) error { m.pop(); return nil })

	defPrim(opSwap, func(m *Machine) error {
		a, b := m.pop(), m.pop()
		m.push(a)
		m.push(b)
		return nil
	})

	defPrim(opDup, func(m *Machine) error {
		x := m.pick(0)
		m.push(x)
		return nil
	})

	defPrim(opOver, func(m *Machine) error {
		x := m.pick(1)
		m.push(x)
		return nil
	})

	defPrim(opRot, func(m *Machine) error {
		c, b, a := m.pop(), m.pop(), m.pop()
		m.push(b)
		m.push(c)
		m.push(a)
		return nil
	})

	defPrim(opNRot, func(m *Machine) error {
		c, b, a := m.pop(), m.pop(), m.pop()
		m.push(c)
		m.push(a)
		m.push(b)
		return nil
	})

	defPrim(op2Drop, func(m *Machine) error {
		m.pop()
		m.pop()
		return nil
	})

	defPrim(op2Dup, func(m *Machine) error {
		b := m.pick(0)
		a := m.pick(1)
		m.push(a)
		m.push(b)
		return nil
	})

	defPrim(op2Swap, func(m *Machine) error {
		d, c, b, a := m.pop(), m.pop(), m.pop(), m.pop()
		m.push(c)
		m.push(d)
		m.push(a)
		m.push(b)
		return nil
	})

	defPrim(opQDup, func(m *Machine) error {
		x := m.pick(0)
		if x != 0 {
			m.push(x)
		}
		return nil
	})
}
