package forth

func init() {
	defPrim(opIncr1, func(m *Machine) error { m.push(m.pop() + 1); return nil })
	defPrim(opDecr1, func(m *Machine) error { m.push(m.pop() - 1); return nil })
	defPrim(opIncr4, func(m *Machine) error { m.push(m.pop() + 4); return nil })
	defPrim(opDecr4, func(m *Machine) error { m.push(m.pop() - 4); return nil })

	defPrim(opAdd, func(m *Machine) error {
		b, a := m.pop(), m.pop()
		m.push(a + b)
		return nil
	})

	defPrim(opSub, func(m *Machine) error {
		b, a := m.pop(), m.pop()
		m.push(a - b)
		return nil
	})

	defPrim(opMul, func(m *Machine) error {
		b, a := m.pop(), m.pop()
		m.push(a * b)
		return nil
	})

	defPrim(opDivMod, func(m *Machine) error {
		n2, n1 := m.pop(), m.pop()
		if n2 == 0 {
			return DivideByZeroError{n1}
		}
		rem, quot := n1%n2, n1/n2
		m.push(rem)
		m.push(quot)
		return nil
	})
}
