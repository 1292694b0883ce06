package forth

func boolCell(b bool) int32 {
	if b {
		return 1
	}
	return 0
}

func init() {
	binCompare := func(cmp func(a, b int32) bool) func(m *Machine) error {
		return func(m *Machine) error {
			b, a := m.pop(), m.pop()
			m.push(boolCell(cmp(a, b)))
			return nil
		}
	}
	defPrim(opEq, binCompare(func(a, b int32) bool { return a == b }))
	defPrim(opNe, binCompare(func(a, b int32) bool { return a != b }))
	defPrim(opLt, binCompare(func(a, b int32) bool { return a < b }))
	defPrim(opGt, binCompare(func(a, b int32) bool { return a > b }))
	defPrim(opLe, binCompare(func(a, b int32) bool { return a <= b }))
	defPrim(opGe, binCompare(func(a, b int32) bool { return a >= b }))

	unCompare := func(cmp func(a int32) bool) func(m *Machine) error {
		return func(m *Machine) error {
			a := m.pop()
			m.push(boolCell(cmp(a)))
			return nil
		}
	}
	defPrim(opZeroEq, unCompare(func(a int32) bool { return a == 0 }))
	defPrim(opZeroNe, unCompare(func(a int32) bool { return a != 0 }))
	defPrim(opZeroLt, unCompare(func(a int32) bool { return a < 0 }))
	defPrim(opZeroGt, unCompare(func(a int32) bool { return a > 0 }))
	defPrim(opZeroLe, unCompare(func(a int32) bool { return a <= 0 }))
	defPrim(opZeroGe, unCompare(func(a int32) bool { return a >= 0 }))

	defPrim(opAnd, func(m *Machine) error {
		b, a := m.pop(), m.pop()
		m.push(a & b)
		return nil
	})
	defPrim(opOr, func(m *Machine) error {
		b, a := m.pop(), m.pop()
		m.push(a | b)
		return nil
	})
	defPrim(opXor, func(m *Machine) error {
		b, a := m.pop(), m.pop()
		m.push(a ^ b)
		return nil
	})
	defPrim(opInvert, func(m *Machine) error {
		m.push(^m.pop())
		return nil
	})
}
