package forth

// INTERPRET is exposed as a callable primitive (opInterpret) rather than
// being special-cased at the Go level, even though spec.md §4.4's
// primitive bullet list never names it: the bootstrap QUIT definition
// must invoke it by cfa reference inside a compiled BRANCH loop, the same
// way every other word QUIT calls is referenced by cfa.
func init() {
	defPrim(opInterpret, func(m *Machine) error { return m.interpretStep() })
}

// interpretStep performs one INTERPRET cycle: parse a word, look it up,
// and either execute or compile it; failing that, parse it as a number
// and either push or compile its literal value. ctx is checked here for
// cooperative cancellation, once per cycle, per spec.md §5.
func (m *Machine) interpretStep() error {
	if m.ctx != nil {
		if err := m.ctx.Err(); err != nil {
			return err
		}
	}

	addr, n := m.scanWord()

	if entry := m.find(addr, n); entry != 0 {
		cfa := m.cfaOf(entry)
		if m.isImmediate(entry) || m.state() == 0 {
			m.executeCFA(cfa)
		} else {
			m.compileCFA(cfa)
		}
		return nil
	}

	value, unparsed := m.parseNumber(addr, n)
	if unparsed != 0 {
		return ParseError{Word: string(m.bytesAt(addr, n)), Unparsed: int(unparsed)}
	}
	if m.state() == 0 {
		m.push(value)
	} else {
		m.compileCFA(m.litCFA)
		m.compileCell(value)
	}
	return nil
}

// compileCFA appends cfa at HERE, the "comma" step INTERPRET performs
// when compiling a reference to an existing word.
func (m *Machine) compileCFA(cfa int32) { m.compileCell(cfa) }

func (m *Machine) compileCell(v int32) {
	m.storeCell(m.here(), v)
	m.setHere(m.here() + 4)
}
