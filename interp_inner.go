package forth

// executeCFA fetches the codeword at cfa and dispatches it. Grounded on
// the teacher's call/exec/step trio, adapted from the teacher's
// table-index dispatch scheme to the spec's DOCOL-owns-the-loop threading
// discipline: compound words push/pop IP explicitly instead of relying on
// a trampoline.
func (m *Machine) executeCFA(cfa int32) {
	op := opcode(m.fetchCell(cfa))
	m.executeOp(op, cfa)
}

// executeOp dispatches a single opcode. opDOCOL is special-cased to enter
// a nested threading loop; every other opcode -- including EXIT -- is
// looked up in opcodeTable and invoked as an ordinary primitive.
func (m *Machine) executeOp(op opcode, cfa int32) {
	if m.trace {
		m.logf(">", "op %v @%v", op, cfa)
	}
	if op == opDOCOL {
		m.docol(cfa)
		return
	}
	if op <= opInvalid || int(op) >= len(opcodeTable) || opcodeTable[op] == nil {
		m.halt(OpcodeError{CFA: cfa, Op: int32(op)})
	}
	if err := opcodeTable[op](m); err != nil {
		m.halt(err)
	}
}

// docol runs the threaded body of the compound word whose codeword is at
// cfa: it pushes the caller's IP, sets IP to the first cfa of the
// body, then repeatedly reads the cfa at IP, advances IP one cell, and
// dispatches -- until the opcode just dispatched was EXIT, at which point
// EXIT's own primitive has already popped the return stack back into IP
// and this activation's loop returns.
//
// Because IP is advanced past an opcode's own cfa cell before that
// opcode's primitive runs, primitives with an inline operand (LIT,
// LITSTRING, BRANCH, 0BRANCH) see IP already pointing at their operand
// cell, not at their own cfa.
func (m *Machine) docol(cfa int32) {
	m.rpush(m.ip)
	m.ip = cfa + 4
	for {
		nextCFA := m.fetchCell(m.ip)
		m.ip += 4
		op := opcode(m.fetchCell(nextCFA))
		m.executeOp(op, nextCFA)
		if op == opEXIT {
			return
		}
	}
}

func init() {
	defPrim(opEXIT, func(m *Machine) error {
		m.ip = m.rpop()
		return nil
	})
}
