package forth

func init() {
	defPrim(opStateVar, func(m *Machine) error { m.push(addrSTATE); return nil })
	defPrim(opHereVar, func(m *Machine) error { m.push(addrHERE); return nil })
	defPrim(opLatestVar, func(m *Machine) error { m.push(addrLATEST); return nil })
	defPrim(opS0Var, func(m *Machine) error { m.push(addrS0); return nil })
	defPrim(opBaseVar, func(m *Machine) error { m.push(addrBASE); return nil })

	defPrim(opVersion, func(m *Machine) error { m.push(vmVersion); return nil })
	defPrim(opR0, func(m *Machine) error { m.push(int32(m.ret.Size())); return nil })

	// DOCOL, the named word: pushes the opcode number used as the
	// codeword of every compound definition. Not to be confused with
	// opDOCOL's role as a dispatch marker -- this is an ordinary
	// primitive that happens to expose that marker's numeric value, used
	// by the bootstrap ":" definition to write new codewords via
	// "DOCOL ,".
	defPrim(opDocolConst, func(m *Machine) error { m.push(int32(opDOCOL)); return nil })

	defPrim(opFImmed, func(m *Machine) error { m.push(FImmed); return nil })
	defPrim(opFHidden, func(m *Machine) error { m.push(FHidden); return nil })
	defPrim(opFLenMask, func(m *Machine) error { m.push(FLenMask); return nil })
}
