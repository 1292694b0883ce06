package forth

// bootstrap populates the dictionary: every primitive opcode gets a
// defcode entry, then the handful of compound words the spec requires to
// exist before a prelude can load are built with defword. Grounded on the
// teacher's compileBuiltins/compileEntry, generalized from the teacher's
// fixed FIRST-primitive list to the full opcode set plus the five
// bootstrap compound words (":", ";", ">DFA", "HIDE", "QUIT").
func (m *Machine) bootstrap() {
	for op := opDOCOL; op < opCount; op++ {
		name := opcodeNames[op]
		if name == "" {
			continue
		}
		var flags byte
		switch op {
		case opLBracket:
			// "[" must run immediately even while compiling, so a
			// definition can drop back to interpreting mid-compile.
			flags = FImmed
		case opImmediate:
			// IMMEDIATE toggles the flag of the word currently being
			// defined; it has to run the moment it's encountered, not
			// get compiled in like an ordinary call, so every "NAME
			// IMMEDIATE ..." definition works as written.
			flags = FImmed
		}
		m.defcode(name, op, flags)
	}

	// : ( "name" -- ) reads the next word, creates a header, writes DOCOL
	// as its codeword, hides it from FIND while its own definition can
	// still refer to an outer word of the same name, and switches to
	// compiling.
	m.defword(":", 0,
		"WORD", "CREATE",
		"DOCOL", ",", // write the DOCOL codeword via the DOCOL primitive's pushed value
		"LATEST", "@", "HIDDEN",
		"]",
		"EXIT",
	)

	// ; ( -- ) IMMEDIATE: appends the cfa of EXIT to the word currently
	// being compiled, unhides the newest entry, and returns to
	// interpreting. Executes immediately rather than compiling because of
	// its FImmed flag.
	exitCFA := m.cfaOf(m.findName("EXIT"))
	m.defword(";", FImmed,
		"LIT", exitCFA, ",",
		"LATEST", "@", "HIDDEN",
		"LIT", int32(0), "STATE", "!",
		"EXIT",
	)

	// >DFA ( entry-addr -- data-field-addr )
	m.defword(">DFA", 0,
		">CFA", "4+",
		"EXIT",
	)

	// HIDE ( "name" -- ) parses a word, finds it, and toggles HIDDEN.
	m.defword("HIDE", 0,
		"WORD", "FIND", "HIDDEN",
		"EXIT",
	)

	// QUIT resets the return stack, then loops INTERPRET forever via an
	// unconditional BRANCH back to itself.
	m.defword("QUIT", 0,
		"R0", "RSP!",
		"INTERPRET",
		"BRANCH", int32(-8),
	)

	m.bootstrapControlFlow()

	m.litCFA = m.cfaOf(m.findName("LIT"))
	m.quitCFA = m.cfaOf(m.findName("QUIT"))
}

// bootstrapControlFlow defines IF/THEN/ELSE/BEGIN/UNTIL/WHILE/REPEAT/AGAIN
// and UNLESS. These can't be written as ordinary FORTH source the way the
// rest of the prelude is: each one back-patches a branch offset into
// whatever word is currently being compiled, which needs the cfa of
// 0BRANCH/BRANCH available as a compile-time constant. The teacher's
// assembly bootstrap (third.go's "notbranch"/"maybebranch" section) faces
// the identical problem and solves it the same way: build the handful of
// control words with direct knowledge of the primitives' addresses instead
// of trying to parse them out of source text.
func (m *Machine) bootstrapControlFlow() {
	cfa0Branch := m.cfaOf(m.findName("0BRANCH"))
	cfaBranch := m.cfaOf(m.findName("BRANCH"))

	// IF ( -- backpatch-addr ) IMMEDIATE: compiles a call to 0BRANCH
	// followed by a dummy offset cell, and leaves the address of that cell
	// on the stack for THEN or ELSE to fill in.
	m.defword("IF", FImmed,
		"LIT", cfa0Branch, ",",
		"HERE", "@",
		"LIT", int32(0), ",",
		"EXIT",
	)

	// THEN ( backpatch-addr -- ) IMMEDIATE: patches the offset at
	// backpatch-addr to land on the current HERE.
	m.defword("THEN", FImmed,
		"DUP", "HERE", "@", "SWAP", "-", "SWAP", "!",
		"EXIT",
	)

	// ELSE ( backpatch-addr1 -- backpatch-addr2 ) IMMEDIATE: compiles an
	// unconditional BRANCH past the false branch, patches backpatch-addr1
	// (IF's 0BRANCH) to land just after that BRANCH, and leaves the new
	// BRANCH's offset cell address for THEN to patch.
	m.defword("ELSE", FImmed,
		"LIT", cfaBranch, ",",
		"HERE", "@",
		"LIT", int32(0), ",",
		"SWAP",
		"DUP", "HERE", "@", "SWAP", "-", "SWAP", "!",
		"EXIT",
	)

	// BEGIN ( -- loop-addr ) IMMEDIATE: marks the loop's start.
	m.defword("BEGIN", FImmed,
		"HERE", "@",
		"EXIT",
	)

	// UNTIL ( loop-addr -- ) IMMEDIATE: compiles a 0BRANCH back to
	// loop-addr; the offset is computable immediately since both ends are
	// already known.
	m.defword("UNTIL", FImmed,
		"LIT", cfa0Branch, ",",
		"HERE", "@", "-", ",",
		"EXIT",
	)

	// AGAIN ( loop-addr -- ) IMMEDIATE: like UNTIL but unconditional.
	m.defword("AGAIN", FImmed,
		"LIT", cfaBranch, ",",
		"HERE", "@", "-", ",",
		"EXIT",
	)

	// WHILE ( loop-addr -- loop-addr backpatch-addr ) IMMEDIATE: same
	// compiled shape as IF, used between BEGIN and REPEAT.
	m.defword("WHILE", FImmed,
		"LIT", cfa0Branch, ",",
		"HERE", "@",
		"LIT", int32(0), ",",
		"EXIT",
	)

	// REPEAT ( loop-addr backpatch-addr -- ) IMMEDIATE: compiles an
	// unconditional BRANCH back to loop-addr, then patches backpatch-addr
	// (WHILE's 0BRANCH) to land just after it. backpatch-addr is stashed on
	// the return stack while the BRANCH's own offset is compiled, so that
	// loop-addr is the only value live on the data stack at that point.
	m.defword("REPEAT", FImmed,
		"LIT", cfaBranch, ",",
		">R",
		"HERE", "@", "-", ",",
		"R>",
		"DUP", "HERE", "@", "SWAP", "-", "SWAP", "!",
		"EXIT",
	)

	// UNLESS ( -- backpatch-addr ) IMMEDIATE: IF with an inverted test.
	m.defword("UNLESS", FImmed,
		"LIT", m.cfaOf(m.findName("0=")), ",",
		"IF",
		"EXIT",
	)

	// RECURSE ( -- ) IMMEDIATE: compiles a call to the word currently being
	// defined. Needed because ":" hides LATEST for the duration of its own
	// definition (so a word can be redefined in terms of its old self),
	// which means an ordinary self-reference by name wouldn't resolve via
	// FIND; RECURSE goes straight to LATEST instead.
	m.defword("RECURSE", FImmed,
		"LATEST", "@", ">CFA", ",",
		"EXIT",
	)
}

// defcode registers a primitive: a header whose codeword is the opcode
// itself, with no parameter field.
func (m *Machine) defcode(name string, op opcode, flags byte) int32 {
	entry := m.createEntryBytes([]byte(name))
	m.storeCell(m.here(), int32(op))
	m.setHere(m.here() + 4)
	if flags != 0 {
		m.setEntryFlags(entry, m.entryFlags(entry)|flags)
	}
	return entry
}

// defword registers a compound word: a header whose codeword is opDOCOL,
// followed by the cfa of each named word in body (resolved against the
// dictionary as built so far) or, for an int32 item, a raw cell appended
// verbatim -- used for BRANCH/0BRANCH's inline offset operand and for a
// placeholder literal patched in afterward.
func (m *Machine) defword(name string, flags byte, body ...interface{}) int32 {
	entry := m.createEntryBytes([]byte(name))
	m.storeCell(m.here(), int32(opDOCOL))
	m.setHere(m.here() + 4)

	for _, item := range body {
		switch v := item.(type) {
		case string:
			target := m.findName(v)
			if target == 0 {
				panic("forth: bootstrap reference to undefined word " + v)
			}
			m.compileCell(m.cfaOf(target))
		case int32:
			m.compileCell(v)
		default:
			panic("forth: bootstrap body item must be string or int32")
		}
	}

	if flags != 0 {
		m.setEntryFlags(entry, m.entryFlags(entry)|flags)
	}
	return entry
}
