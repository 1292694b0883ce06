package forth

func init() {
	defPrim(opBye, func(m *Machine) error { // BYE
		m.halt(nil)
		return nil // unreachable: halt panics
	})

	defPrim(opUnused, func(m *Machine) error { // UNUSED ( -- u )
		// remaining data-space cells between HERE and the data stack's
		// current top: the stack occupies the top of data space, so free
		// space for dictionary growth ends at SP, not at the arena size.
		m.push((m.sp - m.here()) / 4)
		return nil
	})
}
