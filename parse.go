package forth

// readByte reads one host byte, invoking the EOF hook and halting with its
// result when the input is exhausted. Used by both KEY and WORD's skip/
// scan loops, since both are EOF-sensitive per spec.md §4.4/§6.
func (m *Machine) readByte() byte {
	b, err := m.host.ReadByte()
	if err != nil {
		m.halt(m.host.OnEOF())
	}
	return b
}

func (m *Machine) writeByte(b byte) {
	if err := m.host.WriteByte(b); err != nil {
		m.halt(err)
	}
}

const byteWhitespaceMax = 0x20 // any byte <= this is whitespace

// scanWord implements WORD: skip whitespace and `\`-to-end-of-line
// comments, then read non-whitespace bytes into the WORD buffer. Returns
// the buffer address and the byte count.
func (m *Machine) scanWord() (addr, length int32) {
	var b byte
	for {
		b = m.readByte()
		if b == '\\' {
			for b != '\n' {
				b = m.readByte()
			}
			continue
		}
		if b > byteWhitespaceMax {
			break
		}
	}

	length = 0
	for {
		if length >= wordBufSize {
			m.halt(CapacityError{"WORD buffer overflow", length, wordBufSize})
		}
		m.storeByte(addrWORD+length, b)
		length++

		b = m.readByteOrSentinel()
		if b <= byteWhitespaceMax {
			break
		}
	}
	return addrWORD, length
}

// readByteOrSentinel reads one byte, returning a whitespace sentinel (0)
// on EOF instead of halting, since EOF terminating a word in progress is
// not itself an error -- the word parsed so far is still valid.
func (m *Machine) readByteOrSentinel() byte {
	b, err := m.host.ReadByte()
	if err != nil {
		return 0
	}
	return b
}

// parseNumber implements NUMBER: parse the u bytes at addr against BASE.
// A leading '-' is a sign. Digits are 0-9 then uppercase A-Z only, mapping
// to 10..35; any byte whose digit value is >= BASE stops parsing. Returns
// the accumulated value and the count of unconsumed bytes (0 on full
// success). Empty input returns (0, 0).
func (m *Machine) parseNumber(addr, u int32) (value, unparsed int32) {
	if u == 0 {
		return 0, 0
	}
	base := m.base()
	bytes := m.bytesAt(addr, u)

	i := 0
	neg := false
	if bytes[0] == '-' {
		neg = true
		i = 1
	}

	var acc int32
	parsed := 0
	for ; i < len(bytes); i++ {
		d, ok := digitValue(bytes[i])
		if !ok || int32(d) >= base {
			break
		}
		acc = acc*base + int32(d)
		parsed++
	}

	if parsed == 0 {
		// no digit consumed: a lone '-' (or an immediately-stopping
		// byte) leaves everything, including the sign, unparsed.
		return 0, int32(len(bytes))
	}
	if neg {
		acc = -acc
	}
	return acc, int32(len(bytes)) - int32(i)
}

func digitValue(b byte) (int, bool) {
	switch {
	case b >= '0' && b <= '9':
		return int(b - '0'), true
	case b >= 'A' && b <= 'Z':
		return int(b-'A') + 10, true
	default:
		return 0, false
	}
}
