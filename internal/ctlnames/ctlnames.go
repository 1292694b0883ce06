// Package ctlnames supplies mnemonic names for the C0 and C1 control bytes,
// used only to make a machine dump or trace readable -- never to parse
// program text.
package ctlnames

// c0 holds the classic ASCII control character names, indexed by byte value.
var c0 = [32]string{
	"<NUL>", "<SOH>", "<STX>", "<ETX>", "<EOT>", "<ENQ>", "<ACK>", "<BEL>",
	"<BS>", "<HT>", "<NL>", "<VT>", "<NP>", "<CR>", "<SO>", "<SI>",
	"<DLE>", "<DC1>", "<DC2>", "<DC3>", "<DC4>", "<NAK>", "<SYN>", "<ETB>",
	"<CAN>", "<EM>", "<SUB>", "<ESC>", "<FS>", "<GS>", "<RS>", "<US>",
}

// c1 holds the extended ISO-8859 control character names, indexed by
// (byte value - 0x80).
var c1 = [32]string{
	"<PAD>", "<HOP>", "<BPH>", "<NBH>", "<IND>", "<NEL>", "<SSA>", "<ESA>",
	"<HTS>", "<HTJ>", "<VTS>", "<PLD>", "<PLU>", "<RI>", "<SS2>", "<SS3>",
	"<DCS>", "<PU1>", "<PU2>", "<STS>", "<CCH>", "<MW>", "<SPA>", "<EPA>",
	"<SOS>", "<SGCI>", "<SCI>", "<CSI>", "<ST>", "<OSC>", "<PM>", "<APC>",
}

// Name returns a mnemonic for b if it is a C0/C1 control byte, space, or
// delete, and "" otherwise.
func Name(b byte) string {
	switch {
	case b < 0x20:
		return c0[b]
	case b == 0x20:
		return "<SP>"
	case b == 0x7f:
		return "<DEL>"
	case b >= 0x80 && b <= 0x9f:
		return c1[b-0x80]
	default:
		return ""
	}
}

// Caret computes the ^-escaped printable form of a C0 control byte or DEL,
// e.g. '\x03' -> "^C", '\x1b' -> "^[". Returns "" for bytes outside that
// range.
func Caret(b byte) string {
	if b < 0x20 || b == 0x7f {
		return "^" + string(rune(b^0x40))
	}
	return ""
}

// Printable renders b for display: its mnemonic name if it is a control
// byte, or the byte itself as a one-rune string otherwise.
func Printable(b byte) string {
	if name := Name(b); name != "" {
		return name
	}
	return string(rune(b))
}
