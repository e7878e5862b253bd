// Package sgr provides the low-level byte classification the ANSI/SGR
// parser needs to walk a CSI or OSC escape sequence: which
// byte ranges count as parameter bytes, intermediate bytes, and final
// bytes, plus the handful of structural constants (ESC, CSI, OSC, the OSC
// terminators) the state machine dispatches on.
package sgr

// Structural bytes a CSI/OSC scanner dispatches on.
const (
	ESC = 0x1b
	CSI = '['
	OSC = ']'
	BEL = 0x07
	ST1 = 0x1b
	ST2 = '\\'
)

// IsParamByte reports whether b falls in the CSI parameter-byte range
// (0x30..0x3f: digits, ';', ':', and a handful of private-use characters).
func IsParamByte(b byte) bool {
	return b >= 0x30 && b <= 0x3f
}

// IsIntermediateByte reports whether b falls in the CSI intermediate-byte
// range (0x20..0x2f).
func IsIntermediateByte(b byte) bool {
	return b >= 0x20 && b <= 0x2f
}

// IsFinalByte reports whether b falls in the CSI final-byte range
// (0x40..0x7e). A CSI sequence is well-formed only if the byte after its
// parameter and intermediate bytes is in this range; any other byte there
// is an invalid final byte, and reaching the end of the input first leaves
// the sequence unfinished.
func IsFinalByte(b byte) bool {
	return b >= 0x40 && b <= 0x7e
}

// SGR final byte: Select Graphic Rendition. Any other final byte in the CSI
// range (cursor movement, screen clearing, and so on) is a recognized but
// ignored sequence: it consumes input without changing the current style.
const SGRFinal = 'm'
