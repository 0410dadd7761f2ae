package strictutf8

import (
	"github.com/cosql/strictutf8/i18n"
)

// Leading-byte masks. The high bits of the first byte select one of four
// sequence shapes; continuation bytes are 10xxxxxx with six payload bits.
const (
	highBit       byte = 0x80
	highTwoBits   byte = 0xC0
	highThreeBits byte = 0xE0
	highFourBits  byte = 0xF0
	highFiveBits  byte = 0xF8
)

func isStandalone(c byte) bool     { return c&highBit == 0 }
func isTwoByteStart(c byte) bool   { return c&highThreeBits == highTwoBits }
func isThreeByteStart(c byte) bool { return c&highFourBits == highThreeBits }
func isFourByteStart(c byte) bool  { return c&highFiveBits == highFourBits }
func isContinuation(c byte) bool   { return c&highTwoBits == highBit }

// payload strips the marker bits from a lead or continuation byte.
func payload(c, marker byte) rune { return rune(c &^ marker) }

// fail builds the failure Reason for a decode attempt. at is the absolute
// index the Reason points to; every offset this package reports is computed
// here and nowhere else.
func fail(code string, at int) Reason {
	return Reason{Offset: int64(at), Code: code, Message: i18n.T(code, nil)}
}

// NextCodepoint decodes exactly one codepoint of s starting at pos. It
// returns the position after the consumed bytes, the decoded codepoint, and
// the success sentinel. pos == len(s) is not an error: the position comes
// back unchanged with codepoint zero.
//
// On a malformed sequence the codepoint is ReplacementChar, the position is
// wherever decoding stopped, and the Reason carries one of the Code*
// constants. A missing continuation byte or the end of input points at the
// byte actually inspected; overlong encodings, out-of-range values and
// invalid leading bytes point at the first byte of the sequence.
func NextCodepoint[S ByteSeq](s S, pos int) (next int, cp rune, reason Reason) {
	if pos >= len(s) {
		return pos, 0, Reason{}
	}
	start := pos
	c := s[pos]
	pos++

	var size int
	var min rune
	switch {
	case isStandalone(c):
		// 0xxxxxxx - ASCII character
		return pos, rune(c), Reason{}
	case isTwoByteStart(c):
		// 110xxxxx - two byte multibyte
		cp, size, min = payload(c, highThreeBits), 2, 0x0080
	case isThreeByteStart(c):
		// 1110xxxx - three byte multibyte
		cp, size, min = payload(c, highFourBits), 3, 0x0800
	case isFourByteStart(c):
		// 11110xxx - four byte multibyte
		cp, size, min = payload(c, highFiveBits), 4, 0x10000
	default:
		// stray continuation byte, or 0xF8 and above
		return pos, ReplacementChar, fail(CodeInvalidLeadingByte, start)
	}

	for i := 1; i < size; i++ {
		// end-of-input wins over every other classification
		if pos >= len(s) {
			return pos, ReplacementChar, fail(CodeUnexpectedEndOfInput, pos)
		}
		if !isContinuation(s[pos]) {
			return pos, ReplacementChar, fail(CodeInvalidContinuationByte, pos)
		}
		cp = cp<<6 | payload(s[pos], highTwoBits)
		pos++
	}

	if cp < min {
		// not the minimum bytes required to represent the value
		return pos, ReplacementChar, fail(CodeOverlongEncoding, start)
	}
	if cp > MaxCodepoint {
		return pos, ReplacementChar, fail(CodeCodepointOutOfRange, start)
	}
	return pos, cp, Reason{}
}
