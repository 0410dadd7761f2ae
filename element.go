package strictutf8

import "unicode"

// NextTextualElement scans one textual element of s starting at pos: the
// first codepoint unconditionally, then every following codepoint for which
// keepGoing returns true. It returns the position of the first byte after
// the element, leaving the codepoint that ended it for the next call.
//
// A malformed sequence ends the element at the last good position and the
// failure comes back in the Reason. When the very first codepoint is the one
// that fails, the returned position skips the malformed bytes instead, so
// repeated calls always make progress.
func NextTextualElement[S ByteSeq](s S, pos int, keepGoing func(rune) bool) (int, Reason) {
	begin := pos
	for pos < len(s) {
		next, cp, reason := NextCodepoint(s, pos)
		if !reason.OK() {
			if pos == begin {
				return next, reason
			}
			return pos, reason
		}
		if pos != begin && !keepGoing(cp) {
			// first codepoint is free
			break
		}
		pos = next
	}
	return pos, Reason{}
}

// TextualElements splits the whole of s into textual elements under
// keepGoing. Malformed sequences end the element being scanned but never
// halt the split.
func TextualElements[S ByteSeq](s S, keepGoing func(rune) bool) []string {
	var out []string
	for pos := 0; pos < len(s); {
		next, _ := NextTextualElement(s, pos, keepGoing)
		out = append(out, string(s[pos:next]))
		pos = next
	}
	return out
}

// IsCombiningMark reports whether r is a combining mark (Unicode general
// category M). Handing it to NextTextualElement groups a base character with
// its trailing combining marks into one element.
func IsCombiningMark(r rune) bool { return unicode.Is(unicode.M, r) }
