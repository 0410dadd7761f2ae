package strictutf8

import "strings"

// Sanitize returns s with every malformed sequence replaced by
// ReplacementChar. Valid input comes back byte-identical; the result is
// always well-formed UTF-8. Decoding resumes at the exact position a failed
// decode stopped, so one bad sequence never swallows the bytes after it.
func Sanitize[S ByteSeq](s S) string {
	var b strings.Builder
	b.Grow(len(s))
	for pos := 0; pos < len(s); {
		next, cp, reason := NextCodepoint(s, pos)
		if reason.OK() {
			b.WriteRune(cp)
		} else {
			b.WriteRune(ReplacementChar)
		}
		pos = next
	}
	return b.String()
}
