package strictutf8

// Valid reports whether s is well-formed UTF-8 under the strict RFC 3629
// rules: minimal-length encodings only, codepoints at most MaxCodepoint.
func Valid[S ByteSeq](s S) bool {
	ok, _ := ValidReason(s)
	return ok
}

// ValidReason is Valid plus the first failure's Reason. Bytes after the
// first malformed sequence are not inspected; valid input yields the
// success sentinel.
func ValidReason[S ByteSeq](s S) (bool, Reason) {
	for pos := 0; pos < len(s); {
		next, _, reason := NextCodepoint(s, pos)
		if !reason.OK() {
			return false, reason
		}
		pos = next
	}
	return true, Reason{}
}

// Codepoints decodes s into its codepoint sequence, stopping at the first
// malformed sequence. The returned slice holds everything decoded before the
// failure; the Reason is the success sentinel when the whole input decoded.
func Codepoints[S ByteSeq](s S) ([]rune, Reason) {
	var out []rune
	for pos := 0; pos < len(s); {
		next, cp, reason := NextCodepoint(s, pos)
		if !reason.OK() {
			return out, reason
		}
		out = append(out, cp)
		pos = next
	}
	return out, Reason{}
}

// AllReasons collects a Reason for every malformed sequence in s, resuming
// after each failure at the position the decoder stopped. A nil result means
// s is valid. The lead byte of a failed sequence is always consumed, so the
// scan makes progress on arbitrary garbage.
func AllReasons[S ByteSeq](s S) Reasons {
	var out Reasons
	for pos := 0; pos < len(s); {
		next, _, reason := NextCodepoint(s, pos)
		if !reason.OK() {
			out = append(out, reason)
		}
		pos = next
	}
	return out
}
