package strictutf8

// Iterator walks the codepoints of a byte sequence one at a time, keeping
// the Reason of the most recent decode visible to the caller. Decode errors
// do not halt iteration: the iterator is left positioned after the malformed
// bytes and the next Advance reports whatever decodes there, so callers
// choose whether to stop or skip.
//
// An Iterator owns its cursor exclusively; it must not be advanced from two
// goroutines. The underlying bytes are never mutated.
type Iterator[S ByteSeq] struct {
	src     S
	pos     int
	cp      rune
	reason  Reason
	seenEnd bool
}

// NewIterator returns an Iterator positioned at the first codepoint of s.
// An empty sequence constructs directly in the at-end state.
func NewIterator[S ByteSeq](s S) *Iterator[S] {
	it := &Iterator[S]{src: s}
	if len(s) == 0 {
		it.seenEnd = true
		return it
	}
	it.pos, it.cp, it.reason = NextCodepoint(s, 0)
	return it
}

// Advance moves to the next codepoint. Once every byte has been consumed the
// iterator transitions to the at-end state, clearing the codepoint and
// Reason; advancing past the end is a no-op.
func (it *Iterator[S]) Advance() {
	if it.seenEnd {
		return
	}
	if it.pos == len(it.src) {
		it.seenEnd = true
		it.cp = 0
		it.reason = Reason{}
		return
	}
	it.pos, it.cp, it.reason = NextCodepoint(it.src, it.pos)
}

// Codepoint returns the codepoint decoded by the most recent step, or
// ReplacementChar when that step failed. Zero once at the end.
func (it *Iterator[S]) Codepoint() rune { return it.cp }

// Reason returns the Reason recorded by the most recent step.
func (it *Iterator[S]) Reason() Reason { return it.reason }

// SawError reports whether the most recent step failed to decode.
func (it *Iterator[S]) SawError() bool { return !it.reason.OK() }

// AtEnd reports whether iteration has consumed the whole sequence.
func (it *Iterator[S]) AtEnd() bool { return it.seenEnd }

// Pos returns the byte position after the most recently decoded codepoint.
func (it *Iterator[S]) Pos() int { return it.pos }

// Equal reports whether two iterators over the same sequence are at the same
// position. Comparing iterators over different sequences is meaningless.
func (it *Iterator[S]) Equal(other *Iterator[S]) bool {
	return it.pos == other.pos && it.seenEnd == other.seenEnd
}
