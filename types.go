package strictutf8

// ByteSeq constrains the byte sequences this package decodes. A type
// parameter keeps one implementation shared between string and []byte
// callers; positions are plain indices into the sequence and the backing
// bytes are never mutated.
type ByteSeq interface {
	~string | ~[]byte
}

const (
	// ReplacementChar (U+FFFD) is substituted for every malformed sequence.
	ReplacementChar rune = '�'

	// MaxCodepoint is the largest Unicode scalar value. RFC 3629 defines
	// UTF-8 to end here; four-byte sequences decoding past it are rejected.
	MaxCodepoint rune = 0x10FFFF
)
