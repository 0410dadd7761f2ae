package strictutf8

import (
	"errors"
	"fmt"
	"strings"
)

// Reason codes (exported consts for IDE completion and type safety by convention)
const (
	CodeUnexpectedEndOfInput    = "unexpected_end_of_input"
	CodeInvalidContinuationByte = "invalid_continuation_byte"
	CodeOverlongEncoding        = "overlong_encoding"
	CodeInvalidLeadingByte      = "invalid_leading_byte"
	CodeCodepointOutOfRange     = "codepoint_out_of_range"
)

// Reason describes the outcome of a single decode attempt. The zero value is
// the success sentinel: empty Code and Message mean no error. Offset is the
// byte position of the failure, absolute within the sequence handed to the
// entry point that produced the Reason.
type Reason struct {
	Offset  int64  `json:"offset"`
	Code    string `json:"code"`
	Message string `json:"message"`
}

// OK reports whether the Reason is the success sentinel.
func (r Reason) OK() bool { return r.Code == "" }

// Error implements error. The success sentinel formats as an empty string.
func (r Reason) Error() string {
	if r.OK() {
		return ""
	}
	return fmt.Sprintf("%s at byte %d: %s", r.Code, r.Offset, r.Message)
}

// Reasons is a collection of decode failures that implements error.
type Reasons []Reason

// Error summarizes the first few reasons.
func (rs Reasons) Error() string {
	if len(rs) == 0 {
		return ""
	}
	const maxShown = 3
	b := &strings.Builder{}
	n := len(rs)
	lim := n
	if lim > maxShown {
		lim = maxShown
	}
	for i := 0; i < lim; i++ {
		if i > 0 {
			b.WriteString("; ")
		}
		r := rs[i]
		// e.g. overlong_encoding at byte 0
		fmt.Fprintf(b, "%s at byte %d", r.Code, r.Offset)
	}
	if n > lim {
		fmt.Fprintf(b, "; ... (total %d)", n)
	}
	return b.String()
}

// AsReasons extracts Reasons from an error using errors.As internally.
func AsReasons(err error) (Reasons, bool) {
	if err == nil {
		return nil, false
	}
	var rs Reasons
	if errors.As(err, &rs) {
		return rs, true
	}
	return nil, false
}
