package strictutf8_test

import (
	"fmt"
	"strings"
	"testing"

	strictutf8 "github.com/cosql/strictutf8"
)

func TestReason_ZeroValueIsSuccess(t *testing.T) {
	var r strictutf8.Reason
	if !r.OK() {
		t.Fatalf("zero Reason not OK")
	}
	if r.Error() != "" {
		t.Fatalf("success sentinel formats as %q", r.Error())
	}
}

func TestReason_ErrorFormat(t *testing.T) {
	_, _, r := strictutf8.NextCodepoint("\xC0\x80", 0)
	msg := r.Error()
	if !strings.Contains(msg, strictutf8.CodeOverlongEncoding) || !strings.Contains(msg, "byte 0") {
		t.Fatalf("unexpected error format: %q", msg)
	}
}

func TestReasons_ErrorSummary(t *testing.T) {
	rs := strictutf8.AllReasons("\x80\x80\x80\x80\x80")
	if len(rs) != 5 {
		t.Fatalf("got %d reasons", len(rs))
	}
	s := rs.Error()
	if s == "" {
		t.Fatalf("expected non-empty error summary")
	}
	if !strings.Contains(s, "total 5") {
		t.Fatalf("summary should mention the total: %q", s)
	}
}

func TestAsReasons(t *testing.T) {
	rs := strictutf8.AllReasons("\xFF")
	var err error = rs
	got, ok := strictutf8.AsReasons(err)
	if !ok || len(got) != 1 {
		t.Fatalf("AsReasons failed: ok=%v got=%v", ok, got)
	}
	wrapped := fmt.Errorf("while loading document: %w", err)
	if _, ok := strictutf8.AsReasons(wrapped); !ok {
		t.Fatalf("AsReasons did not unwrap")
	}
	if _, ok := strictutf8.AsReasons(nil); ok {
		t.Fatalf("AsReasons(nil) succeeded")
	}
}
