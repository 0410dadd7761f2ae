package strictutf8_test

import (
	"strings"
	"testing"

	strictutf8 "github.com/cosql/strictutf8"
)

func TestNewReport_FirstErrorOnly(t *testing.T) {
	rep := strictutf8.NewReport("in.bin", []byte("\xC0\x80\xFF"), false)
	if rep.Valid {
		t.Fatalf("expected invalid")
	}
	if len(rep.Reasons) != 1 {
		t.Fatalf("got %d reasons, want 1", len(rep.Reasons))
	}
	if rep.Reasons[0].Code != strictutf8.CodeOverlongEncoding {
		t.Fatalf("code %q", rep.Reasons[0].Code)
	}
	if rep.Bytes != 3 {
		t.Fatalf("bytes %d, want 3", rep.Bytes)
	}
}

func TestNewReport_CollectAll(t *testing.T) {
	rep := strictutf8.NewReport("in.bin", []byte("\xC0\x80\xFF"), true)
	if rep.Valid || len(rep.Reasons) != 2 {
		t.Fatalf("got valid=%v reasons=%v", rep.Valid, rep.Reasons)
	}
}

func TestReport_JSONShape(t *testing.T) {
	rep := strictutf8.NewReport("doc", []byte("ok"), false)
	b, err := rep.JSON()
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	s := string(b)
	for _, want := range []string{`"input":"doc"`, `"valid":true`, `"bytes":2`} {
		if !strings.Contains(s, want) {
			t.Fatalf("JSON %s missing %s", s, want)
		}
	}
	if strings.Contains(s, `"reasons"`) {
		t.Fatalf("valid report should omit reasons: %s", s)
	}
}
