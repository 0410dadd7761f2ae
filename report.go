package strictutf8

import (
	json "github.com/goccy/go-json"
)

// Report aggregates the validation outcome for one input in the shape the
// CLI and API consumers serialize.
type Report struct {
	Input   string  `json:"input,omitempty"` // display name, e.g. a filename
	Valid   bool    `json:"valid"`
	Bytes   int64   `json:"bytes"`
	Reasons Reasons `json:"reasons,omitempty"`
}

// NewReport validates s and builds its Report. With all set, every malformed
// sequence is listed; otherwise only the first.
func NewReport[S ByteSeq](name string, s S, all bool) Report {
	rep := Report{Input: name, Bytes: int64(len(s))}
	if all {
		rep.Reasons = AllReasons(s)
	} else if ok, reason := ValidReason(s); !ok {
		rep.Reasons = Reasons{reason}
	}
	rep.Valid = len(rep.Reasons) == 0
	return rep
}

// JSON renders the Report for machine consumers.
func (r Report) JSON() ([]byte, error) { return json.Marshal(r) }
