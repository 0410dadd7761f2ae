package strictutf8

// Package strictutf8 provides:
//
// - Strict RFC 3629 UTF-8 validation with exact byte offsets (Valid/ValidReason)
// - A stable error model via Reason/Reasons (offset, code, message)
// - One-codepoint-at-a-time decoding (NextCodepoint) and a resumable Iterator
// - Textual-element grouping driven by a caller-supplied predicate
//   (NextTextualElement, IsCombiningMark)
// - Replacement-character sanitization of malformed input (Sanitize)
//
// Design policy:
// - Keep only public APIs in the root package; put CLI support under internal/.
// - Place localized messages under i18n/ and the CLI under cmd/utf8check.
// - Prefer black-box testing against public APIs.
//
// Typical usage:
//
//  if ok, reason := strictutf8.ValidReason(data); !ok {
//      log.Printf("bad input at byte %d: %s", reason.Offset, reason.Message)
//  }
//
//  for it := strictutf8.NewIterator(data); !it.AtEnd(); it.Advance() {
//      handle(it.Codepoint())
//  }
//
