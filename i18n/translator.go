package i18n

// Translator retrieves localized messages for Reason codes.
// data provides optional metadata to embed in the message (unused by the
// built-in dictionary but part of the interface for custom translators).
type Translator interface {
	Message(code string, data map[string]string) string
}

// dictTranslator is the built-in dictionary-based Translator. The English
// messages are the canonical decoder explanations; downstream code matches
// on them, so they stay stable across languages being added.
type dictTranslator struct{ lang string }

func (t dictTranslator) Message(code string, data map[string]string) string {
	switch t.lang {
	case "ja":
		switch code {
		case "unexpected_end_of_input":
			return "継続バイトが必要ですが、入力が終端しました"
		case "invalid_continuation_byte":
			return "継続バイトが必要ですが、別のバイトが現れました"
		case "overlong_encoding":
			return "冗長なエンコーディングです"
		case "invalid_leading_byte":
			return "不正な先頭バイトです"
		case "codepoint_out_of_range":
			return "Unicode 範囲外の文字がエンコードされています (U+10FFFF 超)"
		}
	default: // "en"
		switch code {
		case "unexpected_end_of_input":
			return "Expected continuation byte, saw end of string"
		case "invalid_continuation_byte":
			return "Expected continuation byte, saw something else"
		case "overlong_encoding":
			return "Overlong encoding seen"
		case "invalid_leading_byte":
			return "Invalid initial byte seen"
		case "codepoint_out_of_range":
			return "Non-Unicode character encoded (beyond U+10FFFF)"
		}
	}
	return code
}

var currentTranslator Translator = dictTranslator{lang: "en"}

// SetLanguage switches the built-in Translator language ("en"/"ja").
func SetLanguage(lang string) {
	if lang != "ja" {
		lang = "en"
	}
	currentTranslator = dictTranslator{lang: lang}
}

// SetTranslator replaces the Translator implementation (not limited to the
// dictionary version).
func SetTranslator(tr Translator) {
	if tr == nil {
		currentTranslator = dictTranslator{lang: "en"}
		return
	}
	currentTranslator = tr
}

// T fetches a message for the given code using the current Translator.
func T(code string, data map[string]string) string { return currentTranslator.Message(code, data) }
