package strictutf8_test

import (
	"fmt"

	strictutf8 "github.com/cosql/strictutf8"
)

func ExampleValidReason() {
	ok, reason := strictutf8.ValidReason([]byte{0xE2, 0x82})
	fmt.Println(ok)
	fmt.Println(reason.Offset, reason.Code)
	// Output:
	// false
	// 2 unexpected_end_of_input
}

func ExampleNewIterator() {
	for it := strictutf8.NewIterator("He\xE2\x82\xAC"); !it.AtEnd(); it.Advance() {
		fmt.Printf("U+%04X\n", it.Codepoint())
	}
	// Output:
	// U+0048
	// U+0065
	// U+20AC
}

func ExampleNextTextualElement() {
	in := "e\xCC\x81f" // 'e', combining acute accent, 'f'
	pos, _ := strictutf8.NextTextualElement(in, 0, strictutf8.IsCombiningMark)
	fmt.Println(pos) // base character plus its combining mark
	// Output:
	// 3
}

func ExampleSanitize() {
	fmt.Printf("%q\n", strictutf8.Sanitize("a\xC0\x80b"))
	// Output:
	// "a�b"
}
