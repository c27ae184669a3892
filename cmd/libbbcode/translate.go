// Command libbbcode builds a C shared library exposing the BBCode to HTML
// translator:
//
//	go build -buildmode=c-shared -o libbbcode.so ./cmd/libbbcode
//
// The library exports
//
//	char *bbcode_translate(const char *input);
//	void bbcode_dispose(char *output);
//
// bbcode_translate never retains input. Its result is NULL on failure and
// must otherwise be released with bbcode_dispose exactly once.
package main

import "pkt.systems/bbcode"

func main() {}

// translate renders raw as HTML. Invalid UTF-8 in raw is replaced with
// U+FFFD. A nil result signals failure.
func translate(raw []byte) []byte {
	out, err := bbcode.Translate(raw)
	if err != nil {
		return nil
	}
	if out == nil {
		out = []byte{}
	}
	return out
}
