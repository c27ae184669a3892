//go:build cgo

package main

/*
#include <stdlib.h>
#include <string.h>
*/
import "C"

import "unsafe"

//export bbcode_translate
func bbcode_translate(input *C.char) *C.char {
	if input == nil {
		return nil
	}
	raw := unsafe.Slice((*byte)(unsafe.Pointer(input)), int(C.strlen(input)))
	out := translate(raw)
	if out == nil {
		return nil
	}
	// The result is NUL-terminated C memory; parsed BBCode never yields NUL.
	return (*C.char)(C.CBytes(append(out, 0)))
}

//export bbcode_dispose
func bbcode_dispose(output *C.char) {
	if output == nil {
		return
	}
	// Releasing the same pointer twice is undefined behaviour.
	C.free(unsafe.Pointer(output))
}
