// Package addressing demonstrates addressing errors: out-of-bounds writes,
// use of released memory, double release, and leaks. Build the catalog with
// `go build -asan` so AddressSanitizer can report them.
//
// Go's garbage collector leaves nothing to release twice, so the routines
// that misuse a release handle allocate on the C heap through cgo. That is
// the substitution this target requires: C.malloc/C.free give ASan a real
// allocation lifecycle to observe.
package addressing

/*
#include <stdlib.h>
*/
import "C"

import (
	"fmt"
	"unsafe"
)

// Overflow writes five elements past the end of a 10-element stack array.
// The printed value is whatever the out-of-range slot held; it is
// unspecified and shown for illustration only.
func Overflow() {
	var arr [10]int32
	p := (*int32)(unsafe.Add(unsafe.Pointer(&arr[0]), 15*unsafe.Sizeof(arr[0])))
	*p = 42
	fmt.Println("Buffer overflow:", *p)
}

// UseAfterRelease writes through a C heap pointer after freeing it.
func UseAfterRelease() {
	p := (*C.int)(C.malloc(C.sizeof_int))
	*p = 42
	C.free(unsafe.Pointer(p))
	*p = 100
	fmt.Println("Use after release:", *p)
}

// DoubleRelease frees the same C allocation twice, with no other release in
// between. Without ASan, glibc itself usually aborts the process here.
func DoubleRelease() {
	p := (*C.int)(C.malloc(C.sizeof_int))
	*p = 42
	C.free(unsafe.Pointer(p))
	C.free(unsafe.Pointer(p))
}

// Leak allocates 1000 ints on the C heap and returns without freeing them.
// The C heap is invisible to Go's collector, so the block stays lost; ASan's
// leak checker reports it at process exit. No symptom is visible during the
// run.
func Leak() {
	p := C.malloc(1000 * C.sizeof_int)
	_ = p
}
