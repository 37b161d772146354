// Package uninitmem demonstrates reads of never-initialized memory. Build
// with `go build -msan` so MemorySanitizer can report them.
//
// Go zero-initializes every Go-visible variable, so an uninitialized read
// cannot be written in pure Go. The substitution for this target is the C
// heap: memory from C.malloc carries no initialization, and Go's -msan mode
// tracks exactly that. Each routine reads such memory before any write; the
// printed values are garbage and shown for illustration only.
package uninitmem

/*
#include <stdlib.h>

typedef struct {
	int value;
	char name[10];
} record;
*/
import "C"

import (
	"fmt"
	"unsafe"
)

// ScalarRead branches on a never-initialized int.
func ScalarRead() {
	p := (*C.int)(C.malloc(C.sizeof_int))
	defer C.free(unsafe.Pointer(p))
	if *p > 0 {
		fmt.Println("Uninitialized read:", *p)
	}
}

// ArrayRead reads element 0 of a never-initialized 10-element array.
func ArrayRead() {
	arr := (*[10]C.int)(C.malloc(10 * C.sizeof_int))
	defer C.free(unsafe.Pointer(arr))
	fmt.Println("Uninitialized array:", arr[0])
}

// StructFieldRead reads the value field of a never-initialized aggregate.
func StructFieldRead() {
	rec := (*C.record)(C.malloc(C.sizeof_record))
	defer C.free(unsafe.Pointer(rec))
	fmt.Println("Uninitialized struct:", rec.value)
}
