// Package undefined demonstrates operations that C leaves undefined. Go
// pins most of them down — signed arithmetic wraps, oversized shifts yield
// zero, bad indexes and nil stores panic — so each routine's comment states
// what this target turns the undefined outcome into. The misaligned and
// type-punned routines need unsafe.Pointer, the escape hatch that lets the
// invalid access be expressed at all.
package undefined

import (
	"fmt"
	"math"
	"unsafe"
)

// SignedOverflow increments an int32 holding its maximum representable
// value. Go wraps to math.MinInt32 instead of leaving the result undefined.
func SignedOverflow() {
	x := int32(math.MaxInt32)
	x++
	fmt.Println("Signed overflow:", x)
}

// NullWrite stores through a nil pointer. Go panics with a runtime error
// rather than corrupting address zero.
func NullWrite() {
	var p *int
	*p = 42
}

// DivByZero divides 10 by 0 as an integer operation. Go panics with
// "integer divide by zero". The divisor is a variable: a constant zero
// would be rejected at compile time.
func DivByZero() {
	x := 10
	y := 0
	result := x / y
	fmt.Println("Division:", result)
}

// OversizedShift left-shifts by 100, far past the operand's bit width. Go
// defines the result as zero.
func OversizedShift() {
	x := 1
	shift := 100
	result := x << shift
	fmt.Println("Shift:", result)
}

// OutOfBoundsIndex reads a 5-element array at index 10 through a variable
// index. Go panics with "index out of range" instead of reading past the
// array.
func OutOfBoundsIndex() {
	arr := [5]int{1, 2, 3, 4, 5}
	index := 10
	value := arr[index]
	fmt.Println("Array access:", value)
}

// MisalignedAccess stores an int32 at byte offset 1 of a byte buffer, an
// address that violates int32 alignment. x86 tolerates it; strict-alignment
// targets fault.
func MisalignedAccess() {
	data := []byte("123456789")
	p := (*int32)(unsafe.Pointer(&data[1]))
	*p = 42
	fmt.Println("Misaligned access:", *p)
}

// TypePunnedRead reads the bit pattern of a float32 as an int32. The printed
// integer is the raw IEEE 754 encoding, not a numeric conversion.
func TypePunnedRead() {
	f := float32(3.14)
	p := (*int32)(unsafe.Pointer(&f))
	fmt.Println("Type-punned read:", *p)
}
