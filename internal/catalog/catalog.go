// Package catalog enumerates the defect demonstration routines. Every entry
// is a self-contained function whose only contract is to perform one invalid
// operation; detection belongs to the toolchain instrumentation the catalog
// is built under, never to this code.
//
// Category to build mode:
//
//	addressing           go build -asan   (needs cgo)
//	threading            go build -race
//	uninitialized        go build -msan   (needs cgo)
//	undefined-behavior   default build
//
// The catalog adds nothing around a routine's execution: no recovery, no
// validation, no synchronization. A crashing routine takes the process with
// it, which is why callers should enable one routine at a time.
package catalog

import (
	"slices"

	"sanlab/internal/addressing"
	"sanlab/internal/threading"
	"sanlab/internal/undefined"
	"sanlab/internal/uninitmem"
)

// Category labels the defect class a routine exercises. It carries no
// behavior; it exists so the catalog can be grouped and mapped to the build
// mode that detects it.
type Category string

const (
	CategoryAddressing    Category = "addressing"
	CategoryThreading     Category = "threading"
	CategoryUninitialized Category = "uninitialized"
	CategoryUndefined     Category = "undefined-behavior"
)

// Routine is one catalog entry. Run takes no inputs and returns nothing; its
// side effect is the defect itself plus optional diagnostic output whose
// values are unspecified, for illustration only.
type Routine struct {
	Name     string
	Category Category
	Summary  string
	Run      func()
}

var entries = []Routine{
	{"overflow", CategoryAddressing, "out-of-bounds write past a fixed-size stack array", addressing.Overflow},
	{"use-after-release", CategoryAddressing, "write through a pointer after its referent was freed", addressing.UseAfterRelease},
	{"double-release", CategoryAddressing, "free the same allocation twice", addressing.DoubleRelease},
	{"leak", CategoryAddressing, "allocate and never free", addressing.Leak},

	{"racing-increment", CategoryThreading, "two goroutines increment one unsynchronized counter", threading.RacingIncrement},
	{"racing-append", CategoryThreading, "two goroutines append to one unsynchronized slice", threading.RacingAppend},

	{"scalar-read", CategoryUninitialized, "branch on a never-initialized scalar", uninitmem.ScalarRead},
	{"array-read", CategoryUninitialized, "read element 0 of a never-initialized array", uninitmem.ArrayRead},
	{"struct-field-read", CategoryUninitialized, "read a never-initialized struct field", uninitmem.StructFieldRead},

	{"signed-overflow", CategoryUndefined, "increment a signed integer past its maximum", undefined.SignedOverflow},
	{"null-write", CategoryUndefined, "write through a nil pointer", undefined.NullWrite},
	{"div-by-zero", CategoryUndefined, "integer division by zero", undefined.DivByZero},
	{"oversized-shift", CategoryUndefined, "left-shift by a count past the operand's bit width", undefined.OversizedShift},
	{"out-of-bounds-index", CategoryUndefined, "index a fixed array past its length", undefined.OutOfBoundsIndex},
	{"misaligned-access", CategoryUndefined, "store through a pointer that violates alignment", undefined.MisalignedAccess},
	{"type-punned-read", CategoryUndefined, "read a float's bit pattern as an integer", undefined.TypePunnedRead},
}

// Categories returns the four defect categories in catalog order.
func Categories() []Category {
	return []Category{
		CategoryAddressing,
		CategoryThreading,
		CategoryUninitialized,
		CategoryUndefined,
	}
}

// Entries returns every routine in catalog order.
func Entries() []Routine {
	return slices.Clone(entries)
}

// Lookup finds a routine by its catalog name.
func Lookup(name string) (Routine, bool) {
	for _, r := range entries {
		if r.Name == name {
			return r, true
		}
	}
	return Routine{}, false
}

// ByCategory returns the routines of one category in catalog order.
func ByCategory(c Category) []Routine {
	var out []Routine
	for _, r := range entries {
		if r.Category == c {
			out = append(out, r)
		}
	}
	return out
}

// BuildMode names the go build invocation whose instrumentation detects the
// category's defects.
func BuildMode(c Category) string {
	switch c {
	case CategoryAddressing:
		return "go build -asan"
	case CategoryThreading:
		return "go build -race"
	case CategoryUninitialized:
		return "go build -msan"
	default:
		return "go build"
	}
}
