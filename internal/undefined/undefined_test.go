package undefined

import (
	"runtime"
	"testing"

	"github.com/stretchr/testify/require"
)

// Go defines the outcome of several operations C leaves undefined; those
// routines return normally in an uninstrumented process.

func TestDefinedOutcomesReturn(t *testing.T) {
	tests := []struct {
		name string
		run  func()
	}{
		{"signed-overflow wraps", SignedOverflow},
		{"oversized-shift yields zero", OversizedShift},
		{"type-punned-read yields raw bits", TypePunnedRead},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			require.NotPanics(t, tt.run)
		})
	}
}

func TestMisalignedAccessReturnsOnTolerantTargets(t *testing.T) {
	if runtime.GOARCH != "amd64" && runtime.GOARCH != "386" {
		t.Skipf("strict-alignment target %s may fault here", runtime.GOARCH)
	}
	require.NotPanics(t, MisalignedAccess)
}

// The rest panic with a runtime error instead of corrupting memory.

func TestNullWritePanics(t *testing.T) {
	require.PanicsWithError(t,
		"runtime error: invalid memory address or nil pointer dereference",
		NullWrite)
}

func TestDivByZeroPanics(t *testing.T) {
	require.PanicsWithError(t,
		"runtime error: integer divide by zero",
		DivByZero)
}

func TestOutOfBoundsIndexPanics(t *testing.T) {
	require.PanicsWithError(t,
		"runtime error: index out of range [10] with length 5",
		OutOfBoundsIndex)
}
