package addressing

import (
	"testing"

	"github.com/stretchr/testify/require"
)

// These routines corrupt real memory: outside an -asan build, Overflow
// smashes the test's own stack, UseAfterRelease scribbles on freed C heap,
// and DoubleRelease usually makes glibc abort the process. They are skipped
// by default; run them one at a time through the instrumented binary:
//
//	go build -asan ./cmd/sanlab && ./sanlab run double-release

func TestOverflowDetectable(t *testing.T) {
	t.Skip("writes past a stack array; run manually under an -asan build")
	Overflow()
}

func TestUseAfterReleaseDetectable(t *testing.T) {
	t.Skip("writes through a freed pointer; run manually under an -asan build")
	UseAfterRelease()
}

func TestDoubleReleaseDetectable(t *testing.T) {
	t.Skip("frees the same allocation twice; run manually under an -asan build")
	DoubleRelease()
}

// Leak has no visible symptom during the run: it returns normally and the
// lost block only shows up in ASan's exit-time leak report.
func TestLeakReturnsQuietly(t *testing.T) {
	require.NotPanics(t, Leak)
}
