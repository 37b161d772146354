package main

import (
	"bytes"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestOutputIsFixed(t *testing.T) {
	var buf bytes.Buffer
	printBanner(&buf)
	printTrailer(&buf)

	want := "Sanitizer Examples\n" +
		"==================\n" +
		"\n" +
		"No examples executed. Uncomment examples in main() to test.\n"
	if diff := cmp.Diff(want, buf.String()); diff != "" {
		t.Errorf("entry point output mismatch (-want +got):\n%s", diff)
	}
}
