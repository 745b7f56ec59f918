package main

import (
	"bytes"
	"strings"
	"testing"

	"github.com/marcinbor85/gohex"
)

func TestRunRoundTrip(t *testing.T) {
	var out bytes.Buffer
	if err := run(&out); err != nil {
		t.Fatalf("run: %v", err)
	}

	for _, line := range strings.Split(strings.TrimSpace(out.String()), "\n") {
		if !strings.HasPrefix(line, ":") {
			t.Fatalf("not an Intel HEX record: %q", line)
		}
	}

	mem := gohex.NewMemory()
	if err := mem.ParseIntelHex(bytes.NewReader(out.Bytes())); err != nil {
		t.Fatalf("ParseIntelHex: %v", err)
	}
	segments := mem.GetDataSegments()
	if len(segments) != 1 {
		t.Fatalf("got %d segments, want 1", len(segments))
	}
	seg := segments[0]
	if seg.Address != bufferAddress || len(seg.Data) != width*height {
		t.Fatalf("segment at %#x with %d bytes, want %#x with %d", seg.Address, len(seg.Data), bufferAddress, width*height)
	}

	row20 := string(seg.Data[20*width : 21*width])
	if want := "############                                                   =+***############"; row20 != want {
		t.Errorf("row 20\n got %q\nwant %q", row20, want)
	}
}
