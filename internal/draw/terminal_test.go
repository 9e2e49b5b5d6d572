package draw

import (
	"bytes"
	"strings"
	"testing"
)

func TestClampSize(t *testing.T) {
	tests := []struct {
		name                 string
		w, h                 int
		wantW, wantH, oc, or int
	}{
		{"smaller", 80, 24, 80, 24, 0, 0},
		{"wider", 250, 40, 200, 40, 25, 0},
		{"both", 300, 100, 200, 60, 50, 20},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w, h, oc, or := ClampSize(tt.w, tt.h, 200, 60)
			if w != tt.wantW || h != tt.wantH || oc != tt.oc || or != tt.or {
				t.Errorf("ClampSize = %d %d %d %d", w, h, oc, or)
			}
		})
	}
}

func TestChunkWriterFlushesEverything(t *testing.T) {
	var out bytes.Buffer
	cw := NewChunkWriter(&out, 3, 2)
	cw.WriteAt(1, 1, "x")
	big := strings.Repeat("y", 5*maxChunkSize+7)
	cw.WriteString(big)
	if err := cw.Flush(); err != nil {
		t.Fatal(err)
	}
	if got, want := out.String(), "\033[3;4Hx"+big; got != want {
		t.Errorf("flushed %d bytes, want %d", len(got), len(want))
	}
	if cw.Len() != 0 {
		t.Errorf("buffer not reset")
	}
}

func TestChunkWriterChunkSizes(t *testing.T) {
	rec := &chunkRecorder{}
	cw := NewChunkWriter(rec, 0, 0)
	cw.WriteString(strings.Repeat("z", 2*maxChunkSize+1))
	cw.WriteRune('█')
	if err := cw.Flush(); err != nil {
		t.Fatal(err)
	}
	want := []int{maxChunkSize, maxChunkSize, 4}
	if len(rec.sizes) != len(want) {
		t.Fatalf("chunks = %v, want %v", rec.sizes, want)
	}
	for i := range want {
		if rec.sizes[i] != want[i] {
			t.Fatalf("chunks = %v, want %v", rec.sizes, want)
		}
	}
}

func TestCursorHelpers(t *testing.T) {
	var out bytes.Buffer
	HideCursor(&out)
	ShowCursor(&out)
	if out.String() != "\033[?25l\033[?25h" {
		t.Errorf("cursor sequences = %q", out.String())
	}
}

type chunkRecorder struct {
	sizes []int
}

func (r *chunkRecorder) Write(p []byte) (int, error) {
	r.sizes = append(r.sizes, len(p))
	return len(p), nil
}
