package paa

import "testing"

func TestTaggHeader(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		t    Tagg
		want int
	}{
		{name: "empty-payload", t: Tagg{Signature: sigAverageColor}, want: 8 + 4},
		{name: "four-byte-payload", t: Tagg{Signature: sigMaxColor, Payload: []byte{1, 2, 3, 4}}, want: 8 + 4 + 4},
		{name: "offsets-tagg", t: Tagg{Signature: sigOffsets, Payload: make([]byte, maxOffsetSlots*4)}, want: 8 + 4 + 64},
	}

	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			if got := tc.t.header(); got != tc.want {
				t.Fatalf("header() = %d, want %d", got, tc.want)
			}
		})
	}
}

func TestIsComputed(t *testing.T) {
	t.Parallel()

	for _, sig := range []string{sigAverageColor, sigMaxColor, sigTransparency, sigOffsets} {
		if !isComputed(sig) {
			t.Errorf("isComputed(%q) = false, want true", sig)
		}
	}
	if isComputed("CUSTOMTG") {
		t.Errorf("isComputed(custom) = true, want false")
	}
}
