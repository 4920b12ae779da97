package paa

import (
	"bytes"
	"path/filepath"
	"testing"
)

func TestDefaultImageCodecPNGRoundTrip(t *testing.T) {
	t.Parallel()

	width, height := 6, 5
	rgba := checkerboardRGBA(width, height, true)

	path := filepath.Join(t.TempDir(), "round.png")
	if err := DefaultImageCodec.Encode(path, rgba, width, height); err != nil {
		t.Fatalf("Encode: %v", err)
	}

	got, w, h, err := DefaultImageCodec.Decode(path)
	if err != nil {
		t.Fatalf("Decode: %v", err)
	}
	if w != width || h != height {
		t.Fatalf("decoded size = %dx%d, want %dx%d", w, h, width, height)
	}
	if !bytes.Equal(got, rgba) {
		t.Fatalf("PNG round trip should be lossless")
	}
}

func TestDefaultImageCodecJPEGExtension(t *testing.T) {
	t.Parallel()

	width, height := 4, 4
	rgba := checkerboardRGBA(width, height, false)

	path := filepath.Join(t.TempDir(), "round.jpg")
	if err := DefaultImageCodec.Encode(path, rgba, width, height); err != nil {
		t.Fatalf("Encode: %v", err)
	}

	_, w, h, err := DefaultImageCodec.Decode(path)
	if err != nil {
		t.Fatalf("Decode: %v", err)
	}
	if w != width || h != height {
		t.Fatalf("decoded size = %dx%d, want %dx%d", w, h, width, height)
	}
}
