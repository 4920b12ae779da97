package paa

import (
	"bytes"
	"testing"
)

// buildUncompressedTGA assembles a minimal type-2 (uncompressed true-color)
// TGA byte stream for a width×height 24bpp bottom-to-top image.
func buildUncompressedTGA(width, height int, bgr []byte) []byte {
	hdr := make([]byte, 18)
	hdr[2] = tgaTypeUncompressedTrueColor
	hdr[12] = byte(width)
	hdr[13] = byte(width >> 8)
	hdr[14] = byte(height)
	hdr[15] = byte(height >> 8)
	hdr[16] = 24
	hdr[17] = 0 // bottom-to-top, as most TGA writers default to

	return append(hdr, bgr...)
}

func TestDecodeTGAUncompressed(t *testing.T) {
	t.Parallel()

	width, height := 2, 1
	// bottom-to-top storage order; this is the file's only (and thus
	// bottom) row, which should end up as row 0 after the flip.
	bgr := []byte{
		0, 0, 255, // pixel (0,0): blue=0,green=0,red=255 -> red
		255, 0, 0, // pixel (1,0): blue=255 -> blue
	}

	data := buildUncompressedTGA(width, height, bgr)
	img, err := decodeTGA(bytes.NewReader(data))
	if err != nil {
		t.Fatalf("decodeTGA: %v", err)
	}

	bounds := img.Bounds()
	if bounds.Dx() != width || bounds.Dy() != height {
		t.Fatalf("decoded size = %dx%d, want %dx%d", bounds.Dx(), bounds.Dy(), width, height)
	}

	r, g, b, a := img.At(0, 0).RGBA()
	if r>>8 != 255 || g>>8 != 0 || b>>8 != 0 || a>>8 != 255 {
		t.Fatalf("pixel(0,0) = (%d,%d,%d,%d), want (255,0,0,255)", r>>8, g>>8, b>>8, a>>8)
	}

	r, g, b, _ = img.At(1, 0).RGBA()
	if r>>8 != 0 || g>>8 != 0 || b>>8 != 255 {
		t.Fatalf("pixel(1,0) = (%d,%d,%d), want (0,0,255)", r>>8, g>>8, b>>8)
	}
}

func TestDecodeTGARejectsColorMapped(t *testing.T) {
	t.Parallel()

	hdr := make([]byte, 18)
	hdr[1] = 1 // color-mapped
	hdr[2] = tgaTypeUncompressedTrueColor

	if _, err := decodeTGA(bytes.NewReader(hdr)); err == nil {
		t.Fatalf("decodeTGA should reject a color-mapped image")
	}
}

func TestDecodeTGARLE(t *testing.T) {
	t.Parallel()

	width, height := 4, 1
	hdr := make([]byte, 18)
	hdr[2] = tgaTypeRLETrueColor
	hdr[12] = byte(width)
	hdr[14] = byte(height)
	hdr[16] = 24

	// one RLE packet: repeat count 4 (0x80|3), BGR = green.
	packet := []byte{0x80 | 3, 0, 255, 0}
	data := append(hdr, packet...)

	img, err := decodeTGA(bytes.NewReader(data))
	if err != nil {
		t.Fatalf("decodeTGA: %v", err)
	}

	for x := 0; x < width; x++ {
		r, g, b, _ := img.At(x, 0).RGBA()
		if r>>8 != 0 || g>>8 != 255 || b>>8 != 0 {
			t.Fatalf("pixel(%d,0) = (%d,%d,%d), want (0,255,0)", x, r>>8, g>>8, b>>8)
		}
	}
}

func TestDecodeTGAConfig(t *testing.T) {
	t.Parallel()

	data := buildUncompressedTGA(3, 7, make([]byte, 3*7*3))
	cfg, err := decodeTGAConfig(bytes.NewReader(data))
	if err != nil {
		t.Fatalf("decodeTGAConfig: %v", err)
	}
	if cfg.Width != 3 || cfg.Height != 7 {
		t.Fatalf("cfg = %dx%d, want 3x7", cfg.Width, cfg.Height)
	}
}
