package paa

import (
	"errors"
	"testing"
)

func checkerboardRGBA(width, height int, alpha bool) []byte {
	out := make([]byte, width*height*4)
	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			i := (y*width + x) * 4
			if (x+y)%2 == 0 {
				out[i], out[i+1], out[i+2] = 255, 0, 0
			} else {
				out[i], out[i+1], out[i+2] = 0, 255, 0
			}
			out[i+3] = 255
			if alpha && x < width/2 {
				out[i+3] = 0
			}
		}
	}

	return out
}

func TestCompressDecompressDXT1RoundTrip(t *testing.T) {
	t.Parallel()

	width, height := 8, 8
	rgba := checkerboardRGBA(width, height, false)

	compressed, err := compressDXT(rgba, width, height, FormatDXT1, nil)
	if err != nil {
		t.Fatalf("compressDXT: %v", err)
	}
	if want := expectedCompressedSize(FormatDXT1, width, height); len(compressed) != want {
		t.Fatalf("compressed size = %d, want %d", len(compressed), want)
	}

	decompressed, err := decompressDXT(compressed, width, height, FormatDXT1, nil)
	if err != nil {
		t.Fatalf("decompressDXT: %v", err)
	}
	if len(decompressed) != width*height*4 {
		t.Fatalf("decompressed size = %d, want %d", len(decompressed), width*height*4)
	}
}

func TestCompressDecompressDXT5RoundTrip(t *testing.T) {
	t.Parallel()

	width, height := 8, 8
	rgba := checkerboardRGBA(width, height, true)

	compressed, err := compressDXT(rgba, width, height, FormatDXT5, nil)
	if err != nil {
		t.Fatalf("compressDXT: %v", err)
	}
	if want := expectedCompressedSize(FormatDXT5, width, height); len(compressed) != want {
		t.Fatalf("compressed size = %d, want %d", len(compressed), want)
	}

	decompressed, err := decompressDXT(compressed, width, height, FormatDXT5, nil)
	if err != nil {
		t.Fatalf("decompressDXT: %v", err)
	}
	if len(decompressed) != width*height*4 {
		t.Fatalf("decompressed size = %d, want %d", len(decompressed), width*height*4)
	}
}

func TestCompressDXTRejectsUnwritableFormat(t *testing.T) {
	t.Parallel()

	rgba := checkerboardRGBA(4, 4, false)
	_, err := compressDXT(rgba, 4, 4, FormatDXT3, nil)
	if !errors.Is(err, ErrUnsupportedCompression) {
		t.Fatalf("err = %v, want ErrUnsupportedCompression: DXT2-4 are decode-only", err)
	}
}
