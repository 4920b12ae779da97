package paa

import (
	"fmt"

	"github.com/woozymasta/lzo"
)

// lzoWrapWidthThreshold is the top-mipmap width above which the writer
// starts LZO-wrapping mipmaps, and the per-mipmap width above which a given
// mipmap is eligible to be wrapped (spec: "wrap mipmaps from index 0
// forward while their width > 128").
const lzoWrapWidthThreshold = 128

// wrapLZO compresses an already block-compressed mipmap payload with
// LZO1X. The container framing (the width high-bit flag) is the caller's
// responsibility; this only produces the wrapped byte stream.
func wrapLZO(data []byte) ([]byte, error) {
	out, err := lzo.Compress(data, nil)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrUnsupportedCompression, err)
	}

	return out, nil
}

// unwrapLZO inflates an LZO1X-wrapped mipmap payload back to its
// block-compressed (or raw) size of expectedSize bytes.
func unwrapLZO(data []byte, expectedSize int) ([]byte, error) {
	out, err := lzo.Decompress(data, lzo.DefaultDecompressOptions(expectedSize))
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrUnsupportedCompression, err)
	}

	return out, nil
}

// lzoEligible reports whether a mipmap of the given width, in a pyramid
// whose top mipmap has width topWidth, should be LZO-wrapped on write.
func lzoEligible(topWidth, width int) bool {
	return topWidth > lzoWrapWidthThreshold && width > lzoWrapWidthThreshold
}
