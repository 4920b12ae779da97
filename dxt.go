package paa

import (
	"fmt"
	"image"

	"github.com/woozymasta/bcn"
)

// compressDXT block-compresses a tightly packed w×h RGBA buffer into the
// wire bytes for format f (FormatDXT1 or FormatDXT5), using bcn as the
// block-compression engine — the same delegation the source tool makes to
// the squish library, and the teacher makes to bcn for EDDS payloads.
func compressDXT(rgba []byte, width, height int, f Format, opts *bcn.EncodeOptions) ([]byte, error) {
	bcnFormat, ok := bcnEncodeFormat(f)
	if !ok {
		return nil, fmt.Errorf("%w: %v", ErrUnsupportedCompression, f)
	}

	img := &image.NRGBA{
		Pix:    rgba,
		Stride: width * 4,
		Rect:   image.Rect(0, 0, width, height),
	}

	data, _, _, err := bcn.EncodeImageWithOptions(img, bcnFormat, opts)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidBlock, err)
	}

	want := expectedCompressedSize(f, width, height)
	if want >= 0 && len(data) != want {
		return nil, fmt.Errorf("%w: expected %d compressed bytes, got %d", ErrInvalidMipmap, want, len(data))
	}

	return data, nil
}

// bcnEncodeFormat maps the two formats this package ever writes to their bcn equivalent.
func bcnEncodeFormat(f Format) (bcn.Format, bool) {
	switch f {
	case FormatDXT1:
		return bcn.FormatDXT1, true
	case FormatDXT5:
		return bcn.FormatDXT5, true
	default:
		return bcn.FormatUnknown, false
	}
}

// decompressDXT inverts compressDXT (or decodes a read-only DXT2/3/4
// payload), always returning exactly width*height*4 RGBA bytes — the block
// codec pads partial 4×4 blocks internally but the caller never sees padding.
func decompressDXT(data []byte, width, height int, f Format, opts *bcn.DecodeOptions) ([]byte, error) {
	bcnFormat, ok := bcnDecodeFormat(f)
	if !ok {
		return nil, fmt.Errorf("%w: %v", ErrUnsupportedFormat, f)
	}

	img, err := bcn.DecodeImageWithOptions(data, width, height, bcnFormat, opts)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidBlock, err)
	}

	rgba := toTightRGBA(img, width, height)
	want := width * height * 4
	if len(rgba) != want {
		return nil, fmt.Errorf("%w: expected %d decoded bytes, got %d", ErrInvalidMipmap, want, len(rgba))
	}

	return rgba, nil
}

// toTightRGBA converts any decoded image.Image into a tightly packed,
// top-left-origin RGBA byte buffer of exactly width*height*4 bytes.
func toTightRGBA(img image.Image, width, height int) []byte {
	if nrgba, ok := img.(*image.NRGBA); ok && nrgba.Stride == width*4 && nrgba.Rect.Min == (image.Point{}) {
		return nrgba.Pix
	}

	out := make([]byte, width*height*4)
	bounds := img.Bounds()
	for y := 0; y < height && y < bounds.Dy(); y++ {
		for x := 0; x < width && x < bounds.Dx(); x++ {
			r, g, b, a := img.At(bounds.Min.X+x, bounds.Min.Y+y).RGBA()
			i := (y*width + x) * 4
			out[i] = byte(r >> 8)
			out[i+1] = byte(g >> 8)
			out[i+2] = byte(b >> 8)
			out[i+3] = byte(a >> 8)
		}
	}

	return out
}
