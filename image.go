package paa

import (
	"fmt"
	"image"
	"image/draw"
	"image/jpeg"
	"image/png"
	"os"
	"path/filepath"
	"strings"

	_ "golang.org/x/image/bmp"
	_ "golang.org/x/image/tiff"
	_ "golang.org/x/image/webp"
)

func init() {
	// Register the TGA decoder in image.Decode's registry. TGA has no fixed
	// magic number, so the match string is empty, which matches any input:
	// image.Decode hands decodeTGA whatever no earlier-registered format
	// claims, and decodeTGA rejects variants it does not support.
	image.RegisterFormat("tga", "", decodeTGA, decodeTGAConfig)
}

// ImageDecoder decodes an ordinary image file into a tightly packed,
// top-left-origin RGBA8 buffer plus its dimensions.
type ImageDecoder interface {
	Decode(path string) (rgba []byte, width, height int, err error)
}

// ImageEncoder encodes a tightly packed RGBA8 buffer to an image file.
type ImageEncoder interface {
	Encode(path string, rgba []byte, width, height int) error
}

// stdImageCodec decodes via the standard library's image.Decode registry
// (PNG, JPEG, TGA, and — via blank-imported golang.org/x/image packages —
// BMP, TIFF and WebP) and encodes PNG or JPEG by the destination's extension.
type stdImageCodec struct{}

// DefaultImageCodec is the ImageDecoder/ImageEncoder this package's PAA
// methods fall back to when the caller passes nil.
var DefaultImageCodec = stdImageCodec{}

func (stdImageCodec) Decode(path string) ([]byte, int, int, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, 0, 0, fmt.Errorf("%w: %v", ErrIO, err)
	}
	defer f.Close()

	img, _, err := image.Decode(f)
	if err != nil {
		return nil, 0, 0, fmt.Errorf("%w: %v", ErrUnsupportedFormat, err)
	}

	bounds := img.Bounds()
	width, height := bounds.Dx(), bounds.Dy()

	nrgba, ok := img.(*image.NRGBA)
	if !ok || nrgba.Rect.Min != (image.Point{}) || nrgba.Stride != width*4 {
		dst := image.NewNRGBA(image.Rect(0, 0, width, height))
		draw.Draw(dst, dst.Bounds(), img, bounds.Min, draw.Src)
		nrgba = dst
	}

	return nrgba.Pix, width, height, nil
}

func (stdImageCodec) Encode(path string, rgba []byte, width, height int) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrIO, err)
	}
	defer f.Close()

	img := &image.NRGBA{
		Pix:    rgba,
		Stride: width * 4,
		Rect:   image.Rect(0, 0, width, height),
	}

	switch strings.ToLower(filepath.Ext(path)) {
	case ".jpg", ".jpeg":
		err = jpeg.Encode(f, img, &jpeg.Options{Quality: 90})
	default:
		err = png.Encode(f, img)
	}
	if err != nil {
		return fmt.Errorf("%w: %v", ErrIO, err)
	}

	return nil
}
