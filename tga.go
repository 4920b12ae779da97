package paa

import (
	"bufio"
	"errors"
	"image"
	"image/color"
	"io"
)

// TGA image type codes this decoder understands.
const (
	tgaTypeUncompressedTrueColor = 2
	tgaTypeRLETrueColor          = 10
)

var errUnsupportedTGA = errors.New("unsupported TGA variant")

// decodeTGAConfig reads just the TGA header, for image.RegisterFormat's
// config-only path.
func decodeTGAConfig(r io.Reader) (image.Config, error) {
	var hdr [18]byte
	if _, err := io.ReadFull(r, hdr[:]); err != nil {
		return image.Config{}, err
	}

	width := int(hdr[12]) | int(hdr[13])<<8
	height := int(hdr[14]) | int(hdr[15])<<8

	return image.Config{Width: width, Height: height, ColorModel: color.RGBAModel}, nil
}

// decodeTGA decodes an uncompressed (type 2) or RLE-compressed (type 10),
// 24/32-bit true-color TGA image. Color-mapped and grayscale TGAs are not
// supported, matching this being a thin, spec-external collaborator rather
// than a general-purpose TGA library.
func decodeTGA(r io.Reader) (image.Image, error) {
	br := bufio.NewReader(r)

	var hdr [18]byte
	if _, err := io.ReadFull(br, hdr[:]); err != nil {
		return nil, err
	}

	idLength := int(hdr[0])
	colorMapType := hdr[1]
	imageType := hdr[2]
	width := int(hdr[12]) | int(hdr[13])<<8
	height := int(hdr[14]) | int(hdr[15])<<8
	bpp := int(hdr[16])
	descriptor := hdr[17]

	if colorMapType != 0 {
		return nil, errUnsupportedTGA
	}
	if imageType != tgaTypeUncompressedTrueColor && imageType != tgaTypeRLETrueColor {
		return nil, errUnsupportedTGA
	}
	if bpp != 24 && bpp != 32 {
		return nil, errUnsupportedTGA
	}

	if idLength > 0 {
		if _, err := io.CopyN(io.Discard, br, int64(idLength)); err != nil {
			return nil, err
		}
	}

	bytesPerPixel := bpp / 8
	topToBottom := descriptor&0x20 != 0
	img := image.NewRGBA(image.Rect(0, 0, width, height))

	if imageType == tgaTypeUncompressedTrueColor {
		row := make([]byte, width*bytesPerPixel)
		for y := 0; y < height; y++ {
			if _, err := io.ReadFull(br, row); err != nil {
				return nil, err
			}
			destY := y
			if !topToBottom {
				destY = height - 1 - y
			}
			for x := 0; x < width; x++ {
				setTGAPixel(img, x, destY, row[x*bytesPerPixel:], bytesPerPixel)
			}
		}

		return img, nil
	}

	if err := decodeTGARLE(img, br, width, height, bytesPerPixel, topToBottom); err != nil {
		return nil, err
	}

	return img, nil
}

func setTGAPixel(img *image.RGBA, x, y int, bgr []byte, bytesPerPixel int) {
	a := uint8(255)
	if bytesPerPixel == 4 {
		a = bgr[3]
	}
	img.SetRGBA(x, y, color.RGBA{R: bgr[2], G: bgr[1], B: bgr[0], A: a})
}

func decodeTGARLE(img *image.RGBA, r io.Reader, width, height, bytesPerPixel int, topToBottom bool) error {
	pixelCount := width * height
	pixelIdx := 0
	var packet [1]byte
	pixel := make([]byte, bytesPerPixel)

	for pixelIdx < pixelCount {
		if _, err := io.ReadFull(r, packet[:]); err != nil {
			return err
		}
		count := int(packet[0]&0x7F) + 1

		if packet[0]&0x80 != 0 {
			if _, err := io.ReadFull(r, pixel); err != nil {
				return err
			}
			for i := 0; i < count && pixelIdx < pixelCount; i++ {
				plotTGARLEPixel(img, pixelIdx, width, height, topToBottom, pixel, bytesPerPixel)
				pixelIdx++
			}
			continue
		}

		for i := 0; i < count && pixelIdx < pixelCount; i++ {
			if _, err := io.ReadFull(r, pixel); err != nil {
				return err
			}
			plotTGARLEPixel(img, pixelIdx, width, height, topToBottom, pixel, bytesPerPixel)
			pixelIdx++
		}
	}

	return nil
}

func plotTGARLEPixel(img *image.RGBA, pixelIdx, width, height int, topToBottom bool, pixel []byte, bytesPerPixel int) {
	x := pixelIdx % width
	y := pixelIdx / width
	destY := y
	if !topToBottom {
		destY = height - 1 - y
	}
	setTGAPixel(img, x, destY, pixel, bytesPerPixel)
}
