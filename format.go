package paa

import "github.com/woozymasta/bcn"

// Format identifies the pixel format a PAA file stores, keyed by its
// on-disk 16-bit magic word (the magic value doubles as the format id,
// exactly as in the source tool's PAAFormat enum).
type Format uint16

const (
	// FormatUnknown marks an unset or unrecognized format.
	FormatUnknown Format = 0x0000
	// FormatDXT1 is 4:1 block-compressed RGB with 1-bit alpha.
	FormatDXT1 Format = 0xFF01
	// FormatDXT2 is explicit-alpha block compression, premultiplied (decode only).
	FormatDXT2 Format = 0xFF02
	// FormatDXT3 is explicit-alpha block compression (decode only).
	FormatDXT3 Format = 0xFF03
	// FormatDXT4 is interpolated-alpha block compression, premultiplied (decode only).
	FormatDXT4 Format = 0xFF04
	// FormatDXT5 is 2:1 block-compressed RGBA with interpolated alpha.
	FormatDXT5 Format = 0xFF05
	// FormatRGBA4444 is uncompressed 4-bit-per-channel RGBA (decode passthrough only).
	FormatRGBA4444 Format = 0x4444
	// FormatRGBA5551 is uncompressed 5-5-5-1 RGBA (decode passthrough only).
	FormatRGBA5551 Format = 0x1555
	// FormatRGBA8888 is uncompressed 8-bit-per-channel RGBA.
	FormatRGBA8888 Format = 0x8888
	// FormatGrayAlpha is uncompressed gray+alpha (decode passthrough only).
	FormatGrayAlpha Format = 0x8080
)

// knownMagic reports whether m is a recognized PAA magic word.
func knownMagic(m uint16) bool {
	switch Format(m) {
	case FormatDXT1, FormatDXT2, FormatDXT3, FormatDXT4, FormatDXT5,
		FormatRGBA4444, FormatRGBA5551, FormatRGBA8888, FormatGrayAlpha:
		return true
	default:
		return false
	}
}

// isDXT reports whether f is one of the DXT1..DXT5 block-compressed formats.
func isDXT(f Format) bool {
	switch f {
	case FormatDXT1, FormatDXT2, FormatDXT3, FormatDXT4, FormatDXT5:
		return true
	default:
		return false
	}
}

// bcnDecodeFormat maps a PAA magic to the bcn.Format used to decode its
// block payload. DXT2 shares DXT3's explicit-alpha block layout and DXT4
// shares DXT5's interpolated-alpha layout; both differ from their sibling
// only by alpha premultiplication, which is invisible at the block level.
func bcnDecodeFormat(f Format) (bcn.Format, bool) {
	switch f {
	case FormatDXT1:
		return bcn.FormatDXT1, true
	case FormatDXT2, FormatDXT3:
		return bcn.FormatDXT3, true
	case FormatDXT4, FormatDXT5:
		return bcn.FormatDXT5, true
	default:
		return bcn.FormatUnknown, false
	}
}

// expectedCompressedSize returns the exact on-disk byte length of a w×h
// mipmap encoded in format f (w·h·4 for raw RGBA8888), or -1 for the other
// uncompressed formats (RGBA4444, RGBA5551, gray+alpha) and unknown ones.
func expectedCompressedSize(f Format, width, height int) int {
	blocksW := (width + 3) / 4
	blocksH := (height + 3) / 4

	switch f {
	case FormatDXT1:
		return blocksW * blocksH * 8
	case FormatDXT2, FormatDXT3, FormatDXT4, FormatDXT5:
		return blocksW * blocksH * 16
	case FormatRGBA8888:
		return width * height * 4
	default:
		return -1
	}
}
