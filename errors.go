package paa

import "errors"

var (
	// ErrIO indicates an underlying stream read/write/open failure.
	ErrIO = errors.New("io error")
	// ErrTruncated indicates the stream ended mid-record.
	ErrTruncated = errors.New("truncated stream")
	// ErrUnknownMagic indicates the file's magic word has no known format mapping.
	ErrUnknownMagic = errors.New("unknown magic number")
	// ErrInvalidTagg indicates a tagg length inconsistent with remaining bytes.
	ErrInvalidTagg = errors.New("invalid tagg")
	// ErrInvalidMipmap indicates a mipmap with inconsistent length, dimensions,
	// or a decompressed size that mismatches the computed expected size.
	ErrInvalidMipmap = errors.New("invalid mipmap")
	// ErrUnsupportedCompression indicates an LZO-flagged mipmap this build
	// cannot unwrap, or a write request for a compression scheme it cannot produce.
	ErrUnsupportedCompression = errors.New("unsupported compression")
	// ErrUnsupportedFormat indicates a pixel format this build cannot decode or encode.
	ErrUnsupportedFormat = errors.New("unsupported format")
	// ErrDimensionError indicates a zero-size or out-of-range image, a
	// dimension that does not fit 16 bits, or a data length that does not fit 24 bits.
	ErrDimensionError = errors.New("dimension error")
	// ErrInvalidBlock indicates a structurally invalid DXT block.
	ErrInvalidBlock = errors.New("invalid block")
	// ErrNoMipmaps indicates an operation that requires at least one mipmap found none.
	ErrNoMipmaps = errors.New("no mipmaps")
	// ErrNoSource indicates a read was requested on a PAA with no bound byte source.
	ErrNoSource = errors.New("no input source bound")
	// ErrMipLevelOutOfRange indicates a requested mipmap level does not exist.
	ErrMipLevelOutOfRange = errors.New("mipmap level out of range")
)
