package paa

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"
)

// PAA is an in-memory PAA texture: a mipmap pyramid plus the tagg metadata
// and optional palette read from (or destined for) a container. The zero
// value is an empty PAA with no bound source: fill it with LoadImage, or
// build one with FromFile or FromBytes and call ReadPAA.
type PAA struct {
	format    Format
	mipMaps   []Mipmap
	preserved []Tagg
	palette   []byte
	stats     stats

	sourcePath string
	sourceData []byte
}

// FromFile binds path as this PAA's byte source without reading it yet.
// Call ReadPAA to actually parse the container.
func FromFile(path string) *PAA {
	return &PAA{sourcePath: path}
}

// FromBytes binds data as this PAA's byte source without parsing it yet.
// Call ReadPAA to actually parse the container.
func FromBytes(data []byte) *PAA {
	return &PAA{sourceData: data}
}

// ReadPAA parses the bound byte source (set by FromFile or FromBytes) with
// the given options (nil uses defaults) and, on success, replaces p's
// state wholesale. On failure p is left untouched.
func (p *PAA) ReadPAA(opts *ReadOptions) error {
	var r *bytes.Reader

	switch {
	case p.sourceData != nil:
		r = bytes.NewReader(p.sourceData)
	case p.sourcePath != "":
		data, err := os.ReadFile(p.sourcePath)
		if err != nil {
			return fmt.Errorf("%w: %v", ErrIO, err)
		}
		r = bytes.NewReader(data)
	default:
		return ErrNoSource
	}

	parsed, err := readContainer(r, opts)
	if err != nil {
		return err
	}

	sourcePath, sourceData := p.sourcePath, p.sourceData
	*p = *parsed
	p.sourcePath, p.sourceData = sourcePath, sourceData

	return nil
}

// LoadImage decodes an ordinary image file (via dec, or DefaultImageCodec
// if dec is nil) and replaces p's state with a single top-level mipmap
// generated from it. The tagg metadata and palette are cleared; WritePAA
// will regenerate the full pyramid and taggs before emitting.
func (p *PAA) LoadImage(path string, dec ImageDecoder) error {
	if dec == nil {
		dec = DefaultImageCodec
	}

	rgba, width, height, err := dec.Decode(path)
	if err != nil {
		return err
	}
	if width <= 0 || height <= 0 {
		return ErrDimensionError
	}
	if _, err := u16FromInt(width); err != nil {
		return fmt.Errorf("%w: width: %v", ErrDimensionError, err)
	}
	if _, err := u16FromInt(height); err != nil {
		return fmt.Errorf("%w: height: %v", ErrDimensionError, err)
	}

	p.format = FormatUnknown
	p.mipMaps = []Mipmap{{Width: uint16(width), Height: uint16(height), Payload: rgba}} //nolint:gosec // bounds checked above
	p.preserved = nil
	p.palette = nil
	p.stats = computeStats(rgba, width, height)

	return nil
}

// Format reports the pixel format the pyramid was (or will be) stored in.
func (p *PAA) Format() Format {
	return p.format
}

// MipMaps returns the current pyramid, top level first. Callers must not
// mutate the returned slice or its Payload contents in place.
func (p *PAA) MipMaps() []Mipmap {
	return p.mipMaps
}

// HasAlpha reports whether the pyramid's top level was classified as
// having transparency (spec.md §4.5: average alpha below 255).
func (p *PAA) HasAlpha() bool {
	return p.stats.hasTransparency
}

// GetRawPixelData returns a copy of the RGBA8 pixel bytes for mipmap level
// (0 is the top level). DXT-compressed levels are decompressed; already
// uncompressed RGBA8888 levels are copied as-is.
func (p *PAA) GetRawPixelData(level int) ([]byte, error) {
	if level < 0 || level >= len(p.mipMaps) {
		return nil, ErrMipLevelOutOfRange
	}

	m := p.mipMaps[level]
	want := int(m.Width) * int(m.Height) * 4
	if len(m.Payload) != want {
		return nil, fmt.Errorf("%w: level %d holds %d-byte native payload, not raw RGBA8", ErrUnsupportedFormat, level, len(m.Payload))
	}

	out := make([]byte, want)
	copy(out, m.Payload)

	return out, nil
}

// SetRawPixelData replaces mipmap level's pixels with data, a tightly
// packed RGBA8 buffer matching that level's current dimensions. Setting
// level 0 recomputes the statistics (average color, transparency); the
// other levels of the pyramid are not regenerated.
func (p *PAA) SetRawPixelData(level int, data []byte) error {
	if level < 0 || level >= len(p.mipMaps) {
		return ErrMipLevelOutOfRange
	}

	m := &p.mipMaps[level]
	want := int(m.Width) * int(m.Height) * 4
	if len(data) != want {
		return fmt.Errorf("%w: level %d wants %d bytes, got %d", ErrDimensionError, level, want, len(data))
	}

	m.Payload = append([]byte{}, data...)
	m.LZOWrapped = false

	if level == 0 {
		p.stats = computeStats(m.Payload, int(m.Width), int(m.Height))
	}

	return nil
}

// WritePAA serializes p to path per opts, replacing any existing file only
// once the full container has been written successfully (write to a
// temporary file in the same directory, then rename over the destination).
// If the pyramid currently has at most one level, it is regenerated from
// level 0 (and statistics/taggs recomputed) before encoding, per spec.md
// §4.7.a. Writing never mutates p's in-memory pyramid.
func (p *PAA) WritePAA(path string, opts WriteOptions) error {
	toWrite := p
	if len(p.mipMaps) <= 1 {
		if len(p.mipMaps) == 0 {
			return ErrNoMipmaps
		}
		top := p.mipMaps[0]
		regenerated := *p
		regenerated.mipMaps = generatePyramid(top.Payload, int(top.Width), int(top.Height))
		regenerated.stats = computeStats(top.Payload, int(top.Width), int(top.Height))
		toWrite = &regenerated
	}

	dir := filepath.Dir(path)
	tmp, err := os.CreateTemp(dir, ".paa-*.tmp")
	if err != nil {
		return fmt.Errorf("%w: %v", ErrIO, err)
	}
	tmpPath := tmp.Name()

	writeErr := writeContainer(tmp, toWrite, opts)
	closeErr := tmp.Close()

	if writeErr != nil || closeErr != nil {
		os.Remove(tmpPath)
		if writeErr != nil {
			return writeErr
		}

		return fmt.Errorf("%w: %v", ErrIO, closeErr)
	}

	if err := os.Rename(tmpPath, path); err != nil {
		os.Remove(tmpPath)
		return fmt.Errorf("%w: %v", ErrIO, err)
	}

	return nil
}

// WriteImage decodes mipmap level and encodes it to path with enc (or
// DefaultImageCodec if enc is nil).
func (p *PAA) WriteImage(path string, level int, enc ImageEncoder) error {
	if level < 0 || level >= len(p.mipMaps) {
		return ErrMipLevelOutOfRange
	}
	if enc == nil {
		enc = DefaultImageCodec
	}

	m := p.mipMaps[level]
	want := int(m.Width) * int(m.Height) * 4
	if len(m.Payload) != want {
		return fmt.Errorf("%w: level %d holds %d-byte native payload, not raw RGBA8", ErrUnsupportedFormat, level, len(m.Payload))
	}

	return enc.Encode(path, m.Payload, int(m.Width), int(m.Height))
}
