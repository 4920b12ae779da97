package paa

import (
	"bytes"
	"errors"
	"testing"
)

func TestReadContainerUnknownMagic(t *testing.T) {
	t.Parallel()

	buf := []byte{0xAB, 0xCD}
	_, err := readContainer(bytes.NewReader(buf), nil)
	if !errors.Is(err, ErrUnknownMagic) {
		t.Fatalf("err = %v, want ErrUnknownMagic", err)
	}
}

func TestReadContainerTruncatedAfterMagic(t *testing.T) {
	t.Parallel()

	buf := []byte{0x01, 0xFF} // FormatDXT1 magic, nothing after
	_, err := readContainer(bytes.NewReader(buf), nil)
	if !errors.Is(err, ErrTruncated) {
		t.Fatalf("err = %v, want ErrTruncated", err)
	}
}

func TestReadWriteContainerRoundTripRGBA8888(t *testing.T) {
	t.Parallel()

	width, height := 8, 8
	rgba := checkerboardRGBA(width, height, true)
	p := &PAA{
		mipMaps: []Mipmap{{Width: uint16(width), Height: uint16(height), Payload: rgba}},
		stats:   computeStats(rgba, width, height),
	}

	var buf bytes.Buffer
	if err := writeContainer(&buf, p, WriteOptions{Format: FormatRGBA8888, LZO: false}); err != nil {
		t.Fatalf("writeContainer: %v", err)
	}

	got, err := readContainer(bytes.NewReader(buf.Bytes()), nil)
	if err != nil {
		t.Fatalf("readContainer: %v", err)
	}

	if len(got.mipMaps) != 1 {
		t.Fatalf("len(mipMaps) = %d, want 1", len(got.mipMaps))
	}
	if !bytes.Equal(got.mipMaps[0].Payload, rgba) {
		t.Fatalf("RGBA8888 round trip should be lossless")
	}
	if !got.stats.hasTransparency {
		t.Fatalf("hasTransparency = false, want true")
	}
}

func TestReadWriteContainerPreservesUnknownTaggs(t *testing.T) {
	t.Parallel()

	width, height := 4, 4
	rgba := checkerboardRGBA(width, height, false)
	p := &PAA{
		mipMaps:   []Mipmap{{Width: uint16(width), Height: uint16(height), Payload: rgba}},
		preserved: []Tagg{{Signature: "CUSTOMTG", Payload: []byte{1, 2, 3, 4}}},
		stats:     computeStats(rgba, width, height),
	}

	var buf bytes.Buffer
	if err := writeContainer(&buf, p, WriteOptions{Format: FormatRGBA8888}); err != nil {
		t.Fatalf("writeContainer: %v", err)
	}

	got, err := readContainer(bytes.NewReader(buf.Bytes()), nil)
	if err != nil {
		t.Fatalf("readContainer: %v", err)
	}

	if len(got.preserved) != 1 || got.preserved[0].Signature != "CUSTOMTG" {
		t.Fatalf("preserved taggs = %v, want one CUSTOMTG tagg", got.preserved)
	}
}

func TestReadWriteContainerWithLZO(t *testing.T) {
	t.Parallel()

	width, height := 256, 256
	rgba := checkerboardRGBA(width, height, false)
	p := &PAA{
		mipMaps: generatePyramid(rgba, width, height),
		stats:   computeStats(rgba, width, height),
	}

	var buf bytes.Buffer
	if err := writeContainer(&buf, p, WriteOptions{Format: FormatDXT1, LZO: true}); err != nil {
		t.Fatalf("writeContainer: %v", err)
	}

	got, err := readContainer(bytes.NewReader(buf.Bytes()), nil)
	if err != nil {
		t.Fatalf("readContainer: %v", err)
	}
	if !got.mipMaps[0].LZOWrapped {
		t.Fatalf("top mipmap (width %d) should be LZO-wrapped", width)
	}

	last := got.mipMaps[len(got.mipMaps)-1]
	if last.LZOWrapped {
		t.Fatalf("smallest mipmap (width %d) should not be LZO-wrapped", last.Width)
	}
}
