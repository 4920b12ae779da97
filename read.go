package paa

import (
	"bufio"
	"fmt"
	"io"

	"github.com/woozymasta/bcn"
)

// ReadOptions configures PAA reading (e.g. BCn decode workers).
type ReadOptions struct {
	// DecodeOptions is forwarded to the bcn decoder (e.g. Workers).
	DecodeOptions *bcn.DecodeOptions
}

// readContainer parses the PAA binary format from r per spec.md §4.6:
// magic, tagg loop, palette, mipmap loop. It never mutates caller state —
// callers build a fresh PAA on success and leave any prior PAA untouched
// on failure.
func readContainer(r io.Reader, opts *ReadOptions) (*PAA, error) {
	br := bufio.NewReader(r)

	magic, err := readUint16LE(br)
	if err != nil {
		return nil, err
	}
	if !knownMagic(magic) {
		return nil, fmt.Errorf("%w: 0x%04X", ErrUnknownMagic, magic)
	}
	format := Format(magic)

	preserved, computed, err := readTaggs(br)
	if err != nil {
		return nil, err
	}

	palette, err := readPalette(br)
	if err != nil {
		return nil, err
	}

	mipMaps, err := readMipmaps(br, format, opts)
	if err != nil {
		return nil, err
	}

	st := stats{max: [4]byte{0xFF, 0xFF, 0xFF, 0xFF}}
	if avg, ok := computed[sigAverageColor]; ok && len(avg) >= 4 {
		copy(st.avg[:], avg[:4])
	}
	if max, ok := computed[sigMaxColor]; ok && len(max) >= 4 {
		copy(st.max[:], max[:4])
	}
	_, st.hasTransparency = computed[sigTransparency]

	return &PAA{
		format:    format,
		mipMaps:   mipMaps,
		preserved: preserved,
		palette:   palette,
		stats:     st,
	}, nil
}

// readTaggs reads the tagg list, terminated when the next byte is zero
// (spec §9 open question (c): the low byte of the following palette-length
// word happens to be the sentinel for zero-length palettes — this quirk is
// preserved as specified, not reframed as a cleaner length-prefixed list).
func readTaggs(br *bufio.Reader) (preserved []Tagg, computed map[string][]byte, err error) {
	computed = make(map[string][]byte)

	for {
		next, err := peekByte(br)
		if err != nil {
			return nil, nil, err
		}
		if next == 0 {
			break
		}

		sigBytes, err := readExact(br, 8)
		if err != nil {
			return nil, nil, err
		}
		sig := string(sigBytes)

		payload, err := readCountedBlock32(br)
		if err != nil {
			return nil, nil, fmt.Errorf("%w: tagg %q: %v", ErrInvalidTagg, sig, err)
		}

		if isComputed(sig) {
			computed[sig] = payload
			continue
		}
		preserved = append(preserved, Tagg{Signature: sig, Payload: payload})
	}

	return preserved, computed, nil
}

// readPalette reads the length-prefixed palette blob. Length 0 means absent.
func readPalette(br *bufio.Reader) ([]byte, error) {
	n, err := readUint16LE(br)
	if err != nil {
		return nil, fmt.Errorf("%w: palette length: %v", ErrTruncated, err)
	}
	if n == 0 {
		return nil, nil
	}

	data, err := readExact(br, int(n))
	if err != nil {
		return nil, fmt.Errorf("%w: palette data: %v", ErrTruncated, err)
	}

	return data, nil
}

// readMipmaps reads the mipmap list, terminated when the next u16 is zero.
func readMipmaps(br *bufio.Reader, format Format, opts *ReadOptions) ([]Mipmap, error) {
	var decOpts *bcn.DecodeOptions
	if opts != nil {
		decOpts = opts.DecodeOptions
	}

	var mips []Mipmap
	for {
		next, err := peekUint16LE(br)
		if err != nil {
			return nil, err
		}
		if next == 0 {
			// The wire format may carry one, or the usual three, trailing
			// zero u16 words; only one is required to terminate the list.
			if _, err := readUint16LE(br); err != nil {
				return nil, err
			}
			break
		}

		mip, err := readOneMipmap(br, format, decOpts)
		if err != nil {
			return nil, err
		}
		mips = append(mips, mip)
	}

	return mips, nil
}

func readOneMipmap(br *bufio.Reader, format Format, decOpts *bcn.DecodeOptions) (Mipmap, error) {
	widthWord, err := readUint16LE(br)
	if err != nil {
		return Mipmap{}, err
	}
	height, err := readUint16LE(br)
	if err != nil {
		return Mipmap{}, err
	}

	lzoWrapped := widthWord&0x8000 != 0
	width := widthWord &^ 0x8000

	length, err := readUint24LE(br)
	if err != nil {
		return Mipmap{}, err
	}

	raw, err := readExact(br, int(length))
	if err != nil {
		return Mipmap{}, fmt.Errorf("%w: mipmap %dx%d: %v", ErrInvalidMipmap, width, height, err)
	}

	payload := raw
	if lzoWrapped {
		expected := expectedCompressedSize(format, int(width), int(height))
		if expected < 0 {
			expected = int(width) * int(height) * 4
		}
		payload, err = unwrapLZO(raw, expected)
		if err != nil {
			return Mipmap{}, fmt.Errorf("%w: mipmap %dx%d: %v", ErrUnsupportedCompression, width, height, err)
		}
	}

	if isDXT(format) {
		payload, err = decompressDXT(payload, int(width), int(height), format, decOpts)
		if err != nil {
			return Mipmap{}, fmt.Errorf("%w: mipmap %dx%d: %v", ErrInvalidMipmap, width, height, err)
		}
	}
	// Uncompressed pixel formats (RGBA4444/5551/8888, gray+alpha) are left
	// as format-native bytes: the source tool does not convert them to
	// RGBA8 on read either (spec §9, "decode-passthrough").

	return Mipmap{
		Width:      width,
		Height:     height,
		LZOWrapped: lzoWrapped,
		Payload:    payload,
	}, nil
}
