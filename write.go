package paa

import (
	"errors"
	"fmt"
	"io"

	"github.com/woozymasta/bcn"
)

// WriteOptions configures PAA writing.
type WriteOptions struct {
	// Format is the target pixel format. FormatUnknown auto-picks DXT5 when
	// the pyramid has transparency, DXT1 otherwise (spec §4.7.b).
	Format Format
	// MaxMipMaps caps the number of mipmap levels written; 0 means the full chain.
	MaxMipMaps int
	// LZO enables LZO1X-wrapping of large mipmaps (spec §4.3/§9). Disabling
	// it writes every mipmap unwrapped even if its width exceeds 128.
	LZO bool
	// EncodeOptions is forwarded to the bcn block encoder (e.g. QualityLevel).
	EncodeOptions *bcn.EncodeOptions
}

// encodedMipmap is a mipmap whose payload has already been through block
// compression and (optionally) LZO wrapping, ready to be laid out on disk.
type encodedMipmap struct {
	width, height uint16
	lzoWrapped    bool
	payload       []byte
}

// writeContainer serializes p to w per spec.md §4.7: lay out taggs
// (including the computed offsets tag), palette, and mipmap chain, with
// the offsets tag bit-exact with the emitted bytes.
func writeContainer(w io.Writer, p *PAA, opts WriteOptions) error {
	if len(p.mipMaps) == 0 {
		return ErrNoMipmaps
	}

	format := opts.Format
	if format == FormatUnknown {
		if p.stats.hasTransparency {
			format = FormatDXT5
		} else {
			format = FormatDXT1
		}
	}

	mips := p.mipMaps
	if opts.MaxMipMaps > 0 && opts.MaxMipMaps < len(mips) {
		mips = mips[:opts.MaxMipMaps]
	}

	encoded, err := encodeMipmaps(mips, format, opts)
	if err != nil {
		return err
	}

	preserved := p.preserved
	computed := computedTaggs(p.stats)
	offsetsPayload := computeOffsets(preserved, computed, len(p.palette), encoded)

	if err := writeUint16LE(w, uint16(format)); err != nil {
		return err
	}
	for _, t := range preserved {
		if err := writeTagg(w, t); err != nil {
			return err
		}
	}
	for _, t := range computed {
		if err := writeTagg(w, t); err != nil {
			return err
		}
	}
	if err := writeTagg(w, Tagg{Signature: sigOffsets, Payload: offsetsPayload}); err != nil {
		return err
	}

	if err := writeUint16LE(w, uint16(len(p.palette))); err != nil { //nolint:gosec // palette length bounded by readers
		return err
	}
	if len(p.palette) > 0 {
		if _, err := w.Write(p.palette); err != nil {
			return fmt.Errorf("%w: palette: %v", ErrIO, err)
		}
	}

	for _, m := range encoded {
		if err := writeOneMipmap(w, m); err != nil {
			return err
		}
	}

	// Terminator: the writer always emits three trailing zero u16 words
	// (spec §9 open question (a)); the reader only requires one.
	for i := 0; i < 3; i++ {
		if err := writeUint16LE(w, 0); err != nil {
			return err
		}
	}

	return nil
}

// encodeMipmaps block-compresses (and, where eligible, LZO-wraps) every
// mipmap in mips for the target format.
func encodeMipmaps(mips []Mipmap, format Format, opts WriteOptions) ([]encodedMipmap, error) {
	if !isDXT(format) && format != FormatRGBA8888 {
		return nil, fmt.Errorf("%w: %v", ErrUnsupportedCompression, format)
	}

	topWidth := int(mips[0].Width)
	out := make([]encodedMipmap, len(mips))

	for i, m := range mips {
		var payload []byte

		if isDXT(format) {
			compressed, err := compressDXT(m.Payload, int(m.Width), int(m.Height), format, opts.EncodeOptions)
			if err != nil {
				// A capability gap (the codec cannot encode this format at
				// all) is distinct from a genuine per-block encode failure:
				// callers checking errors.Is(err, ErrUnsupportedCompression)
				// must see it survive this wrap.
				if errors.Is(err, ErrUnsupportedCompression) {
					return nil, fmt.Errorf("%w: mipmap %d: %v", ErrUnsupportedCompression, i, err)
				}
				return nil, fmt.Errorf("%w: mipmap %d: %v", ErrInvalidMipmap, i, err)
			}
			payload = compressed
		} else {
			want := int(m.Width) * int(m.Height) * 4
			if len(m.Payload) != want {
				return nil, fmt.Errorf("%w: mipmap %d: expected %d raw bytes, got %d", ErrInvalidMipmap, i, want, len(m.Payload))
			}
			payload = m.Payload
		}

		lzoWrapped := false
		if opts.LZO && lzoEligible(topWidth, int(m.Width)) {
			wrapped, err := wrapLZO(payload)
			if err != nil {
				return nil, fmt.Errorf("%w: mipmap %d: %v", ErrUnsupportedCompression, i, err)
			}
			payload = wrapped
			lzoWrapped = true
		}

		if _, err := u24FromInt(len(payload)); err != nil {
			return nil, fmt.Errorf("%w: mipmap %d payload: %v", ErrDimensionError, i, err)
		}

		out[i] = encodedMipmap{width: m.Width, height: m.Height, lzoWrapped: lzoWrapped, payload: payload}
	}

	return out, nil
}

// computedTaggs builds the average-color, max-color and (conditionally)
// transparency taggs from st, in the order the source tool writes them.
func computedTaggs(st stats) []Tagg {
	taggs := []Tagg{
		{Signature: sigAverageColor, Payload: append([]byte{}, st.avg[:]...)},
		{Signature: sigMaxColor, Payload: []byte{0xFF, 0xFF, 0xFF, 0xFF}},
	}
	if st.hasTransparency {
		taggs = append(taggs, Tagg{Signature: sigTransparency, Payload: []byte{0x01, 0xFF, 0xFF, 0xFF}})
	}

	return taggs
}

// computeOffsets computes the absolute byte offset of every mipmap header
// and returns the ready-to-emit 64-byte GGATSFFO payload. The palette
// length contributes to the base offset only when the palette is
// non-empty — the corrected formula from spec §4.7/§9(b).
func computeOffsets(preserved, computed []Tagg, paletteLen int, mips []encodedMipmap) []byte {
	offset := 2 // magic word

	for _, t := range preserved {
		offset += t.header()
	}
	for _, t := range computed {
		offset += t.header()
	}
	offset += 8 + 4 + maxOffsetSlots*4 // the offsets tagg itself
	offset += 2                       // palette length word
	offset += paletteLen

	offsets := make([]uint32, len(mips))
	for i, m := range mips {
		offsets[i] = uint32(offset) //nolint:gosec // file offsets bounded by realistic PAA sizes
		offset += 2 + 2 + 3 + len(m.payload)
	}

	payload := make([]byte, maxOffsetSlots*4)
	for i, off := range offsets {
		if i >= maxOffsetSlots {
			break
		}
		payload[i*4] = byte(off)
		payload[i*4+1] = byte(off >> 8)
		payload[i*4+2] = byte(off >> 16)
		payload[i*4+3] = byte(off >> 24)
	}

	return payload
}

func writeTagg(w io.Writer, t Tagg) error {
	sig := []byte(t.Signature)
	if len(sig) != 8 {
		padded := make([]byte, 8)
		copy(padded, sig)
		sig = padded
	}
	if _, err := w.Write(sig); err != nil {
		return fmt.Errorf("%w: tagg %q signature: %v", ErrIO, t.Signature, err)
	}
	if err := writeUint32LE(w, uint32(len(t.Payload))); err != nil { //nolint:gosec // payload length bounded by callers
		return fmt.Errorf("%w: tagg %q length: %v", ErrIO, t.Signature, err)
	}
	if len(t.Payload) > 0 {
		if _, err := w.Write(t.Payload); err != nil {
			return fmt.Errorf("%w: tagg %q payload: %v", ErrIO, t.Signature, err)
		}
	}

	return nil
}

func writeOneMipmap(w io.Writer, m encodedMipmap) error {
	widthWord := m.width
	if m.lzoWrapped {
		widthWord |= 0x8000
	}

	if err := writeUint16LE(w, widthWord); err != nil {
		return err
	}
	if err := writeUint16LE(w, m.height); err != nil {
		return err
	}

	length, err := u24FromInt(len(m.payload))
	if err != nil {
		return err
	}
	if err := writeUint24LE(w, length); err != nil {
		return err
	}

	if _, err := w.Write(m.payload); err != nil {
		return fmt.Errorf("%w: mipmap payload: %v", ErrIO, err)
	}

	return nil
}
