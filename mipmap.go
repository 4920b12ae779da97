package paa

// Mipmap is one level of a PAA texture pyramid. Payload is the bytes that
// get written to disk for this level: either raw-uncompressed RGBA, DXT
// block bytes, or LZO-wrapped DXT block bytes, depending on the
// container's format and LZOWrapped flag.
type Mipmap struct {
	Width      uint16
	Height     uint16
	LZOWrapped bool
	Payload    []byte
}

// generatePyramid builds the downsample pyramid from a top-level RGBA
// image by repeated 2×2 box averaging: while the current level's smaller
// side exceeds 4, a halved level is appended. The last level is therefore
// the first one whose min(w,h) is 4 or less (8×4 for a 16×8 top level); the
// top level itself is kept regardless of size.
//
// Each successive level averages the *previous* level, not the top one,
// so the algorithm is incremental, matching the source tool's
// calculateMipmapsAndTaggs loop.
func generatePyramid(top []byte, width, height int) []Mipmap {
	pyramid := []Mipmap{{
		Width:   uint16(width), //nolint:gosec // caller validates against uint16 range
		Height:  uint16(height),
		Payload: top,
	}}

	curW, curH, cur := width, height, top
	for min(curW, curH) > 4 {
		nextW, nextH := curW/2, curH/2
		next := boxDownsample(cur, curW, curH, nextW, nextH)

		pyramid = append(pyramid, Mipmap{
			Width:   uint16(nextW), //nolint:gosec // halving a validated uint16 never overflows
			Height:  uint16(nextH),
			Payload: next,
		})

		curW, curH, cur = nextW, nextH, next
	}

	return pyramid
}

// boxDownsample halves src (srcW×srcH RGBA) into a dstW×dstH RGBA buffer,
// averaging each 2×2 block of pixels independently per channel with
// truncating integer division.
func boxDownsample(src []byte, srcW, srcH, dstW, dstH int) []byte {
	dst := make([]byte, dstW*dstH*4)

	for y := 0; y < dstH; y++ {
		sy := y * 2
		for x := 0; x < dstW; x++ {
			sx := x * 2
			p1 := (sy*srcW + sx) * 4
			p2 := (sy*srcW + sx + 1) * 4
			p3 := ((sy+1)*srcW + sx) * 4
			p4 := ((sy+1)*srcW + sx + 1) * 4
			d := (y*dstW + x) * 4

			for c := 0; c < 4; c++ {
				dst[d+c] = byte((int(src[p1+c]) + int(src[p2+c]) + int(src[p3+c]) + int(src[p4+c])) / 4)
			}
		}
	}

	return dst
}
