package paa

// stats holds the computed tagg values derived from a pyramid's top mipmap.
type stats struct {
	avg             [4]byte
	max             [4]byte
	hasTransparency bool
}

// computeStats computes the per-channel average color over rgba (the top
// mipmap) and derives the transparency flag from the average alpha.
//
// This uses average-alpha-below-255, the source tool's rule, rather than a
// per-pixel minimum check. Because the average is a truncating integer
// division, it falls below 255 as soon as any single pixel has alpha below
// 255, so the result is the same as a per-pixel check.
func computeStats(rgba []byte, width, height int) stats {
	pixelCount := width * height
	if pixelCount == 0 {
		return stats{max: [4]byte{0xFF, 0xFF, 0xFF, 0xFF}}
	}

	var sumR, sumG, sumB, sumA int
	for i := 0; i < len(rgba); i += 4 {
		sumR += int(rgba[i])
		sumG += int(rgba[i+1])
		sumB += int(rgba[i+2])
		sumA += int(rgba[i+3])
	}

	avg := [4]byte{
		byte(sumR / pixelCount),
		byte(sumG / pixelCount),
		byte(sumB / pixelCount),
		byte(sumA / pixelCount),
	}

	return stats{
		avg:             avg,
		max:             [4]byte{0xFF, 0xFF, 0xFF, 0xFF},
		hasTransparency: avg[3] < 255,
	}
}
