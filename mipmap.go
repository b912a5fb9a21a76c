package tex

import "math/bits"

// mipCount returns the full mip chain length for the base dimensions:
// the bit length of the larger dimension, so the last level is 1x1.
func mipCount(width, height int) int {
	m := width
	if height > m {
		m = height
	}
	if m < 1 {
		return 1
	}
	return bits.Len(uint(m))
}

// mipDimension calculates the dimension of a mipmap level.
func mipDimension(base, level int) int {
	result := base >> level
	if result < 1 {
		return 1
	}

	return result
}

// downsampleRGBA halves a tightly packed RGBA buffer with a 2x2 box
// average, rounding to nearest. Odd dimensions clamp at the edge: the last
// source row or column is reused for the missing sample.
func downsampleRGBA(pix []byte, width, height int) ([]byte, int, int) {
	dstW := mipDimension(width, 1)
	dstH := mipDimension(height, 1)
	out := make([]byte, dstW*dstH*4)

	for y := 0; y < dstH; y++ {
		sy0 := y * 2
		sy1 := sy0 + 1
		if sy1 >= height {
			sy1 = height - 1
		}
		for x := 0; x < dstW; x++ {
			sx0 := x * 2
			sx1 := sx0 + 1
			if sx1 >= width {
				sx1 = width - 1
			}

			i00 := (sy0*width + sx0) * 4
			i01 := (sy0*width + sx1) * 4
			i10 := (sy1*width + sx0) * 4
			i11 := (sy1*width + sx1) * 4
			dst := (y*dstW + x) * 4

			for c := 0; c < 4; c++ {
				sum := int(pix[i00+c]) + int(pix[i01+c]) + int(pix[i10+c]) + int(pix[i11+c])
				out[dst+c] = uint8((sum + 2) / 4)
			}
		}
	}

	return out, dstW, dstH
}
