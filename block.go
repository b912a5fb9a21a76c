package tex

import "encoding/binary"

// blockPixels is one 4x4 tile as 16 RGBA samples, row-major.
type blockPixels [64]byte

// pack565 quantizes an 8-bit RGB triple to a packed 5-6-5 color.
func pack565(r, g, b uint8) uint16 {
	return uint16(r>>3)<<11 | uint16(g>>2)<<5 | uint16(b>>3)
}

// unpack565 expands a packed 5-6-5 color back to 8-bit channels by shifting
// each field into the high bits of its byte.
func unpack565(c uint16) (r, g, b uint8) {
	r = uint8(c>>11&0x1f) << 3
	g = uint8(c>>5&0x3f) << 2
	b = uint8(c&0x1f) << 3
	return r, g, b
}

// colorPalette builds the 4-entry RGBA palette for packed endpoints c0, c1.
// c0 > c1 selects the four-color mode with 2:1 and 1:2 blends; otherwise the
// third entry is the average and the fourth is transparent black
// (punch-through mode).
func colorPalette(c0, c1 uint16) [4][4]uint8 {
	r0, g0, b0 := unpack565(c0)
	r1, g1, b1 := unpack565(c1)

	pal := [4][4]uint8{
		{r0, g0, b0, 255},
		{r1, g1, b1, 255},
	}

	if c0 > c1 {
		pal[2] = [4]uint8{
			uint8((int(r0)*2 + int(r1)) / 3),
			uint8((int(g0)*2 + int(g1)) / 3),
			uint8((int(b0)*2 + int(b1)) / 3),
			255,
		}
		pal[3] = [4]uint8{
			uint8((int(r0) + int(r1)*2) / 3),
			uint8((int(g0) + int(g1)*2) / 3),
			uint8((int(b0) + int(b1)*2) / 3),
			255,
		}
	} else {
		pal[2] = [4]uint8{
			uint8((int(r0) + int(r1)) / 2),
			uint8((int(g0) + int(g1)) / 2),
			uint8((int(b0) + int(b1)) / 2),
			255,
		}
		pal[3] = [4]uint8{0, 0, 0, 0}
	}

	return pal
}

// alphaPalette builds the 8-entry palette for alpha endpoints a0, a1.
// a0 > a1 selects seven-step interpolation; otherwise five-step
// interpolation with entries 6 and 7 fixed to 0 and 255.
func alphaPalette(a0, a1 uint8) [8]uint8 {
	pal := [8]uint8{a0, a1}

	if a0 > a1 {
		for i := 1; i < 7; i++ {
			pal[i+1] = uint8(((7-i)*int(a0) + i*int(a1)) / 7)
		}
	} else {
		for i := 1; i < 5; i++ {
			pal[i+1] = uint8(((5-i)*int(a0) + i*int(a1)) / 5)
		}
		pal[6] = 0
		pal[7] = 255
	}

	return pal
}

// decodeBlockDXT1 decodes one 8-byte DXT1 block into 16 RGBA samples.
func decodeBlockDXT1(block []byte, pix *blockPixels) {
	c0 := binary.LittleEndian.Uint16(block[0:])
	c1 := binary.LittleEndian.Uint16(block[2:])
	bits := binary.LittleEndian.Uint32(block[4:])

	pal := colorPalette(c0, c1)

	for i := 0; i < 16; i++ {
		entry := pal[bits>>(2*uint(i))&0x03]
		copy(pix[i*4:i*4+4], entry[:])
	}
}

// decodeBlockDXT5 decodes one 16-byte DXT5 block into 16 RGBA samples.
// Alpha and color indices are selected independently per pixel: the color
// palette supplies RGB, the alpha palette supplies A.
func decodeBlockDXT5(block []byte, pix *blockPixels) {
	a0, a1 := block[0], block[1]
	var abits uint64
	for i := 0; i < 6; i++ {
		abits |= uint64(block[2+i]) << (8 * uint(i))
	}

	c0 := binary.LittleEndian.Uint16(block[8:])
	c1 := binary.LittleEndian.Uint16(block[10:])
	cbits := binary.LittleEndian.Uint32(block[12:])

	apal := alphaPalette(a0, a1)
	cpal := colorPalette(c0, c1)

	for i := 0; i < 16; i++ {
		entry := cpal[cbits>>(2*uint(i))&0x03]
		pix[i*4] = entry[0]
		pix[i*4+1] = entry[1]
		pix[i*4+2] = entry[2]
		pix[i*4+3] = apal[abits>>(3*uint(i))&0x07]
	}
}

// encodeColorStage picks color endpoints by the luminance range heuristic
// (score 2R+4G+B), quantizes them to 5-6-5, and assigns each pixel the
// nearest palette entry by squared RGB distance, lowest index on ties.
//
// Endpoints are ordered so the packed c0 compares above c1; this keeps the
// block in four-color mode on decode. Index assignment is order free, so
// the swap never changes which palette entry a pixel lands on.
func encodeColorStage(pix *blockPixels) (c0, c1 uint16, bits uint32) {
	minLum, maxLum := 1<<30, -1
	var lo, hi int
	for i := 0; i < 16; i++ {
		lum := 2*int(pix[i*4]) + 4*int(pix[i*4+1]) + int(pix[i*4+2])
		if lum < minLum {
			minLum = lum
			lo = i
		}
		if lum > maxLum {
			maxLum = lum
			hi = i
		}
	}

	c0 = pack565(pix[lo*4], pix[lo*4+1], pix[lo*4+2])
	c1 = pack565(pix[hi*4], pix[hi*4+1], pix[hi*4+2])
	if c0 < c1 {
		c0, c1 = c1, c0
	}

	// Index against the re-expanded quantized endpoints, exactly as decode
	// will reconstruct them.
	pal := colorPalette(c0, c1)

	for i := 0; i < 16; i++ {
		best, bestDist := 0, 1<<30
		for j := 0; j < 4; j++ {
			dr := int(pix[i*4]) - int(pal[j][0])
			dg := int(pix[i*4+1]) - int(pal[j][1])
			db := int(pix[i*4+2]) - int(pal[j][2])
			dist := dr*dr + dg*dg + db*db
			if dist < bestDist {
				bestDist = dist
				best = j
			}
		}
		bits |= uint32(best) << (2 * uint(i))
	}

	return c0, c1, bits
}

// encodeAlphaStage takes the block alpha range as endpoints and assigns each
// pixel the palette entry with minimum absolute difference, lowest index on
// ties.
func encodeAlphaStage(pix *blockPixels) (a0, a1 uint8, bits uint64) {
	a0, a1 = pix[3], pix[3]
	for i := 1; i < 16; i++ {
		a := pix[i*4+3]
		if a < a0 {
			a0 = a
		}
		if a > a1 {
			a1 = a
		}
	}

	pal := alphaPalette(a0, a1)

	for i := 0; i < 16; i++ {
		a := int(pix[i*4+3])
		best, bestDiff := 0, 1<<30
		for j := 0; j < 8; j++ {
			diff := a - int(pal[j])
			if diff < 0 {
				diff = -diff
			}
			if diff < bestDiff {
				bestDiff = diff
				best = j
			}
		}
		bits |= uint64(best) << (3 * uint(i))
	}

	return a0, a1, bits
}

// encodeBlockDXT5 encodes 16 RGBA samples into one 16-byte DXT5 block.
func encodeBlockDXT5(pix *blockPixels, block []byte) {
	a0, a1, abits := encodeAlphaStage(pix)
	block[0] = a0
	block[1] = a1
	for i := 0; i < 6; i++ {
		block[2+i] = byte(abits >> (8 * uint(i)))
	}

	c0, c1, cbits := encodeColorStage(pix)
	binary.LittleEndian.PutUint16(block[8:], c0)
	binary.LittleEndian.PutUint16(block[10:], c1)
	binary.LittleEndian.PutUint32(block[12:], cbits)
}

// encodeBlockDXT1 encodes 16 RGBA samples into one 8-byte DXT1 block.
//
// This reuses the DXT5 color stage with alpha treated as fully opaque; the
// endpoint ordering guarantee means encoded blocks never decode in
// punch-through mode.
func encodeBlockDXT1(pix *blockPixels, block []byte) {
	c0, c1, cbits := encodeColorStage(pix)
	binary.LittleEndian.PutUint16(block[0:], c0)
	binary.LittleEndian.PutUint16(block[2:], c1)
	binary.LittleEndian.PutUint32(block[4:], cbits)
}
