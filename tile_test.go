package tex

import (
	"bytes"
	"testing"
)

// twoColorRGBA fills a checkerboard of two well separated opaque colors.
func twoColorRGBA(width, height int) []byte {
	pix := make([]byte, width*height*4)
	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			i := (y*width + x) * 4
			if (x+y)%2 == 0 {
				pix[i], pix[i+1], pix[i+2] = 16, 32, 48
			} else {
				pix[i], pix[i+1], pix[i+2] = 240, 200, 160
			}
			pix[i+3] = 255
		}
	}
	return pix
}

func TestTileGrid(t *testing.T) {
	t.Parallel()

	tests := []struct {
		w, h, dim    int
		wantW, wantH int
	}{
		{4, 4, 4, 1, 1},
		{5, 5, 4, 2, 2},
		{1, 1, 4, 1, 1},
		{8, 12, 4, 2, 3},
		{5, 5, 1, 5, 5},
	}

	for _, tc := range tests {
		gw, gh := tileGrid(tc.w, tc.h, tc.dim)
		if gw != tc.wantW || gh != tc.wantH {
			t.Errorf("tileGrid(%d,%d,%d) = %dx%d, want %dx%d",
				tc.w, tc.h, tc.dim, gw, gh, tc.wantW, tc.wantH)
		}
	}
}

func TestExtractBlockPadsTransparentBlack(t *testing.T) {
	t.Parallel()

	pix := twoColorRGBA(5, 5)

	var blk blockPixels
	extractBlock(pix, 5, 5, 4, 4, 4, &blk)

	// Only the top-left sample of this edge block is inside the image.
	i := (4*5 + 4) * 4
	if !bytes.Equal(blk[0:4], pix[i:i+4]) {
		t.Fatalf("in-bounds sample = %v, want %v", blk[0:4], pix[i:i+4])
	}
	for s := 1; s < 16; s++ {
		if blk[s*4] != 0 || blk[s*4+1] != 0 || blk[s*4+2] != 0 || blk[s*4+3] != 0 {
			t.Fatalf("padding sample %d = %v, want transparent black", s, blk[s*4:s*4+4])
		}
	}
}

func TestScatterBlockClipsToBounds(t *testing.T) {
	t.Parallel()

	var blk blockPixels
	for i := range blk {
		blk[i] = 0xaa
	}

	// Exact-size buffer: an out-of-bounds write would panic.
	pix := make([]byte, 5*5*4)
	scatterBlock(&blk, pix, 5, 5, 4, 4, 4)

	for y := 0; y < 5; y++ {
		for x := 0; x < 5; x++ {
			i := (y*5 + x) * 4
			want := byte(0)
			if x == 4 && y == 4 {
				want = 0xaa
			}
			if pix[i] != want {
				t.Fatalf("pixel (%d,%d) = %#02x, want %#02x", x, y, pix[i], want)
			}
		}
	}
}

func TestRoundTrip5x5NoPaddingLeak(t *testing.T) {
	t.Parallel()

	// Solid color: edge blocks still pick up transparent-black padding in
	// their endpoint search, but every real pixel keeps an exact palette
	// match.
	pix := make([]byte, 5*5*4)
	for i := 0; i < 25; i++ {
		pix[i*4], pix[i*4+1], pix[i*4+2], pix[i*4+3] = 200, 100, 50, 255
	}

	data, err := CompressImage(pix, 5, 5, FormatDXT5, nil)
	if err != nil {
		t.Fatalf("CompressImage: %v", err)
	}
	if len(data) != 2*2*16 {
		t.Fatalf("payload size = %d, want %d", len(data), 2*2*16)
	}

	out, err := DecompressImage(data, 5, 5, FormatDXT5, nil)
	if err != nil {
		t.Fatalf("DecompressImage: %v", err)
	}
	if len(out) != 5*5*4 {
		t.Fatalf("decoded size = %d, want %d", len(out), 5*5*4)
	}

	// Padding samples are transparent black; if decode sourced them, some
	// alpha would come back 0. Every real pixel must stay opaque and keep
	// its own quantized color.
	for i := 0; i < 25; i++ {
		if out[i*4+3] != 255 {
			t.Fatalf("pixel %d alpha = %d, want 255", i, out[i*4+3])
		}
		qr, qg, qb := quantize565(pix[i*4], pix[i*4+1], pix[i*4+2])
		if out[i*4] != qr || out[i*4+1] != qg || out[i*4+2] != qb {
			t.Fatalf("pixel %d = %v, want (%d,%d,%d)", i, out[i*4:i*4+3], qr, qg, qb)
		}
	}
}

func TestParallelMatchesSequential(t *testing.T) {
	t.Parallel()

	// 64x64 is 256 blocks, comfortably past the parallel threshold.
	pix := twoColorRGBA(64, 64)

	seq, err := CompressImage(pix, 64, 64, FormatDXT5, &Options{Workers: 1})
	if err != nil {
		t.Fatalf("sequential CompressImage: %v", err)
	}
	par, err := CompressImage(pix, 64, 64, FormatDXT5, &Options{Workers: 8})
	if err != nil {
		t.Fatalf("parallel CompressImage: %v", err)
	}
	if !bytes.Equal(seq, par) {
		t.Fatal("parallel encode differs from sequential")
	}

	seqPix, err := DecompressImage(seq, 64, 64, FormatDXT5, &Options{Workers: 1})
	if err != nil {
		t.Fatalf("sequential DecompressImage: %v", err)
	}
	parPix, err := DecompressImage(seq, 64, 64, FormatDXT5, &Options{Workers: 8})
	if err != nil {
		t.Fatalf("parallel DecompressImage: %v", err)
	}
	if !bytes.Equal(seqPix, parPix) {
		t.Fatal("parallel decode differs from sequential")
	}
}

func TestPassthroughRoundTrip(t *testing.T) {
	t.Parallel()

	pix := twoColorRGBA(5, 3)

	data, err := CompressImage(pix, 5, 3, FormatRGBA8, nil)
	if err != nil {
		t.Fatalf("CompressImage: %v", err)
	}
	if !bytes.Equal(data, pix) {
		t.Fatal("passthrough encode modified pixels")
	}

	out, err := DecompressImage(data, 5, 3, FormatRGBA8, nil)
	if err != nil {
		t.Fatalf("DecompressImage: %v", err)
	}
	if !bytes.Equal(out, pix) {
		t.Fatal("passthrough round trip modified pixels")
	}
}

func TestCompressImageValidation(t *testing.T) {
	t.Parallel()

	if _, err := CompressImage(make([]byte, 16), 2, 2, Format(99), nil); err == nil {
		t.Fatal("expected error for unknown format")
	}
	if _, err := CompressImage(make([]byte, 15), 2, 2, FormatRGBA8, nil); err == nil {
		t.Fatal("expected error for short pixel buffer")
	}
	if _, err := DecompressImage(make([]byte, 7), 4, 4, FormatDXT1, nil); err == nil {
		t.Fatal("expected error for short payload")
	}
	if _, err := DecompressImage(make([]byte, 8), 0, 4, FormatDXT1, nil); err == nil {
		t.Fatal("expected error for zero dimension")
	}
}
