package tex

import "testing"

func TestMipCount(t *testing.T) {
	t.Parallel()

	tests := []struct {
		w, h, want int
	}{
		{1, 1, 1},
		{2, 2, 2},
		{4, 4, 3},
		{5, 3, 3},
		{256, 256, 9},
		{256, 1, 9},
		{1024, 512, 11},
	}

	for _, tc := range tests {
		if got := mipCount(tc.w, tc.h); got != tc.want {
			t.Errorf("mipCount(%d, %d) = %d, want %d", tc.w, tc.h, got, tc.want)
		}
	}
}

func TestMipDimension(t *testing.T) {
	t.Parallel()

	tests := []struct {
		base, level, want int
	}{
		{256, 0, 256},
		{256, 3, 32},
		{5, 1, 2},
		{5, 2, 1},
		{1, 5, 1},
	}

	for _, tc := range tests {
		if got := mipDimension(tc.base, tc.level); got != tc.want {
			t.Errorf("mipDimension(%d, %d) = %d, want %d", tc.base, tc.level, got, tc.want)
		}
	}
}

func TestDownsampleAverages(t *testing.T) {
	t.Parallel()

	// 2x2 -> 1x1: plain average with +half rounding.
	pix := []byte{
		10, 0, 0, 255, 20, 0, 0, 255,
		30, 0, 0, 255, 41, 0, 0, 255,
	}
	out, w, h := downsampleRGBA(pix, 2, 2)
	if w != 1 || h != 1 {
		t.Fatalf("downsampled to %dx%d, want 1x1", w, h)
	}
	if out[0] != 25 { // (10+20+30+41+2)/4
		t.Fatalf("red = %d, want 25", out[0])
	}
	if out[3] != 255 {
		t.Fatalf("alpha = %d, want 255", out[3])
	}
}

func TestDownsampleEdgeClamp(t *testing.T) {
	t.Parallel()

	// 3x1 -> 1x1: the missing column and row reuse the edge samples, so
	// the single output is just the first two pixels averaged.
	pix := []byte{
		100, 0, 0, 255, 200, 0, 0, 255, 50, 0, 0, 255,
	}
	out, w, h := downsampleRGBA(pix, 3, 1)
	if w != 1 || h != 1 {
		t.Fatalf("downsampled to %dx%d, want 1x1", w, h)
	}
	if out[0] != 150 { // (100+200+100+200+2)/4
		t.Fatalf("red = %d, want 150", out[0])
	}
}

func TestDownsampleSolidStaysSolid(t *testing.T) {
	t.Parallel()

	pix := make([]byte, 5*5*4)
	for i := 0; i < 25; i++ {
		pix[i*4], pix[i*4+1], pix[i*4+2], pix[i*4+3] = 200, 100, 50, 255
	}

	w, h := 5, 5
	for w > 1 || h > 1 {
		pix, w, h = downsampleRGBA(pix, w, h)
		for i := 0; i < w*h; i++ {
			if pix[i*4] != 200 || pix[i*4+1] != 100 || pix[i*4+2] != 50 || pix[i*4+3] != 255 {
				t.Fatalf("%dx%d pixel %d = %v, want (200,100,50,255)", w, h, i, pix[i*4:i*4+4])
			}
		}
	}
}
