// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/tex

package tex

import (
	"image"
	"image/draw"
)

const maxUint32 = uint64(^uint32(0))

// u32FromInt converts an int to a uint32.
func u32FromInt(n int) (uint32, error) {
	if n < 0 || uint64(n) > maxUint32 {
		return 0, ErrSizeOverflow
	}

	// #nosec G115 -- bounds checked above.
	return uint32(n), nil
}

// imageToRGBA flattens any image into a tightly packed, non-premultiplied
// RGBA buffer in R,G,B,A byte order.
func imageToRGBA(img image.Image) ([]byte, int, int) {
	bounds := img.Bounds()
	width, height := bounds.Dx(), bounds.Dy()

	if n, ok := img.(*image.NRGBA); ok && n.Stride == width*4 && bounds.Min == (image.Point{}) {
		pix := make([]byte, len(n.Pix))
		copy(pix, n.Pix)
		return pix, width, height
	}

	dst := image.NewNRGBA(image.Rect(0, 0, width, height))
	draw.Draw(dst, dst.Bounds(), img, bounds.Min, draw.Src)
	return dst.Pix, width, height
}

// rgbaToImage wraps a tightly packed RGBA buffer as an image without
// copying.
func rgbaToImage(pix []byte, width, height int) *image.NRGBA {
	return &image.NRGBA{
		Pix:    pix,
		Stride: width * 4,
		Rect:   image.Rect(0, 0, width, height),
	}
}
