package tex

import (
	"image"

	"github.com/woozymasta/bcn"
)

// Accelerator is an alternative whole-image implementation of the DXT
// codec operations. Output must be byte-compatible with the reference
// codec's format; individual pixel choices may differ within the same
// quantization bounds, since it is a separate encoder.
//
// Resolve an accelerator once and carry it in Options; any error it
// returns makes the caller fall back to the reference codec for that
// operation, it is never surfaced.
type Accelerator interface {
	CompressDXT5(pix []byte, width, height int) ([]byte, error)
	DecompressDXT1(data []byte, width, height int) ([]byte, error)
	DecompressDXT5(data []byte, width, height int) ([]byte, error)
}

// Options configures codec execution.
type Options struct {
	// Workers caps the reference codec goroutines. 0 means GOMAXPROCS.
	Workers int
	// Accelerator, when set, handles whole-image DXT operations in place
	// of the reference codec.
	Accelerator Accelerator
}

func (o *Options) workers() int {
	if o == nil {
		return 0
	}
	return o.Workers
}

func (o *Options) accelerator() Accelerator {
	if o == nil {
		return nil
	}
	return o.Accelerator
}

// BCN returns an Accelerator backed by the bcn codec. workers is passed
// through to bcn; 0 lets bcn pick.
func BCN(workers int) Accelerator {
	return &bcnAccelerator{workers: workers}
}

type bcnAccelerator struct {
	workers int
}

func (a *bcnAccelerator) CompressDXT5(pix []byte, width, height int) ([]byte, error) {
	img := &image.NRGBA{
		Pix:    pix,
		Stride: width * 4,
		Rect:   image.Rect(0, 0, width, height),
	}
	data, _, _, err := bcn.EncodeImageWithOptions(img, bcn.FormatDXT5, &bcn.EncodeOptions{Workers: a.workers})
	if err != nil {
		return nil, err
	}
	return data, nil
}

func (a *bcnAccelerator) DecompressDXT1(data []byte, width, height int) ([]byte, error) {
	return a.decompress(data, width, height, bcn.FormatDXT1)
}

func (a *bcnAccelerator) DecompressDXT5(data []byte, width, height int) ([]byte, error) {
	return a.decompress(data, width, height, bcn.FormatDXT5)
}

func (a *bcnAccelerator) decompress(data []byte, width, height int, format bcn.Format) ([]byte, error) {
	img, err := bcn.DecodeImageWithOptions(data, width, height, format, &bcn.DecodeOptions{Workers: a.workers})
	if err != nil {
		return nil, err
	}
	pix, _, _ := imageToRGBA(img)
	return pix, nil
}
