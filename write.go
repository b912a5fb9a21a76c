package tex

import (
	"fmt"
	"image"
	"io"
	"os"

	"github.com/pierrec/lz4/v4"
)

// WriteOptions configures texture writing.
type WriteOptions struct {
	// MaxMipMaps limits the generated mip chain. 0 means full chain.
	MaxMipMaps int
	// LZ4 wraps the written file in an LZ4 frame for storage at rest.
	// The container bytes inside the frame are unchanged.
	LZ4 bool
	// Codec configures the block codec (workers, accelerator).
	Codec *Options
}

// EncodeImage compresses an image into a texture with a generated mip
// chain. Levels below the base are synthesized with a 2x2 box downsample.
func EncodeImage(img image.Image, format Format, opts *WriteOptions) (*Texture, error) {
	pix, width, height := imageToRGBA(img)
	if width <= 0 || height <= 0 {
		return nil, fmt.Errorf("%w: %dx%d", ErrInvalidDimensions, width, height)
	}

	count := mipCount(width, height)
	if opts != nil && opts.MaxMipMaps > 0 && opts.MaxMipMaps < count {
		count = opts.MaxMipMaps
	}

	var codecOpts *Options
	if opts != nil {
		codecOpts = opts.Codec
	}

	mips := make([][]byte, count)
	levelPix, w, h := pix, width, height
	for i := 0; i < count; i++ {
		if i > 0 {
			levelPix, w, h = downsampleRGBA(levelPix, w, h)
		}
		data, err := CompressImage(levelPix, w, h, format, codecOpts)
		if err != nil {
			return nil, fmt.Errorf("%w: level %d: %v", ErrEncodeImage, i, err)
		}
		mips[i] = data
	}

	return NewTexture(format, width, height, mips)
}

// Write writes an image as a DXT5 texture file with a full mip chain.
func Write(img image.Image, path string) error {
	return WriteWithOptions(img, path, FormatDXT5, nil)
}

// WriteWithOptions writes an image as a texture file in the requested
// format. Nil opts means full mip chain, no LZ4 frame, reference codec.
func WriteWithOptions(img image.Image, path string, format Format, opts *WriteOptions) error {
	t, err := EncodeImage(img, format, opts)
	if err != nil {
		return err
	}

	return WriteTexture(t, path, opts != nil && opts.LZ4)
}

// WriteTexture serializes a texture to a file, optionally wrapped in an
// LZ4 frame.
func WriteTexture(t *Texture, path string, compress bool) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("%w: %q: %v", ErrCreateFile, path, err)
	}
	defer func() { _ = f.Close() }()

	var w io.Writer = f
	var zw *lz4.Writer
	if compress {
		zw = lz4.NewWriter(f)
		w = zw
	}

	if err := t.Encode(w); err != nil {
		return err
	}

	if zw != nil {
		if err := zw.Close(); err != nil {
			return fmt.Errorf("%w: %v", ErrLZ4Write, err)
		}
	}

	return nil
}
