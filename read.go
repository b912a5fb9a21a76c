package tex

import (
	"bufio"
	"encoding/binary"
	"fmt"
	"image"
	"image/color"
	"io"
	"os"

	"github.com/pierrec/lz4/v4"
)

// lz4FrameMagic is the little-endian LZ4 frame magic. It cannot collide
// with a container header, whose first field is a small format tag.
const lz4FrameMagic = 0x184d2204

// ReadOptions configures texture reading.
type ReadOptions struct {
	// Codec configures the block codec (workers, accelerator).
	Codec *Options
}

// maybeLZ4 sniffs r for an LZ4 frame and returns a transparently
// decompressing reader when one is found.
func maybeLZ4(r io.Reader) io.Reader {
	br := bufio.NewReader(r)
	head, err := br.Peek(4)
	if err != nil || binary.LittleEndian.Uint32(head) != lz4FrameMagic {
		return br
	}
	return lz4.NewReader(br)
}

// ReadTexture parses a texture container from r, transparently handling an
// LZ4 frame wrapper around the file.
func ReadTexture(r io.Reader) (*Texture, error) {
	return ParseTexture(maybeLZ4(r))
}

// DecodeImage decodes one mip level of a parsed texture into an image.
func DecodeImage(t *Texture, level int, opts *Options) (*image.NRGBA, error) {
	if level < 0 || level >= len(t.Mips) {
		return nil, fmt.Errorf("%w: %d of %d", ErrMipLevel, level, len(t.Mips))
	}

	mip := t.Mips[level]
	pix, err := DecompressImage(mip.Data, mip.Width, mip.Height, t.Header.Format, opts)
	if err != nil {
		return nil, fmt.Errorf("%w: level %d: %v", ErrDecodeImage, level, err)
	}

	return rgbaToImage(pix, mip.Width, mip.Height), nil
}

// ReadConfig reads texture file configuration without decoding image data.
func ReadConfig(path string) (image.Config, error) {
	f, err := os.Open(path)
	if err != nil {
		return image.Config{}, fmt.Errorf("%w: %q: %v", ErrOpenFile, path, err)
	}
	defer func() { _ = f.Close() }()

	var header Header
	if err := binary.Read(maybeLZ4(f), binary.LittleEndian, &header); err != nil {
		return image.Config{}, fmt.Errorf("%w: %v", ErrHeaderRead, err)
	}
	if err := validateHeader(header); err != nil {
		return image.Config{}, err
	}

	return image.Config{
		Width:      int(header.Width),
		Height:     int(header.Height),
		ColorModel: color.NRGBAModel,
	}, nil
}

// Read reads a texture file and decodes its base level into an image.
func Read(path string) (image.Image, error) {
	return ReadWithOptions(path, nil)
}

// ReadWithOptions reads a texture file with the given options. Nil opts
// uses the reference codec with default workers.
func ReadWithOptions(path string, opts *ReadOptions) (image.Image, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("%w: %q: %v", ErrOpenFile, path, err)
	}
	defer func() { _ = f.Close() }()

	t, err := ReadTexture(f)
	if err != nil {
		return nil, err
	}

	var codecOpts *Options
	if opts != nil {
		codecOpts = opts.Codec
	}

	return DecodeImage(t, 0, codecOpts)
}
