package tex

import (
	"encoding/binary"
	"fmt"
	"io"
)

// HeaderSize is the fixed container header length in bytes.
const HeaderSize = 20

// Header is the fixed .tex container header: five little-endian uint32
// fields, no magic, no padding.
type Header struct {
	Format   Format
	Width    uint32
	Height   uint32
	MipCount uint32
	Reserved uint32
}

// MipLevel is one resolution level of a texture. Index 0 is the base
// resolution; Data holds exactly the format's payload for Width x Height.
type MipLevel struct {
	Index  int
	Width  int
	Height int
	Data   []byte
}

// Texture is a parsed container: header plus mip levels ordered by
// increasing index, level 0 first. Textures are not mutated after
// construction.
type Texture struct {
	Header Header
	Mips   []MipLevel
}

// validateHeader checks header invariants shared by parse and construct.
func validateHeader(h Header) error {
	if !h.Format.Valid() {
		return fmt.Errorf("%w: tag %d", ErrUnsupportedFormat, uint32(h.Format))
	}
	if h.Width == 0 || h.Height == 0 {
		return fmt.Errorf("%w: %dx%d base dimensions", ErrCorruptMipChain, h.Width, h.Height)
	}
	if h.MipCount == 0 {
		return fmt.Errorf("%w: zero mip count", ErrCorruptMipChain)
	}
	if full := mipCount(int(h.Width), int(h.Height)); h.MipCount > uint32(full) {
		return fmt.Errorf("%w: %d levels exceed full chain of %d for %dx%d",
			ErrCorruptMipChain, h.MipCount, full, h.Width, h.Height)
	}
	return nil
}

// NewTexture builds a texture from per-level payloads ordered largest
// first, validating each payload length against the format.
func NewTexture(format Format, width, height int, mips [][]byte) (*Texture, error) {
	if len(mips) == 0 {
		return nil, ErrEmptyMips
	}

	w32, err := u32FromInt(width)
	if err != nil {
		return nil, err
	}
	h32, err := u32FromInt(height)
	if err != nil {
		return nil, err
	}
	mip32, err := u32FromInt(len(mips))
	if err != nil {
		return nil, err
	}

	header := Header{
		Format:   format,
		Width:    w32,
		Height:   h32,
		MipCount: mip32,
	}
	if err := validateHeader(header); err != nil {
		return nil, err
	}

	t := &Texture{Header: header, Mips: make([]MipLevel, len(mips))}
	for i, data := range mips {
		mipW := mipDimension(width, i)
		mipH := mipDimension(height, i)
		if expected := payloadSize(format, mipW, mipH); len(data) != expected {
			return nil, fmt.Errorf("%w: level %d: expected %d, got %d",
				ErrMipSizeMismatch, i, expected, len(data))
		}
		t.Mips[i] = MipLevel{Index: i, Width: mipW, Height: mipH, Data: data}
	}

	return t, nil
}

// ParseTexture parses a container from r. The format tag is validated
// before any payload bytes are read; payload lengths are derived from the
// header, so a short source fails with ErrTruncatedData.
func ParseTexture(r io.Reader) (*Texture, error) {
	var header Header
	if err := binary.Read(r, binary.LittleEndian, &header); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrHeaderRead, err)
	}
	if err := validateHeader(header); err != nil {
		return nil, err
	}

	t := &Texture{Header: header, Mips: make([]MipLevel, header.MipCount)}
	for i := 0; i < int(header.MipCount); i++ {
		mipW := mipDimension(int(header.Width), i)
		mipH := mipDimension(int(header.Height), i)
		size := payloadSize(header.Format, mipW, mipH)

		data := make([]byte, size)
		if _, err := io.ReadFull(r, data); err != nil {
			return nil, fmt.Errorf("%w: level %d needs %d bytes: %v",
				ErrTruncatedData, i, size, err)
		}
		t.Mips[i] = MipLevel{Index: i, Width: mipW, Height: mipH, Data: data}
	}

	return t, nil
}

// Encode serializes the texture: header, then each level payload in index
// order with no padding or length prefixes. The container itself is never
// compressed.
func (t *Texture) Encode(w io.Writer) error {
	if err := validateHeader(t.Header); err != nil {
		return err
	}
	if len(t.Mips) != int(t.Header.MipCount) {
		return fmt.Errorf("%w: header declares %d levels, texture holds %d",
			ErrCorruptMipChain, t.Header.MipCount, len(t.Mips))
	}

	if err := binary.Write(w, binary.LittleEndian, t.Header); err != nil {
		return fmt.Errorf("%w: %v", ErrHeaderWrite, err)
	}

	for i, mip := range t.Mips {
		expected := payloadSize(t.Header.Format, mip.Width, mip.Height)
		if len(mip.Data) != expected {
			return fmt.Errorf("%w: level %d: expected %d, got %d",
				ErrMipSizeMismatch, i, expected, len(mip.Data))
		}
		if _, err := w.Write(mip.Data); err != nil {
			return fmt.Errorf("%w: level %d: %v", ErrMipWrite, i, err)
		}
	}

	return nil
}
