package tex

import "fmt"

// Format identifies the pixel format of a texture payload.
//
// The numeric values are the tags used on disk by the .tex container.
type Format uint32

const (
	// FormatUnknown is not a valid on-disk tag.
	FormatUnknown Format = 0
	// FormatDXT1 is BC1: 4x4 blocks, 8 bytes each, opaque or punch-through alpha.
	FormatDXT1 Format = 10
	// FormatDXT5 is BC3: 4x4 blocks, 16 bytes each, interpolated alpha.
	FormatDXT5 Format = 12
	// FormatRGBA8 is uncompressed 32-bit RGBA, 4 bytes per pixel.
	FormatRGBA8 Format = 20
)

func (f Format) String() string {
	switch f {
	case FormatDXT1:
		return "DXT1"
	case FormatDXT5:
		return "DXT5"
	case FormatRGBA8:
		return "RGBA8"
	default:
		return fmt.Sprintf("UNKNOWN(%d)", uint32(f))
	}
}

// Valid reports whether f is one of the known on-disk tags.
func (f Format) Valid() bool {
	switch f {
	case FormatDXT1, FormatDXT5, FormatRGBA8:
		return true
	default:
		return false
	}
}

// blockDim returns the block edge length in pixels for a format.
// RGBA8 is not block based and is treated as 1x1.
func blockDim(format Format) int {
	switch format {
	case FormatDXT1, FormatDXT5:
		return 4
	default:
		return 1
	}
}

// blockBytes returns the encoded size of one block, or -1 for unknown formats.
func blockBytes(format Format) int {
	switch format {
	case FormatDXT1:
		return 8
	case FormatDXT5:
		return 16
	case FormatRGBA8:
		return 4
	default:
		return -1
	}
}

// payloadSize returns the exact byte length of one mip level payload,
// or -1 for unknown formats.
func payloadSize(format Format, width, height int) int {
	switch format {
	case FormatDXT1, FormatDXT5:
		blocksW := (width + 3) / 4
		blocksH := (height + 3) / 4
		return blocksW * blocksH * blockBytes(format)
	case FormatRGBA8:
		return width * height * 4
	default:
		return -1
	}
}
