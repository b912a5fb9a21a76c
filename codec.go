package tex

import "fmt"

// codec bundles the per-block operations for one format.
type codec struct {
	format Format
	dim    int // block edge length in pixels
	size   int // encoded bytes per block
	decode func(block []byte, pix *blockPixels)
	encode func(pix *blockPixels, block []byte)
}

// selectCodec maps a format tag to its block codec. Unknown tags fail;
// callers must not guess a default.
func selectCodec(format Format) (*codec, error) {
	switch format {
	case FormatDXT1:
		return &codec{
			format: format,
			dim:    4,
			size:   8,
			decode: decodeBlockDXT1,
			encode: encodeBlockDXT1,
		}, nil
	case FormatDXT5:
		return &codec{
			format: format,
			dim:    4,
			size:   16,
			decode: decodeBlockDXT5,
			encode: encodeBlockDXT5,
		}, nil
	case FormatRGBA8:
		// Passthrough: a 1x1 "block" is one pixel, copied verbatim.
		return &codec{
			format: format,
			dim:    1,
			size:   4,
			decode: func(block []byte, pix *blockPixels) {
				copy(pix[:4], block[:4])
			},
			encode: func(pix *blockPixels, block []byte) {
				copy(block[:4], pix[:4])
			},
		}, nil
	default:
		return nil, fmt.Errorf("%w: tag %d", ErrUnsupportedFormat, uint32(format))
	}
}
