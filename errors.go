package tex

import "errors"

var (
	// ErrUnsupportedFormat indicates a format tag outside the known values.
	ErrUnsupportedFormat = errors.New("unsupported texture format")
	// ErrTruncatedData indicates declared mip data exceeds available bytes.
	ErrTruncatedData = errors.New("truncated texture data")
	// ErrCorruptMipChain indicates mip levels inconsistent with the header.
	ErrCorruptMipChain = errors.New("corrupt mip chain")
	// ErrMipSizeMismatch indicates a mip payload size mismatch.
	ErrMipSizeMismatch = errors.New("mip payload size mismatch")
	// ErrEmptyMips indicates missing mip data.
	ErrEmptyMips = errors.New("empty mip levels")
	// ErrSizeOverflow indicates a size or dimension exceeds supported limits.
	ErrSizeOverflow = errors.New("size overflow")
	// ErrInvalidDimensions indicates non-positive image dimensions.
	ErrInvalidDimensions = errors.New("invalid image dimensions")
	// ErrBufferSize indicates a pixel buffer length inconsistent with dimensions.
	ErrBufferSize = errors.New("pixel buffer size mismatch")
	// ErrBlockSize indicates a block payload of unexpected length.
	ErrBlockSize = errors.New("block size mismatch")
	// ErrHeaderRead indicates the container header read failed.
	ErrHeaderRead = errors.New("reading texture header failed")
	// ErrHeaderWrite indicates the container header write failed.
	ErrHeaderWrite = errors.New("writing texture header failed")
	// ErrMipWrite indicates a mip payload write failed.
	ErrMipWrite = errors.New("writing mip payload failed")
	// ErrOpenFile indicates a texture file open failed.
	ErrOpenFile = errors.New("open file failed")
	// ErrCreateFile indicates a texture file creation failed.
	ErrCreateFile = errors.New("create file failed")
	// ErrDecodeImage indicates texture decode into an image failed.
	ErrDecodeImage = errors.New("decode image failed")
	// ErrEncodeImage indicates image encode into a texture failed.
	ErrEncodeImage = errors.New("encode image failed")
	// ErrLZ4Write indicates LZ4 frame compression failed.
	ErrLZ4Write = errors.New("LZ4 frame write failed")
	// ErrMipLevel indicates a mip level index out of range.
	ErrMipLevel = errors.New("mip level out of range")
)
