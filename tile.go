package tex

import (
	"fmt"
	"runtime"
	"sync"
	"sync/atomic"
)

// parallelThreshold is the block count below which the grid is processed
// sequentially; tiny images are faster without goroutine overhead.
const parallelThreshold = 64

// tileGrid returns the block grid dimensions covering a width x height
// image with blocks of edge length dim.
func tileGrid(width, height, dim int) (blocksW, blocksH int) {
	return (width + dim - 1) / dim, (height + dim - 1) / dim
}

// extractBlock gathers a dim x dim tile anchored at (x0, y0) from a tightly
// packed RGBA buffer. Pixels outside the image read as transparent black;
// the source buffer is never indexed out of bounds.
func extractBlock(pix []byte, width, height, x0, y0, dim int, blk *blockPixels) {
	for py := 0; py < dim; py++ {
		for px := 0; px < dim; px++ {
			i := (py*dim + px) * 4
			x, y := x0+px, y0+py
			if x < width && y < height {
				src := (y*width + x) * 4
				copy(blk[i:i+4], pix[src:src+4])
			} else {
				blk[i] = 0
				blk[i+1] = 0
				blk[i+2] = 0
				blk[i+3] = 0
			}
		}
	}
}

// scatterBlock writes a decoded dim x dim tile anchored at (x0, y0) into a
// tightly packed RGBA buffer, skipping pixels outside the image.
func scatterBlock(blk *blockPixels, pix []byte, width, height, x0, y0, dim int) {
	for py := 0; py < dim; py++ {
		for px := 0; px < dim; px++ {
			x, y := x0+px, y0+py
			if x >= width || y >= height {
				continue
			}
			i := (py*dim + px) * 4
			dst := (y*width + x) * 4
			copy(pix[dst:dst+4], blk[i:i+4])
		}
	}
}

// workerCount resolves the goroutine count for a grid of totalBlocks.
func workerCount(workers, totalBlocks int) int {
	if workers <= 0 {
		workers = runtime.GOMAXPROCS(0)
	}
	if workers < 1 {
		workers = 1
	}
	if workers > totalBlocks {
		workers = totalBlocks
	}
	return workers
}

// forEachBlock runs fn over every block index of a blocksW x blocksH grid.
// Each index is processed exactly once and fn must only touch the byte
// ranges derived from its index, so no synchronization beyond the final
// join is needed.
func forEachBlock(blocksW, blocksH, workers int, fn func(idx, bx, by int)) {
	total := blocksW * blocksH
	workers = workerCount(workers, total)

	if workers == 1 || total < parallelThreshold {
		for idx := 0; idx < total; idx++ {
			fn(idx, idx%blocksW, idx/blocksW)
		}
		return
	}

	var next uint32
	var wg sync.WaitGroup
	wg.Add(workers)
	for w := 0; w < workers; w++ {
		go func() {
			defer wg.Done()
			for {
				idx := int(atomic.AddUint32(&next, 1) - 1)
				if idx >= total {
					return
				}
				fn(idx, idx%blocksW, idx/blocksW)
			}
		}()
	}
	wg.Wait()
}

// decodeBlocks decodes a full mip payload into a tightly packed RGBA buffer
// using the reference block codec.
func decodeBlocks(data []byte, width, height int, c *codec, workers int) []byte {
	out := make([]byte, width*height*4)
	if c.dim == 1 {
		copy(out, data)
		return out
	}

	blocksW, blocksH := tileGrid(width, height, c.dim)
	forEachBlock(blocksW, blocksH, workers, func(idx, bx, by int) {
		var blk blockPixels
		c.decode(data[idx*c.size:idx*c.size+c.size], &blk)
		scatterBlock(&blk, out, width, height, bx*c.dim, by*c.dim, c.dim)
	})

	return out
}

// encodeBlocks encodes a tightly packed RGBA buffer into a full mip payload
// using the reference block codec.
func encodeBlocks(pix []byte, width, height int, c *codec, workers int) []byte {
	if c.dim == 1 {
		out := make([]byte, len(pix))
		copy(out, pix)
		return out
	}

	blocksW, blocksH := tileGrid(width, height, c.dim)
	out := make([]byte, blocksW*blocksH*c.size)
	forEachBlock(blocksW, blocksH, workers, func(idx, bx, by int) {
		var blk blockPixels
		extractBlock(pix, width, height, bx*c.dim, by*c.dim, c.dim, &blk)
		c.encode(&blk, out[idx*c.size:idx*c.size+c.size])
	})

	return out
}

// DecompressImage decodes one mip payload into a tightly packed RGBA
// buffer. An accelerator from opts handles DXT payloads when present; any
// accelerator failure falls back silently to the reference codec.
func DecompressImage(data []byte, width, height int, format Format, opts *Options) ([]byte, error) {
	c, err := selectCodec(format)
	if err != nil {
		return nil, err
	}
	if width <= 0 || height <= 0 {
		return nil, fmt.Errorf("%w: %dx%d", ErrInvalidDimensions, width, height)
	}
	if expected := payloadSize(format, width, height); len(data) != expected {
		return nil, fmt.Errorf("%w: expected %d, got %d", ErrBlockSize, expected, len(data))
	}

	if acc := opts.accelerator(); acc != nil {
		var out []byte
		var accErr error
		switch format {
		case FormatDXT1:
			out, accErr = acc.DecompressDXT1(data, width, height)
		case FormatDXT5:
			out, accErr = acc.DecompressDXT5(data, width, height)
		default:
			accErr = ErrUnsupportedFormat
		}
		if accErr == nil && len(out) == width*height*4 {
			return out, nil
		}
	}

	return decodeBlocks(data, width, height, c, opts.workers()), nil
}

// CompressImage encodes a tightly packed RGBA buffer into one mip payload.
// An accelerator from opts handles DXT5 when present; any accelerator
// failure falls back silently to the reference codec.
func CompressImage(pix []byte, width, height int, format Format, opts *Options) ([]byte, error) {
	c, err := selectCodec(format)
	if err != nil {
		return nil, err
	}
	if width <= 0 || height <= 0 {
		return nil, fmt.Errorf("%w: %dx%d", ErrInvalidDimensions, width, height)
	}
	if len(pix) != width*height*4 {
		return nil, fmt.Errorf("%w: expected %d, got %d", ErrBufferSize, width*height*4, len(pix))
	}

	if acc := opts.accelerator(); format == FormatDXT5 && acc != nil {
		if out, accErr := acc.CompressDXT5(pix, width, height); accErr == nil &&
			len(out) == payloadSize(format, width, height) {
			return out, nil
		}
	}

	return encodeBlocks(pix, width, height, c, opts.workers()), nil
}
