/*
Package tex implements the League of Legends .tex texture container and the
DXT1/DXT5 block codecs it stores, plus an uncompressed RGBA8 passthrough.

A texture is a 20-byte little-endian header followed by the mip level
payloads in index order, largest level first, with no padding or length
prefixes. Payload lengths are derived from the header: compressed formats
store ceil(w/4)*ceil(h/4) fixed-size blocks per level, RGBA8 stores
w*h*4 bytes.

The package focuses on practical workflows: read a .tex (optionally wrapped
in an LZ4 frame at rest) into an image.Image, and write an image out with a
generated mip chain. Block compression runs in parallel across the tile
grid and can be delegated to the bcn codec as an accelerated path.
*/
package tex
