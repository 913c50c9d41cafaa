// Package imaging is the host side of the filter engine: it loads and
// caches source images, samples pixel colors, and renders filtered copies
// as PNG.
//
// # Coordinate System
//
// Pixel coordinates are 0-based with the origin at the top-left corner:
//   - X increases to the right, Y increases downward
//   - For regions, (x1,y1) is inclusive and (x2,y2) is exclusive
//
// # Pixel Layout
//
// Before filtering, every image is converted to non-premultiplied RGBA
// (*image.NRGBA) so that the engine sees the same R, G, B, A byte layout
// regardless of the source format. Source images are never modified.
//
// # Supported Formats
//
// Decoding: PNG, JPEG, GIF (standard library) and BMP, TIFF, WebP
// (golang.org/x/image). Filtered output is always PNG.
//
// # Thread Safety
//
// ImageCache is safe for concurrent use. FilterImage and SampleColor are
// stateless and may be called concurrently on the same cached image.
package imaging
