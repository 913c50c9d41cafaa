// Package filter implements per-pixel channel transforms and the engine
// that applies them across RGBA pixel buffers.
//
// # Transforms
//
// A Transform maps one pixel's four channels (R, G, B, A) to four new
// channel values. Channels are float64 so that values may leave the 0-255
// range, or carry fractions, between chained transforms. Available
// variants:
//   - Grayscale: weighted luminance into R, G and B
//   - Threshold: grayscale followed by per-channel true/false selection
//   - Contrast: scale R, G and B around mid-gray
//   - Invert: 255 minus R, G and B
//   - ChannelSwap: exchange two of R, G and B
//   - Matrix / Sepia: 3x3 matrix over R, G and B
//   - Adjust: add clamped per-channel deltas
//   - HSLAdjust: shift hue, saturation and lightness
//   - Colorize: channel mean into one channel, constants into the others
//
// Every variant, and Chain, first forces alpha to its configured opacity
// (255 unless WithOpacity says otherwise).
//
// # Rounding
//
// Transforms never clamp, except Adjust. When the engine stores a result
// into an 8-bit buffer each channel is rounded half-to-even and saturated
// into 0-255, the same policy as a clamped 8-bit canvas array.
//
// # Thread Safety
//
// Filter values are immutable and safe for concurrent use. Chain may be
// mutated with SetFilters, Add and Clear; those calls must not overlap with
// a buffer application that uses the same Chain.
package filter
