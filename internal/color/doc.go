// Package color provides a color value that carries both its RGB and HSL
// representations plus an alpha component.
//
// # Representations
//
// A Color always holds:
//   - RGB: integer channels, conventionally 0-255
//   - HSL: hue, saturation and lightness, each normalized to 0-1
//   - Alpha: opacity in 0-1 (1 = fully opaque)
//
// The two representations are kept consistent: every setter recomputes the
// paired representation before returning. Values outside the conventional
// ranges are not rejected; they propagate through the conversion math and
// are only clamped by consumers that choose to clamp.
//
// # Accepted Formats
//
// Parse understands:
//   - "#RRGGBB" and "#RRGGBBAA" (hex, case-insensitive)
//   - "rgb(r,g,b)" and "rgba(r,g,b,a)" (alpha as a 0-1 decimal)
//
// FromComponents accepts a 3 or 4 element numeric slice.
//
// # Produced Formats
//
//   - HexString: "#rrggbb" when opaque, "rgba(r,g,b,a)" otherwise
//   - HSLString: "hsl(h,s%,l%)" when opaque, "hsla(h,s%,l%,a)" otherwise
//
// # Thread Safety
//
// Color is a small value type. Copies are independent; a single Color must
// not be mutated from multiple goroutines without synchronization.
package color
