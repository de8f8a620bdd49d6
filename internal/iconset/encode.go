// © 2026 Ilya Mateyko. All rights reserved.
// Use of this source code is governed by the ISC
// license that can be found in the LICENSE.md file.

package iconset

import (
	"image"
	"image/color"
	"image/png"
	"io"
)

var encoder = &png.Encoder{CompressionLevel: png.BestCompression}

// Encode writes img to w as a PNG. The encoded image always has an alpha
// channel, even if every pixel of img is opaque.
func Encode(w io.Writer, img image.Image) error {
	return encoder.Encode(w, translucent{img})
}

// translucent makes the PNG encoder pick 8-bit RGBA for any image. Without
// it, opaque images lose their alpha channel and grayscale ones are written
// as gray.
type translucent struct{ image.Image }

func (translucent) ColorModel() color.Model { return color.NRGBAModel }
func (translucent) Opaque() bool            { return false }
