// © 2026 Ilya Mateyko. All rights reserved.
// Use of this source code is governed by the ISC
// license that can be found in the LICENSE.md file.

/*
Package iconset generates the icon assets of a mobile application from a
single source image.

# Pipeline

The source image is decoded, normalized to NRGBA, cropped to a centered square
and then resized to every entry of [Variants]:

	icon.png           1024x1024  main application icon
	adaptive-icon.png  1024x1024  Android adaptive icon foreground
	favicon.png         256x256   web favicon
	splash-icon.png     512x512   splash screen image

Every variant is encoded as a PNG with an alpha channel.
*/
package iconset

import (
	"context"
	"errors"
	"fmt"
	"image"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	// Source image decoders.
	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"

	"go.astrophena.name/base/logger"

	"github.com/nfnt/resize"
	_ "golang.org/x/image/bmp"
	"golang.org/x/image/draw"
	_ "golang.org/x/image/tiff"
	_ "golang.org/x/image/webp"
)

// Possible errors, used in tests.
var (
	errDecode = errors.New("failed to decode source image")
	errEmpty  = errors.New("source image is empty")
)

// Variant is a single generated icon.
type Variant struct {
	// Name is the file name of the variant.
	Name string
	// Kind describes what the variant is used for.
	Kind string
	// Size is the width and height of the variant in pixels.
	Size int
}

func (v Variant) String() string {
	return fmt.Sprintf("%s (%dx%d)", v.Name, v.Size, v.Size)
}

// Variants lists all generated icons in the order they are written.
var Variants = []Variant{
	{Name: "icon.png", Kind: "main", Size: 1024},
	{Name: "adaptive-icon.png", Kind: "adaptive", Size: 1024},
	{Name: "favicon.png", Kind: "favicon", Size: 256},
	{Name: "splash-icon.png", Kind: "splash", Size: 512},
}

// File is a variant written to disk.
type File struct {
	Variant
	// Path is where the variant was written.
	Path string
}

// Result is the outcome of [Generate].
type Result struct {
	// Files contains variants that were written, in order. On failure it
	// holds everything written before the error occurred.
	Files []File
	// Err is the error that stopped generation, if any.
	Err error
}

// OK reports whether all variants were generated.
func (r *Result) OK() bool { return r.Err == nil }

// String returns a message describing the result.
func (r *Result) String() string {
	if r.Err != nil {
		return "Error processing image: " + r.Err.Error()
	}
	var sb strings.Builder
	sb.WriteString("Successfully generated all icon variants!")
	for _, f := range r.Files {
		sb.WriteString("\n   - ")
		sb.WriteString(f.Variant.String())
	}
	return sb.String()
}

// Generate reads the image at src and writes all [Variants] into the dst
// directory, replacing existing files. The dst directory must exist.
//
// Generation stops at the first error. Files written before it are left in
// place and reported in the returned Result.
func Generate(ctx context.Context, src, dst string) *Result {
	res := new(Result)

	img, format, err := Decode(src)
	if err != nil {
		res.Err = err
		return res
	}
	b := img.Bounds()
	if b.Empty() {
		res.Err = fmt.Errorf("%w: %s", errEmpty, src)
		return res
	}

	sq := Square(img)
	logger.Debug(ctx, "cropped source image",
		slog.String("path", src),
		slog.String("format", format),
		slog.Int("width", b.Dx()),
		slog.Int("height", b.Dy()),
		slog.Any("box", CropBox(b.Dx(), b.Dy())),
	)

	for _, v := range Variants {
		path := filepath.Join(dst, v.Name)
		if err := writeVariant(path, sq, v.Size); err != nil {
			res.Err = fmt.Errorf("%s: %w", v.Name, err)
			return res
		}
		res.Files = append(res.Files, File{Variant: v, Path: path})
	}

	return res
}

func writeVariant(path string, img image.Image, size int) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	if err := Encode(f, Resize(img, size)); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}

// Decode opens and decodes the image file at path. It returns the format name
// reported by the decoder.
func Decode(path string) (image.Image, string, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, "", err
	}
	defer f.Close()

	img, format, err := image.Decode(f)
	if err != nil {
		return nil, "", fmt.Errorf("%w %s: %v", errDecode, path, err)
	}
	return img, format, nil
}

// CropBox returns the centered square of an image with the provided width and
// height. The side of the square is the smaller of both dimensions.
func CropBox(w, h int) image.Rectangle {
	size := min(w, h)
	left := (w - size) / 2
	top := (h - size) / 2
	return image.Rect(left, top, left+size, top+size)
}

// Square copies the centered square of img into a new NRGBA image with the
// origin at (0, 0). Pixels of images without an alpha channel become fully
// opaque.
func Square(img image.Image) *image.NRGBA {
	b := img.Bounds()
	box := CropBox(b.Dx(), b.Dy()).Add(b.Min)
	dst := image.NewNRGBA(image.Rect(0, 0, box.Dx(), box.Dy()))
	draw.Draw(dst, dst.Bounds(), img, box.Min, draw.Src)
	return dst
}

// Resize scales img to a size×size square using the Lanczos3 filter.
func Resize(img image.Image, size int) image.Image {
	return resize.Resize(uint(size), uint(size), img, resize.Lanczos3)
}
