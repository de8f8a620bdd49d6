// © 2026 Ilya Mateyko. All rights reserved.
// Use of this source code is governed by the ISC
// license that can be found in the LICENSE.md file.

/*
Process-icon generates the app icons from a single source image.

# Usage

	$ go tool process-icon <source_image_name>

For example:

	$ go tool process-icon my_icon.jpg

The source image is looked up in the "assets" directory of the current
working directory. It is cropped to a centered square and resized to the
following PNG files, written to the same "assets" directory:

	icon.png           1024x1024
	adaptive-icon.png  1024x1024
	favicon.png         256x256
	splash-icon.png     512x512

Existing files with these names are replaced. JPEG, PNG, GIF, BMP, TIFF and
WebP source images are supported.

If the source image doesn't exist, process-icon lists the images available in
the "assets" directory.
*/
package main

import (
	_ "embed"

	"go.astrophena.name/base/cli"
)

//go:embed doc.go
var doc []byte

func init() { cli.SetDocComment(doc) }
