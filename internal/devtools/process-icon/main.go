// © 2026 Ilya Mateyko. All rights reserved.
// Use of this source code is governed by the ISC
// license that can be found in the LICENSE.md file.

package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"go.astrophena.name/appicons/internal/iconset"
	"go.astrophena.name/base/cli"
)

func main() { cli.Main(cli.AppFunc(run)) }

const assetsDir = "assets"

var errSourceNotFound = errors.New("source image not found")

const usage = `Usage: go tool process-icon <source_image_name>
Example: go tool process-icon my_icon.jpg
`

const nextSteps = `
Next steps:
1. Clean the old icon files if needed
2. Rebuild your app: npm run android
3. The new icons will be applied!
`

func run(ctx context.Context) error {
	env := cli.GetEnv(ctx)
	if len(env.Args) != 1 {
		fmt.Fprint(env.Stderr, usage)
		return fmt.Errorf("%w: want exactly one source image name, got %d arguments", cli.ErrInvalidArgs, len(env.Args))
	}
	name := env.Args[0]
	src := filepath.Join(assetsDir, name)

	if _, err := os.Stat(src); errors.Is(err, os.ErrNotExist) {
		if err := listCandidates(env.Stdout, src); err != nil {
			return err
		}
		return fmt.Errorf("%w: %s", errSourceNotFound, src)
	}

	fmt.Fprintf(env.Stdout, "Processing icon: %s\n", name)
	res := iconset.Generate(ctx, src, assetsDir)
	if !res.OK() {
		// Reported once, by cli.Main.
		return fmt.Errorf("processing image: %w", res.Err)
	}
	fmt.Fprintln(env.Stdout, res)
	fmt.Fprint(env.Stdout, nextSteps)

	return nil
}

func listCandidates(w io.Writer, src string) error {
	fmt.Fprintf(w, "Source image not found: %s\n", src)
	fmt.Fprintf(w, "Available files in %s:\n", assetsDir)
	names, err := iconset.Candidates(assetsDir)
	if err != nil {
		return err
	}
	for _, name := range names {
		fmt.Fprintf(w, "   - %s\n", name)
	}
	return nil
}
