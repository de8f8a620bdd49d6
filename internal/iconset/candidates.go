// © 2026 Ilya Mateyko. All rights reserved.
// Use of this source code is governed by the ISC
// license that can be found in the LICENSE.md file.

package iconset

import (
	"errors"
	"io/fs"
	"os"
	"strings"
)

var candidateExts = []string{".jpg", ".jpeg", ".png", ".bmp", ".tiff"}

// Candidates returns names of the files in dir that look like source images,
// sorted by name. It returns no names if dir doesn't exist.
func Candidates(dir string) ([]string, error) {
	entries, err := os.ReadDir(dir)
	if errors.Is(err, fs.ErrNotExist) {
		return nil, nil
	} else if err != nil {
		return nil, err
	}

	var names []string
	for _, e := range entries {
		if isCandidate(e.Name()) {
			names = append(names, e.Name())
		}
	}
	return names, nil
}

func isCandidate(name string) bool {
	name = strings.ToLower(name)
	for _, ext := range candidateExts {
		if strings.HasSuffix(name, ext) {
			return true
		}
	}
	return false
}
