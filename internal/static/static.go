// Package static embeds static files into the binary and copies them to the
// filesystem
package static

import (
	"embed"
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/ayoisaiah/focusquest/internal/osutil"
)

const (
	filesDir = "files"
	iconFile = "icon.svg"
)

//go:embed files/*
var embeddedFiles embed.FS

// Install copies the embedded files into dir, leaving existing files alone,
// and returns the path of the notification icon.
func Install(dir string) (string, error) {
	err := fs.WalkDir(
		embeddedFiles,
		filesDir,
		func(path string, d fs.DirEntry, err error) error {
			if err != nil {
				return err
			}

			if d.IsDir() {
				return nil
			}

			b, err := embeddedFiles.ReadFile(path)
			if err != nil {
				return err
			}

			// embed.FS paths always use forward slashes
			stripped := strings.TrimPrefix(path, filesDir+"/")

			destPath := filepath.Join(dir, filepath.FromSlash(stripped))

			if _, err := os.Stat(destPath); !errors.Is(err, fs.ErrNotExist) {
				return err
			}

			if err := os.MkdirAll(filepath.Dir(destPath), osutil.DirPermission); err != nil {
				return err
			}

			return os.WriteFile(destPath, b, osutil.FilePermission)
		},
	)
	if err != nil {
		return "", err
	}

	return filepath.Join(dir, iconFile), nil
}
