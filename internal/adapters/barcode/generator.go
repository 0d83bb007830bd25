// Package barcode renders product barcodes as code128 PNG files.
package barcode

import (
	"fmt"
	"image/png"
	"os"
	"path/filepath"

	"github.com/boombuler/barcode"
	"github.com/boombuler/barcode/code128"
)

type Generator struct {
	dir string
}

// New creates a generator writing PNGs under dir (created if needed).
func New(dir string) (*Generator, error) {
	if err := os.MkdirAll(dir, 0755); err != nil {
		return nil, fmt.Errorf("barcode: create dir %s: %w", dir, err)
	}
	return &Generator{dir: dir}, nil
}

// ImagePath returns the path of the PNG for the given barcode text, rendering
// it on first use and reusing the cached file afterwards.
func (g *Generator) ImagePath(text string) (string, error) {
	path := filepath.Join(g.dir, text+".png")
	if _, err := os.Stat(path); err == nil {
		return path, nil
	}

	code, err := code128.Encode(text)
	if err != nil {
		return "", fmt.Errorf("barcode: encode %q: %w", text, err)
	}
	scaled, err := barcode.Scale(code, 300, 120)
	if err != nil {
		return "", fmt.Errorf("barcode: scale: %w", err)
	}

	f, err := os.Create(path)
	if err != nil {
		return "", fmt.Errorf("barcode: write %s: %w", path, err)
	}
	defer f.Close()
	if err := png.Encode(f, scaled); err != nil {
		os.Remove(path)
		return "", fmt.Errorf("barcode: encode png: %w", err)
	}
	return path, nil
}
