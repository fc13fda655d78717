// Package fontload reads font files from disk and locates installed
// system fonts by name.
package fontload

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/flopp/go-findfont"
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'textsvg.fonts'
func tracer() tracing.Trace {
	return tracing.Select("textsvg.fonts")
}

// ErrNotAFontFile is returned for files that do not carry an OpenType or
// TrueType signature.
var ErrNotAFontFile = errors.New("not an OpenType font file")

// FontFile is the raw content of a font file.
type FontFile struct {
	Path   string // empty for fonts not read from disk
	Binary []byte
}

// Name returns the file name of the font without directory and extension.
func (ff FontFile) Name() string {
	base := filepath.Base(ff.Path)
	return strings.TrimSuffix(base, filepath.Ext(base))
}

// Load reads a font file (TTF or OTF) from disk. It checks the file's
// signature, but does not parse it.
func Load(path string) (FontFile, error) {
	bytez, err := os.ReadFile(path)
	if err != nil {
		return FontFile{}, err
	}
	if !HasFontSignature(bytez) {
		return FontFile{}, fmt.Errorf("%s: %w", path, ErrNotAFontFile)
	}
	tracer().Debugf("read font file %s (%d bytes)", path, len(bytez))
	return FontFile{Path: path, Binary: bytez}, nil
}

// Locate searches the system font directories for a font file.
// name may be a file name with or without extension, e.g. "DejaVuSans" or
// "Arial.ttf".
func Locate(name string) (string, error) {
	if name == "" {
		return "", fmt.Errorf("fontload: empty font name")
	}
	path, err := findfont.Find(name)
	if err != nil {
		return "", fmt.Errorf("fontload: %w", err)
	}
	tracer().Debugf("%s is a system font at %s", name, path)
	return path, nil
}

// LoadSystemFont locates a system font by name and reads it.
func LoadSystemFont(name string) (FontFile, error) {
	path, err := Locate(name)
	if err != nil {
		return FontFile{}, err
	}
	return Load(path)
}

// HasFontSignature checks the first four bytes of font data for one of the
// sfnt version tags.
func HasFontSignature(data []byte) bool {
	if len(data) < 4 {
		return false
	}
	switch string(data[:4]) {
	case "\x00\x01\x00\x00", "OTTO", "true", "typ1":
		return true
	}
	return false
}
