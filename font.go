package textsvg

import (
	"fmt"

	"golang.org/x/image/font/sfnt"

	"github.com/npillmayer/textsvg/internal/fontload"
	"github.com/npillmayer/textsvg/otfont"
	"github.com/npillmayer/textsvg/otquery"
)

// ScalableFont is an outline font of type TTF or OTF. The font's container
// is parsed by golang.org/x/image/font/sfnt; glyph outlines are read with
// seehuhn.de/go/sfnt, which keeps implied on-curve points of TrueType
// contours at their exact positions.
//
// Please note that Go (Golang) uses the terms "font" and "face" more or less
// in an opposite manner than typesetters do. A scalable font is a variant of a
// typeface with a certain weight, slant, etc., but without a size.
type ScalableFont struct {
	Fontname string
	Filepath string     // file path, empty for fonts parsed from memory
	Binary   []byte     // raw data
	SFNT     *sfnt.Font // the font's container
	outlines otquery.Font
}

// LoadOpenTypeFont loads an OpenType font (TTF or OTF) from a file.
func LoadOpenTypeFont(fontfile string) (*ScalableFont, error) {
	ff, err := fontload.Load(fontfile)
	if err != nil {
		return nil, err
	}
	f, err := ParseOpenTypeFont(ff.Binary)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", fontfile, err)
	}
	f.Filepath = ff.Path
	if f.Fontname == "" {
		f.Fontname = ff.Name()
	}
	return f, nil
}

// FindOpenTypeFont locates an installed system font by name and loads it.
func FindOpenTypeFont(name string) (*ScalableFont, error) {
	path, err := fontload.Locate(name)
	if err != nil {
		return nil, err
	}
	return LoadOpenTypeFont(path)
}

// ParseOpenTypeFont loads an OpenType font (TTF or OTF) from memory.
// The font data must not be modified afterwards.
func ParseOpenTypeFont(fbytes []byte) (f *ScalableFont, err error) {
	f = &ScalableFont{Binary: fbytes}
	if f.SFNT, err = sfnt.Parse(f.Binary); err != nil {
		return nil, err
	}
	if f.outlines, err = otfont.ParseSeehuhn(f.Binary); err != nil {
		tracer().Infof("seehuhn cannot read font, falling back to x/image outlines: %v", err)
		if f.outlines, err = otfont.FromSFNT(f.SFNT); err != nil {
			return nil, err
		}
	}
	if f.Fontname, err = f.SFNT.Name(nil, sfnt.NameIDFull); err == nil {
		tracer().Infof("loaded and parsed SFNT %s", f.Fontname)
	}
	return f, nil
}

// Outlines returns the font as seen by the glyph resolver.
func (f *ScalableFont) Outlines() otquery.Font {
	return f.outlines
}
