package textsvg

import (
	"errors"

	"golang.org/x/image/font/sfnt"
)

// FamilyName extracts family and subfamily names from a font's `name` table.
//
// Returned values are empty if no matching records exist or if records cannot be
// decoded.
func FamilyName(f *ScalableFont) (family, subfamily string) {
	if f == nil || f.SFNT == nil {
		return
	}
	var buf sfnt.Buffer
	family = fontName(f.SFNT, &buf, sfnt.NameIDTypographicFamily, sfnt.NameIDFamily)
	subfamily = fontName(f.SFNT, &buf, sfnt.NameIDTypographicSubfamily, sfnt.NameIDSubfamily)
	return
}

// fontName returns the first of a list of name records present in a font.
func fontName(f *sfnt.Font, buf *sfnt.Buffer, ids ...sfnt.NameID) string {
	for _, id := range ids {
		name, err := f.Name(buf, id)
		if err == nil && name != "" {
			return name
		}
		if err != nil && !errors.Is(err, sfnt.ErrNotFound) {
			tracer().Debugf("cannot decode name record %d: %v", id, err)
		}
	}
	return ""
}
