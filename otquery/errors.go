package otquery

import "fmt"

// GlyphError is a structural font error encountered while querying a glyph.
// It wraps the error reported by the font parser, which remains accessible
// through errors.Is and errors.As.
type GlyphError struct {
	Op   string     // the query that failed, e.g. "cmap", "metrics", "outline"
	Rune rune       // the character being resolved
	GID  GlyphIndex // the glyph, if already known
	Err  error      // the font parser's error
}

// Error implements the error interface.
func (e *GlyphError) Error() string {
	if e.GID != NOTDEF {
		return fmt.Sprintf("[%s] %#U (glyph %d): %v", e.Op, e.Rune, e.GID, e.Err)
	}
	return fmt.Sprintf("[%s] %#U: %v", e.Op, e.Rune, e.Err)
}

// Unwrap returns the font parser's error.
func (e *GlyphError) Unwrap() error {
	return e.Err
}
