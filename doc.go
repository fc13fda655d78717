/*
Package textsvg renders text as SVG outline paths.

Given a string and a scalable outline font, textsvg extracts each character's
outline from the font, converts it to portable path drawing commands, lays the
glyphs out on a single line and computes a view box enclosing the whole string.
The result is an [svgdoc.Document] with one path element per visible glyph:

	f, _ := textsvg.LoadOpenTypeFont("GoRegular.ttf")
	doc, err := textsvg.Render(f.Outlines(), "AB")
	...
	doc.WriteTo(os.Stdout)

Coordinates are kept in font design units; there is no scaling to a target
size. Each glyph's path is expressed in its own local coordinates and placed
by a translation to its horizontal offset and the baseline. The baseline is
put at the height of the tallest glyph, and glyphs are separated by a fixed
gap of one eighth of an em. Text is neither shaped nor kerned.

Characters a font cannot display do not make rendering fail. They occupy one
em of horizontal space but produce no path. Clients may check
[svgdoc.Document.IsEmpty] to detect strings without any visible glyph.

Fonts are abstracted by interface otquery.Font. Package otfont provides
implementations on top of three different font parsers. [ScalableFont] reads
outlines with seehuhn.de/go/sfnt, which keeps the implied on-curve points of
TrueType contours at their exact, possibly half-unit, positions.

# Tracing

Every package traces to its own key: 'textsvg' for rendering, 'textsvg.fonts'
for font loading and glyph resolution, 'textsvg.outline', 'textsvg.layout'
and 'textsvg.svg'. See [ConfigureTracing].

# License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © Norbert Pillmayer <norbert@pillmayer.com>
*/
package textsvg

import (
	"github.com/npillmayer/schuko"
	"github.com/npillmayer/schuko/tracing"
	"github.com/npillmayer/schuko/tracing/gologadapter"
	"github.com/npillmayer/schuko/tracing/trace2go"
)

// tracer traces with key 'textsvg'
func tracer() tracing.Trace {
	return tracing.Select("textsvg")
}

// ConfigureTracing routes all tracers of this module to Go's standard
// logger, with trace levels taken from conf. Levels are configured per key
// with a "trace." prefix, e.g. "trace.textsvg.fonts" = "Debug".
func ConfigureTracing(conf schuko.Configuration) error {
	tracing.RegisterTraceAdapter("go", gologadapter.GetAdapter(), false)
	if err := trace2go.ConfigureRoot(conf, "trace", trace2go.ReplaceTracers(true)); err != nil {
		return err
	}
	tracing.SetTraceSelector(trace2go.Selector())
	return nil
}
