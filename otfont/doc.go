/*
Package otfont adapts font parsers to the otquery.Font interface.

Three parsers are supported, each wrapped by its own adapter type:

▪︎ [Seehuhn] wraps seehuhn.de/go/sfnt, which decodes glyf and CFF outlines.
It is the parser behind textsvg.ScalableFont.

▪︎ [GoText] wraps a face of github.com/go-text/typesetting.

▪︎ [SFNT] wraps golang.org/x/image/font/sfnt. x/image places the implied
on-curve points of TrueType contours on whole design units, so curved outlines
may deviate from the font's geometry by up to half a unit. Metrics are exact.

All adapters report metrics in font design units and outlines in font design
space, with the y-axis pointing up. Quadratic outline segments are elevated to
cubic ones, and contours are closed explicitly. Adapters are read-only and safe
for concurrent use.

A font without a usable character map is rejected when the adapter is
constructed.

# License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © Norbert Pillmayer <norbert@pillmayer.com>
*/
package otfont

import (
	"errors"
	"math"

	"github.com/npillmayer/schuko/tracing"
	"golang.org/x/image/font/sfnt"

	"github.com/npillmayer/textsvg/otquery"
)

// tracer traces with key 'textsvg.fonts'
func tracer() tracing.Trace {
	return tracing.Select("textsvg.fonts")
}

// ErrNoCMap is returned for fonts without a usable character map.
var ErrNoCMap = errors.New("font has no usable character map")

// bboxOption turns a box into an optional box. Boxes with zero area are
// reported as absent.
func bboxOption(bbox otquery.BoundingBox) otquery.Option[otquery.BoundingBox] {
	if bbox.IsEmpty() {
		return otquery.None[otquery.BoundingBox]()
	}
	return otquery.Some(bbox)
}

func round(x float64) sfnt.Units {
	return sfnt.Units(math.Round(x))
}
