/*
Package outline converts glyph outlines into portable path drawing commands.

Font adapters describe a glyph's shape as a flat list of [Segment] values in
font design space, where the y-axis points upward. The segment variants are
[MoveTo], [LineTo], [CubeTo] and [Close]; quadratic TrueType segments are
elevated to cubic ones by the [Builder] before they ever reach a client.

A [Visitor] consumes segments one by one and produces a [Path], i.e. an
ordered list of [Command] values in drawing space, where the y-axis points
downward. Negating y is the only transformation applied: coordinates stay in
the font's unit grid.

	segs := outline.Segments{
		outline.MoveTo{P: vec.Vec2{X: 0, Y: 0}},
		outline.LineTo{P: vec.Vec2{X: 10, Y: 10}},
		outline.Close{},
	}
	fmt.Println(outline.Trace(segs)) // M 0.00 0.00 L 10.00 -10.00 Z

# License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © Norbert Pillmayer <norbert@pillmayer.com>
*/
package outline

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'textsvg.outline'
func tracer() tracing.Trace {
	return tracing.Select("textsvg.outline")
}
