/*
Package svgdoc is a minimal in-memory model of an SVG document consisting of
path elements, together with a writer for SVG 1.1 markup.

A Document is built explicitly and handed around as a value; there is no
package-level drawing state. Path data is stored as pre-formatted strings,
element placement as affine matrices.

# License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © Norbert Pillmayer <norbert@pillmayer.com>
*/
package svgdoc

import (
	"strconv"
	"strings"

	"github.com/npillmayer/schuko/tracing"
	"seehuhn.de/go/geom/matrix"
)

// tracer traces with key 'textsvg.svg'
func tracer() tracing.Trace {
	return tracing.Select("textsvg.svg")
}

// Namespace is the XML namespace of SVG elements.
const Namespace = "http://www.w3.org/2000/svg"

// ViewBox is the user-space rectangle an SVG document's content is mapped to.
type ViewBox struct {
	MinX, MinY    float64
	Width, Height float64
}

// IsEmpty reports whether the box has zero area. SVG renderers disable
// rendering of elements with an empty view box.
func (vb ViewBox) IsEmpty() bool {
	return vb.Width <= 0 || vb.Height <= 0
}

func (vb ViewBox) String() string {
	return strings.Join([]string{
		formatNumber(vb.MinX), formatNumber(vb.MinY),
		formatNumber(vb.Width), formatNumber(vb.Height),
	}, " ")
}

// Path is a path element.
type Path struct {
	D         string        // path data
	Transform matrix.Matrix // placement; the zero value means identity
}

// TransformAttr returns the value of the element's transform attribute, or
// the empty string for identity placement.
func (p Path) TransformAttr() string {
	return FormatTransform(p.Transform)
}

// Document is an SVG document.
type Document struct {
	Class   string   // CSS class of the root element, may be empty
	viewBox *ViewBox // optional
	Paths   []Path
}

// New creates an empty document with a CSS class for its root element.
func New(class string) *Document {
	return &Document{Class: class}
}

// SetViewBox sets the document's view box. Empty boxes are not stored, as
// they would suppress rendering of the whole document.
func (doc *Document) SetViewBox(vb ViewBox) *Document {
	if vb.IsEmpty() {
		tracer().Debugf("omitting empty view box %v", vb)
		doc.viewBox = nil
		return doc
	}
	doc.viewBox = &vb
	return doc
}

// ViewBox returns the document's view box, if one has been set.
func (doc *Document) ViewBox() (ViewBox, bool) {
	if doc.viewBox == nil {
		return ViewBox{}, false
	}
	return *doc.viewBox, true
}

// AddPath appends a path element with path data d, placed by transform m.
// Empty path data is ignored.
func (doc *Document) AddPath(d string, m matrix.Matrix) *Document {
	if d == "" {
		return doc
	}
	doc.Paths = append(doc.Paths, Path{D: d, Transform: m})
	return doc
}

// IsEmpty reports whether the document contains no path elements, i.e. it
// will not render anything visible.
func (doc *Document) IsEmpty() bool {
	return doc == nil || len(doc.Paths) == 0
}

// --- Number formatting -----------------------------------------------------

// FormatTransform formats an affine matrix as an SVG transform attribute
// value. Pure translations are written as "translate(x, y)", everything else
// as "matrix(a, b, c, d, e, f)". Identity (and the zero matrix) yield "".
func FormatTransform(m matrix.Matrix) string {
	if m == (matrix.Matrix{}) || m == matrix.Identity {
		return ""
	}
	if m[0] == 1 && m[1] == 0 && m[2] == 0 && m[3] == 1 {
		return "translate(" + formatNumber(m[4]) + ", " + formatNumber(m[5]) + ")"
	}
	args := make([]string, 6)
	for i, x := range m {
		args[i] = formatNumber(x)
	}
	return "matrix(" + strings.Join(args, ", ") + ")"
}

// formatNumber writes x with the minimal number of digits, without
// exponent and without a negative zero.
func formatNumber(x float64) string {
	if x == 0 {
		return "0"
	}
	return strconv.FormatFloat(x, 'f', -1, 64)
}
