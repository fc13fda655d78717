package svgdoc

import (
	"encoding/xml"
	"fmt"
	"io"
	"strings"
)

type svgElement struct {
	XMLName xml.Name      `xml:"svg"`
	Xmlns   string        `xml:"xmlns,attr"`
	Version string        `xml:"version,attr"`
	Class   string        `xml:"class,attr,omitempty"`
	ViewBox string        `xml:"viewBox,attr,omitempty"`
	Paths   []pathElement `xml:"path"`
}

type pathElement struct {
	D         string `xml:"d,attr"`
	Transform string `xml:"transform,attr,omitempty"`
}

func (doc *Document) element() svgElement {
	root := svgElement{
		Xmlns:   Namespace,
		Version: "1.1",
		Class:   doc.Class,
		Paths:   make([]pathElement, len(doc.Paths)),
	}
	if vb, ok := doc.ViewBox(); ok {
		root.ViewBox = vb.String()
	}
	for i, p := range doc.Paths {
		root.Paths[i] = pathElement{D: p.D, Transform: p.TransformAttr()}
	}
	return root
}

// countingWriter counts bytes for io.WriterTo.
type countingWriter struct {
	w io.Writer
	n int64
}

func (cw *countingWriter) Write(p []byte) (int, error) {
	n, err := cw.w.Write(p)
	cw.n += int64(n)
	return n, err
}

// WriteTo serializes the document as indented SVG markup, preceded by an
// XML declaration. It implements io.WriterTo.
func (doc *Document) WriteTo(w io.Writer) (int64, error) {
	cw := &countingWriter{w: w}
	if _, err := io.WriteString(cw, xml.Header); err != nil {
		return cw.n, err
	}
	enc := xml.NewEncoder(cw)
	enc.Indent("", "  ")
	if err := enc.Encode(doc.element()); err != nil {
		return cw.n, fmt.Errorf("svgdoc: encoding document: %w", err)
	}
	if err := enc.Close(); err != nil {
		return cw.n, err
	}
	_, err := io.WriteString(cw, "\n")
	tracer().Debugf("wrote SVG document with %d paths, %d bytes", len(doc.Paths), cw.n)
	return cw.n, err
}

// Markup returns the serialized document as a string.
func (doc *Document) Markup() (string, error) {
	var sb strings.Builder
	if _, err := doc.WriteTo(&sb); err != nil {
		return "", err
	}
	return sb.String(), nil
}
