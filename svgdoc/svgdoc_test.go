package svgdoc

import (
	"bytes"
	"encoding/xml"
	"strings"
	"testing"

	"github.com/npillmayer/schuko/tracing/gotestingadapter"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"seehuhn.de/go/geom/matrix"
)

func TestFormatTransform(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "textsvg.svg")
	defer teardown()
	//
	cases := []struct {
		m    matrix.Matrix
		attr string
	}{
		{matrix.Identity, ""},
		{matrix.Matrix{}, ""},
		{matrix.Translate(0, 700), "translate(0, 700)"},
		{matrix.Translate(725, 700), "translate(725, 700)"},
		{matrix.Translate(12.5, -3), "translate(12.5, -3)"},
		{matrix.Matrix{2, 0, 0, 2, 10, 20}, "matrix(2, 0, 0, 2, 10, 20)"},
	}
	for _, c := range cases {
		assert.Equal(t, c.attr, FormatTransform(c.m), "transform for %v", c.m)
	}
}

func TestViewBox(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "textsvg.svg")
	defer teardown()
	//
	doc := New("title-svg").SetViewBox(ViewBox{Width: 1275, Height: 825})
	vb, ok := doc.ViewBox()
	require.True(t, ok)
	assert.Equal(t, "0 0 1275 825", vb.String())
	doc.SetViewBox(ViewBox{Width: 0, Height: 125})
	_, ok = doc.ViewBox()
	assert.False(t, ok, "empty view box must not be stored")
}

func TestIsEmpty(t *testing.T) {
	var nilDoc *Document
	assert.True(t, nilDoc.IsEmpty())
	doc := New("")
	assert.True(t, doc.IsEmpty())
	doc.AddPath("", matrix.Identity)
	assert.True(t, doc.IsEmpty(), "empty path data must be ignored")
	doc.AddPath("M 0.00 0.00 L 1.00 0.00 Z", matrix.Identity)
	assert.False(t, doc.IsEmpty())
}

func TestWriteTo(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "textsvg.svg")
	defer teardown()
	//
	doc := New("title-svg").SetViewBox(ViewBox{Width: 1275, Height: 825})
	doc.AddPath("M 0.00 0.00 L 10.00 0.00 Z", matrix.Translate(0, 700))
	doc.AddPath("M 5.00 -5.00 Z", matrix.Translate(725, 700))
	var buf bytes.Buffer
	n, err := doc.WriteTo(&buf)
	require.NoError(t, err)
	assert.Equal(t, int64(buf.Len()), n, "byte count must match output")
	out := buf.String()
	t.Logf("\n%s", out)
	assert.True(t, strings.HasPrefix(out, xml.Header))
	assert.Contains(t, out, `xmlns="http://www.w3.org/2000/svg"`)
	assert.Contains(t, out, `class="title-svg"`)
	assert.Contains(t, out, `viewBox="0 0 1275 825"`)
	assert.Contains(t, out, `d="M 0.00 0.00 L 10.00 0.00 Z" transform="translate(0, 700)"`)
	assert.Contains(t, out, `transform="translate(725, 700)"`)
	assert.Equal(t, 2, strings.Count(out, "<path "))
	//
	// output must be well-formed and round-trip through a decoder
	var parsed svgElement
	require.NoError(t, xml.Unmarshal(buf.Bytes(), &parsed))
	assert.Equal(t, "title-svg", parsed.Class)
	require.Len(t, parsed.Paths, 2)
	assert.Equal(t, "M 5.00 -5.00 Z", parsed.Paths[1].D)
}

func TestWriteEmptyDocument(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "textsvg.svg")
	defer teardown()
	//
	out, err := New("title-svg").Markup()
	require.NoError(t, err)
	assert.NotContains(t, out, "viewBox")
	assert.NotContains(t, out, "<path")
	assert.Contains(t, out, "<svg ")
}
