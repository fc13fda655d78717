package textsvg

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"golang.org/x/text/unicode/norm"
	"seehuhn.de/go/geom/matrix"

	"github.com/npillmayer/textsvg/layout"
	"github.com/npillmayer/textsvg/otquery"
	"github.com/npillmayer/textsvg/outline"
	"github.com/npillmayer/textsvg/svgdoc"
)

// Renderer renders strings with a single font.
//
// A Renderer holds no mutable state. [Renderer.RenderBatch] renders from
// several goroutines and traces only after all of them have finished, so it
// works with tracers which are not goroutine-safe. Calling Render
// concurrently requires a goroutine-safe tracer for key 'textsvg' and a font
// which is safe for concurrent use (all fonts of package otfont are).
type Renderer struct {
	font otquery.Font
	opts Options
}

// NewRenderer creates a renderer for font f.
func NewRenderer(f otquery.Font, opts ...Option) *Renderer {
	r := &Renderer{font: f, opts: DefaultOptions()}
	for _, opt := range opts {
		opt(&r.opts)
	}
	return r
}

// Render is a convenience function for rendering a single string.
func Render(f otquery.Font, text string, opts ...Option) (*svgdoc.Document, error) {
	return NewRenderer(f, opts...).Render(text)
}

// Options returns the renderer's effective options.
func (r *Renderer) Options() Options {
	return r.opts
}

// Layout resolves every character of text and computes the placement of
// the resulting glyphs. The font is queried exactly once per character.
func (r *Renderer) Layout(text string) (layout.StringLayout, error) {
	if r.font == nil {
		return layout.StringLayout{}, errors.New("textsvg: renderer has no font")
	}
	if r.opts.Normalize {
		text = norm.NFC.String(text)
	}
	glyphs, err := otquery.ResolveString(r.font, text)
	if err != nil {
		return layout.StringLayout{}, err
	}
	return layout.Compute(r.font.UnitsPerEm(), glyphs), nil
}

// Render renders text as an SVG document with one path element per visible
// glyph, in input order.
//
// Each path is placed by a translation to its glyph's horizontal offset and
// the baseline. The document's view box encloses the whole string; it is
// omitted for strings of zero width, e.g. the empty string.
//
// Characters the font cannot display do not cause an error. An error is
// returned only if the font data is malformed.
func (r *Renderer) Render(text string) (*svgdoc.Document, error) {
	doc, n, err := r.render(text)
	if err != nil {
		return nil, err
	}
	tracer().Debugf("rendered %d characters as %d paths", n, len(doc.Paths))
	return doc, nil
}

// render does the work of Render without tracing to key 'textsvg'. It returns
// the number of characters laid out.
func (r *Renderer) render(text string) (*svgdoc.Document, int, error) {
	l, err := r.Layout(text)
	if err != nil {
		return nil, 0, err
	}
	doc := svgdoc.New(r.opts.Class)
	x, y, w, h := l.ViewBox()
	doc.SetViewBox(svgdoc.ViewBox{
		MinX: float64(x), MinY: float64(y),
		Width: float64(w), Height: float64(h),
	})
	var v outline.Visitor
	for _, c := range l.Chars {
		if !c.Glyph.HasOutline() {
			continue
		}
		v.Reset()
		for _, seg := range c.Glyph.Outline {
			v.Visit(seg)
		}
		path := v.Path()
		if path.IsEmpty() {
			continue
		}
		doc.AddPath(path.Format(r.opts.Precision),
			matrix.Translate(float64(c.Offset), float64(l.Baseline)))
	}
	return doc, l.Len(), nil
}

// RenderBatch renders a list of strings concurrently. Documents are returned
// in input order. At most Options.Workers strings are rendered at a time.
//
// Failing items leave a nil document; their errors are joined. If ctx is
// cancelled, items not yet started are skipped and the context's error is
// returned.
//
// Workers do not trace to key 'textsvg'; failures are traced once all
// workers are done. Keys 'textsvg.fonts' and 'textsvg.layout' should be set
// to level Error while a batch runs, unless their tracers are goroutine-safe.
func (r *Renderer) RenderBatch(ctx context.Context, texts []string) ([]*svgdoc.Document, error) {
	docs := make([]*svgdoc.Document, len(texts))
	errs := make([]error, len(texts))
	jobs := make(chan int)
	var wg sync.WaitGroup
	for range max(1, min(r.opts.Workers, len(texts))) {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for i := range jobs {
				if err := ctx.Err(); err != nil {
					errs[i] = err
					continue
				}
				docs[i], _, errs[i] = r.render(texts[i])
			}
		}()
	}
feed:
	for i := range texts {
		select {
		case jobs <- i:
		case <-ctx.Done():
			for j := i; j < len(texts); j++ {
				errs[j] = ctx.Err()
			}
			break feed
		}
	}
	close(jobs)
	wg.Wait()
	if err := ctx.Err(); err != nil {
		tracer().Infof("batch of %d texts interrupted: %v", len(texts), err)
		return docs, fmt.Errorf("textsvg: batch interrupted: %w", err)
	}
	var failed []error
	for i, err := range errs {
		if err != nil {
			tracer().Errorf("dropping text #%d: %v", i, err)
			failed = append(failed, fmt.Errorf("text #%d: %w", i, err))
		}
	}
	tracer().Debugf("rendered batch of %d texts, %d failed", len(texts), len(failed))
	return docs, errors.Join(failed...)
}
