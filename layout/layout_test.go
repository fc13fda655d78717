package layout

import (
	"testing"

	"github.com/npillmayer/schuko/tracing"
	"github.com/npillmayer/schuko/tracing/gotestingadapter"
	"github.com/stretchr/testify/suite"
	"golang.org/x/image/font/sfnt"

	"github.com/npillmayer/textsvg/internal/synthfont"
	"github.com/npillmayer/textsvg/otquery"
)

// --- Test Suite Preparation ------------------------------------------------

type LayoutTestEnviron struct {
	suite.Suite
	font *synthfont.Font
}

// listen for 'go test' command --> run test methods
func TestLayoutFunctions(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "textsvg.layout")
	defer teardown()
	suite.Run(t, new(LayoutTestEnviron))
}

// run once, before test suite methods
func (env *LayoutTestEnviron) SetupSuite() {
	env.T().Log("Setting up test suite")
	tracing.Select("textsvg.layout").SetTraceLevel(tracing.LevelDebug)
	f := synthfont.New(1000)
	f.AddBox('A', 600, 0, 0, 600, 700)
	f.AddBox('B', 550, 0, 0, 550, 500)
	f.AddBox('g', 500, 0, -200, 500, 450)
	f.AddBlank(' ', 250)
	env.font = f
}

func (env *LayoutTestEnviron) layout(text string) StringLayout {
	glyphs, err := otquery.ResolveString(env.font, text)
	env.Require().NoError(err)
	return Compute(env.font.UnitsPerEm(), glyphs)
}

// --- Tests -----------------------------------------------------------------

func (env *LayoutTestEnviron) TestTwoGlyphs() {
	l := env.layout("AB")
	env.Equal(sfnt.Units(125), l.Spacing)
	env.Equal(sfnt.Units(1275), l.TotalWidth, "expected 600+125+550")
	env.Equal(sfnt.Units(700), l.MaxHeight)
	env.Equal(sfnt.Units(700), l.Baseline, "expected baseline at tallest glyph")
	env.Equal([]sfnt.Units{0, 725}, l.Offsets())
	x, y, w, h := l.ViewBox()
	env.Equal([4]sfnt.Units{0, 0, 1275, 825}, [4]sfnt.Units{x, y, w, h})
}

func (env *LayoutTestEnviron) TestSingleGlyph() {
	l := env.layout("A")
	env.Equal(sfnt.Units(600), l.TotalWidth, "single glyph has no gaps")
	env.Equal([]sfnt.Units{0}, l.Offsets())
}

func (env *LayoutTestEnviron) TestEmptyString() {
	l := env.layout("")
	env.True(l.IsEmpty())
	env.Equal(0, l.Len())
	_, _, w, h := l.ViewBox()
	env.Equal(sfnt.Units(0), w)
	env.Equal(sfnt.Units(125), h, "height still carries the spacing")
}

func (env *LayoutTestEnviron) TestPlaceholdersAdvance() {
	l := env.layout("A工B")
	env.Equal([]sfnt.Units{0, 725, 1850}, l.Offsets(),
		"expected unmapped character to advance by 1 em")
	env.Equal(sfnt.Units(2400), l.TotalWidth)
	env.Equal(sfnt.Units(700), l.MaxHeight, "placeholder must not count towards height")
}

func (env *LayoutTestEnviron) TestBlankDoesNotCountForHeight() {
	l := env.layout("B B")
	env.Equal(sfnt.Units(500), l.MaxHeight)
	env.Equal([]sfnt.Units{0, 675, 1800}, l.Offsets())
}

func (env *LayoutTestEnviron) TestDescenderHeight() {
	l := env.layout("gB")
	env.Equal(sfnt.Units(650), l.MaxHeight, "height is yMax−yMin, not yMax")
	env.Equal(l.MaxHeight, l.Baseline)
}

func (env *LayoutTestEnviron) TestIsPure() {
	glyphs, err := otquery.ResolveString(env.font, "AgB")
	env.Require().NoError(err)
	l1 := Compute(1000, glyphs)
	l2 := Compute(1000, glyphs)
	env.Equal(l1, l2)
}

// --- Plain tests -----------------------------------------------------------

func TestSpacing(t *testing.T) {
	for _, c := range []struct {
		upem, spacing sfnt.Units
	}{
		{1000, 125}, {2048, 256}, {1024, 128}, {1001, 125}, {7, 0},
	} {
		if s := Spacing(c.upem); s != c.spacing {
			t.Errorf("spacing for upem=%d: expected %d, got %d", c.upem, c.spacing, s)
		}
	}
}
