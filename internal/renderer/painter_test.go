package renderer

import (
	"testing"

	"github.com/jung-kurt/gofpdf"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestPainter(t *testing.T) (*painter, face) {
	t.Helper()
	pdf := gofpdf.New("L", "pt", "A4", "")
	pdf.AddPage()
	p := newPainter(pdf, loadFonts(pdf, t.TempDir()))

	f := p.fonts[PoppinsRegular]
	require.False(t, f.utf8, "an empty fonts dir maps to a core font")
	pdf.SetFont(f.family, f.style, 20)
	return p, f
}

func TestMeasurer_SpacingBetweenGlyphsOnly(t *testing.T) {
	p, f := newTestPainter(t)

	plain := p.measurer(f, 0)
	spaced := p.measurer(f, 4)

	assert.InDelta(t, plain("AB")+4, spaced("AB"), 1e-9)
	assert.InDelta(t, plain("Jane")+12, spaced("Jane"), 1e-9)
	assert.InDelta(t, plain("A"), spaced("A"), 1e-9, "a single glyph has no gap")
	assert.Zero(t, spaced(""))
}

func TestMeasurer_MatchesDrawnAdvance(t *testing.T) {
	p, f := newTestPainter(t)
	const spacing = 3.5

	// drawLine advances by glyph width plus spacing; the line ends at the
	// last glyph's right edge.
	line := "Certificate"
	var advance float64
	for _, glyph := range glyphs(f, p.encode(f, line)) {
		advance += p.pdf.GetStringWidth(glyph) + spacing
	}

	assert.InDelta(t, advance-spacing, p.measurer(f, spacing)(line), 1e-9)
}
