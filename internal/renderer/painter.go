package renderer

import (
	"unicode/utf8"

	"github.com/jung-kurt/gofpdf"
)

type Block string

const (
	BlockTitle     Block = "title"
	BlockSubtitle  Block = "subtitle"
	BlockName      Block = "name"
	BlockBody      Block = "body"
	BlockSignature Block = "signature"
	BlockDate      Block = "date"
)

// Placement records where a text block landed on the page.
type Placement struct {
	Block  Block
	Style  ResolvedStyle
	Face   string
	X, Y   float64
	Width  float64
	Height float64
	Lines  []string
}

var footerStyle = ResolvedStyle{
	Font:  PoppinsRegular,
	Size:  footerLabelSize,
	Color: footerTextColor,
	Align: AlignCenter,
}

// bezier control distance for a quarter circle
const kappa = 0.5523

type painter struct {
	pdf        *gofpdf.Fpdf
	fonts      fontBook
	translate  func(string) string
	placements []Placement
}

func newPainter(pdf *gofpdf.Fpdf, fonts fontBook) *painter {
	return &painter{
		pdf:       pdf,
		fonts:     fonts,
		translate: pdf.UnicodeTranslatorFromDescriptor(""),
	}
}

func (p *painter) background(g Geometry) {
	p.pdf.SetFillColor(backgroundColor.R, backgroundColor.G, backgroundColor.B)
	p.pdf.Rect(0, 0, g.Page.W, g.Page.H, "F")
}

func (p *painter) card(g Geometry) {
	p.pdf.SetFillColor(cardFill.R, cardFill.G, cardFill.B)
	p.pdf.SetDrawColor(cardStroke.R, cardStroke.G, cardStroke.B)
	p.pdf.SetLineWidth(1)
	p.roundedRect(g.Card, cardRadius, "FD")
}

func (p *painter) roundedRect(r Rect, radius float64, style string) {
	k := kappa * radius
	x0, y0, x1, y1 := r.X, r.Y, r.X+r.W, r.Y+r.H

	p.pdf.MoveTo(x0+radius, y0)
	p.pdf.LineTo(x1-radius, y0)
	p.pdf.CurveBezierCubicTo(x1-radius+k, y0, x1, y0+radius-k, x1, y0+radius)
	p.pdf.LineTo(x1, y1-radius)
	p.pdf.CurveBezierCubicTo(x1, y1-radius+k, x1-radius+k, y1, x1-radius, y1)
	p.pdf.LineTo(x0+radius, y1)
	p.pdf.CurveBezierCubicTo(x0+radius-k, y1, x0, y1-radius+k, x0, y1-radius)
	p.pdf.LineTo(x0, y0+radius)
	p.pdf.CurveBezierCubicTo(x0, y0+radius-k, x0+radius-k, y0, x0+radius, y0)
	p.pdf.ClosePath()
	p.pdf.DrawPath(style)
}

func (p *painter) footer(g Geometry, signature, date string) {
	labels := []struct {
		block Block
		rule  Rect
		text  string
	}{
		{BlockSignature, g.SignatureRule, signature},
		{BlockDate, g.DateRule, date},
	}

	for _, label := range labels {
		p.pdf.SetFillColor(footerRuleColor.R, footerRuleColor.G, footerRuleColor.B)
		p.pdf.Rect(label.rule.X, label.rule.Y, label.rule.W, label.rule.H, "F")
		p.drawTextBlock(label.block, label.text, label.rule.X, label.rule.Y+footerLabelGap, label.rule.W, footerStyle)
	}
}

// drawTextBlock wraps text to width w and paints it from top y downwards.
// It returns the y just below the last line.
func (p *painter) drawTextBlock(block Block, text string, x, y, w float64, style ResolvedStyle) float64 {
	f := p.fonts[style.Font]
	p.pdf.SetFont(f.family, f.style, style.Size)
	p.pdf.SetTextColor(style.Color.R, style.Color.G, style.Color.B)

	measure := p.measurer(f, style.LetterSpacing)
	lines := wrapText(text, w, measure)
	lh := lineHeight(style.Size)

	for i, line := range lines {
		lx := x
		switch style.Align {
		case AlignCenter:
			lx = x + (w-measure(line))/2
		case AlignRight:
			lx = x + w - measure(line)
		}
		// baseline sits where a cell of height lh would centre the glyphs
		baseline := y + float64(i)*lh + lh/2 + 0.3*style.Size
		p.drawLine(f, line, lx, baseline, style.LetterSpacing)
	}

	height := float64(len(lines)) * lh
	p.placements = append(p.placements, Placement{
		Block:  block,
		Style:  style,
		Face:   f.family,
		X:      x,
		Y:      y,
		Width:  w,
		Height: height,
		Lines:  lines,
	})
	return y + height
}

func (p *painter) drawLine(f face, line string, x, baseline, spacing float64) {
	encoded := p.encode(f, line)
	if encoded == "" {
		return
	}
	if spacing == 0 {
		p.pdf.Text(x, baseline, encoded)
		return
	}
	for _, glyph := range glyphs(f, encoded) {
		p.pdf.Text(x, baseline, glyph)
		x += p.pdf.GetStringWidth(glyph) + spacing
	}
}

// measurer returns the drawn width of a line in the current font. Letter
// spacing only sits between glyphs, so the last one adds none.
func (p *painter) measurer(f face, spacing float64) func(string) float64 {
	return func(s string) float64 {
		encoded := p.encode(f, s)
		gaps := max(len(glyphs(f, encoded))-1, 0)
		return p.pdf.GetStringWidth(encoded) + spacing*float64(gaps)
	}
}

// Core fonts take cp1252 bytes, embedded TTF fonts take UTF-8.
func (p *painter) encode(f face, s string) string {
	if f.utf8 {
		return s
	}
	return p.translate(s)
}

func glyphs(f face, encoded string) []string {
	if !f.utf8 {
		out := make([]string, len(encoded))
		for i := range len(encoded) {
			out[i] = encoded[i : i+1]
		}
		return out
	}

	out := make([]string, 0, utf8.RuneCountInString(encoded))
	for len(encoded) > 0 {
		_, size := utf8.DecodeRuneInString(encoded)
		out = append(out, encoded[:size])
		encoded = encoded[size:]
	}
	return out
}
