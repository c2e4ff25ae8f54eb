package renderer

import (
	"strings"
	"unicode/utf8"
)

// A4 in points, portrait.
const (
	a4Width  = 595.28
	a4Height = 841.89
)

const (
	cardMargin   = 32.0
	cardRadius   = 16.0
	columnInset  = 60.0
	titleOffset  = 40.0
	lineHeightEm = 1.2

	footerOffset    = 90.0
	footerRuleWidth = 200.0
	footerRuleGap   = 120.0
	footerLabelGap  = 6.0
	footerLabelSize = 9.0
)

// Vertical advances, in line heights of the previously drawn block.
const (
	subtitleAdvance = 0.5
	nameAdvance     = 2.0
	bodyAdvance     = 1.2
)

var (
	backgroundColor = mustHex("#d1fae5")
	cardFill        = mustHex("#ffffff")
	cardStroke      = mustHex("#d1d5db")
	footerRuleColor = mustHex("#4b5563")
	footerTextColor = mustHex("#6b7280")
)

type Orientation string

const (
	Portrait  Orientation = "portrait"
	Landscape Orientation = "landscape"
)

// gofpdf orientation letter.
func (o Orientation) letter() string {
	if o == Portrait {
		return "P"
	}
	return "L"
}

type Rect struct {
	X, Y, W, H float64
}

func (r Rect) Bottom() float64 { return r.Y + r.H }

// Geometry is the fixed frame of a certificate page. Only the page size
// depends on the orientation; every other box derives from it.
type Geometry struct {
	Orientation   Orientation
	Page          Rect
	Card          Rect
	ColumnX       float64
	ColumnW       float64
	TitleY        float64
	FooterY       float64
	SignatureRule Rect
	DateRule      Rect
}

func ComputeGeometry(o Orientation) Geometry {
	w, h := a4Width, a4Height
	if o != Portrait {
		o = Landscape
		w, h = h, w
	}

	card := Rect{X: cardMargin, Y: cardMargin, W: w - 2*cardMargin, H: h - 2*cardMargin}
	footerY := card.Bottom() - footerOffset
	centerX := w / 2

	return Geometry{
		Orientation:   o,
		Page:          Rect{W: w, H: h},
		Card:          card,
		ColumnX:       card.X + columnInset,
		ColumnW:       card.W - 2*columnInset,
		TitleY:        card.Y + titleOffset,
		FooterY:       footerY,
		SignatureRule: Rect{X: centerX - footerRuleWidth - footerRuleGap/2, Y: footerY, W: footerRuleWidth, H: 1},
		DateRule:      Rect{X: centerX + footerRuleGap/2, Y: footerY, W: footerRuleWidth, H: 1},
	}
}

func lineHeight(size float64) float64 {
	return size * lineHeightEm
}

// wrapText greedily breaks text into lines no wider than width. Hard line
// breaks are kept; a word wider than the column is split between glyphs.
func wrapText(text string, width float64, measure func(string) float64) []string {
	var lines []string
	for _, paragraph := range strings.Split(strings.ReplaceAll(text, "\r\n", "\n"), "\n") {
		lines = append(lines, wrapParagraph(paragraph, width, measure)...)
	}
	return lines
}

func wrapParagraph(paragraph string, width float64, measure func(string) float64) []string {
	words := strings.Fields(paragraph)
	if len(words) == 0 {
		return []string{""}
	}

	var lines []string
	current := ""
	for _, word := range words {
		candidate := word
		if current != "" {
			candidate = current + " " + word
		}
		if measure(candidate) <= width {
			current = candidate
			continue
		}
		if current != "" {
			lines = append(lines, current)
			current = ""
		}
		for measure(word) > width && utf8.RuneCountInString(word) > 1 {
			head, tail := splitToWidth(word, width, measure)
			lines = append(lines, head)
			word = tail
		}
		current = word
	}
	return append(lines, current)
}

// splitToWidth returns the longest non-empty rune prefix of word that fits.
func splitToWidth(word string, width float64, measure func(string) float64) (string, string) {
	cut := 0
	for cut < len(word) {
		_, size := utf8.DecodeRuneInString(word[cut:])
		if cut > 0 && measure(word[:cut+size]) > width {
			break
		}
		cut += size
	}
	return word[:cut], word[cut:]
}
