package collector

import (
	"errors"
	"math"
	"regexp"
	"slices"
	"strconv"
	"strings"

	"github.com/sunthewhat/certifypro-api/type/payload"
)

// styleDefaults are the values sent when an editor input is absent or empty.
type styleDefaults struct {
	size  float64
	color string
}

var (
	titleDefaults    = styleDefaults{size: 24, color: "#111827"}
	subtitleDefaults = styleDefaults{size: 14, color: "#666666"}
	nameDefaults     = styleDefaults{size: 28, color: "#000000"}
	bodyDefaults     = styleDefaults{size: 14, color: "#333333"}
)

const (
	defaultTitleWeight = "500"
	defaultAlign       = "center"
)

var textFallbacks = map[Block]string{
	BlockTitle:     payload.DefaultTitle,
	BlockSubtitle:  payload.DefaultSubtitle,
	BlockName:      payload.DefaultName,
	BlockBody:      "",
	BlockSignature: payload.DefaultSignatureLabel,
	BlockDate:      payload.DefaultDateLabel,
}

// Collect builds the render request for the current editor state. Every field
// of the result is set.
func Collect(s Snapshot) payload.GeneratePdfPayload {
	orientation := payload.OrientationLandscape
	if slices.Contains(s.CanvasClasses, PortraitClass) {
		orientation = payload.OrientationPortrait
	}

	title := s.Controls[BlockTitle]
	titleStyle := s.blockStyle(BlockTitle, titleDefaults)
	titleStyle.FontWeight = payload.NewText(orDefault(title.FontWeight, defaultTitleWeight))
	titleStyle.LetterSpacing = numberOr(title.LetterSpacing, 0)

	return payload.GeneratePdfPayload{
		Title:          payload.NewText(s.text(BlockTitle)),
		Subtitle:       payload.NewText(s.text(BlockSubtitle)),
		Name:           payload.NewText(s.text(BlockName)),
		Body:           payload.NewText(s.text(BlockBody)),
		SignatureLabel: payload.NewText(s.text(BlockSignature)),
		DateLabel:      payload.NewText(s.text(BlockDate)),
		Orientation:    payload.NewText(orientation),
		TitleStyle:     titleStyle,
		SubStyle:       s.blockStyle(BlockSubtitle, subtitleDefaults),
		NameStyle:      s.blockStyle(BlockName, nameDefaults),
		BodyStyle:      s.blockStyle(BlockBody, bodyDefaults),
	}
}

func (s Snapshot) text(block Block) string {
	node := s.Text[block]
	if node == nil {
		return textFallbacks[block]
	}
	if trimmed := strings.TrimSpace(*node); trimmed != "" {
		return trimmed
	}
	return textFallbacks[block]
}

func (s Snapshot) blockStyle(block Block, def styleDefaults) payload.StyleSpec {
	controls := s.Controls[block]

	family := ""
	if controls.FontFamily != nil {
		family = *controls.FontFamily
	}

	align := s.Align[block]
	if align == "" {
		align = defaultAlign
	}

	return payload.StyleSpec{
		FontFamily: payload.NewText(family),
		FontSize:   numberOr(controls.FontSize, def.size),
		Color:      payload.NewText(orDefault(controls.Color, def.color)),
		Align:      payload.NewText(align),
	}
}

func orDefault(value *string, def string) string {
	if value == nil || *value == "" {
		return def
	}
	return *value
}

// numberOr parses an input value like the browser does for numeric fields:
// a missing, unparseable or zero value yields def. An infinite value is sent
// as null.
func numberOr(value *string, def float64) *payload.Number {
	if value == nil {
		return payload.NewNumber(def)
	}

	v, ok := parseLeadingFloat(*value)
	switch {
	case !ok || v == 0:
		return payload.NewNumber(def)
	case math.IsInf(v, 0):
		return &payload.Number{}
	default:
		return payload.NewNumber(v)
	}
}

var leadingFloat = regexp.MustCompile(`^[+-]?(Infinity|(\d+\.?\d*|\.\d+)([eE][+-]?\d+)?)`)

// parseLeadingFloat reads the longest numeric prefix of s after leading
// whitespace ("12px" is 12, "px" fails).
func parseLeadingFloat(s string) (float64, bool) {
	match := leadingFloat.FindString(strings.TrimLeft(s, " \t\n\r\f\v"))
	if match == "" {
		return 0, false
	}

	if strings.HasSuffix(match, "Infinity") {
		if strings.HasPrefix(match, "-") {
			return math.Inf(-1), true
		}
		return math.Inf(1), true
	}

	v, err := strconv.ParseFloat(match, 64)
	if err != nil && !errors.Is(err, strconv.ErrRange) {
		return 0, false
	}
	return v, true
}
