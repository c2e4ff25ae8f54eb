package renderer

import (
	"math"
	"regexp"
	"strconv"
	"strings"

	"github.com/sunthewhat/certifypro-api/type/payload"
)

type Align string

const (
	AlignLeft   Align = "left"
	AlignCenter Align = "center"
	AlignRight  Align = "right"
)

type RGB struct {
	R, G, B int
}

// BlockDefaults are the per-block fallbacks applied to a StyleSpec.
type BlockDefaults struct {
	Font  Font
	Size  float64
	Color RGB
	// Weight, when non-zero, makes the fallback font depend on the StyleSpec
	// fontWeight via FontForWeight. Only the title uses it.
	Weight int
}

type ResolvedStyle struct {
	Font          Font
	Size          float64
	Color         RGB
	LetterSpacing float64
	Align         Align
}

var (
	TitleDefaults    = BlockDefaults{Font: PoppinsMedium, Size: 24, Color: mustHex("#111827"), Weight: MediumWeight}
	SubtitleDefaults = BlockDefaults{Font: PoppinsRegular, Size: 14, Color: mustHex("#6b7280")}
	NameDefaults     = BlockDefaults{Font: TimesNew, Size: 24, Color: mustHex("#8b3b3b")}
	BodyDefaults     = BlockDefaults{Font: PoppinsRegular, Size: 12, Color: mustHex("#374151")}
)

// ResolveStyle applies defaults to spec. It never fails: unusable values
// fall back field by field.
func ResolveStyle(spec payload.StyleSpec, def BlockDefaults) ResolvedStyle {
	fallback := def.Font
	if def.Weight != 0 {
		fallback = FontForWeight(ParseWeight(spec.FontWeight.Or(""), def.Weight))
	}

	size := spec.FontSize.Float(def.Size)
	if size <= 0 {
		size = def.Size
	}

	spacing := spec.LetterSpacing.Float(0)
	if math.IsNaN(spacing) || math.IsInf(spacing, 0) {
		spacing = 0
	}

	color, ok := ParseColor(spec.Color.Or(""))
	if !ok {
		color = def.Color
	}

	return ResolvedStyle{
		Font:          ResolveFont(spec.FontFamily.Or(""), fallback),
		Size:          size,
		Color:         color,
		LetterSpacing: spacing,
		Align:         ParseAlign(spec.Align.Or("")),
	}
}

// ParseAlign accepts left/center/right plus the logical start/end values a
// computed style may report. Anything else is center.
func ParseAlign(raw string) Align {
	switch strings.ToLower(strings.TrimSpace(raw)) {
	case "left", "start":
		return AlignLeft
	case "right", "end":
		return AlignRight
	default:
		return AlignCenter
	}
}

var rgbFunc = regexp.MustCompile(`^rgba?\(\s*(\d{1,3})\s*,\s*(\d{1,3})\s*,\s*(\d{1,3})\s*(?:,\s*[\d.]+\s*)?\)$`)

// ParseColor reads #rgb, #rrggbb and rgb()/rgba() colors.
func ParseColor(raw string) (RGB, bool) {
	s := strings.ToLower(strings.TrimSpace(raw))
	if s == "" {
		return RGB{}, false
	}

	if m := rgbFunc.FindStringSubmatch(s); m != nil {
		var c [3]int
		for i := range c {
			v, err := strconv.Atoi(m[i+1])
			if err != nil || v > 255 {
				return RGB{}, false
			}
			c[i] = v
		}
		return RGB{c[0], c[1], c[2]}, true
	}

	hex, ok := strings.CutPrefix(s, "#")
	if !ok {
		return RGB{}, false
	}
	if len(hex) == 3 {
		hex = string([]byte{hex[0], hex[0], hex[1], hex[1], hex[2], hex[2]})
	}
	if len(hex) != 6 {
		return RGB{}, false
	}
	v, err := strconv.ParseUint(hex, 16, 32)
	if err != nil {
		return RGB{}, false
	}
	return RGB{int(v >> 16 & 0xff), int(v >> 8 & 0xff), int(v & 0xff)}, true
}

func mustHex(s string) RGB {
	c, ok := ParseColor(s)
	if !ok {
		panic("renderer: bad color literal " + s)
	}
	return c
}
