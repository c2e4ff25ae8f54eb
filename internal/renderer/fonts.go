package renderer

import (
	"strconv"
	"strings"
	"unicode"
)

// Font names a logical certificate face. Each one is backed by a TTF asset
// or, when the asset is unavailable, by a core PDF font.
type Font string

const (
	PoppinsRegular Font = "PoppinsRegular"
	PoppinsMedium  Font = "PoppinsMedium"
	TimesNew       Font = "TimesNew"
	AlexBrush      Font = "AlexBrush"
)

// MediumWeight is the lowest CSS weight drawn with PoppinsMedium.
const MediumWeight = 500

func (f Font) IsPoppins() bool {
	return strings.HasPrefix(string(f), "Poppins")
}

type familyRule struct {
	name    string
	matches func(family string) bool
	resolve func(fallback Font) Font
}

func contains(sub string) func(string) bool {
	return func(family string) bool { return strings.Contains(family, sub) }
}

func always(f Font) func(Font) Font {
	return func(Font) Font { return f }
}

// familyRules is evaluated top to bottom against the lower-cased CSS family;
// the first match wins.
var familyRules = []familyRule{
	{name: "alex", matches: contains("alex"), resolve: always(AlexBrush)},
	{
		name:    "poppins",
		matches: contains("poppins"),
		resolve: func(fallback Font) Font {
			if fallback.IsPoppins() {
				return fallback
			}
			return PoppinsRegular
		},
	},
	{name: "times", matches: contains("times"), resolve: always(TimesNew)},
	{name: "georgia", matches: contains("georgia"), resolve: always(TimesNew)},
}

// ResolveFont maps a CSS font-family string to a certificate face.
func ResolveFont(cssFamily string, fallback Font) Font {
	if cssFamily == "" {
		return fallback
	}

	family := strings.ToLower(cssFamily)
	for _, rule := range familyRules {
		if rule.matches(family) {
			return rule.resolve(fallback)
		}
	}
	return fallback
}

// FontForWeight picks the sans face for a numeric CSS weight.
func FontForWeight(weight int) Font {
	if weight >= MediumWeight {
		return PoppinsMedium
	}
	return PoppinsRegular
}

var weightKeywords = map[string]int{
	"normal":  400,
	"bold":    700,
	"bolder":  700,
	"lighter": 300,
}

// ParseWeight reads a CSS font-weight. A leading integer wins ("600px" is
// 600); keywords map to their numeric weight; anything else yields def.
func ParseWeight(raw string, def int) int {
	s := strings.ToLower(strings.TrimSpace(raw))
	if s == "" {
		return def
	}
	if w, ok := weightKeywords[s]; ok {
		return w
	}

	end := 0
	for end < len(s) && unicode.IsDigit(rune(s[end])) {
		end++
	}
	if end == 0 {
		return def
	}
	w, err := strconv.Atoi(s[:end])
	if err != nil {
		return def
	}
	return w
}
