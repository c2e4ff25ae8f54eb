package collector

import (
	"encoding/json"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func str(s string) *string { return &s }

func TestCollect_EmptySnapshot(t *testing.T) {
	req := Collect(Snapshot{})

	assert.Equal(t, "CERTIFICATE", req.TitleText())
	assert.Equal(t, "of participation", req.SubtitleText())
	assert.Equal(t, "Name Surname", req.NameText())
	assert.Equal(t, "", req.BodyText())
	assert.Equal(t, "Signature", req.SignatureText())
	assert.Equal(t, "Date", req.DateText())
	assert.False(t, req.IsPortrait())

	assert.Equal(t, 24.0, req.TitleStyle.FontSize.Float(0))
	assert.Equal(t, "#111827", req.TitleStyle.Color.Or(""))
	assert.Equal(t, "500", req.TitleStyle.FontWeight.Or(""))
	assert.Equal(t, 0.0, req.TitleStyle.LetterSpacing.Float(-1))
	assert.Equal(t, "", req.TitleStyle.FontFamily.Or("unset"))
	assert.Equal(t, "center", req.TitleStyle.Align.Or(""))

	assert.Equal(t, 14.0, req.SubStyle.FontSize.Float(0))
	assert.Equal(t, "#666666", req.SubStyle.Color.Or(""))
	assert.Equal(t, 28.0, req.NameStyle.FontSize.Float(0))
	assert.Equal(t, "#000000", req.NameStyle.Color.Or(""))
	assert.Equal(t, 14.0, req.BodyStyle.FontSize.Float(0))
	assert.Equal(t, "#333333", req.BodyStyle.Color.Or(""))

	assert.Nil(t, req.SubStyle.FontWeight)
	assert.Nil(t, req.SubStyle.LetterSpacing)
}

func TestCollect_TextTrimmingAndFallback(t *testing.T) {
	req := Collect(Snapshot{
		Text: map[Block]*string{
			BlockTitle: str("   "),
			BlockName:  str("  Jane Doe \n"),
			BlockBody:  str("\tCompleted the course.  "),
			BlockDate:  nil,
		},
	})

	assert.Equal(t, "CERTIFICATE", req.TitleText(), "whitespace-only node falls back")
	assert.Equal(t, "Jane Doe", req.NameText())
	assert.Equal(t, "Completed the course.", req.BodyText())
	assert.Equal(t, "Date", req.DateText())
}

func TestCollect_Orientation(t *testing.T) {
	tests := []struct {
		classes []string
		want    bool
	}{
		{nil, false},
		{[]string{"certificate-page"}, false},
		{[]string{"certificate-page", "is-portrait"}, true},
		{[]string{"is-portrait-ish"}, false},
	}

	for _, tt := range tests {
		req := Collect(Snapshot{CanvasClasses: tt.classes})
		assert.Equal(t, tt.want, req.IsPortrait(), tt.classes)
	}
}

func TestCollect_Controls(t *testing.T) {
	req := Collect(Snapshot{
		Controls: map[Block]Controls{
			BlockTitle: {
				FontFamily:    str("'Alex Brush', cursive"),
				FontSize:      str("36px"),
				Color:         str(""),
				FontWeight:    str("700"),
				LetterSpacing: str("2.5"),
			},
			BlockName: {
				FontSize: str("abc"),
				Color:    str("#8b3b3b"),
			},
			BlockBody: {
				FontSize: str("0"),
			},
		},
		Align: map[Block]string{
			BlockTitle: "left",
			BlockBody:  "",
		},
	})

	assert.Equal(t, "'Alex Brush', cursive", req.TitleStyle.FontFamily.Or(""))
	assert.Equal(t, 36.0, req.TitleStyle.FontSize.Float(0))
	assert.Equal(t, "#111827", req.TitleStyle.Color.Or(""), "empty color input falls back")
	assert.Equal(t, "700", req.TitleStyle.FontWeight.Or(""))
	assert.Equal(t, 2.5, req.TitleStyle.LetterSpacing.Float(0))
	assert.Equal(t, "left", req.TitleStyle.Align.Or(""))

	assert.Equal(t, 28.0, req.NameStyle.FontSize.Float(0), "unparseable size falls back")
	assert.Equal(t, "#8b3b3b", req.NameStyle.Color.Or(""))
	assert.Equal(t, 14.0, req.BodyStyle.FontSize.Float(0), "zero size falls back")
	assert.Equal(t, "center", req.BodyStyle.Align.Or(""))
}

func TestCollect_MarshalsEveryField(t *testing.T) {
	data, err := json.Marshal(Collect(Snapshot{}))
	require.NoError(t, err)

	var decoded map[string]any
	require.NoError(t, json.Unmarshal(data, &decoded))

	for _, key := range []string{"title", "subtitle", "name", "body", "signatureLabel", "dateLabel", "orientation", "titleStyle", "subStyle", "nameStyle", "bodyStyle"} {
		assert.Contains(t, decoded, key)
	}
	assert.Equal(t, "landscape", decoded["orientation"])
	assert.Equal(t, map[string]any{
		"fontFamily":    "",
		"fontSize":      24.0,
		"color":         "#111827",
		"fontWeight":    "500",
		"letterSpacing": 0.0,
		"align":         "center",
	}, decoded["titleStyle"])
}

func TestParseLeadingFloat(t *testing.T) {
	tests := []struct {
		in     string
		want   float64
		wantOk bool
	}{
		{"24", 24, true},
		{"  18.5", 18.5, true},
		{"12px", 12, true},
		{".5em", 0.5, true},
		{"1.", 1, true},
		{"-3", -3, true},
		{"2e1", 20, true},
		{"3e", 3, true},
		{"Infinity", math.Inf(1), true},
		{"-Infinity", math.Inf(-1), true},
		{"px12", 0, false},
		{"", 0, false},
		{"abc", 0, false},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, ok := parseLeadingFloat(tt.in)
			assert.Equal(t, tt.wantOk, ok)
			if tt.wantOk {
				assert.Equal(t, tt.want, got)
			}
		})
	}
}

func TestNumberOr_InfinityIsNull(t *testing.T) {
	n := numberOr(str("Infinity"), 24)
	assert.False(t, n.Valid)

	data, err := json.Marshal(n)
	require.NoError(t, err)
	assert.Equal(t, "null", string(data))
}
