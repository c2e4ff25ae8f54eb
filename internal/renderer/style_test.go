package renderer

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/sunthewhat/certifypro-api/type/payload"
)

func TestResolveStyle_Defaults(t *testing.T) {
	tests := []struct {
		name     string
		defaults BlockDefaults
		want     ResolvedStyle
	}{
		{"title", TitleDefaults, ResolvedStyle{Font: PoppinsMedium, Size: 24, Color: RGB{0x11, 0x18, 0x27}, Align: AlignCenter}},
		{"subtitle", SubtitleDefaults, ResolvedStyle{Font: PoppinsRegular, Size: 14, Color: RGB{0x6b, 0x72, 0x80}, Align: AlignCenter}},
		{"name", NameDefaults, ResolvedStyle{Font: TimesNew, Size: 24, Color: RGB{0x8b, 0x3b, 0x3b}, Align: AlignCenter}},
		{"body", BodyDefaults, ResolvedStyle{Font: PoppinsRegular, Size: 12, Color: RGB{0x37, 0x41, 0x51}, Align: AlignCenter}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ResolveStyle(payload.StyleSpec{}, tt.defaults))
		})
	}
}

func TestResolveStyle_Overrides(t *testing.T) {
	spec := payload.StyleSpec{
		FontFamily:    payload.NewText("Georgia, serif"),
		FontSize:      payload.NewNumber(32),
		Color:         payload.NewText("#fff"),
		LetterSpacing: payload.NewNumber(1.5),
		Align:         payload.NewText("end"),
	}

	got := ResolveStyle(spec, SubtitleDefaults)

	assert.Equal(t, ResolvedStyle{
		Font:          TimesNew,
		Size:          32,
		Color:         RGB{255, 255, 255},
		LetterSpacing: 1.5,
		Align:         AlignRight,
	}, got)
}

func TestResolveStyle_TitleWeight(t *testing.T) {
	tests := []struct {
		weight *payload.Text
		want   Font
	}{
		{nil, PoppinsMedium},
		{payload.NewText("400"), PoppinsRegular},
		{payload.NewText("499"), PoppinsRegular},
		{payload.NewText("500"), PoppinsMedium},
		{payload.NewText("bold"), PoppinsMedium},
		{payload.NewText("normal"), PoppinsRegular},
		{payload.NewText("garbage"), PoppinsMedium},
	}

	for _, tt := range tests {
		got := ResolveStyle(payload.StyleSpec{FontWeight: tt.weight}, TitleDefaults)
		assert.Equal(t, tt.want, got.Font, "weight %v", tt.weight.Or("<nil>"))
	}

	// fontWeight is ignored outside the title
	got := ResolveStyle(payload.StyleSpec{FontWeight: payload.NewText("800")}, BodyDefaults)
	assert.Equal(t, PoppinsRegular, got.Font)
}

func TestResolveStyle_InvalidValuesFallBack(t *testing.T) {
	spec := payload.StyleSpec{
		FontSize:      &payload.Number{},
		Color:         payload.NewText("purple"),
		LetterSpacing: &payload.Number{},
		Align:         payload.NewText("justify"),
	}
	got := ResolveStyle(spec, NameDefaults)

	assert.Equal(t, 24.0, got.Size)
	assert.Equal(t, NameDefaults.Color, got.Color)
	assert.Zero(t, got.LetterSpacing)
	assert.Equal(t, AlignCenter, got.Align)

	for _, size := range []float64{0, -12} {
		got = ResolveStyle(payload.StyleSpec{FontSize: payload.NewNumber(size)}, BodyDefaults)
		assert.Equal(t, 12.0, got.Size, "size %v", size)
	}
}

func TestParseColor(t *testing.T) {
	tests := []struct {
		raw    string
		want   RGB
		wantOk bool
	}{
		{"#111827", RGB{0x11, 0x18, 0x27}, true},
		{"#ABC", RGB{0xaa, 0xbb, 0xcc}, true},
		{" #00ff00 ", RGB{0, 255, 0}, true},
		{"rgb(10, 20, 30)", RGB{10, 20, 30}, true},
		{"rgba(1,2,3,0.5)", RGB{1, 2, 3}, true},
		{"rgb(256,0,0)", RGB{}, false},
		{"#12345", RGB{}, false},
		{"#ggg", RGB{}, false},
		{"red", RGB{}, false},
		{"", RGB{}, false},
	}

	for _, tt := range tests {
		t.Run(tt.raw, func(t *testing.T) {
			got, ok := ParseColor(tt.raw)
			assert.Equal(t, tt.wantOk, ok)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestParseAlign(t *testing.T) {
	assert.Equal(t, AlignLeft, ParseAlign("left"))
	assert.Equal(t, AlignLeft, ParseAlign("start"))
	assert.Equal(t, AlignRight, ParseAlign("RIGHT"))
	assert.Equal(t, AlignRight, ParseAlign("end"))
	assert.Equal(t, AlignCenter, ParseAlign("center"))
	assert.Equal(t, AlignCenter, ParseAlign("-webkit-center"))
	assert.Equal(t, AlignCenter, ParseAlign(""))
}
