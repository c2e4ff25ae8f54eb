package payload

import (
	"bytes"
	"encoding/json"
	"math"
	"strconv"
	"strings"
)

const (
	DefaultTitle          = "CERTIFICATE"
	DefaultSubtitle       = "of participation"
	DefaultName           = "Name Surname"
	DefaultBody           = "This is to certify that the person above has successfully completed the course."
	DefaultSignatureLabel = "Signature"
	DefaultDateLabel      = "Date"

	OrientationPortrait  = "portrait"
	OrientationLandscape = "landscape"
)

// GeneratePdfPayload is the body of POST /api/generate-pdf. Every field is
// optional; absent or null text fields take the documented default.
type GeneratePdfPayload struct {
	Title          *Text     `json:"title,omitempty"`
	Subtitle       *Text     `json:"subtitle,omitempty"`
	Name           *Text     `json:"name,omitempty"`
	Body           *Text     `json:"body,omitempty"`
	SignatureLabel *Text     `json:"signatureLabel,omitempty"`
	DateLabel      *Text     `json:"dateLabel,omitempty"`
	Orientation    *Text     `json:"orientation,omitempty"`
	TitleStyle     StyleSpec `json:"titleStyle"`
	SubStyle       StyleSpec `json:"subStyle"`
	NameStyle      StyleSpec `json:"nameStyle"`
	BodyStyle      StyleSpec `json:"bodyStyle"`
}

// StyleSpec styles one text block. A nil field means "use the block default".
type StyleSpec struct {
	FontFamily    *Text   `json:"fontFamily,omitempty"`
	FontSize      *Number `json:"fontSize,omitempty"`
	Color         *Text   `json:"color,omitempty"`
	FontWeight    *Text   `json:"fontWeight,omitempty"`
	LetterSpacing *Number `json:"letterSpacing,omitempty"`
	Align         *Text   `json:"align,omitempty"`
}

func (p *GeneratePdfPayload) TitleText() string    { return p.Title.Or(DefaultTitle) }
func (p *GeneratePdfPayload) SubtitleText() string { return p.Subtitle.Or(DefaultSubtitle) }
func (p *GeneratePdfPayload) NameText() string     { return p.Name.Or(DefaultName) }
func (p *GeneratePdfPayload) BodyText() string     { return p.Body.Or(DefaultBody) }
func (p *GeneratePdfPayload) SignatureText() string {
	return p.SignatureLabel.Or(DefaultSignatureLabel)
}
func (p *GeneratePdfPayload) DateText() string { return p.DateLabel.Or(DefaultDateLabel) }

// IsPortrait reports whether the page is portrait. Anything other than the
// exact value "portrait" means landscape.
func (p *GeneratePdfPayload) IsPortrait() bool {
	return p.Orientation.Or(OrientationLandscape) == OrientationPortrait
}

// Text is a string that also accepts JSON numbers and booleans, keeping their
// literal form ("600" for 600).
type Text string

// NewText returns a pointer to s as Text, for building payloads in code.
func NewText(s string) *Text {
	t := Text(s)
	return &t
}

func (t *Text) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if len(data) > 0 && data[0] == '"' {
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return err
		}
		*t = Text(s)
		return nil
	}
	if len(data) > 0 && (data[0] == '{' || data[0] == '[') {
		*t = ""
		return nil
	}
	*t = Text(data)
	return nil
}

// Or returns the text, or def when t is nil.
func (t *Text) Or(def string) string {
	if t == nil {
		return def
	}
	return string(*t)
}

// Number is a leniently decoded number. Valid is false when the JSON value
// was not a finite number or a string holding one.
type Number struct {
	Value float64
	Valid bool
}

// NewNumber returns a valid Number holding v.
func NewNumber(v float64) *Number {
	return &Number{Value: v, Valid: true}
}

func (n *Number) UnmarshalJSON(data []byte) error {
	*n = Number{}

	var raw any
	if err := json.Unmarshal(data, &raw); err != nil {
		return nil
	}

	switch v := raw.(type) {
	case float64:
		n.Value, n.Valid = v, true
	case string:
		f, err := strconv.ParseFloat(strings.TrimSpace(v), 64)
		if err == nil && !math.IsNaN(f) && !math.IsInf(f, 0) {
			n.Value, n.Valid = f, true
		}
	}
	return nil
}

func (n Number) MarshalJSON() ([]byte, error) {
	if !n.Valid {
		return []byte("null"), nil
	}
	return []byte(strconv.FormatFloat(n.Value, 'f', -1, 64)), nil
}

// Float returns the value, or def when n is nil or invalid.
func (n *Number) Float(def float64) float64 {
	if n == nil || !n.Valid {
		return def
	}
	return n.Value
}

// UnmarshalJSON ignores style values that are not JSON objects.
func (s *StyleSpec) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if len(data) == 0 || data[0] != '{' {
		*s = StyleSpec{}
		return nil
	}

	type plain StyleSpec
	var p plain
	if err := json.Unmarshal(data, &p); err != nil {
		return err
	}
	*s = StyleSpec(p)
	return nil
}
