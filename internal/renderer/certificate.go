package renderer

import (
	"bytes"
	"context"
	"fmt"
	"log/slog"

	"github.com/jung-kurt/gofpdf"
	"github.com/sunthewhat/certifypro-api/type/payload"
)

type Options struct {
	// FontsDir holds the TTF assets named in FontFiles.
	FontsDir string
	Compress bool
	Creator  string
}

// CertificateRenderer turns a render request into a one-page PDF. It keeps no
// per-request state and is safe for concurrent use.
type CertificateRenderer struct {
	opts   Options
	signer *CertificateSigner
}

// Document is a finished render plus the layout trace that produced it.
type Document struct {
	Bytes      []byte
	Geometry   Geometry
	Placements []Placement
	Signed     bool
}

// Placement returns the trace entry for block.
func (d *Document) Placement(block Block) (Placement, bool) {
	for _, p := range d.Placements {
		if p.Block == block {
			return p, true
		}
	}
	return Placement{}, false
}

func NewCertificateRenderer(opts Options, signer *CertificateSigner) *CertificateRenderer {
	if signer == nil {
		signer = &CertificateSigner{}
	}
	return &CertificateRenderer{opts: opts, signer: signer}
}

type flowBlock struct {
	block    Block
	text     string
	spec     payload.StyleSpec
	defaults BlockDefaults
	advance  float64
}

func (r *CertificateRenderer) Render(ctx context.Context, req *payload.GeneratePdfPayload) (doc *Document, err error) {
	if req == nil {
		req = new(payload.GeneratePdfPayload)
	}

	defer func() {
		if rec := recover(); rec != nil {
			slog.Error("Panic occurred during PDF rendering", "panic", rec)
			doc = nil
			err = fmt.Errorf("%w: %v", ErrRender, rec)
		}
	}()

	orientation := Landscape
	if req.IsPortrait() {
		orientation = Portrait
	}
	geometry := ComputeGeometry(orientation)

	pdf := gofpdf.New(orientation.letter(), "pt", "A4", "")
	pdf.SetMargins(0, 0, 0)
	pdf.SetCellMargin(0)
	pdf.SetAutoPageBreak(false, 0)
	pdf.SetCompression(r.opts.Compress)
	pdf.SetCreator(r.opts.Creator, true)
	pdf.SetTitle(req.TitleText(), true)

	p := newPainter(pdf, loadFonts(pdf, r.opts.FontsDir))
	pdf.AddPage()

	p.background(geometry)
	p.card(geometry)

	flow := []flowBlock{
		{BlockTitle, req.TitleText(), req.TitleStyle, TitleDefaults, 0},
		{BlockSubtitle, req.SubtitleText(), req.SubStyle, SubtitleDefaults, subtitleAdvance},
		{BlockName, req.NameText(), req.NameStyle, NameDefaults, nameAdvance},
		{BlockBody, req.BodyText(), req.BodyStyle, BodyDefaults, bodyAdvance},
	}

	y := geometry.TitleY
	prevSize := 0.0
	for _, b := range flow {
		style := ResolveStyle(b.spec, b.defaults)
		y += b.advance * lineHeight(prevSize)
		y = p.drawTextBlock(b.block, b.text, geometry.ColumnX, y, geometry.ColumnW, style)
		prevSize = style.Size
	}

	p.footer(geometry, req.SignatureText(), req.DateText())

	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if pdf.Err() {
		return nil, fmt.Errorf("%w: %v", ErrRender, pdf.Error())
	}

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrRender, err)
	}

	doc = &Document{
		Bytes:      buf.Bytes(),
		Geometry:   geometry,
		Placements: p.placements,
	}

	if r.signer.IsEnabled() {
		signed, err := r.signer.SignPDF(doc.Bytes, req.NameText())
		if err != nil {
			slog.Warn("Failed to sign PDF, returning unsigned version", "error", err)
		} else if !bytes.Equal(signed, doc.Bytes) {
			doc.Bytes = signed
			doc.Signed = true
		}
	}

	return doc, nil
}
