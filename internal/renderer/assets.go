package renderer

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/jung-kurt/gofpdf"
)

// face is what gofpdf.SetFont needs to draw a Font.
type face struct {
	family string
	style  string
	utf8   bool
}

type fontAsset struct {
	font Font
	file string
	core face
}

var fontAssets = []fontAsset{
	{font: PoppinsRegular, file: "Poppins-Regular.ttf", core: face{family: "Helvetica"}},
	{font: PoppinsMedium, file: "Poppins-Medium.ttf", core: face{family: "Helvetica", style: "B"}},
	{font: TimesNew, file: "TimesNewRoman.ttf", core: face{family: "Times"}},
	{font: AlexBrush, file: "AlexBrush-Regular.ttf", core: face{family: "Times", style: "I"}},
}

// FontFiles lists the asset file names looked up in the fonts directory.
func FontFiles() []string {
	files := make([]string, len(fontAssets))
	for i, asset := range fontAssets {
		files[i] = asset.file
	}
	return files
}

type fontBook map[Font]face

// loadFonts registers every asset found in dir with pdf. A missing or broken
// file is logged and its font is mapped to a core substitute instead.
func loadFonts(pdf *gofpdf.Fpdf, dir string) fontBook {
	book := make(fontBook, len(fontAssets))

	for _, asset := range fontAssets {
		book[asset.font] = asset.core

		path := filepath.Join(dir, asset.file)
		data, err := os.ReadFile(path)
		if err != nil {
			slog.Warn("Font not found, using built-in substitute",
				"font", asset.font,
				"path", path,
				"substitute", asset.core.family)
			continue
		}

		if err := registerUTF8Font(pdf, asset.font, data); err != nil {
			slog.Warn("Font register failed, using built-in substitute",
				"font", asset.font,
				"path", path,
				"error", err)
			continue
		}
		book[asset.font] = face{family: string(asset.font), utf8: true}
	}

	return book
}

func registerUTF8Font(pdf *gofpdf.Fpdf, font Font, data []byte) (err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("%w: %v", ErrFontRegister, r)
		}
		if err != nil {
			pdf.ClearError()
		}
	}()

	pdf.AddUTF8FontFromBytes(string(font), "", data)
	if pdf.Err() {
		return fmt.Errorf("%w: %v", ErrFontRegister, pdf.Error())
	}

	// gofpdf skips fonts it cannot parse without flagging an error.
	pdf.SetFont(string(font), "", footerLabelSize)
	if pdf.Err() {
		return fmt.Errorf("%w: %v", ErrFontRegister, pdf.Error())
	}
	return nil
}
