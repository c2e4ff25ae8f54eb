package renderer

import "errors"

var (
	ErrRender       = errors.New("PDF generation failed")
	ErrFontRegister = errors.New("font registration failed")
	ErrSignerConfig = errors.New("signing enabled but certificate or key path not configured")
)
