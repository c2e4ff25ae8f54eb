package util

import (
	"regexp"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRandomPdfFilename(t *testing.T) {
	pattern := regexp.MustCompile(`^CertifyPro_\d{6}\.pdf$`)

	for range 200 {
		name := RandomPdfFilename("CertifyPro")
		assert.Regexp(t, pattern, name)
	}
}
