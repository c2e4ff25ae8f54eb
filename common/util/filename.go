package util

import (
	"fmt"
	"math/rand/v2"
)

// RandomPdfFilename returns "<prefix>_<6 digits>.pdf" with the number drawn
// from [100000, 999999].
func RandomPdfFilename(prefix string) string {
	return fmt.Sprintf("%s_%d.pdf", prefix, 100000+rand.IntN(900000))
}
