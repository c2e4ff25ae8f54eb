package common

const (
	DefaultServiceName    = "certifypro-backend"
	DefaultPort           = 4000
	DefaultFrontendURL    = "https://frontend-production-6cfb.up.railway.app"
	DefaultFontsDir       = "fonts"
	DefaultFilenamePrefix = "CertifyPro"
	DefaultBodyLimit      = 1 << 20
)

// DefaultCorsOrigins are always allowed next to the configured frontend.
var DefaultCorsOrigins = []string{
	"https://profly.uz",
	"http://profly.uz",
	"http://127.0.0.1:5500",
	"http://localhost:5500",
}
