package renderer

import (
	"bytes"
	"crypto/rsa"
	"crypto/x509"
	"encoding/pem"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"time"

	digitorus_pdf "github.com/digitorus/pdf"
	"github.com/digitorus/pdfsign/sign"
	"github.com/sunthewhat/certifypro-api/type/shared"
)

const defaultSignerName = "CertifyPro"

// CertificateSigner adds a certification signature to rendered PDFs. The
// zero value and a nil pointer are disabled signers.
type CertificateSigner struct {
	certificate *x509.Certificate
	privateKey  *rsa.PrivateKey
	name        string
	location    string
	enabled     bool
}

func NewCertificateSigner(cfg shared.SigningConfig) (*CertificateSigner, error) {
	if !cfg.Enabled {
		return &CertificateSigner{}, nil
	}
	if cfg.CertPath == "" || cfg.KeyPath == "" {
		return nil, ErrSignerConfig
	}

	certificate, err := readCertificate(cfg.CertPath)
	if err != nil {
		return nil, err
	}
	privateKey, err := readRSAKey(cfg.KeyPath)
	if err != nil {
		return nil, err
	}

	name := cfg.Name
	if name == "" {
		name = defaultSignerName
	}

	slog.Info("PDF signer ready",
		"subject", certificate.Subject.String(),
		"not_after", certificate.NotAfter)

	return &CertificateSigner{
		certificate: certificate,
		privateKey:  privateKey,
		name:        name,
		location:    cfg.Location,
		enabled:     true,
	}, nil
}

func readPEM(path, kind string) (*pem.Block, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read %s file %s: %w", kind, path, err)
	}
	block, _ := pem.Decode(data)
	if block == nil {
		return nil, fmt.Errorf("failed to decode %s PEM from %s", kind, path)
	}
	return block, nil
}

func readCertificate(path string) (*x509.Certificate, error) {
	block, err := readPEM(path, "certificate")
	if err != nil {
		return nil, err
	}
	certificate, err := x509.ParseCertificate(block.Bytes)
	if err != nil {
		return nil, fmt.Errorf("failed to parse certificate %s: %w", path, err)
	}
	return certificate, nil
}

// readRSAKey accepts PKCS#1 and PKCS#8 encoded RSA keys.
func readRSAKey(path string) (*rsa.PrivateKey, error) {
	block, err := readPEM(path, "private key")
	if err != nil {
		return nil, err
	}

	if key, err := x509.ParsePKCS1PrivateKey(block.Bytes); err == nil {
		return key, nil
	}

	parsed, err := x509.ParsePKCS8PrivateKey(block.Bytes)
	if err != nil {
		return nil, fmt.Errorf("failed to parse private key %s: %w", path, err)
	}
	key, ok := parsed.(*rsa.PrivateKey)
	if !ok {
		return nil, errors.New("private key is not RSA")
	}
	return key, nil
}

// SignPDF returns a signed copy of pdfBytes. When signing fails the input is
// returned unchanged and the failure is logged.
func (s *CertificateSigner) SignPDF(pdfBytes []byte, recipient string) ([]byte, error) {
	if !s.IsEnabled() {
		return pdfBytes, nil
	}
	if len(pdfBytes) == 0 {
		return pdfBytes, errors.New("empty PDF bytes")
	}

	signed, err := s.sign(pdfBytes, recipient)
	if err != nil {
		slog.Warn("PDF signing failed, keeping unsigned document", "recipient", recipient, "error", err)
		return pdfBytes, nil
	}

	slog.Debug("PDF signed", "recipient", recipient, "unsigned_bytes", len(pdfBytes), "signed_bytes", len(signed))
	return signed, nil
}

func (s *CertificateSigner) sign(pdfBytes []byte, recipient string) (signed []byte, err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("panic during signing: %v", r)
		}
	}()

	size := int64(len(pdfBytes))
	reader, err := digitorus_pdf.NewReader(bytes.NewReader(pdfBytes), size)
	if err != nil {
		return nil, err
	}

	var out bytes.Buffer
	err = sign.Sign(bytes.NewReader(pdfBytes), &out, reader, size, sign.SignData{
		Signature: sign.SignDataSignature{
			Info: sign.SignDataSignatureInfo{
				Name:     s.name,
				Location: s.location,
				Reason:   "Certificate issued to " + recipient,
				Date:     time.Now(),
			},
			CertType:   sign.CertificationSignature,
			DocMDPPerm: sign.AllowFillingExistingFormFieldsAndSignaturesPerms,
		},
		Signer:      s.privateKey,
		Certificate: s.certificate,
	})
	if err != nil {
		return nil, err
	}
	if out.Len() == 0 {
		return nil, errors.New("signer produced no output")
	}
	return out.Bytes(), nil
}

func (s *CertificateSigner) IsEnabled() bool {
	return s != nil && s.enabled && s.privateKey != nil && s.certificate != nil
}
