package collector

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"mime"
	"net/http"
	"os"
	"path/filepath"
	"strings"

	"github.com/sunthewhat/certifypro-api/common"
	"github.com/sunthewhat/certifypro-api/common/util"
	"github.com/sunthewhat/certifypro-api/type/payload"
)

var (
	ErrServerStatus = errors.New("render service returned an error")
	ErrTransport    = errors.New("render service unreachable")
)

const (
	generatePath      = "/api/generate-pdf"
	maxErrorBodyBytes = 4 << 10
)

// Client downloads rendered certificates from the render service.
type Client struct {
	baseURL    string
	httpClient *http.Client
}

func NewClient(baseURL string, httpClient *http.Client) *Client {
	if httpClient == nil {
		httpClient = http.DefaultClient
	}
	return &Client{
		baseURL:    strings.TrimRight(baseURL, "/"),
		httpClient: httpClient,
	}
}

// Download sends one render request and saves the PDF into dir. It returns the
// path of the written file. There is no retry.
func (c *Client) Download(ctx context.Context, req payload.GeneratePdfPayload, dir string) (string, error) {
	body, err := json.Marshal(req)
	if err != nil {
		return "", fmt.Errorf("failed to encode render request: %w", err)
	}

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+generatePath, bytes.NewReader(body))
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrTransport, err)
	}
	httpReq.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(httpReq)
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrTransport, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		text, _ := io.ReadAll(io.LimitReader(resp.Body, maxErrorBodyBytes))
		return "", fmt.Errorf("%w: %d %s", ErrServerStatus, resp.StatusCode, strings.TrimSpace(string(text)))
	}

	pdf, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", fmt.Errorf("%w: reading body: %v", ErrTransport, err)
	}

	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", fmt.Errorf("failed to create output directory: %w", err)
	}

	target := filepath.Join(dir, attachmentName(resp.Header.Get("Content-Disposition")))
	if err := os.WriteFile(target, pdf, 0o644); err != nil {
		return "", fmt.Errorf("failed to save %s: %w", target, err)
	}

	slog.Debug("Certificate downloaded", "path", target, "bytes", len(pdf))
	return target, nil
}

// attachmentName takes the file name from a Content-Disposition header, or
// makes one up when the header has none.
func attachmentName(disposition string) string {
	if _, params, err := mime.ParseMediaType(disposition); err == nil {
		name := filepath.Base(params["filename"])
		if strings.HasSuffix(strings.ToLower(name), ".pdf") && name != ".pdf" {
			return name
		}
	}
	return util.RandomPdfFilename(common.DefaultFilenamePrefix)
}
