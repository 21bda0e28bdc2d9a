package source

import (
	"bytes"
	"compress/gzip"
	"context"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/valyala/fasthttp"
)

// HTTPClient downloads sitemap documents with browser-like headers so
// bot-protected hosts serve us the same XML they serve a crawler preview.
type HTTPClient struct {
	client  *fasthttp.Client
	timeout time.Duration
}

func NewHTTPClient() *HTTPClient {
	return &HTTPClient{
		client: &fasthttp.Client{
			ReadTimeout:  30 * time.Second,
			WriteTimeout: 30 * time.Second,
		},
		timeout: 30 * time.Second,
	}
}

// Download fetches targetURL and returns the (gzip-decoded) body.
func (h *HTTPClient) Download(ctx context.Context, targetURL string) ([]byte, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	req := fasthttp.AcquireRequest()
	resp := fasthttp.AcquireResponse()
	defer fasthttp.ReleaseRequest(req)
	defer fasthttp.ReleaseResponse(resp)

	req.SetRequestURI(targetURL)
	req.Header.SetMethod(fasthttp.MethodGet)
	req.Header.Set("User-Agent", "Mozilla/5.0 (X11; Linux x86_64) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/120.0.0.0 Safari/537.36")
	req.Header.Set("Accept", "application/xml,text/xml,*/*;q=0.8")
	req.Header.Set("Accept-Encoding", "gzip")

	if err := h.client.DoTimeout(req, resp, h.timeout); err != nil {
		return nil, fmt.Errorf("request failed: %w", err)
	}

	if resp.StatusCode() != fasthttp.StatusOK {
		return nil, fmt.Errorf("HTTP %d", resp.StatusCode())
	}

	body := make([]byte, len(resp.Body()))
	copy(body, resp.Body())

	if h.isGzipped(targetURL, resp) {
		reader, err := gzip.NewReader(bytes.NewReader(body))
		if err != nil {
			return nil, fmt.Errorf("failed to create gzip reader: %w", err)
		}
		defer reader.Close()
		decoded, err := io.ReadAll(reader)
		if err != nil {
			return nil, fmt.Errorf("failed to decompress body: %w", err)
		}
		return decoded, nil
	}

	return body, nil
}

func (h *HTTPClient) isGzipped(targetURL string, resp *fasthttp.Response) bool {
	if strings.HasSuffix(strings.ToLower(targetURL), ".gz") {
		return true
	}
	encoding := string(resp.Header.Peek("Content-Encoding"))
	return strings.Contains(encoding, "gzip")
}
