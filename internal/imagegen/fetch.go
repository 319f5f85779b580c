package imagegen

import (
	"context"
	"fmt"
	"io"
	"mime"
	"net/http"
	"strings"
	"time"

	"roomdesign/internal/domain"
	"roomdesign/internal/providers/gemini"
)

const (
	DefaultFetchTimeout = 10 * time.Second

	maxFetchBytes = 4 * MaxImageBytes
)

// Fetcher downloads stored images by URL with a per-request timeout.
type Fetcher struct {
	client  *http.Client
	timeout time.Duration
}

// NewFetcher returns a Fetcher. A nil client uses http.DefaultClient.
func NewFetcher(client *http.Client, timeout time.Duration) *Fetcher {
	if client == nil {
		client = http.DefaultClient
	}
	if timeout <= 0 {
		timeout = DefaultFetchTimeout
	}
	return &Fetcher{client: client, timeout: timeout}
}

// Fetch GETs url and returns its body as an image. Transport errors, non-2xx
// statuses and oversized bodies wrap domain.ErrUpstreamFetch.
func (f *Fetcher) Fetch(ctx context.Context, url string) (gemini.Image, error) {
	ctx, cancel := context.WithTimeout(ctx, f.timeout)
	defer cancel()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return gemini.Image{}, fmt.Errorf("%w: build request: %w", domain.ErrUpstreamFetch, err)
	}
	resp, err := f.client.Do(req)
	if err != nil {
		return gemini.Image{}, fmt.Errorf("%w: %w", domain.ErrUpstreamFetch, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return gemini.Image{}, fmt.Errorf("%w: %s returned %d", domain.ErrUpstreamFetch, url, resp.StatusCode)
	}
	data, err := io.ReadAll(io.LimitReader(resp.Body, maxFetchBytes+1))
	if err != nil {
		return gemini.Image{}, fmt.Errorf("%w: read body: %w", domain.ErrUpstreamFetch, err)
	}
	if len(data) > maxFetchBytes {
		return gemini.Image{}, fmt.Errorf("%w: %s exceeds %d bytes", domain.ErrUpstreamFetch, url, maxFetchBytes)
	}
	return gemini.Image{Data: data, MIME: imageMIME(resp.Header.Get("Content-Type"), data)}, nil
}

// imageMIME prefers the declared image/* type, then sniffs, then assumes JPEG.
func imageMIME(header string, data []byte) string {
	if mediaType, _, err := mime.ParseMediaType(header); err == nil && strings.HasPrefix(mediaType, "image/") {
		return mediaType
	}
	if sniffed := http.DetectContentType(data); strings.HasPrefix(sniffed, "image/") {
		return sniffed
	}
	return "image/jpeg"
}
