package library

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/five82/gutter/internal/comic"
)

// Client fetches comics served over HTTP.
type Client struct {
	baseURL   *url.URL
	http      *http.Client
	userAgent string
}

const (
	defaultUserAgent = "gutter/0.1"
	requestTimeout   = 10 * time.Second
	maxInfoBytes     = 1 << 20
)

// NewClient builds a Client rooted at base, e.g. https://example.com/comics.
func NewClient(base string) (*Client, error) {
	u, err := parseBaseURL(base)
	if err != nil {
		return nil, err
	}
	return &Client{
		baseURL: u,
		http: &http.Client{
			Timeout: requestTimeout,
		},
		userAgent: defaultUserAgent,
	}, nil
}

// Base returns the normalized base URL.
func (c *Client) Base() string {
	return c.baseURL.String()
}

// FetchInfo retrieves and decodes <base>/<id>/info.json.
func (c *Client) FetchInfo(ctx context.Context, id string) (comic.Info, error) {
	if c == nil {
		return comic.Info{}, fmt.Errorf("client is nil")
	}
	location := comic.JoinPath(c.Base(), comic.IDSegment(c.Base(), id), comic.InfoFile)
	resp, err := c.do(ctx, http.MethodGet, location)
	if err != nil {
		return comic.Info{}, err
	}
	defer func() { _ = resp.Body.Close() }()

	data, err := io.ReadAll(io.LimitReader(resp.Body, maxInfoBytes))
	if err != nil {
		return comic.Info{}, fmt.Errorf("read response: %w", err)
	}
	return DecodeInfo(data)
}

// Probe issues a HEAD request for an image URL.
func (c *Client) Probe(ctx context.Context, location string) (ImageInfo, error) {
	if c == nil {
		return ImageInfo{}, fmt.Errorf("client is nil")
	}
	resp, err := c.do(ctx, http.MethodHead, location)
	if err != nil {
		return ImageInfo{}, err
	}
	_ = resp.Body.Close()
	return ImageInfo{Location: location, Size: resp.ContentLength}, nil
}

func (c *Client) do(ctx context.Context, method, location string) (*http.Response, error) {
	req, err := http.NewRequestWithContext(ctx, method, location, nil)
	if err != nil {
		return nil, fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("User-Agent", c.userAgent)
	if method == http.MethodGet {
		req.Header.Set("Accept", "application/json")
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, fmt.Errorf("execute request: %w", err)
	}
	if resp.StatusCode >= 400 {
		_ = resp.Body.Close()
		return nil, fmt.Errorf("%s %s returned status %d", method, location, resp.StatusCode)
	}
	return resp, nil
}

func parseBaseURL(base string) (*url.URL, error) {
	trimmed := strings.TrimSpace(base)
	if trimmed == "" {
		return nil, fmt.Errorf("base url is empty")
	}
	u, err := url.Parse(trimmed)
	if err != nil {
		return nil, fmt.Errorf("parse base url %q: %w", base, err)
	}
	if u.Host == "" {
		return nil, fmt.Errorf("base url %q has no host", base)
	}
	u.Path = strings.TrimRight(u.Path, "/")
	u.RawPath = ""
	u.RawQuery = ""
	u.Fragment = ""
	return u, nil
}
