package service

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"

	"renova/internal/config"
	"renova/internal/domain"
)

// ProxyError carries the HTTP status and message the image proxy must
// report for a failed relay, including statuses derived from the origin.
type ProxyError struct {
	Status  int
	Code    string
	Message string
}

func (e *ProxyError) Error() string {
	return fmt.Sprintf("image proxy: %d %s", e.Status, e.Message)
}

// ProxiedImage is a successfully relayed image ready to re-serve.
type ProxiedImage struct {
	Data         []byte
	ContentType  string
	CacheControl string
}

// ImageProxyService validates and relays images from the one trusted
// external image host, so the public site never acts as an open relay.
type ImageProxyService interface {
	Fetch(ctx context.Context, rawURL string) (*ProxiedImage, error)
	// RewriteURL maps a hosted image URL onto the proxy route.
	RewriteURL(hosted string) string
	// UnwrapURL reverses RewriteURL for values echoed back by clients.
	UnwrapURL(proxied string) string
}

type imageProxyService struct {
	cfg    config.ProxyConfig
	client *http.Client
}

// NewImageProxyService creates a new ImageProxyService. The HTTP client is
// shared across requests and bounds each outbound fetch with the configured
// timeout; redirects are followed by the client's default policy.
func NewImageProxyService(cfg config.ProxyConfig) ImageProxyService {
	return &imageProxyService{
		cfg:    cfg,
		client: &http.Client{Timeout: cfg.FetchTimeout},
	}
}

func (s *imageProxyService) Fetch(ctx context.Context, rawURL string) (*ProxiedImage, error) {
	if rawURL == "" {
		return nil, &ProxyError{http.StatusBadRequest, "MISSING_URL", "Missing 'url' query parameter"}
	}

	parsed, err := url.Parse(rawURL)
	if err != nil || parsed.Host == "" {
		return nil, &ProxyError{http.StatusBadRequest, "INVALID_URL", "Invalid URL format"}
	}
	if parsed.Scheme != "http" && parsed.Scheme != "https" {
		return nil, &ProxyError{http.StatusBadRequest, "INVALID_PROTOCOL", "Disallowed URL protocol"}
	}
	if parsed.Hostname() != s.cfg.AllowedHost {
		return nil, &ProxyError{http.StatusForbidden, "FORBIDDEN_HOST",
			"Image must be hosted on " + s.cfg.AllowedHost}
	}
	if !domain.HasImageExtension(parsed.Path) {
		return nil, &ProxyError{http.StatusBadRequest, "UNSUPPORTED_FORMAT", "Unsupported image format"}
	}

	// Header-only probe before committing to the body transfer.
	head, err := s.do(ctx, http.MethodHead, rawURL)
	if err != nil {
		return nil, &ProxyError{http.StatusBadGateway, "FETCH_FAILED", "Failed to fetch image"}
	}
	_ = head.Body.Close()

	contentType := head.Header.Get("Content-Type")
	if !strings.HasPrefix(contentType, "image/") {
		status := http.StatusBadRequest
		if head.StatusCode >= 400 {
			status = head.StatusCode
		}
		return nil, &ProxyError{status, "NOT_AN_IMAGE", "Response is not a valid image"}
	}
	if head.ContentLength > s.cfg.MaxBytes {
		return nil, &ProxyError{http.StatusRequestEntityTooLarge, "IMAGE_TOO_LARGE",
			"Image exceeds maximum allowed size"}
	}

	resp, err := s.do(ctx, http.MethodGet, rawURL)
	if err != nil {
		return nil, &ProxyError{http.StatusBadGateway, "FETCH_FAILED", "Failed to fetch image"}
	}
	defer func() { _ = resp.Body.Close() }()

	data, err := io.ReadAll(io.LimitReader(resp.Body, s.cfg.MaxBytes+1))
	if err != nil {
		return nil, &ProxyError{http.StatusBadGateway, "FETCH_FAILED", "Failed to fetch image"}
	}
	if len(data) == 0 {
		return nil, &ProxyError{http.StatusInternalServerError, "EMPTY_RESPONSE", "Empty image response"}
	}
	if int64(len(data)) > s.cfg.MaxBytes {
		return nil, &ProxyError{http.StatusRequestEntityTooLarge, "IMAGE_TOO_LARGE",
			"Image exceeds maximum allowed size"}
	}

	if ct := resp.Header.Get("Content-Type"); ct != "" {
		contentType = ct
	}
	return &ProxiedImage{
		Data:         data,
		ContentType:  contentType,
		CacheControl: fmt.Sprintf("public, max-age=%d", s.cfg.CacheTTLSecs),
	}, nil
}

func (s *imageProxyService) do(ctx context.Context, method, rawURL string) (*http.Response, error) {
	req, err := http.NewRequestWithContext(ctx, method, rawURL, nil)
	if err != nil {
		return nil, err
	}
	return s.client.Do(req)
}

// RewriteURL maps a hosted image URL onto the proxy route so browsers pull
// it through the site's own origin and cache headers. URLs on other hosts
// are returned unchanged; the proxy would refuse them anyway.
func (s *imageProxyService) RewriteURL(hosted string) string {
	if hosted == "" {
		return hosted
	}
	parsed, err := url.Parse(hosted)
	if err != nil || parsed.Hostname() != s.cfg.AllowedHost {
		return hosted
	}
	return s.cfg.PublicPath + "?url=" + url.QueryEscape(hosted)
}

// UnwrapURL extracts the hosted URL from a proxy-route URL. Clients echo the
// rewritten form back in deletedImages and imageUrl parameters; stored rows
// hold the hosted form, so comparisons go through this first. Anything that
// is not a proxy URL passes through unchanged.
func (s *imageProxyService) UnwrapURL(proxied string) string {
	parsed, err := url.Parse(proxied)
	if err != nil || parsed.Path != s.cfg.PublicPath {
		return proxied
	}
	if hosted := parsed.Query().Get("url"); hosted != "" {
		return hosted
	}
	return proxied
}
