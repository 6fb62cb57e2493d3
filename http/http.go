package http

import (
	"net/http"
	"time"

	"github.com/hashicorp/go-cleanhttp"
	"github.com/hashicorp/go-retryablehttp"
	"github.com/xIceArcher/go-ytstats/config"
)

type HeadersTransport struct {
	base    http.RoundTripper
	Headers map[string]string
}

func (t *HeadersTransport) RoundTrip(req *http.Request) (*http.Response, error) {
	req = req.Clone(req.Context())
	for k, v := range t.Headers {
		req.Header.Set(k, v)
	}
	return t.base.RoundTrip(req)
}

// NewClientWithHeaders returns a client that makes a single attempt per request and hands
// every response, including 4xx and 5xx, back to the caller.
func NewClientWithHeaders(timeout time.Duration, headers map[string]string) *retryablehttp.Client {
	client := retryablehttp.NewClient()
	client.HTTPClient.Timeout = timeout
	client.HTTPClient.Transport = &HeadersTransport{
		base:    cleanhttp.DefaultTransport(),
		Headers: headers,
	}
	client.RetryMax = 0
	client.ErrorHandler = retryablehttp.PassthroughErrorHandler
	client.Logger = nil

	return client
}

func NewClient(cfg config.HTTPConfig) *retryablehttp.Client {
	headers := map[string]string{
		"Accept": "application/json",
	}
	if cfg.UserAgent != "" {
		headers["User-Agent"] = cfg.UserAgent
	}

	return NewClientWithHeaders(time.Duration(cfg.TimeoutSeconds)*time.Second, headers)
}
