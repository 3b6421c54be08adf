package utils

import (
	"time"

	"github.com/go-resty/resty/v2"
)

// UserAgent identifies the contacts client in server logs.
const UserAgent = "go-zone-keeper-client"

// HTTPClient embeds *resty.Client so callers use the resty request builder
// directly.
type HTTPClient struct {
	*resty.Client
}

// NewHTTPClient returns an independent client bound to baseURL. Requests
// carry a JSON Accept header and every header in headers. A zero timeout
// leaves requests unbounded.
func NewHTTPClient(baseURL string, timeout time.Duration, headers map[string]string) *HTTPClient {
	client := resty.New().
		SetBaseURL(baseURL).
		SetHeader("Accept", "application/json").
		SetHeader("User-Agent", UserAgent).
		SetHeaders(headers)
	if timeout > 0 {
		client.SetTimeout(timeout)
	}

	return &HTTPClient{Client: client}
}
