package utils

import (
	"net/http"
	"strings"
	"time"

	"github.com/go-resty/resty/v2"
)

const (
	httpRetryCount   = 2
	httpRetryWait    = 200 * time.Millisecond
	httpRetryMaxWait = 2 * time.Second
)

// HTTPClient is a wrapper around the resty.Client HTTP client.
// It embeds *resty.Client to expose all of its methods directly.
//
// Example usage:
//
//	client := utils.NewHTTPClient("https://media.example.com", 10*time.Second)
//	resp, err := client.R().Get("/avatars/42.png")
type HTTPClient struct {
	*resty.Client
}

// NewHTTPClient creates an HTTPClient with its own connection pool.
//
// baseURL may be empty, in which case requests must use absolute URLs.
// A non-positive timeout leaves the resty default in place. Requests are
// retried on transport errors and 5xx replies.
func NewHTTPClient(baseURL string, timeout time.Duration) *HTTPClient {
	client := resty.New().
		SetRetryCount(httpRetryCount).
		SetRetryWaitTime(httpRetryWait).
		SetRetryMaxWaitTime(httpRetryMaxWait).
		AddRetryCondition(func(resp *resty.Response, err error) bool {
			return err != nil || resp.StatusCode() >= http.StatusInternalServerError
		})

	if baseURL != "" {
		client.SetBaseURL(strings.TrimRight(baseURL, "/"))
	}
	if timeout > 0 {
		client.SetTimeout(timeout)
	}

	return &HTTPClient{Client: client}
}
