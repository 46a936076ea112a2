package utils

import (
	"github.com/go-resty/resty/v2"
)

// UserAgent is sent with every request of an [HTTPClient].
const UserAgent = "go-doc-sync"

// HTTPClient is a wrapper around the resty.Client HTTP client.
// It embeds *resty.Client to expose all of its methods directly.
type HTTPClient struct {
	*resty.Client
}

// NewHTTPClient creates a new HTTPClient with its own resty.Client,
// connection pool and state. Requests accept JSON and carry [UserAgent].
//
// Example usage:
//
//	client := utils.NewHTTPClient()
//	resp, err := client.R().Get("https://api.example.com/v1/query")
func NewHTTPClient() *HTTPClient {
	c := resty.New().
		SetHeader("Accept", "application/json").
		SetHeader("User-Agent", UserAgent)
	return &HTTPClient{Client: c}
}
