// Package transfer talks to the genotet service: sign-in and multipart uploads.
package transfer

import (
	"fmt"
	"net/http"

	"github.com/genotet/uploadbatch/tool"
	"github.com/genotet/uploadbatch/types"
)

// Client issues sign-in and upload requests against one genotet server.
type Client struct {
	httpClient    *http.Client
	server        string
	cookieName    string
	anonymousUser string
}

// NewClient builds a Client from the loaded configuration.
func NewClient(cfg types.AppConfig) (*Client, error) {
	return NewClientWithHTTP(cfg, tool.NewHTTPClient(tool.RequestTimeout(cfg), cfg.InsecureSkipVerify))
}

// NewClientWithHTTP is NewClient with a caller supplied http.Client.
func NewClientWithHTTP(cfg types.AppConfig, httpClient *http.Client) (*Client, error) {
	if cfg.Server == "" {
		return nil, fmt.Errorf("invalid parameters: server must not be empty")
	}
	if cfg.CookieName == "" {
		return nil, fmt.Errorf("invalid parameters: cookieName must not be empty")
	}
	if httpClient == nil {
		httpClient = http.DefaultClient
	}
	return &Client{
		httpClient:    httpClient,
		server:        cfg.Server,
		cookieName:    cfg.CookieName,
		anonymousUser: cfg.AnonymousUser,
	}, nil
}

func closeBody(resp *http.Response) {
	if err := resp.Body.Close(); err != nil {
		tool.DefaultLogger.Errorf("Failed to close response body: %v", err)
	}
}
