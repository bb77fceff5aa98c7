package tool

import (
	"crypto/tls"
	"net/http"
	"time"
)

// NewHTTPClient creates the client used for sign-in and uploads.
// A zero timeout leaves requests bounded only by the caller's context.
func NewHTTPClient(timeout time.Duration, insecureSkipVerify bool) *http.Client {
	transport := &http.Transport{
		Proxy:               http.ProxyFromEnvironment,
		TLSClientConfig:     &tls.Config{InsecureSkipVerify: insecureSkipVerify},
		MaxIdleConns:        10,
		MaxIdleConnsPerHost: 2,
		IdleConnTimeout:     90 * time.Second,
	}
	return &http.Client{
		Timeout:   timeout,
		Transport: transport,
	}
}
