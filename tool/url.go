package tool

import (
	"fmt"
	"net/url"
	"strings"
)

// BuildSignInURL builds the /user URL carrying the JSON sign-in payload in the data query parameter.
func BuildSignInURL(server string, payload []byte) (string, error) {
	u, err := parseServer(server)
	if err != nil {
		return "", err
	}
	u.Path = strings.TrimSuffix(u.Path, "/") + "/user"
	q := url.Values{}
	q.Set("data", string(payload))
	u.RawQuery = q.Encode()
	return u.String(), nil
}

// BuildUploadURL builds the /upload URL.
func BuildUploadURL(server string) (string, error) {
	u, err := parseServer(server)
	if err != nil {
		return "", err
	}
	u.Path = strings.TrimSuffix(u.Path, "/") + "/upload"
	u.RawQuery = ""
	return u.String(), nil
}

func parseServer(server string) (*url.URL, error) {
	u, err := url.Parse(server)
	if err != nil {
		return nil, fmt.Errorf("failed to parse server URL: %v", err)
	}
	if u.Scheme != "http" && u.Scheme != "https" {
		return nil, fmt.Errorf("unsupported server URL scheme %q", u.Scheme)
	}
	if u.Host == "" {
		return nil, fmt.Errorf("server URL %q has no host", server)
	}
	return u, nil
}
