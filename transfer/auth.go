package transfer

import (
	"context"
	"fmt"
	"io"
	"net/http"

	"github.com/bytedance/sonic"

	"github.com/genotet/uploadbatch/tool"
	"github.com/genotet/uploadbatch/types"
)

const signInType = "sign-in"

// Authenticate signs in and returns the session carried by the response cookie.
// Only a 200 with the session cookie counts as success; everything else is an *AuthError.
func (c *Client) Authenticate(ctx context.Context, username, password string) (types.Session, error) {
	payload, err := sonic.Marshal(&types.SignInRequest{
		Type:     signInType,
		Username: username,
		Password: password,
	})
	if err != nil {
		return types.Session{}, &AuthError{Err: fmt.Errorf("failed to marshal sign-in request: %w", err)}
	}

	url, err := tool.BuildSignInURL(c.server, payload)
	if err != nil {
		return types.Session{}, &AuthError{Err: err}
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return types.Session{}, &AuthError{Err: fmt.Errorf("failed to create sign-in request: %w", err)}
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return types.Session{}, &AuthError{Err: fmt.Errorf("failed to send sign-in request: %w", err)}
	}
	defer closeBody(resp)

	body, readErr := io.ReadAll(io.LimitReader(resp.Body, 64*1024))
	if readErr != nil {
		tool.DefaultLogger.Warnf("Failed to read sign-in response body: %v", readErr)
	}

	if resp.StatusCode != http.StatusOK {
		tool.DefaultLogger.Debugf("Sign-in rejected with %s: %s", resp.Status, string(body))
		return types.Session{}, &AuthError{StatusCode: resp.StatusCode}
	}

	var token string
	for _, cookie := range resp.Cookies() {
		if cookie.Name == c.cookieName {
			token = cookie.Value
		}
	}
	if token == "" {
		return types.Session{}, &AuthError{
			StatusCode: resp.StatusCode,
			Err:        fmt.Errorf("response carries no %s cookie", c.cookieName),
		}
	}

	var signIn types.SignInResponse
	if len(body) > 0 {
		if err := sonic.Unmarshal(body, &signIn); err != nil {
			tool.DefaultLogger.Debugf("Sign-in response is not JSON: %v", err)
		}
	}
	name := username
	if signIn.Username != "" {
		name = signIn.Username
	}
	tool.DefaultLogger.Infof("Signed in to %s as %s", c.server, name)

	return types.Session{
		Username:   username,
		CookieName: c.cookieName,
		Token:      token,
	}, nil
}
