package transfer

import (
	"fmt"
	"net/http"
)

// AuthError is returned when sign-in does not yield a session.
// StatusCode is 0 when no response was received.
type AuthError struct {
	StatusCode int
	Err        error
}

func (e *AuthError) Error() string {
	switch {
	case e.StatusCode != 0 && e.Err != nil:
		return fmt.Sprintf("sign-in failed (%d %s): %v", e.StatusCode, http.StatusText(e.StatusCode), e.Err)
	case e.StatusCode != 0:
		return fmt.Sprintf("sign-in failed: %d %s", e.StatusCode, http.StatusText(e.StatusCode))
	case e.Err != nil:
		return fmt.Sprintf("sign-in failed: %v", e.Err)
	default:
		return "sign-in failed"
	}
}

func (e *AuthError) Unwrap() error { return e.Err }

// UploadError is returned when one manifest entry could not be uploaded.
// StatusCode is 0 when the request was never answered (unreadable file, transport error).
type UploadError struct {
	Path       string
	StatusCode int
	Err        error
}

func (e *UploadError) Error() string {
	switch {
	case e.StatusCode != 0:
		return fmt.Sprintf("upload of %s failed: %d %s", e.Path, e.StatusCode, http.StatusText(e.StatusCode))
	case e.Err != nil:
		return fmt.Sprintf("upload of %s failed: %v", e.Path, e.Err)
	default:
		return fmt.Sprintf("upload of %s failed", e.Path)
	}
}

func (e *UploadError) Unwrap() error { return e.Err }
