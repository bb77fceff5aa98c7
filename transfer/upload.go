package transfer

import (
	"context"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"os"

	"github.com/bytedance/sonic"

	"github.com/genotet/uploadbatch/tool"
	"github.com/genotet/uploadbatch/types"
)

// FileContentType is sent for every uploaded file part regardless of the file type field.
const FileContentType = "text/plain"

// UploadEntry posts one manifest entry as multipart form data with the session cookie attached.
// Any non-2xx status, unreadable file or transport failure is an *UploadError.
// A 2xx body is decoded only for logging; the status alone decides success.
func (c *Client) UploadEntry(ctx context.Context, entry types.ManifestEntry, session types.Session) error {
	if !session.Valid() {
		return &UploadError{Path: entry.FilePath, Err: fmt.Errorf("invalid parameters: session must not be empty")}
	}

	// check if already cancelled
	select {
	case <-ctx.Done():
		return &UploadError{Path: entry.FilePath, Err: fmt.Errorf("upload cancelled: %w", ctx.Err())}
	default:
	}

	url, err := tool.BuildUploadURL(c.server)
	if err != nil {
		return &UploadError{Path: entry.FilePath, Err: fmt.Errorf("failed to build upload URL: %w", err)}
	}

	file, err := os.Open(entry.FilePath)
	if err != nil {
		return &UploadError{Path: entry.FilePath, Err: fmt.Errorf("failed to open file: %w", err)}
	}
	if info, err := file.Stat(); err != nil || info.IsDir() {
		file.Close()
		if err == nil {
			err = fmt.Errorf("path is a directory, not a file")
		}
		return &UploadError{Path: entry.FilePath, Err: err}
	}

	pr, pw := io.Pipe()
	form := multipart.NewWriter(pw)

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, pr)
	if err != nil {
		file.Close()
		return &UploadError{Path: entry.FilePath, Err: fmt.Errorf("failed to create upload request: %w", err)}
	}
	req.Header.Set("Content-Type", form.FormDataContentType())
	req.AddCookie(&http.Cookie{Name: session.CookieName, Value: session.Token})

	// the writer owns the file; the transport closes pr once the request is done with it
	go func() {
		defer file.Close()
		pw.CloseWithError(c.writeForm(ctx, form, entry, file))
	}()

	resp, err := c.httpClient.Do(req)
	if err != nil {
		if ctx.Err() != nil {
			return &UploadError{Path: entry.FilePath, Err: fmt.Errorf("upload cancelled: %w", ctx.Err())}
		}
		return &UploadError{Path: entry.FilePath, Err: fmt.Errorf("failed to send upload request: %w", err)}
	}
	defer closeBody(resp)

	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 4096))
		tool.DefaultLogger.Debugf("Upload of %s rejected with %s: %s", entry.FilePath, resp.Status, string(body))
		return &UploadError{Path: entry.FilePath, StatusCode: resp.StatusCode}
	}
	body, readErr := io.ReadAll(io.LimitReader(resp.Body, 64*1024))
	if readErr != nil {
		tool.DefaultLogger.Warnf("Failed to read upload response body: %v", readErr)
	}
	var uploadResp types.UploadResponse
	if len(body) > 0 {
		if err := sonic.Unmarshal(body, &uploadResp); err != nil {
			tool.DefaultLogger.Debugf("Upload response is not JSON: %v", err)
		} else if !uploadResp.Success {
			tool.DefaultLogger.Debugf("Upload of %s answered %s without success flag: %s", entry.FilePath, resp.Status, uploadResp.Error)
		}
	}

	tool.DefaultLogger.Infof("Uploaded %s as %s (%s)", entry.FilePath, entry.DataName, entry.FileType)
	return nil
}

// writeForm writes the fields in the order genotet expects, then the file part, then the closing boundary.
func (c *Client) writeForm(ctx context.Context, form *multipart.Writer, entry types.ManifestEntry, file io.Reader) error {
	fields := [][2]string{
		{"type", entry.FileType},
		{"name", entry.DataName},
		{"description", entry.Description},
		{"username", c.anonymousUser},
	}
	for _, field := range fields {
		if err := form.WriteField(field[0], field[1]); err != nil {
			return fmt.Errorf("failed to write field %s: %w", field[0], err)
		}
	}

	part, err := form.CreatePart(tool.FilePartHeader("file", entry.FilePath, FileContentType))
	if err != nil {
		return fmt.Errorf("failed to create file part: %w", err)
	}
	if _, err := tool.CopyWithContext(ctx, part, file); err != nil {
		return fmt.Errorf("failed to copy file content: %w", err)
	}
	return form.Close()
}
