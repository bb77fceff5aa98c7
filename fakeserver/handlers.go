package fakeserver

import (
	"errors"
	"io"
	"net/http"

	"github.com/bytedance/sonic"
	"github.com/gin-gonic/gin"

	"github.com/genotet/uploadbatch/types"
)

func (s *Server) handleUser(c *gin.Context) {
	var req types.SignInRequest
	if err := sonic.Unmarshal([]byte(c.Query("data")), &req); err != nil {
		s.record(Call{Kind: "sign-in", Status: http.StatusBadRequest})
		c.JSON(http.StatusBadRequest, fastReturnError("invalid data"))
		return
	}
	if req.Type != "sign-in" {
		s.record(Call{Kind: "sign-in", Status: http.StatusBadRequest, Username: req.Username})
		c.JSON(http.StatusBadRequest, fastReturnError("invalid type"))
		return
	}

	password, ok := s.opts.Users[req.Username]
	if !ok || password != req.Password {
		s.record(Call{Kind: "sign-in", Status: http.StatusUnauthorized, Username: req.Username})
		c.JSON(http.StatusUnauthorized, fastReturnError("incorrect username or password"))
		return
	}

	token := s.sessions.Issue(req.Username)
	if !s.opts.OmitCookie {
		c.SetCookie(s.opts.CookieName, token, 0, "/", "", false, true)
	}
	s.record(Call{Kind: "sign-in", Status: http.StatusOK, Username: req.Username, SessionToken: token})
	c.JSON(http.StatusOK, fastReturnUsername(req.Username))
}

func (s *Server) handleUpload(c *gin.Context) {
	token, _ := c.Cookie(s.opts.CookieName)
	call := Call{Kind: "upload", SessionToken: token, Fields: map[string]string{}}

	if s.sessions.Lookup(token) == "" {
		call.Status = http.StatusUnauthorized
		s.record(call)
		c.JSON(http.StatusUnauthorized, fastReturnError("not signed in"))
		return
	}

	if err := readForm(c.Request, &call); err != nil {
		call.Status = http.StatusBadRequest
		s.record(call)
		c.JSON(http.StatusBadRequest, fastReturnError(err.Error()))
		return
	}

	if n := s.nextUpload(); n == s.opts.FailUploadAt {
		call.Status = s.opts.FailStatus
		s.record(call)
		c.JSON(s.opts.FailStatus, fastReturnError("upload failed"))
		return
	}

	call.Status = http.StatusOK
	s.record(call)
	c.JSON(http.StatusOK, fastReturnSuccess())
}

// readForm walks the multipart parts in wire order.
func readForm(r *http.Request, call *Call) error {
	mr, err := r.MultipartReader()
	if err != nil {
		return err
	}
	for {
		part, err := mr.NextPart()
		if errors.Is(err, io.EOF) {
			return nil
		}
		if err != nil {
			return err
		}
		data, err := io.ReadAll(part)
		if err != nil {
			return err
		}
		name := part.FormName()
		call.FieldOrder = append(call.FieldOrder, name)
		if part.FileName() != "" {
			call.FileName = part.FileName()
			call.FileContentType = part.Header.Get("Content-Type")
			call.FileContent = string(data)
			continue
		}
		call.Fields[name] = string(data)
	}
}
