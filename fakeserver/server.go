// Package fakeserver is an in-process genotet service for tests.
// It implements the sign-in and upload endpoints and records every call it receives.
package fakeserver

import (
	"net/http"
	"net/http/httptest"
	"sync"
	"time"

	"github.com/gin-gonic/gin"
)

const BasePath = "/genotet"

// Options controls how the fake service answers.
type Options struct {
	Users        map[string]string // username -> password
	CookieName   string
	SessionTTL   time.Duration
	FailUploadAt int  // 1-based upload number answered with FailStatus, 0 never fails
	FailStatus   int  // defaults to 500
	OmitCookie   bool // answer sign-in with 200 but no session cookie
}

// Call is one request seen by the fake service.
type Call struct {
	Kind            string // "sign-in" or "upload"
	Status          int
	Username        string // sign-in username
	SessionToken    string // cookie value sent with an upload
	FieldOrder      []string
	Fields          map[string]string
	FileName        string
	FileContentType string
	FileContent     string
}

// Server wraps the gin engine and the recorded calls.
type Server struct {
	opts     Options
	engine   *gin.Engine
	sessions *sessionStore

	mu      sync.Mutex
	calls   []Call
	uploads int
}

// New creates the fake service. Zero options get genotet defaults.
func New(opts Options) *Server {
	if opts.CookieName == "" {
		opts.CookieName = "genotet-session"
	}
	if opts.SessionTTL <= 0 {
		opts.SessionTTL = 5 * time.Minute
	}
	if opts.FailStatus == 0 {
		opts.FailStatus = http.StatusInternalServerError
	}
	s := &Server{
		opts:     opts,
		sessions: newSessionStore(opts.SessionTTL),
	}
	s.engine = s.setupRoutes()
	return s
}

func (s *Server) setupRoutes() *gin.Engine {
	gin.SetMode(gin.TestMode)
	engine := gin.New()
	engine.Use(gin.Recovery())

	g := engine.Group(BasePath)
	{
		g.GET("/user", s.handleUser)
		g.POST("/upload", s.handleUpload)
	}
	return engine
}

// Handler exposes the engine, e.g. for httptest.NewServer.
func (s *Server) Handler() http.Handler {
	return s.engine
}

// Start runs the service on a loopback listener. The caller closes the returned server.
func (s *Server) Start() *httptest.Server {
	return httptest.NewServer(s.engine)
}

// URL returns the service base URL for a started httptest server.
func URL(ts *httptest.Server) string {
	return ts.URL + BasePath
}

// Calls returns a copy of the calls recorded so far, in arrival order.
func (s *Server) Calls() []Call {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]Call, len(s.calls))
	copy(out, s.calls)
	return out
}

// CallsOf returns the recorded calls of one kind.
func (s *Server) CallsOf(kind string) []Call {
	var out []Call
	for _, c := range s.Calls() {
		if c.Kind == kind {
			out = append(out, c)
		}
	}
	return out
}

func (s *Server) record(c Call) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.calls = append(s.calls, c)
}

// nextUpload returns the 1-based number of the upload being served.
func (s *Server) nextUpload() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.uploads++
	return s.uploads
}
