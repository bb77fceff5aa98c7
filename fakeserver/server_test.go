package fakeserver

import (
	"net/http"
	"net/http/httptest"
	"net/url"
	"testing"
)

func signInRequest(data string) *http.Request {
	req, _ := http.NewRequest("GET", BasePath+"/user?data="+url.QueryEscape(data), nil)
	return req
}

// TestHandleUserIssuesCookie tests a successful sign-in
func TestHandleUserIssuesCookie(t *testing.T) {
	s := New(Options{Users: map[string]string{"alice": "secret"}})

	w := httptest.NewRecorder()
	s.Handler().ServeHTTP(w, signInRequest(`{"type":"sign-in","username":"alice","password":"secret"}`))

	if w.Code != http.StatusOK {
		t.Fatalf("Expected status code 200, got %d", w.Code)
	}
	cookies := w.Result().Cookies()
	if len(cookies) != 1 || cookies[0].Name != "genotet-session" || cookies[0].Value == "" {
		t.Fatalf("Expected one genotet-session cookie, got %v", cookies)
	}
	if s.sessions.Lookup(cookies[0].Value) != "alice" {
		t.Error("Issued session should map to alice")
	}
}

// TestHandleUserRejects tests invalid sign-in requests
func TestHandleUserRejects(t *testing.T) {
	s := New(Options{Users: map[string]string{"alice": "secret"}})

	tests := []struct {
		name string
		data string
		code int
	}{
		{"not json", "{", http.StatusBadRequest},
		{"wrong type", `{"type":"sign-up","username":"alice","password":"secret"}`, http.StatusBadRequest},
		{"wrong password", `{"type":"sign-in","username":"alice","password":"nope"}`, http.StatusUnauthorized},
		{"unknown user", `{"type":"sign-in","username":"mallory","password":"secret"}`, http.StatusUnauthorized},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := httptest.NewRecorder()
			s.Handler().ServeHTTP(w, signInRequest(tt.data))
			if w.Code != tt.code {
				t.Errorf("Expected status code %d, got %d", tt.code, w.Code)
			}
			if len(w.Result().Cookies()) != 0 {
				t.Error("Rejected sign-in must not set a cookie")
			}
		})
	}
	if n := len(s.CallsOf("sign-in")); n != len(tests) {
		t.Errorf("Expected %d recorded sign-in calls, got %d", len(tests), n)
	}
}

// TestHandleUploadRequiresSession tests uploads without a cookie
func TestHandleUploadRequiresSession(t *testing.T) {
	s := New(Options{})
	req, _ := http.NewRequest("POST", BasePath+"/upload", nil)

	w := httptest.NewRecorder()
	s.Handler().ServeHTTP(w, req)

	if w.Code != http.StatusUnauthorized {
		t.Errorf("Expected status code 401, got %d", w.Code)
	}
	if s.nextUpload() != 1 {
		t.Error("Unauthorized uploads must not count")
	}
}
