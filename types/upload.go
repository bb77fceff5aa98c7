package types

// SignInRequest is JSON encoded into the data query parameter of the user endpoint.
type SignInRequest struct {
	Type     string `json:"type"`
	Username string `json:"username"`
	Password string `json:"password"`
}

// SignInResponse is the body returned by a successful sign-in.
type SignInResponse struct {
	Username string `json:"username"`
}

// UploadResponse is the body returned by the upload endpoint.
type UploadResponse struct {
	Success bool   `json:"success"`
	Error   string `json:"error,omitempty"`
}

// Report summarizes a batch run.
type Report struct {
	Total    int
	Uploaded int
	Failed   string // file path of the entry that stopped the run
	Err      error
}

// OK reports whether the whole batch went through.
func (r Report) OK() bool {
	return r.Err == nil
}
