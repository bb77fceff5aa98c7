package types

// Session is the credential issued at sign-in. It is attached unchanged to every upload of a run.
type Session struct {
	Username   string
	CookieName string
	Token      string
}

// Valid reports whether the session carries a cookie to send.
func (s Session) Valid() bool {
	return s.CookieName != "" && s.Token != ""
}
