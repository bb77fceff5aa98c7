package types

// AppConfig represents the uploader configuration loaded from config file
type AppConfig struct {
	Server             string  `yaml:"server"`
	CookieName         string  `yaml:"cookieName"`
	AnonymousUser      string  `yaml:"anonymousUser"`
	UploadsPerSecond   float64 `yaml:"uploadsPerSecond,omitempty"`
	Timeout            int     `yaml:"timeout,omitempty"` // seconds, 0 keeps the http client default
	InsecureSkipVerify bool    `yaml:"insecureSkipVerify,omitempty"`
}

// Config holds runtime overrides from CLI flags
type Config struct {
	Log           string
	UseConfigPath string
	UseServer     string
	DryRun        bool // parse and list the manifest, no sign-in, no upload
}
