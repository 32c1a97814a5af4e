package types

// Profile is the operator-side connection profile for a migrator
// backend. It carries everything needed to reach the API plus the
// client tuning knobs; values left at zero fall back to adapter
// defaults.
type Profile struct {
	APIVersion   string `yaml:"api_version"`
	Endpoint     string `yaml:"endpoint"`
	Token        string `yaml:"token,omitempty"`
	Organization string `yaml:"organization,omitempty"`

	PollIntervalSec  int `yaml:"poll_interval,omitempty"`
	HTTPTimeoutSec   int `yaml:"http_timeout,omitempty"`
	HTTPRetries      int `yaml:"http_retries,omitempty"`
	HTTPRetryDelayMs int `yaml:"http_retry_delay_ms,omitempty"`
}
