package steam

import "time"

// Config holds configuration for the Steam inventory fetch client.
type Config struct {
	// BaseURL is the community endpoint root.
	BaseURL string `mapstructure:"base_url" default:"https://steamcommunity.com"`
	// AppID is the game whose inventory is fetched (730 = CS2).
	AppID string `mapstructure:"app_id" default:"730"`
	// ContextID is the inventory context (2 = default game context).
	ContextID string `mapstructure:"context_id" default:"2"`
	// Language selects the description language.
	Language string `mapstructure:"language" default:"english"`
	// PageSize is the count parameter per page request (Steam caps at 2000).
	PageSize int `mapstructure:"page_size" default:"2000"`
	// MaxRetries is the number of retries after the initial attempt for
	// transient failures.
	MaxRetries int `mapstructure:"max_retries" default:"3"`
	// RequestTimeoutSeconds bounds each individual page request.
	RequestTimeoutSeconds int `mapstructure:"request_timeout_seconds" default:"10"`
	// BaseBackoffMillis is the backoff base for the first retry; it doubles
	// per attempt before jitter is applied.
	BaseBackoffMillis int `mapstructure:"base_backoff_millis" default:"2000"`
	// MaxBackoffMillis caps any computed backoff delay.
	MaxBackoffMillis int `mapstructure:"max_backoff_millis" default:"30000"`
	// PageDelayMillis is the fixed pause between page requests. This keeps
	// multi-page fetches under Steam's practical rate ceiling and is
	// distinct from retry backoff.
	PageDelayMillis int `mapstructure:"page_delay_millis" default:"1500"`
}

func (c Config) requestTimeout() time.Duration {
	return time.Duration(c.RequestTimeoutSeconds) * time.Second
}

func (c Config) baseBackoff() time.Duration {
	return time.Duration(c.BaseBackoffMillis) * time.Millisecond
}

func (c Config) maxBackoff() time.Duration {
	return time.Duration(c.MaxBackoffMillis) * time.Millisecond
}

func (c Config) pageDelay() time.Duration {
	return time.Duration(c.PageDelayMillis) * time.Millisecond
}
