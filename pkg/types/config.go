// Copyright Arbor Learning Co., 2026. All rights reserved.

package types

import "time"

// HTTPConfig holds shared HTTP settings used by stages that make network requests.
type HTTPConfig struct {
	// Timeout is the HTTP request timeout.
	Timeout time.Duration `json:"timeout" yaml:"timeout"`

	// UserAgent is the User-Agent header sent with HTTP requests
	// (e.g. "coursegraph/0.1").
	UserAgent string `json:"user_agent" yaml:"user_agent"`
}

// ScrapeConfig holds settings for course discovery and page fetching.
type ScrapeConfig struct {
	HTTPConfig `yaml:",inline"`

	// BaseURL is the catalog root (default "https://ocw.mit.edu").
	BaseURL string `json:"base_url" yaml:"base_url"`

	// MaxCourses caps how many course pages a run fetches. Zero fetches
	// every discovered course.
	MaxCourses int `json:"max_courses" yaml:"max_courses"`

	// RequestDelay is the pause between consecutive page fetches (default 500ms).
	RequestDelay time.Duration `json:"request_delay" yaml:"request_delay"`

	// MaxRetries bounds retry attempts for rate-limited or failing requests.
	MaxRetries int `json:"max_retries" yaml:"max_retries"`
}

// GraphConfig holds settings for graph assembly and persistence.
type GraphConfig struct {
	// DataDir is the base directory for artifacts (contains index/, graph JSON).
	DataDir string `json:"data_dir" yaml:"data_dir"`
}

// TopicsConfig holds settings for the thesis-topics stage.
type TopicsConfig struct {
	HTTPConfig `yaml:",inline"`

	// Limit caps how many theses to fetch (default 50).
	Limit int `json:"limit" yaml:"limit"`

	// Email is sent as OpenAlex mailto parameter for polite pool access.
	Email string `json:"email,omitempty" yaml:"email,omitempty"`

	// RequestDelay is the pause between OpenAlex pages (default 500ms).
	RequestDelay time.Duration `json:"request_delay" yaml:"request_delay"`

	// OutputPath is where the curated thesis list is written.
	OutputPath string `json:"output_path" yaml:"output_path"`
}

// PublishConfig holds SFTP settings for uploading graph artifacts.
type PublishConfig struct {
	Host string `json:"host" yaml:"host"`
	Port int    `json:"port" yaml:"port"`
	User string `json:"user" yaml:"user"`

	// Password is normally supplied through .secrets/sftp-password
	// rather than the config file.
	Password string `json:"password,omitempty" yaml:"password,omitempty"`

	// RemoteDir is the upload destination directory (default "/").
	RemoteDir string `json:"remote_dir" yaml:"remote_dir"`

	// InsecureIgnoreHostKey disables host key verification (dev only).
	InsecureIgnoreHostKey bool `json:"insecure_ignore_host_key" yaml:"insecure_ignore_host_key"`
}

// PipelineConfig groups all stage configurations.
type PipelineConfig struct {
	Scrape  ScrapeConfig  `json:"scrape" yaml:"scrape"`
	Graph   GraphConfig   `json:"graph" yaml:"graph"`
	Topics  TopicsConfig  `json:"topics" yaml:"topics"`
	Publish PublishConfig `json:"publish" yaml:"publish"`
}
