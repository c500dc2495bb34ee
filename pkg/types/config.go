package types

import "time"

// HTTPConfig holds shared HTTP settings for components that make network
// requests.
type HTTPConfig struct {
	// ConnectTimeout bounds request setup and the initial response
	// headers (default 10s).
	ConnectTimeout time.Duration `json:"connect_timeout" yaml:"connect_timeout"`

	// RequestTimeout bounds the full request including body transfer
	// (default 120s).
	RequestTimeout time.Duration `json:"request_timeout" yaml:"request_timeout"`

	// UserAgent is the User-Agent header sent with HTTP requests
	// (e.g. "textmill/0.1").
	UserAgent string `json:"user_agent" yaml:"user_agent"`
}

// RemoteConfig holds settings for the remote conversion service client.
type RemoteConfig struct {
	HTTPConfig `yaml:",inline"`

	// BaseURL is the conversion service endpoint (e.g. "http://localhost:3030").
	BaseURL string `json:"base_url" yaml:"base_url"`

	// APIKey is an optional bearer token for hosted conversion services.
	APIKey string `json:"api_key,omitempty" yaml:"api_key,omitempty"`
}

// RouterConfig holds settings for conversion routing.
type RouterConfig struct {
	// Mode selects the routing policy: auto, local, or remote.
	Mode ConversionMode `json:"mode" yaml:"mode"`

	// ArtifactDir is the directory for converted output artifacts.
	// Empty means a textmill subdirectory of the system temp directory.
	ArtifactDir string `json:"artifact_dir,omitempty" yaml:"artifact_dir,omitempty"`
}

// TemplateStoreConfig holds settings for reference-template storage.
type TemplateStoreConfig struct {
	// TemplatesDir is the base directory for template files and the
	// metadata database (contains files/, index/).
	TemplatesDir string `json:"templates_dir" yaml:"templates_dir"`
}

// Config groups all component configurations.
type Config struct {
	Remote    RemoteConfig        `json:"remote" yaml:"remote"`
	Router    RouterConfig        `json:"router" yaml:"router"`
	Templates TemplateStoreConfig `json:"templates" yaml:"templates"`
}
