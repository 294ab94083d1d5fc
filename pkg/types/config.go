package types

import "time"

// HTTPConfig holds shared HTTP settings used by components that make network requests.
type HTTPConfig struct {
	// Timeout is the HTTP request timeout.
	Timeout time.Duration `json:"timeout" yaml:"timeout" mapstructure:"timeout"`

	// UserAgent is the User-Agent header sent with HTTP requests
	// (e.g. "mardi-fdo/0.1").
	UserAgent string `json:"user_agent" yaml:"user_agent" mapstructure:"user_agent"`
}

// WikibaseConfig holds settings for the entity-fetch collaborator.
type WikibaseConfig struct {
	HTTPConfig `yaml:",inline" mapstructure:",squash"`

	// APIURL is the MediaWiki action API endpoint (…/w/api.php).
	APIURL string `json:"api_url" yaml:"api_url" mapstructure:"api_url"`

	// Language selects which label and description are read (default "en").
	Language string `json:"language" yaml:"language" mapstructure:"language"`
}

// CacheConfig holds settings for the entity memoization cache.
type CacheConfig struct {
	// Capacity is the maximum number of memoized entities (default 2048).
	Capacity int `json:"capacity" yaml:"capacity" mapstructure:"capacity"`
}

// ServerConfig holds settings for the HTTP server.
type ServerConfig struct {
	// Addr is the listen address (default ":8000").
	Addr string `json:"addr" yaml:"addr" mapstructure:"addr"`

	// StaticDir is served under /static/ when non-empty.
	StaticDir string `json:"static_dir" yaml:"static_dir" mapstructure:"static_dir"`

	// ShutdownTimeout bounds graceful shutdown (default 10s).
	ShutdownTimeout time.Duration `json:"shutdown_timeout" yaml:"shutdown_timeout" mapstructure:"shutdown_timeout"`
}

// ArchiveConfig holds settings for the FDO snapshot archive.
type ArchiveConfig struct {
	// Dir is the directory holding fdo.db and exports (default "archive").
	Dir string `json:"dir" yaml:"dir" mapstructure:"dir"`
}

// LogConfig holds logger settings.
type LogConfig struct {
	// Level is a zap level name: debug, info, warn, error.
	Level string `json:"level" yaml:"level" mapstructure:"level"`

	// Development switches to the human-readable console encoder.
	Development bool `json:"development" yaml:"development" mapstructure:"development"`
}

// FDOConfig holds translation settings.
type FDOConfig struct {
	// TypeMap adds instance-of QIDs to the built-in type table. Values are
	// kind names: article, person, dataset, software.
	TypeMap map[string]string `json:"type_map,omitempty" yaml:"type_map,omitempty" mapstructure:"type_map"`
}

// Config groups all service configuration.
type Config struct {
	Wikibase   WikibaseConfig `json:"wikibase" yaml:"wikibase" mapstructure:"wikibase"`
	Namespaces Namespaces     `json:"namespaces" yaml:"namespaces" mapstructure:"namespaces"`
	Cache      CacheConfig    `json:"cache" yaml:"cache" mapstructure:"cache"`
	Server     ServerConfig   `json:"server" yaml:"server" mapstructure:"server"`
	Archive    ArchiveConfig  `json:"archive" yaml:"archive" mapstructure:"archive"`
	Log        LogConfig      `json:"log" yaml:"log" mapstructure:"log"`
	FDO        FDOConfig      `json:"fdo" yaml:"fdo" mapstructure:"fdo"`
}
