package main

import (
	"fmt"
	"time"

	"github.com/spf13/viper"

	"github.com/pdiddy/mardi-fdo/internal/cache"
	"github.com/pdiddy/mardi-fdo/internal/secrets"
	"github.com/pdiddy/mardi-fdo/pkg/types"
)

// setDefaults registers every configuration key so environment variables
// are picked up by Unmarshal.
func setDefaults(v *viper.Viper) {
	ns := types.DefaultNamespaces()

	v.SetDefault("wikibase.api_url", "https://portal.mardi4nfdi.de/w/api.php")
	v.SetDefault("wikibase.language", "en")
	v.SetDefault("wikibase.timeout", 5*time.Second)
	v.SetDefault("wikibase.user_agent", "mardi-fdo/"+version)

	v.SetDefault("namespaces.entity", ns.Entity)
	v.SetDefault("namespaces.object", ns.Object)
	v.SetDefault("namespaces.access", ns.Access)

	v.SetDefault("cache.capacity", cache.DefaultCapacity)

	v.SetDefault("server.addr", ":8000")
	v.SetDefault("server.static_dir", "")
	v.SetDefault("server.shutdown_timeout", 10*time.Second)

	v.SetDefault("archive.dir", "archive")

	v.SetDefault("log.level", "info")
	v.SetDefault("log.development", false)

	v.SetDefault("fdo.type_map", map[string]string{})
}

// loadConfig decodes v into a Config, appends the MediaWiki contact from
// secrets to the User-Agent, and validates the result.
func loadConfig(v *viper.Viper, secretValues map[string]string) (types.Config, error) {
	var cfg types.Config
	if err := v.Unmarshal(&cfg); err != nil {
		return types.Config{}, fmt.Errorf("decoding configuration: %w", err)
	}

	cfg.Wikibase.UserAgent = secrets.UserAgent(cfg.Wikibase.UserAgent, secretValues[secrets.MediaWikiContact])

	if cfg.Cache.Capacity <= 0 {
		return types.Config{}, fmt.Errorf("cache.capacity must be positive, got %d", cfg.Cache.Capacity)
	}
	if cfg.Namespaces.Entity == "" || cfg.Namespaces.Object == "" {
		return types.Config{}, fmt.Errorf("namespaces.entity and namespaces.object are required")
	}
	return cfg, nil
}
