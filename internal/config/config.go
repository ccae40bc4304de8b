package config

import (
	"log"
	"os"
	"time"

	"gopkg.in/yaml.v3"
)

const (
	configPathEnv   = "EQUITY_NEWS_CONFIG"
	redisURLEnv     = "REDIS_URL"
	proxyURLEnv     = "NEWS_PROXY_URL"
	logLevelEnv     = "LOG_LEVEL"
	knowledgeEnv    = "KNOWLEDGE_FILE"
	refreshCronEnv  = "REFRESH_CRON"
	defaultCronSpec = "*/5 * * * *"
)

// Config holds high-level settings required across the application.
type Config struct {
	Logging   LoggingConfig   `yaml:"logging"`
	Refresh   RefreshConfig   `yaml:"refresh"`
	Fetch     FetchConfig     `yaml:"fetch"`
	Cache     CacheConfig     `yaml:"cache"`
	Provider  ProviderConfig  `yaml:"provider"`
	Knowledge KnowledgeConfig `yaml:"knowledge"`
	Watchlist []string        `yaml:"watchlist"`
	Feeds     []FeedConfig    `yaml:"feeds"`
}

// LoggingConfig selects the slog level.
type LoggingConfig struct {
	Level string `yaml:"level"`
}

// RefreshConfig defines when aggregation re-runs and how far back the
// recency filter reaches.
type RefreshConfig struct {
	CronExpression string `yaml:"cronExpression"`
	RecencyDays    int    `yaml:"recencyDays"`
}

// RecencyWindow resolves the configured day count to a duration.
func (r RefreshConfig) RecencyWindow() time.Duration {
	days := r.RecencyDays
	if days <= 0 {
		days = 365
	}
	return time.Duration(days) * 24 * time.Hour
}

// FetchConfig bounds individual feed attempts.
type FetchConfig struct {
	AttemptTimeoutSeconds int `yaml:"attemptTimeoutSeconds"`
}

// AttemptTimeout resolves the per-attempt timeout, defaulting to 9s.
func (f FetchConfig) AttemptTimeout() time.Duration {
	if f.AttemptTimeoutSeconds <= 0 {
		return 9 * time.Second
	}
	return time.Duration(f.AttemptTimeoutSeconds) * time.Second
}

// CacheConfig describes the snapshot cache.
type CacheConfig struct {
	RedisURL   string `yaml:"redisUrl"`
	TTLMinutes int    `yaml:"ttlMinutes"`
}

// TTL resolves the snapshot time-to-live, defaulting to 10 minutes.
func (c CacheConfig) TTL() time.Duration {
	if c.TTLMinutes <= 0 {
		return 10 * time.Minute
	}
	return time.Duration(c.TTLMinutes) * time.Minute
}

// ProviderConfig points at the optional backend news proxy.
type ProviderConfig struct {
	ProxyURL string `yaml:"proxyUrl"`
}

// KnowledgeConfig optionally overrides the builtin company table.
type KnowledgeConfig struct {
	OverrideFile string `yaml:"overrideFile"`
}

// FeedConfig overrides the builtin source registry when present.
type FeedConfig struct {
	Name       string           `yaml:"name"`
	URL        string           `yaml:"url"`
	Strategies []StrategyConfig `yaml:"strategies"`
}

// StrategyConfig is one proxy/format pair for a configured feed.
type StrategyConfig struct {
	Proxy  string `yaml:"proxy"`
	Format string `yaml:"format"`
}

// Load reads YAML configuration (if present) and applies environment
// overrides.
func Load() Config {
	cfg := defaultConfig()

	if path := os.Getenv(configPathEnv); path != "" {
		if raw, err := os.ReadFile(path); err != nil {
			log.Printf("config: cannot read %s: %v (falling back to defaults)", path, err)
		} else {
			var fileCfg Config
			if err := yaml.Unmarshal(raw, &fileCfg); err != nil {
				log.Printf("config: cannot parse %s: %v (falling back to defaults)", path, err)
			} else {
				cfg = mergeConfig(cfg, fileCfg)
			}
		}
	}

	cfg.applyEnvOverrides()
	return cfg
}

func (c *Config) applyEnvOverrides() {
	if v := os.Getenv(redisURLEnv); v != "" {
		c.Cache.RedisURL = v
	}
	if v := os.Getenv(proxyURLEnv); v != "" {
		c.Provider.ProxyURL = v
	}
	if v := os.Getenv(logLevelEnv); v != "" {
		c.Logging.Level = v
	}
	if v := os.Getenv(knowledgeEnv); v != "" {
		c.Knowledge.OverrideFile = v
	}
	if v := os.Getenv(refreshCronEnv); v != "" {
		c.Refresh.CronExpression = v
	}
}

func mergeConfig(base, override Config) Config {
	if override.Logging.Level != "" {
		base.Logging.Level = override.Logging.Level
	}

	if override.Refresh.CronExpression != "" {
		base.Refresh.CronExpression = override.Refresh.CronExpression
	}
	if override.Refresh.RecencyDays > 0 {
		base.Refresh.RecencyDays = override.Refresh.RecencyDays
	}

	if override.Fetch.AttemptTimeoutSeconds > 0 {
		base.Fetch.AttemptTimeoutSeconds = override.Fetch.AttemptTimeoutSeconds
	}

	if override.Cache.RedisURL != "" {
		base.Cache.RedisURL = override.Cache.RedisURL
	}
	if override.Cache.TTLMinutes > 0 {
		base.Cache.TTLMinutes = override.Cache.TTLMinutes
	}

	if override.Provider.ProxyURL != "" {
		base.Provider.ProxyURL = override.Provider.ProxyURL
	}
	if override.Knowledge.OverrideFile != "" {
		base.Knowledge.OverrideFile = override.Knowledge.OverrideFile
	}

	if len(override.Watchlist) > 0 {
		base.Watchlist = override.Watchlist
	}
	if len(override.Feeds) > 0 {
		base.Feeds = override.Feeds
	}

	return base
}

func defaultConfig() Config {
	return Config{
		Logging:   LoggingConfig{Level: "info"},
		Refresh:   RefreshConfig{CronExpression: defaultCronSpec, RecencyDays: 365},
		Fetch:     FetchConfig{AttemptTimeoutSeconds: 9},
		Cache:     CacheConfig{TTLMinutes: 10},
		Watchlist: []string{"AAPL", "MSFT", "TSLA", "NVDA"},
	}
}
