package config

import (
	"fmt"
	"time"

	"github.com/spf13/viper"
)

// Config holds all configuration (file + env overrides)
type Config struct {
	Server struct {
		Addr string `mapstructure:"addr"`
		// BaseURL is the externally visible URL of this server, for
		// deployments behind a proxy. Empty means derive it per request.
		BaseURL  string `mapstructure:"base_url"`
		LogLevel string `mapstructure:"log_level"`
	} `mapstructure:"server"`

	Platform struct {
		APIURL         string `mapstructure:"api_url"`
		TimeoutSeconds int    `mapstructure:"timeout_seconds"`
	} `mapstructure:"platform"`

	Widget struct {
		CacheTTLSeconds   int `mapstructure:"cache_ttl_seconds"`
		CampaignTimeoutMS int `mapstructure:"campaign_timeout_ms"`
	} `mapstructure:"widget"`

	CORS struct {
		AllowedOrigins []string `mapstructure:"allowed_origins"`
	} `mapstructure:"cors"`

	RateLimit struct {
		WindowSeconds int `mapstructure:"window_seconds"`
		MaxRequests   int `mapstructure:"max_requests"`
	} `mapstructure:"rate_limit"`

	Postgres struct {
		Host         string `mapstructure:"host"`
		Port         int    `mapstructure:"port"`
		User         string `mapstructure:"user"`
		Password     string `mapstructure:"password"`
		DBName       string `mapstructure:"db_name"`
		SSLMode      string `mapstructure:"ssl_mode"`
		MaxOpenConns int    `mapstructure:"max_open_conns"`
		MaxIdleConns int    `mapstructure:"max_idle_conns"`
	} `mapstructure:"postgres"`
}

func Load() Config {
	v := viper.New()
	v.SetConfigName("application")
	v.SetConfigType("yaml")
	v.AddConfigPath("configs")
	_ = v.ReadInConfig() // optional; env can fully configure

	v.SetEnvPrefix("WIDGET")
	v.AutomaticEnv()

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		panic(fmt.Errorf("unable to decode config: %w", err))
	}
	validate(&cfg)
	return cfg
}

func validate(c *Config) {
	if c.Server.Addr == "" {
		c.Server.Addr = ":3002"
	}
	if c.Platform.APIURL == "" {
		c.Platform.APIURL = "http://localhost:3000"
	}
	if c.Platform.TimeoutSeconds <= 0 {
		c.Platform.TimeoutSeconds = 10
	}
	if c.Widget.CacheTTLSeconds <= 0 {
		c.Widget.CacheTTLSeconds = 300
	}
	if c.Widget.CampaignTimeoutMS <= 0 {
		c.Widget.CampaignTimeoutMS = 5000
	}
	if len(c.CORS.AllowedOrigins) == 0 {
		c.CORS.AllowedOrigins = []string{"*"}
	}
	if c.RateLimit.WindowSeconds <= 0 {
		c.RateLimit.WindowSeconds = 15 * 60
	}
	if c.RateLimit.MaxRequests <= 0 {
		c.RateLimit.MaxRequests = 100
	}
	if c.Postgres.Port == 0 {
		c.Postgres.Port = 5432
	}
	if c.Postgres.SSLMode == "" {
		c.Postgres.SSLMode = "disable"
	}
	if c.Postgres.MaxOpenConns == 0 {
		c.Postgres.MaxOpenConns = 10
	}
	if c.Postgres.MaxIdleConns == 0 {
		c.Postgres.MaxIdleConns = 10
	}
}

// EventStoreEnabled reports whether a postgres event store was configured.
// Without one, tracking events are log-only.
func (c Config) EventStoreEnabled() bool {
	return c.Postgres.Host != "" && c.Postgres.DBName != ""
}

func (c Config) DSN() string {
	return fmt.Sprintf("postgres://%s:%s@%s:%d/%s?sslmode=%s",
		c.Postgres.User,
		c.Postgres.Password,
		c.Postgres.Host,
		c.Postgres.Port,
		c.Postgres.DBName,
		c.Postgres.SSLMode,
	)
}

func (c Config) PlatformTimeout() time.Duration {
	return time.Duration(c.Platform.TimeoutSeconds) * time.Second
}

func (c Config) RateLimitWindow() time.Duration {
	return time.Duration(c.RateLimit.WindowSeconds) * time.Second
}
