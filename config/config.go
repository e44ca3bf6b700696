package config

import (
	"errors"
	"fmt"
	"io/fs"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// Config holds all service configuration.
type Config struct {
	// Environment
	Environment EnvironmentConfig

	// Server
	HTTPServer HTTPServerConfig
	Logger     LoggerConfig
	Database   DatabaseConfig

	// Platform
	Supabase       SupabaseConfig
	Email          EmailConfig
	GoogleCalendar GoogleCalendarConfig

	// Access control
	Access    AccessConfig
	Session   SessionConfig
	RateLimit RateLimitConfig
}

type EnvironmentConfig struct {
	Name string
}

type HTTPServerConfig struct {
	Port int
	Mode string

	// TrustedProxies lists proxy IPs or CIDRs whose X-Forwarded-For is
	// honored. Empty means the peer address is always the client.
	TrustedProxies []string
}

type LoggerConfig struct {
	Level        string
	Mode         string
	Encoding     string
	ColorEnabled bool
}

type DatabaseConfig struct {
	Path        string
	BusyTimeout time.Duration
}

type SupabaseConfig struct {
	URL            string
	ServiceRoleKey string
	PhotoBucket    string
}

type EmailConfig struct {
	APIURL    string
	APIKey    string
	From      string
	AppURL    string
	PerSecond float64
	Burst     int
}

type GoogleCalendarConfig struct {
	CredentialsPath string
	TokenPath       string
	CalendarID      string
	Timezone        string
}

type AccessConfig struct {
	Passcodes   []string
	MaxAttempts int
	AttemptTTL  time.Duration
}

type SessionConfig struct {
	MaxAge time.Duration
}

type RateLimitConfig struct {
	// Store is "memory" or "sql".
	Store      string
	MemorySize int
	Tiers      map[string]TierConfig
}

type TierConfig struct {
	Limit  int
	Window time.Duration
}

var tierNames = []string{"auth", "email", "api"}

// Load loads configuration using Viper.
// A .env file is applied to the process environment first when present.
// Config file name: config.yaml, searched in ./config, ., /etc/honorly/
func Load() (*Config, error) {
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("error reading .env file: %w", err)
	}

	viper.SetConfigName("config")
	viper.SetConfigType("yaml")
	viper.AddConfigPath("./config")
	viper.AddConfigPath(".")
	viper.AddConfigPath("/etc/honorly/")

	viper.AutomaticEnv()
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	setDefaults()

	if err := viper.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("error reading config file: %w", err)
		}
	}

	cfg := &Config{}

	// Environment & Server
	cfg.Environment.Name = viper.GetString("environment.name")
	cfg.HTTPServer.Port = viper.GetInt("http_server.port")
	cfg.HTTPServer.Mode = viper.GetString("http_server.mode")
	cfg.HTTPServer.TrustedProxies = splitList(viper.GetStringSlice("http_server.trusted_proxies"))
	cfg.Logger.Level = viper.GetString("logger.level")
	cfg.Logger.Mode = viper.GetString("logger.mode")
	cfg.Logger.Encoding = viper.GetString("logger.encoding")
	cfg.Logger.ColorEnabled = viper.GetBool("logger.color_enabled")
	cfg.Database.Path = viper.GetString("database.path")
	cfg.Database.BusyTimeout = viper.GetDuration("database.busy_timeout")

	// Platform
	cfg.Supabase.URL = viper.GetString("supabase.url")
	cfg.Supabase.ServiceRoleKey = viper.GetString("supabase.service_role_key")
	cfg.Supabase.PhotoBucket = viper.GetString("supabase.photo_bucket")

	cfg.Email.APIURL = viper.GetString("email.api_url")
	cfg.Email.APIKey = viper.GetString("email.api_key")
	cfg.Email.From = viper.GetString("email.from")
	cfg.Email.AppURL = viper.GetString("email.app_url")
	cfg.Email.PerSecond = viper.GetFloat64("email.per_second")
	cfg.Email.Burst = viper.GetInt("email.burst")

	cfg.GoogleCalendar.CredentialsPath = viper.GetString("google_calendar.credentials_path")
	cfg.GoogleCalendar.TokenPath = viper.GetString("google_calendar.token_path")
	cfg.GoogleCalendar.CalendarID = viper.GetString("google_calendar.calendar_id")
	cfg.GoogleCalendar.Timezone = viper.GetString("google_calendar.timezone")

	// Access control
	cfg.Access.Passcodes = splitList(viper.GetStringSlice("access.passcodes"))
	cfg.Access.MaxAttempts = viper.GetInt("access.max_attempts")
	cfg.Access.AttemptTTL = viper.GetDuration("access.attempt_ttl")
	cfg.Session.MaxAge = viper.GetDuration("session.max_age")

	cfg.RateLimit.Store = viper.GetString("rate_limit.store")
	cfg.RateLimit.MemorySize = viper.GetInt("rate_limit.memory_size")
	cfg.RateLimit.Tiers = make(map[string]TierConfig, len(tierNames))
	for _, name := range tierNames {
		cfg.RateLimit.Tiers[name] = TierConfig{
			Limit:  viper.GetInt("rate_limit.tiers." + name + ".limit"),
			Window: viper.GetDuration("rate_limit.tiers." + name + ".window"),
		}
	}

	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func (cfg *Config) validate() error {
	if cfg.Environment.Name != "development" && cfg.Supabase.URL == "" {
		return fmt.Errorf("supabase.url is required in %s", cfg.Environment.Name)
	}
	if len(cfg.Access.Passcodes) == 0 {
		return errors.New("access.passcodes must contain at least one passcode")
	}
	if cfg.Access.MaxAttempts <= 0 {
		return errors.New("access.max_attempts must be positive")
	}
	if cfg.RateLimit.Store != "memory" && cfg.RateLimit.Store != "sql" {
		return fmt.Errorf("rate_limit.store must be memory or sql, got %q", cfg.RateLimit.Store)
	}
	for name, t := range cfg.RateLimit.Tiers {
		if t.Limit <= 0 || t.Window <= 0 {
			return fmt.Errorf("rate_limit.tiers.%s needs a positive limit and window", name)
		}
	}
	return nil
}

func setDefaults() {
	viper.SetDefault("environment.name", "development")
	viper.SetDefault("http_server.port", 8080)
	viper.SetDefault("http_server.mode", "debug")
	viper.SetDefault("http_server.trusted_proxies", []string{})
	viper.SetDefault("logger.level", "debug")
	viper.SetDefault("logger.mode", "debug")
	viper.SetDefault("logger.encoding", "console")
	viper.SetDefault("logger.color_enabled", true)
	viper.SetDefault("database.path", "honorly.db")
	viper.SetDefault("database.busy_timeout", "5s")

	viper.SetDefault("supabase.photo_bucket", "loved-one-photos")
	viper.SetDefault("email.per_second", 2)
	viper.SetDefault("email.burst", 5)
	viper.SetDefault("email.app_url", "http://localhost:3000")
	viper.SetDefault("google_calendar.calendar_id", "primary")
	viper.SetDefault("google_calendar.timezone", "America/New_York")

	viper.SetDefault("access.passcodes", []string{"565broome"})
	viper.SetDefault("access.max_attempts", 3)
	viper.SetDefault("access.attempt_ttl", "1h")
	viper.SetDefault("session.max_age", "60m")

	viper.SetDefault("rate_limit.store", "memory")
	viper.SetDefault("rate_limit.memory_size", 10000)
	viper.SetDefault("rate_limit.tiers.auth.limit", 5)
	viper.SetDefault("rate_limit.tiers.auth.window", "15m")
	viper.SetDefault("rate_limit.tiers.email.limit", 10)
	viper.SetDefault("rate_limit.tiers.email.window", "1h")
	viper.SetDefault("rate_limit.tiers.api.limit", 120)
	viper.SetDefault("rate_limit.tiers.api.window", "1m")
}

// splitList accepts both YAML lists and comma-separated env values.
func splitList(in []string) []string {
	var out []string
	for _, item := range in {
		for _, part := range strings.Split(item, ",") {
			if part = strings.TrimSpace(part); part != "" {
				out = append(out, part)
			}
		}
	}
	return out
}
