package config

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/caarlos0/env/v11"

	appenv "github.com/ManuelReschke/RazorSync/internal/pkg/env"
)

// ErrMissingCredentials is returned before any network call when the Razorpay
// key or secret is missing or empty.
var ErrMissingCredentials = errors.New("please specify Razorpay secrets correctly: pass <api-key> <api-secret> or set RAZORPAY_API_KEY and RAZORPAY_SECRET_KEY")

type Config struct {
	AppEnv      string        `env:"APP_ENV" envDefault:"prod"`
	LogLevel    string        `env:"LOG_LEVEL" envDefault:"info"`
	UseTZ       bool          `env:"TIMESTAMP_USE_TZ" envDefault:"true"`
	SyncLockTTL time.Duration `env:"SYNC_LOCK_TTL" envDefault:"30m"`

	Razorpay Razorpay
	Database Database
	Cache    Cache
}

type Razorpay struct {
	APIKey    string        `env:"RAZORPAY_API_KEY"`
	SecretKey string        `env:"RAZORPAY_SECRET_KEY"`
	BaseURL   string        `env:"RAZORPAY_API_BASE_URL" envDefault:"https://api.razorpay.com/v1"`
	PageSize  int           `env:"RAZORPAY_PAGE_SIZE" envDefault:"100"`
	Timeout   time.Duration `env:"RAZORPAY_TIMEOUT" envDefault:"15s"`
}

type Database struct {
	Driver     string        `env:"DB_DRIVER" envDefault:"mysql"`
	Host       string        `env:"DB_HOST" envDefault:"127.0.0.1"`
	Port       string        `env:"DB_PORT" envDefault:"3306"`
	User       string        `env:"DB_USER"`
	Password   string        `env:"DB_PASSWORD"`
	Name       string        `env:"DB_NAME"`
	Path       string        `env:"DB_PATH" envDefault:"razorsync.db"`
	MaxRetries int           `env:"DB_MAX_RETRIES" envDefault:"5"`
	RetryDelay time.Duration `env:"DB_RETRY_DELAY" envDefault:"5s"`
}

type Cache struct {
	Host     string `env:"CACHE_HOST" envDefault:"localhost"`
	Port     string `env:"CACHE_PORT" envDefault:"6379"`
	Password string `env:"CACHE_PASSWORD"`
	DB       int    `env:"CACHE_DB" envDefault:"0"`
}

// Credentials authenticate against the Razorpay API.
type Credentials struct {
	APIKey    string
	APISecret string
}

// Load reads the .env file (if any) and parses the merged environment.
func Load() (*Config, error) {
	// A missing .env file is fine, the process environment still applies.
	_ = appenv.SetupEnvFile()
	return Parse(appenv.Environ())
}

// Parse builds a Config from an explicit set of variables.
func Parse(environ map[string]string) (*Config, error) {
	var cfg Config
	if err := env.ParseWithOptions(&cfg, env.Options{Environment: environ}); err != nil {
		return nil, fmt.Errorf("failed to parse configuration: %w", err)
	}
	return &cfg, nil
}

func (c *Config) IsDev() bool {
	return c.AppEnv == "dev"
}

// ResolveCredentials prefers the positional arguments (key, secret) and falls
// back to the configured environment for each one that is omitted.
func (c *Config) ResolveCredentials(args []string) (Credentials, error) {
	creds := Credentials{
		APIKey:    c.Razorpay.APIKey,
		APISecret: c.Razorpay.SecretKey,
	}
	if len(args) > 0 {
		creds.APIKey = args[0]
	}
	if len(args) > 1 {
		creds.APISecret = args[1]
	}
	creds.APIKey = strings.TrimSpace(creds.APIKey)
	creds.APISecret = strings.TrimSpace(creds.APISecret)
	if creds.APIKey == "" || creds.APISecret == "" {
		return Credentials{}, ErrMissingCredentials
	}
	return creds, nil
}
