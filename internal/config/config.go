package config

import (
	"errors"
	"fmt"
	"time"

	"github.com/ilyakaznacheev/cleanenv"
	"github.com/joho/godotenv"
)

// Config represents the application configuration structure.
// It contains settings for the environment, HTTP server, database connection,
// job queue, webhook delivery, provider integrations and graceful shutdown.
type Config struct {
	// Environment specifies the current running environment (development, production, etc.)
	Environment string `env:"ENVIRONMENT" env-default:"development" yaml:"environment"`

	// HTTP contains all HTTP server related configurations
	HTTP struct {
		// Addr is the address and port the HTTP server will listen on
		Addr string `env:"HTTP_ADDR" env-default:":8080" yaml:"addr"`
		// ReadTimeout is the maximum duration for reading the entire request, including the body
		ReadTimeout time.Duration `env:"HTTP_READ_TIMEOUT" env-default:"1m" yaml:"readTimeout"`
		// ReadHeaderTimeout is the amount of time allowed to read request headers
		ReadHeaderTimeout time.Duration `env:"HTTP_READ_HEADER_TIMEOUT" env-default:"10s" yaml:"readHeaderTimeout"`
		// WriteTimeout is the maximum duration before timing out writes of the response
		WriteTimeout time.Duration `env:"HTTP_WRITE_TIMEOUT" env-default:"2m" yaml:"writeTimeout"`
		// IdleTimeout is the maximum amount of time to wait for the next request when keep-alives are enabled
		IdleTimeout time.Duration `env:"HTTP_IDLE_TIMEOUT" env-default:"2m" yaml:"idleTimeout"`
		// RequestTimeout is the maximum time allowed for processing a single request
		RequestTimeout time.Duration `env:"HTTP_REQUEST_TIMEOUT" env-default:"45s" yaml:"requestTimeout"`
		// MaxHeaderBytes controls the maximum number of bytes the server will read parsing the request header
		MaxHeaderBytes int `env:"HTTP_MAX_HEADER_BYTES" env-default:"0" yaml:"maxHeaderBytes"`
		// MetricsPath defines the URL path where metrics are exposed
		MetricsPath string `env:"HTTP_METRICS_PATH" env-default:"/metrics" yaml:"metricsPath"`
	} `yaml:"http"`

	// Database contains all database connection related configurations
	Database struct {
		Username           string        `env:"DATABASE_USERNAME"                 env-default:"myuser"     yaml:"username"`
		Password           string        `env:"DATABASE_PASSWORD"                 env-default:"mypassword" yaml:"password"`
		Host               string        `env:"DATABASE_HOST"                     env-default:"localhost"  yaml:"host"`
		Port               int           `env:"DATABASE_PORT"                     env-default:"5432"       yaml:"port"`
		SslMode            string        `env:"DATABASE_SSL_MODE"                 env-default:"disable"    yaml:"sslMode"`
		DatabaseName       string        `env:"DATABASE_NAME"                     env-default:"atsconnect" yaml:"name"`
		MaxOpenConnections int           `env:"DATABASE_MAX_OPEN_CONNECTIONS"     env-default:"10"         yaml:"maxOpenConnections"`
		MaxIdleConnections int           `env:"DATABASE_MAX_IDLE_CONNECTIONS"     env-default:"8"          yaml:"maxIdleConnections"`
		ConnMaxLifetime    time.Duration `env:"DATABASE_CONNECTION_MAX_LIFETIME"  env-default:"3m"         yaml:"connMaxLifetime"`
		ConnMaxIdleTime    time.Duration `env:"DATABASE_CONNECTION_MAX_IDLE_TIME" env-default:"3m"         yaml:"connMaxIdleTime"`
	} `yaml:"database"`

	// Queue configures the River workers.
	Queue struct {
		// WebhookWorkers is the number of concurrent delivery workers
		WebhookWorkers int `env:"QUEUE_WEBHOOK_WORKERS" env-default:"20" yaml:"webhookWorkers"`
		// DefaultWorkers is the number of workers for sync and periodic jobs
		DefaultWorkers int `env:"QUEUE_DEFAULT_WORKERS" env-default:"5" yaml:"defaultWorkers"`
	} `yaml:"queue"`

	// Webhooks configures outbound webhook deliveries.
	Webhooks struct {
		// Timeout is the hard limit of a single delivery POST
		Timeout time.Duration `env:"WEBHOOKS_TIMEOUT" env-default:"30s" yaml:"timeout"`
		// MaxAttempts is the total number of tries of a delivery, the first one included
		MaxAttempts int `env:"WEBHOOKS_MAX_ATTEMPTS" env-default:"4" yaml:"maxAttempts"`
		// BaseRetryDelay is doubled on every retry
		BaseRetryDelay time.Duration `env:"WEBHOOKS_BASE_RETRY_DELAY" env-default:"60s" yaml:"baseRetryDelay"`
		// Product is used to build the User-Agent header: "<Product>-Webhook/1.0"
		Product string `env:"WEBHOOKS_PRODUCT" env-default:"ATSConnect" yaml:"product"`
		// ResponseBodyLimit is the number of response characters stored per attempt
		ResponseBodyLimit int `env:"WEBHOOKS_RESPONSE_BODY_LIMIT" env-default:"1000" yaml:"responseBodyLimit"`
	} `yaml:"webhooks"`

	// Integrations configures provider connections.
	Integrations struct {
		// EncryptionKey seals integration configs at rest
		EncryptionKey string `env:"INTEGRATIONS_ENCRYPTION_KEY" env-required:"true" yaml:"encryptionKey"`
		// TokenRefreshSchedule is the cron schedule of the token refresh job
		TokenRefreshSchedule string `env:"INTEGRATIONS_TOKEN_REFRESH_SCHEDULE" env-default:"*/5 * * * *" yaml:"tokenRefreshSchedule"` //nolint: lll
		// ImportSchedule is the cron schedule of the application import job
		ImportSchedule string `env:"INTEGRATIONS_IMPORT_SCHEDULE" env-default:"*/15 * * * *" yaml:"importSchedule"`
		// ProviderRateLimit is the number of requests per second allowed per provider
		ProviderRateLimit float64 `env:"INTEGRATIONS_PROVIDER_RATE_LIMIT" env-default:"5" yaml:"providerRateLimit"`
		// ProviderBurst is the token bucket size per provider
		ProviderBurst int `env:"INTEGRATIONS_PROVIDER_BURST" env-default:"10" yaml:"providerBurst"`
		// ProviderTimeout bounds a single provider API call
		ProviderTimeout time.Duration `env:"INTEGRATIONS_PROVIDER_TIMEOUT" env-default:"30s" yaml:"providerTimeout"`
		// ConfigCacheSize is the number of decrypted configs kept in memory
		ConfigCacheSize int `env:"INTEGRATIONS_CONFIG_CACHE_SIZE" env-default:"256" yaml:"configCacheSize"`
	} `yaml:"integrations"`

	// Receiver configures the inbound provider webhook endpoint.
	Receiver struct {
		// ReplayWindow is how long a delivered body is remembered to drop replays
		ReplayWindow time.Duration `env:"RECEIVER_REPLAY_WINDOW" env-default:"10m" yaml:"replayWindow"`
		// MaxBodyBytes caps inbound payloads
		MaxBodyBytes int64 `env:"RECEIVER_MAX_BODY_BYTES" env-default:"1048576" yaml:"maxBodyBytes"`
	} `yaml:"receiver"`

	// JWT holds the RS256 key pair of the operator API.
	JWT struct {
		// PublicKey verifies operator tokens
		PublicKey string `env:"JWT_PUBLIC_KEY" yaml:"publicKey"`
		// PrivateKey signs tokens minted by the jwt command
		PrivateKey string `env:"JWT_PRIVATE_KEY" yaml:"privateKey"`
	} `yaml:"jwt"`

	// GracefulShutdownTimeout is the maximum duration to wait for ongoing requests to complete during shutdown
	GracefulShutdownTimeout time.Duration `env:"GRACEFUL_SHUTDOWN_TIMEOUT" env-default:"10s" yaml:"gracefulShutdownTimeout"` //nolint: lll
}

// Load reads the optional .env files into the process environment, then the
// yaml config file at configPath, and returns a filled Config struct. Values
// from the environment override the yaml file.
func Load(configPath string, envFiles ...string) (*Config, error) {
	if len(envFiles) > 0 {
		if err := godotenv.Load(envFiles...); err != nil {
			return nil, fmt.Errorf("could not load env files: %w", err)
		}
	}

	var cfg Config
	err := cleanenv.ReadConfig(configPath, &cfg)
	if err != nil {
		return nil, fmt.Errorf("could not read config: %w", err)
	}

	if err := cfg.validate(); err != nil {
		return nil, err
	}

	return &cfg, nil
}

func (c *Config) validate() error {
	if c.Webhooks.MaxAttempts < 1 {
		return errors.New("webhooks.maxAttempts must be at least 1")
	}
	if c.Webhooks.Timeout <= 0 {
		return errors.New("webhooks.timeout must be positive")
	}
	if c.Webhooks.BaseRetryDelay <= 0 {
		return errors.New("webhooks.baseRetryDelay must be positive")
	}
	if c.Integrations.ConfigCacheSize < 1 {
		return errors.New("integrations.configCacheSize must be at least 1")
	}

	return nil
}
