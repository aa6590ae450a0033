package config

import (
	"errors"
	"fmt"
	"net"
	"net/url"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/pflag"
)

// Store drivers.
const (
	DriverMongo    = "mongo"
	DriverPostgres = "postgres"
)

// Rate limiter backends.
const (
	RateLimitMemory = "memory"
	RateLimitRedis  = "redis"
)

// Config stores service settings shared by the API and the status worker.
type Config struct {
	Port             int
	Store            StoreConfig
	DB               DB
	OperationTimeout time.Duration
	RateLimit        RateLimitConfig
	Redis            RedisConfig
	Debug            DebugConfig
	Kafka            KafkaConfig
}

// StoreConfig selects and locates the document store.
type StoreConfig struct {
	Driver string
	// URL is the connection string. For mongo an empty URL leaves the
	// service running without a store.
	URL            string
	Database       string
	ConnectRetries int
	ConnectDelay   time.Duration
}

// DB stores postgres connection settings.
type DB struct {
	Host string
	Port string
	User string
	Pass string
	Name string
}

// DSN builds a postgres connection string.
func (db DB) DSN() string {
	u := url.URL{
		Scheme:   "postgres",
		User:     url.UserPassword(db.User, db.Pass),
		Host:     net.JoinHostPort(db.Host, db.Port),
		Path:     "/" + db.Name,
		RawQuery: "sslmode=disable",
	}
	return u.String()
}

// PostgresDSN prefers DATABASE_URL over the POSTGRES_* settings.
func (c *Config) PostgresDSN() string {
	if c.Store.URL != "" {
		return c.Store.URL
	}
	return c.DB.DSN()
}

// RateLimitConfig stores HTTP rate limiter settings.
// Memory uses Rate/Burst token buckets, redis allows Burst requests per Window.
type RateLimitConfig struct {
	Enabled    bool
	Backend    string
	Rate       float64
	Burst      int
	TTL        time.Duration
	MaxBuckets int
	Window     time.Duration
}

// RedisConfig stores redis settings.
type RedisConfig struct {
	Addr     string
	Password string
	DB       int
}

// DebugConfig stores pprof and metrics server settings.
type DebugConfig struct {
	Enabled bool
	Addr    string
	User    string
	Pass    string
}

// KafkaConfig stores the carrier status feed settings.
type KafkaConfig struct {
	Brokers     []string
	GroupID     string
	StatusTopic string
}

// Load reads configuration in order: .env (if present) → environment → flags.
func Load() (*Config, error) {
	return Parse(os.Args[1:])
}

// Parse is Load with explicit command line arguments.
func Parse(args []string) (*Config, error) {
	if err := godotenv.Load(); err != nil && !errors.Is(err, os.ErrNotExist) {
		return nil, fmt.Errorf("load .env: %w", err)
	}

	cfg, err := fromEnv()
	if err != nil {
		return nil, err
	}

	fs := pflag.NewFlagSet("direct-transport-es", pflag.ContinueOnError)
	fs.IntVarP(&cfg.Port, "port", "p", cfg.Port, "port to listen on")
	fs.StringVar(&cfg.Store.Driver, "store-driver", cfg.Store.Driver, "document store: mongo or postgres")
	fs.StringVar(&cfg.Store.URL, "database-url", cfg.Store.URL, "document store connection string")
	fs.BoolVar(&cfg.Debug.Enabled, "debug", cfg.Debug.Enabled, "serve pprof and metrics on the debug address")
	if err := fs.Parse(args); err != nil {
		return nil, fmt.Errorf("parse flags: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func fromEnv() (*Config, error) {
	cfg := &Config{
		Port:             defaultPort,
		Store:            defaultStore,
		DB:               defaultDB,
		OperationTimeout: defaultOperationTimeout,
		RateLimit:        defaultRateLimit,
		Debug:            defaultDebug,
		Kafka:            defaultKafka,
	}

	p := envParser{}
	cfg.Port = p.int("PORT", cfg.Port)

	cfg.Store.Driver = strings.ToLower(envString("STORE_DRIVER", cfg.Store.Driver))
	cfg.Store.URL = envString("DATABASE_URL", "")
	cfg.Store.Database = envString("DATABASE_NAME", "")
	cfg.Store.ConnectRetries = p.int("STORE_CONNECT_RETRIES", cfg.Store.ConnectRetries)
	cfg.Store.ConnectDelay = p.duration("STORE_CONNECT_DELAY", cfg.Store.ConnectDelay)

	cfg.DB.Host = envString("POSTGRES_HOST", cfg.DB.Host)
	cfg.DB.Port = envString("POSTGRES_PORT", cfg.DB.Port)
	cfg.DB.User = envString("POSTGRES_USER", cfg.DB.User)
	cfg.DB.Pass = envString("POSTGRES_PASSWORD", cfg.DB.Pass)
	cfg.DB.Name = envString("POSTGRES_DB", cfg.DB.Name)

	cfg.OperationTimeout = p.duration("OPERATION_TIMEOUT", cfg.OperationTimeout)

	cfg.RateLimit.Enabled = p.bool("RATE_LIMIT_ENABLED", cfg.RateLimit.Enabled)
	cfg.RateLimit.Backend = strings.ToLower(envString("RATE_LIMIT_BACKEND", cfg.RateLimit.Backend))
	cfg.RateLimit.Rate = p.float("RATE_LIMIT_RATE", cfg.RateLimit.Rate)
	cfg.RateLimit.Burst = p.int("RATE_LIMIT_BURST", cfg.RateLimit.Burst)
	cfg.RateLimit.TTL = p.duration("RATE_LIMIT_TTL", cfg.RateLimit.TTL)
	cfg.RateLimit.MaxBuckets = p.int("RATE_LIMIT_MAX_BUCKETS", cfg.RateLimit.MaxBuckets)
	cfg.RateLimit.Window = p.duration("RATE_LIMIT_WINDOW", cfg.RateLimit.Window)

	cfg.Redis.Addr = envString("REDIS_ADDR", "")
	cfg.Redis.Password = envString("REDIS_PASSWORD", "")
	cfg.Redis.DB = p.int("REDIS_DB", 0)

	cfg.Debug.Enabled = p.bool("DEBUG_ENABLED", cfg.Debug.Enabled)
	cfg.Debug.Addr = envString("DEBUG_ADDR", cfg.Debug.Addr)
	cfg.Debug.User = envString("DEBUG_USER", "")
	cfg.Debug.Pass = envString("DEBUG_PASS", "")

	cfg.Kafka.Brokers = envList("KAFKA_BROKERS")
	cfg.Kafka.GroupID = envString("KAFKA_GROUP_ID", cfg.Kafka.GroupID)
	cfg.Kafka.StatusTopic = envString("KAFKA_STATUS_TOPIC", cfg.Kafka.StatusTopic)

	if err := errors.Join(p.errs...); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate checks ranges and enumerations.
func (c *Config) Validate() error {
	var errs []error
	if c.Port <= 0 || c.Port > 65535 {
		errs = append(errs, fmt.Errorf("invalid port: %d", c.Port))
	}
	if c.Store.Driver != DriverMongo && c.Store.Driver != DriverPostgres {
		errs = append(errs, fmt.Errorf("invalid store driver: %q", c.Store.Driver))
	}
	if c.Store.ConnectRetries < 1 {
		errs = append(errs, fmt.Errorf("invalid store connect retries: %d", c.Store.ConnectRetries))
	}
	if c.Store.Driver == DriverPostgres && c.Store.URL == "" {
		if _, err := strconv.Atoi(c.DB.Port); err != nil {
			errs = append(errs, fmt.Errorf("invalid postgres port %q: %w", c.DB.Port, err))
		}
	}
	if c.OperationTimeout <= 0 {
		errs = append(errs, fmt.Errorf("invalid operation timeout: %s", c.OperationTimeout))
	}
	if c.RateLimit.Enabled {
		switch c.RateLimit.Backend {
		case RateLimitMemory:
			if c.RateLimit.Rate <= 0 {
				errs = append(errs, fmt.Errorf("invalid rate limit rate: %v", c.RateLimit.Rate))
			}
		case RateLimitRedis:
			if c.Redis.Addr == "" {
				errs = append(errs, errors.New("rate limit backend redis requires REDIS_ADDR"))
			}
			if c.RateLimit.Window <= 0 {
				errs = append(errs, fmt.Errorf("invalid rate limit window: %s", c.RateLimit.Window))
			}
		default:
			errs = append(errs, fmt.Errorf("invalid rate limit backend: %q", c.RateLimit.Backend))
		}
		if c.RateLimit.Burst <= 0 {
			errs = append(errs, fmt.Errorf("invalid rate limit burst: %d", c.RateLimit.Burst))
		}
	}
	return errors.Join(errs...)
}

func envString(key, def string) string {
	if v := strings.TrimSpace(os.Getenv(key)); v != "" {
		return v
	}
	return def
}

func envList(key string) []string {
	var out []string
	for _, s := range strings.Split(os.Getenv(key), ",") {
		if s = strings.TrimSpace(s); s != "" {
			out = append(out, s)
		}
	}
	return out
}

// envParser collects every malformed variable instead of stopping at the first one.
type envParser struct {
	errs []error
}

func (p *envParser) int(key string, def int) int {
	v := envString(key, "")
	if v == "" {
		return def
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		p.errs = append(p.errs, fmt.Errorf("%s: %w", key, err))
		return def
	}
	return n
}

func (p *envParser) float(key string, def float64) float64 {
	v := envString(key, "")
	if v == "" {
		return def
	}
	f, err := strconv.ParseFloat(v, 64)
	if err != nil {
		p.errs = append(p.errs, fmt.Errorf("%s: %w", key, err))
		return def
	}
	return f
}

func (p *envParser) bool(key string, def bool) bool {
	v := envString(key, "")
	if v == "" {
		return def
	}
	b, err := strconv.ParseBool(v)
	if err != nil {
		p.errs = append(p.errs, fmt.Errorf("%s: %w", key, err))
		return def
	}
	return b
}

func (p *envParser) duration(key string, def time.Duration) time.Duration {
	v := envString(key, "")
	if v == "" {
		return def
	}
	d, err := time.ParseDuration(v)
	if err != nil {
		p.errs = append(p.errs, fmt.Errorf("%s: %w", key, err))
		return def
	}
	return d
}
